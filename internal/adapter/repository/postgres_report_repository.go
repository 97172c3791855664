package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmatech/atende-bot/internal/domain/report"
)

// PostgresReportRepository persiste relatórios de atendimento no PostgreSQL
type PostgresReportRepository struct {
	db *pgxpool.Pool
}

// NewPostgresReportRepository cria o repositório de relatórios no banco
func NewPostgresReportRepository(db *pgxpool.Pool) report.Repository {
	return &PostgresReportRepository{db: db}
}

// Save insere o relatório na tabela attendance_reports
func (r *PostgresReportRepository) Save(ctx context.Context, rep *report.AttendanceReport) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}

	optionCounts, err := json.Marshal(rep.Stats.OptionCounts)
	if err != nil {
		return fmt.Errorf("erro ao serializar contagem de opções: %w", err)
	}

	var clients []byte
	if rep.Clients != nil {
		clients, err = json.Marshal(rep.Clients)
		if err != nil {
			return fmt.Errorf("erro ao serializar clientes: %w", err)
		}
	}

	query := `
		INSERT INTO attendance_reports (
			id, generated_at, total_conversations, active_conversations,
			waiting_for_human, with_human, completed_chats, uptime,
			option_counts, clients
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.Exec(ctx, query,
		rep.ID,
		rep.Timestamp,
		rep.Stats.TotalConversations,
		rep.Stats.ActiveConversations,
		rep.Stats.WaitingForHuman,
		rep.Stats.WithHuman,
		rep.Stats.CompletedChats,
		rep.Stats.Uptime,
		optionCounts,
		clients,
	)
	if err != nil {
		return fmt.Errorf("erro ao salvar relatório: %w", err)
	}

	return nil
}
