package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
	reportdomain "github.com/farmatech/atende-bot/internal/domain/report"
	"github.com/farmatech/atende-bot/internal/service/statistics"
	"github.com/farmatech/atende-bot/pkg/formatter"
	"github.com/farmatech/atende-bot/pkg/logger"
)

// optionLabels traduz os códigos de opção para os rótulos exibidos
var optionLabels = map[string]string{
	"1": "Consulta de preços",
	"2": "Disponibilidade de produtos",
	"3": "Informações de entrega",
	"4": "Falar com atendente",
}

// Service gera relatórios de atendimento a partir do snapshot das conversas
// ativas e dos contadores globais, e os persiste nos repositórios
// configurados (arquivo sempre; banco quando disponível)
type Service struct {
	store        conversation.Store
	stats        *statistics.Service
	repositories []reportdomain.Repository
	logger       logger.Logger
}

// NewService cria o serviço de relatórios
func NewService(store conversation.Store, stats *statistics.Service, log logger.Logger, repositories ...reportdomain.Repository) *Service {
	return &Service{
		store:        store,
		stats:        stats,
		repositories: repositories,
		logger:       log,
	}
}

// Build monta um relatório de atendimento com o estado atual
func (s *Service) Build(ctx context.Context) (*reportdomain.AttendanceReport, error) {
	now := time.Now()
	snapshot := s.stats.Snapshot()

	r := &reportdomain.AttendanceReport{
		ID:        uuid.NewString(),
		Timestamp: now,
		Date:      now.Format("02/01/2006"),
		Time:      now.Format("15:04:05"),
		Stats: reportdomain.Stats{
			TotalConversations:  snapshot.TotalChats,
			ActiveConversations: snapshot.ActiveChats,
			WaitingForHuman:     snapshot.WaitingForHuman,
			WithHuman:           snapshot.WithHuman,
			CompletedChats:      snapshot.CompletedChats,
			Uptime:              formatter.FormatDuration(s.stats.Uptime()),
			OptionCounts:        snapshot.OptionCounts,
		},
	}

	conversations, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar conversas: %w", err)
	}

	if len(conversations) > 0 {
		summary := &reportdomain.ClientSummary{Total: len(conversations)}
		for _, c := range conversations {
			detail := reportdomain.ClientDetail{
				Phone:        formatter.ExtractPhoneFromWhatsAppID(c.ContactID),
				State:        string(c.State),
				Option:       optionLabel(c.Option),
				WaitingTime:  "N/A",
				LastActivity: formatter.FormatDuration(c.IdleFor(now)),
			}
			if waiting, ok := c.WaitingFor(now); ok && c.IsWithHuman() {
				detail.WaitingTime = formatter.FormatDuration(waiting)
			}
			summary.Details = append(summary.Details, detail)
		}
		r.Clients = summary
	}

	return r, nil
}

// Print exibe o relatório no console no layout tradicional
func (s *Service) Print(r *reportdomain.AttendanceReport) {
	var b strings.Builder

	b.WriteString("\n=== RELATÓRIO DE ATENDIMENTO ===\n")
	fmt.Fprintf(&b, "Data/Hora: %s %s\n", r.Date, r.Time)
	fmt.Fprintf(&b, "Total de conversas desde o início: %d\n", r.Stats.TotalConversations)
	fmt.Fprintf(&b, "Conversas ativas: %d\n", r.Stats.ActiveConversations)
	fmt.Fprintf(&b, "Aguardando atendimento humano: %d\n", r.Stats.WaitingForHuman)
	fmt.Fprintf(&b, "Em atendimento humano: %d\n", r.Stats.WithHuman)
	fmt.Fprintf(&b, "Tempo de execução: %s\n", r.Stats.Uptime)

	b.WriteString("\nDistribuição de opções:\n")
	for _, code := range []string{"1", "2", "3", "4"} {
		fmt.Fprintf(&b, "  %s: %d\n", optionLabels[code], r.Stats.OptionCounts[code])
	}

	if r.Clients != nil && len(r.Clients.Details) > 0 {
		b.WriteString("\nClientes ativos:\n")
		for i, client := range r.Clients.Details {
			fmt.Fprintf(&b, "  %d. Telefone: %s\n", i+1, client.Phone)
			fmt.Fprintf(&b, "     Estado: %s\n", client.State)
			fmt.Fprintf(&b, "     Opção: %s\n", client.Option)
			fmt.Fprintf(&b, "     Última atividade: %s\n", client.LastActivity)
			if client.WaitingTime != "N/A" {
				fmt.Fprintf(&b, "     Tempo de espera: %s\n", client.WaitingTime)
			}
		}
	}

	b.WriteString("=================================\n")
	fmt.Print(b.String())
}

// Generate gera o relatório, exibe no console e persiste em cada repositório.
// Falhas de persistência são logadas e não interrompem o atendimento
func (s *Service) Generate(ctx context.Context) (*reportdomain.AttendanceReport, error) {
	r, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	s.Print(r)

	for _, repo := range s.repositories {
		if err := repo.Save(ctx, r); err != nil {
			s.logger.Error("erro ao salvar relatório", "err", err)
		}
	}

	return r, nil
}

// GenerateAndPersist gera e persiste o relatório descartando o resultado
func (s *Service) GenerateAndPersist(ctx context.Context) {
	if _, err := s.Generate(ctx); err != nil {
		s.logger.Error("erro ao gerar relatório", "err", err)
	}
}

// optionLabel devolve o rótulo de uma opção, ou "Nenhuma" quando não há
func optionLabel(option conversation.Option) string {
	if option == conversation.OptionNone {
		return "Nenhuma"
	}
	if label, ok := optionLabels[string(option)]; ok {
		return label
	}
	return string(option)
}
