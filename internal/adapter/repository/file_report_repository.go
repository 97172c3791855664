package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/farmatech/atende-bot/internal/domain/report"
)

// FileReportRepository persiste relatórios como arquivos JSON em um
// diretório, um arquivo por relatório (melhor esforço, como no restante da
// persistência do bot)
type FileReportRepository struct {
	dir string
}

// NewFileReportRepository cria o repositório de relatórios em arquivo
func NewFileReportRepository(dir string) *FileReportRepository {
	return &FileReportRepository{dir: dir}
}

// Save grava o relatório em um arquivo com timestamp no nome
func (r *FileReportRepository) Save(_ context.Context, rep *report.AttendanceReport) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de relatórios: %w", err)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	// Milissegundos no nome evitam sobrescrita de relatórios gerados em
	// transferências consecutivas dentro do mesmo segundo
	stamp := rep.Timestamp.UTC().Format("2006-01-02T15-04-05.000Z")
	fileName := fmt.Sprintf("report_%s.json", stamp)

	if err := os.WriteFile(filepath.Join(r.dir, fileName), data, 0o644); err != nil {
		return fmt.Errorf("erro ao salvar relatório: %w", err)
	}
	return nil
}
