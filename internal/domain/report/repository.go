package report

import (
	"context"
)

// Repository define a interface para persistência de relatórios de atendimento
type Repository interface {
	// Save persiste um relatório gerado
	Save(ctx context.Context, r *AttendanceReport) error
}
