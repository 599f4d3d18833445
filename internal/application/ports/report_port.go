package ports

import (
	"context"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
)

// ReportPDFGenerator puerto de salida para exportar el reporte semanal a PDF.
type ReportPDFGenerator interface {
	GenerateWeeklyReportPDF(ctx context.Context, report *dto.WeeklyReport) ([]byte, error)
}
