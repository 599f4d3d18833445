package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/logger"
)

// SalesSource colecciones que alimentan el reporte. La implementa store.CollectionStore.
type SalesSource interface {
	LoadAllOrders(ctx context.Context) error
	Orders(f dto.OrderFilter) []entity.Order
	InventoryProducts() []entity.Product
	Users() []entity.User
}

// ReportUseCase arma el reporte semanal de ventas y su versión PDF.
type ReportUseCase struct {
	source SalesSource
	pdf    ports.ReportPDFGenerator
	loc    *time.Location
	now    func() time.Time
	log    *logger.Logger
}

// NewReportUseCase construye el caso de uso. loc define el día calendario de
// cada pedido; nil usa la zona local.
func NewReportUseCase(source SalesSource, pdf ports.ReportPDFGenerator, loc *time.Location, log *logger.Logger) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		source: source,
		pdf:    pdf,
		loc:    loc,
		now:    time.Now,
		log:    log.Named("reports"),
	}
}

// SetClock reemplaza el reloj (pruebas).
func (uc *ReportUseCase) SetClock(now func() time.Time) { uc.now = now }

// Weekly recarga todos los pedidos y calcula el reporte.
func (uc *ReportUseCase) Weekly(ctx context.Context) (*dto.WeeklyReport, error) {
	if err := uc.source.LoadAllOrders(ctx); err != nil {
		return nil, fmt.Errorf("reporte semanal: cargar pedidos: %w", err)
	}
	orders := uc.source.Orders(dto.OrderFilter{})
	report := WeeklySales(
		orders,
		uc.source.InventoryProducts(),
		len(uc.source.Users()),
		uc.loc,
		uc.now(),
	)
	uc.log.Debug().
		Int("orders", report.TotalOrders).
		Int("skipped", len(orders)-report.TotalOrders).
		Str("total", report.TotalSales.StringFixed(2)).
		Msg("reporte semanal calculado")
	return &report, nil
}

// ExportWeeklyPDF devuelve el PDF del reporte y el nombre de archivo sugerido.
func (uc *ReportUseCase) ExportWeeklyPDF(ctx context.Context) ([]byte, string, error) {
	report, err := uc.Weekly(ctx)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.pdf.GenerateWeeklyReportPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte semanal: %w", err)
	}
	name := "Reporte_Ventas_" + strings.ReplaceAll(report.GeneratedAt, "/", "-") + ".pdf"
	return out, name, nil
}
