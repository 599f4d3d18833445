package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/analytics"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/inventory"
)

// ReportsHandler reportes, dashboard y predicciones del panel.
type ReportsHandler struct {
	reports     *appanalytics.ReportUseCase
	dashboard   *appanalytics.DashboardUseCase
	predictions *inventory.PredictionUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(
	reports *appanalytics.ReportUseCase,
	dashboard *appanalytics.DashboardUseCase,
	predictions *inventory.PredictionUseCase,
) *ReportsHandler {
	return &ReportsHandler{reports: reports, dashboard: dashboard, predictions: predictions}
}

// Weekly godoc
// @Summary      Ventas por día de la semana
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.WeeklyReport
// @Router       /api/admin/reports/weekly [get]
func (h *ReportsHandler) Weekly(c *fiber.Ctx) error {
	report, err := h.reports.Weekly(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// WeeklyPDF godoc
// @Summary      Exportar reporte semanal a PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/admin/reports/weekly.pdf [get]
func (h *ReportsHandler) WeeklyPDF(c *fiber.Ctx) error {
	out, name, err := h.reports.ExportWeeklyPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(name)
	return c.Send(out)
}

// Dashboard godoc
// @Summary      Estadísticas del día (calculadas por el backend)
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.dashboard.GetStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

// Predictions godoc
// @Summary      Proyección de demanda y compra de insumos
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.PredictionReportDTO
// @Router       /api/admin/predictions [get]
func (h *ReportsHandler) Predictions(c *fiber.Ctx) error {
	return c.JSON(h.predictions.Predict())
}
