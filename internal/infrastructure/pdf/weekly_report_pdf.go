// Package pdf genera el reporte semanal de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Juancho Burger - Reporte de Ventas    │  Generado el: ...   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN GENERAL: Indicador | Valor                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE POR DÍA: Día | Pedidos | Ventas (S/)                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateWeeklyReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateWeeklyReportPDF(_ context.Context, report *dto.WeeklyReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte nulo")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Juancho Burger - Reporte de Ventas", true).
		WithAuthor("Juancho Burger", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Resumen General"))
	m.AddRows(tableHeaderRow([]string{"Indicador", "Valor"}, []int{6, 6}))
	for _, r := range summaryRows(report) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(sectionRow("Detalle por Día"))
	m.AddRows(tableHeaderRow([]string{"Día", "Pedidos", "Ventas (S/)"}, []int{4, 4, 4}))
	for _, r := range dayRows(report.Days) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.WeeklyReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Juancho Burger - Reporte de Ventas", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado el: "+nonEmpty(report.GeneratedAt, "-"), props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
	))
}

// tableHeaderRow cabecera de tabla; sizes debe sumar 12.
func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Left: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func summaryRows(report *dto.WeeklyReport) []core.Row {
	top := report.TopProduct
	items := [][2]string{
		{"Ventas Totales", soles(report.TotalSales)},
		{"Pedidos Totales", strconv.Itoa(report.TotalOrders)},
		{"Ticket Promedio", soles(report.AverageTicket)},
		{"Mejor Día", fmt.Sprintf("%s (%s)", report.BestDay.Period, soles(report.BestDay.Sales))},
		{"Producto Estrella", fmt.Sprintf("%s (%s unid)", nonEmpty(top.Name, "Sin datos"), top.Sales.String())},
		{"Clientes", strconv.Itoa(report.NewCustomers)},
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it[0], props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(6).Add(text.New(it[1], props.Text{Size: 9, Top: 1, Left: 1})),
		))
	}
	return rows
}

func dayRows(days []dto.DaySales) []core.Row {
	rows := make([]core.Row, 0, len(days))
	for _, d := range days {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(d.Period, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(4).Add(text.New(strconv.Itoa(d.Orders), props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(4).Add(text.New(soles(d.Sales), props.Text{Size: 9, Top: 1, Left: 1})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// soles formatea un importe como "S/ 12.50".
func soles(d decimal.Decimal) string {
	return "S/ " + d.StringFixed(2)
}
