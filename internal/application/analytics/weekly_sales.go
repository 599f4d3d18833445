// Package analytics contiene los reportes del panel de administración:
// ventas por día de semana, exportación a PDF y estadísticas del dashboard.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// weekDays en el orden del reporte (Lunes primero).
var weekDays = [...]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

const noTopProduct = "Sin datos"

// WeeklySales agrupa los pedidos por día de la semana según su fecha calendario en loc.
// Los pedidos sin fecha interpretable no cuentan en ningún total.
// customers es la cantidad de clientes distintos vistos en los pedidos.
func WeeklySales(
	orders []entity.Order,
	products []entity.Product,
	customers int,
	loc *time.Location,
	now time.Time,
) dto.WeeklyReport {
	if loc == nil {
		loc = time.Local
	}

	days := make([]dto.DaySales, len(weekDays))
	for i, name := range weekDays {
		days[i] = dto.DaySales{Period: name, Sales: decimal.Zero}
	}

	for _, o := range orders {
		day, ok := o.Day(loc)
		if !ok {
			continue
		}
		i := mondayIndex(day.Weekday())
		days[i].Sales = days[i].Sales.Add(o.Total)
		days[i].Orders++
	}

	// ── Totales ────────────────────────────────────────────────────────────────
	total := decimal.Zero
	count := 0
	best := days[0]
	for _, d := range days {
		total = total.Add(d.Sales)
		count += d.Orders
		if d.Sales.GreaterThan(best.Sales) {
			best = d
		}
	}

	avg := decimal.Zero
	if count > 0 {
		avg = total.Div(decimal.NewFromInt(int64(count))).Round(2)
	}

	return dto.WeeklyReport{
		Days:          days,
		TotalSales:    total,
		TotalOrders:   count,
		AverageTicket: avg,
		BestDay:       best,
		TopProduct:    topProduct(products),
		NewCustomers:  customers,
		GeneratedAt:   now.In(loc).Format("02/01/2006"),
	}
}

// mondayIndex convierte time.Weekday (Domingo=0) a índice con Lunes=0.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// topProduct producto con mayor contador de ventas; ante empate gana el primero.
func topProduct(products []entity.Product) dto.TopProductDTO {
	if len(products) == 0 {
		return dto.TopProductDTO{Name: noTopProduct, Sales: decimal.Zero}
	}
	top := products[0]
	for _, p := range products[1:] {
		if p.Sales.GreaterThan(top.Sales) {
			top = p
		}
	}
	return dto.TopProductDTO{ID: top.ID, Name: top.Name, Sales: top.Sales}
}
