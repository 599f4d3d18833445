package dto

import "github.com/shopspring/decimal"

// DaySales ventas acumuladas de un día de la semana.
type DaySales struct {
	Period string          `json:"period"` // "Lunes" … "Domingo"
	Sales  decimal.Decimal `json:"sales"`
	Orders int             `json:"orders"`
}

// TopProductDTO producto más vendido según el contador de ventas del catálogo.
type TopProductDTO struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Sales decimal.Decimal `json:"sales"`
}

// WeeklyReport reporte de ventas por día de semana (Lunes primero).
type WeeklyReport struct {
	Days          []DaySales      `json:"days"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalOrders   int             `json:"total_orders"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	BestDay       DaySales        `json:"best_day"`
	TopProduct    TopProductDTO   `json:"top_product"`
	NewCustomers  int             `json:"new_customers"`
	GeneratedAt   string          `json:"generated_at"`
}
