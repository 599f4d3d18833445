package dto

import "github.com/shopspring/decimal"

// DashboardStats respuesta de GET /dashboard/stats del backend.
type DashboardStats struct {
	TodaySales struct {
		Total  decimal.Decimal `json:"total"`
		Change decimal.Decimal `json:"change"` // % contra ayer
	} `json:"today_sales"`
	ActiveOrders struct {
		Count      int `json:"count"`
		TotalToday int `json:"total_today"`
	} `json:"active_orders"`
	NewCustomers struct {
		Count int `json:"count"`
	} `json:"new_customers"`
	LowStock struct {
		Count int            `json:"count"`
		Items []LowStockItem `json:"items"`
	} `json:"low_stock"`
	TopProducts    []DashboardProduct `json:"top_products"`
	SalesByDay     []DashboardDay     `json:"sales_by_day"`
	PaymentMethods []PaymentMethodUse `json:"payment_methods"`
	OrdersByType   []OrderTypeCount   `json:"orders_by_type"`
	Summary        struct {
		TotalRevenue   decimal.Decimal `json:"total_revenue"`
		TotalOrders    int             `json:"total_orders"`
		TotalCustomers int             `json:"total_customers"`
		AverageTicket  decimal.Decimal `json:"average_ticket"`
	} `json:"summary"`
}

// LowStockItem insumo o producto bajo el stock mínimo.
type LowStockItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    decimal.Decimal `json:"stock"`
	MinStock decimal.Decimal `json:"min_stock"`
	Unit     string          `json:"unit"`
}

// DashboardProduct producto del ranking del dashboard.
type DashboardProduct struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
	Sales    decimal.Decimal `json:"sales"`
}

// DashboardDay ventas de un día del gráfico.
type DashboardDay struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// PaymentMethodUse uso de cada medio de pago.
type PaymentMethodUse struct {
	PaymentMethod string `json:"payment_method"`
	Count         int    `json:"count"`
}

// OrderTypeCount pedidos por tipo (Salón / Delivery).
type OrderTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
