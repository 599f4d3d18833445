package dto

import "github.com/shopspring/decimal"

// ProjectionDTO proyección de ventas de un producto para la semana siguiente.
type ProjectionDTO struct {
	ProductID          int64           `json:"product_id"`
	Product            string          `json:"product"`
	Category           string          `json:"category"`
	Sales              decimal.Decimal `json:"sales"`
	NextWeekProjection int64           `json:"next_week_projection"`
	TomorrowProjection int64           `json:"tomorrow_projection"`
	GrowthPct          decimal.Decimal `json:"growth_pct"` // 1 decimal
}

// PurchaseRecommendationDTO insumo a comprar para cubrir la proyección.
type PurchaseRecommendationDTO struct {
	Item     string          `json:"item"`
	Action   string          `json:"action"` // "Comprar 12.3 Kg"
	Quantity decimal.Decimal `json:"quantity"`
	Priority string          `json:"priority"` // critical, high, medium, low
	Reason   string          `json:"reason"`
	Cost     decimal.Decimal `json:"cost"`
}

// PredictionReportDTO salida del motor de predicción.
type PredictionReportDTO struct {
	Predictions     []ProjectionDTO             `json:"predictions"`
	Recommendations []PurchaseRecommendationDTO `json:"recommendations"`
	TotalInvestment decimal.Decimal             `json:"total_investment"`
}
