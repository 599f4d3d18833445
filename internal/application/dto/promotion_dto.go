package dto

import "github.com/shopspring/decimal"

// PromotionRequest alta o edición de una promoción.
type PromotionRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Discount    int              `json:"discount" validate:"required,min=1,max=100"`
	Price       *decimal.Decimal `json:"price"`
	ValidUntil  string           `json:"valid_until" validate:"required,datetime=2006-01-02"`
	Status      string           `json:"status" validate:"omitempty,oneof=active scheduled"`
}

// PromotionStatusRequest actualización parcial usada para activar/pausar.
type PromotionStatusRequest struct {
	Status string `json:"status"`
}
