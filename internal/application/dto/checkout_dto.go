package dto

import (
	"github.com/shopspring/decimal"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// AddressForm dirección nueva escrita en el checkout.
type AddressForm struct {
	Street    string `json:"street" validate:"required"`
	Number    string `json:"number" validate:"required"`
	District  string `json:"district" validate:"required"`
	Reference string `json:"reference"`
}

// CheckoutRequest datos del modal de confirmación.
// AddressID > 0 selecciona una dirección guardada; si no, se usa NewAddress.
type CheckoutRequest struct {
	Type          string      `json:"type"`
	AddressID     int64       `json:"address_id"`
	NewAddress    AddressForm `json:"new_address"`
	PaymentMethod string      `json:"payment_method"`
	Notes         string      `json:"notes"`
}

// Quote desglose de importes del checkout.
type Quote struct {
	Subtotal         decimal.Decimal   `json:"subtotal"`
	DeliveryFee      decimal.Decimal   `json:"delivery_fee"`
	Discount         decimal.Decimal   `json:"discount"`
	Total            decimal.Decimal   `json:"total"`
	AppliedPromotion *entity.Promotion `json:"applied_promotion,omitempty"`
}
