package dto

import (
	"github.com/shopspring/decimal"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// OrderItemRequest línea enviada al crear un pedido (precio congelado del carrito).
type OrderItemRequest struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest cuerpo de POST /orders generado por el checkout.
type CreateOrderRequest struct {
	UserID          int64              `json:"user_id"`
	Type            string             `json:"type"`
	Table           string             `json:"table"`
	Status          entity.OrderStatus `json:"status"`
	PaymentMethod   string             `json:"payment_method"`
	DeliveryAddress string             `json:"delivery_address"`
	Notes           string             `json:"notes"`
	AppliedPromo    *string            `json:"applied_promo"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	Discount        decimal.Decimal    `json:"discount"`
	Total           decimal.Decimal    `json:"total"`
	Items           []OrderItemRequest `json:"items"`
}

// ManualOrderRequest pedido cargado a mano por el administrador (items en texto libre).
type ManualOrderRequest struct {
	UserID          int64           `json:"user_id"`
	Table           string          `json:"table" validate:"required"`
	Type            string          `json:"type" validate:"required,oneof=Salón Delivery"`
	Items           string          `json:"items" validate:"required"`
	Total           decimal.Decimal `json:"total"`
	DeliveryAddress *string         `json:"delivery_address"`
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes"`
}

// UpdateOrderStatusRequest cuerpo de PATCH /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status"`
}

// OrderFilter filtros del tablero de pedidos. Status vacío o "all" = todos.
type OrderFilter struct {
	Status string `query:"status"`
	Search string `query:"q"`
}
