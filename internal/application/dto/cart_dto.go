package dto

import (
	"github.com/shopspring/decimal"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// AddCartItemRequest agrega un producto de la carta al carrito.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// SetCartQuantityRequest fija la cantidad de una línea; ≤0 elimina la línea.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse foto del carrito para la vista.
type CartResponse struct {
	Lines     []entity.CartLine `json:"lines"`
	Total     decimal.Decimal   `json:"total"`
	ItemCount int               `json:"item_count"`
}
