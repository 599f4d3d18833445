package dto

import "github.com/shopspring/decimal"

// UpdateProductRequest actualización parcial de un producto (PUT /products/:id).
// Los campos nil no se envían.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Available   *bool            `json:"available,omitempty"`
	Stock       *decimal.Decimal `json:"stock,omitempty"`
	MinStock    *decimal.Decimal `json:"min_stock,omitempty"`
}

// MenuFilter filtros de la carta del cliente.
type MenuFilter struct {
	Category string `query:"category"`
	Search   string `query:"q"`
}
