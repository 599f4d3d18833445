package entity

import "github.com/shopspring/decimal"

// CartLine línea del carrito. Price es una foto del precio al agregar el producto;
// no se vuelve a leer del catálogo.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal precio × cantidad de la línea.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
