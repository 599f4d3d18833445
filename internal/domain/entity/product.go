package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Categorías del catálogo tal como las guarda el backend.
const (
	CategoryBurgers    = "Hamburguesas"
	CategoryCombos     = "Combos"
	CategorySides      = "Complementos"
	CategoryDrinks     = "Bebidas"
	CategoryLabelAll   = "Todos"
	CategoryLabelSides = "Acompañamientos" // etiqueta de la carta para CategorySides
)

// Product producto del catálogo. Una sola colección alimenta la carta (solo
// disponibles) y el inventario (todos).
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Available   Flag            `json:"available"`
	Stock       decimal.Decimal `json:"stock"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Unit        string          `json:"unit,omitempty"`
	Image       string          `json:"image,omitempty"`
	Sales       decimal.Decimal `json:"sales"`
}

// IsAvailable indica si el producto se muestra en la carta.
func (p Product) IsAvailable() bool { return bool(p.Available) }

// LowStock indica si el stock actual está en o bajo el mínimo configurado.
func (p Product) LowStock() bool {
	return p.MinStock.IsPositive() && p.Stock.LessThanOrEqual(p.MinStock)
}

// MatchesCategory aplica el filtro de categoría de la carta. La etiqueta
// "Acompañamientos" corresponde a la categoría "Complementos" del catálogo.
func (p Product) MatchesCategory(label string) bool {
	switch label {
	case "", CategoryLabelAll:
		return true
	case CategoryLabelSides:
		return p.Category == CategorySides
	default:
		return p.Category == label
	}
}

// MatchesSearch busca term (sin distinguir mayúsculas) en nombre y descripción.
func (p Product) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

// MenuCategories etiquetas de la carta en el orden en que se muestran.
func MenuCategories() []string {
	return []string{CategoryLabelAll, CategoryBurgers, CategoryCombos, CategoryLabelSides, CategoryDrinks}
}
