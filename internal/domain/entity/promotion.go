package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una promoción.
const (
	PromoActive    = "active"
	PromoScheduled = "scheduled"
)

// Promotion promoción administrada desde el panel. Discount es un porcentaje entero 0–100.
type Promotion struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Discount    Percent             `json:"discount"`
	Price       decimal.NullDecimal `json:"price"`
	ValidUntil  string              `json:"valid_until"`
	Status      string              `json:"status"`
}

// IsActive indica si la promoción es visible para el cliente.
func (p Promotion) IsActive() bool { return p.Status == PromoActive }

// ToggledStatus devuelve el estado opuesto (active ↔ scheduled).
func (p Promotion) ToggledStatus() string {
	if p.Status == PromoActive {
		return PromoScheduled
	}
	return PromoActive
}

// Label etiqueta que se guarda en el pedido, ej: "Combo Martes (-20%)".
func (p Promotion) Label() string {
	return fmt.Sprintf("%s (-%d%%)", p.Name, p.Discount)
}

// ValidUntilDate recorta la fecha a YYYY-MM-DD sin importar si el backend
// envía hora, "T" o zona.
func (p Promotion) ValidUntilDate() string {
	return DatePart(p.ValidUntil)
}

// ValidUntilDisplay fecha en formato día/mes/año; "Indefinido" si no hay fecha.
func (p Promotion) ValidUntilDisplay() string {
	d := p.ValidUntilDate()
	if d == "" {
		return "Indefinido"
	}
	parts := strings.Split(d, "-")
	if len(parts) != 3 {
		return d
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// DatePart devuelve los primeros 10 caracteres (YYYY-MM-DD) de una fecha del backend.
func DatePart(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}

// ParseDay interpreta la parte de fecha como día calendario local en loc.
func ParseDay(s string, loc *time.Location) (time.Time, bool) {
	d := DatePart(s)
	if d == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02", d, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
