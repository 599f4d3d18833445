package entity

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent porcentaje entero. El backend lo envía como 20, 20.00 o "20".
type Percent int

// UnmarshalJSON acepta números (enteros o con decimales), strings numéricos y null.
// Los decimales se redondean al entero más cercano.
func (p *Percent) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(bytes.TrimSpace(data)), `"`))
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("percent: valor no numérico %q", s)
	}
	*p = Percent(d.Round(0).IntPart())
	return nil
}
