package entity

import (
	"bytes"
	"fmt"
	"strings"
)

// Flag booleano tolerante: el backend serializa a veces true/false y a veces 1/0 o "1"/"0".
type Flag bool

// UnmarshalJSON acepta booleanos, números y strings.
func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*f = true
	case "false", "0", "", "null":
		*f = false
	default:
		return fmt.Errorf("flag: valor no reconocido %q", s)
	}
	return nil
}
