package domain

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIErrorKind clasifica los fallos de la API remota. Se decide una sola vez en el
// cliente HTTP; el resto de capas solo inspeccionan Kind.
type APIErrorKind int

const (
	KindServer     APIErrorKind = iota // 5xx u otro status no esperado
	KindValidation                     // 400/422 con mapa de errores por campo
	KindAuth                           // 401: credencial inválida o vencida
	KindForbidden                      // 403
	KindNotFound                       // 404: id obsoleto o ya eliminado
	KindNetwork                        // fallo de transporte, timeout o cancelación
)

func (k APIErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network"
	default:
		return "server"
	}
}

// APIError es la variante etiquetada de error que produce el cliente HTTP.
type APIError struct {
	Kind    APIErrorKind
	Status  int               // 0 si nunca hubo respuesta
	Message string            // mensaje general (campo "message" del cuerpo)
	Fields  map[string]string // primer mensaje por campo (campo "errors" del cuerpo)
	Err     error             // causa de transporte, si la hubo
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString("api: ")
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(k + ": " + e.Fields[k])
		}
		b.WriteString("]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrUnauthorized) y similares sobre un APIError.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindAuth
	case ErrForbidden:
		return e.Kind == KindForbidden
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidInput:
		return e.Kind == KindValidation
	case ErrUnavailable:
		return e.Kind == KindNetwork
	}
	return false
}

// KindForStatus traduce un status HTTP no exitoso a su categoría.
func KindForStatus(status int) APIErrorKind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusUnauthorized:
		return KindAuth
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}
