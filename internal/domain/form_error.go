package domain

import (
	"errors"
	"sort"
	"strings"
)

// FieldErrors mapa campo → mensaje para mostrar en línea junto a cada input.
type FieldErrors map[string]string

// FormError agrupa los errores de un formulario: por campo o uno general.
// Lo producen la validación local y la normalización de respuestas 4xx.
type FormError struct {
	Fields  FieldErrors `json:"fields,omitempty"`
	General string      `json:"general,omitempty"`
}

func (e *FormError) Error() string {
	if len(e.Fields) == 0 {
		return e.General
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	msg := strings.Join(parts, "; ")
	if e.General != "" {
		msg = e.General + " (" + msg + ")"
	}
	return msg
}

// Is hace que un FormError responda a errors.Is(err, ErrInvalidInput).
func (e *FormError) Is(target error) bool { return target == ErrInvalidInput }

// HasErrors indica si hay al menos un error.
func (e *FormError) HasErrors() bool {
	return e != nil && (len(e.Fields) > 0 || e.General != "")
}

// FormErrorFrom convierte cualquier error de la API en el payload que la vista
// muestra: errores por campo si el servidor los envió, si no un mensaje general.
// fallback se usa cuando el error no trae mensaje propio.
func FormErrorFrom(err error, fallback string) *FormError {
	if err == nil {
		return nil
	}
	var fe *FormError
	if errors.As(err, &fe) {
		return fe
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) > 0 {
			fields := make(FieldErrors, len(apiErr.Fields))
			for k, v := range apiErr.Fields {
				fields[k] = v
			}
			return &FormError{Fields: fields}
		}
		if apiErr.Kind == KindAuth || apiErr.Kind == KindNetwork || apiErr.Message == "" {
			return &FormError{General: fallback}
		}
		return &FormError{General: apiErr.Message}
	}
	return &FormError{General: fallback}
}
