package dto

import "github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"

// ErrorResponse cuerpo de error HTTP del adaptador local.
type ErrorResponse struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Fields  domain.FieldErrors `json:"fields,omitempty"`
}
