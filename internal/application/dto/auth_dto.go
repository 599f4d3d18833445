package dto

import (
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// LoginRequest formulario de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest formulario de registro. ConfirmPassword solo se valida localmente;
// no viaja al backend.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,username"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// AuthResponse respuesta de POST /login y POST /register.
type AuthResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// SessionResponse estado de la sesión para la vista.
type SessionResponse struct {
	Status entity.SessionStatus `json:"status"`
	User   *entity.User         `json:"user,omitempty"`
	Errors *domain.FormError    `json:"errors,omitempty"`
}
