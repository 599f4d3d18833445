package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/metrics"
)

// LocalUser key de c.Locals con el *entity.User de la sesión.
const LocalUser = "user"

// SessionReader lo que los middlewares leen de la sesión.
type SessionReader interface {
	CurrentUser() *entity.User
	IsAuthenticated() bool
}

// RequireAuth exige una sesión autenticada y deja el usuario en c.Locals.
func RequireAuth(session SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := session.CurrentUser()
		if !session.IsAuthenticated() || user == nil {
			return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthenticated, "inicie sesión para continuar")
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireAdmin exige rol admin. Debe ir después de RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetUser(c).IsAdmin() {
			return errorJSON(c, fiber.StatusForbidden, CodeForbidden, "requiere rol de administrador")
		}
		return c.Next()
	}
}

// GetUser devuelve el usuario cargado por RequireAuth, o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// Metrics cuenta las peticiones por método, ruta registrada y status.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.ObserveHTTP(c.Method(), c.Route().Path, status)
		return err
	}
}
