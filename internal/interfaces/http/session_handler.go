package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/auth"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/validation"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
)

// SessionHandler maneja login, registro y logout.
type SessionHandler struct {
	session  *auth.SessionManager
	validate *validation.Validator
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(session *auth.SessionManager, v *validation.Validator) *SessionHandler {
	return &SessionHandler{session: session, validate: v}
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.session.Snapshot())
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.session.Login(c.Context(), in); err != nil {
		fe := domain.FormErrorFrom(err, auth.MsgLoginFailed)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "LOGIN_FAILED", Message: nonEmpty(fe.General, msgFormErrors), Fields: fe.Fields,
		})
	}
	return c.JSON(h.session.Snapshot())
}

// Register godoc
// @Summary      Crear cuenta
// @Description  Valida el formulario localmente; si es inválido no se contacta al backend.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, username, password, confirm_password"
// @Success      201   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/session/register [post]
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.session.Register(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.session.Snapshot())
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Success      204
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.session.Logout(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
