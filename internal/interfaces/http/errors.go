package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
)

// Códigos de error del adaptador.
const (
	CodeInvalidBody     = "INVALID_BODY"
	CodeInvalidID       = "INVALID_ID"
	CodeValidation      = "VALIDATION"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeSessionExpired  = "SESSION_EXPIRED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeEmptyCart       = "EMPTY_CART"
	CodePromoInactive   = "PROMO_INACTIVE"
	CodeUnavailable     = "PRODUCT_UNAVAILABLE"
	CodeAPIUnavailable  = "API_UNAVAILABLE"
	CodeAPIError        = "API_ERROR"
	CodeInternal        = "INTERNAL"
)

const msgFormErrors = "Hay errores en el formulario. Por favor revíselos."

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// writeError traduce errores de la aplicación a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var fe *domain.FormError
	if errors.As(err, &fe) {
		msg := fe.General
		if msg == "" {
			msg = msgFormErrors
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: CodeValidation, Message: msg, Fields: fe.Fields,
		})
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case domain.KindAuth:
			return errorJSON(c, fiber.StatusUnauthorized, CodeSessionExpired, "Sesión expirada. Inicie sesión nuevamente.")
		case domain.KindValidation:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code: CodeValidation, Message: nonEmpty(apiErr.Message, msgFormErrors), Fields: apiErr.Fields,
			})
		case domain.KindForbidden:
			return errorJSON(c, fiber.StatusForbidden, CodeForbidden, nonEmpty(apiErr.Message, "acceso denegado"))
		case domain.KindNotFound:
			return errorJSON(c, fiber.StatusNotFound, CodeNotFound, nonEmpty(apiErr.Message, "recurso no encontrado"))
		case domain.KindNetwork:
			return errorJSON(c, fiber.StatusServiceUnavailable, CodeAPIUnavailable, "No se pudo conectar con el servidor")
		default:
			return errorJSON(c, fiber.StatusBadGateway, CodeAPIError, nonEmpty(apiErr.Message, "error del servidor"))
		}
	}

	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return errorJSON(c, fiber.StatusUnprocessableEntity, CodeEmptyCart, err.Error())
	case errors.Is(err, domain.ErrPromoInactive):
		return errorJSON(c, fiber.StatusConflict, CodePromoInactive, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusUnprocessableEntity, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotInitialized):
		return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthenticated, "inicie sesión para continuar")
	case errors.Is(err, domain.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, "acceso denegado")
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, err.Error())
	}
	return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, err.Error())
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
}

// paramID lee un parámetro numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	return id, err == nil && id > 0
}

func invalidID(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, CodeInvalidID, "id inválido")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
