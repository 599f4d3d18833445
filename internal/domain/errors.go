package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrUnavailable    = errors.New("servicio remoto no disponible")
	ErrEmptyCart      = errors.New("el carrito está vacío")
	ErrInvalidStatus  = errors.New("estado de pedido inválido")
	ErrPromoInactive  = errors.New("la promoción no está activa")
	ErrNotInitialized = errors.New("sesión no inicializada")
)
