package ports

import "context"

// Claves conocidas del almacenamiento local durable.
const (
	KeyAuthToken = "auth_token"
	KeyCart      = "cart"
)

// KeyValueStore almacenamiento local durable de pocas claves (token y carrito).
// Get devuelve ok=false si la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
