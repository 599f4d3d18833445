package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT el token no tiene forma de JWT (p.ej. token opaco de Sanctum).
var ErrNotJWT = errors.New("jwt: el token no es un JWT")

// Claims datos mínimos que el cliente lee del token sin verificar la firma.
// La verificación es responsabilidad del backend; aquí solo se usa para
// descartar localmente un token vencido.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Inspect decodifica el token sin validar firma ni expiración.
func Inspect(token string) (*Claims, error) {
	if strings.Count(token, ".") != 2 {
		return nil, ErrNotJWT
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrNotJWT
	}
	return claims, nil
}

// Expired indica si el token es un JWT cuyo exp ya pasó respecto a now.
// Un token opaco o sin exp nunca se considera vencido: lo decide el servidor.
func Expired(token string, now time.Time) bool {
	claims, err := Inspect(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
