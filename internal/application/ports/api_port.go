package ports

import (
	"context"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// AuthAPI endpoints de autenticación del backend.
// Los errores son *domain.APIError; un 401 de cualquier endpoint ya disparó el
// cierre forzado de sesión antes de que el error llegue al llamador.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*dto.AuthResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entity.User, error)
}

// CatalogAPI productos y promociones.
// Las operaciones de escritura devuelven nil (sin error) cuando el backend confirma
// sin enviar la entidad; el llamador aplica entonces el cambio con lo que envió.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error)

	ListPromotions(ctx context.Context) ([]entity.Promotion, error)
	CreatePromotion(ctx context.Context, in dto.PromotionRequest) (*entity.Promotion, error)
	UpdatePromotion(ctx context.Context, id int64, in dto.PromotionRequest) (*entity.Promotion, error)
	SetPromotionStatus(ctx context.Context, id int64, status string) (*entity.Promotion, error)
	DeletePromotion(ctx context.Context, id int64) error
}

// OrderAPI pedidos.
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]entity.Order, error)
	ListUserOrders(ctx context.Context, userID int64) ([]entity.Order, error)
	CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error)
	CreateManualOrder(ctx context.Context, in dto.ManualOrderRequest) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// DashboardAPI estadísticas agregadas calculadas por el backend.
type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

// SessionHooks lo que el cliente HTTP necesita de la sesión: la credencial vigente
// y un modo de cerrarla cuando el backend responde 401.
type SessionHooks interface {
	Token() string
	ForceLogout(reason string)
}
