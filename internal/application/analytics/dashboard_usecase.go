package analytics

import (
	"context"
	"fmt"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
)

// AdminChecker rol de la sesión actual.
type AdminChecker interface {
	IsAdmin() bool
}

// DashboardUseCase obtiene las estadísticas que calcula el backend.
//
// Un 401 del backend cierra la sesión dentro del cliente HTTP antes de que el
// error llegue aquí; el caso de uso solo lo envuelve.
type DashboardUseCase struct {
	api     ports.DashboardAPI
	session AdminChecker
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(api ports.DashboardAPI, session AdminChecker) *DashboardUseCase {
	return &DashboardUseCase{api: api, session: session}
}

// GetStats devuelve las estadísticas del día. Solo para administradores.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	if !uc.session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	stats, err := uc.api.DashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas: %w", err)
	}
	return stats, nil
}
