package api

import (
	"context"
	"net/http"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
)

// DashboardStats GET /dashboard/stats (solo administrador).
func (c *Client) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	res, err := c.do(ctx, call{method: http.MethodGet, path: "/dashboard/stats"})
	if err != nil {
		return nil, err
	}
	var out dto.DashboardStats
	if err := decodeInto(res, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
