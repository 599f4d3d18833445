package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// ListOrders GET /orders (administrador).
func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	res, err := c.do(ctx, call{method: http.MethodGet, path: "/orders"})
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Order](res), nil
}

// ListUserOrders GET /users/:id/orders.
func (c *Client) ListUserOrders(ctx context.Context, userID int64) ([]entity.Order, error) {
	res, err := c.do(ctx, call{
		method: http.MethodGet,
		path:   fmt.Sprintf("/users/%d/orders", userID),
		route:  "/users/:id/orders",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Order](res), nil
}

// CreateOrder POST /orders desde el checkout.
func (c *Client) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	res, err := c.do(ctx, call{method: http.MethodPost, path: "/orders", body: in})
	if err != nil {
		return nil, err
	}
	return orderFrom(res)
}

// CreateManualOrder POST /orders desde el panel (items en texto libre).
func (c *Client) CreateManualOrder(ctx context.Context, in dto.ManualOrderRequest) (*entity.Order, error) {
	res, err := c.do(ctx, call{method: http.MethodPost, path: "/orders", body: in})
	if err != nil {
		return nil, err
	}
	return orderFrom(res)
}

// UpdateOrderStatus PATCH /orders/:id/status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	res, err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/orders/%d/status", id),
		route:  "/orders/:id/status",
		body:   dto.UpdateOrderStatusRequest{Status: status},
	})
	if err != nil {
		return nil, err
	}
	return orderFrom(res)
}

// DeleteOrder DELETE /orders/:id.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	_, err := c.do(ctx, call{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/orders/%d", id),
		route:  "/orders/:id",
	})
	return err
}

// orderFrom algunos controladores responden {"message": ..., "order": {...}}.
func orderFrom(res gjson.Result) (*entity.Order, error) {
	if res.IsObject() && !res.Get("id").Exists() {
		if inner := res.Get("order"); inner.IsObject() {
			res = inner
		}
	}
	var o entity.Order
	ok, err := decodeEntity(res, &o)
	if err != nil || !ok {
		return nil, err
	}
	return &o, nil
}
