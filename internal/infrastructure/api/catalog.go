package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts GET /products. El mismo endpoint alimenta carta e inventario.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	res, err := c.do(ctx, call{method: http.MethodGet, path: "/products"})
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Product](res), nil
}

// UpdateProduct PUT /products/:id con los campos no nil.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	res, err := c.do(ctx, call{
		method: http.MethodPut,
		path:   fmt.Sprintf("/products/%d", id),
		route:  "/products/:id",
		body:   in,
	})
	if err != nil {
		return nil, err
	}
	var p entity.Product
	ok, err := decodeEntity(res, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// ── Promociones ───────────────────────────────────────────────────────────────

// ListPromotions GET /promotions.
func (c *Client) ListPromotions(ctx context.Context) ([]entity.Promotion, error) {
	res, err := c.do(ctx, call{method: http.MethodGet, path: "/promotions"})
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Promotion](res), nil
}

// CreatePromotion POST /promotions.
func (c *Client) CreatePromotion(ctx context.Context, in dto.PromotionRequest) (*entity.Promotion, error) {
	res, err := c.do(ctx, call{method: http.MethodPost, path: "/promotions", body: in})
	if err != nil {
		return nil, err
	}
	return promotionFrom(res)
}

// UpdatePromotion PUT /promotions/:id.
func (c *Client) UpdatePromotion(ctx context.Context, id int64, in dto.PromotionRequest) (*entity.Promotion, error) {
	res, err := c.do(ctx, call{
		method: http.MethodPut,
		path:   fmt.Sprintf("/promotions/%d", id),
		route:  "/promotions/:id",
		body:   in,
	})
	if err != nil {
		return nil, err
	}
	return promotionFrom(res)
}

// SetPromotionStatus PUT /promotions/:id con solo {status}.
func (c *Client) SetPromotionStatus(ctx context.Context, id int64, status string) (*entity.Promotion, error) {
	res, err := c.do(ctx, call{
		method: http.MethodPut,
		path:   fmt.Sprintf("/promotions/%d", id),
		route:  "/promotions/:id",
		body:   dto.PromotionStatusRequest{Status: status},
	})
	if err != nil {
		return nil, err
	}
	return promotionFrom(res)
}

// DeletePromotion DELETE /promotions/:id.
func (c *Client) DeletePromotion(ctx context.Context, id int64) error {
	_, err := c.do(ctx, call{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/promotions/%d", id),
		route:  "/promotions/:id",
	})
	return err
}

func promotionFrom(res gjson.Result) (*entity.Promotion, error) {
	var p entity.Promotion
	ok, err := decodeEntity(res, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}
