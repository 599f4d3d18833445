package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// Cuando el backend confirma sin devolver la entidad, el cambio local se arma
// con lo mismo que se envió.

func applyProduct(p entity.Product, in dto.UpdateProductRequest) entity.Product {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Available != nil {
		p.Available = entity.Flag(*in.Available)
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	}
	return p
}

func applyPromotion(p entity.Promotion, in dto.PromotionRequest) entity.Promotion {
	p.Name = in.Name
	p.Description = in.Description
	p.Discount = entity.Percent(in.Discount)
	p.ValidUntil = in.ValidUntil
	if in.Price != nil {
		p.Price = decimal.NewNullDecimal(*in.Price)
	} else {
		p.Price = decimal.NullDecimal{}
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	return p
}

func orderFromRequest(in dto.CreateOrderRequest) *entity.Order {
	items := make(entity.OrderItems, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	promo := ""
	if in.AppliedPromo != nil {
		promo = *in.AppliedPromo
	}
	return &entity.Order{
		UserID:          in.UserID,
		Type:            in.Type,
		Table:           in.Table,
		Items:           items,
		Subtotal:        in.Subtotal,
		DeliveryFee:     in.DeliveryFee,
		Discount:        in.Discount,
		Total:           in.Total,
		Status:          in.Status,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		Notes:           in.Notes,
		AppliedPromo:    promo,
		CreatedAt:       time.Now().Format(time.RFC3339),
	}
}

func manualOrderFromRequest(in dto.ManualOrderRequest) *entity.Order {
	addr := ""
	if in.DeliveryAddress != nil {
		addr = *in.DeliveryAddress
	}
	return &entity.Order{
		UserID:          in.UserID,
		Type:            in.Type,
		Table:           in.Table,
		Items:           entity.OrderItems{{Name: in.Items, Quantity: 1}},
		Subtotal:        in.Total,
		Total:           in.Total,
		Status:          entity.StatusPending,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: addr,
		Notes:           in.Notes,
		CreatedAt:       time.Now().Format(time.RFC3339),
	}
}
