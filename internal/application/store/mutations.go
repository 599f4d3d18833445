package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// Todas las mutaciones siguen la misma regla: primero el servidor confirma,
// después se aplica el cambio local. Si el servidor falla la caché no se toca.

// ── Pedidos ───────────────────────────────────────────────────────────────────

// CreateOrder registra el pedido del checkout y lo inserta al inicio.
func (s *CollectionStore) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	created, err := s.orders.CreateOrder(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("crear pedido: %w", err)
	}
	if created == nil {
		created = orderFromRequest(in)
	}
	s.insertOrder(*created)
	s.log.Info().Int64("order_id", created.ID).Str("total", created.Total.StringFixed(2)).Msg("pedido creado")
	return created, nil
}

// CreateManualOrder registra un pedido cargado por el administrador.
func (s *CollectionStore) CreateManualOrder(ctx context.Context, in dto.ManualOrderRequest) (*entity.Order, error) {
	created, err := s.orders.CreateManualOrder(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("crear pedido manual: %w", err)
	}
	if created == nil {
		created = manualOrderFromRequest(in)
	}
	s.insertOrder(*created)
	return created, nil
}

func (s *CollectionStore) insertOrder(o entity.Order) {
	s.mu.Lock()
	s.orderList = prepend(s.orderList, o)
	s.users = deriveUsers(s.orderList)
	s.mu.Unlock()
}

// UpdateOrderStatus fija el estado. Si el pedido ya no existe en el servidor
// se quita de la caché, se recarga la colección con la última consulta y se
// devuelve un error que cumple errors.Is(err, domain.ErrNotFound).
func (s *CollectionStore) UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidStatus)
	}
	updated, err := s.orders.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.dropOrder(id)
			s.refreshOrders(ctx)
		}
		return nil, fmt.Errorf("actualizar pedido %d: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.orderList, id, orderID)
	if updated == nil {
		if i < 0 {
			return &entity.Order{ID: id, Status: status}, nil
		}
		o := s.orderList[i]
		o.Status = status
		updated = &o
	}
	if i >= 0 {
		s.orderList = replaceAt(s.orderList, i, *updated)
	}
	return updated, nil
}

// AdvanceOrder mueve el pedido al siguiente estado del flujo
// pending → preparing → ready → delivered. Sobre un pedido entregado no hace nada.
func (s *CollectionStore) AdvanceOrder(ctx context.Context, id int64) (*entity.Order, error) {
	current, ok := s.Order(id)
	if !ok {
		return nil, fmt.Errorf("pedido %d: %w", id, domain.ErrNotFound)
	}
	next, ok := current.Status.Next()
	if !ok {
		return &current, nil
	}
	return s.UpdateOrderStatus(ctx, id, next)
}

// DeleteOrder elimina el pedido. Un 404 se toma como ya eliminado.
func (s *CollectionStore) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orders.DeleteOrder(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("eliminar pedido %d: %w", id, err)
	}
	s.dropOrder(id)
	return nil
}

func (s *CollectionStore) dropOrder(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.orderList, id, orderID); i >= 0 {
		s.orderList = removeAt(s.orderList, i)
		s.users = deriveUsers(s.orderList)
	}
}

// ── Promociones ───────────────────────────────────────────────────────────────

// CreatePromotion crea la promoción y la inserta al inicio.
func (s *CollectionStore) CreatePromotion(ctx context.Context, in dto.PromotionRequest) (*entity.Promotion, error) {
	if in.Status == "" {
		in.Status = entity.PromoActive
	}
	created, err := s.catalog.CreatePromotion(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("crear promoción: %w", err)
	}
	if created == nil {
		p := applyPromotion(entity.Promotion{}, in)
		created = &p
	}
	s.mu.Lock()
	s.promotions = prepend(s.promotions, *created)
	s.mu.Unlock()
	return created, nil
}

// UpdatePromotion edita la promoción.
func (s *CollectionStore) UpdatePromotion(ctx context.Context, id int64, in dto.PromotionRequest) (*entity.Promotion, error) {
	updated, err := s.catalog.UpdatePromotion(ctx, id, in)
	if err != nil {
		return nil, s.promotionFailed(ctx, id, "actualizar", err)
	}
	return s.patchPromotion(id, updated, func(p entity.Promotion) entity.Promotion {
		return applyPromotion(p, in)
	}), nil
}

// TogglePromotion alterna active ↔ scheduled.
func (s *CollectionStore) TogglePromotion(ctx context.Context, id int64) (*entity.Promotion, error) {
	current, ok := s.Promotion(id)
	if !ok {
		return nil, fmt.Errorf("promoción %d: %w", id, domain.ErrNotFound)
	}
	status := current.ToggledStatus()
	updated, err := s.catalog.SetPromotionStatus(ctx, id, status)
	if err != nil {
		return nil, s.promotionFailed(ctx, id, "cambiar estado de", err)
	}
	return s.patchPromotion(id, updated, func(p entity.Promotion) entity.Promotion {
		p.Status = status
		return p
	}), nil
}

// DeletePromotion elimina la promoción. Un 404 se toma como ya eliminada.
func (s *CollectionStore) DeletePromotion(ctx context.Context, id int64) error {
	if err := s.catalog.DeletePromotion(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("eliminar promoción %d: %w", id, err)
	}
	s.dropPromotion(id)
	return nil
}

func (s *CollectionStore) promotionFailed(ctx context.Context, id int64, verb string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		s.dropPromotion(id)
		s.refreshPromotions(ctx)
	}
	return fmt.Errorf("%s promoción %d: %w", verb, id, err)
}

// patchPromotion aplica la entidad devuelta por el servidor o, si no vino, el
// cambio local equivalente.
func (s *CollectionStore) patchPromotion(id int64, fromServer *entity.Promotion, local func(entity.Promotion) entity.Promotion) *entity.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.promotions, id, promotionID)
	if i < 0 {
		return fromServer
	}
	next := local(s.promotions[i])
	if fromServer != nil {
		next = *fromServer
	}
	s.promotions = replaceAt(s.promotions, i, next)
	return &next
}

func (s *CollectionStore) dropPromotion(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.promotions, id, promotionID); i >= 0 {
		s.promotions = removeAt(s.promotions, i)
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// UpdateProduct actualiza precio, stock o disponibilidad. El cambio se refleja en
// carta e inventario porque ambas vistas salen de la misma colección.
func (s *CollectionStore) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	updated, err := s.catalog.UpdateProduct(ctx, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.mu.Lock()
			if i := indexOf(s.products, id, productID); i >= 0 {
				s.products = removeAt(s.products, i)
			}
			s.mu.Unlock()
			s.refreshProducts(ctx)
		}
		return nil, fmt.Errorf("actualizar producto %d: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.products, id, productID)
	if i < 0 {
		return updated, nil
	}
	next := applyProduct(s.products[i], in)
	if updated != nil {
		next = *updated
	}
	s.products = replaceAt(s.products, i, next)
	return &next, nil
}

// ToggleProductAvailability muestra u oculta el producto en la carta.
func (s *CollectionStore) ToggleProductAvailability(ctx context.Context, id int64) (*entity.Product, error) {
	current, ok := s.Product(id)
	if !ok {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	available := !current.IsAvailable()
	return s.UpdateProduct(ctx, id, dto.UpdateProductRequest{Available: &available})
}
