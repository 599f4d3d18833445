package store

import (
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// Todas las lecturas devuelven copias: el llamador puede modificarlas sin
// afectar a la caché.

// MenuProducts productos disponibles, filtrados por categoría y búsqueda.
func (s *CollectionStore) MenuProducts(f dto.MenuFilter) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.Product{}
	for _, p := range s.products {
		if p.IsAvailable() && p.MatchesCategory(f.Category) && p.MatchesSearch(f.Search) {
			out = append(out, p)
		}
	}
	return out
}

// InventoryProducts todos los productos, disponibles o no.
func (s *CollectionStore) InventoryProducts() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product{}, s.products...)
}

// Product busca en la colección completa.
func (s *CollectionStore) Product(id int64) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.products, id, productID); i >= 0 {
		return s.products[i], true
	}
	return entity.Product{}, false
}

// Promotions todas las promociones (vista del administrador).
func (s *CollectionStore) Promotions() []entity.Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Promotion{}, s.promotions...)
}

// ActivePromotions promociones visibles para el cliente.
func (s *CollectionStore) ActivePromotions() []entity.Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.Promotion{}
	for _, p := range s.promotions {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

func (s *CollectionStore) Promotion(id int64) (entity.Promotion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.promotions, id, promotionID); i >= 0 {
		return s.promotions[i], true
	}
	return entity.Promotion{}, false
}

// Orders pedidos cargados, filtrados por estado ("" o "all" = todos) y búsqueda.
func (s *CollectionStore) Orders(f dto.OrderFilter) []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.Order{}
	for _, o := range s.orderList {
		if f.Status != "" && f.Status != "all" && string(o.Status) != f.Status {
			continue
		}
		if !o.MatchesSearch(f.Search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *CollectionStore) Order(id int64) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.orderList, id, orderID); i >= 0 {
		return s.orderList[i], true
	}
	return entity.Order{}, false
}

// ActiveOrdersCount pedidos aún no entregados.
func (s *CollectionStore) ActiveOrdersCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, o := range s.orderList {
		if o.IsActive() {
			n++
		}
	}
	return n
}

// Users clientes derivados de los pedidos cargados.
func (s *CollectionStore) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.User{}, s.users...)
}

// ── helpers por id ────────────────────────────────────────────────────────────

func productID(p entity.Product) int64     { return p.ID }
func promotionID(p entity.Promotion) int64 { return p.ID }
func orderID(o entity.Order) int64         { return o.ID }

func indexOf[T any](items []T, id int64, key func(T) int64) int {
	for i := range items {
		if key(items[i]) == id {
			return i
		}
	}
	return -1
}

// prepend inserta v al inicio sin modificar el slice original.
func prepend[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}

// replaceAt devuelve una copia con items[i] = v.
func replaceAt[T any](items []T, i int, v T) []T {
	out := append([]T{}, items...)
	out[i] = v
	return out
}

// removeAt devuelve una copia sin items[i].
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
