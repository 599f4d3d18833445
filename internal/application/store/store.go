// Package store mantiene en memoria las colecciones que vienen del backend
// (productos, promociones, pedidos y clientes derivados). El servidor es el
// registro durable; aquí solo hay una caché que se modifica después de que el
// servidor confirma cada cambio.
package store

import (
	"context"
	"sync"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/logger"
)

// Nombres de colección usados en el reporte de carga y en métricas.
const (
	CollectionMenu       = "menu_products"
	CollectionInventory  = "inventory_products"
	CollectionPromotions = "promotions"
	CollectionOrders     = "orders"
)

// CollectionStore caché de colecciones. Seguro para uso concurrente; ante dos
// mutaciones simultáneas sobre la misma entidad gana la última en llegar.
type CollectionStore struct {
	catalog ports.CatalogAPI
	orders  ports.OrderAPI
	log     *logger.Logger
	obs     ports.Observer

	mu         sync.RWMutex
	products   []entity.Product // colección única; carta e inventario son vistas
	promotions []entity.Promotion
	orderList  []entity.Order
	users      []entity.User
	lastLoad   LoadReport

	// fetchOrders repite la última carga de pedidos (todos o los de un usuario);
	// nil si no hubo ninguna desde el último cierre de sesión.
	fetchOrders func(context.Context) ([]entity.Order, error)
}

// NewCollectionStore construye el store vacío.
func NewCollectionStore(catalog ports.CatalogAPI, orders ports.OrderAPI, log *logger.Logger, obs ports.Observer) *CollectionStore {
	if log == nil {
		log = logger.Nop()
	}
	if obs == nil {
		obs = ports.NopObserver{}
	}
	return &CollectionStore{
		catalog:    catalog,
		orders:     orders,
		log:        log.Named("store"),
		obs:        obs,
		products:   []entity.Product{},
		promotions: []entity.Promotion{},
		orderList:  []entity.Order{},
		users:      []entity.User{},
	}
}

// ── Carga ─────────────────────────────────────────────────────────────────────

// LoadReport resultado por colección de la última carga. nil = cargada.
type LoadReport struct {
	Products   error `json:"-"`
	Promotions error `json:"-"`
}

// Failed lista las colecciones que no se pudieron cargar.
func (r LoadReport) Failed() []string {
	var out []string
	if r.Products != nil {
		out = append(out, CollectionMenu, CollectionInventory)
	}
	if r.Promotions != nil {
		out = append(out, CollectionPromotions)
	}
	return out
}

// LoadAll trae productos y promociones en paralelo. Cada carga es independiente:
// si una falla su colección queda vacía y la otra se aplica igual. Nunca
// devuelve error; el detalle queda en el LoadReport. Los pedidos no se cargan aquí.
func (s *CollectionStore) LoadAll(ctx context.Context) LoadReport {
	type productsResult struct {
		items []entity.Product
		err   error
	}
	type promotionsResult struct {
		items []entity.Promotion
		err   error
	}

	productsCh := make(chan productsResult, 1)
	promotionsCh := make(chan promotionsResult, 1)

	go func() {
		items, err := s.catalog.ListProducts(ctx)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := s.catalog.ListPromotions(ctx)
		promotionsCh <- promotionsResult{items, err}
	}()

	products := <-productsCh
	promotions := <-promotionsCh

	report := LoadReport{Products: products.err, Promotions: promotions.err}
	if products.err != nil || products.items == nil {
		products.items = []entity.Product{}
	}
	if promotions.err != nil || promotions.items == nil {
		promotions.items = []entity.Promotion{}
	}

	s.mu.Lock()
	s.products = products.items
	s.promotions = promotions.items
	s.lastLoad = report
	s.mu.Unlock()

	if report.Products != nil {
		s.log.Warn().Err(report.Products).Msg("no se pudo cargar productos")
		s.obs.LoadFailed(CollectionMenu)
		s.obs.LoadFailed(CollectionInventory)
	}
	if report.Promotions != nil {
		s.log.Warn().Err(report.Promotions).Msg("no se pudo cargar promociones")
		s.obs.LoadFailed(CollectionPromotions)
	}
	s.log.Debug().Int("products", len(products.items)).Int("promotions", len(promotions.items)).Msg("colecciones cargadas")
	return report
}

// LastLoad reporte de la última llamada a LoadAll.
func (s *CollectionStore) LastLoad() LoadReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastLoad
}

// LoadOrdersFor reemplaza los pedidos por los del usuario indicado.
func (s *CollectionStore) LoadOrdersFor(ctx context.Context, userID int64) error {
	return s.loadOrders(ctx, func(ctx context.Context) ([]entity.Order, error) {
		return s.orders.ListUserOrders(ctx, userID)
	})
}

// LoadAllOrders reemplaza los pedidos por todos los del sistema (administrador)
// y recalcula la lista de clientes a partir de ellos.
func (s *CollectionStore) LoadAllOrders(ctx context.Context) error {
	return s.loadOrders(ctx, s.orders.ListOrders)
}

func (s *CollectionStore) loadOrders(ctx context.Context, fetch func(context.Context) ([]entity.Order, error)) error {
	s.mu.Lock()
	s.fetchOrders = fetch
	s.mu.Unlock()
	orders, err := fetch(ctx)
	return s.replaceOrders(orders, err)
}

func (s *CollectionStore) replaceOrders(orders []entity.Order, err error) error {
	if err != nil || orders == nil {
		orders = []entity.Order{}
	}
	users := deriveUsers(orders)

	s.mu.Lock()
	s.orderList = orders
	s.users = users
	s.mu.Unlock()

	if err != nil {
		s.obs.LoadFailed(CollectionOrders)
		s.log.Warn().Err(err).Msg("no se pudo cargar pedidos")
		return err
	}
	return nil
}

// ResetOrders vacía pedidos y clientes (al cerrar sesión).
func (s *CollectionStore) ResetOrders() {
	s.mu.Lock()
	s.orderList = []entity.Order{}
	s.users = []entity.User{}
	s.fetchOrders = nil
	s.mu.Unlock()
}

// ── Reconciliación ────────────────────────────────────────────────────────────

// Un 404 al editar indica que la caché quedó atrás del servidor. Estas recargas
// solo reemplazan la colección si el servidor responde; si falla, la caché
// local (ya sin la entidad obsoleta) se conserva.

func (s *CollectionStore) refreshProducts(ctx context.Context) {
	items, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo recargar productos tras un 404")
		return
	}
	if items == nil {
		items = []entity.Product{}
	}
	s.mu.Lock()
	s.products = items
	s.mu.Unlock()
}

func (s *CollectionStore) refreshPromotions(ctx context.Context) {
	items, err := s.catalog.ListPromotions(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo recargar promociones tras un 404")
		return
	}
	if items == nil {
		items = []entity.Promotion{}
	}
	s.mu.Lock()
	s.promotions = items
	s.mu.Unlock()
}

func (s *CollectionStore) refreshOrders(ctx context.Context) {
	s.mu.RLock()
	fetch := s.fetchOrders
	s.mu.RUnlock()
	if fetch == nil {
		return
	}
	orders, err := fetch(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo recargar pedidos tras un 404")
		return
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	users := deriveUsers(orders)
	s.mu.Lock()
	s.orderList = orders
	s.users = users
	s.mu.Unlock()
}

// deriveUsers clientes distintos vistos en los pedidos, en orden de aparición.
func deriveUsers(orders []entity.Order) []entity.User {
	seen := make(map[int64]bool)
	users := []entity.User{}
	for _, o := range orders {
		if o.User == nil || seen[o.User.ID] {
			continue
		}
		seen[o.User.ID] = true
		users = append(users, *o.User)
	}
	return users
}
