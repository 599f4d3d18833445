package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/store"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

func seededAPI() *fakeAPI {
	f := newFakeAPI()
	f.products = []entity.Product{
		{ID: 1, Name: "Clásica", Category: entity.CategoryBurgers, Price: decimal.NewFromInt(12), Available: true},
		{ID: 2, Name: "Papas Fritas", Category: entity.CategorySides, Price: decimal.NewFromInt(6), Available: true},
		{ID: 3, Name: "Royal", Category: entity.CategoryBurgers, Price: decimal.NewFromInt(18), Available: false},
	}
	f.promotions = []entity.Promotion{
		{ID: 10, Name: "Martes 2x1", Discount: 20, Status: entity.PromoActive},
		{ID: 11, Name: "Navidad", Discount: 15, Status: entity.PromoScheduled},
	}
	f.orders = []entity.Order{
		{ID: 50, UserID: 7, Status: entity.StatusPending, Table: "Mesa 4", User: &entity.User{ID: 7, Name: "Rosa"}},
		{ID: 51, UserID: 8, Status: entity.StatusDelivered, Table: "Delivery", User: &entity.User{ID: 8, Name: "Luis"}},
		{ID: 52, UserID: 7, Status: entity.StatusReady, Table: "Mesa 1", User: &entity.User{ID: 7, Name: "Rosa"}},
	}
	return f
}

func loaded(t *testing.T, f *fakeAPI) *store.CollectionStore {
	t.Helper()
	s := store.NewCollectionStore(f, f, nil, nil)
	report := s.LoadAll(context.Background())
	require.Empty(t, report.Failed())
	require.NoError(t, s.LoadAllOrders(context.Background()))
	return s
}

func TestLoadAll_DerivaCartaEInventario(t *testing.T) {
	s := loaded(t, seededAPI())

	assert.Len(t, s.InventoryProducts(), 3)
	menu := s.MenuProducts(dto.MenuFilter{})
	assert.Len(t, menu, 2, "la carta solo muestra disponibles")
	assert.Len(t, s.ActivePromotions(), 1)
	assert.Len(t, s.Promotions(), 2)
}

func TestLoadAll_FallaPromocionesNoBloqueaProductos(t *testing.T) {
	f := seededAPI()
	s := store.NewCollectionStore(f, f, nil, nil)
	require.Empty(t, s.LoadAll(context.Background()).Failed())
	require.Len(t, s.Promotions(), 2)

	f.promotionsErr = &domain.APIError{Kind: domain.KindServer, Status: 500}
	var report store.LoadReport
	assert.NotPanics(t, func() { report = s.LoadAll(context.Background()) })

	assert.Empty(t, s.Promotions(), "no se conservan datos viejos")
	assert.NotNil(t, s.Promotions())
	assert.Len(t, s.InventoryProducts(), 3)
	assert.Equal(t, []string{store.CollectionPromotions}, report.Failed())
	assert.Error(t, s.LastLoad().Promotions)
	assert.NoError(t, s.LastLoad().Products)
}

func TestLoadAll_FallaProductosVaciaAmbasVistas(t *testing.T) {
	f := seededAPI()
	f.productsErr = &domain.APIError{Kind: domain.KindNetwork}
	s := store.NewCollectionStore(f, f, nil, nil)

	report := s.LoadAll(context.Background())

	assert.ElementsMatch(t, []string{store.CollectionMenu, store.CollectionInventory}, report.Failed())
	assert.Empty(t, s.MenuProducts(dto.MenuFilter{}))
	assert.Empty(t, s.InventoryProducts())
	assert.Len(t, s.Promotions(), 2)
}

func TestMenuProducts_FiltroAcompanamientosYBusqueda(t *testing.T) {
	s := loaded(t, seededAPI())

	sides := s.MenuProducts(dto.MenuFilter{Category: entity.CategoryLabelSides})
	require.Len(t, sides, 1)
	assert.Equal(t, "Papas Fritas", sides[0].Name)

	found := s.MenuProducts(dto.MenuFilter{Search: "CLÁS"})
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), found[0].ID)
}

func TestLoadAllOrders_DerivaClientesSinRepetir(t *testing.T) {
	s := loaded(t, seededAPI())

	users := s.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "Rosa", users[0].Name)
	assert.Equal(t, "Luis", users[1].Name)
	assert.Equal(t, 2, s.ActiveOrdersCount())
}

func TestLoadOrdersFor_FalloDejaColeccionVacia(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	require.NotEmpty(t, s.Orders(dto.OrderFilter{}))

	f.ordersErr = &domain.APIError{Kind: domain.KindNetwork}
	err := s.LoadOrdersFor(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Empty(t, s.Orders(dto.OrderFilter{}))
	assert.Empty(t, s.Users())
}

func TestOrders_FiltroPorEstadoYBusqueda(t *testing.T) {
	s := loaded(t, seededAPI())

	assert.Len(t, s.Orders(dto.OrderFilter{Status: "all"}), 3)
	assert.Len(t, s.Orders(dto.OrderFilter{Status: string(entity.StatusPending)}), 1)
	got := s.Orders(dto.OrderFilter{Search: "mesa 1"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(52), got[0].ID)
}

func TestAdvanceOrder_SigueElFlujoCompleto(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	ctx := context.Background()

	want := []entity.OrderStatus{entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered, entity.StatusDelivered}
	for _, w := range want {
		o, err := s.AdvanceOrder(ctx, 50)
		require.NoError(t, err)
		assert.Equal(t, w, o.Status)
	}

	got, _ := s.Order(50)
	assert.Equal(t, entity.StatusDelivered, got.Status)
	assert.Equal(t, []entity.OrderStatus{entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered}, f.statusCalls,
		"avanzar un pedido entregado no llama al servidor")
}

func TestAdvanceOrder_FalloDelServidorNoModificaCache(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	f.updateErr = &domain.APIError{Kind: domain.KindServer, Status: 500}

	_, err := s.AdvanceOrder(context.Background(), 50)
	require.Error(t, err)

	got, _ := s.Order(50)
	assert.Equal(t, entity.StatusPending, got.Status)
}

func TestUpdateOrderStatus_EstadoInvalido(t *testing.T) {
	s := loaded(t, seededAPI())
	_, err := s.UpdateOrderStatus(context.Background(), 50, "cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdateOrderStatus_404QuitaPedidoObsoleto(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	// otro operador eliminó el 52 y entregó el 50
	f.orders = []entity.Order{
		{ID: 50, UserID: 7, Status: entity.StatusDelivered, User: &entity.User{ID: 7, Name: "Rosa"}},
		{ID: 51, UserID: 8, Status: entity.StatusDelivered, User: &entity.User{ID: 8, Name: "Luis"}},
	}

	_, err := s.UpdateOrderStatus(context.Background(), 52, entity.StatusDelivered)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, ok := s.Order(52)
	assert.False(t, ok)
	o, ok := s.Order(50)
	require.True(t, ok)
	assert.Equal(t, entity.StatusDelivered, o.Status, "la colección se recarga del servidor")
}

func TestUpdateOrderStatus_404RecargaSoloPedidosDelUsuario(t *testing.T) {
	f := seededAPI()
	s := store.NewCollectionStore(f, f, nil, nil)
	require.NoError(t, s.LoadOrdersFor(context.Background(), 7))
	f.orders = f.orders[:2]

	_, err := s.UpdateOrderStatus(context.Background(), 52, entity.StatusDelivered)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	orders := s.Orders(dto.OrderFilter{})
	require.Len(t, orders, 1)
	assert.Equal(t, int64(50), orders[0].ID)
}

func TestUpdateOrderStatus_404ConRecargaFallidaConservaCache(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	f.updateErr = notFound()
	f.ordersErr = &domain.APIError{Kind: domain.KindNetwork, Err: errors.New("timeout")}

	_, err := s.UpdateOrderStatus(context.Background(), 52, entity.StatusDelivered)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	orders := s.Orders(dto.OrderFilter{})
	assert.Len(t, orders, 2, "solo se quita el pedido obsoleto")
	assert.Len(t, s.Users(), 2)
}

func TestUpdateOrderStatus_404TrasCerrarSesionNoRecarga(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	s.ResetOrders()

	_, err := s.UpdateOrderStatus(context.Background(), 52, entity.StatusDelivered)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.Orders(dto.OrderFilter{}))
}

func TestDeleteOrder_404SeTomaComoEliminado(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	f.deleteErr = notFound()

	require.NoError(t, s.DeleteOrder(context.Background(), 51))
	_, ok := s.Order(51)
	assert.False(t, ok)
	assert.Len(t, s.Users(), 1, "Luis ya no tiene pedidos")
}

func TestDeleteOrder_ErrorDeRedConservaPedido(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	f.deleteErr = &domain.APIError{Kind: domain.KindNetwork, Err: errors.New("timeout")}

	err := s.DeleteOrder(context.Background(), 51)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	_, ok := s.Order(51)
	assert.True(t, ok)
}

func TestCreateOrder_SeInsertaAlInicio(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)

	o, err := s.CreateOrder(context.Background(), dto.CreateOrderRequest{UserID: 7, Type: entity.OrderTypeDelivery, Status: entity.StatusPending, Total: decimal.NewFromInt(85)})
	require.NoError(t, err)

	orders := s.Orders(dto.OrderFilter{})
	require.Len(t, orders, 4)
	assert.Equal(t, o.ID, orders[0].ID)
}

func TestCreateOrder_FalloNoInserta(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	f.createErr = &domain.APIError{Kind: domain.KindValidation, Status: 422, Fields: map[string]string{"items": "requerido"}}

	_, err := s.CreateOrder(context.Background(), dto.CreateOrderRequest{UserID: 7})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, s.Orders(dto.OrderFilter{}), 3)
}

func TestCreateManualOrder_SinEntidadArmaPedidoLocal(t *testing.T) {
	s := loaded(t, seededAPI())

	o, err := s.CreateManualOrder(context.Background(), dto.ManualOrderRequest{
		Table: "Mesa 9", Type: entity.OrderTypeDineIn, Items: "2 Clásicas, 1 Inka", Total: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Equal(t, "2 Clásicas, 1 Inka x1", o.Items.Summary())
	assert.Equal(t, "Mesa 9", s.Orders(dto.OrderFilter{})[0].Table)
}

func TestTogglePromotion_AplicaCambioLocalSiNoHayEntidad(t *testing.T) {
	s := loaded(t, seededAPI())

	p, err := s.TogglePromotion(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, entity.PromoScheduled, p.Status)
	assert.Empty(t, s.ActivePromotions())
}

func TestCreateAndDeletePromotion(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	ctx := context.Background()

	p, err := s.CreatePromotion(ctx, dto.PromotionRequest{Name: "Combo Familiar", Description: "4 burgers", Discount: 10, ValidUntil: "2026-12-31"})
	require.NoError(t, err)
	assert.Equal(t, entity.PromoActive, p.Status, "por defecto se crea activa")
	assert.Equal(t, p.ID, s.Promotions()[0].ID)

	f.deleteErr = notFound()
	require.NoError(t, s.DeletePromotion(ctx, p.ID))
	_, ok := s.Promotion(p.ID)
	assert.False(t, ok)
}

func TestUpdatePromotion_FalloNoModifica(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	f.updateErr = &domain.APIError{Kind: domain.KindServer, Status: 500}

	_, err := s.UpdatePromotion(context.Background(), 10, dto.PromotionRequest{Name: "Otro", Discount: 50})
	require.Error(t, err)
	p, _ := s.Promotion(10)
	assert.Equal(t, "Martes 2x1", p.Name)
}

func TestUpdateProduct_ReflejaEnCartaEInventario(t *testing.T) {
	f := seededAPI()
	f.returnNothing = true
	s := loaded(t, f)

	p, err := s.ToggleProductAvailability(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, p.IsAvailable())
	assert.Len(t, s.MenuProducts(dto.MenuFilter{}), 3)

	price := decimal.RequireFromString("13.50")
	_, err = s.UpdateProduct(context.Background(), 1, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	got, _ := s.Product(1)
	assert.True(t, got.Price.Equal(price))
}

func TestResetOrders(t *testing.T) {
	s := loaded(t, seededAPI())
	s.ResetOrders()
	assert.Empty(t, s.Orders(dto.OrderFilter{}))
	assert.Empty(t, s.Users())
}

func TestUpdatePromotion_404RecargaPromociones(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	f.updateErr = notFound()
	f.promotions = []entity.Promotion{
		{ID: 11, Name: "Navidad", Discount: 25, Status: entity.PromoActive},
	}

	_, err := s.UpdatePromotion(context.Background(), 10, dto.PromotionRequest{Name: "Otro", Discount: 50})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, ok := s.Promotion(10)
	assert.False(t, ok)
	p, ok := s.Promotion(11)
	require.True(t, ok)
	assert.Equal(t, entity.Percent(25), p.Discount)
	assert.Equal(t, entity.PromoActive, p.Status)
}

func TestUpdateProduct_404RecargaProductos(t *testing.T) {
	f := seededAPI()
	s := loaded(t, f)
	f.products = []entity.Product{
		{ID: 1, Name: "Clásica", Category: entity.CategoryBurgers, Price: decimal.NewFromInt(14), Available: true},
		{ID: 2, Name: "Papas Fritas", Category: entity.CategorySides, Price: decimal.NewFromInt(6), Available: true},
	}

	price := decimal.NewFromInt(20)
	_, err := s.UpdateProduct(context.Background(), 3, dto.UpdateProductRequest{Price: &price})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, ok := s.Product(3)
	assert.False(t, ok)
	got, ok := s.Product(1)
	require.True(t, ok)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(14)))
}
