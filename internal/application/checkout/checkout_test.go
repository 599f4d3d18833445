package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/cart"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/checkout"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/storage"
)

type fakeOrders struct {
	promotions map[int64]entity.Promotion
	created    []dto.CreateOrderRequest
	err        error
	inFlight   func() // corre mientras el pedido está "en el servidor"
}

func (f *fakeOrders) CreateOrder(_ context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	if f.inFlight != nil {
		f.inFlight()
	}
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &entity.Order{ID: int64(len(f.created)), Total: in.Total, Status: in.Status}, nil
}

func (f *fakeOrders) Promotion(id int64) (entity.Promotion, bool) {
	p, ok := f.promotions[id]
	return p, ok
}

type fakeSession struct{ user *entity.User }

func (f fakeSession) CurrentUser() *entity.User { return f.user }

var fee = decimal.NewFromInt(5)

func customer() *entity.User {
	return &entity.User{ID: 7, Name: "Rosa", Role: entity.RoleUser, Addresses: []entity.Address{
		{ID: 1, Address: "Jr. Puno 123, Huancayo", Default: true},
	}}
}

func setup(t *testing.T, user *entity.User) (*checkout.Service, *cart.Manager, *fakeOrders) {
	t.Helper()
	c := cart.NewManager(storage.NewMemoryStore(), nil, nil)
	orders := &fakeOrders{promotions: map[int64]entity.Promotion{
		10: {ID: 10, Name: "Martes Burger", Discount: 20, Status: entity.PromoActive},
		11: {ID: 11, Name: "Navidad", Discount: 15, Status: entity.PromoActive},
		12: {ID: 12, Name: "Próxima", Discount: 30, Status: entity.PromoScheduled},
	}}
	return checkout.NewService(c, orders, fakeSession{user: user}, nil, fee, nil), c, orders
}

func TestCompute_DeliveryConPromocion(t *testing.T) {
	promo := &entity.Promotion{ID: 10, Discount: 20}
	q := checkout.Compute(decimal.NewFromInt(100), entity.OrderTypeDelivery, fee, promo)

	assert.Equal(t, "5", q.DeliveryFee.String())
	assert.Equal(t, "20", q.Discount.String())
	assert.Equal(t, "85", q.Total.String())
}

func TestCompute_DeliverySinPromocion(t *testing.T) {
	q := checkout.Compute(decimal.NewFromInt(100), entity.OrderTypeDelivery, fee, nil)
	assert.True(t, q.Discount.IsZero())
	assert.Equal(t, "105", q.Total.String())
}

func TestCompute_SalonSinRecargo(t *testing.T) {
	q := checkout.Compute(decimal.NewFromInt(100), entity.OrderTypeDineIn, fee, nil)
	assert.True(t, q.DeliveryFee.IsZero())
	assert.Equal(t, "100", q.Total.String())
}

func TestQuote_UsaElCarritoActual(t *testing.T) {
	svc, c, _ := setup(t, customer())
	ctx := context.Background()
	c.AddItem(ctx, entity.Product{ID: 1, Name: "Clásica", Price: decimal.NewFromInt(25)}, 4)

	_, err := svc.SelectPromotion(10)
	require.NoError(t, err)

	q := svc.Quote("Delivery")
	assert.Equal(t, "100", q.Subtotal.String())
	assert.Equal(t, "85", q.Total.String())
	require.NotNil(t, q.AppliedPromotion)
	assert.Equal(t, int64(10), q.AppliedPromotion.ID)
}

func TestSelectPromotion_UnaALaVezYAlternar(t *testing.T) {
	svc, _, _ := setup(t, customer())

	_, err := svc.SelectPromotion(10)
	require.NoError(t, err)
	p, err := svc.SelectPromotion(11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID, "la segunda reemplaza a la primera")
	assert.Equal(t, int64(11), svc.AppliedPromotion().ID)

	p, err = svc.SelectPromotion(11)
	require.NoError(t, err)
	assert.Nil(t, p, "elegir la misma la quita")
	assert.Nil(t, svc.AppliedPromotion())
}

func TestSelectPromotion_SoloActivas(t *testing.T) {
	svc, _, _ := setup(t, customer())

	_, err := svc.SelectPromotion(12)
	assert.ErrorIs(t, err, domain.ErrPromoInactive)
	_, err = svc.SelectPromotion(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidate_CarritoVacio(t *testing.T) {
	svc, _, _ := setup(t, customer())
	err := svc.Validate(customer(), dto.CheckoutRequest{Type: "Salón"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestValidate_DeliverySinDireccionExigeCampos(t *testing.T) {
	svc, c, _ := setup(t, customer())
	c.AddItem(context.Background(), entity.Product{ID: 1, Price: decimal.NewFromInt(10)}, 1)

	err := svc.Validate(customer(), dto.CheckoutRequest{Type: "Delivery", NewAddress: dto.AddressForm{Street: "  ", Reference: "casa azul"}})

	var fe *domain.FormError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "La calle es obligatoria", fe.Fields["street"])
	assert.Equal(t, "El número es obligatorio", fe.Fields["number"])
	assert.Equal(t, "Selecciona un distrito", fe.Fields["district"])
}

func TestValidate_DireccionGuardadaNoPideCampos(t *testing.T) {
	svc, c, _ := setup(t, customer())
	c.AddItem(context.Background(), entity.Product{ID: 1, Price: decimal.NewFromInt(10)}, 1)

	assert.NoError(t, svc.Validate(customer(), dto.CheckoutRequest{Type: "Delivery", AddressID: 1}))
	assert.Error(t, svc.Validate(customer(), dto.CheckoutRequest{Type: "Delivery", AddressID: 42}))
}

func TestConfirm_ArmaPedidoYVaciaCarrito(t *testing.T) {
	svc, c, orders := setup(t, customer())
	ctx := context.Background()
	c.AddItem(ctx, entity.Product{ID: 1, Name: "Clásica", Price: decimal.NewFromInt(25)}, 2)
	c.AddItem(ctx, entity.Product{ID: 2, Name: "Papas", Price: decimal.NewFromInt(50)}, 1)
	_, err := svc.SelectPromotion(10)
	require.NoError(t, err)

	order, err := svc.Confirm(ctx, dto.CheckoutRequest{
		Type:       "Delivery",
		NewAddress: dto.AddressForm{Street: "Av. Real", Number: "456", District: "El Tambo", Reference: "grifo"},
		Notes:      " sin cebolla ",
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	require.Len(t, orders.created, 1)
	in := orders.created[0]
	assert.Equal(t, int64(7), in.UserID)
	assert.Equal(t, entity.OrderTypeDelivery, in.Type)
	assert.Equal(t, checkout.TableDelivery, in.Table)
	assert.Equal(t, entity.StatusPending, in.Status)
	assert.Equal(t, checkout.DefaultPayment, in.PaymentMethod)
	assert.Equal(t, "Av. Real 456, El Tambo (Ref: grifo)", in.DeliveryAddress)
	assert.Equal(t, "sin cebolla", in.Notes)
	require.NotNil(t, in.AppliedPromo)
	assert.Equal(t, "Martes Burger (-20%)", *in.AppliedPromo)
	assert.Equal(t, "85", in.Total.String())
	require.Len(t, in.Items, 2)
	assert.Equal(t, 2, in.Items[0].Quantity)

	assert.True(t, c.IsEmpty())
	assert.Nil(t, svc.AppliedPromotion())
}

func TestConfirm_ConservaLoAgregadoDuranteElEnvio(t *testing.T) {
	svc, c, orders := setup(t, customer())
	ctx := context.Background()
	c.AddItem(ctx, entity.Product{ID: 1, Name: "Clásica", Price: decimal.NewFromInt(25)}, 2)
	orders.inFlight = func() {
		c.AddItem(ctx, entity.Product{ID: 1, Name: "Clásica", Price: decimal.NewFromInt(25)}, 1)
		c.AddItem(ctx, entity.Product{ID: 3, Name: "Inka Cola", Price: decimal.NewFromInt(5)}, 1)
	}

	_, err := svc.Confirm(ctx, dto.CheckoutRequest{Type: "Salón"})
	require.NoError(t, err)

	require.Len(t, orders.created[0].Items, 1)
	assert.Equal(t, 2, orders.created[0].Items[0].Quantity)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(3), lines[1].ProductID)
}

func TestConfirm_ParaRecoger(t *testing.T) {
	svc, c, orders := setup(t, customer())
	c.AddItem(context.Background(), entity.Product{ID: 1, Price: decimal.NewFromInt(30)}, 1)

	_, err := svc.Confirm(context.Background(), dto.CheckoutRequest{Type: "Salón", PaymentMethod: "Yape"})
	require.NoError(t, err)

	in := orders.created[0]
	assert.Equal(t, entity.OrderTypeDineIn, in.Type)
	assert.Equal(t, checkout.TablePickup, in.Table)
	assert.Equal(t, checkout.PickupAddress, in.DeliveryAddress)
	assert.Nil(t, in.AppliedPromo)
	assert.Equal(t, "30", in.Total.String())
}

func TestConfirm_FalloConservaCarritoYPromocion(t *testing.T) {
	svc, c, orders := setup(t, customer())
	c.AddItem(context.Background(), entity.Product{ID: 1, Price: decimal.NewFromInt(30)}, 1)
	_, err := svc.SelectPromotion(11)
	require.NoError(t, err)
	orders.err = &domain.APIError{Kind: domain.KindServer, Status: 500}

	_, err = svc.Confirm(context.Background(), dto.CheckoutRequest{Type: "Delivery", AddressID: 1})

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 1, c.ItemCount())
	assert.NotNil(t, svc.AppliedPromotion())
}

func TestConfirm_SinSesion(t *testing.T) {
	svc, c, _ := setup(t, nil)
	c.AddItem(context.Background(), entity.Product{ID: 1, Price: decimal.NewFromInt(30)}, 1)

	_, err := svc.Confirm(context.Background(), dto.CheckoutRequest{Type: "Salón"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestConfirm_PromocionDesactivadaDespuesDeElegirla(t *testing.T) {
	svc, c, orders := setup(t, customer())
	c.AddItem(context.Background(), entity.Product{ID: 1, Price: decimal.NewFromInt(30)}, 1)
	_, err := svc.SelectPromotion(10)
	require.NoError(t, err)

	p := orders.promotions[10]
	p.Status = entity.PromoScheduled
	orders.promotions[10] = p

	_, err = svc.Confirm(context.Background(), dto.CheckoutRequest{Type: "Salón"})
	assert.ErrorIs(t, err, domain.ErrPromoInactive)
	assert.Empty(t, orders.created)
	assert.Nil(t, svc.AppliedPromotion())
	assert.Equal(t, 1, c.ItemCount())
}
