package store_test

import (
	"context"
	"sync"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// fakeAPI implementa ports.CatalogAPI y ports.OrderAPI en memoria. Los campos
// *Err permiten simular fallos por operación.
type fakeAPI struct {
	mu sync.Mutex

	products   []entity.Product
	promotions []entity.Promotion
	orders     []entity.Order
	nextID     int64

	productsErr   error
	promotionsErr error
	ordersErr     error
	updateErr     error
	deleteErr     error
	createErr     error
	returnNothing bool // simula respuestas 204 en escrituras

	statusCalls []entity.OrderStatus
}

func newFakeAPI() *fakeAPI { return &fakeAPI{nextID: 100} }

func notFound() error { return &domain.APIError{Kind: domain.KindNotFound, Status: 404} }

func (f *fakeAPI) ListProducts(context.Context) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return append([]entity.Product{}, f.products...), nil
}

func (f *fakeAPI) UpdateProduct(_ context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			if in.Price != nil {
				f.products[i].Price = *in.Price
			}
			if in.Available != nil {
				f.products[i].Available = entity.Flag(*in.Available)
			}
			if f.returnNothing {
				return nil, nil
			}
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, notFound()
}

func (f *fakeAPI) ListPromotions(context.Context) ([]entity.Promotion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.promotionsErr != nil {
		return nil, f.promotionsErr
	}
	return append([]entity.Promotion{}, f.promotions...), nil
}

func (f *fakeAPI) CreatePromotion(_ context.Context, in dto.PromotionRequest) (*entity.Promotion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	p := entity.Promotion{ID: f.nextID, Name: in.Name, Discount: entity.Percent(in.Discount), Status: in.Status, ValidUntil: in.ValidUntil}
	f.promotions = append(f.promotions, p)
	return &p, nil
}

func (f *fakeAPI) UpdatePromotion(_ context.Context, id int64, in dto.PromotionRequest) (*entity.Promotion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.returnNothing {
		return nil, nil
	}
	return &entity.Promotion{ID: id, Name: in.Name, Discount: entity.Percent(in.Discount), Status: in.Status}, nil
}

func (f *fakeAPI) SetPromotionStatus(_ context.Context, id int64, status string) (*entity.Promotion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return nil, nil
}

func (f *fakeAPI) DeletePromotion(context.Context, int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteErr
}

func (f *fakeAPI) ListOrders(context.Context) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return append([]entity.Order{}, f.orders...), nil
}

func (f *fakeAPI) ListUserOrders(_ context.Context, userID int64) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	out := []entity.Order{}
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateOrder(_ context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	o := entity.Order{ID: f.nextID, UserID: in.UserID, Type: in.Type, Total: in.Total, Status: in.Status}
	f.orders = append([]entity.Order{o}, f.orders...)
	return &o, nil
}

func (f *fakeAPI) CreateManualOrder(_ context.Context, in dto.ManualOrderRequest) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	return nil, nil
}

func (f *fakeAPI) UpdateOrderStatus(_ context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls = append(f.statusCalls, status)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, notFound()
}

func (f *fakeAPI) DeleteOrder(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteErr
}
