package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/validation"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/logger"
)

// Valores que el backend guarda en el pedido.
const (
	PickupAddress  = "Para recoger en local"
	TableDelivery  = "Delivery"
	TablePickup    = "Para Recoger"
	DefaultPayment = "Efectivo"
)

// Districts distritos con cobertura de delivery.
var Districts = []string{"Huancayo", "El Tambo", "Chilca", "Pilcomayo", "Huancan", "Sapallanga"}

// PaymentMethods medios de pago aceptados.
var PaymentMethods = []string{"Efectivo", "Tarjeta", "Yape", "Plin"}

// Cart lo que el checkout necesita del carrito.
type Cart interface {
	Lines() []entity.CartLine
	Total() decimal.Decimal
	IsEmpty() bool
	RemoveLines(ctx context.Context, submitted []entity.CartLine)
}

// Orders registra el pedido y resuelve promociones vigentes.
type Orders interface {
	CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error)
	Promotion(id int64) (entity.Promotion, bool)
}

// Session identidad del comprador.
type Session interface {
	CurrentUser() *entity.User
}

// Service orquesta el checkout: cotización, promoción elegida, validación y envío.
type Service struct {
	cart     Cart
	orders   Orders
	session  Session
	validate *validation.Validator
	fee      decimal.Decimal
	log      *logger.Logger

	mu      sync.RWMutex
	applied *entity.Promotion
}

// NewService construye el servicio. deliveryFee es el recargo por delivery (5 por defecto).
func NewService(cart Cart, orders Orders, session Session, v *validation.Validator, deliveryFee decimal.Decimal, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if v == nil {
		v = validation.New()
	}
	return &Service{
		cart:     cart,
		orders:   orders,
		session:  session,
		validate: v,
		fee:      deliveryFee,
		log:      log.Named("checkout"),
	}
}

// ── Cálculo ───────────────────────────────────────────────────────────────────

// Compute aplica la fórmula del checkout sobre un subtotal:
// total = subtotal + recargo (solo Delivery) − subtotal × descuento / 100.
func Compute(subtotal decimal.Decimal, orderType string, fee decimal.Decimal, promo *entity.Promotion) dto.Quote {
	q := dto.Quote{
		Subtotal:    subtotal,
		DeliveryFee: decimal.Zero,
		Discount:    decimal.Zero,
	}
	if normalizeType(orderType) == entity.OrderTypeDelivery {
		q.DeliveryFee = fee
	}
	if promo != nil {
		q.Discount = subtotal.Mul(decimal.NewFromInt(int64(promo.Discount))).Div(decimal.NewFromInt(100)).Round(2)
		p := *promo
		q.AppliedPromotion = &p
	}
	q.Total = subtotal.Add(q.DeliveryFee).Sub(q.Discount).Round(2)
	return q
}

// Quote cotiza el carrito actual con la promoción elegida.
func (s *Service) Quote(orderType string) dto.Quote {
	return Compute(s.cart.Total(), orderType, s.fee, s.AppliedPromotion())
}

// ── Promoción ─────────────────────────────────────────────────────────────────

// SelectPromotion aplica la promoción; si ya estaba aplicada la quita. Solo se
// admite una a la vez y solo promociones activas. Devuelve la aplicada (o nil).
func (s *Service) SelectPromotion(id int64) (*entity.Promotion, error) {
	promo, ok := s.orders.Promotion(id)
	if !ok {
		return nil, fmt.Errorf("promoción %d: %w", id, domain.ErrNotFound)
	}
	if !promo.IsActive() {
		return nil, fmt.Errorf("promoción %d: %w", id, domain.ErrPromoInactive)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applied != nil && s.applied.ID == id {
		s.applied = nil
		return nil, nil
	}
	s.applied = &promo
	p := promo
	return &p, nil
}

// AppliedPromotion copia de la promoción aplicada, o nil.
func (s *Service) AppliedPromotion() *entity.Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.applied == nil {
		return nil
	}
	p := *s.applied
	return &p
}

func (s *Service) ClearPromotion() {
	s.mu.Lock()
	s.applied = nil
	s.mu.Unlock()
}

// ── Confirmación ──────────────────────────────────────────────────────────────

// Validate revisa el carrito y la dirección. Devuelve domain.ErrEmptyCart o un
// *domain.FormError con los campos faltantes.
func (s *Service) Validate(user *entity.User, req dto.CheckoutRequest) error {
	if s.cart.IsEmpty() {
		return domain.ErrEmptyCart
	}
	switch normalizeType(req.Type) {
	case entity.OrderTypeDelivery, entity.OrderTypeDineIn:
	default:
		return &domain.FormError{Fields: domain.FieldErrors{"type": "Tipo de pedido inválido"}}
	}
	if normalizeType(req.Type) != entity.OrderTypeDelivery {
		return nil
	}
	if req.AddressID > 0 {
		if user.FindAddress(req.AddressID) == nil {
			return &domain.FormError{Fields: domain.FieldErrors{"address_id": "Dirección no encontrada"}}
		}
		return nil
	}
	form := req.NewAddress
	form.Street = strings.TrimSpace(form.Street)
	form.Number = strings.TrimSpace(form.Number)
	form.District = strings.TrimSpace(form.District)
	return s.validate.Struct(form)
}

// Confirm arma el pedido desde el carrito y lo envía. Si el servidor lo acepta
// se descuentan del carrito las líneas enviadas y se quita la promoción; si
// falla, ambos quedan intactos.
func (s *Service) Confirm(ctx context.Context, req dto.CheckoutRequest) (*entity.Order, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := s.Validate(user, req); err != nil {
		return nil, err
	}

	promo := s.AppliedPromotion()
	if promo != nil {
		// pudo desactivarse o eliminarse después de elegirla
		if current, ok := s.orders.Promotion(promo.ID); !ok || !current.IsActive() {
			s.ClearPromotion()
			return nil, fmt.Errorf("promoción %q: %w", promo.Name, domain.ErrPromoInactive)
		}
	}

	orderType := normalizeType(req.Type)
	lines := s.cart.Lines()
	quote := Compute(sumLines(lines), orderType, s.fee, promo)

	in := dto.CreateOrderRequest{
		UserID:          user.ID,
		Type:            orderType,
		Table:           TablePickup,
		Status:          entity.StatusPending,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: PickupAddress,
		Notes:           strings.TrimSpace(req.Notes),
		Subtotal:        quote.Subtotal,
		DeliveryFee:     quote.DeliveryFee,
		Discount:        quote.Discount,
		Total:           quote.Total,
		Items:           make([]dto.OrderItemRequest, 0, len(lines)),
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = DefaultPayment
	}
	if orderType == entity.OrderTypeDelivery {
		in.Table = TableDelivery
		in.DeliveryAddress = deliveryAddress(user, req)
	}
	if promo != nil {
		label := promo.Label()
		in.AppliedPromo = &label
	}
	for _, l := range lines {
		in.Items = append(in.Items, dto.OrderItemRequest{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}

	order, err := s.orders.CreateOrder(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("checkout rechazado")
		return nil, fmt.Errorf("checkout: %w", err)
	}

	// solo se quitan las líneas enviadas; lo agregado durante el envío se conserva
	s.cart.RemoveLines(ctx, lines)
	s.ClearPromotion()
	s.log.Info().Int64("user_id", user.ID).Str("total", quote.Total.StringFixed(2)).Msg("checkout confirmado")
	return order, nil
}

// normalizeType acepta "Delivery" o el tipo de salón; vacío equivale a Delivery.
func normalizeType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "", "delivery":
		return entity.OrderTypeDelivery
	case "salón", "salon", "recoger", "pickup":
		return entity.OrderTypeDineIn
	}
	return t
}

func deliveryAddress(user *entity.User, req dto.CheckoutRequest) string {
	if req.AddressID > 0 {
		if a := user.FindAddress(req.AddressID); a != nil {
			return a.Address
		}
	}
	f := req.NewAddress
	return fmt.Sprintf("%s %s, %s (Ref: %s)",
		strings.TrimSpace(f.Street), strings.TrimSpace(f.Number), strings.TrimSpace(f.District), strings.TrimSpace(f.Reference))
}

func sumLines(lines []entity.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
