package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido. Avanza estrictamente pending → preparing → ready → delivered.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// Tipos de pedido que entiende el backend.
const (
	OrderTypeDineIn   = "Salón"
	OrderTypeDelivery = "Delivery"
)

var statusFlow = map[OrderStatus]OrderStatus{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

// Next devuelve el siguiente estado. ok=false si el estado es final o desconocido.
func (s OrderStatus) Next() (OrderStatus, bool) {
	n, ok := statusFlow[s]
	return n, ok
}

// Valid indica si s es uno de los cuatro estados conocidos.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Label etiqueta en español para la vista.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusPreparing:
		return "En Preparación"
	case StatusReady:
		return "Listo"
	case StatusDelivered:
		return "Entregado"
	}
	return string(s)
}

// OrderItem línea de pedido con precio congelado al momento de la compra.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderItems lista de líneas. Los pedidos manuales del administrador llegan
// con items como texto libre; se decodifican en una sola línea descriptiva.
type OrderItems []OrderItem

// UnmarshalJSON acepta un arreglo de líneas, un string o null.
func (items *OrderItems) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*items = OrderItems{}
		return nil
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			*items = OrderItems{}
			return nil
		}
		*items = OrderItems{{Name: text, Quantity: 1}}
		return nil
	}
	var list []OrderItem
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("order items: %w", err)
	}
	*items = list
	return nil
}

// Summary texto "Clásica x2, Inka Cola x1" para listados.
func (items OrderItems) Summary() string {
	if len(items) == 0 {
		return "Sin items"
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Name+" x"+strconv.Itoa(it.Quantity))
	}
	return strings.Join(parts, ", ")
}

// Order pedido. El servidor es el registro durable; la colección local es caché.
type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	User            *User           `json:"user,omitempty"`
	Type            string          `json:"type"`
	Table           string          `json:"table"`
	Items           OrderItems      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	DeliveryAddress string          `json:"delivery_address"`
	Notes           string          `json:"notes"`
	AppliedPromo    string          `json:"applied_promo,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
	Date            string          `json:"date,omitempty"`
}

// Day devuelve el día calendario del pedido (campo date o created_at).
func (o Order) Day(loc *time.Location) (time.Time, bool) {
	raw := o.Date
	if raw == "" {
		raw = o.CreatedAt
	}
	return ParseDay(raw, loc)
}

// IsActive indica si el pedido aún no fue entregado.
func (o Order) IsActive() bool { return o.Status != StatusDelivered }

// MatchesSearch busca term en la mesa y en el id del pedido.
func (o Order) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Table), term) ||
		strings.Contains(strconv.FormatInt(o.ID, 10), term)
}
