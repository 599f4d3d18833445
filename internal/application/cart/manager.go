package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/logger"
)

// Manager carrito de compras local. No depende de la sesión: un visitante
// anónimo puede armar su carrito antes de iniciar sesión.
//
// Ninguna operación falla hacia el llamador. Si el almacenamiento no responde
// el carrito en memoria sigue siendo válido y el fallo solo se registra.
type Manager struct {
	kv  ports.KeyValueStore
	log *logger.Logger
	obs ports.Observer

	mu    sync.RWMutex
	lines []entity.CartLine

	// persistMu serializa las escrituras al almacenamiento; cada escritura toma
	// la foto vigente en ese momento, así la última en terminar es la más nueva.
	persistMu sync.Mutex
}

// NewManager construye un carrito vacío. Llamar Restore para recuperar el guardado.
func NewManager(kv ports.KeyValueStore, log *logger.Logger, obs ports.Observer) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	if obs == nil {
		obs = ports.NopObserver{}
	}
	return &Manager{kv: kv, log: log.Named("cart"), obs: obs, lines: []entity.CartLine{}}
}

// Restore carga el carrito guardado. Datos ausentes o corruptos dejan el carrito
// vacío; líneas con id o cantidad inválidos se descartan y los ids repetidos se fusionan.
func (m *Manager) Restore(ctx context.Context) {
	raw, ok, err := m.kv.Get(ctx, ports.KeyCart)
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo leer el carrito guardado")
	}

	lines := []entity.CartLine{}
	if err == nil && ok && raw != "" {
		var stored []entity.CartLine
		if jsonErr := json.Unmarshal([]byte(raw), &stored); jsonErr != nil {
			m.log.Warn().Err(jsonErr).Msg("carrito guardado corrupto; se descarta")
		} else {
			lines = sanitize(stored)
		}
	}

	m.mu.Lock()
	m.lines = lines
	m.mu.Unlock()
	m.obs.SetCartItems(m.ItemCount())
}

func sanitize(stored []entity.CartLine) []entity.CartLine {
	out := []entity.CartLine{}
	index := make(map[int64]int)
	for _, l := range stored {
		if l.ProductID <= 0 || l.Quantity <= 0 {
			continue
		}
		if i, seen := index[l.ProductID]; seen {
			out[i].Quantity += l.Quantity
			continue
		}
		index[l.ProductID] = len(out)
		out = append(out, l)
	}
	return out
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// AddItem agrega quantity unidades (1 si quantity ≤ 0). Si el producto ya está en
// el carrito acumula la cantidad; si no, crea la línea con el precio de este momento.
func (m *Manager) AddItem(ctx context.Context, p entity.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	m.mutate(ctx, func(lines []entity.CartLine) []entity.CartLine {
		for i := range lines {
			if lines[i].ProductID == p.ID {
				lines[i].Quantity += quantity
				return lines
			}
		}
		return append(lines, entity.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  quantity,
		})
	})
	m.log.Debug().Int64("product_id", p.ID).Int("quantity", quantity).Msg("item agregado")
}

// SetQuantity fija la cantidad; ≤ 0 equivale a RemoveItem. Un id ausente no hace nada.
func (m *Manager) SetQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		m.RemoveItem(ctx, productID)
		return
	}
	m.mutate(ctx, func(lines []entity.CartLine) []entity.CartLine {
		for i := range lines {
			if lines[i].ProductID == productID {
				lines[i].Quantity = quantity
			}
		}
		return lines
	})
}

// RemoveItem quita la línea del producto.
func (m *Manager) RemoveItem(ctx context.Context, productID int64) {
	m.mutate(ctx, func(lines []entity.CartLine) []entity.CartLine {
		out := lines[:0]
		for _, l := range lines {
			if l.ProductID != productID {
				out = append(out, l)
			}
		}
		return out
	})
}

// Clear vacía el carrito.
func (m *Manager) Clear(ctx context.Context) {
	m.mutate(ctx, func([]entity.CartLine) []entity.CartLine {
		return []entity.CartLine{}
	})
}

// RemoveLines descuenta las cantidades de submitted. Lo que se agregó después de
// tomar submitted queda en el carrito.
func (m *Manager) RemoveLines(ctx context.Context, submitted []entity.CartLine) {
	taken := make(map[int64]int, len(submitted))
	for _, l := range submitted {
		taken[l.ProductID] += l.Quantity
	}
	m.mutate(ctx, func(lines []entity.CartLine) []entity.CartLine {
		out := lines[:0]
		for _, l := range lines {
			l.Quantity -= taken[l.ProductID]
			if l.Quantity > 0 {
				out = append(out, l)
			}
		}
		return out
	})
}

// mutate aplica fn sobre una copia, la publica y persiste el carrito completo.
func (m *Manager) mutate(ctx context.Context, fn func([]entity.CartLine) []entity.CartLine) {
	m.mu.Lock()
	next := fn(append([]entity.CartLine{}, m.lines...))
	m.lines = next
	count := countOf(next)
	m.mu.Unlock()

	m.obs.SetCartItems(count)
	m.persist(ctx)
}

// persist guarda la foto actual. Se llama en cada cambio para que un reinicio
// no pierda el carrito.
func (m *Manager) persist(ctx context.Context) {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	snapshot, err := json.Marshal(m.Lines())
	if err != nil {
		m.log.Error().Err(err).Msg("no se pudo serializar el carrito")
		return
	}
	if err := m.kv.Set(ctx, ports.KeyCart, string(snapshot)); err != nil {
		m.log.Error().Err(err).Msg("no se pudo guardar el carrito")
	}
}

// ── Lectura ───────────────────────────────────────────────────────────────────

// Lines copia de las líneas en orden de inserción.
func (m *Manager) Lines() []entity.CartLine {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.CartLine{}, m.lines...)
}

// Total Σ precio × cantidad, calculado en cada llamada.
func (m *Manager) Total() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, l := range m.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount suma de cantidades.
func (m *Manager) ItemCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return countOf(m.lines)
}

func (m *Manager) IsEmpty() bool {
	return m.ItemCount() == 0
}

func countOf(lines []entity.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
