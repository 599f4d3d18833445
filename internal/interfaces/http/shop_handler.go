package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/cart"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/checkout"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/store"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

// ShopHandler carta, carrito y checkout del cliente.
type ShopHandler struct {
	store    *store.CollectionStore
	cart     *cart.Manager
	checkout *checkout.Service
}

// NewShopHandler construye el handler.
func NewShopHandler(s *store.CollectionStore, c *cart.Manager, co *checkout.Service) *ShopHandler {
	return &ShopHandler{store: s, cart: c, checkout: co}
}

// ── Carta ─────────────────────────────────────────────────────────────────────

// Menu godoc
// @Summary      Carta (solo productos disponibles)
// @Tags         menu
// @Produce      json
// @Param        category  query  string  false  "Todos, Hamburguesas, Combos, Acompañamientos, Bebidas"
// @Param        q         query  string  false  "búsqueda en nombre y descripción"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/menu [get]
func (h *ShopHandler) Menu(c *fiber.Ctx) error {
	var f dto.MenuFilter
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "filtros inválidos")
	}
	return c.JSON(fiber.Map{
		"categories": entity.MenuCategories(),
		"products":   h.store.MenuProducts(f),
	})
}

// ActivePromotions godoc
// @Summary      Promociones vigentes
// @Tags         menu
// @Produce      json
// @Success      200  {array}  entity.Promotion
// @Router       /api/promotions/active [get]
func (h *ShopHandler) ActivePromotions(c *fiber.Ctx) error {
	return c.JSON(h.store.ActivePromotions())
}

// Reload godoc
// @Summary      Recargar productos y promociones
// @Description  Nunca falla: las colecciones que no cargan quedan vacías y se listan en "failed".
// @Tags         menu
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/collections/reload [post]
func (h *ShopHandler) Reload(c *fiber.Ctx) error {
	failed := h.store.LoadAll(c.Context()).Failed()
	if failed == nil {
		failed = []string{}
	}
	return c.JSON(fiber.Map{"failed": failed})
}

// ── Carrito ───────────────────────────────────────────────────────────────────

func (h *ShopHandler) cartResponse() dto.CartResponse {
	return dto.CartResponse{
		Lines:     h.cart.Lines(),
		Total:     h.cart.Total(),
		ItemCount: h.cart.ItemCount(),
	}
}

// Cart godoc
// @Summary      Carrito actual
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *ShopHandler) Cart(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse())
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Description  Si el producto ya está en el carrito se suma la cantidad. Cantidad ≤ 0 cuenta como 1.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *ShopHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, ok := h.store.Product(in.ProductID)
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, "producto no encontrado")
	}
	if !p.IsAvailable() {
		return errorJSON(c, fiber.StatusConflict, CodeUnavailable, "producto no disponible")
	}
	h.cart.AddItem(c.Context(), p, in.Quantity)
	return c.JSON(h.cartResponse())
}

// SetQuantity godoc
// @Summary      Cambiar cantidad de una línea
// @Description  Cantidad ≤ 0 elimina la línea.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Param        body       body  dto.SetCartQuantityRequest  true  "quantity"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [put]
func (h *ShopHandler) SetQuantity(c *fiber.Ctx) error {
	id, ok := paramID(c, "productId")
	if !ok {
		return invalidID(c)
	}
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	h.cart.SetQuantity(c.Context(), id, in.Quantity)
	return c.JSON(h.cartResponse())
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *ShopHandler) RemoveItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "productId")
	if !ok {
		return invalidID(c)
	}
	h.cart.RemoveItem(c.Context(), id)
	return c.JSON(h.cartResponse())
}

// ClearCart godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Produce      json
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *ShopHandler) ClearCart(c *fiber.Ctx) error {
	h.cart.Clear(c.Context())
	return c.JSON(h.cartResponse())
}

// ── Checkout ──────────────────────────────────────────────────────────────────

// Quote godoc
// @Summary      Cotizar el carrito
// @Tags         checkout
// @Produce      json
// @Param        type  query  string  false  "Delivery (por defecto) o Salón"
// @Success      200  {object}  dto.Quote
// @Router       /api/checkout/quote [get]
func (h *ShopHandler) Quote(c *fiber.Ctx) error {
	return c.JSON(h.checkout.Quote(c.Query("type")))
}

// Options godoc
// @Summary      Distritos y medios de pago aceptados
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/checkout/options [get]
func (h *ShopHandler) Options(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"districts":       checkout.Districts,
		"payment_methods": checkout.PaymentMethods,
	})
}

// SelectPromotion godoc
// @Summary      Aplicar o quitar una promoción
// @Description  Si la promoción ya estaba aplicada se quita. Solo una a la vez.
// @Tags         checkout
// @Produce      json
// @Param        id  path  int  true  "ID de la promoción"
// @Success      200  {object}  dto.Quote
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout/promotion/{id} [post]
func (h *ShopHandler) SelectPromotion(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if _, err := h.checkout.SelectPromotion(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.checkout.Quote(c.Query("type")))
}

// ClearPromotion godoc
// @Summary      Quitar la promoción aplicada
// @Tags         checkout
// @Success      204
// @Router       /api/checkout/promotion [delete]
func (h *ShopHandler) ClearPromotion(c *fiber.Ctx) error {
	h.checkout.ClearPromotion()
	return c.SendStatus(fiber.StatusNoContent)
}

// Confirm godoc
// @Summary      Confirmar pedido
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "tipo, dirección, pago, notas"
// @Success      201   {object}  entity.Order
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *ShopHandler) Confirm(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	order, err := h.checkout.Confirm(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// MyOrders godoc
// @Summary      Pedidos del usuario actual
// @Tags         orders
// @Produce      json
// @Success      200  {array}  entity.Order
// @Router       /api/orders/mine [get]
func (h *ShopHandler) MyOrders(c *fiber.Ctx) error {
	if err := h.store.LoadOrdersFor(c.Context(), GetUser(c).ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.store.Orders(dto.OrderFilter{}))
}
