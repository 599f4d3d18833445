package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/store"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/validation"
)

// AdminHandler inventario, promociones y tablero de pedidos del administrador.
// Todas las escrituras confirman con el backend antes de tocar la colección local.
type AdminHandler struct {
	store    *store.CollectionStore
	validate *validation.Validator
}

// NewAdminHandler construye el handler.
func NewAdminHandler(s *store.CollectionStore, v *validation.Validator) *AdminHandler {
	return &AdminHandler{store: s, validate: v}
}

// ── Inventario ────────────────────────────────────────────────────────────────

// Inventory godoc
// @Summary      Inventario completo (incluye no disponibles)
// @Tags         admin
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/admin/inventory [get]
func (h *AdminHandler) Inventory(c *fiber.Ctx) error {
	return c.JSON(h.store.InventoryProducts())
}

// UpdateProduct godoc
// @Summary      Editar producto
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a cambiar"
// @Success      200   {object}  entity.Product
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.store.UpdateProduct(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// ToggleProduct godoc
// @Summary      Activar / ocultar producto de la carta
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  entity.Product
// @Router       /api/admin/products/{id}/toggle [post]
func (h *AdminHandler) ToggleProduct(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	p, err := h.store.ToggleProductAvailability(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// ── Promociones ───────────────────────────────────────────────────────────────

// Promotions godoc
// @Summary      Todas las promociones
// @Tags         admin
// @Produce      json
// @Success      200  {array}  entity.Promotion
// @Router       /api/admin/promotions [get]
func (h *AdminHandler) Promotions(c *fiber.Ctx) error {
	return c.JSON(h.store.Promotions())
}

// CreatePromotion godoc
// @Summary      Crear promoción
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PromotionRequest  true  "promoción"
// @Success      201   {object}  entity.Promotion
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/promotions [post]
func (h *AdminHandler) CreatePromotion(c *fiber.Ctx) error {
	var in dto.PromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return writeError(c, err)
	}
	p, err := h.store.CreatePromotion(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdatePromotion godoc
// @Summary      Editar promoción
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la promoción"
// @Param        body  body  dto.PromotionRequest  true  "promoción"
// @Success      200   {object}  entity.Promotion
// @Router       /api/admin/promotions/{id} [put]
func (h *AdminHandler) UpdatePromotion(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.PromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return writeError(c, err)
	}
	p, err := h.store.UpdatePromotion(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// TogglePromotion godoc
// @Summary      Activar / pausar promoción
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "ID de la promoción"
// @Success      200  {object}  entity.Promotion
// @Router       /api/admin/promotions/{id}/toggle [post]
func (h *AdminHandler) TogglePromotion(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	p, err := h.store.TogglePromotion(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// DeletePromotion godoc
// @Summary      Eliminar promoción
// @Tags         admin
// @Param        id  path  int  true  "ID de la promoción"
// @Success      204
// @Router       /api/admin/promotions/{id} [delete]
func (h *AdminHandler) DeletePromotion(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.store.DeletePromotion(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// Orders godoc
// @Summary      Tablero de pedidos
// @Description  Recarga todos los pedidos y aplica los filtros.
// @Tags         admin
// @Produce      json
// @Param        status  query  string  false  "all, pending, preparing, ready, delivered"
// @Param        q       query  string  false  "busca en mesa e id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/admin/orders [get]
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	var f dto.OrderFilter
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "filtros inválidos")
	}
	if err := h.store.LoadAllOrders(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"orders": h.store.Orders(f),
		"active": h.store.ActiveOrdersCount(),
	})
}

// CreateManualOrder godoc
// @Summary      Cargar pedido manual
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualOrderRequest  true  "pedido"
// @Success      201   {object}  entity.Order
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/orders [post]
func (h *AdminHandler) CreateManualOrder(c *fiber.Ctx) error {
	var in dto.ManualOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return writeError(c, err)
	}
	o, err := h.store.CreateManualOrder(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

// AdvanceOrder godoc
// @Summary      Pasar el pedido al siguiente estado
// @Description  pending → preparing → ready → delivered; un pedido entregado no cambia.
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "ID del pedido"
// @Success      200  {object}  entity.Order
// @Router       /api/admin/orders/{id}/advance [post]
func (h *AdminHandler) AdvanceOrder(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	o, err := h.store.AdvanceOrder(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(o)
}

// DeleteOrder godoc
// @Summary      Eliminar pedido
// @Tags         admin
// @Param        id  path  int  true  "ID del pedido"
// @Success      204
// @Router       /api/admin/orders/{id} [delete]
func (h *AdminHandler) DeleteOrder(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.store.DeleteOrder(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
