package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/analytics"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/auth"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/cart"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/checkout"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/inventory"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/store"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/validation"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session     *auth.SessionManager
	Store       *store.CollectionStore
	Cart        *cart.Manager
	Checkout    *checkout.Service
	Reports     *appanalytics.ReportUseCase
	Dashboard   *appanalytics.DashboardUseCase
	Predictions *inventory.PredictionUseCase
	Validator   *validation.Validator
	Metrics     *metrics.Metrics
}

// Router registra las rutas de la API local.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}
	api := app.Group("/api", Metrics(deps.Metrics))

	// Sesión (público)
	sessionHandler := NewSessionHandler(deps.Session, deps.Validator)
	api.Get("/session", sessionHandler.Get)
	api.Post("/session/login", sessionHandler.Login)
	api.Post("/session/register", sessionHandler.Register)
	api.Post("/session/logout", sessionHandler.Logout)

	// Carta y carrito (público)
	shop := NewShopHandler(deps.Store, deps.Cart, deps.Checkout)
	api.Get("/menu", shop.Menu)
	api.Get("/promotions/active", shop.ActivePromotions)
	api.Post("/collections/reload", shop.Reload)

	api.Get("/cart", shop.Cart)
	api.Post("/cart/items", shop.AddItem)
	api.Put("/cart/items/:productId", shop.SetQuantity)
	api.Delete("/cart/items/:productId", shop.RemoveItem)
	api.Delete("/cart", shop.ClearCart)

	api.Get("/checkout/quote", shop.Quote)
	api.Get("/checkout/options", shop.Options)
	api.Post("/checkout/promotion/:id", shop.SelectPromotion)
	api.Delete("/checkout/promotion", shop.ClearPromotion)

	// Rutas con sesión
	protected := api.Group("", RequireAuth(deps.Session))
	protected.Post("/checkout", shop.Confirm)
	protected.Get("/orders/mine", shop.MyOrders)

	// Panel de administración
	admin := protected.Group("/admin", RequireAdmin())
	adminHandler := NewAdminHandler(deps.Store, deps.Validator)
	admin.Get("/inventory", adminHandler.Inventory)
	admin.Put("/products/:id", adminHandler.UpdateProduct)
	admin.Post("/products/:id/toggle", adminHandler.ToggleProduct)

	admin.Get("/promotions", adminHandler.Promotions)
	admin.Post("/promotions", adminHandler.CreatePromotion)
	admin.Put("/promotions/:id", adminHandler.UpdatePromotion)
	admin.Delete("/promotions/:id", adminHandler.DeletePromotion)
	admin.Post("/promotions/:id/toggle", adminHandler.TogglePromotion)

	admin.Get("/orders", adminHandler.Orders)
	admin.Post("/orders", adminHandler.CreateManualOrder)
	admin.Post("/orders/:id/advance", adminHandler.AdvanceOrder)
	admin.Delete("/orders/:id", adminHandler.DeleteOrder)

	reports := NewReportsHandler(deps.Reports, deps.Dashboard, deps.Predictions)
	admin.Get("/reports/weekly", reports.Weekly)
	admin.Get("/reports/weekly.pdf", reports.WeeklyPDF)
	admin.Get("/dashboard", reports.Dashboard)
	admin.Get("/predictions", reports.Predictions)
}
