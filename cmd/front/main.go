package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/analytics"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/auth"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/cart"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/checkout"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/inventory"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/store"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/validation"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/api"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/metrics"
	infrapdf "github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/pdf"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/scheduler"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/storage"
	httpRouter "github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/interfaces/http"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/config"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()
	m := metrics.New()

	kv, err := storage.OpenSQLite(ctx, cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("almacenamiento local")
	}
	defer kv.Close()

	client := api.New(api.Options{
		BaseURL:      cfg.API.BaseURL,
		Timeout:      cfg.API.Timeout,
		RateLimit:    cfg.API.RateLimit,
		RateBurst:    cfg.API.RateBurst,
		MaxBodyBytes: cfg.API.MaxBodyBytes,
	}, log, m)

	session := auth.NewSessionManager(client, kv, log, m)
	client.UseSession(session)

	collections := store.NewCollectionStore(client, client, log, m)
	// los pedidos cacheados pertenecen al usuario que cerró sesión
	session.OnLogout(collections.ResetOrders)

	cartManager := cart.NewManager(kv, log, m)
	cartManager.Restore(ctx)

	validator := validation.New()
	checkoutService := checkout.NewService(cartManager, collections, session, validator, cfg.Order.DeliveryFee, log)

	reportUC := appanalytics.NewReportUseCase(collections, infrapdf.NewMarotoReportGenerator(), time.Local, log)
	dashboardUC := appanalytics.NewDashboardUseCase(client, session)
	predictionUC := inventory.NewPredictionUseCase(collections, nil)

	status := session.Initialize(ctx)
	failed := collections.LoadAll(ctx).Failed()
	log.Info().
		Str("session", string(status)).
		Strs("failed_collections", failed).
		Msg("estado inicial cargado")

	var refresher *scheduler.Refresher
	if cfg.Refresh.Cron != "" {
		refresher, err = scheduler.New(cfg.Refresh.Cron, collections, m, log, cfg.API.Timeout)
		if err != nil {
			log.Fatal().Err(err).Msg("recarga periódica")
		}
		refresher.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Juancho Burger Front",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"session": session.Status(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:     session,
		Store:       collections,
		Cart:        cartManager,
		Checkout:    checkoutService,
		Reports:     reportUC,
		Dashboard:   dashboardUC,
		Predictions: predictionUC,
		Validator:   validator,
		Metrics:     m,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if refresher != nil {
		refresher.Stop(shutdownCtx)
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
