package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sistemaarroz/ingenio-api/internal/application/analytics"
	"github.com/sistemaarroz/ingenio-api/internal/application/auth"
	"github.com/sistemaarroz/ingenio-api/internal/application/billing"
	"github.com/sistemaarroz/ingenio-api/internal/application/ledger"
	"github.com/sistemaarroz/ingenio-api/internal/application/usecase"
	infrapdf "github.com/sistemaarroz/ingenio-api/internal/infrastructure/pdf"
	"github.com/sistemaarroz/ingenio-api/internal/infrastructure/postgres"
	httpRouter "github.com/sistemaarroz/ingenio-api/internal/interfaces/http"
	"github.com/sistemaarroz/ingenio-api/pkg/config"
	"github.com/sistemaarroz/ingenio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    "info",
		Servicio: "ingenio-api",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	ingenioRepo := postgres.NewIngenioRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	almacenRepo := postgres.NewAlmacenRepository(pool)
	variedadRepo := postgres.NewVariedadRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	transaccionRepo := postgres.NewTransaccionRepository(pool)
	detalleRepo := postgres.NewDetalleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	registroRunner := postgres.NewRegistroRunner(pool)

	ledgerUC := ledger.NewLedgerUseCase(txRunner, inventarioRepo, productoRepo, almacenRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, registroRunner, cfg.JWT)
	billingUC := billing.NewBillingUseCase(transaccionRepo, detalleRepo, infrapdf.NewMarotoFacturaGenerator())
	analyticsUC := analytics.NewAnalyticsUseCase(analyticsRepo)
	inventarioUC := usecase.NewInventarioUseCase(inventarioRepo, transaccionRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	almacenUC := usecase.NewAlmacenUseCase(almacenRepo, variedadRepo)
	ingenioUC := usecase.NewIngenioUseCase(ingenioRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ingenio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LedgerUC:     ledgerUC,
		InventarioUC: inventarioUC,
		BillingUC:    billingUC,
		AnalyticsUC:  analyticsUC,
		ProductoUC:   productoUC,
		AlmacenUC:    almacenUC,
		IngenioUC:    ingenioUC,
		JWTSecret:    cfg.JWT.Secret,
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

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
