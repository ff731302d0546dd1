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

	appanalytics "github.com/tu-usuario/bodega-wms/internal/application/analytics"
	"github.com/tu-usuario/bodega-wms/internal/application/audit"
	"github.com/tu-usuario/bodega-wms/internal/application/auth"
	"github.com/tu-usuario/bodega-wms/internal/application/ledger"
	"github.com/tu-usuario/bodega-wms/internal/application/query"
	appsystem "github.com/tu-usuario/bodega-wms/internal/application/system"
	"github.com/tu-usuario/bodega-wms/internal/application/usecase"
	"github.com/tu-usuario/bodega-wms/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/bodega-wms/internal/interfaces/http"
	"github.com/tu-usuario/bodega-wms/pkg/config"
	"github.com/tu-usuario/bodega-wms/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	operatorRepo := postgres.NewOperatorRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	rackRepo := postgres.NewRackRepository(pool)
	slotRepo := postgres.NewSlotRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	movementQueryRepo := postgres.NewMovementQueryRepository(pool)
	stockQueryRepo := postgres.NewStockQueryRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewLedgerUseCase(txRunner, operatorRepo)
	resolver := ledger.NewResolver(itemRepo, slotRepo)
	movementUC := query.NewMovementQueryUseCase(movementQueryRepo)
	stockUC := query.NewStockQueryUseCase(stockQueryRepo)
	auditUC := audit.NewUseCase(auditRepo, log)
	operatorUC := usecase.NewOperatorUseCase(operatorRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	rackUC := usecase.NewRackUseCase(rackRepo, warehouseRepo)
	slotUC := usecase.NewSlotUseCase(slotRepo, rackRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)
	maintenanceUC := appsystem.NewMaintenanceUseCase(ledgerUC.Gate(), log)
	authUC := auth.NewAuthUseCase(operatorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Bodega WMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:      ledgerUC,
		Resolver:      resolver,
		MovementUC:    movementUC,
		StockUC:       stockUC,
		OperatorUC:    operatorUC,
		ItemUC:        itemUC,
		WarehouseUC:   warehouseUC,
		RackUC:        rackUC,
		SlotUC:        slotUC,
		DashboardUC:   dashboardUC,
		MaintenanceUC: maintenanceUC,
		AuditUC:       auditUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
