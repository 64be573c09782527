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

	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/document"
	appledger "github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/application/masterdata"
	"github.com/jhoicas/bodega-api/internal/application/report"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/internal/infrastructure/memory"
	"github.com/jhoicas/bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bodega-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/bodega-api/internal/interfaces/http"
	"github.com/jhoicas/bodega-api/pkg/config"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		itemRepo     repository.ItemRepository
		locationRepo repository.LocationRepository
		lotRepo      repository.LotRepository
		inventory    repository.InventoryRepository
		movements    repository.MovementRepository
		documents    repository.DocumentRepository
		txRunner     appledger.TxRunner
	)

	switch cfg.Storage.Driver {
	case "memory":
		// Modo demo/desarrollo: todo en memoria, sin PostgreSQL.
		store := memory.NewStore()
		itemRepo = store.Items()
		locationRepo = store.Locations()
		lotRepo = store.Lots()
		inventory = store.Inventory()
		movements = store.Movements()
		documents = store.Documents()
		txRunner = store
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.InitSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("inicializar esquema")
		}
		itemRepo = postgres.NewItemRepository(pool)
		locationRepo = postgres.NewLocationRepository(pool)
		lotRepo = postgres.NewLotRepository(pool)
		inventory = postgres.NewInventoryRepository(pool)
		movements = postgres.NewMovementRepository(pool)
		documents = postgres.NewDocumentRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	blobStore, err := storage.NewFilesystemStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento de documentos")
	}

	authUC := auth.NewUseCase(auth.Config{
		SharedPassword: cfg.Auth.SharedPassword,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		JWTExpMinutes:  cfg.JWT.Expiration,
	})
	masterDataUC := masterdata.NewUseCase(itemRepo, locationRepo, lotRepo)
	ledgerUC := appledger.NewUseCase(txRunner, lotRepo, locationRepo, movements, inventory)
	documentUC := document.NewUseCase(documents, movements, blobStore)
	reportUC := report.NewUseCase(movements)

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
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		MasterDataUC: masterDataUC,
		LedgerUC:     ledgerUC,
		DocumentUC:   documentUC,
		ReportUC:     reportUC,
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

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
