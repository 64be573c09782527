package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/application/masterdata"
	"github.com/jhoicas/bodega-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	MasterDataUC *masterdata.UseCase
	LedgerUC     *ledger.UseCase
	DocumentUC   *document.UseCase
	ReportUC     *report.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Datos maestros (protegido)
	masterDataHandler := NewMasterDataHandler(deps.MasterDataUC)
	protected.Post("/items", masterDataHandler.CreateItem)
	protected.Get("/items", masterDataHandler.ListItems)
	protected.Post("/locations", masterDataHandler.CreateLocation)
	protected.Get("/locations", masterDataHandler.ListLocations)
	protected.Post("/lots", masterDataHandler.CreateLot)
	protected.Get("/lots", masterDataHandler.ListLots)

	// Ledger e inventario (protegido)
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	protected.Post("/inventory/movements", inventoryHandler.BookMovement)
	protected.Get("/inventory", inventoryHandler.GetInventory)
	protected.Get("/movements", inventoryHandler.ListMovements)

	// Documentos adjuntos (protegido)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	protected.Post("/movements/:id/documents", documentHandler.Upload)
	protected.Get("/movements/:id/documents", documentHandler.List)
	protected.Get("/documents/:id/download", documentHandler.Download)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/by-partner", reportHandler.ByPartner)
	protected.Get("/reports/by-item", reportHandler.ByItem)
}
