package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bodega-wms/internal/application/analytics"
	"github.com/tu-usuario/bodega-wms/internal/application/audit"
	"github.com/tu-usuario/bodega-wms/internal/application/auth"
	"github.com/tu-usuario/bodega-wms/internal/application/ledger"
	"github.com/tu-usuario/bodega-wms/internal/application/query"
	"github.com/tu-usuario/bodega-wms/internal/application/system"
	"github.com/tu-usuario/bodega-wms/internal/application/usecase"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC      *ledger.LedgerUseCase
	Resolver      *ledger.Resolver
	MovementUC    *query.MovementQueryUseCase
	StockUC       *query.StockQueryUseCase
	OperatorUC    *usecase.OperatorUseCase
	ItemUC        *usecase.ItemUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	RackUC        *usecase.RackUseCase
	SlotUC        *usecase.SlotUseCase
	DashboardUC   *analytics.DashboardUseCase
	MaintenanceUC *system.MaintenanceUseCase
	AuditUC       *audit.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
// Mutaciones del libro: admin y keeper. Catálogo: admin y keeper.
// Lecturas: cualquier operador autenticado. Operadores y sistema: solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	writers := RequireRole(entity.RoleAdmin, entity.RoleKeeper)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Libro de movimientos (mutaciones)
	ledgerGroup := protected.Group("/ledger", writers)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.Resolver, deps.AuditUC)
	ledgerGroup.Post("/inbound", ledgerHandler.Inbound)
	ledgerGroup.Post("/outbound", ledgerHandler.Outbound)
	ledgerGroup.Post("/move", ledgerHandler.Move)
	ledgerGroup.Post("/count", ledgerHandler.Count)
	ledgerGroup.Post("/reverse", ledgerHandler.Reverse)

	// Listados read-only
	queryHandler := NewQueryHandler(deps.MovementUC, deps.StockUC)
	protected.Get("/movements", queryHandler.ListMovements)
	protected.Get("/stock", queryHandler.ListStock)

	// Panel de inicio
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Catálogo (artículos y jerarquía física)
	itemHandler := NewItemHandler(deps.ItemUC)
	items := protected.Group("/items")
	items.Get("/", itemHandler.List)
	items.Post("/", writers, itemHandler.Create)
	items.Put("/:id/status", writers, itemHandler.SetStatus)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := protected.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", writers, warehouseHandler.Create)
	warehouses.Put("/:id/status", writers, warehouseHandler.SetStatus)

	rackHandler := NewRackHandler(deps.RackUC)
	racks := protected.Group("/racks")
	racks.Get("/", rackHandler.List)
	racks.Post("/", writers, rackHandler.Create)
	racks.Put("/:id/status", writers, rackHandler.SetStatus)

	slotHandler := NewSlotHandler(deps.SlotUC)
	slots := protected.Group("/slots")
	slots.Get("/", slotHandler.ListByRack)
	slots.Post("/", writers, slotHandler.Create)
	slots.Put("/:id/status", writers, slotHandler.SetStatus)

	// Operadores (solo admin)
	operatorHandler := NewOperatorHandler(deps.OperatorUC, deps.AuditUC)
	operators := protected.Group("/operators", adminOnly)
	operators.Post("/", operatorHandler.Create)
	operators.Get("/", operatorHandler.List)
	operators.Put("/:id/status", operatorHandler.SetStatus)

	// Sistema: mantenimiento y auditoría (solo admin)
	systemHandler := NewSystemHandler(deps.MaintenanceUC, deps.AuditUC)
	systemGroup := protected.Group("/system", adminOnly)
	systemGroup.Get("/maintenance", systemHandler.MaintenanceStatus)
	systemGroup.Post("/maintenance/enter", systemHandler.EnterMaintenance)
	systemGroup.Post("/maintenance/exit", systemHandler.ExitMaintenance)
	systemGroup.Get("/audit-logs", systemHandler.ListAuditLogs)
}
