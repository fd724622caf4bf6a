package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/estoquepro/estoque-api/internal/application/auth"
	"github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/application/report"
	"github.com/estoquepro/estoque-api/internal/application/usecase"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
	"github.com/estoquepro/estoque-api/pkg/metrics"
)

// RouterDeps dependencias para el router. Todo se construye en main y se
// pasa explícito; no hay estado global.
type RouterDeps struct {
	CompanyUC       *usecase.CompanyUseCase
	ProductUC       *usecase.ProductUseCase
	InventoryUC     *usecase.InventoryItemUseCase
	UserUC          *usecase.UserUseCase
	RecordTx        *inventory.RecordTransactionUseCase
	ListTx          *inventory.ListTransactionsUseCase
	InventoryReport *report.InventoryReportUseCase
	LedgerExport    *report.LedgerExportUseCase
	AuthUC          *auth.AuthUseCase
	Revoker         *auth.Revoker
	UserRepo        repository.UserRepository
	CompanyRepo     repository.CompanyRepository
	Metrics         *metrics.Metrics
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth: login es público; logout requiere token vigente.
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret, deps.Revoker), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Revoker))

	admin := string(entity.RoleAdmin)
	operator := string(entity.RoleCompanyOperator)
	regular := string(entity.RoleRegularUser)

	// Registro de usuarios: solo admin.
	protected.Post("/auth/register", RequireRole(admin), authHandler.Register)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(admin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Companies: lectura filtrada por visibilidad; mutación solo admin.
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.UserRepo, deps.CompanyRepo)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", RequireRole(admin), companyHandler.Create)
	companies.Put("/:id", RequireRole(admin), companyHandler.Update)
	companies.Delete("/:id", RequireRole(admin), companyHandler.Delete)

	// Products: catálogo global; mutación para admin y operadores.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(admin, operator), productHandler.Create)
	products.Put("/:id", RequireRole(admin, operator), productHandler.Update)
	products.Delete("/:id", RequireRole(admin, operator), productHandler.Delete)

	// Inventory items: visibilidad por empresa dentro del handler.
	items := protected.Group("/inventory/items")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.UserRepo)
	items.Get("/", inventoryHandler.List)
	items.Get("/:id", inventoryHandler.GetByID)
	items.Post("/", RequireRole(admin, operator), inventoryHandler.Create)
	items.Put("/:id", RequireRole(admin, operator), inventoryHandler.Update)
	items.Delete("/:id", RequireRole(admin, operator), inventoryHandler.Delete)

	// Transactions: cualquier usuario autenticado lista lo suyo; registrar
	// movimientos exige rol con acceso a empresas.
	txs := protected.Group("/transactions")
	txHandler := NewTransactionHandler(deps.RecordTx, deps.ListTx, deps.InventoryUC, deps.UserRepo, deps.Metrics)
	txs.Get("/", RequireRole(admin, operator, regular), txHandler.List)
	txs.Post("/", RequireRole(admin, operator), txHandler.Record)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.InventoryReport, deps.LedgerExport, deps.UserRepo)
	reports.Get("/inventory/pdf", reportHandler.InventoryPDF)
	reports.Get("/transactions/xlsx", reportHandler.LedgerXLSX)
}
