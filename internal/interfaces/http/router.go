package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockledger-api/internal/application/auth"
	"github.com/tu-usuario/stockledger-api/internal/application/ledger"
	"github.com/tu-usuario/stockledger-api/internal/application/usecase"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	LedgerUC    *ledger.UseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	UserAdminUC *usecase.UserAdminUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/alerts", productHandler.Alerts)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos de stock (protegido): entradas, salidas e historial
	movementHandler := NewMovementHandler(deps.LedgerUC)
	products.Post("/:id/receipt", movementHandler.Receipt)
	products.Post("/:id/issue", movementHandler.Issue)
	protected.Get("/movements", movementHandler.List)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Gestión de usuarios (solo admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminUserHandler := NewAdminUserHandler(deps.UserAdminUC)
	admin.Get("/users", adminUserHandler.List)
	admin.Put("/users/:id", adminUserHandler.Update)
	admin.Delete("/users/:id", adminUserHandler.Delete)
}
