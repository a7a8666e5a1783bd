package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/analytics"
	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/pantry"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	MergeUC     *pantry.MergeUseCase
	BulkUC      *pantry.BulkUseCase
	ItemUC      *pantry.ItemUseCase
	ShoppingUC  *pantry.ShoppingListUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
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
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	// Pantry (protegido)
	pantryGroup := protected.Group("/pantry")
	pantryHandler := NewPantryHandler(deps.MergeUC, deps.BulkUC, deps.ItemUC, deps.ShoppingUC)
	pantryGroup.Post("/items", pantryHandler.AddItem)
	pantryGroup.Get("/items", pantryHandler.List)
	pantryGroup.Post("/items/:id/decrease", pantryHandler.Decrease)
	pantryGroup.Delete("/items/:id", pantryHandler.Remove)
	pantryGroup.Post("/import", pantryHandler.Import)
	pantryGroup.Get("/shopping-list.pdf", pantryHandler.ShoppingListPDF)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
