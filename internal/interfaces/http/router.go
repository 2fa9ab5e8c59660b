package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpmotors/spares-api/internal/application/auth"
	"github.com/jpmotors/spares-api/internal/application/checkout"
	"github.com/jpmotors/spares-api/internal/application/usecase"
	"github.com/jpmotors/spares-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CatalogUC   *usecase.CatalogUseCase
	CheckoutUC  *checkout.UseCase
	OrderUC     *usecase.OrderUseCase
	DashboardUC *usecase.DashboardUseCase
	UserUC      *usecase.UserUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login is the only public route)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/session", authHandler.Session)
	protected.Post("/auth/logout", authHandler.Logout)

	// Catalog
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup := protected.Group("/catalog")
	catalogGroup.Get("/products", catalogHandler.List)
	catalogGroup.Get("/brands", catalogHandler.Brands)

	// Cart + checkout
	cartHandler := NewCartHandler(deps.CheckoutUC)
	cartGroup := protected.Group("/cart")
	cartGroup.Get("/", cartHandler.View)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:productId", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:productId", cartHandler.RemoveItem)
	cartGroup.Post("/checkout", cartHandler.Checkout)

	// Orders (visibility enforced per-fetch in the use case)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orderGroup := protected.Group("/orders")
	orderGroup.Get("/", orderHandler.List)
	orderGroup.Get("/:id/invoice.pdf", orderHandler.InvoicePDF)
	orderGroup.Post("/:id/advance", RequireRole(entity.RoleAdmin), orderHandler.Advance)

	// Admin console
	adminHandler := NewAdminHandler(deps.DashboardUC, deps.UserUC, deps.AuthUC)
	adminGroup := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminGroup.Get("/stats", adminHandler.Stats)
	adminGroup.Get("/users", adminHandler.ListRetailers)
	adminGroup.Post("/users", adminHandler.CreateRetailer)
	adminGroup.Delete("/users/:id", adminHandler.DeleteRetailer)
}
