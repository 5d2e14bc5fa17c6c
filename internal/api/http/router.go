package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/invoice-service/internal/api/http/handlers"
	"github.com/spec-kit/invoice-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Invoices       *handlers.InvoicesHandler
	Templates      *handlers.TemplatesHandler
	Payments       *handlers.PaymentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/profile", cfg.AuthMiddleware.Handle, cfg.Auth.Profile)

	customers := app.Group("/customers", cfg.AuthMiddleware.Handle)
	customers.Get("/", cfg.Customers.List)
	customers.Post("/", cfg.Customers.Create)
	customers.Put("/:id", cfg.Customers.Update)
	customers.Delete("/:id", cfg.Customers.Delete)

	invoices := app.Group("/invoices", cfg.AuthMiddleware.Handle)
	invoices.Get("/", cfg.Invoices.List)
	invoices.Post("/", cfg.Invoices.Create)
	invoices.Put("/:id", cfg.Invoices.Update)
	invoices.Delete("/:id", cfg.Invoices.Delete)

	templates := app.Group("/templates", cfg.AuthMiddleware.Handle)
	templates.Get("/", cfg.Templates.List)
	templates.Post("/", cfg.Templates.Create)
	templates.Put("/:id", cfg.Templates.Update)
	templates.Delete("/:id", cfg.Templates.Delete)

	payments := app.Group("/payments", cfg.AuthMiddleware.Handle)
	payments.Get("/", cfg.Payments.List)
	payments.Put("/:id", cfg.Payments.Update)
}
