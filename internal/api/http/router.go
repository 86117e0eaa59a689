package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lawfirm/site-api/internal/api/http/handlers"
	"github.com/lawfirm/site-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Contacts *handlers.ContactsHandler
	FAQs     *handlers.FAQsHandler
	Auth     *handlers.AuthHandler
	Gate     *auth.Gate
	// ContactLimiter guards the public contact form; nil disables it.
	ContactLimiter fiber.Handler
	// Gatherer backs /metrics; nil omits the endpoint.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	admin := cfg.Gate.Require

	contact := []fiber.Handler{}
	if cfg.ContactLimiter != nil {
		contact = append(contact, cfg.ContactLimiter)
	}
	api.Post("/contact", append(contact, cfg.Contacts.Submit)...)

	contacts := api.Group("/contacts", admin)
	contacts.Get("/", cfg.Contacts.List)
	contacts.Get("/:id", cfg.Contacts.Get)
	contacts.Patch("/:id", cfg.Contacts.Update)
	contacts.Delete("/:id", cfg.Contacts.Delete)

	faqs := api.Group("/faqs")
	faqs.Get("/", cfg.FAQs.List)
	faqs.Get("/:id", cfg.FAQs.Get)
	faqs.Post("/", admin, cfg.FAQs.Create)
	faqs.Put("/:id", admin, cfg.FAQs.Update)
	faqs.Delete("/:id", admin, cfg.FAQs.Delete)

	authGroup := api.Group("/auth")
	authGroup.Get("/session", cfg.Auth.Session)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
}
