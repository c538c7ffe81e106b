package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/frontdesk-go-api/internal/config"
	"github.com/noah-isme/frontdesk-go-api/internal/handler"
	"github.com/noah-isme/frontdesk-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	RegistrationHandler      *handler.RegistrationHandler
	RecruiterHandler         *handler.RecruiterHandler
	ExclusionHandler         *handler.ExclusionHandler
	VisitHandler             *handler.VisitHandler
	OrientationConfigHandler *handler.OrientationConfigHandler
	AnnouncementHandler      *handler.AnnouncementHandler
	StaffMiddleware          fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Kiosk routes are
// public; roster and list maintenance require a staff token.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	staffMiddleware := deps.StaffMiddleware
	if staffMiddleware == nil {
		staffMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.RegistrationHandler != nil {
		deps.RegistrationHandler.Register(api.Group("/registrations"))
	}

	if deps.VisitHandler != nil {
		deps.VisitHandler.Register(api.Group("/visits"))
		deps.VisitHandler.RegisterAdmin(api.Group("/admin/visits", staffMiddleware))
	}

	if deps.ExclusionHandler != nil {
		deps.ExclusionHandler.Register(api.Group("/exclusions"))
		deps.ExclusionHandler.RegisterAdmin(api.Group("/admin/exclusions", staffMiddleware))
	}

	if deps.RecruiterHandler != nil {
		deps.RecruiterHandler.Register(api.Group("/admin/recruiters", staffMiddleware))
	}

	if deps.OrientationConfigHandler != nil {
		deps.OrientationConfigHandler.Register(api.Group("/orientation-config"))
		deps.OrientationConfigHandler.RegisterAdmin(api.Group("/admin/orientation-config", staffMiddleware))
	}

	if deps.AnnouncementHandler != nil {
		deps.AnnouncementHandler.Register(api.Group("/announcements"))
		deps.AnnouncementHandler.RegisterAdmin(api.Group("/admin/announcements", staffMiddleware))
	}
}
