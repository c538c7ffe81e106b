package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit creates a per-client rate limiter middleware instance. Kiosk
// routes are keyed by IP; staff routes by the authenticated staff id.
func RateLimit(identifier string, max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Second
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			staffID := fmt.Sprintf("%v", c.Locals("staff_id"))
			if staffID == "" || staffID == "0" || staffID == "<nil>" {
				staffID = c.IP()
			}
			return fmt.Sprintf("%s:%s", identifier, staffID)
		},
	})
}
