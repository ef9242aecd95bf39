package api

import (
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/gofiber/fiber/v2"
)

// loginRequired sends anonymous callers to the login entry point; they
// never see an error body for merely being signed out.
func loginRequired(c *fiber.Ctx) error {
	if !security.IsAuthenticated(c) {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	return c.Next()
}
