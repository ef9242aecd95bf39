package http

import (
	"strings"

	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/folium-app/folium/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// authMiddleware resolves the caller's identity from a bearer header
// or the login cookie. Requests without a usable token simply stay
// anonymous; the route-level gates decide what anonymous may do.
func authMiddleware(c *fiber.Ctx) error {
	var token string
	if raw := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(raw, "Bearer ") {
		token = strings.TrimPrefix(raw, "Bearer ")
	} else if raw := c.Cookies(security.LoginCookieName); len(raw) > 0 {
		token = raw
	}
	if len(token) == 0 {
		return c.Next()
	}

	claims, err := security.ParseLoginToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("Dropping request with invalid login token...")
		return c.Next()
	}

	user, err := services.EnsureAccount(claims)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Locals("user", user)
	return c.Next()
}
