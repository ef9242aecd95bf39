package admin

import (
	"github.com/folium-app/folium/pkg/internal/cache"
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/gofiber/fiber/v2"
)

func MapAdminAPIs(app *fiber.App, timeline *cache.PageCache) {
	admin := app.Group("/api/admin").Name("Admin API")
	{
		// The only write-path the timeline cache has besides expiry.
		admin.Delete("/cache/timeline", func(c *fiber.Ctx) error {
			user, ok := security.GetAccount(c)
			if !ok {
				return c.Redirect("/auth/login", fiber.StatusFound)
			}
			if !security.IsAdministrator(user) {
				return fiber.NewError(fiber.StatusForbidden, "you need to be an administrator to flush caches")
			}

			if err := timeline.Clear(c.UserContext()); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}

			return c.SendStatus(fiber.StatusNoContent)
		})
	}
}
