package security

import (
	"github.com/folium-app/folium/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// GetAccount pulls the authenticated account the auth middleware
// stashed on the request context.
func GetAccount(c *fiber.Ctx) (models.Account, bool) {
	user, ok := c.Locals("user").(models.Account)
	return user, ok
}

func IsAuthenticated(c *fiber.Ctx) bool {
	_, ok := GetAccount(c)
	return ok
}

func IsAuthor(user models.Account, post models.Post) bool {
	return user.ID == post.AuthorID
}

func IsAdministrator(user models.Account) bool {
	return lo.Contains(viper.GetStringSlice("security.administrators"), user.Name)
}
