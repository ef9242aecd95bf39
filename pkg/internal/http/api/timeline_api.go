package api

import (
	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/folium-app/folium/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// listTimeline renders the public home timeline. The whole rendered
// body sits behind a single cache key: within the TTL every caller
// gets the same bytes back no matter which page they ask for, and
// fresh writes stay invisible until the entry expires.
func listTimeline(c *fiber.Ctx) error {
	if body, hit := timelineCache.Get(c.UserContext()); hit {
		c.Set("X-Page-Cache", "hit")
		return c.Type("json").Send(body)
	}

	posts, err := services.ListPost(database.C)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	page := services.Paginate(posts, c.QueryInt("page", 1), viper.GetInt("pagination.page_size"))

	body, err := jsoniter.Marshal(fiber.Map{"page": page})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := timelineCache.Set(c.UserContext(), body); err != nil {
		log.Warn().Err(err).Msg("An error occurred when caching the timeline page...")
	}

	c.Set("X-Page-Cache", "miss")
	return c.Type("json").Send(body)
}

func listFeed(c *fiber.Ctx) error {
	user, _ := security.GetAccount(c)

	posts, err := services.FeedForAccount(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	page := services.Paginate(posts, c.QueryInt("page", 1), viper.GetInt("pagination.page_size"))

	return c.JSON(fiber.Map{"page": page})
}
