package api

import (
	"fmt"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func listGroup(c *fiber.Ctx) error {
	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func listGroupPosts(c *fiber.Ctx) error {
	group, err := services.GetGroupBySlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
	}

	posts, err := services.ListPost(services.FilterPostWithGroup(database.C, group))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	page := services.Paginate(posts, c.QueryInt("page", 1), viper.GetInt("pagination.page_size"))

	return c.JSON(fiber.Map{
		"group": group,
		"page":  page,
	})
}
