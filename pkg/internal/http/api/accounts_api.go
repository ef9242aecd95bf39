package api

import (
	"fmt"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/folium-app/folium/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func listAccountPosts(c *fiber.Ctx) error {
	author, err := services.GetAccountByName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find author: %v", err))
	}

	posts, err := services.ListPost(services.FilterPostWithAuthor(database.C, author))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	page := services.Paginate(posts, c.QueryInt("page", 1), viper.GetInt("pagination.page_size"))

	resp := fiber.Map{
		"author": author,
		"page":   page,
	}

	// Signed-in viewers also get their follow state towards the author
	if user, ok := security.GetAccount(c); ok {
		following, err := services.IsFollowing(user, author)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		resp["is_following"] = following
	}

	return c.JSON(resp)
}

func followAccount(c *fiber.Ctx) error {
	user, _ := security.GetAccount(c)

	author, err := services.GetAccountByName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find author: %v", err))
	}

	if err := services.FollowAuthor(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/api/feed", fiber.StatusFound)
}

func unfollowAccount(c *fiber.Ctx) error {
	user, _ := security.GetAccount(c)

	author, err := services.GetAccountByName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find author: %v", err))
	}

	if err := services.UnfollowAuthor(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/api/feed", fiber.StatusFound)
}
