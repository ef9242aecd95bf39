package api

import (
	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/http/exts"
	"github.com/folium-app/folium/pkg/internal/models"
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/folium-app/folium/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func createComment(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)
	user, _ := security.GetAccount(c)

	var data struct {
		Text string `json:"text" validate:"required,max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var post models.Post
	if err := database.C.Where("id = ?", id).First(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item, err := services.NewComment(user, post, models.Comment{Text: data.Text})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}
