package api

import (
	"fmt"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/http/exts"
	"github.com/folium-app/folium/pkg/internal/models"
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/folium-app/folium/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":          item,
		"comment_count": services.CountCommentByPost(item),
	})
}

func createPost(c *fiber.Ctx) error {
	user, _ := security.GetAccount(c)

	var data struct {
		Text        string   `json:"text" validate:"required,max=4096"`
		Image       *string  `json:"image"`
		Attachments []string `json:"attachments"`
		Group       *string  `json:"group"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Text:        data.Text,
		Image:       data.Image,
		Attachments: data.Attachments,
	}

	if data.Group != nil {
		group, err := services.GetGroupBySlug(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
		}
		item.GroupID = &group.ID
	}

	item, err := services.NewPost(user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func editPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)
	user, _ := security.GetAccount(c)

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Someone else's post: back to the read view, no error surfaced
	if !security.IsAuthor(user, item) {
		return c.Redirect(fmt.Sprintf("/api/posts/%d", item.ID), fiber.StatusSeeOther)
	}

	var data struct {
		Text        string   `json:"text" validate:"required,max=4096"`
		Image       *string  `json:"image"`
		Attachments []string `json:"attachments"`
		Group       *string  `json:"group"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Text = data.Text
	item.Image = data.Image
	item.Attachments = data.Attachments

	item.GroupID = nil
	if data.Group != nil {
		group, err := services.GetGroupBySlug(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
		}
		item.GroupID = &group.ID
	}

	item, err := services.EditPost(item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)
	user, _ := security.GetAccount(c)

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if !security.IsAuthor(user, item) {
		return c.Redirect(fmt.Sprintf("/api/posts/%d", item.ID), fiber.StatusSeeOther)
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
