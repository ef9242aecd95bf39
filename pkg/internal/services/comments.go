package services

import (
	"fmt"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/models"
)

func NewComment(user models.Account, post models.Post, item models.Comment) (models.Comment, error) {
	item.AuthorID = user.ID
	item.PostID = post.ID

	if err := database.C.Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to save comment: %v", err)
	}

	item.Author = user
	return item, nil
}

func CountCommentByPost(post models.Post) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", post.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
