package services

import (
	"fmt"
	"time"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func FilterPostWithGroup(tx *gorm.DB, group models.Group) *gorm.DB {
	return tx.Where("group_id = ?", group.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, author models.Account) *gorm.DB {
	return tx.Where("author_id = ?", author.ID)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC").Preload("Author")
		}).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// ListPost pulls posts off the given filter chain, newest first.
// Newest-first is the ordering invariant of every listing; callers
// never override it.
func ListPost(tx *gorm.DB) ([]models.Post, error) {
	var items []models.Post
	if err := PreloadGeneral(tx).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func NewPost(user models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = user.ID
	item.Language = DetectLanguage(item.Text)

	if err := database.C.Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to save post: %v", err)
	}

	item.Author = user
	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	item.EditedAt = lo.ToPtr(time.Now())
	item.Language = DetectLanguage(item.Text)

	err := database.C.Save(&item).Error
	return item, err
}

// DeletePost removes the post and everything hanging off it. The
// comment cascade is evaluated here, not left to the schema.
func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
