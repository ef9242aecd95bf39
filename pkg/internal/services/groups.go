package services

import (
	"fmt"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/models"
	"gorm.io/gorm"
)

func GetGroupBySlug(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("slug = ?", slug).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func ListGroup() ([]models.Group, error) {
	var groups []models.Group
	if err := database.C.Order("title ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func NewGroup(item models.Group) (models.Group, error) {
	if err := database.C.Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to save group: %v", err)
	}
	return item, nil
}

// DeleteGroup detaches the group from its posts before removing it.
// Posts survive a group deletion; only the reference goes away.
func DeleteGroup(group models.Group) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}
