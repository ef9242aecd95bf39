package services

import (
	"fmt"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm/clause"
)

// ListFollowingIDs returns the ids of every author the user follows,
// deduplicated, never containing the user themselves.
func ListFollowingIDs(user models.Account) ([]uint, error) {
	var ids []uint
	if err := database.C.Model(&models.Follow{}).
		Where("follower_id = ?", user.ID).
		Distinct().
		Pluck("author_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("unable to list followed authors: %v", err)
	}

	return lo.Filter(lo.Uniq(ids), func(id uint, _ int) bool {
		return id != user.ID
	}), nil
}

func IsFollowing(user models.Account, author models.Account) (bool, error) {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("follower_id = ? AND author_id = ?", user.ID, author.ID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("unable to check follow state: %v", err)
	}
	return count > 0, nil
}

// FollowAuthor creates the edge unless it already exists or the user
// is trying to follow themselves; both cases are quiet no-ops. The
// unique index over (follower_id, author_id) plus ON CONFLICT DO
// NOTHING covers concurrent requests for the same pair.
func FollowAuthor(user models.Account, author models.Account) error {
	if user.ID == author.ID {
		return nil
	}

	edge := models.Follow{
		FollowerID: user.ID,
		AuthorID:   author.ID,
	}
	if err := database.C.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "author_id"}},
		DoNothing: true,
	}).Create(&edge).Error; err != nil {
		return fmt.Errorf("unable to follow author: %v", err)
	}

	return nil
}

// UnfollowAuthor removes the edge for good; an absent edge is a no-op.
func UnfollowAuthor(user models.Account, author models.Account) error {
	if err := database.C.
		Where("follower_id = ? AND author_id = ?", user.ID, author.ID).
		Delete(&models.Follow{}).Error; err != nil {
		return fmt.Errorf("unable to unfollow author: %v", err)
	}

	return nil
}

// FeedForAccount returns every post authored by someone the user
// follows, newest first. Zero follows means an empty feed and no trip
// to the posts table.
func FeedForAccount(user models.Account) ([]models.Post, error) {
	ids, err := ListFollowingIDs(user)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Post{}, nil
	}

	return ListPost(database.C.Where("author_id IN ?", ids))
}
