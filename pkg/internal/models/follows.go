package models

import "time"

// Follow is a directed edge from a follower to a followed author.
// The composite unique index is what keeps concurrent follow requests
// from producing duplicate edges; application checks alone cannot.
// Edges are removed for real on unfollow, so no soft delete here.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_author"`
	AuthorID   uint      `json:"author_id" gorm:"index;uniqueIndex:idx_follower_author"`
	CreatedAt  time.Time `json:"created_at"`

	Follower Account `json:"follower" gorm:"foreignKey:FollowerID"`
	Author   Account `json:"author" gorm:"foreignKey:AuthorID"`
}
