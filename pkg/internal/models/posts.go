package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Text        string                      `json:"text"`
	Language    string                      `json:"language"`
	Image       *string                     `json:"image"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	// EditedAt is only bumped by the author editing the text;
	// CreatedAt stays the presentation timestamp.
	EditedAt *time.Time `json:"edited_at"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`
}

type Comment struct {
	BaseModel

	Text string `json:"text"`

	PostID uint `json:"post_id"`
	Post   Post `json:"post"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
