package models

type Group struct {
	BaseModel

	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex" validate:"lowercase"`
	Description string `json:"description"`

	Posts []Post `json:"posts"`
}
