package models

// Account is the local mirror of an identity service user.
// Rows are provisioned lazily when a signed login token is first seen;
// the identity service owns the lifecycle.
type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	Banner      string `json:"banner"`

	Posts     []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments  []Comment `json:"comments" gorm:"foreignKey:AuthorID"`
	Following []Follow  `json:"following" gorm:"foreignKey:FollowerID"`
}
