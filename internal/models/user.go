package models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`

	// Relations
	Jobs    []Job    `gorm:"foreignKey:PostedBy" json:"-"`
	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
}
