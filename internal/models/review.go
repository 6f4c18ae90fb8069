package models

type Review struct {
	BaseModel
	Content string `gorm:"not null" json:"content"`
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	JobID   uint   `gorm:"not null;index" json:"job_id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`

	// Relations
	Job    *Job  `gorm:"foreignKey:JobID" json:"-"`
	Author *User `gorm:"foreignKey:UserID" json:"-"`
}
