package models

type Job struct {
	BaseModel
	Title        string `gorm:"not null" json:"title"`
	Company      string `gorm:"not null" json:"company"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
	PostedBy     uint   `gorm:"not null;index" json:"posted_by"`

	// Relations
	Poster  *User    `gorm:"foreignKey:PostedBy" json:"-"`
	Reviews []Review `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
