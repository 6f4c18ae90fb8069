package models

import (
	"time"
)

// BaseModel uses integer surrogate keys: ids double as bearer tokens on the
// wire, so they stay numeric.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
