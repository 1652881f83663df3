package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification rows back the realtime feed: a nil UserID means broadcast.
type Notification struct {
	BaseModel
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Type   string     `gorm:"type:varchar(50);not null" json:"type"`
	Title  string     `gorm:"type:varchar(255);not null" json:"title"`
	Body   string     `gorm:"type:text" json:"body"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}
