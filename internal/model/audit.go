package model

import "github.com/google/uuid"

// AuditLog is an append-only record of a mutation, written by the services
// and surfaced on the ERP audit screen with system/action filters.
type AuditLog struct {
	BaseModel
	UserID   *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User     *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	System   string     `gorm:"type:varchar(20);not null;index" json:"system"` // pos / erp
	Action   string     `gorm:"type:varchar(50);not null;index" json:"action"` // create / update / delete
	Entity   string     `gorm:"type:varchar(50);not null" json:"entity"`
	EntityID string     `gorm:"type:varchar(255)" json:"entity_id"`
	Detail   string     `gorm:"type:text" json:"detail"`
}
