package model

import "github.com/google/uuid"

type SystemSetting struct {
	BaseModel
	SettingKey   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"setting_key" validate:"required"`
	SettingValue string `gorm:"type:text" json:"setting_value"`
	Category     string `gorm:"type:varchar(50);index" json:"category"`
	Description  string `gorm:"type:text" json:"description"`
}

// MenuItem pins a product onto the configurable POS menu layout
type MenuItem struct {
	BaseModel
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product      *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsFeatured   bool      `gorm:"default:false" json:"is_featured"`
}
