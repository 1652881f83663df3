package model

// Category is static reference data for the POS product grid
type Category struct {
	BaseModel
	NameTH       string `gorm:"type:varchar(255);not null" json:"name_th" validate:"required"`
	NameEN       string `gorm:"type:varchar(255);not null" json:"name_en" validate:"required"`
	Color        string `gorm:"type:varchar(20)" json:"color"`
	Icon         string `gorm:"type:varchar(50)" json:"icon"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Products []Product `json:"products,omitempty"`
}
