package model

import "github.com/google/uuid"

type AdjustmentType string

const (
	AdjustIn  AdjustmentType = "IN"
	AdjustOut AdjustmentType = "OUT"
)

// StockAdjustment is the back-office stock mutation log. POS checkout does
// not write these; stock moves only through the inventory screen.
type StockAdjustment struct {
	BaseModel
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product       `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Type      AdjustmentType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int            `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Note      string         `json:"note"`
}
