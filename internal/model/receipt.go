package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt is a printable record issued against a completed order. The
// printed flag is flipped by a separate update call from the cashier screen.
type Receipt struct {
	BaseModel
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	Order         *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	ReceiptNumber string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"receipt_number"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	IssuedAt      time.Time       `gorm:"not null" json:"issued_at"`
	Printed       bool            `gorm:"default:false" json:"printed"`
}
