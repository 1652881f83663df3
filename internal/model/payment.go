package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
	PayQR   PaymentMethod = "qr_code"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	BaseModel
	OrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id" validate:"uuid_required"`
	Order   *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Amount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Method  PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method" validate:"required,oneof=cash card qr_code"`
	Status  PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaidAt  time.Time       `gorm:"not null" json:"payment_date"`
}
