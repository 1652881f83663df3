package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftClosed ShiftStatus = "closed"
)

// Shift is a cashier's working session bounded by an opening and closing
// cash-balance declaration. At most one open shift is a convention, not a
// constraint: the current shift is simply the most recent row with
// status = open.
type Shift struct {
	BaseModel
	CashierID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"cashier_id" validate:"uuid_required"`
	Cashier        *User            `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	StartTime      time.Time        `gorm:"not null" json:"start_time"`
	EndTime        *time.Time       `json:"end_time,omitempty"`
	OpeningBalance decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"opening_balance"`
	ClosingBalance *decimal.Decimal `gorm:"type:decimal(12,2)" json:"closing_balance,omitempty"`
	Status         ShiftStatus      `gorm:"type:varchar(20);not null;index" json:"status"`
}

func (Shift) TableName() string {
	return "shifts"
}
