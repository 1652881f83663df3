package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type LedgerStatus string

const (
	LedgerOutstanding LedgerStatus = "outstanding"
	LedgerPartial     LedgerStatus = "partial"
	LedgerSettled     LedgerStatus = "settled"
)

type AccountsPayable struct {
	BaseModel
	Vendor      string          `gorm:"type:varchar(255);not null" json:"vendor" validate:"required"`
	Description string          `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Balance     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"balance"`
	DueDate     time.Time       `gorm:"type:date;not null;index" json:"due_date"`
	Status      LedgerStatus    `gorm:"type:varchar(20);not null" json:"status"`
}

type AccountsReceivable struct {
	BaseModel
	Customer    string          `gorm:"type:varchar(255);not null" json:"customer" validate:"required"`
	Description string          `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Balance     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"balance"`
	DueDate     time.Time       `gorm:"type:date;not null;index" json:"due_date"`
	Status      LedgerStatus    `gorm:"type:varchar(20);not null" json:"status"`
}

type Expense struct {
	BaseModel
	Description string          `gorm:"type:text;not null" json:"description" validate:"required"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index" json:"expense_date"`
}

type Revenue struct {
	BaseModel
	Description string          `gorm:"type:text;not null" json:"description" validate:"required"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	RevenueDate time.Time       `gorm:"type:date;not null;index" json:"revenue_date"`
}
