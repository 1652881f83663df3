package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	BaseModel
	FullName string          `gorm:"type:varchar(255);not null" json:"full_name" validate:"required"`
	Position string          `gorm:"type:varchar(100)" json:"position"`
	Phone    string          `gorm:"type:varchar(20)" json:"phone"`
	Email    string          `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Salary   decimal.Decimal `gorm:"type:decimal(12,2)" json:"salary"`
	HireDate time.Time       `gorm:"type:date" json:"hire_date"`
	IsActive bool            `gorm:"default:true" json:"is_active"`
}

type Attendance struct {
	BaseModel
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id" validate:"uuid_required"`
	Employee   *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	CheckIn    time.Time  `gorm:"not null;index" json:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
}

type PayrollStatus string

const (
	PayrollPending PayrollStatus = "pending"
	PayrollPaid    PayrollStatus = "paid"
)

type Payroll struct {
	BaseModel
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index" json:"employee_id" validate:"uuid_required"`
	Employee   *Employee       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Month      int             `gorm:"not null" json:"month" validate:"required,gte=1,lte=12"`
	Year       int             `gorm:"not null" json:"year" validate:"required"`
	BaseSalary decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_salary"`
	Bonus      decimal.Decimal `gorm:"type:decimal(12,2)" json:"bonus"`
	Deduction  decimal.Decimal `gorm:"type:decimal(12,2)" json:"deduction"`
	NetSalary  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"net_salary"`
	Status     PayrollStatus   `gorm:"type:varchar(20);not null" json:"status"`
}
