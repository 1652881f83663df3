package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

// Order status is a free-form string; checkout writes it as "completed"
// directly (there is no pending state in the POS flow).
const OrderStatusCompleted = "completed"

type Order struct {
	BaseModel
	OrderNumber   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	OrderType     OrderType       `gorm:"type:varchar(20);not null" json:"order_type" validate:"required,oneof=dine_in takeaway delivery"`
	TableNumber   *int            `json:"table_number,omitempty"`
	CustomerName  string          `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerPhone string          `gorm:"type:varchar(20)" json:"customer_phone"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Status        string          `gorm:"type:varchar(20);not null" json:"status"`

	Items    []OrderItem `json:"items,omitempty"`
	Payments []Payment   `json:"payments,omitempty"`
}

// OrderItem rows are inserted as a batch after the order row; there is no
// transaction spanning the two inserts (see checkout workflow).
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
}
