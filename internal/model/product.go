package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockStatus is a display-only classification of a product's inventory level
type StockStatus string

const (
	StockOut    StockStatus = "out"
	StockLow    StockStatus = "low"
	StockNormal StockStatus = "normal"
)

type Product struct {
	BaseModel
	SKU           string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	NameTH        string          `gorm:"type:varchar(255);not null" json:"name_th" validate:"required"`
	NameEN        string          `gorm:"type:varchar(255);not null" json:"name_en" validate:"required"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Cost          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cost"`
	StockQuantity int             `gorm:"default:0" json:"stock_quantity"`
	MinStockLevel int             `gorm:"default:0" json:"min_stock_level"`
	Unit          string          `gorm:"type:varchar(20)" json:"unit"`
	ImageURL      string          `gorm:"type:text" json:"image_url"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id" validate:"uuid_required"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	IsAvailable   bool            `gorm:"default:true" json:"is_available"`
}

// StockStatus classifies the current stock level against the minimum.
// Not used to block sales; the only POS gate is stock_quantity > 0 at listing.
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.StockQuantity <= 0:
		return StockOut
	case p.StockQuantity <= p.MinStockLevel:
		return StockLow
	default:
		return StockNormal
	}
}

// Sellable reports whether the product appears on the POS grid
func (p *Product) Sellable() bool {
	return p.IsActive && p.IsAvailable && p.StockQuantity > 0
}

// Margin returns price minus cost (per-unit gross profit for ERP display)
func (p *Product) Margin() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}
