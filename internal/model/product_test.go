package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_StockStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minLevel int
		want     StockStatus
	}{
		{"zero stock is out", 0, 5, StockOut},
		{"negative stock is out", -1, 5, StockOut},
		{"below minimum is low", 3, 5, StockLow},
		{"exactly minimum is low", 5, 5, StockLow},
		{"one above minimum is normal", 6, 5, StockNormal},
		{"well stocked is normal", 100, 5, StockNormal},
		{"zero minimum, zero stock is out", 0, 0, StockOut},
		{"zero minimum, one in stock is normal", 1, 0, StockNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{StockQuantity: tt.quantity, MinStockLevel: tt.minLevel}
			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}

func TestProduct_Sellable(t *testing.T) {
	tests := []struct {
		name      string
		active    bool
		available bool
		quantity  int
		want      bool
	}{
		{"active available with stock", true, true, 10, true},
		{"inactive", false, true, 10, false},
		{"unavailable", true, false, 10, false},
		{"out of stock", true, true, 0, false},
		{"low stock still sells", true, true, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{IsActive: tt.active, IsAvailable: tt.available, StockQuantity: tt.quantity}
			assert.Equal(t, tt.want, p.Sellable())
		})
	}
}

func TestProduct_Margin(t *testing.T) {
	p := &Product{
		Price: decimal.RequireFromString("120.00"),
		Cost:  decimal.RequireFromString("45.50"),
	}
	assert.True(t, p.Margin().Equal(decimal.RequireFromString("74.50")))
}
