package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumber(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	assert.Equal(t, "ORD-1700000000000", OrderNumber(at))
	assert.Equal(t, "RCP-1700000000000", Number(at))

	// Same instant yields the same number: retries are not deduplicated
	assert.Equal(t, OrderNumber(at), OrderNumber(at))
	assert.NotEqual(t, OrderNumber(at), OrderNumber(at.Add(time.Millisecond)))
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "฿0.00"},
		{"65", "฿65.00"},
		{"120.5", "฿120.50"},
		{"1234.56", "฿1,234.56"},
		{"1000000", "฿1,000,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(decimal.RequireFromString(tt.in)))
	}
}

func TestRender(t *testing.T) {
	doc := Document{
		StoreName:     "Krua Thai",
		ReceiptNumber: "RCP-1700000000000",
		OrderNumber:   "ORD-1700000000000",
		IssuedAt:      time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC),
		Lines: []Line{
			{Name: "Pad Thai", Quantity: 2, UnitPrice: decimal.RequireFromString("120.00"), Subtotal: decimal.RequireFromString("240.00")},
			{Name: "Thai Iced Tea", Quantity: 1, UnitPrice: decimal.RequireFromString("45.00"), Subtotal: decimal.RequireFromString("45.00")},
		},
		Total:  decimal.RequireFromString("285.00"),
		Method: "cash",
	}

	body := Render(doc)

	assert.Contains(t, body, "Krua Thai")
	assert.Contains(t, body, "RCP-1700000000000")
	assert.Contains(t, body, "2026-03-15 18:30:00")
	assert.Contains(t, body, "Pad Thai")
	assert.Contains(t, body, "Thai Iced Tea")
	assert.Contains(t, body, "฿285.00")
	assert.Contains(t, body, "Paid by cash")
	assert.Contains(t, body, "Order ORD-1700000000000")

	// Every rendered line fits the printer width
	for _, line := range strings.Split(body, "\n") {
		require.LessOrEqual(t, len([]rune(line)), width, "line too wide: %q", line)
	}
}

func TestRender_EmptyLines(t *testing.T) {
	body := Render(Document{
		StoreName:     "Restaurant POS",
		ReceiptNumber: "RCP-1",
		Total:         decimal.Zero,
	})

	assert.Contains(t, body, "TOTAL")
	assert.Contains(t, body, "฿0.00")
}
