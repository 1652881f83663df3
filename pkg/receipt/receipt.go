package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Order and receipt numbers are timestamp-derived, not idempotency keys:
// a retried checkout mints a fresh number and is not deduplicated.
func OrderNumber(t time.Time) string {
	return fmt.Sprintf("ORD-%d", t.UnixMilli())
}

func Number(t time.Time) string {
	return fmt.Sprintf("RCP-%d", t.UnixMilli())
}

// Line is one printable receipt row
type Line struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Document is everything needed to render a receipt
type Document struct {
	StoreName     string
	ReceiptNumber string
	OrderNumber   string
	IssuedAt      time.Time
	Lines         []Line
	Total         decimal.Decimal
	Method        string
}

var printer = message.NewPrinter(language.Thai)

// Money formats an amount with the baht sign and grouped thousands,
// always two decimal places
func Money(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprintf("฿%.2f", f)
}

const width = 38

// Render produces the plain-text receipt body sent to the printer
func Render(doc Document) string {
	var b strings.Builder

	center := func(s string) {
		pad := (width - len([]rune(s))) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(s)
		b.WriteByte('\n')
	}
	rule := func() {
		b.WriteString(strings.Repeat("-", width))
		b.WriteByte('\n')
	}

	center(doc.StoreName)
	center(doc.ReceiptNumber)
	center(doc.IssuedAt.Format("2006-01-02 15:04:05"))
	rule()

	row := func(left, right string) {
		pad := width - len([]rune(left)) - len([]rune(right))
		if pad < 1 {
			pad = 1
		}
		b.WriteString(left + strings.Repeat(" ", pad) + right + "\n")
	}

	for _, l := range doc.Lines {
		fmt.Fprintf(&b, "%s\n", l.Name)
		row(fmt.Sprintf("  %d x %s", l.Quantity, Money(l.UnitPrice)), Money(l.Subtotal))
	}
	rule()

	row("TOTAL", Money(doc.Total))
	fmt.Fprintf(&b, "Paid by %s\n", doc.Method)
	rule()
	center("Order " + doc.OrderNumber)
	center("Thank you")

	return b.String()
}
