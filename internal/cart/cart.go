package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-restaurant-pos/internal/model"
)

// Line is one cart entry: a product snapshot plus a quantity. The price is
// captured at add time, so later product edits do not move an in-flight cart.
type Line struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns unit price times quantity
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ephemeral order being built on one POS terminal. It lives only
// in memory and is lost on restart, like page state in a browser tab.
// Requests for the same terminal can land on concurrent handlers, so every
// method takes the cart mutex.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// Add appends a line with quantity 1, or increments an existing line.
// Stock is not consulted here; the catalog listing is the only stock gate.
func (c *Cart) Add(p *model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.NameEN,
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line entirely.
func (c *Cart) UpdateQuantity(productID uuid.UUID, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		c.remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the line for the given product, if present
func (c *Cart) Remove(productID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(productID)
}

func (c *Cart) remove(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total sums unit price times quantity over all lines
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the current cart contents
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Clear drops all lines
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Store holds one cart per POS terminal id
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart for a terminal, creating it on first use
func (s *Store) Get(terminalID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[terminalID]
	if !ok {
		c = &Cart{}
		s.carts[terminalID] = c
	}
	return c
}

// Drop discards a terminal's cart
func (s *Store) Drop(terminalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, terminalID)
}
