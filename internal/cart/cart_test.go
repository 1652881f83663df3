package cart

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-restaurant-pos/internal/model"
)

func product(name string, price string) *model.Product {
	p := &model.Product{
		NameEN: name,
		Price:  decimal.RequireFromString(price),
	}
	p.ID = uuid.New()
	return p
}

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	c := &Cart{}
	latte := product("Latte", "65.00")

	c.Add(latte)
	c.Add(latte)
	c.Add(latte)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("195.00")), "total = %s", c.Total())
}

func TestCart_AddDistinctProducts(t *testing.T) {
	c := &Cart{}
	c.Add(product("Pad Thai", "120.00"))
	c.Add(product("Green Curry", "150.00"))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("270.00")))
}

func TestCart_TotalIsSumOfSubtotals(t *testing.T) {
	c := &Cart{}
	a := product("A", "9.99")
	b := product("B", "0.01")

	c.Add(a)
	c.Add(b)
	c.UpdateQuantity(a.ID, 3)
	c.UpdateQuantity(b.ID, 7)

	want := decimal.Zero
	for _, l := range c.Lines() {
		want = want.Add(l.Subtotal())
	}
	assert.True(t, c.Total().Equal(want))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("30.04")))
}

func TestCart_UpdateQuantityZeroRemovesLine(t *testing.T) {
	c := &Cart{}
	p := product("Latte", "65.00")
	c.Add(p)

	c.UpdateQuantity(p.ID, 0)

	assert.True(t, c.Empty())
	assert.True(t, c.Total().IsZero())
}

func TestCart_UpdateQuantityNegativeRemovesLine(t *testing.T) {
	c := &Cart{}
	p := product("Latte", "65.00")
	c.Add(p)

	c.UpdateQuantity(p.ID, -5)

	assert.True(t, c.Empty())
}

func TestCart_UpdateQuantityUnknownProductIsNoop(t *testing.T) {
	c := &Cart{}
	c.Add(product("Latte", "65.00"))

	c.UpdateQuantity(uuid.New(), 5)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	c := &Cart{}
	a := product("A", "10.00")
	b := product("B", "20.00")
	c.Add(a)
	c.Add(b)

	c.Remove(a.ID)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, b.ID, lines[0].ProductID)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("20.00")))
}

func TestCart_PriceCapturedAtAddTime(t *testing.T) {
	c := &Cart{}
	p := product("Latte", "65.00")
	c.Add(p)

	// A later product edit must not move the in-flight cart
	p.Price = decimal.RequireFromString("80.00")

	assert.True(t, c.Total().Equal(decimal.RequireFromString("65.00")))
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	c := &Cart{}
	c.Add(product("Latte", "65.00"))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestStore_GetCreatesPerTerminal(t *testing.T) {
	s := NewStore()

	a := s.Get("terminal-a")
	b := s.Get("terminal-b")
	require.NotNil(t, a)
	require.NotNil(t, b)

	a.Add(product("Latte", "65.00"))
	assert.False(t, a.Empty())
	assert.True(t, b.Empty(), "carts must be isolated per terminal")

	assert.Same(t, a, s.Get("terminal-a"))
}

func TestStore_Drop(t *testing.T) {
	s := NewStore()
	s.Get("terminal-a").Add(product("Latte", "65.00"))

	s.Drop("terminal-a")

	assert.True(t, s.Get("terminal-a").Empty())
}

func TestCart_ConcurrentAddsFromOneTerminal(t *testing.T) {
	s := NewStore()
	latte := product("Latte", "65.00")
	pad := product("Pad Thai", "125.00")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Get("terminal-a").Add(latte)
		}()
		go func() {
			defer wg.Done()
			s.Get("terminal-a").Add(pad)
		}()
	}
	wg.Wait()

	c := s.Get("terminal-a")
	lines := c.Lines()
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 50, l.Quantity)
	}
	assert.True(t, c.Total().Equal(decimal.RequireFromString("9500.00")))
}
