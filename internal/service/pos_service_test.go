package service

import (
	"testing"

	"go-restaurant-pos/internal/cart"
	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(name, price string, stock int) *model.Product {
	p := &model.Product{
		SKU:           "SKU-" + name,
		NameTH:        name,
		NameEN:        name,
		Price:         decimal.RequireFromString(price),
		Cost:          decimal.Zero,
		StockQuantity: stock,
		IsActive:      true,
		IsAvailable:   true,
	}
	p.ID = uuid.New()
	return p
}

type posFixture struct {
	service  POSService
	products *fakeProductRepo
	orders   *fakeOrderRepo
	payments *fakePaymentRepo
	receipts *fakeReceiptRepo
	audit    *fakeAuditRepo
}

func newPOSFixture(products ...*model.Product) *posFixture {
	hub := ws.NewHub()
	go hub.Run()

	f := &posFixture{
		products: newFakeProductRepo(products...),
		orders:   &fakeOrderRepo{},
		payments: &fakePaymentRepo{},
		receipts: &fakeReceiptRepo{},
		audit:    &fakeAuditRepo{},
	}
	f.service = NewPOSService(newFakeCategoryRepo(), f.products, f.orders, f.payments, f.receipts, f.audit, cart.NewStore(), hub)
	return f
}

func TestPOSService_AddToCart(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	f := newPOSFixture(latte)

	view, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("65.00")))

	view, err = f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
}

func TestPOSService_AddToCart_OutOfStock(t *testing.T) {
	soldOut := testProduct("Soldout", "65.00", 0)
	f := newPOSFixture(soldOut)

	_, err := f.service.AddToCart("t1", soldOut.ID)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestPOSService_AddToCart_UnknownProduct(t *testing.T) {
	f := newPOSFixture()

	_, err := f.service.AddToCart("t1", uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestPOSService_CartsAreIsolatedPerTerminal(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	f := newPOSFixture(latte)

	_, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)

	other := f.service.GetCart("t2")
	assert.Empty(t, other.Lines)
}

func TestPOSService_Checkout(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	padThai := testProduct("PadThai", "120.00", 5)
	f := newPOSFixture(latte, padThai)

	_, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)
	_, err = f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)
	_, err = f.service.AddToCart("t1", padThai.ID)
	require.NoError(t, err)

	table := 4
	result, err := f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderDineIn,
		TableNumber:   &table,
		PaymentMethod: model.PayCash,
	}, uuid.New().String(), "Cashier One")
	require.NoError(t, err)

	want := decimal.RequireFromString("250.00")

	require.NotNil(t, result.Order)
	assert.Equal(t, model.OrderStatusCompleted, result.Order.Status)
	assert.Equal(t, "Guest", result.Order.CustomerName)
	assert.True(t, result.Order.Total.Equal(want))
	assert.NotEmpty(t, result.Order.OrderNumber)

	require.NotNil(t, result.Payment)
	assert.Equal(t, model.PayCash, result.Payment.Method)
	assert.Equal(t, model.PaymentCompleted, result.Payment.Status)
	assert.True(t, result.Payment.Amount.Equal(want), "payment must equal order total")

	require.NotNil(t, result.Receipt)
	assert.True(t, result.Receipt.TotalAmount.Equal(want))
	assert.False(t, result.Receipt.Printed)

	require.Len(t, f.orders.items, 2)
	itemSum := decimal.Zero
	for _, item := range f.orders.items {
		assert.Equal(t, result.Order.ID, item.OrderID)
		itemSum = itemSum.Add(item.Subtotal)
	}
	assert.True(t, itemSum.Equal(want), "item subtotals must sum to the order total")

	// Checkout clears the cart
	assert.Empty(t, f.service.GetCart("t1").Lines)
}

func TestPOSService_Checkout_EmptyCart(t *testing.T) {
	f := newPOSFixture()

	_, err := f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderTakeaway,
		PaymentMethod: model.PayCash,
	}, uuid.New().String(), "Cashier One")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPOSService_Checkout_DineInRequiresTable(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	f := newPOSFixture(latte)

	_, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)

	_, err = f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderDineIn,
		PaymentMethod: model.PayCash,
	}, uuid.New().String(), "Cashier One")
	assert.ErrorIs(t, err, ErrTableRequired)

	// Takeaway needs no table
	_, err = f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderTakeaway,
		PaymentMethod: model.PayCash,
	}, uuid.New().String(), "Cashier One")
	assert.NoError(t, err)
}

func TestPOSService_Checkout_InvalidPaymentMethod(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	f := newPOSFixture(latte)

	_, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)

	_, err = f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderTakeaway,
		PaymentMethod: "cheque",
	}, uuid.New().String(), "Cashier One")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

// A failure between the order insert and the item batch leaves the order row
// behind with zero items and keeps the cart: there is no rollback.
func TestPOSService_Checkout_ItemInsertFailureLeavesOrder(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	f := newPOSFixture(latte)
	f.orders.failOnItems = true

	_, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)

	_, err = f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderTakeaway,
		PaymentMethod: model.PayCash,
	}, uuid.New().String(), "Cashier One")
	require.Error(t, err)

	require.Len(t, f.orders.orders, 1, "order row persists despite the failure")
	assert.Empty(t, f.orders.items)
	assert.Empty(t, f.payments.payments)
	assert.Empty(t, f.receipts.receipts)

	// The cart is only cleared after all four writes succeed
	assert.NotEmpty(t, f.service.GetCart("t1").Lines)
}

// Payment failure leaves both the order and its items behind
func TestPOSService_Checkout_PaymentFailureLeavesOrderAndItems(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	f := newPOSFixture(latte)
	f.payments.failCreate = true

	_, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)

	_, err = f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderTakeaway,
		PaymentMethod: model.PayCard,
	}, uuid.New().String(), "Cashier One")
	require.Error(t, err)

	assert.Len(t, f.orders.orders, 1)
	assert.Len(t, f.orders.items, 1)
	assert.Empty(t, f.receipts.receipts)
}

// Checkout never decrements stock; the catalog gate is the only stock control
func TestPOSService_Checkout_DoesNotTouchStock(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	f := newPOSFixture(latte)

	_, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)

	_, err = f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderTakeaway,
		PaymentMethod: model.PayCash,
	}, uuid.New().String(), "Cashier One")
	require.NoError(t, err)

	got, err := f.products.FindByID(latte.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.StockQuantity)
}

func TestPOSService_GetRecentOrders(t *testing.T) {
	latte := testProduct("Latte", "65.00", 10)
	f := newPOSFixture(latte)
	userID := uuid.New().String()

	_, err := f.service.AddToCart("t1", latte.ID)
	require.NoError(t, err)
	_, err = f.service.Checkout("t1", &CheckoutRequest{
		OrderType:     model.OrderTakeaway,
		PaymentMethod: model.PayCash,
	}, userID, "Cashier One")
	require.NoError(t, err)

	orders, err := f.service.GetRecentOrders(0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("65.00")))
}
