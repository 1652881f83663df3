package service

import (
	"testing"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payment(method model.PaymentMethod, status model.PaymentStatus, amount string) model.Payment {
	return model.Payment{
		Method: method,
		Status: status,
		Amount: decimal.RequireFromString(amount),
		PaidAt: time.Now(),
	}
}

func TestSummarizePayments(t *testing.T) {
	payments := []model.Payment{
		payment(model.PayCash, model.PaymentCompleted, "100.00"),
		payment(model.PayCash, model.PaymentCompleted, "50.50"),
		payment(model.PayCard, model.PaymentCompleted, "200.00"),
		payment(model.PayQR, model.PaymentCompleted, "75.25"),
		payment(model.PayCash, model.PaymentPending, "999.00"),
		payment(model.PayCard, model.PaymentFailed, "999.00"),
	}

	summary := SummarizePayments(payments)

	assert.True(t, summary.Cash.Equal(decimal.RequireFromString("150.50")))
	assert.True(t, summary.Card.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, summary.QR.Equal(decimal.RequireFromString("75.25")))
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("425.75")))
	assert.Equal(t, 4, summary.Count, "pending and failed payments must not count")

	// The method buckets always sum to the grand total
	assert.True(t, summary.Cash.Add(summary.Card).Add(summary.QR).Equal(summary.Total))
}

func TestSummarizePayments_Empty(t *testing.T) {
	summary := SummarizePayments(nil)

	assert.True(t, summary.Total.IsZero())
	assert.Equal(t, 0, summary.Count)
}

type cashierFixture struct {
	service  CashierService
	shifts   *fakeShiftRepo
	payments *fakePaymentRepo
	receipts *fakeReceiptRepo
	orders   *fakeOrderRepo
	settings *fakeSettingRepo
}

func newCashierFixture() *cashierFixture {
	hub := ws.NewHub()
	go hub.Run()

	f := &cashierFixture{
		shifts:   &fakeShiftRepo{},
		payments: &fakePaymentRepo{},
		receipts: &fakeReceiptRepo{},
		orders:   &fakeOrderRepo{},
		settings: &fakeSettingRepo{},
	}
	f.service = NewCashierService(f.shifts, f.payments, f.receipts, f.orders, f.settings, &fakeAuditRepo{}, hub)
	return f
}

func TestCashierService_OpenAndCloseShift(t *testing.T) {
	f := newCashierFixture()
	cashierID := uuid.New().String()

	shift, err := f.service.OpenShift(&OpenShiftRequest{
		OpeningBalance: decimal.RequireFromString("1000.00"),
	}, cashierID)
	require.NoError(t, err)
	assert.Equal(t, model.ShiftOpen, shift.Status)
	assert.Nil(t, shift.EndTime)
	assert.Nil(t, shift.ClosingBalance)

	current, err := f.service.CurrentShift()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, shift.ID, current.ID)

	closed, err := f.service.CloseShift(&CloseShiftRequest{
		ClosingBalance: decimal.RequireFromString("4520.00"),
	}, cashierID)
	require.NoError(t, err)
	assert.Equal(t, model.ShiftClosed, closed.Status)
	require.NotNil(t, closed.EndTime)
	require.NotNil(t, closed.ClosingBalance)
	assert.True(t, closed.ClosingBalance.Equal(decimal.RequireFromString("4520.00")))

	current, err = f.service.CurrentShift()
	require.NoError(t, err)
	assert.Nil(t, current, "no open shift after close")
}

func TestCashierService_OpenShift_NegativeBalance(t *testing.T) {
	f := newCashierFixture()

	_, err := f.service.OpenShift(&OpenShiftRequest{
		OpeningBalance: decimal.RequireFromString("-1.00"),
	}, uuid.New().String())
	assert.ErrorIs(t, err, ErrNegativeBalance)
}

func TestCashierService_CloseShift_NoOpenShift(t *testing.T) {
	f := newCashierFixture()

	_, err := f.service.CloseShift(&CloseShiftRequest{
		ClosingBalance: decimal.RequireFromString("100.00"),
	}, uuid.New().String())
	assert.ErrorIs(t, err, ErrNoOpenShift)
}

// Nothing stops a second open shift; the current shift is simply the latest
// open row. Closing resolves them one at a time, newest first.
func TestCashierService_ConcurrentOpenShiftsResolveNewestFirst(t *testing.T) {
	f := newCashierFixture()

	first, err := f.service.OpenShift(&OpenShiftRequest{OpeningBalance: decimal.Zero}, uuid.New().String())
	require.NoError(t, err)
	first.StartTime = first.StartTime.Add(-time.Minute)

	second, err := f.service.OpenShift(&OpenShiftRequest{OpeningBalance: decimal.Zero}, uuid.New().String())
	require.NoError(t, err)

	current, err := f.service.CurrentShift()
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	_, err = f.service.CloseShift(&CloseShiftRequest{ClosingBalance: decimal.Zero}, uuid.New().String())
	require.NoError(t, err)

	current, err = f.service.CurrentShift()
	require.NoError(t, err)
	require.NotNil(t, current, "the older open shift surfaces once the newer closes")
	assert.Equal(t, first.ID, current.ID)
}

func TestCashierService_ProcessPayment(t *testing.T) {
	f := newCashierFixture()

	order := &model.Order{Total: decimal.RequireFromString("250.00")}
	require.NoError(t, f.orders.Create(order))

	p, err := f.service.ProcessPayment(&ProcessPaymentRequest{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString("250.00"),
		Method:  model.PayQR,
	}, uuid.New().String(), "Cashier One")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCompleted, p.Status)
	assert.Equal(t, model.PayQR, p.Method)
}

func TestCashierService_ProcessPayment_Validation(t *testing.T) {
	f := newCashierFixture()

	order := &model.Order{}
	require.NoError(t, f.orders.Create(order))

	_, err := f.service.ProcessPayment(&ProcessPaymentRequest{
		OrderID: order.ID,
		Amount:  decimal.Zero,
		Method:  model.PayCash,
	}, uuid.New().String(), "Cashier One")
	assert.ErrorIs(t, err, ErrInvalidPayAmount)

	_, err = f.service.ProcessPayment(&ProcessPaymentRequest{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString("10.00"),
		Method:  "cheque",
	}, uuid.New().String(), "Cashier One")
	assert.ErrorIs(t, err, ErrInvalidMethod)

	_, err = f.service.ProcessPayment(&ProcessPaymentRequest{
		OrderID: uuid.New(),
		Amount:  decimal.RequireFromString("10.00"),
		Method:  model.PayCash,
	}, uuid.New().String(), "Cashier One")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCashierService_PrintReceipt(t *testing.T) {
	f := newCashierFixture()
	userID := uuid.New().String()

	rcpt := &model.Receipt{
		ReceiptNumber: "RCP-1700000000000",
		TotalAmount:   decimal.RequireFromString("250.00"),
		IssuedAt:      time.Now(),
		Order: &model.Order{
			OrderNumber: "ORD-1700000000000",
			Items: []model.OrderItem{
				{
					Product:   &model.Product{NameEN: "Pad Thai"},
					Quantity:  2,
					UnitPrice: decimal.RequireFromString("125.00"),
					Subtotal:  decimal.RequireFromString("250.00"),
				},
			},
			Payments: []model.Payment{
				{Method: model.PayCash, Status: model.PaymentCompleted},
			},
		},
	}
	require.NoError(t, f.receipts.Create(rcpt))

	body, err := f.service.PrintReceipt(rcpt.ID, userID)
	require.NoError(t, err)
	assert.Contains(t, body, "RCP-1700000000000")
	assert.Contains(t, body, "ORD-1700000000000")
	assert.Contains(t, body, "Pad Thai")
	assert.Contains(t, body, "Paid by cash")
	assert.Contains(t, body, "Restaurant POS", "falls back to the default store name")

	// Second print of the same receipt is refused
	_, err = f.service.PrintReceipt(rcpt.ID, userID)
	assert.ErrorIs(t, err, ErrReceiptPrinted)
}

func TestCashierService_PrintReceipt_UsesStoreNameSetting(t *testing.T) {
	f := newCashierFixture()
	require.NoError(t, f.settings.Create(&model.SystemSetting{
		SettingKey:   "store_name",
		SettingValue: "Krua Thai",
	}))

	rcpt := &model.Receipt{
		ReceiptNumber: "RCP-1700000000001",
		TotalAmount:   decimal.RequireFromString("99.00"),
		IssuedAt:      time.Now(),
	}
	require.NoError(t, f.receipts.Create(rcpt))

	body, err := f.service.PrintReceipt(rcpt.ID, uuid.New().String())
	require.NoError(t, err)
	assert.Contains(t, body, "Krua Thai")
}

func TestCashierService_PrintReceipt_NotFound(t *testing.T) {
	f := newCashierFixture()

	_, err := f.service.PrintReceipt(uuid.New(), uuid.New().String())
	assert.ErrorIs(t, err, ErrReceiptNotFound)
}

func TestCashierService_GetShift(t *testing.T) {
	f := newCashierFixture()

	shift, err := f.service.OpenShift(&OpenShiftRequest{
		OpeningBalance: decimal.RequireFromString("500.00"),
	}, uuid.New().String())
	require.NoError(t, err)

	found, err := f.service.GetShift(shift.ID)
	require.NoError(t, err)
	assert.Equal(t, shift.ID, found.ID)

	_, err = f.service.GetShift(uuid.New())
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestCashierService_GetOrderPayments(t *testing.T) {
	f := newCashierFixture()
	userID := uuid.New().String()

	order := &model.Order{Total: decimal.RequireFromString("300.00"), Status: model.OrderStatusCompleted}
	require.NoError(t, f.orders.Create(order))
	other := &model.Order{Total: decimal.RequireFromString("80.00"), Status: model.OrderStatusCompleted}
	require.NoError(t, f.orders.Create(other))

	_, err := f.service.ProcessPayment(&ProcessPaymentRequest{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString("200.00"),
		Method:  model.PayCash,
	}, userID, "Cashier One")
	require.NoError(t, err)
	_, err = f.service.ProcessPayment(&ProcessPaymentRequest{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString("100.00"),
		Method:  model.PayCard,
	}, userID, "Cashier One")
	require.NoError(t, err)
	_, err = f.service.ProcessPayment(&ProcessPaymentRequest{
		OrderID: other.ID,
		Amount:  decimal.RequireFromString("80.00"),
		Method:  model.PayQR,
	}, userID, "Cashier One")
	require.NoError(t, err)

	payments, err := f.service.GetOrderPayments(order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2, "only payments for the requested order")
	for _, p := range payments {
		assert.Equal(t, order.ID, p.OrderID)
	}

	_, err = f.service.GetOrderPayments(uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
