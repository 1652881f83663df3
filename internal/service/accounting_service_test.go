package service

import (
	"testing"
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumPayableBalances(t *testing.T) {
	payables := []model.AccountsPayable{
		{Amount: decimal.RequireFromString("5000.00"), Balance: decimal.RequireFromString("5000.00"), Status: model.LedgerOutstanding},
		{Amount: decimal.RequireFromString("3000.00"), Balance: decimal.RequireFromString("1200.00"), Status: model.LedgerPartial},
		{Amount: decimal.RequireFromString("900.00"), Balance: decimal.Zero, Status: model.LedgerSettled},
	}

	// Balance, not the original amount, is what remains owed
	assert.True(t, SumPayableBalances(payables).Equal(decimal.RequireFromString("6200.00")))
}

func TestSumReceivableBalances(t *testing.T) {
	receivables := []model.AccountsReceivable{
		{Balance: decimal.RequireFromString("250.75")},
		{Balance: decimal.RequireFromString("100.25")},
	}

	assert.True(t, SumReceivableBalances(receivables).Equal(decimal.RequireFromString("351.00")))
	assert.True(t, SumReceivableBalances(nil).IsZero())
}

func TestAccountingService_GetOverview(t *testing.T) {
	repo := &fakeAccountingRepo{}
	svc := NewAccountingService(repo, &fakeAuditRepo{})
	userID := uuid.New().String()

	require.NoError(t, svc.RecordRevenue(&model.Revenue{
		Description: "daily sales",
		Category:    "sales",
		Amount:      decimal.RequireFromString("1000.00"),
		RevenueDate: time.Now(),
	}, userID))
	require.NoError(t, svc.RecordExpense(&model.Expense{
		Description: "napkins",
		Category:    "supplies",
		Amount:      decimal.RequireFromString("400.00"),
		ExpenseDate: time.Now(),
	}, userID))
	require.NoError(t, svc.CreatePayable(&model.AccountsPayable{
		Vendor:  "Siam Produce",
		Amount:  decimal.RequireFromString("5000.00"),
		DueDate: time.Now().AddDate(0, 0, 14),
	}, userID))

	overview, err := svc.GetOverview()
	require.NoError(t, err)

	assert.True(t, overview.TotalRevenue.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, overview.TotalExpenses.Equal(decimal.RequireFromString("400.00")))
	assert.True(t, overview.NetProfit.Equal(decimal.RequireFromString("600.00")))
	assert.True(t, overview.TotalPayable.Equal(decimal.RequireFromString("5000.00")), "payable balance defaults to the full amount")
	assert.True(t, overview.TotalReceivable.IsZero())
	assert.Len(t, overview.Expenses, 1)
	assert.Len(t, overview.Revenues, 1)
}

func TestAccountingService_GetOverview_ExcludesPriorMonths(t *testing.T) {
	repo := &fakeAccountingRepo{}
	svc := NewAccountingService(repo, &fakeAuditRepo{})
	userID := uuid.New().String()

	require.NoError(t, svc.RecordRevenue(&model.Revenue{
		Description: "catering",
		Category:    "sales",
		Amount:      decimal.RequireFromString("9999.00"),
		RevenueDate: time.Now().AddDate(0, -2, 0),
	}, userID))

	overview, err := svc.GetOverview()
	require.NoError(t, err)

	assert.True(t, overview.TotalRevenue.IsZero(), "only the current month counts")
	assert.True(t, overview.NetProfit.IsZero())
}
