package service

import (
	"testing"

	"go-restaurant-pos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarizePayrolls(t *testing.T) {
	payrolls := []model.Payroll{
		{NetSalary: decimal.RequireFromString("15000.00"), Status: model.PayrollPaid},
		{NetSalary: decimal.RequireFromString("18500.50"), Status: model.PayrollPending},
		{NetSalary: decimal.RequireFromString("22000.00"), Status: model.PayrollPending},
	}

	summary := SummarizePayrolls(payrolls)

	assert.True(t, summary.TotalNet.Equal(decimal.RequireFromString("55500.50")))
	assert.Equal(t, 2, summary.PendingCount)
}

func TestSummarizePayrolls_Empty(t *testing.T) {
	summary := SummarizePayrolls(nil)

	assert.True(t, summary.TotalNet.IsZero())
	assert.Equal(t, 0, summary.PendingCount)
}
