package repository

import (
	"time"

	"go-restaurant-pos/internal/model"

	"gorm.io/gorm"
)

type AccountingRepository interface {
	CreatePayable(ap *model.AccountsPayable) error
	CreateReceivable(ar *model.AccountsReceivable) error
	CreateExpense(expense *model.Expense) error
	CreateRevenue(revenue *model.Revenue) error

	FindPayables() ([]model.AccountsPayable, error)
	FindReceivables() ([]model.AccountsReceivable, error)
	FindExpensesSince(since time.Time) ([]model.Expense, error)
	FindRevenuesSince(since time.Time) ([]model.Revenue, error)
}

type accountingRepo struct {
	db *gorm.DB
}

func NewAccountingRepo(db *gorm.DB) AccountingRepository {
	return &accountingRepo{db}
}

func (r *accountingRepo) CreatePayable(ap *model.AccountsPayable) error {
	return r.db.Create(ap).Error
}

func (r *accountingRepo) CreateReceivable(ar *model.AccountsReceivable) error {
	return r.db.Create(ar).Error
}

func (r *accountingRepo) CreateExpense(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *accountingRepo) CreateRevenue(revenue *model.Revenue) error {
	return r.db.Create(revenue).Error
}

func (r *accountingRepo) FindPayables() ([]model.AccountsPayable, error) {
	var payables []model.AccountsPayable
	err := r.db.Order("due_date ASC").Find(&payables).Error
	return payables, err
}

func (r *accountingRepo) FindReceivables() ([]model.AccountsReceivable, error) {
	var receivables []model.AccountsReceivable
	err := r.db.Order("due_date ASC").Find(&receivables).Error
	return receivables, err
}

func (r *accountingRepo) FindExpensesSince(since time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Where("expense_date >= ?", since).
		Order("expense_date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *accountingRepo) FindRevenuesSince(since time.Time) ([]model.Revenue, error) {
	var revenues []model.Revenue
	err := r.db.Where("revenue_date >= ?", since).
		Order("revenue_date DESC").
		Find(&revenues).Error
	return revenues, err
}
