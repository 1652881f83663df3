package service

import (
	"fmt"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/repository"
	"go-restaurant-pos/pkg/validator"

	"github.com/shopspring/decimal"
)

// AccountingOverview backs the ERP accounting screen: ledgers ordered by
// due date plus current-month expense/revenue figures.
type AccountingOverview struct {
	Payables    []model.AccountsPayable    `json:"accounts_payable"`
	Receivables []model.AccountsReceivable `json:"accounts_receivable"`
	Expenses    []model.Expense            `json:"expenses"`
	Revenues    []model.Revenue            `json:"revenues"`

	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

// SumPayableBalances totals the outstanding balance over payable rows
func SumPayableBalances(payables []model.AccountsPayable) decimal.Decimal {
	total := decimal.Zero
	for _, ap := range payables {
		total = total.Add(ap.Balance)
	}
	return total
}

func SumReceivableBalances(receivables []model.AccountsReceivable) decimal.Decimal {
	total := decimal.Zero
	for _, ar := range receivables {
		total = total.Add(ar.Balance)
	}
	return total
}

func SumExpenses(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func SumRevenues(revenues []model.Revenue) decimal.Decimal {
	total := decimal.Zero
	for _, r := range revenues {
		total = total.Add(r.Amount)
	}
	return total
}

type AccountingService interface {
	GetOverview() (*AccountingOverview, error)
	RecordExpense(req *model.Expense, userID string) error
	RecordRevenue(req *model.Revenue, userID string) error
	CreatePayable(req *model.AccountsPayable, userID string) error
	CreateReceivable(req *model.AccountsReceivable, userID string) error
}

type accountingService struct {
	accountingRepo repository.AccountingRepository
	auditRepo      repository.AuditRepository
}

func NewAccountingService(accountingRepo repository.AccountingRepository, auditRepo repository.AuditRepository) AccountingService {
	return &accountingService{accountingRepo: accountingRepo, auditRepo: auditRepo}
}

func (s *accountingService) GetOverview() (*AccountingOverview, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	payables, err := s.accountingRepo.FindPayables()
	if err != nil {
		return nil, err
	}
	receivables, err := s.accountingRepo.FindReceivables()
	if err != nil {
		return nil, err
	}
	expenses, err := s.accountingRepo.FindExpensesSince(startOfMonth)
	if err != nil {
		return nil, err
	}
	revenues, err := s.accountingRepo.FindRevenuesSince(startOfMonth)
	if err != nil {
		return nil, err
	}

	overview := &AccountingOverview{
		Payables:        payables,
		Receivables:     receivables,
		Expenses:        expenses,
		Revenues:        revenues,
		TotalPayable:    SumPayableBalances(payables),
		TotalReceivable: SumReceivableBalances(receivables),
		TotalExpenses:   SumExpenses(expenses),
		TotalRevenue:    SumRevenues(revenues),
	}
	overview.NetProfit = overview.TotalRevenue.Sub(overview.TotalExpenses)

	return overview, nil
}

func (s *accountingService) RecordExpense(req *model.Expense, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.ExpenseDate.IsZero() {
		req.ExpenseDate = time.Now()
	}
	req.CreatedBy = userID
	req.UpdatedBy = userID
	if err := s.accountingRepo.CreateExpense(req); err != nil {
		return err
	}
	s.auditRepo.Create(auditEntry(userID, "erp", "create", "expense", req.ID.String(),
		fmt.Sprintf("expense %s", req.Amount.StringFixed(2))))
	return nil
}

func (s *accountingService) RecordRevenue(req *model.Revenue, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.RevenueDate.IsZero() {
		req.RevenueDate = time.Now()
	}
	req.CreatedBy = userID
	req.UpdatedBy = userID
	if err := s.accountingRepo.CreateRevenue(req); err != nil {
		return err
	}
	s.auditRepo.Create(auditEntry(userID, "erp", "create", "revenue", req.ID.String(),
		fmt.Sprintf("revenue %s", req.Amount.StringFixed(2))))
	return nil
}

func (s *accountingService) CreatePayable(req *model.AccountsPayable, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.Balance.IsZero() {
		req.Balance = req.Amount
	}
	if req.Status == "" {
		req.Status = model.LedgerOutstanding
	}
	req.CreatedBy = userID
	req.UpdatedBy = userID
	if err := s.accountingRepo.CreatePayable(req); err != nil {
		return err
	}
	s.auditRepo.Create(auditEntry(userID, "erp", "create", "accounts_payable", req.ID.String(),
		fmt.Sprintf("payable to %s for %s", req.Vendor, req.Amount.StringFixed(2))))
	return nil
}

func (s *accountingService) CreateReceivable(req *model.AccountsReceivable, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.Balance.IsZero() {
		req.Balance = req.Amount
	}
	if req.Status == "" {
		req.Status = model.LedgerOutstanding
	}
	req.CreatedBy = userID
	req.UpdatedBy = userID
	if err := s.accountingRepo.CreateReceivable(req); err != nil {
		return err
	}
	s.auditRepo.Create(auditEntry(userID, "erp", "create", "accounts_receivable", req.ID.String(),
		fmt.Sprintf("receivable from %s for %s", req.Customer, req.Amount.StringFixed(2))))
	return nil
}
