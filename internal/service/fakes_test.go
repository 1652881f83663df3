package service

import (
	"errors"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. Each fake keeps created rows in slices so
// tests can assert on what was written, and supports forcing a failure on
// a specific call to exercise the non-transactional checkout path.

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) FindAll(filter repository.ProductFilter) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if filter.SellableOnly && !p.Sellable() {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindActive() ([]model.Product, error) {
	return r.FindAll(repository.ProductFilter{})
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindBySKU(sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy string) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockQuantity = newStock
	return nil
}

type fakeOrderRepo struct {
	orders      []*model.Order
	items       []model.OrderItem
	failOnItems bool
}

func (r *fakeOrderRepo) Create(order *model.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) CreateItems(items []model.OrderItem) error {
	if r.failOnItems {
		return errors.New("insert failed")
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeOrderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) FindRecent(limit int) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) GetDashboardStats() (*repository.DashboardStats, error) {
	return &repository.DashboardStats{}, nil
}

func (r *fakeOrderRepo) GetDailySales(startDate, endDate time.Time) ([]repository.SalesPoint, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	payments   []*model.Payment
	failCreate bool
}

func (r *fakePaymentRepo) Create(payment *model.Payment) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) FindRecent(limit int) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePaymentRepo) FindByOrderID(orderID uuid.UUID) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		if p.OrderID == orderID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindSince(since time.Time) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		if !p.PaidAt.Before(since) {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeReceiptRepo struct {
	receipts []*model.Receipt
}

func (r *fakeReceiptRepo) Create(receipt *model.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *fakeReceiptRepo) FindByID(id uuid.UUID) (*model.Receipt, error) {
	for _, rc := range r.receipts {
		if rc.ID == id {
			return rc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReceiptRepo) FindRecent(limit int) ([]model.Receipt, error) {
	var out []model.Receipt
	for _, rc := range r.receipts {
		out = append(out, *rc)
	}
	return out, nil
}

func (r *fakeReceiptRepo) MarkPrinted(id uuid.UUID, updatedBy string) error {
	rc, err := r.FindByID(id)
	if err != nil {
		return err
	}
	rc.Printed = true
	return nil
}

type fakeShiftRepo struct {
	shifts []*model.Shift
}

func (r *fakeShiftRepo) Create(shift *model.Shift) error {
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	r.shifts = append(r.shifts, shift)
	return nil
}

func (r *fakeShiftRepo) Update(shift *model.Shift) error {
	for i, s := range r.shifts {
		if s.ID == shift.ID {
			r.shifts[i] = shift
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeShiftRepo) FindByID(id uuid.UUID) (*model.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// FindOpen mirrors the real query: latest open shift by start time
func (r *fakeShiftRepo) FindOpen() (*model.Shift, error) {
	var open *model.Shift
	for _, s := range r.shifts {
		if s.Status != model.ShiftOpen {
			continue
		}
		if open == nil || s.StartTime.After(open.StartTime) {
			open = s
		}
	}
	if open == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return open, nil
}

func (r *fakeShiftRepo) FindRecent(limit int) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range r.shifts {
		out = append(out, *s)
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newFakeCategoryRepo(categories ...*model.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(category *model.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Update(category *model.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindActive() ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	return r.FindActive()
}

type fakeSettingRepo struct {
	settings  []*model.SystemSetting
	menuItems []*model.MenuItem
}

func (r *fakeSettingRepo) FindAll() ([]model.SystemSetting, error) {
	var out []model.SystemSetting
	for _, s := range r.settings {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSettingRepo) FindByKey(key string) (*model.SystemSetting, error) {
	for _, s := range r.settings {
		if s.SettingKey == key {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSettingRepo) UpdateValue(id uuid.UUID, value, updatedBy string) error {
	for _, s := range r.settings {
		if s.ID == id {
			s.SettingValue = value
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSettingRepo) Create(setting *model.SystemSetting) error {
	if setting.ID == uuid.Nil {
		setting.ID = uuid.New()
	}
	r.settings = append(r.settings, setting)
	return nil
}

func (r *fakeSettingRepo) FindMenuItems() ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, item := range r.menuItems {
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeSettingRepo) CreateMenuItem(item *model.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.menuItems = append(r.menuItems, item)
	return nil
}

func (r *fakeSettingRepo) DeleteMenuItem(id uuid.UUID, deletedBy string) error {
	for i, item := range r.menuItems {
		if item.ID == id {
			r.menuItems = append(r.menuItems[:i], r.menuItems[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSettingRepo) Ping() error { return nil }

type fakeAccountingRepo struct {
	payables    []*model.AccountsPayable
	receivables []*model.AccountsReceivable
	expenses    []*model.Expense
	revenues    []*model.Revenue
}

func (r *fakeAccountingRepo) CreatePayable(ap *model.AccountsPayable) error {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	r.payables = append(r.payables, ap)
	return nil
}

func (r *fakeAccountingRepo) CreateReceivable(ar *model.AccountsReceivable) error {
	if ar.ID == uuid.Nil {
		ar.ID = uuid.New()
	}
	r.receivables = append(r.receivables, ar)
	return nil
}

func (r *fakeAccountingRepo) CreateExpense(expense *model.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeAccountingRepo) CreateRevenue(revenue *model.Revenue) error {
	if revenue.ID == uuid.Nil {
		revenue.ID = uuid.New()
	}
	r.revenues = append(r.revenues, revenue)
	return nil
}

func (r *fakeAccountingRepo) FindPayables() ([]model.AccountsPayable, error) {
	var out []model.AccountsPayable
	for _, ap := range r.payables {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeAccountingRepo) FindReceivables() ([]model.AccountsReceivable, error) {
	var out []model.AccountsReceivable
	for _, ar := range r.receivables {
		out = append(out, *ar)
	}
	return out, nil
}

func (r *fakeAccountingRepo) FindExpensesSince(since time.Time) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		if !e.ExpenseDate.Before(since) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeAccountingRepo) FindRevenuesSince(since time.Time) ([]model.Revenue, error) {
	var out []model.Revenue
	for _, rv := range r.revenues {
		if !rv.RevenueDate.Before(since) {
			out = append(out, *rv)
		}
	}
	return out, nil
}

type fakeAuditRepo struct {
	entries []*model.AuditLog
}

func (r *fakeAuditRepo) Create(entry *model.AuditLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditRepo) Find(filter repository.AuditFilter) ([]model.AuditLog, error) {
	var out []model.AuditLog
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out, nil
}
