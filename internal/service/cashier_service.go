package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/repository"
	"go-restaurant-pos/internal/ws"
	"go-restaurant-pos/pkg/receipt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNoOpenShift      = errors.New("no open shift")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrReceiptPrinted   = errors.New("receipt has already been printed")
	ErrNegativeBalance  = errors.New("balance cannot be negative")
	ErrInvalidPayAmount = errors.New("payment amount must be positive")
)

type CashierService interface {
	OpenShift(req *OpenShiftRequest, cashierID string) (*model.Shift, error)
	CloseShift(req *CloseShiftRequest, userID string) (*model.Shift, error)
	CurrentShift() (*model.Shift, error)
	GetShift(id uuid.UUID) (*model.Shift, error)
	GetShiftHistory(limit int) ([]model.Shift, error)

	ProcessPayment(req *ProcessPaymentRequest, userID, userName string) (*model.Payment, error)
	GetRecentPayments(limit int) ([]model.Payment, error)
	GetOrderPayments(orderID uuid.UUID) ([]model.Payment, error)
	GetDailySummary() (*PaymentSummary, error)

	GetRecentReceipts(limit int) ([]model.Receipt, error)
	PrintReceipt(id uuid.UUID, userID string) (string, error)
}

type OpenShiftRequest struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

type CloseShiftRequest struct {
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

type ProcessPaymentRequest struct {
	OrderID uuid.UUID           `json:"order_id" validate:"uuid_required"`
	Amount  decimal.Decimal     `json:"amount"`
	Method  model.PaymentMethod `json:"payment_method" validate:"required,oneof=cash card qr_code"`
}

// PaymentSummary reproduces the cashier screen figures: completed payments
// only, grouped by method, plus the grand total
type PaymentSummary struct {
	Cash  decimal.Decimal `json:"cash"`
	Card  decimal.Decimal `json:"card"`
	QR    decimal.Decimal `json:"qr"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// SummarizePayments aggregates already-fetched payment rows. Only rows with
// status = completed contribute; pending and failed rows are skipped.
func SummarizePayments(payments []model.Payment) PaymentSummary {
	summary := PaymentSummary{
		Cash:  decimal.Zero,
		Card:  decimal.Zero,
		QR:    decimal.Zero,
		Total: decimal.Zero,
	}
	for _, p := range payments {
		if p.Status != model.PaymentCompleted {
			continue
		}
		summary.Total = summary.Total.Add(p.Amount)
		summary.Count++
		switch p.Method {
		case model.PayCash:
			summary.Cash = summary.Cash.Add(p.Amount)
		case model.PayCard:
			summary.Card = summary.Card.Add(p.Amount)
		case model.PayQR:
			summary.QR = summary.QR.Add(p.Amount)
		}
	}
	return summary
}

type cashierService struct {
	shiftRepo   repository.ShiftRepository
	paymentRepo repository.PaymentRepository
	receiptRepo repository.ReceiptRepository
	orderRepo   repository.OrderRepository
	settingRepo repository.SettingRepository
	auditRepo   repository.AuditRepository
	wsHub       *ws.Hub
}

func NewCashierService(
	shiftRepo repository.ShiftRepository,
	paymentRepo repository.PaymentRepository,
	receiptRepo repository.ReceiptRepository,
	orderRepo repository.OrderRepository,
	settingRepo repository.SettingRepository,
	auditRepo repository.AuditRepository,
	hub *ws.Hub,
) CashierService {
	return &cashierService{
		shiftRepo:   shiftRepo,
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
		orderRepo:   orderRepo,
		settingRepo: settingRepo,
		auditRepo:   auditRepo,
		wsHub:       hub,
	}
}

// OpenShift inserts a new open shift for the cashier. Nothing prevents a
// second open shift racing in; CurrentShift simply returns the latest.
func (s *cashierService) OpenShift(req *OpenShiftRequest, cashierID string) (*model.Shift, error) {
	if req.OpeningBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	id, err := uuid.Parse(cashierID)
	if err != nil {
		return nil, errors.New("invalid cashier ID")
	}

	shift := &model.Shift{
		CashierID:      id,
		StartTime:      time.Now(),
		OpeningBalance: req.OpeningBalance,
		Status:         model.ShiftOpen,
	}
	shift.CreatedBy = cashierID
	shift.UpdatedBy = cashierID

	if err := s.shiftRepo.Create(shift); err != nil {
		return nil, err
	}

	s.auditRepo.Create(auditEntry(cashierID, "pos", "create", "shift", shift.ID.String(),
		fmt.Sprintf("shift opened with balance %s", req.OpeningBalance.StringFixed(2))))

	s.broadcast("shift_opened", fmt.Sprintf("Shift opened with %s", req.OpeningBalance.StringFixed(2)), shift)
	return shift, nil
}

// CloseShift updates the current open shift in place with the end time,
// declared closing balance and closed status.
func (s *cashierService) CloseShift(req *CloseShiftRequest, userID string) (*model.Shift, error) {
	if req.ClosingBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	shift, err := s.shiftRepo.FindOpen()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenShift
		}
		return nil, err
	}

	now := time.Now()
	closing := req.ClosingBalance
	shift.EndTime = &now
	shift.ClosingBalance = &closing
	shift.Status = model.ShiftClosed
	shift.UpdatedBy = userID

	if err := s.shiftRepo.Update(shift); err != nil {
		return nil, err
	}

	s.auditRepo.Create(auditEntry(userID, "pos", "update", "shift", shift.ID.String(),
		fmt.Sprintf("shift closed with balance %s", closing.StringFixed(2))))

	s.broadcast("shift_closed", fmt.Sprintf("Shift closed with %s", closing.StringFixed(2)), shift)
	return shift, nil
}

// CurrentShift returns the open shift, or nil when none exists
func (s *cashierService) CurrentShift() (*model.Shift, error) {
	shift, err := s.shiftRepo.FindOpen()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return shift, nil
}

func (s *cashierService) GetShift(id uuid.UUID) (*model.Shift, error) {
	shift, err := s.shiftRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}

func (s *cashierService) GetShiftHistory(limit int) ([]model.Shift, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.shiftRepo.FindRecent(limit)
}

// ProcessPayment records a standalone payment against an existing order
func (s *cashierService) ProcessPayment(req *ProcessPaymentRequest, userID, userName string) (*model.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidPayAmount
	}
	switch req.Method {
	case model.PayCash, model.PayCard, model.PayQR:
	default:
		return nil, ErrInvalidMethod
	}

	if _, err := s.orderRepo.FindByID(req.OrderID); err != nil {
		return nil, ErrOrderNotFound
	}

	payment := &model.Payment{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
		Status:  model.PaymentCompleted,
		PaidAt:  time.Now(),
	}
	payment.CreatedBy = userID
	payment.UpdatedBy = userID

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	s.auditRepo.Create(auditEntry(userID, "pos", "create", "payment", payment.ID.String(),
		fmt.Sprintf("payment %s via %s", req.Amount.StringFixed(2), req.Method)))

	go func() {
		payload := map[string]interface{}{
			"type":   "payment_recorded",
			"action": "payment_created",
			"payment": map[string]interface{}{
				"id":       payment.ID,
				"order_id": payment.OrderID,
				"amount":   payment.Amount,
				"method":   payment.Method,
			},
			"message": fmt.Sprintf("%s recorded a %s payment of %s", userName, req.Method, req.Amount.StringFixed(2)),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return payment, nil
}

func (s *cashierService) GetRecentPayments(limit int) ([]model.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.paymentRepo.FindRecent(limit)
}

// GetOrderPayments lists every payment recorded against one order, most
// recent first
func (s *cashierService) GetOrderPayments(orderID uuid.UUID) ([]model.Payment, error) {
	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		return nil, ErrOrderNotFound
	}
	return s.paymentRepo.FindByOrderID(orderID)
}

// GetDailySummary aggregates payments since local midnight
func (s *cashierService) GetDailySummary() (*PaymentSummary, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	payments, err := s.paymentRepo.FindSince(midnight)
	if err != nil {
		return nil, err
	}

	summary := SummarizePayments(payments)
	return &summary, nil
}

func (s *cashierService) GetRecentReceipts(limit int) ([]model.Receipt, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.receiptRepo.FindRecent(limit)
}

// PrintReceipt renders the printable body and flips the printed flag with a
// separate update call, matching the cashier screen behavior.
func (s *cashierService) PrintReceipt(id uuid.UUID, userID string) (string, error) {
	rcpt, err := s.receiptRepo.FindByID(id)
	if err != nil {
		return "", ErrReceiptNotFound
	}
	if rcpt.Printed {
		return "", ErrReceiptPrinted
	}

	storeName := "Restaurant POS"
	if setting, err := s.settingRepo.FindByKey("store_name"); err == nil && setting.SettingValue != "" {
		storeName = setting.SettingValue
	}

	doc := receipt.Document{
		StoreName:     storeName,
		ReceiptNumber: rcpt.ReceiptNumber,
		IssuedAt:      rcpt.IssuedAt,
		Total:         rcpt.TotalAmount,
	}
	if rcpt.Order != nil {
		doc.OrderNumber = rcpt.Order.OrderNumber
		for _, item := range rcpt.Order.Items {
			name := ""
			if item.Product != nil {
				name = item.Product.NameEN
			}
			doc.Lines = append(doc.Lines, receipt.Line{
				Name:      name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  item.Subtotal,
			})
		}
		if len(rcpt.Order.Payments) > 0 {
			doc.Method = string(rcpt.Order.Payments[0].Method)
		}
	}

	body := receipt.Render(doc)

	if err := s.receiptRepo.MarkPrinted(id, userID); err != nil {
		return "", err
	}

	s.auditRepo.Create(auditEntry(userID, "pos", "update", "receipt", id.String(),
		fmt.Sprintf("receipt %s printed", rcpt.ReceiptNumber)))

	return body, nil
}

func (s *cashierService) broadcast(event, message string, shift *model.Shift) {
	go func() {
		payload := map[string]interface{}{
			"type":    event,
			"shift":   shift,
			"message": message,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
