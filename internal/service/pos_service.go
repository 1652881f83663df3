package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-restaurant-pos/internal/cart"
	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/repository"
	"go-restaurant-pos/internal/ws"
	"go-restaurant-pos/pkg/receipt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrTableRequired   = errors.New("table number is required for dine-in orders")
	ErrInvalidMethod   = errors.New("invalid payment method")
)

type POSService interface {
	GetCategories() ([]model.Category, error)
	GetProducts(filter repository.ProductFilter) ([]model.Product, error)

	AddToCart(terminalID string, productID uuid.UUID) (*CartView, error)
	UpdateCartQuantity(terminalID string, productID uuid.UUID, qty int) (*CartView, error)
	RemoveFromCart(terminalID string, productID uuid.UUID) (*CartView, error)
	GetCart(terminalID string) *CartView

	Checkout(terminalID string, req *CheckoutRequest, userID, userName string) (*CheckoutResult, error)
	GetRecentOrders(limit int) ([]model.Order, error)
}

// CartView is the cart snapshot returned to the terminal after every mutation
type CartView struct {
	Lines []cart.Line     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type CheckoutRequest struct {
	OrderType     model.OrderType     `json:"order_type" validate:"required,oneof=dine_in takeaway delivery"`
	TableNumber   *int                `json:"table_number"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	PaymentMethod model.PaymentMethod `json:"payment_method" validate:"required,oneof=cash card qr_code"`
}

type CheckoutResult struct {
	Order   *model.Order   `json:"order"`
	Payment *model.Payment `json:"payment"`
	Receipt *model.Receipt `json:"receipt"`
}

type posService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	receiptRepo  repository.ReceiptRepository
	auditRepo    repository.AuditRepository
	carts        *cart.Store
	wsHub        *ws.Hub
}

func NewPOSService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	receiptRepo repository.ReceiptRepository,
	auditRepo repository.AuditRepository,
	carts *cart.Store,
	hub *ws.Hub,
) POSService {
	return &posService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		receiptRepo:  receiptRepo,
		auditRepo:    auditRepo,
		carts:        carts,
		wsHub:        hub,
	}
}

func (s *posService) GetCategories() ([]model.Category, error) {
	return s.categoryRepo.FindActive()
}

func (s *posService) GetProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(filter)
}

// AddToCart increments the line for the product, fetching a fresh price
// snapshot on first add. The stock check here mirrors the catalog gate only;
// quantity is never validated against live stock.
func (s *posService) AddToCart(terminalID string, productID uuid.UUID) (*CartView, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if product.StockQuantity <= 0 {
		return nil, ErrOutOfStock
	}

	c := s.carts.Get(terminalID)
	c.Add(product)
	return s.view(c), nil
}

func (s *posService) UpdateCartQuantity(terminalID string, productID uuid.UUID, qty int) (*CartView, error) {
	c := s.carts.Get(terminalID)
	c.UpdateQuantity(productID, qty)
	return s.view(c), nil
}

func (s *posService) RemoveFromCart(terminalID string, productID uuid.UUID) (*CartView, error) {
	c := s.carts.Get(terminalID)
	c.Remove(productID)
	return s.view(c), nil
}

func (s *posService) GetCart(terminalID string) *CartView {
	return s.view(s.carts.Get(terminalID))
}

// Checkout emits the order, its items, the payment and the receipt as four
// independent writes with no surrounding transaction and no compensation.
// If a later step fails, the earlier rows persist as-is: an order with no
// items, or an order with items but no payment. A retry mints a fresh
// timestamp-derived order number, so retries are not deduplicated. This
// matches the observed workflow; it is a known gap, not a guarantee.
func (s *posService) Checkout(terminalID string, req *CheckoutRequest, userID, userName string) (*CheckoutResult, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	c := s.carts.Get(terminalID)
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	lines := c.Lines()
	total := c.Total()
	now := time.Now()

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Guest"
	}

	// Step 1: order row, already in its terminal status
	order := &model.Order{
		OrderNumber:   receipt.OrderNumber(now),
		OrderType:     req.OrderType,
		TableNumber:   req.TableNumber,
		CustomerName:  customerName,
		CustomerPhone: req.CustomerPhone,
		Total:         total,
		Status:        model.OrderStatusCompleted,
	}
	order.CreatedBy = userID
	order.UpdatedBy = userID
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Step 2: line items batch
	items := make([]model.OrderItem, len(lines))
	for i, l := range lines {
		items[i] = model.OrderItem{
			OrderID:   order.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		}
		items[i].CreatedBy = userID
		items[i].UpdatedBy = userID
	}
	if err := s.orderRepo.CreateItems(items); err != nil {
		return nil, err
	}

	// Step 3: payment
	payment := &model.Payment{
		OrderID: order.ID,
		Amount:  total,
		Method:  req.PaymentMethod,
		Status:  model.PaymentCompleted,
		PaidAt:  now,
	}
	payment.CreatedBy = userID
	payment.UpdatedBy = userID
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	// Step 4: receipt
	rcpt := &model.Receipt{
		OrderID:       order.ID,
		ReceiptNumber: receipt.Number(now),
		TotalAmount:   total,
		IssuedAt:      now,
		Printed:       false,
	}
	rcpt.CreatedBy = userID
	rcpt.UpdatedBy = userID
	if err := s.receiptRepo.Create(rcpt); err != nil {
		return nil, err
	}

	c.Clear()

	s.auditRepo.Create(auditEntry(userID, "pos", "create", "order", order.ID.String(),
		fmt.Sprintf("order %s, %d items, %s via %s", order.OrderNumber, len(items), total.StringFixed(2), req.PaymentMethod)))

	go func() {
		payload := map[string]interface{}{
			"type":   "order_created",
			"action": "checkout",
			"order": map[string]interface{}{
				"id":           order.ID,
				"order_number": order.OrderNumber,
				"order_type":   order.OrderType,
				"total":        order.Total,
				"items":        len(items),
			},
			"user": map[string]interface{}{
				"id":   userID,
				"name": userName,
			},
			"message": fmt.Sprintf("%s completed order %s", userName, order.OrderNumber),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return &CheckoutResult{Order: order, Payment: payment, Receipt: rcpt}, nil
}

// GetRecentOrders lists the latest orders with their items for the
// order-history panel on the terminal
func (s *posService) GetRecentOrders(limit int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.orderRepo.FindRecent(limit)
}

func (s *posService) view(c *cart.Cart) *CartView {
	return &CartView{Lines: c.Lines(), Total: c.Total()}
}

func validateCheckout(req *CheckoutRequest) error {
	switch req.PaymentMethod {
	case model.PayCash, model.PayCard, model.PayQR:
	default:
		return ErrInvalidMethod
	}
	if req.OrderType == model.OrderDineIn && req.TableNumber == nil {
		return ErrTableRequired
	}
	switch req.OrderType {
	case model.OrderDineIn, model.OrderTakeaway, model.OrderDelivery:
	default:
		return errors.New("invalid order type")
	}
	return nil
}

// auditEntry builds an audit row; writes are best-effort and never block
// the calling workflow
func auditEntry(userID, system, action, entity, entityID, detail string) *model.AuditLog {
	entry := &model.AuditLog{
		System:   system,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}
	if uid, err := uuid.Parse(userID); err == nil {
		entry.UserID = &uid
	}
	entry.CreatedBy = userID
	entry.UpdatedBy = userID
	return entry
}
