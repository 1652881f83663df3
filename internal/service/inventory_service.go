package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/repository"
	"go-restaurant-pos/internal/ws"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSKUExists         = errors.New("SKU already exists")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrCategoryNotFound  = errors.New("category not found")
)

// ProductView decorates a product with its derived stock classification
// for the inventory table badges
type ProductView struct {
	model.Product
	StockStatus model.StockStatus `json:"stock_status"`
}

// InventoryStats are the inventory screen overview cards. Valuation is
// stock on hand priced at cost.
type InventoryStats struct {
	TotalProducts int             `json:"total_products"`
	LowStock      int             `json:"low_stock"`
	OutOfStock    int             `json:"out_of_stock"`
	Valuation     decimal.Decimal `json:"valuation"`
}

// BuildInventoryStats classifies and totals already-fetched products
func BuildInventoryStats(products []model.Product) InventoryStats {
	stats := InventoryStats{Valuation: decimal.Zero}
	for _, p := range products {
		stats.TotalProducts++
		switch p.StockStatus() {
		case model.StockOut:
			stats.OutOfStock++
		case model.StockLow:
			stats.LowStock++
		}
		stats.Valuation = stats.Valuation.Add(p.Cost.Mul(decimal.NewFromInt(int64(p.StockQuantity))))
	}
	return stats
}

type InventoryService interface {
	CreateProduct(req *model.Product, userID, userName string) error
	UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error)
	AdjustStock(req *model.StockAdjustment, userID, userName string) error
	GetProducts() ([]ProductView, error)
	GetStats() (*InventoryStats, error)
}

type inventoryService struct {
	productRepo      repository.ProductRepository
	categoryRepo     repository.CategoryRepository
	auditRepo        repository.AuditRepository
	notificationRepo repository.NotificationRepository
	db               *gorm.DB
	wsHub            *ws.Hub
}

func NewInventoryService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	auditRepo repository.AuditRepository,
	notificationRepo repository.NotificationRepository,
	db *gorm.DB,
	hub *ws.Hub,
) InventoryService {
	return &inventoryService{
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		auditRepo:        auditRepo,
		notificationRepo: notificationRepo,
		db:               db,
		wsHub:            hub,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return ErrCategoryNotFound
	}

	existing, _ := s.productRepo.FindBySKU(req.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrSKUExists
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.auditRepo.Create(auditEntry(userID, "erp", "create", "product", req.ID.String(),
		fmt.Sprintf("product %s (%s) created", req.NameEN, req.SKU)))

	s.broadcastStock("product_created", userID, userName,
		fmt.Sprintf("%s created product '%s'", userName, req.NameEN), req, req.StockQuantity, req.StockQuantity)

	return nil
}

func (s *inventoryService) UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error) {
	var updated *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		oldStock := existing.StockQuantity

		existing.SKU = req.SKU
		existing.NameTH = req.NameTH
		existing.NameEN = req.NameEN
		existing.Price = req.Price
		existing.Cost = req.Cost
		existing.StockQuantity = req.StockQuantity
		existing.MinStockLevel = req.MinStockLevel
		existing.Unit = req.Unit
		existing.ImageURL = req.ImageURL
		existing.CategoryID = req.CategoryID
		existing.IsActive = req.IsActive
		existing.IsAvailable = req.IsAvailable
		existing.UpdatedBy = userID

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updated = &existing

		s.notifyStockLevel(&existing, oldStock, existing.StockQuantity)
		s.broadcastStock("product_updated", userID, userName,
			fmt.Sprintf("%s updated product '%s'", userName, existing.NameEN), &existing, oldStock, existing.StockQuantity)

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.auditRepo.Create(auditEntry(userID, "erp", "update", "product", id.String(),
		fmt.Sprintf("product %s updated", updated.NameEN)))

	return updated, nil
}

// AdjustStock applies a back-office IN/OUT movement atomically: the product
// row is locked, the new quantity written and the adjustment row inserted in
// one transaction. Never driven by POS checkout.
func (s *inventoryService) AdjustStock(req *model.StockAdjustment, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", req.ProductID).Error; err != nil {
			return ErrProductNotFound
		}

		newStock := product.StockQuantity
		if req.Type == model.AdjustIn {
			newStock += req.Quantity
		} else if req.Type == model.AdjustOut {
			if product.StockQuantity < req.Quantity {
				return ErrInsufficientStock
			}
			newStock -= req.Quantity
		}

		if err := s.productRepo.UpdateStock(tx, product.ID, newStock, userID); err != nil {
			return err
		}

		req.CreatedBy = userID
		req.UpdatedBy = userID
		if err := tx.Create(req).Error; err != nil {
			return err
		}

		s.auditRepo.Create(auditEntry(userID, "erp", "create", "stock_adjustment", req.ID.String(),
			fmt.Sprintf("%s %d x %s", req.Type, req.Quantity, product.SKU)))

		verb := "added"
		if req.Type == model.AdjustOut {
			verb = "removed"
		}
		s.notifyStockLevel(&product, product.StockQuantity, newStock)
		s.broadcastStock("stock_adjusted", userID, userName,
			fmt.Sprintf("%s %s %d units of '%s'", userName, verb, req.Quantity, product.NameEN), &product, product.StockQuantity, newStock)

		return nil
	})
}

func (s *inventoryService) GetProducts() ([]ProductView, error) {
	products, err := s.productRepo.FindActive()
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = ProductView{Product: p, StockStatus: p.StockStatus()}
	}
	return views, nil
}

func (s *inventoryService) GetStats() (*InventoryStats, error) {
	products, err := s.productRepo.FindActive()
	if err != nil {
		return nil, err
	}
	stats := BuildInventoryStats(products)
	return &stats, nil
}

// notifyStockLevel persists a broadcast notification row when a stock change
// drops a product into the low or out classification. Best-effort.
func (s *inventoryService) notifyStockLevel(p *model.Product, oldStock, newStock int) {
	was := (&model.Product{StockQuantity: oldStock, MinStockLevel: p.MinStockLevel}).StockStatus()
	now := (&model.Product{StockQuantity: newStock, MinStockLevel: p.MinStockLevel}).StockStatus()
	if now == was || now == model.StockNormal {
		return
	}

	title := fmt.Sprintf("Low stock: %s", p.NameEN)
	if now == model.StockOut {
		title = fmt.Sprintf("Out of stock: %s", p.NameEN)
	}

	n := &model.Notification{
		Type:  "stock_level",
		Title: title,
		Body:  fmt.Sprintf("%s (%s) is at %d, minimum is %d", p.NameEN, p.SKU, newStock, p.MinStockLevel),
	}
	n.CreatedBy = "system"
	n.UpdatedBy = "system"
	s.notificationRepo.Create(n)
}

func (s *inventoryService) broadcastStock(action, userID, userName, message string, product *model.Product, oldStock, newStock int) {
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": action,
			"product": map[string]interface{}{
				"id":        product.ID,
				"sku":       product.SKU,
				"name":      product.NameEN,
				"old_stock": oldStock,
				"new_stock": newStock,
			},
			"user": map[string]interface{}{
				"id":   userID,
				"name": userName,
			},
			"message": message,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
