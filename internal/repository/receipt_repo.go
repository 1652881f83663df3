package repository

import (
	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceiptRepository interface {
	Create(receipt *model.Receipt) error
	FindByID(id uuid.UUID) (*model.Receipt, error)
	FindRecent(limit int) ([]model.Receipt, error)
	MarkPrinted(id uuid.UUID, updatedBy string) error
}

type receiptRepo struct {
	db *gorm.DB
}

func NewReceiptRepo(db *gorm.DB) ReceiptRepository {
	return &receiptRepo{db}
}

func (r *receiptRepo) Create(receipt *model.Receipt) error {
	return r.db.Create(receipt).Error
}

func (r *receiptRepo) FindByID(id uuid.UUID) (*model.Receipt, error) {
	var receipt model.Receipt
	err := r.db.Preload("Order").Preload("Order.Items").Preload("Order.Items.Product").
		Preload("Order.Payments").
		First(&receipt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepo) FindRecent(limit int) ([]model.Receipt, error) {
	var receipts []model.Receipt
	err := r.db.Order("issued_at DESC").Limit(limit).Find(&receipts).Error
	return receipts, err
}

// MarkPrinted flips the printed flag; a separate call from receipt creation
func (r *receiptRepo) MarkPrinted(id uuid.UUID, updatedBy string) error {
	return r.db.Model(&model.Receipt{}).Where("id = ?", id).Updates(map[string]interface{}{
		"printed":    true,
		"updated_by": updatedBy,
	}).Error
}
