package repository

import (
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *model.Payment) error
	FindRecent(limit int) ([]model.Payment, error)
	FindByOrderID(orderID uuid.UUID) ([]model.Payment, error)
	FindSince(since time.Time) ([]model.Payment, error)
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db}
}

func (r *paymentRepo) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepo) FindRecent(limit int) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Order("paid_at DESC").Limit(limit).Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) FindByOrderID(orderID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("order_id = ?", orderID).Order("paid_at DESC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) FindSince(since time.Time) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("paid_at >= ?", since).Order("paid_at DESC").Find(&payments).Error
	return payments, err
}
