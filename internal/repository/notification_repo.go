package repository

import (
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	FindForUser(userID uuid.UUID, limit int) ([]model.Notification, error)
	MarkRead(id uuid.UUID) error
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

// FindForUser returns the user's notifications plus broadcast rows
func (r *notificationRepo) FindForUser(userID uuid.UUID, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var notifications []model.Notification
	err := r.db.Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) MarkRead(id uuid.UUID) error {
	return r.db.Model(&model.Notification{}).Where("id = ?", id).
		Update("read_at", time.Now()).Error
}
