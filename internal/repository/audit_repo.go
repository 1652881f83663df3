package repository

import (
	"go-restaurant-pos/internal/model"

	"gorm.io/gorm"
)

// AuditFilter narrows the audit listing; empty fields match everything
type AuditFilter struct {
	System string
	Action string
	Limit  int
}

type AuditRepository interface {
	Create(entry *model.AuditLog) error
	Find(filter AuditFilter) ([]model.AuditLog, error)
}

type auditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) AuditRepository {
	return &auditRepo{db}
}

func (r *auditRepo) Create(entry *model.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditRepo) Find(filter AuditFilter) ([]model.AuditLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := r.db.Preload("User").Order("created_at DESC").Limit(limit)
	if filter.System != "" {
		query = query.Where("system = ?", filter.System)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	var logs []model.AuditLog
	err := query.Find(&logs).Error
	return logs, err
}
