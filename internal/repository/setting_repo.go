package repository

import (
	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingRepository interface {
	FindAll() ([]model.SystemSetting, error)
	FindByKey(key string) (*model.SystemSetting, error)
	UpdateValue(id uuid.UUID, value, updatedBy string) error
	Create(setting *model.SystemSetting) error

	FindMenuItems() ([]model.MenuItem, error)
	CreateMenuItem(item *model.MenuItem) error
	DeleteMenuItem(id uuid.UUID, deletedBy string) error

	// Ping issues a trivial query to probe database connectivity
	Ping() error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db}
}

func (r *settingRepo) FindAll() ([]model.SystemSetting, error) {
	var settings []model.SystemSetting
	err := r.db.Order("category ASC").Find(&settings).Error
	return settings, err
}

func (r *settingRepo) FindByKey(key string) (*model.SystemSetting, error) {
	var setting model.SystemSetting
	if err := r.db.First(&setting, "setting_key = ?", key).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepo) UpdateValue(id uuid.UUID, value, updatedBy string) error {
	result := r.db.Model(&model.SystemSetting{}).Where("id = ?", id).Updates(map[string]interface{}{
		"setting_value": value,
		"updated_by":    updatedBy,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *settingRepo) Create(setting *model.SystemSetting) error {
	return r.db.Create(setting).Error
}

func (r *settingRepo) FindMenuItems() ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.Preload("Product").Order("display_order ASC").Find(&items).Error
	return items, err
}

func (r *settingRepo) CreateMenuItem(item *model.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *settingRepo) DeleteMenuItem(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.MenuItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
		"deleted_by": deletedBy,
	}).Error
}

func (r *settingRepo) Ping() error {
	var count int64
	return r.db.Model(&model.SystemSetting{}).Limit(1).Count(&count).Error
}
