package service

import (
	"errors"
	"fmt"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/repository"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSettingNotFound = errors.New("setting not found")

// DatabaseStatus mirrors the settings screen connectivity badge
type DatabaseStatus string

const (
	DBConnected    DatabaseStatus = "connected"
	DBDisconnected DatabaseStatus = "disconnected"
)

type SettingsService interface {
	GetSettings() ([]model.SystemSetting, error)
	UpdateSetting(id uuid.UUID, value, userID string) error
	GetMenuItems() ([]model.MenuItem, error)
	CreateMenuItem(req *model.MenuItem, userID string) error
	DeleteMenuItem(id uuid.UUID, userID string) error
	CheckDatabase() DatabaseStatus
}

type settingsService struct {
	settingRepo repository.SettingRepository
	auditRepo   repository.AuditRepository
}

func NewSettingsService(settingRepo repository.SettingRepository, auditRepo repository.AuditRepository) SettingsService {
	return &settingsService{settingRepo: settingRepo, auditRepo: auditRepo}
}

func (s *settingsService) GetSettings() ([]model.SystemSetting, error) {
	return s.settingRepo.FindAll()
}

func (s *settingsService) UpdateSetting(id uuid.UUID, value, userID string) error {
	if err := s.settingRepo.UpdateValue(id, value, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSettingNotFound
		}
		return err
	}
	s.auditRepo.Create(auditEntry(userID, "erp", "update", "system_setting", id.String(),
		fmt.Sprintf("setting set to %q", value)))
	return nil
}

func (s *settingsService) GetMenuItems() ([]model.MenuItem, error) {
	return s.settingRepo.FindMenuItems()
}

func (s *settingsService) CreateMenuItem(req *model.MenuItem, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	req.CreatedBy = userID
	req.UpdatedBy = userID
	if err := s.settingRepo.CreateMenuItem(req); err != nil {
		return err
	}
	s.auditRepo.Create(auditEntry(userID, "erp", "create", "menu_item", req.ID.String(),
		fmt.Sprintf("menu item for product %s at position %d", req.ProductID, req.DisplayOrder)))
	return nil
}

func (s *settingsService) DeleteMenuItem(id uuid.UUID, userID string) error {
	if err := s.settingRepo.DeleteMenuItem(id, userID); err != nil {
		return err
	}
	s.auditRepo.Create(auditEntry(userID, "erp", "delete", "menu_item", id.String(), "menu item removed"))
	return nil
}

// CheckDatabase probes connectivity with a trivial query
func (s *settingsService) CheckDatabase() DatabaseStatus {
	if err := s.settingRepo.Ping(); err != nil {
		return DBDisconnected
	}
	return DBConnected
}
