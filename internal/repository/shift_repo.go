package repository

import (
	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftRepository interface {
	Create(shift *model.Shift) error
	Update(shift *model.Shift) error
	FindByID(id uuid.UUID) (*model.Shift, error)
	// FindOpen returns the most recent shift with status = open. Uniqueness
	// of the open shift is a convention, not a constraint, so concurrent
	// opens can leave several matching rows; callers get the latest one.
	FindOpen() (*model.Shift, error)
	FindRecent(limit int) ([]model.Shift, error)
}

type shiftRepo struct {
	db *gorm.DB
}

func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db}
}

func (r *shiftRepo) Create(shift *model.Shift) error {
	return r.db.Create(shift).Error
}

func (r *shiftRepo) Update(shift *model.Shift) error {
	return r.db.Save(shift).Error
}

func (r *shiftRepo) FindByID(id uuid.UUID) (*model.Shift, error) {
	var shift model.Shift
	if err := r.db.Preload("Cashier").First(&shift, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) FindOpen() (*model.Shift, error) {
	var shift model.Shift
	err := r.db.Preload("Cashier").
		Where("status = ?", model.ShiftOpen).
		Order("start_time DESC").
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) FindRecent(limit int) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Preload("Cashier").
		Order("start_time DESC").
		Limit(limit).
		Find(&shifts).Error
	return shifts, err
}
