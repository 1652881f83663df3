package repository

import (
	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows the catalog listing: equality on category, substring
// match on names, and the sellable gate used by the POS grid.
type ProductFilter struct {
	CategoryID   *uuid.UUID
	Search       string
	SellableOnly bool
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter ProductFilter) ([]model.Product, error)
	FindActive() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(filter ProductFilter) ([]model.Product, error) {
	var products []model.Product
	query := r.db.Preload("Category").Where("is_active = ?", true)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name_th ILIKE ? OR name_en ILIKE ? OR sku ILIKE ?", like, like, like)
	}
	if filter.SellableOnly {
		query = query.Where("is_available = ? AND stock_quantity > 0", true)
	}
	err := query.Order("name_th ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindActive() ([]model.Product, error) {
	return r.FindAll(ProductFilter{})
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// UpdateStock takes the surrounding *gorm.DB (tx) so it can run inside a
// locked transaction from the inventory service
func (r *productRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_quantity": newStock,
			"updated_by":     updatedBy,
		}).Error
}
