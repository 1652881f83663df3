package repository

import (
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardStats are the ERP overview figures
type DashboardStats struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalOrders    int64           `json:"total_orders"`
	TotalProducts  int64           `json:"total_products"`
	TotalEmployees int64           `json:"total_employees"`
}

// SalesPoint is one day of aggregated order totals for chart data
type SalesPoint struct {
	Date   string          `json:"date"`
	Orders int             `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

type OrderRepository interface {
	Create(order *model.Order) error
	CreateItems(items []model.OrderItem) error
	FindByID(id uuid.UUID) (*model.Order, error)
	FindRecent(limit int) ([]model.Order, error)
	GetDashboardStats() (*DashboardStats, error)
	GetDailySales(startDate, endDate time.Time) ([]SalesPoint, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

// CreateItems inserts the line items as one batch. Deliberately not part of
// a transaction with the order insert: the checkout workflow issues each
// write independently.
func (r *orderRepo) CreateItems(items []model.OrderItem) error {
	return r.db.Create(&items).Error
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").Preload("Items.Product").Preload("Payments").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindRecent(limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	r.db.Model(&model.Order{}).Count(&stats.TotalOrders)

	var revenue decimal.NullDecimal
	r.db.Model(&model.Order{}).
		Where("status = ?", model.OrderStatusCompleted).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue)
	if revenue.Valid {
		stats.TotalRevenue = revenue.Decimal
	}

	r.db.Model(&model.Product{}).Where("is_active = ?", true).Count(&stats.TotalProducts)
	r.db.Model(&model.Employee{}).Where("is_active = ?", true).Count(&stats.TotalEmployees)

	return &stats, nil
}

func (r *orderRepo) GetDailySales(startDate, endDate time.Time) ([]SalesPoint, error) {
	var results []SalesPoint

	rows, err := r.db.Model(&model.Order{}).
		Select("DATE(created_at) as date, COUNT(*) as orders, COALESCE(SUM(total), 0) as total").
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Where("status = ?", model.OrderStatusCompleted).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var point SalesPoint
		if err := rows.Scan(&point.Date, &point.Orders, &point.Total); err != nil {
			return nil, err
		}
		results = append(results, point)
	}

	return results, nil
}
