package service

import (
	"time"

	"go-restaurant-pos/internal/repository"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
	GetDailySales(days int) ([]repository.SalesPoint, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
}

func NewDashboardService(orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{orderRepo: orderRepo}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.orderRepo.GetDashboardStats()
}

func (s *dashboardService) GetDailySales(days int) ([]repository.SalesPoint, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.orderRepo.GetDailySales(startDate, endDate)
}
