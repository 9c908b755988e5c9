package service

import (
	"time"

	"go-furniture-resale/internal/repository"
)

type DashboardService interface {
	GetStats() (*repository.DashboardStats, error)
	GetSales(days int) ([]repository.SalesByDay, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
}

func NewDashboardService(orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{orderRepo: orderRepo}
}

func (s *dashboardService) GetStats() (*repository.DashboardStats, error) {
	return s.orderRepo.DashboardStats()
}

func (s *dashboardService) GetSales(days int) ([]repository.SalesByDay, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.orderRepo.SalesByDay(startDate, endDate)
}
