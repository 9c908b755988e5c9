package repository

import (
	"time"

	"go-furniture-resale/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateWithLines persists the order header, its lines, and the matching
	// stock decrements as one all-or-nothing transaction. On success the
	// order carries its generated id and lines; on failure nothing from the
	// attempt is observable.
	CreateWithLines(order *model.Order, lines []model.OrderLine) error
	FindAll() ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	FindByCustomerID(customerID uint) ([]model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) error
	SalesByDay(startDate, endDate time.Time) ([]SalesByDay, error)
	DashboardStats() (*DashboardStats, error)
}

// SalesByDay aggregates non-cancelled orders for chart data.
type SalesByDay struct {
	Date    string          `json:"date"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type DashboardStats struct {
	TotalItems     int64           `json:"total_items"`
	LowStockCount  int64           `json:"low_stock_count"`
	StockValuation decimal.Decimal `json:"stock_valuation"`
}

type orderRepo struct {
	db        *gorm.DB
	furniture FurnitureRepository
}

func NewOrderRepo(db *gorm.DB, furniture FurnitureRepository) OrderRepository {
	return &orderRepo{db: db, furniture: furniture}
}

func (r *orderRepo) CreateWithLines(order *model.Order, lines []model.OrderLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
			if err := r.furniture.DecrementStock(tx, lines[i].FurnitureID, lines[i].Quantity); err != nil {
				return err
			}
		}
		order.Lines = lines
		return nil
	})
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Customer").Preload("Employee").
		Order("order_id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Customer").Preload("Employee").
		Preload("Lines").Preload("Lines.Item").
		First(&order, "order_id = ?", id).Error
	return &order, err
}

func (r *orderRepo) FindByCustomerID(customerID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Employee").
		Preload("Lines").Preload("Lines.Item").
		Where("customer_id = ?", customerID).
		Order("order_date DESC, order_id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateStatus(id uint, status model.OrderStatus) error {
	res := r.db.Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepo) SalesByDay(startDate, endDate time.Time) ([]SalesByDay, error) {
	var results []SalesByDay

	rows, err := r.db.Model(&model.Order{}).
		Select(`
			DATE(order_date) as date,
			COUNT(*) as orders,
			COALESCE(SUM(total_amount), 0) as revenue
		`).
		Where("order_date BETWEEN ? AND ?", startDate, endDate).
		Where("status <> ?", model.StatusCancelled).
		Group("DATE(order_date)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data SalesByDay
		if err := rows.Scan(&data.Date, &data.Orders, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *orderRepo) DashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.FurnitureItem{}).
		Where("is_active = ?", true).
		Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.FurnitureItem{}).
		Where("is_active = ? AND stock_quantity < ?", true, 10).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	row := r.db.Model(&model.FurnitureItem{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(stock_quantity * price), 0)").
		Row()
	if err := row.Scan(&stats.StockValuation); err != nil {
		return nil, err
	}

	return &stats, nil
}
