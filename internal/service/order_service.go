package service

import (
	"errors"
	"fmt"
	"time"

	"go-furniture-resale/internal/model"
	"go-furniture-resale/internal/repository"
	"go-furniture-resale/internal/ws"
	"go-furniture-resale/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlaceOrderRequest is the typed order intake. The handler has already
// normalized key casing, so tags here are the canonical snake_case names.
type PlaceOrderRequest struct {
	CustomerID    uint               `json:"customer_id" validate:"required,gt=0"`
	EmployeeID    uint               `json:"employee_id" validate:"required,gt=0"`
	OrderDate     time.Time          `json:"order_date"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	Lines         []OrderLineRequest `json:"details" validate:"required,min=1,dive"`
}

type OrderLineRequest struct {
	FurnitureID uint            `json:"furniture_id" validate:"required,gt=0"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

type OrderService interface {
	// PlaceOrder validates the request, fails fast on unknown customer or
	// employee, then persists the header, lines, and stock decrements in a
	// single transaction. There is no idempotency key: submitting the same
	// request twice creates two orders and decrements stock twice.
	PlaceOrder(req *PlaceOrderRequest) (*model.Order, error)
	UpdateStatus(id uint, status string) (*model.Order, error)
	GetAllOrders() ([]model.Order, error)
	GetOrderByID(id uint) (*model.Order, error)
	GetOrdersByCustomer(customerID uint) ([]model.Order, error)
}

type orderService struct {
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	orderRepo    repository.OrderRepository
	wsHub        *ws.Hub
}

func NewOrderService(
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	orderRepo repository.OrderRepository,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		orderRepo:    orderRepo,
		wsHub:        hub,
	}
}

func (s *orderService) PlaceOrder(req *PlaceOrderRequest) (*model.Order, error) {
	// 1. Structural validation, before anything touches the store.
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	// 2. Cheap fail-fast lookups outside the atomic phase.
	if _, err := s.customerRepo.FindByID(req.CustomerID); err != nil {
		return nil, ErrCustomerNotFound
	}
	if _, err := s.employeeRepo.FindByID(req.EmployeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}
	status := model.OrderStatus(req.Status)
	if status == "" {
		status = model.StatusPending
	}

	order := &model.Order{
		CustomerID:    req.CustomerID,
		EmployeeID:    req.EmployeeID,
		OrderDate:     orderDate,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
	}
	lines := make([]model.OrderLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = model.OrderLine{
			FurnitureID: l.FurnitureID,
			Quantity:    l.Quantity,
			SalePrice:   l.SalePrice,
		}
	}

	// 3. Atomic phase. Any failure here means full rollback: no order row,
	// no lines, no stock change survives the attempt.
	if err := s.orderRepo.CreateWithLines(order, lines); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFurnitureNotFound
		}
		return nil, fmt.Errorf("placing order: %w", err)
	}

	s.broadcastOrderPlaced(order)

	return order, nil
}

func (s *orderService) UpdateStatus(id uint, status string) (*model.Order, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	// Any transition within the fixed set is allowed, including Completed
	// back to Pending.
	if err := s.orderRepo.UpdateStatus(id, model.OrderStatus(status)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	return s.orderRepo.FindByID(id)
}

func (s *orderService) GetAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrderByID(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]model.Order, error) {
	if _, err := s.customerRepo.FindByID(customerID); err != nil {
		return nil, ErrCustomerNotFound
	}
	return s.orderRepo.FindByCustomerID(customerID)
}

func (s *orderService) broadcastOrderPlaced(order *model.Order) {
	if s.wsHub == nil {
		return
	}
	lines := make([]map[string]interface{}, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = map[string]interface{}{
			"furniture_id": l.FurnitureID,
			"quantity":     l.Quantity,
		}
	}
	s.wsHub.Notify(ws.Event{
		Type:   ws.EventOrderPlaced,
		Action: "stock_decremented",
		Payload: map[string]interface{}{
			"order_id":     order.ID,
			"customer_id":  order.CustomerID,
			"employee_id":  order.EmployeeID,
			"total_amount": order.TotalAmount,
			"status":       order.Status,
			"details":      lines,
		},
	})
}
