package handler

import (
	"errors"
	"strconv"

	"go-furniture-resale/internal/service"
	"go-furniture-resale/pkg/jsoncase"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// parseID reads the :id route parameter as an unsigned integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// CreateOrder places a purchase transaction.
// POST /api/transactions
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.PlaceOrderRequest
	if err := jsoncase.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.PlaceOrder(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation),
			errors.Is(err, service.ErrCustomerNotFound),
			errors.Is(err, service.ErrEmployeeNotFound),
			errors.Is(err, service.ErrFurnitureNotFound):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Error creating transaction"})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": order})
}

// UpdateStatus changes an order's status within the fixed set.
// PUT /api/transactions/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := jsoncase.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Status == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Status is required"})
	}

	order, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Error updating transaction status"})
		}
	}

	return c.JSON(order)
}

// GetOrders lists all orders with customer and employee names.
// GET /api/transactions
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"transactions": orders})
}

// GetOrder returns one order with its lines.
// GET /api/transactions/:id
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	order, err := h.service.GetOrderByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(order)
}

// GetCustomerOrders returns a customer's purchase history.
// GET /api/customers/:id/transactions
func (h *OrderHandler) GetCustomerOrders(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	orders, err := h.service.GetOrdersByCustomer(id)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"transactions": orders})
}
