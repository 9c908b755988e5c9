package handler

import (
	"errors"

	"go-furniture-resale/internal/service"
	"go-furniture-resale/pkg/jsoncase"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	service service.EmployeeService
}

func NewEmployeeHandler(s service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

// GET /api/employees
func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"employees": employees})
}

// GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	employee, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.JSON(employee)
}

// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req service.CreateEmployeeRequest
	if err := jsoncase.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employee, err := h.service.Create(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Employee created", "data": employee})
}

// PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	var req service.UpdateEmployeeRequest
	if err := jsoncase.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employee, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Employee updated", "data": employee})
}

// DELETE /api/employees/:id deactivates rather than deletes, preserving
// order references.
func (h *EmployeeHandler) DeactivateEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	if err := h.service.Deactivate(id); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Employee deactivated"})
}
