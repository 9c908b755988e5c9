package handler

import (
	"errors"

	"go-furniture-resale/internal/model"
	"go-furniture-resale/internal/repository"
	"go-furniture-resale/internal/service"
	"go-furniture-resale/pkg/jsoncase"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type FurnitureHandler struct {
	service service.CatalogService
}

func NewFurnitureHandler(s service.CatalogService) *FurnitureHandler {
	return &FurnitureHandler{service: s}
}

// GetFurniture lists active items with optional search/category/price filters.
// GET /api/furniture?search=&category=&min_price=&max_price=
func (h *FurnitureHandler) GetFurniture(c *fiber.Ctx) error {
	filter := repository.FurnitureFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if p, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &p
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if p, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &p
		}
	}

	listing, err := h.service.List(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(listing)
}

// GET /api/furniture/:id
func (h *FurnitureHandler) GetFurnitureItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid furniture ID"})
	}

	item, err := h.service.GetItemByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Furniture item not found"})
	}
	return c.JSON(item)
}

// POST /api/furniture
func (h *FurnitureHandler) CreateFurniture(c *fiber.Ctx) error {
	var item model.FurnitureItem
	if err := jsoncase.Unmarshal(c.Body(), &item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateItem(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Furniture item created", "data": item})
}

// PUT /api/furniture/:id
func (h *FurnitureHandler) UpdateFurniture(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid furniture ID"})
	}

	var item model.FurnitureItem
	if err := jsoncase.Unmarshal(c.Body(), &item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateItem(id, &item)
	if err != nil {
		if errors.Is(err, service.ErrFurnitureNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Furniture item not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Furniture item updated", "data": updated})
}

// DELETE /api/furniture/:id soft-deletes the listing.
func (h *FurnitureHandler) DeleteFurniture(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid furniture ID"})
	}

	if err := h.service.DeactivateItem(id); err != nil {
		if errors.Is(err, service.ErrFurnitureNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Furniture item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Furniture item deactivated"})
}
