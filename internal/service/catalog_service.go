package service

import (
	"errors"
	"fmt"

	"go-furniture-resale/internal/model"
	"go-furniture-resale/internal/repository"
	"go-furniture-resale/internal/ws"
	"go-furniture-resale/pkg/validator"

	"gorm.io/gorm"
)

// CatalogListing bundles the filtered items with the distinct category list
// the storefront uses to build its filter bar.
type CatalogListing struct {
	Furniture  []model.FurnitureItem `json:"furniture"`
	Categories []string              `json:"categories"`
}

type CatalogService interface {
	CreateItem(item *model.FurnitureItem) error
	List(filter repository.FurnitureFilter) (*CatalogListing, error)
	GetItemByID(id uint) (*model.FurnitureItem, error)
	UpdateItem(id uint, req *model.FurnitureItem) (*model.FurnitureItem, error)
	DeactivateItem(id uint) error
}

type catalogService struct {
	furnitureRepo repository.FurnitureRepository
	wsHub         *ws.Hub
}

func NewCatalogService(furnitureRepo repository.FurnitureRepository, hub *ws.Hub) CatalogService {
	return &catalogService{furnitureRepo: furnitureRepo, wsHub: hub}
}

func (s *catalogService) CreateItem(item *model.FurnitureItem) error {
	if errs := validator.ValidateStruct(item); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	item.IsActive = true

	if err := s.furnitureRepo.Create(item); err != nil {
		return err
	}

	s.notify(ws.EventItemCreated, item)
	return nil
}

func (s *catalogService) List(filter repository.FurnitureFilter) (*CatalogListing, error) {
	items, err := s.furnitureRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}
	categories, err := s.furnitureRepo.Categories()
	if err != nil {
		return nil, err
	}
	return &CatalogListing{Furniture: items, Categories: categories}, nil
}

func (s *catalogService) GetItemByID(id uint) (*model.FurnitureItem, error) {
	item, err := s.furnitureRepo.FindByID(id)
	if err != nil {
		return nil, ErrFurnitureNotFound
	}
	return item, nil
}

func (s *catalogService) UpdateItem(id uint, req *model.FurnitureItem) (*model.FurnitureItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	existing, err := s.furnitureRepo.FindByID(id)
	if err != nil {
		return nil, ErrFurnitureNotFound
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.Description = req.Description
	existing.Condition = req.Condition
	existing.Price = req.Price
	existing.StockQuantity = req.StockQuantity
	existing.IsActive = req.IsActive

	if err := s.furnitureRepo.Update(existing); err != nil {
		return nil, err
	}

	s.notify(ws.EventItemUpdated, existing)
	return existing, nil
}

func (s *catalogService) DeactivateItem(id uint) error {
	if err := s.furnitureRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFurnitureNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) notify(eventType string, item *model.FurnitureItem) {
	if s.wsHub == nil {
		return
	}
	s.wsHub.Notify(ws.Event{
		Type: eventType,
		Payload: map[string]interface{}{
			"furniture_id":   item.ID,
			"item_name":      item.Name,
			"stock_quantity": item.StockQuantity,
			"price":          item.Price,
		},
	})
}
