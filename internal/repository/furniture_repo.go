package repository

import (
	"go-furniture-resale/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FurnitureFilter narrows catalog listings. Zero values mean "no filter".
type FurnitureFilter struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type FurnitureRepository interface {
	Create(item *model.FurnitureItem) error
	FindAll(filter FurnitureFilter) ([]model.FurnitureItem, error)
	FindByID(id uint) (*model.FurnitureItem, error)
	Categories() ([]string, error)
	Update(item *model.FurnitureItem) error
	Deactivate(id uint) error
	DecrementStock(tx *gorm.DB, id uint, quantity int) error
}

type furnitureRepo struct {
	db *gorm.DB
}

func NewFurnitureRepo(db *gorm.DB) FurnitureRepository {
	return &furnitureRepo{db}
}

func (r *furnitureRepo) Create(item *model.FurnitureItem) error {
	return r.db.Create(item).Error
}

// FindAll lists active items only; inactive listings stay reachable by id for
// order history.
func (r *furnitureRepo) FindAll(filter FurnitureFilter) ([]model.FurnitureItem, error) {
	q := r.db.Where("is_active = ?", true)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("item_name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", filter.MaxPrice)
	}

	var items []model.FurnitureItem
	err := q.Order("furniture_id").Find(&items).Error
	return items, err
}

func (r *furnitureRepo) FindByID(id uint) (*model.FurnitureItem, error) {
	var item model.FurnitureItem
	err := r.db.First(&item, "furniture_id = ?", id).Error
	return &item, err
}

func (r *furnitureRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.FurnitureItem{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *furnitureRepo) Update(item *model.FurnitureItem) error {
	return r.db.Save(item).Error
}

func (r *furnitureRepo) Deactivate(id uint) error {
	res := r.db.Model(&model.FurnitureItem{}).
		Where("furniture_id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementStock applies stock_quantity = stock_quantity - quantity inside the
// caller's transaction handle. There is no floor check; the counter may go
// negative, matching the legacy store. A missing row reports ErrRecordNotFound
// so the surrounding transaction aborts.
func (r *furnitureRepo) DecrementStock(tx *gorm.DB, id uint, quantity int) error {
	res := tx.Model(&model.FurnitureItem{}).
		Where("furniture_id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
