package model

import "github.com/shopspring/decimal"

// FurnitureItem is a resale listing with a mutable stock counter. Items are
// soft-deleted via IsActive so order lines keep a valid reference.
type FurnitureItem struct {
	ID            uint            `gorm:"column:furniture_id;primaryKey" json:"furniture_id"`
	Name          string          `gorm:"column:item_name;type:varchar(255);not null" json:"item_name" validate:"required"`
	Category      string          `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Description   *string         `gorm:"type:text" json:"description,omitempty"`
	Condition     string          `gorm:"column:item_condition;type:varchar(50);not null" json:"item_condition" validate:"required"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	IsActive      bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (FurnitureItem) TableName() string { return "furniture" }
