package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// ValidStatus reports whether s is one of the fixed order statuses.
func ValidStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is a purchase record linking a customer, the employee who recorded
// the sale, and one or more lines. Lines and their stock decrements are
// written in a single transaction; an order is never observable half-built.
type Order struct {
	ID            uint            `gorm:"column:order_id;primaryKey" json:"order_id"`
	CustomerID    uint            `gorm:"column:customer_id;not null;index" json:"customer_id"`
	EmployeeID    uint            `gorm:"column:employee_id;not null;index" json:"employee_id"`
	OrderDate     time.Time       `gorm:"column:order_date;not null" json:"order_date"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:numeric(10,2);not null" json:"total_amount"`
	PaymentMethod string          `gorm:"type:varchar(30)" json:"payment_method"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null" json:"status"`

	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Employee *Employee   `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Lines    []OrderLine `gorm:"foreignKey:OrderID" json:"details,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderLine is one furniture item and quantity sold within an Order.
// Created only during order placement, immutable afterward.
type OrderLine struct {
	ID          uint            `gorm:"column:order_line_id;primaryKey" json:"order_line_id"`
	OrderID     uint            `gorm:"column:order_id;not null;index" json:"order_id"`
	FurnitureID uint            `gorm:"column:furniture_id;not null" json:"furniture_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	SalePrice   decimal.Decimal `gorm:"column:sale_price;type:numeric(10,2);not null" json:"sale_price"`

	Item *FurnitureItem `gorm:"foreignKey:FurnitureID" json:"item,omitempty"`
}

func (OrderLine) TableName() string { return "order_lines" }
