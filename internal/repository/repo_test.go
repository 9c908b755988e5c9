package repository

import (
	"testing"
	"time"

	"go-furniture-resale/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Customer{},
		&model.Employee{},
		&model.FurnitureItem{},
		&model.Order{},
		&model.OrderLine{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *model.Customer {
	t.Helper()
	customer := &model.Customer{
		FirstName: "Ada",
		LastName:  "Nguyen",
		Email:     "ada@example.edu",
		Password:  "hunter2",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedEmployee(t *testing.T, db *gorm.DB) *model.Employee {
	t.Helper()
	employee := &model.Employee{
		FirstName: "Sam",
		LastName:  "Okafor",
		Email:     "sam@rehome.local",
		Password:  "letmein",
		Role:      "Sales",
		IsActive:  true,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func seedItem(t *testing.T, db *gorm.DB, name, category string, stock int, price string) *model.FurnitureItem {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	item := &model.FurnitureItem{
		Name:          name,
		Category:      category,
		Condition:     "Good",
		Price:         p,
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func testOrder(customerID, employeeID uint) *model.Order {
	return &model.Order{
		CustomerID:    customerID,
		EmployeeID:    employeeID,
		OrderDate:     time.Now(),
		TotalAmount:   decimal.RequireFromString("75.50"),
		PaymentMethod: "Card",
		Status:        model.StatusPending,
	}
}
