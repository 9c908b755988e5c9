package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDecrementStockAllowsNegative(t *testing.T) {
	db := newTestDB(t)
	furniture := NewFurnitureRepo(db)

	item := seedItem(t, db, "Futon", "Sofas", 2, "40.00")

	// The counter has no floor; overselling drives it negative.
	require.NoError(t, furniture.DecrementStock(db, item.ID, 5))

	got, err := furniture.FindByID(item.ID)
	require.NoError(t, err)
	require.Equal(t, -3, got.StockQuantity)
}

func TestDecrementStockUnknownItem(t *testing.T) {
	db := newTestDB(t)
	furniture := NewFurnitureRepo(db)

	require.ErrorIs(t, furniture.DecrementStock(db, 42, 1), gorm.ErrRecordNotFound)
}

func TestFindAllFilters(t *testing.T) {
	db := newTestDB(t)
	furniture := NewFurnitureRepo(db)

	seedItem(t, db, "Oak Desk", "Desks", 3, "80.00")
	seedItem(t, db, "Pine Desk", "Desks", 1, "45.00")
	seedItem(t, db, "Swivel Chair", "Chairs", 6, "25.00")

	bySearch, err := furniture.FindAll(FurnitureFilter{Search: "Desk"})
	require.NoError(t, err)
	require.Len(t, bySearch, 2)

	byCategory, err := furniture.FindAll(FurnitureFilter{Category: "Chairs"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	require.Equal(t, "Swivel Chair", byCategory[0].Name)

	min := decimal.RequireFromString("30.00")
	max := decimal.RequireFromString("50.00")
	byPrice, err := furniture.FindAll(FurnitureFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	require.Equal(t, "Pine Desk", byPrice[0].Name)
}

func TestDeactivateHidesFromListing(t *testing.T) {
	db := newTestDB(t)
	furniture := NewFurnitureRepo(db)

	item := seedItem(t, db, "Oak Desk", "Desks", 3, "80.00")
	seedItem(t, db, "Swivel Chair", "Chairs", 6, "25.00")

	require.NoError(t, furniture.Deactivate(item.ID))

	listed, err := furniture.FindAll(FurnitureFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "Swivel Chair", listed[0].Name)

	categories, err := furniture.Categories()
	require.NoError(t, err)
	require.Equal(t, []string{"Chairs"}, categories)

	// Still reachable by id for order history.
	got, err := furniture.FindByID(item.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, furniture.Deactivate(999), gorm.ErrRecordNotFound)
}
