package service

import (
	"testing"

	"go-furniture-resale/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCreate(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	customer, err := svc.Create(&CreateCustomerRequest{
		FirstName: "Ana",
		LastName:  "Lima",
		Email:     "ana@example.com",
		Password:  "secret",
	})
	require.NoError(t, err)
	assert.NotZero(t, customer.ID)
	assert.Equal(t, "ana@example.com", customer.Email)
}

func TestCustomerCreateDuplicateEmail(t *testing.T) {
	repo := newFakeCustomerRepo(&model.Customer{ID: 1, Email: "ana@example.com"})
	svc := NewCustomerService(repo)

	_, err := svc.Create(&CreateCustomerRequest{
		FirstName: "Ana",
		LastName:  "Lima",
		Email:     "ana@example.com",
		Password:  "secret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCustomerCreateValidation(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.Create(&CreateCustomerRequest{
		FirstName: "Ana",
		LastName:  "Lima",
		Email:     "not-an-email",
		Password:  "secret",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCustomerUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	repo := newFakeCustomerRepo(&model.Customer{
		ID: 1, FirstName: "Ana", LastName: "Lima",
		Email: "ana@example.com", Password: "original",
	})
	svc := NewCustomerService(repo)

	updated, err := svc.Update(1, &UpdateCustomerRequest{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Souza", updated.LastName)
	assert.Equal(t, "original", updated.Password)

	updated, err = svc.Update(1, &UpdateCustomerRequest{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
		Password:  "changed",
	})
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Password)
}

func TestCustomerDeleteUnknown(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	err := svc.Delete(7)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
