package service

import "errors"

// Failure kinds surfaced to handlers. NotFound and validation errors are
// detected before any mutation; anything wrapped around a repository failure
// inside the atomic phase means the whole attempt rolled back.
var (
	ErrValidation        = errors.New("validation failed")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrFurnitureNotFound = errors.New("furniture item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidStatus     = errors.New("invalid status: must be one of Pending, Completed, Cancelled")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
