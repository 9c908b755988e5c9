package service

import (
	"errors"
	"fmt"

	"go-furniture-resale/internal/model"
	"go-furniture-resale/internal/repository"
	"go-furniture-resale/pkg/validator"

	"gorm.io/gorm"
)

type CreateCustomerRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	Password  string  `json:"user_password" validate:"required"`
	Address   *string `json:"address"`
}

type UpdateCustomerRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	Password  string  `json:"user_password"` // empty keeps the current password
	Address   *string `json:"address"`
}

type CustomerService interface {
	Create(req *CreateCustomerRequest) (*model.Customer, error)
	GetAll() ([]model.Customer, error)
	GetByID(id uint) (*model.Customer, error)
	Update(id uint, req *UpdateCustomerRequest) (*model.Customer, error)
	Delete(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(req *CreateCustomerRequest) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if existing, _ := s.customerRepo.FindByEmail(req.Email); existing != nil && existing.ID != 0 {
		return nil, ErrEmailTaken
	}

	customer := &model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Address:   req.Address,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetAll() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) GetByID(id uint) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *customerService) Update(id uint, req *UpdateCustomerRequest) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	if req.Password != "" {
		customer.Password = req.Password
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(id uint) error {
	if err := s.customerRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}
