package service

import (
	"errors"
	"fmt"
	"time"

	"go-furniture-resale/internal/model"
	"go-furniture-resale/internal/repository"
	"go-furniture-resale/pkg/validator"

	"gorm.io/gorm"
)

type CreateEmployeeRequest struct {
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	PhoneNumber *string    `json:"phone_number"`
	Password    string     `json:"user_password" validate:"required"`
	Role        string     `json:"role" validate:"required"`
	HireDate    *time.Time `json:"hire_date"`
}

type UpdateEmployeeRequest struct {
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	PhoneNumber *string    `json:"phone_number"`
	Password    string     `json:"user_password"` // empty keeps the current password
	Role        string     `json:"role" validate:"required"`
	HireDate    *time.Time `json:"hire_date"`
	IsActive    *bool      `json:"is_active"`
}

type EmployeeService interface {
	Create(req *CreateEmployeeRequest) (*model.Employee, error)
	GetAll() ([]model.Employee, error)
	GetByID(id uint) (*model.Employee, error)
	Update(id uint, req *UpdateEmployeeRequest) (*model.Employee, error)
	Deactivate(id uint) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) Create(req *CreateEmployeeRequest) (*model.Employee, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if existing, _ := s.employeeRepo.FindByEmail(req.Email); existing != nil && existing.ID != 0 {
		return nil, ErrEmailTaken
	}

	employee := &model.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
		HireDate:    req.HireDate,
		IsActive:    true,
	}
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) GetAll() ([]model.Employee, error) {
	return s.employeeRepo.FindAll()
}

func (s *employeeService) GetByID(id uint) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *employeeService) Update(id uint, req *UpdateEmployeeRequest) (*model.Employee, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Email = req.Email
	employee.PhoneNumber = req.PhoneNumber
	employee.Role = req.Role
	employee.HireDate = req.HireDate
	if req.Password != "" {
		employee.Password = req.Password
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Deactivate flips the soft flag; the row survives for order history.
func (s *employeeService) Deactivate(id uint) error {
	if err := s.employeeRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}
	return nil
}
