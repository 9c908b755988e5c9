package repository

import (
	"go-furniture-resale/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	FindAll() ([]model.Employee, error)
	FindByID(id uint) (*model.Employee, error)
	FindByEmail(email string) (*model.Employee, error)
	Update(employee *model.Employee) error
	Deactivate(id uint) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepo) FindAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("employee_id").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, "employee_id = ?", id).Error
	return &employee, err
}

func (r *employeeRepo) FindByEmail(email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, "LOWER(email) = LOWER(?)", email).Error
	return &employee, err
}

func (r *employeeRepo) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

// Deactivate soft-disables the account; orders keep referencing the row.
func (r *employeeRepo) Deactivate(id uint) error {
	res := r.db.Model(&model.Employee{}).
		Where("employee_id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
