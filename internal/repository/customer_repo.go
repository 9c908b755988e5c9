package repository

import (
	"go-furniture-resale/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll() ([]model.Customer, error)
	FindByID(id uint) (*model.Customer, error)
	FindByEmail(email string) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uint) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("customer_id").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "customer_id = ?", id).Error
	return &customer, err
}

func (r *customerRepo) FindByEmail(email string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "LOWER(email) = LOWER(?)", email).Error
	return &customer, err
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

// Delete removes the row entirely; customer accounts have no soft flag.
func (r *customerRepo) Delete(id uint) error {
	res := r.db.Delete(&model.Customer{}, "customer_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
