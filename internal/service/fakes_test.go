package service

import (
	"time"

	"go-furniture-resale/internal/model"
	"go-furniture-resale/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository fakes. They implement just enough behavior for the
// services under test; persistence semantics themselves are covered by the
// repository tests.

type fakeCustomerRepo struct {
	customers map[uint]*model.Customer
}

func newFakeCustomerRepo(customers ...*model.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{customers: make(map[uint]*model.Customer)}
	for _, c := range customers {
		f.customers[c.ID] = c
	}
	return f
}

func (f *fakeCustomerRepo) Create(c *model.Customer) error {
	c.ID = uint(len(f.customers) + 1)
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) FindAll() ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) FindByID(id uint) (*model.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) FindByEmail(email string) (*model.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) Update(c *model.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(id uint) error {
	if _, ok := f.customers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.customers, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[uint]*model.Employee
}

func newFakeEmployeeRepo(employees ...*model.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[uint]*model.Employee)}
	for _, e := range employees {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(e *model.Employee) error {
	e.ID = uint(len(f.employees) + 1)
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) FindAll() ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FindByID(id uint) (*model.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) FindByEmail(email string) (*model.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) Update(e *model.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(id uint) error {
	e, ok := f.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.IsActive = false
	return nil
}

type fakeOrderRepo struct {
	createCalls int
	createErr   error
	nextID      uint
	orders      map[uint]*model.Order
	statusCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*model.Order)}
}

func (f *fakeOrderRepo) CreateWithLines(order *model.Order, lines []model.OrderLine) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	order.ID = f.nextID
	for i := range lines {
		lines[i].OrderID = order.ID
	}
	order.Lines = lines
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) FindAll() ([]model.Order, error) {
	out := make([]model.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByID(id uint) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) FindByCustomerID(customerID uint) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(id uint, status model.OrderStatus) error {
	f.statusCalls++
	o, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) SalesByDay(startDate, endDate time.Time) ([]repository.SalesByDay, error) {
	return nil, nil
}

func (f *fakeOrderRepo) DashboardStats() (*repository.DashboardStats, error) {
	return &repository.DashboardStats{}, nil
}
