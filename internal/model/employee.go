package model

import "time"

// Employee records the staff member who handles sales. Deactivation is a
// soft flag so historical orders keep their reference.
type Employee struct {
	ID          uint       `gorm:"column:employee_id;primaryKey" json:"employee_id"`
	FirstName   string     `gorm:"type:varchar(100);not null" json:"first_name" validate:"required"`
	LastName    string     `gorm:"type:varchar(100);not null" json:"last_name" validate:"required"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	PhoneNumber *string    `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	Password    string     `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	Role        string     `gorm:"type:varchar(50);not null" json:"role" validate:"required"`
	HireDate    *time.Time `gorm:"type:date" json:"hire_date,omitempty"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
