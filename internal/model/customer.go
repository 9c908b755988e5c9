package model

import "time"

// Customer is a shopper account. Passwords are stored in clear text; the
// legacy customer table has no hash column and the data must stay readable
// by it.
type Customer struct {
	ID        uint      `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name" validate:"required"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name" validate:"required"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone     *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Password  string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	Address   *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	JoinDate  time.Time `gorm:"column:join_date;autoCreateTime" json:"join_date"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
