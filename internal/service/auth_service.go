package service

import (
	"strings"

	"go-furniture-resale/internal/repository"
	"go-furniture-resale/pkg/jwt"
)

type AuthService interface {
	Login(email, password string) (*LoginResult, error)
	ValidateToken(tokenString string) (*TokenInfo, error)
}

type LoginResult struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
}

type TokenInfo struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
}

type authService struct {
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
}

func NewAuthService(customerRepo repository.CustomerRepository, employeeRepo repository.EmployeeRepository) AuthService {
	return &authService{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
	}
}

// Login scans employees first, then customers, comparing the stored clear-text
// password. Employees win the scan when an address exists in both tables.
// There is no hashing here: the legacy schema keeps raw passwords and
// redesigning that is explicitly out of scope.
func (s *authService) Login(email, password string) (*LoginResult, error) {
	employees, err := s.employeeRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range employees {
		e := &employees[i]
		if strings.EqualFold(e.Email, email) && e.Password == password && e.IsActive {
			token, err := jwt.GenerateToken(e.ID, e.Email, e.FullName(), "employee")
			if err != nil {
				return nil, err
			}
			return &LoginResult{Token: token, UserID: e.ID, Name: e.FullName(), UserType: "employee"}, nil
		}
	}

	customers, err := s.customerRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		c := &customers[i]
		if strings.EqualFold(c.Email, email) && c.Password == password {
			token, err := jwt.GenerateToken(c.ID, c.Email, c.FullName(), "customer")
			if err != nil {
				return nil, err
			}
			return &LoginResult{Token: token, UserID: c.ID, Name: c.FullName(), UserType: "customer"}, nil
		}
	}

	return nil, ErrInvalidCredentials
}

func (s *authService) ValidateToken(tokenString string) (*TokenInfo, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &TokenInfo{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		UserType: claims.UserType,
	}, nil
}
