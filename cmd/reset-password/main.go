package main

import (
	"flag"
	"log"

	"go-furniture-resale/internal/model"
	"go-furniture-resale/pkg/database"

	"github.com/joho/godotenv"
)

// Operator tool: reset the password of an employee or customer account by
// email. Passwords are plain text in the legacy schema, so the value is
// written as given.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: reset-password -email <email> -password <new-password>")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Try employee first, then customer
	var employee model.Employee
	if err := db.Where("LOWER(email) = LOWER(?)", *email).First(&employee).Error; err == nil {
		if err := db.Model(&employee).Update("user_password", *password).Error; err != nil {
			log.Fatalf("Failed to update employee password: %v", err)
		}
		log.Printf("Password reset for employee %s (%s)", employee.FullName(), *email)
		return
	}

	var customer model.Customer
	if err := db.Where("LOWER(email) = LOWER(?)", *email).First(&customer).Error; err != nil {
		log.Fatalf("No employee or customer found with email %s", *email)
	}
	if err := db.Model(&customer).Update("user_password", *password).Error; err != nil {
		log.Fatalf("Failed to update customer password: %v", err)
	}
	log.Printf("Password reset for customer %s (%s)", customer.FullName(), *email)
}
