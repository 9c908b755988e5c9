package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go-furniture-resale/internal/handler"
	"go-furniture-resale/internal/model"
	"go-furniture-resale/internal/repository"
	"go-furniture-resale/internal/service"
	"go-furniture-resale/internal/ws"
	"go-furniture-resale/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Customer{},
		&model.Employee{},
		&model.FurnitureItem{},
		&model.Order{},
		&model.OrderLine{},
	)

	// 3. Seed a default admin employee so a fresh install can log in
	seedAdminEmployee(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	customerRepo := repository.NewCustomerRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	furnitureRepo := repository.NewFurnitureRepo(db)
	orderRepo := repository.NewOrderRepo(db, furnitureRepo)

	authService := service.NewAuthService(customerRepo, employeeRepo)
	customerService := service.NewCustomerService(customerRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	catalogService := service.NewCatalogService(furnitureRepo, wsHub)
	orderService := service.NewOrderService(customerRepo, employeeRepo, orderRepo, wsHub)
	dashService := service.NewDashboardService(orderRepo)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	furnitureHandler := handler.NewFurnitureHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Campus Furniture Resale v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. API Routes
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/validate-token", authHandler.ValidateToken)

	api.Get("/customers", customerHandler.GetCustomers)
	api.Post("/customers", customerHandler.CreateCustomer)
	api.Get("/customers/:id", customerHandler.GetCustomer)
	api.Put("/customers/:id", customerHandler.UpdateCustomer)
	api.Delete("/customers/:id", customerHandler.DeleteCustomer)
	api.Get("/customers/:id/transactions", orderHandler.GetCustomerOrders)

	api.Get("/employees", employeeHandler.GetEmployees)
	api.Post("/employees", employeeHandler.CreateEmployee)
	api.Get("/employees/:id", employeeHandler.GetEmployee)
	api.Put("/employees/:id", employeeHandler.UpdateEmployee)
	api.Delete("/employees/:id", employeeHandler.DeactivateEmployee)

	api.Get("/furniture", furnitureHandler.GetFurniture)
	api.Post("/furniture", furnitureHandler.CreateFurniture)
	api.Get("/furniture/:id", furnitureHandler.GetFurnitureItem)
	api.Put("/furniture/:id", furnitureHandler.UpdateFurniture)
	api.Delete("/furniture/:id", furnitureHandler.DeleteFurniture)

	api.Get("/transactions", orderHandler.GetOrders)
	api.Post("/transactions", orderHandler.CreateOrder)
	api.Get("/transactions/:id", orderHandler.GetOrder)
	api.Put("/transactions/:id/status", orderHandler.UpdateStatus)

	api.Get("/dashboard/stats", dashHandler.GetStats)
	api.Get("/dashboard/sales", dashHandler.GetSales)

	// 8. WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Static HTML pages for the browser client
	webDir := os.Getenv("WEB_DIR")
	if webDir == "" {
		webDir = "./web"
	}
	app.Static("/", webDir)

	pages := map[string]string{
		"/":             "index.html",
		"/login":        "login.html",
		"/register":     "register.html",
		"/customers":    "customers.html",
		"/employees":    "employees.html",
		"/furniture":    "furniture.html",
		"/transactions": "transactions.html",
		"/checkout":     "checkout.html",
		"/profile":      "profile.html",
		"/admin":        "admin.html",
	}
	for route, file := range pages {
		path := filepath.Join(webDir, file)
		servePage := func(c *fiber.Ctx) error { return c.SendFile(path) }
		app.Get(route, servePage)
		if route != "/" {
			// sub-pages (edit, new, ...) fall back to the same page
			app.Get(route+"/*", servePage)
		}
	}

	// 10. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdminEmployee creates a default manager account when the employee table
// is empty. The password is stored as-is; the legacy schema has no hash column.
func seedAdminEmployee(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Employee{}).Count(&count).Error; err != nil {
		log.Printf("Warning: failed to check employee table: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := &model.Employee{
		FirstName: "Store",
		LastName:  "Manager",
		Email:     "admin@rehome.local",
		Password:  "admin123",
		Role:      "Manager",
		IsActive:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("Warning: failed to seed admin employee: %v", err)
		return
	}
	log.Println("Admin employee created: admin@rehome.local / admin123")
}
