package main

import (
	"log"

	"hrm_backend/config"
	"hrm_backend/handlers"
	"hrm_backend/middleware"
	"hrm_backend/models"
	"hrm_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database connection
var DB *gorm.DB

func initServices() error {
	var err error
	DB, err = gorm.Open(sqlite.Open(config.AppConfig.DBPath), &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate models
	if err := DB.AutoMigrate(&models.Employee{}, &models.Salary{}, &models.Attendance{}); err != nil {
		return err
	}

	handlers.InitHandlers(DB)
	return nil
}

func registerRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/login", handlers.Login)
	auth.Get("/me", middleware.RequireAuth, handlers.Me)

	employees := app.Group("/api/employees")
	employees.Post("/", handlers.CreateEmployee)
	employees.Get("/", handlers.ListEmployees)

	attendance := app.Group("/api/attendance")
	attendance.Post("/", handlers.MarkAttendance)
	attendance.Get("/:employee_id", handlers.ListAttendance)

	salary := app.Group("/api/salary")
	salary.Post("/generate", handlers.GenerateSalary)
	salary.Get("/:employee_id", handlers.ListSalaries)
}

func main() {
	config.LoadConfig()
	utils.InitLogger()

	if err := initServices(); err != nil {
		log.Fatal("Failed to initialize services:", err)
	}

	app := fiber.New()

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	registerRoutes(app)

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
