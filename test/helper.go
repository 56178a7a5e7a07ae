package test

import (
	"log"
	"strconv"
	"testing"
	"time"

	"hrm_backend/config"
	"hrm_backend/handlers"
	"hrm_backend/middleware"
	"hrm_backend/models"
	"hrm_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	testApp *fiber.App
	testDB  *gorm.DB
)

func init() {
	if err := config.LoadTestConfig(); err != nil {
		log.Fatal("Failed to load test config:", err)
	}
	utils.InitLogger()

	var err error
	// Use in-memory SQLite for tests
	testDB, err = gorm.Open(sqlite.Open(config.AppConfig.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to test database:", err)
	}

	if err := testDB.AutoMigrate(&models.Employee{}, &models.Salary{}, &models.Attendance{}); err != nil {
		log.Fatal("Failed to migrate test database:", err)
	}

	handlers.InitHandlers(testDB)
}

func SetupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	// Reset database
	ResetTestDB()

	// Create fresh app instance with the production route table
	testApp = fiber.New()
	registerRoutes(testApp)
	handlers.InitHandlers(testDB)

	return testApp, testDB
}

func registerRoutes(app *fiber.App) {
	app.Post("/api/auth/login", handlers.Login)
	app.Get("/api/auth/me", middleware.RequireAuth, handlers.Me)
	app.Post("/api/employees/", handlers.CreateEmployee)
	app.Get("/api/employees/", handlers.ListEmployees)
	app.Post("/api/attendance/", handlers.MarkAttendance)
	app.Get("/api/attendance/:employee_id", handlers.ListAttendance)
	app.Post("/api/salary/generate", handlers.GenerateSalary)
	app.Get("/api/salary/:employee_id", handlers.ListSalaries)
}

func ResetTestDB() {
	testDB.Exec("DELETE FROM salaries")
	testDB.Exec("DELETE FROM attendances")
	testDB.Exec("DELETE FROM employees")
}

// Helper function to seed a directory record directly in the store
func createTestEmployee(t *testing.T, loginID, name string) models.Employee {
	t.Helper()

	emp := models.Employee{
		LoginID:    loginID,
		Name:       name,
		Email:      loginID + "@company.com",
		Mobile:     "+1 555-0100",
		Department: "Engineering",
		Position:   "Developer",
		Password:   config.AppConfig.DefaultPassword,
	}
	if err := testDB.Create(&emp).Error; err != nil {
		t.Fatalf("Failed to create test employee: %v", err)
	}
	return emp
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Helper function to create a signed token outside the login flow
func createTestToken(t *testing.T, employeeID uint, ttl time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  employeeID,
		"exp": time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return tokenString
}
