package handlers

import (
	"fmt"
	"math/rand"

	"hrm_backend/config"
	"hrm_backend/models"
	"hrm_backend/types"
	"hrm_backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Mobile     string `json:"mobile"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// EmployeeSummary is the directory listing projection.
type EmployeeSummary struct {
	ID         uint   `json:"id"`
	LoginID    string `json:"login_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// CreateEmployee inserts a directory record with a generated login id and
// the configured default password.
func CreateEmployee(c *fiber.Ctx) error {
	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}
	if req.Name == "" || req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}

	// Generated ids are not checked against existing rows; the unique
	// index surfaces a collision as a store error.
	loginID := fmt.Sprintf("EMP%d", rand.Intn(9000)+1000)

	emp := models.Employee{
		LoginID:    loginID,
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Department: req.Department,
		Position:   req.Position,
		Password:   config.AppConfig.DefaultPassword,
	}

	tx := DB.Begin()
	if err := tx.Create(&emp).Error; err != nil {
		tx.Rollback()
		utils.Logger.Error("Failed to create employee", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": types.ErrDatabaseError})
	}
	tx.Commit()

	return c.JSON(fiber.Map{
		"login_id": loginID,
	})
}

// ListEmployees returns every directory record, unpaginated.
func ListEmployees(c *fiber.Ctx) error {
	var employees []EmployeeSummary
	if err := DB.Model(&models.Employee{}).Find(&employees).Error; err != nil {
		utils.Logger.Error("Failed to fetch employees", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": types.ErrDatabaseError})
	}

	return c.JSON(employees)
}
