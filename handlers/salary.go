package handlers

import (
	"hrm_backend/models"
	"hrm_backend/services"
	"hrm_backend/types"
	"hrm_backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GenerateSalaryRequest struct {
	EmployeeID uint     `json:"employee_id" validate:"required"`
	Wage       *float64 `json:"wage" validate:"required,gt=0"`
}

// GenerateSalary derives a salary breakdown from the submitted wage and
// persists it as a new snapshot. Repeat calls stack up new rows.
func GenerateSalary(c *fiber.Ctx) error {
	var req GenerateSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}
	if req.Wage == nil || *req.Wage <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}

	sal := services.ComputeBreakdown(req.EmployeeID, *req.Wage)

	if err := DB.Create(&sal).Error; err != nil {
		utils.Logger.Error("Failed to create salary record", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": types.ErrDatabaseError})
	}

	return c.JSON(fiber.Map{
		"net_salary": sal.NetSalary,
	})
}

// ListSalaries returns every salary snapshot for one employee.
func ListSalaries(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employee_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}

	var salaries []models.Salary
	if err := DB.Where("employee_id = ?", employeeID).Find(&salaries).Error; err != nil {
		utils.Logger.Error("Failed to fetch salary records", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": types.ErrDatabaseError})
	}

	return c.JSON(salaries)
}
