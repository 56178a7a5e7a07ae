package handlers

import (
	"time"

	"hrm_backend/models"
	"hrm_backend/types"
	"hrm_backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MarkAttendanceRequest struct {
	EmployeeID uint   `json:"employee_id" validate:"required"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
}

// MarkAttendance appends one punch record stamped with the current date.
// The employee id is not verified here; referential integrity is the
// store's job.
func MarkAttendance(c *fiber.Ctx) error {
	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}
	if req.EmployeeID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}

	record := models.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       time.Now(),
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     req.Status,
	}

	if err := DB.Create(&record).Error; err != nil {
		utils.Logger.Error("Failed to create attendance record", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": types.ErrDatabaseError})
	}

	return c.JSON(fiber.Map{
		"message": "Attendance saved",
	})
}

// ListAttendance returns every punch record for one employee.
func ListAttendance(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employee_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}

	var records []models.Attendance
	if err := DB.Where("employee_id = ?", employeeID).Find(&records).Error; err != nil {
		utils.Logger.Error("Failed to fetch attendance records", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": types.ErrDatabaseError})
	}

	return c.JSON(records)
}
