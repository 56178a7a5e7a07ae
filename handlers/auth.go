package handlers

import (
	"time"

	"hrm_backend/config"
	"hrm_backend/models"
	"hrm_backend/types"
	"hrm_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func userSummary(emp models.Employee) fiber.Map {
	return fiber.Map{
		"id":         emp.ID,
		"login_id":   emp.LoginID,
		"name":       emp.Name,
		"email":      emp.Email,
		"department": emp.Department,
		"position":   emp.Position,
		"role":       "employee",
	}
}

// Login checks credentials and issues a signed session token.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}
	if req.LoginID == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": types.ErrInvalidInput})
	}

	var emp models.Employee
	if err := DB.Where("login_id = ?", req.LoginID).First(&emp).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			utils.Logger.Error("Failed to look up employee", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": types.ErrDatabaseError})
		}
		// Same response as a password mismatch so callers cannot probe
		// which login ids exist.
		return c.Status(401).JSON(fiber.Map{"error": types.ErrInvalidCredentials})
	}

	// Passwords are stored and compared as plain text for compatibility
	// with existing rows.
	if emp.Password != req.Password {
		return c.Status(401).JSON(fiber.Map{"error": types.ErrInvalidCredentials})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  emp.ID,
		"exp": time.Now().Add(config.AppConfig.TokenTTL).Unix(),
	})

	t, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		utils.Logger.Error("Failed to sign token", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": types.ErrInternalError})
	}

	return c.JSON(fiber.Map{
		"token": t,
		"user":  userSummary(emp),
	})
}

// Me returns the summary of the employee named by the bearer token.
func Me(c *fiber.Ctx) error {
	id := c.Locals("employee_id")
	if id == nil {
		return c.Status(401).JSON(fiber.Map{"error": types.ErrUnauthorized})
	}

	var emp models.Employee
	if err := DB.First(&emp, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(404).JSON(fiber.Map{"error": types.ErrNotFound})
		}
		utils.Logger.Error("Failed to look up employee", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": types.ErrDatabaseError})
	}

	return c.JSON(fiber.Map{
		"user": userSummary(emp),
	})
}
