package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "servicecredit_backend/internals/features/users/auth/dto"
	authService "servicecredit_backend/internals/features/users/auth/service"
	helper "servicecredit_backend/internals/helpers"
)

type AuthController struct {
	Service  *authService.AuthService
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Service:  authService.NewAuthService(db),
		validate: validator.New(),
	}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := ac.Service.Register(req)
	if err != nil {
		if errors.Is(err, authService.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Println("[ERROR] Register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}
	return helper.JsonCreated(c, "User registered successfully", fiber.Map{"user_id": user.ID})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := ac.Service.Login(req)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid email or password")
		}
		log.Println("[ERROR] Login:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	return helper.JsonOK(c, "Login successful", resp)
}

// POST /api/auth/change-password (authenticated)
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ac.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ac.Service.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, authService.ErrWrongPassword):
			return helper.JsonError(c, fiber.StatusBadRequest, "Current password incorrect")
		case errors.Is(err, authService.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		default:
			log.Println("[ERROR] ChangePassword:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
		}
	}
	return helper.JsonOK(c, "Password changed successfully", nil)
}
