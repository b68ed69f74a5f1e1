package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "github.com/sam002696/tuition-management-backend/internals/features/users/auth/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/users/auth/service"
	userDTO "github.com/sam002696/tuition-management-backend/internals/features/users/user/dto"
	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB, svc *service.AuthService) *AuthController {
	return &AuthController{DB: db, Service: svc}
}

// POST /api/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	user, err := ctrl.Service.RegisterUser(req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "User registered successfully", fiber.Map{
		"user": userDTO.ToUserResponse(user),
	})
}

// POST /api/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	user, token, err := ctrl.Service.LoginUser(req)
	if err != nil {
		return err
	}
	if user == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":  userDTO.ToUserResponse(user),
		"token": token,
	})
}

// GET /api/user
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
	}
	return helper.JsonOK(c, "User data retrieved", fiber.Map{
		"user": userDTO.ToUserResponse(&user),
	})
}

// POST /api/auth/forgot-password
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	if err := ctrl.Service.ForgotPassword(req); err != nil {
		return err
	}
	// Same message whether or not the account exists.
	return helper.JsonOK(c, "If that email exists, a reset link has been sent.", fiber.Map{})
}

// POST /api/auth/reset-password
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req authDTO.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	if err := ctrl.Service.ResetPassword(req); err != nil {
		return err
	}
	return helper.JsonOK(c, "Password has been reset successfully.", fiber.Map{})
}

// POST /api/password/change
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	if err := ctrl.Service.ChangePassword(userID, req); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
