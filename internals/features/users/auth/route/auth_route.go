package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/users/auth/controller"
	"github.com/sam002696/tuition-management-backend/internals/features/users/auth/service"
)

// PublicAuthRoutes registers the endpoints that do not carry a bearer token.
func PublicAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db, service.NewAuthService(db, nil))

	api.Post("/register", ctrl.Register)
	api.Post("/login", ctrl.Login)
	api.Post("/auth/forgot-password", ctrl.ForgotPassword)
	api.Post("/auth/reset-password", ctrl.ResetPassword)
}

// ProtectedAuthRoutes registers the token-scoped account endpoints.
func ProtectedAuthRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db, service.NewAuthService(db, nil))

	private.Get("/user", ctrl.Me)
	private.Post("/password/change", ctrl.ChangePassword)
}
