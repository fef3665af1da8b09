package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "servicecredit_backend/internals/features/users/auth/controller"
	authMiddleware "servicecredit_backend/internals/middlewares/auth"
)

// AuthRoutes mounts login/register publicly and change-password behind auth.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", ctrl.Login)
	auth.Post("/change-password", authMiddleware.AuthMiddleware(db), ctrl.ChangePassword)
}
