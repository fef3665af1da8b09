package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"servicecredit_backend/internals/constants"
	systemController "servicecredit_backend/internals/features/system/controller"
	authMiddleware "servicecredit_backend/internals/middlewares/auth"
)

// SystemRoutes mounts teacher management (admin only) and reference data.
// The router is expected to carry AuthMiddleware already.
func SystemRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := systemController.NewSystemController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.MsgAdminOnly, constants.RoleAdmin)

	system := router.Group("/system")
	system.Get("/teachers", adminOnly, ctrl.ListTeachers)
	system.Post("/teachers", adminOnly, ctrl.CreateTeacher)
	system.Put("/teachers/:id", adminOnly, ctrl.UpdateTeacher)
	system.Put("/teachers/:id/reset-password", adminOnly, ctrl.ResetPassword)
	system.Get("/reference-data", ctrl.ReferenceData)
}
