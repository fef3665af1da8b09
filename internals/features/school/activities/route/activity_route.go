package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"servicecredit_backend/internals/constants"
	activityController "servicecredit_backend/internals/features/school/activities/controller"
	authMiddleware "servicecredit_backend/internals/middlewares/auth"
)

// ActivityRoutes mounts the lifecycle and reporting endpoints. The router is
// expected to carry AuthMiddleware already; role gates are applied per route.
func ActivityRoutes(router fiber.Router, db *gorm.DB, uploadDir string) {
	ctrl := activityController.NewActivityController(db, uploadDir)

	reviewerOnly := authMiddleware.OnlyRoles(constants.MsgReviewerOnly, constants.Reviewers...)
	teacherOnly := authMiddleware.OnlyRoles(constants.MsgTeacherOnly, constants.RoleTeacher)

	activities := router.Group("/activities")
	activities.Post("/submit", teacherOnly, ctrl.Submit)
	activities.Get("/my", teacherOnly, ctrl.My)
	activities.Get("/my-stats", teacherOnly, ctrl.MyStats)
	activities.Get("/all", reviewerOnly, ctrl.All)
	activities.Get("/stats", reviewerOnly, ctrl.DashboardStats)
	activities.Get("/reports", reviewerOnly, ctrl.Reports)
	activities.Get("/teacher/:id", reviewerOnly, ctrl.TeacherStats)
	activities.Put("/:id/status", reviewerOnly, ctrl.UpdateStatus)
}
