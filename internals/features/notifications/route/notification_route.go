package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "servicecredit_backend/internals/features/notifications/controller"
)

// NotificationRoutes mounts the polled notification endpoints; any
// authenticated user may access their own notifications.
func NotificationRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	notifications := router.Group("/notifications")
	notifications.Get("/", ctrl.List)
	notifications.Put("/read-all", ctrl.MarkAllRead)
	notifications.Put("/:id/read", ctrl.MarkRead)
}
