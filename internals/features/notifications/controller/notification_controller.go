package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationService "servicecredit_backend/internals/features/notifications/service"
	helper "servicecredit_backend/internals/helpers"
)

type NotificationController struct {
	Service *notificationService.NotificationService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{Service: notificationService.NewNotificationService(db)}
}

// GET /api/notifications
func (nc *NotificationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	notifications, err := nc.Service.Fetch(userID)
	if err != nil {
		log.Println("[ERROR] Fetch notifications:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return helper.JsonOK(c, "Notifications fetched", notifications)
}

// PUT /api/notifications/:id/read
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification ID")
	}
	if err := nc.Service.MarkRead(id, userID); err != nil {
		if errors.Is(err, notificationService.ErrNotificationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		log.Println("[ERROR] MarkRead:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	return helper.JsonOK(c, "Notification marked as read", nil)
}

// PUT /api/notifications/read-all
func (nc *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if err := nc.Service.MarkAllRead(userID); err != nil {
		log.Println("[ERROR] MarkAllRead:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.JsonOK(c, "All notifications marked as read", nil)
}
