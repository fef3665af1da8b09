package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"servicecredit_backend/internals/configs"
	notificationRoute "servicecredit_backend/internals/features/notifications/route"
	activityRoute "servicecredit_backend/internals/features/school/activities/route"
	systemController "servicecredit_backend/internals/features/system/controller"
	systemRoute "servicecredit_backend/internals/features/system/route"
	authRoute "servicecredit_backend/internals/features/users/auth/route"
	authMiddleware "servicecredit_backend/internals/middlewares/auth"
)

var startTime = time.Now()

// SetupRoutes wires every endpoint group onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Monitoring Service Credit System API v1.0")
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		status := "success"
		message := "Backend is running and connected to PostgreSQL"
		code := fiber.StatusOK

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			status = "error"
			message = "Failed to connect to the database"
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":         status,
			"message":        message,
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"timestamp":      time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// Public: login/register, plus the one-shot reference-data seed.
	authRoute.AuthRoutes(api, db)
	api.Post("/system/seed", systemController.NewSystemController(db).Seed)

	// Everything below requires a valid token.
	authed := api.Group("", authMiddleware.AuthMiddleware(db))
	activityRoute.ActivityRoutes(authed, db, configs.UploadDir)
	notificationRoute.NotificationRoutes(authed, db)
	systemRoute.SystemRoutes(authed, db)
}
