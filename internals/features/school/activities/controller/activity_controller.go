package controller

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "servicecredit_backend/internals/features/school/activities/dto"
	activityModel "servicecredit_backend/internals/features/school/activities/model"
	activityService "servicecredit_backend/internals/features/school/activities/service"
	helper "servicecredit_backend/internals/helpers"
)

type ActivityController struct {
	Lifecycle *activityService.LifecycleService
	Stats     *activityService.StatsService
	UploadDir string
	validate  *validator.Validate
}

func NewActivityController(db *gorm.DB, uploadDir string) *ActivityController {
	return &ActivityController{
		Lifecycle: activityService.NewLifecycleService(db),
		Stats:     activityService.NewStatsService(db),
		UploadDir: uploadDir,
		validate:  validator.New(),
	}
}

// POST /api/activities/submit (TEACHER; multipart with optional "attachments" files)
func (ac *ActivityController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req activityDTO.SubmitActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	attachments, err := ac.storeUploads(c)
	if err != nil {
		log.Println("[ERROR] storing attachments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store attachments")
	}

	activity, err := ac.Lifecycle.Submit(userID, helper.GetUserNameFromToken(c), req, attachments)
	if err != nil {
		switch {
		case errors.Is(err, activityService.ErrProfileIncomplete):
			return helper.JsonError(c, fiber.StatusBadRequest, "Teacher profile incomplete")
		case errors.Is(err, activityService.ErrCategoryNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Service category not found")
		default:
			log.Println("[ERROR] Submit:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit activity")
		}
	}
	return helper.JsonCreated(c, "Activity submitted", activity)
}

// GET /api/activities/my (TEACHER)
func (ac *ActivityController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	activities, err := ac.Lifecycle.ListMine(userID)
	if err != nil {
		log.Println("[ERROR] ListMine:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	return helper.JsonOK(c, "Activities fetched", activities)
}

// GET /api/activities/my-stats (TEACHER)
func (ac *ActivityController) MyStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	stats, err := ac.Stats.MyStats(userID)
	if err != nil {
		log.Println("[ERROR] MyStats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}
	return helper.JsonOK(c, "Stats fetched", stats)
}

// GET /api/activities/all?status=&limit= (ADMIN/SUPERVISOR)
func (ac *ActivityController) All(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid limit")
		}
		limit = n
	}
	activities, err := ac.Lifecycle.ListAll(c.Query("status"), limit)
	if err != nil {
		log.Println("[ERROR] ListAll:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	return helper.JsonOK(c, "Activities fetched", activities)
}

// GET /api/activities/stats (ADMIN/SUPERVISOR)
func (ac *ActivityController) DashboardStats(c *fiber.Ctx) error {
	stats, err := ac.Stats.DashboardStats()
	if err != nil {
		log.Println("[ERROR] DashboardStats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}
	return helper.JsonOK(c, "Stats fetched", stats)
}

// GET /api/activities/reports (ADMIN/SUPERVISOR)
func (ac *ActivityController) Reports(c *fiber.Ctx) error {
	data, err := ac.Stats.ReportData()
	if err != nil {
		log.Println("[ERROR] ReportData:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch report data")
	}
	return helper.JsonOK(c, "Report data fetched", data)
}

// GET /api/activities/teacher/:id (ADMIN/SUPERVISOR; :id is the user id)
func (ac *ActivityController) TeacherStats(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}
	stats, err := ac.Stats.TeacherStats(id)
	if err != nil {
		if errors.Is(err, activityService.ErrTeacherNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Println("[ERROR] TeacherStats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher stats")
	}
	return helper.JsonOK(c, "Teacher stats fetched", stats)
}

// PUT /api/activities/:id/status (ADMIN/SUPERVISOR)
func (ac *ActivityController) UpdateStatus(c *fiber.Ctx) error {
	approverID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity ID")
	}

	var req activityDTO.DecideRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	activity, err := ac.Lifecycle.Decide(
		activityID, approverID, activityModel.ActivityStatus(req.Status), req.Remarks)
	if err != nil {
		switch {
		case errors.Is(err, activityService.ErrActivityNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		case errors.Is(err, activityService.ErrInvalidStatus):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Println("[ERROR] Decide:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
		}
	}
	return helper.JsonOK(c, "Activity updated", activity)
}

// storeUploads hands the multipart files to the blob store (local disk here)
// and returns the stored paths. The record keeps only path and MIME type.
func (ac *ActivityController) storeUploads(c *fiber.Ctx) ([]activityDTO.AttachmentInput, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil // non-multipart submit, no attachments
	}
	files := form.File["attachments"]
	if len(files) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(ac.UploadDir, 0o755); err != nil {
		return nil, err
	}
	attachments := make([]activityDTO.AttachmentInput, 0, len(files))
	for _, file := range files {
		dst := filepath.Join(ac.UploadDir, uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveFile(file, dst); err != nil {
			return nil, err
		}
		attachments = append(attachments, activityDTO.AttachmentInput{
			Path: dst,
			Type: file.Header.Get("Content-Type"),
		})
	}
	return attachments, nil
}
