package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	activityModel "servicecredit_backend/internals/features/school/activities/model"
)

// SubmitActivityRequest carries the multipart/JSON fields of a submission.
// Attachments travel separately as uploaded files.
type SubmitActivityRequest struct {
	Title         string  `json:"title" form:"title" validate:"required,min=3,max=200"`
	Description   string  `json:"description" form:"description" validate:"max=2000"`
	Date          string  `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	DurationHours float64 `json:"duration_hours" form:"duration_hours" validate:"required,gt=0"`
	CategoryID    string  `json:"category_id" form:"category_id" validate:"required,uuid4"`
}

func (r *SubmitActivityRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Date = strings.TrimSpace(r.Date)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
}

// ToModel builds the pending activity for the given teacher profile. Date and
// CategoryID are safe to parse after validation.
func (r *SubmitActivityRequest) ToModel(teacherID uuid.UUID) *activityModel.ActivityModel {
	date, _ := time.Parse("2006-01-02", r.Date)
	categoryID, _ := uuid.Parse(r.CategoryID)
	return &activityModel.ActivityModel{
		Title:         r.Title,
		Description:   r.Description,
		Date:          datatypes.Date(date),
		DurationHours: r.DurationHours,
		Status:        activityModel.StatusPending,
		TeacherID:     teacherID,
		CategoryID:    categoryID,
	}
}

// DecideRequest is the reviewer decision payload.
type DecideRequest struct {
	Status  string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Remarks string `json:"remarks" validate:"max=1000"`
}

func (r *DecideRequest) Normalize() {
	r.Status = strings.TrimSpace(strings.ToUpper(r.Status))
	r.Remarks = strings.TrimSpace(r.Remarks)
}

// AttachmentInput is what the blob-store collaborator hands back per file.
type AttachmentInput struct {
	Path string
	Type string
}
