package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	referenceModel "servicecredit_backend/internals/features/school/reference/model"
	userModel "servicecredit_backend/internals/features/users/user/model"
)

// ActivityStatus is the closed lifecycle state set.
type ActivityStatus string

const (
	StatusPending  ActivityStatus = "PENDING"
	StatusApproved ActivityStatus = "APPROVED"
	StatusRejected ActivityStatus = "REJECTED"
)

// Terminal reports whether s is a reviewer decision value.
func (s ActivityStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ActivityModel is the central lifecycle entity. TeacherID references
// teacher_profiles, not users.
type ActivityModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Date          datatypes.Date `gorm:"not null" json:"date"`
	DurationHours float64        `gorm:"not null" json:"duration_hours"`
	Status        ActivityStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	TeacherID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"teacher_id"`
	CategoryID    uuid.UUID      `gorm:"type:uuid;not null" json:"category_id"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Teacher     *userModel.TeacherProfileModel       `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Category    *referenceModel.ServiceCategoryModel `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Attachments []AttachmentModel                    `gorm:"foreignKey:ActivityID" json:"attachments,omitempty"`
}

func (ActivityModel) TableName() string { return "activities" }

func (a *ActivityModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
