package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalModel is the append-only audit trail: one row per reviewer decision,
// re-reviews add rows rather than updating.
type ApprovalModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityID uuid.UUID      `gorm:"type:uuid;not null;index" json:"activity_id"`
	ApproverID uuid.UUID      `gorm:"type:uuid;not null" json:"approver_id"`
	Status     ActivityStatus `gorm:"type:varchar(20);not null" json:"status"`
	Comments   *string        `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ApprovalModel) TableName() string { return "approvals" }

func (a *ApprovalModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
