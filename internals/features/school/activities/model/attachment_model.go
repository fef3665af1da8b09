package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentModel stores only the blob-store path and MIME type; file contents
// are never interpreted here.
type AttachmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FilePath   string    `gorm:"size:500;not null" json:"file_path"`
	FileType   string    `gorm:"size:100" json:"file_type"`
	ActivityID uuid.UUID `gorm:"type:uuid;not null;index" json:"activity_id"`
}

func (AttachmentModel) TableName() string { return "attachments" }

func (a *AttachmentModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
