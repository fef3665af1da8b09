package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }

func (d *DepartmentModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
