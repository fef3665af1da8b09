package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceCategoryModel classifies activities (Training, Community Service, ...).
type ServiceCategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (ServiceCategoryModel) TableName() string { return "service_categories" }

func (s *ServiceCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
