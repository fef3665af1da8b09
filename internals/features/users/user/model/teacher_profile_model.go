package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	referenceModel "servicecredit_backend/internals/features/school/reference/model"
)

// TeacherProfileModel is the teacher-specific extension of a user. Activities
// are attributed to this id, never to the user id directly.
type TeacherProfileModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DepartmentID *uuid.UUID `gorm:"type:uuid" json:"department_id,omitempty"`

	User       *UserModel                      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department *referenceModel.DepartmentModel `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (TeacherProfileModel) TableName() string { return "teacher_profiles" }

func (p *TeacherProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
