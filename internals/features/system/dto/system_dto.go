package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TeacherListItem is the flattened management-view row.
type TeacherListItem struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Status       string     `json:"status"`
	Department   string     `json:"department"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	JoinDate     time.Time  `json:"join_date"`
}

type CreateTeacherRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8"`
	DepartmentID string `json:"department_id" validate:"omitempty,uuid4"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.DepartmentID = strings.TrimSpace(r.DepartmentID)
}

// UpdateTeacherRequest edits profile and active status; status is the UI's
// Active/Inactive label.
type UpdateTeacherRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	DepartmentID string `json:"department_id" validate:"omitempty,uuid4"`
	Status       string `json:"status" validate:"required,oneof=Active Inactive"`
}

func (r *UpdateTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.DepartmentID = strings.TrimSpace(r.DepartmentID)
	r.Status = strings.TrimSpace(r.Status)
}
