package dto

import (
	"strings"

	userDTO "servicecredit_backend/internals/features/users/user/dto"
)

type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Role       string `json:"role" validate:"omitempty,oneof=ADMIN TEACHER SUPERVISOR"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(strings.ToUpper(r.Role))
	r.Department = strings.TrimSpace(r.Department)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  userDTO.UserResponse `json:"user"`
}
