package dto

import (
	"github.com/google/uuid"

	userModel "servicecredit_backend/internals/features/users/user/model"
)

// UserResponse is the identity shape returned by auth endpoints.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromModel(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
	}
}
