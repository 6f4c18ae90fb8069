package dto

import (
	"time"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
)

// UserResponse is the public view of a user. The password hash never leaves
// the service layer.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
