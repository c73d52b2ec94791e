package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gudang/services/account/domain/models"
)

// CredentialsRequest is the JSON body for register and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// UserResponse is the JSON shape of an account. The password hash is never
// serialized.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
