package dto

import (
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// CreateUserRequest payload for specialist registration.
type CreateUserRequest struct {
	Login          string                `json:"login"`
	Password       string                `json:"password"`
	Specialization domain.Specialization `json:"specialization"`
}

// UserResponse never carries the credential.
type UserResponse struct {
	ID             int64                 `json:"id"`
	Login          string                `json:"login"`
	Specialization domain.Specialization `json:"specialization"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// NewUserResponse maps a domain user, stripping the credential.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Login:          u.Login,
		Specialization: u.Specialization,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
