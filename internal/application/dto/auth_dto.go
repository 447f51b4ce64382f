package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
)

// GoogleLoginRequest is the body of POST /auth/google
type GoogleLoginRequest struct {
	Code        string `json:"code" binding:"required"`
	RedirectURI string `json:"redirect_uri"`
}

// UserInfo is the public representation of a user. The raw session token
// is never part of a documented response body.
type UserInfo struct {
	ID         uuid.UUID     `json:"id"`
	Email      string        `json:"email"`
	Name       string        `json:"name"`
	PictureURL string        `json:"picture_url,omitempty"`
	Role       models.Role   `json:"role"`
	Status     models.Status `json:"status"`
	LastLogin  *time.Time    `json:"last_login,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// LoginResponse is the body returned after a successful authentication
type LoginResponse struct {
	User    UserInfo `json:"user"`
	Message string   `json:"message"`
}

// NewUserInfo maps a user model to its public representation
func NewUserInfo(u *models.User) UserInfo {
	return UserInfo{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		PictureURL: u.PictureURL,
		Role:       u.Role,
		Status:     u.Status,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
}

// NewUserInfoList maps a slice of user models
func NewUserInfoList(users []*models.User) []UserInfo {
	out := make([]UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserInfo(u))
	}
	return out
}
