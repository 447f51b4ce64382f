package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role axis of a user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Status is the admin-approval axis of a user
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// User represents an account federated from Google sign-in.
// GoogleSubject is the provider's stable sub claim and, together with
// email, carries a uniqueness constraint that doubles as the concurrency
// guard for simultaneous first logins.
type User struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email         string     `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Name          string     `json:"name" gorm:"size:255"`
	PictureURL    string     `json:"picture_url" gorm:"size:1024"`
	GoogleSubject string     `json:"-" gorm:"uniqueIndex;not null;size:255"`
	Role          Role       `json:"role" gorm:"type:varchar(20);default:'user';not null"`
	Status        Status     `json:"status" gorm:"type:varchar(20);default:'pending';not null"`
	LastLogin     *time.Time `json:"last_login"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsApproved reports whether the user may use protected resources
func (u *User) IsApproved() bool {
	return u.Status == StatusApproved
}
