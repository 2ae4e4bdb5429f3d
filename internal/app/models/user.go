package models

import (
	"time"
)

// Role defines the user role for access control
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleWarden  Role = "WARDEN"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWarden, RoleStudent:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username    string     `json:"username" db:"username" example:"jdoe"`                    // Unique login name
	Email       string     `json:"email" db:"email" example:"jdoe@hostel.edu"`               // User's email address
	Password    string     `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	FirstName   string     `json:"firstName" db:"first_name" example:"John"`                 // User's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`                    // User's last name
	Phone       *string    `json:"phone,omitempty" db:"phone" example:"+90 555 000 0000"`    // Contact phone number (nullable)
	Role        Role       `json:"role" db:"role" example:"STUDENT"`                         // User's role (ADMIN, WARDEN or STUDENT)
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the user account is active
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                 // Timestamp of the last login (nullable)
}

// RefreshToken defines a persisted refresh token based on the 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
