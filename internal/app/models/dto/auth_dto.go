package dto

import (
	"github.com/okan/hostelhub/internal/app/models"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username  string      `json:"username" binding:"required,min=3,max=50" example:"jdoe"`
	Email     string      `json:"email" binding:"required,email" example:"jdoe@hostel.edu"`
	Password  string      `json:"password" binding:"required,min=8" example:"secret123"`
	FirstName string      `json:"firstName" binding:"required" example:"John"`
	LastName  string      `json:"lastName" binding:"required" example:"Doe"`
	Phone     *string     `json:"phone,omitempty" example:"+90 555 000 0000"`
	Role      models.Role `json:"role,omitempty" example:"STUDENT"` // Defaults to STUDENT when empty
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// RefreshTokenRequest represents a token refresh request. The token may also
// come from the refresh cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// TokenResponse represents issued session tokens
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`        // Seconds
	RefreshExpiresIn int    `json:"refreshExpiresIn"` // Seconds
}

// LoginResponse represents a successful login
type LoginResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID        int64       `json:"id" example:"1"`
	Username  string      `json:"username" example:"jdoe"`
	Email     string      `json:"email" example:"jdoe@hostel.edu"`
	FirstName string      `json:"firstName" example:"John"`
	LastName  string      `json:"lastName" example:"Doe"`
	Phone     *string     `json:"phone,omitempty"`
	Role      models.Role `json:"role" example:"STUDENT" enums:"ADMIN,WARDEN,STUDENT"`
	IsActive  bool        `json:"isActive" example:"true"`
	StudentID *int64      `json:"studentId,omitempty"` // Linked student profile id, students only
}

// UpdateProfileRequest represents a profile update for the current user
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User, studentID int64) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
		IsActive:  user.IsActive,
	}
	if studentID > 0 {
		resp.StudentID = &studentID
	}
	return resp
}
