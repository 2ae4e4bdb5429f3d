package dto

import (
	"time"

	"github.com/okan/hostelhub/internal/app/models"
)

// CreateContactMessageRequest is the public contact form payload
type CreateContactMessageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Role    string `json:"role" binding:"required" example:"student"` // Claimed, not verified
	Message string `json:"message" binding:"required"`
}

// ContactListFilter holds query parameters for listing contact messages
type ContactListFilter struct {
	IsResolved *bool `form:"is_resolved"`
	Page       int   `form:"page"`
	Size       int   `form:"size"`
}

// ContactMessageResponse is the API representation of a contact message
type ContactMessageResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Message    string    `json:"message"`
	IsResolved bool      `json:"isResolved"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromContactMessage converts a models.ContactMessage to its response form
func FromContactMessage(msg *models.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:         msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Role:       msg.Role,
		Message:    msg.Message,
		IsResolved: msg.IsResolved,
		CreatedAt:  msg.CreatedAt,
	}
}

// FromContactMessages converts a slice of contact messages
func FromContactMessages(msgs []*models.ContactMessage) []ContactMessageResponse {
	responses := make([]ContactMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		responses = append(responses, FromContactMessage(msg))
	}
	return responses
}
