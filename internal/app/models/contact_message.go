package models

import (
	"time"
)

// ContactMessage defines a public contact form submission based on the
// 'contact_messages' table. Write-only from the public boundary, read-only
// by admins.
type ContactMessage struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Role       string    `json:"role" db:"role"` // Role claimed by the sender, not verified
	Message    string    `json:"message" db:"message"`
	IsResolved bool      `json:"isResolved" db:"is_resolved"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
