package models

import (
	"time"
)

// ComplaintStatus defines the complaint lifecycle state. Transitions are
// forward-only: pending -> in_progress -> resolved, or pending -> resolved.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// ComplaintCategory defines the complaint category
type ComplaintCategory string

const (
	CategoryElectrical  ComplaintCategory = "electrical"
	CategoryPlumbing    ComplaintCategory = "plumbing"
	CategoryCleaning    ComplaintCategory = "cleaning"
	CategoryMaintenance ComplaintCategory = "maintenance"
	CategoryOther       ComplaintCategory = "other"
)

// Valid reports whether the category is one of the closed set.
func (c ComplaintCategory) Valid() bool {
	switch c {
	case CategoryElectrical, CategoryPlumbing, CategoryCleaning, CategoryMaintenance, CategoryOther:
		return true
	}
	return false
}

// ComplaintPriority defines the complaint priority
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
)

// Valid reports whether the priority is one of the closed set.
func (p ComplaintPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Complaint defines the complaint model based on the 'complaints' table
type Complaint struct {
	ID              int64             `json:"id" db:"id"`
	StudentID       int64             `json:"studentId" db:"student_id"`
	Title           string            `json:"title" db:"title"`
	Description     string            `json:"description" db:"description"`
	Category        ComplaintCategory `json:"category" db:"category" example:"plumbing"`
	Priority        ComplaintPriority `json:"priority" db:"priority" example:"medium"`
	Status          ComplaintStatus   `json:"status" db:"status" example:"pending"`
	ResolvedBy      *int64            `json:"resolvedBy,omitempty" db:"resolved_by"`
	ResolutionNotes *string           `json:"resolutionNotes,omitempty" db:"resolution_notes"` // Required when resolving
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
	Student         *Student          `json:"student,omitempty"` // Relation, no db tag
}
