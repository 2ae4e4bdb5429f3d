package dto

import (
	"time"

	"github.com/okan/hostelhub/internal/app/models"
)

// CreateComplaintRequest files a complaint. StudentID is only honored for
// admin/warden callers; students always file for themselves.
type CreateComplaintRequest struct {
	StudentID   int64                    `json:"studentId,omitempty"`
	Title       string                   `json:"title" binding:"required,max=200"`
	Description string                   `json:"description" binding:"required"`
	Category    models.ComplaintCategory `json:"category" binding:"required" example:"plumbing"`
	Priority    models.ComplaintPriority `json:"priority,omitempty" example:"medium"` // Defaults to medium
}

// ResolveComplaintRequest resolves a complaint; notes are mandatory
type ResolveComplaintRequest struct {
	ResolutionNotes string `json:"resolutionNotes" binding:"required"`
}

// ComplaintListFilter holds query parameters for listing complaints
type ComplaintListFilter struct {
	StudentID *int64 `form:"student_id"`
	Status    string `form:"status"`
	Category  string `form:"category"`
	Priority  string `form:"priority"`
}

// ComplaintResponse is the API representation of a complaint
type ComplaintResponse struct {
	ID              int64                    `json:"id"`
	StudentID       int64                    `json:"studentId"`
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	Category        models.ComplaintCategory `json:"category"`
	Priority        models.ComplaintPriority `json:"priority"`
	Status          models.ComplaintStatus   `json:"status"`
	ResolvedBy      *int64                   `json:"resolvedBy,omitempty"`
	ResolutionNotes *string                  `json:"resolutionNotes,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// FromComplaint converts a models.Complaint to its response form
func FromComplaint(complaint *models.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:              complaint.ID,
		StudentID:       complaint.StudentID,
		Title:           complaint.Title,
		Description:     complaint.Description,
		Category:        complaint.Category,
		Priority:        complaint.Priority,
		Status:          complaint.Status,
		ResolvedBy:      complaint.ResolvedBy,
		ResolutionNotes: complaint.ResolutionNotes,
		CreatedAt:       complaint.CreatedAt,
	}
}

// FromComplaints converts a slice of complaints
func FromComplaints(complaints []*models.Complaint) []ComplaintResponse {
	responses := make([]ComplaintResponse, 0, len(complaints))
	for _, complaint := range complaints {
		responses = append(responses, FromComplaint(complaint))
	}
	return responses
}
