package dto

import (
	"time"

	"github.com/okan/hostelhub/internal/app/models"
)

// CreateVisitorRequest registers a visitor check-in for a host student
type CreateVisitorRequest struct {
	StudentID   int64  `json:"studentId" binding:"required,gt=0"`
	VisitorName string `json:"visitorName" binding:"required"`
	Purpose     string `json:"purpose" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
}

// VisitorListFilter holds query parameters for listing visitors
type VisitorListFilter struct {
	StudentID *int64 `form:"student_id"`
	Today     bool   `form:"today"`
	Page      int    `form:"page"`
	Size      int    `form:"size"`
}

// VisitorResponse is the API representation of a visitor log entry
type VisitorResponse struct {
	ID          int64      `json:"id"`
	StudentID   int64      `json:"studentId"`
	VisitorName string     `json:"visitorName"`
	Purpose     string     `json:"purpose"`
	Contact     string     `json:"contact"`
	InTime      time.Time  `json:"inTime"`
	OutTime     *time.Time `json:"outTime,omitempty"`
	ApprovedBy  *int64     `json:"approvedBy,omitempty"`
}

// FromVisitor converts a models.Visitor to its response form
func FromVisitor(visitor *models.Visitor) VisitorResponse {
	return VisitorResponse{
		ID:          visitor.ID,
		StudentID:   visitor.StudentID,
		VisitorName: visitor.VisitorName,
		Purpose:     visitor.Purpose,
		Contact:     visitor.Contact,
		InTime:      visitor.InTime,
		OutTime:     visitor.OutTime,
		ApprovedBy:  visitor.ApprovedBy,
	}
}

// FromVisitors converts a slice of visitor entries
func FromVisitors(visitors []*models.Visitor) []VisitorResponse {
	responses := make([]VisitorResponse, 0, len(visitors))
	for _, visitor := range visitors {
		responses = append(responses, FromVisitor(visitor))
	}
	return responses
}
