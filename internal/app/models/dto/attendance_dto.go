package dto

import (
	"time"

	"github.com/okan/hostelhub/internal/app/models"
)

// MarkAttendanceRequest marks attendance for a student on a date
type MarkAttendanceRequest struct {
	StudentID int64                   `json:"studentId" binding:"required,gt=0"`
	Date      string                  `json:"date" binding:"required" example:"2024-03-01"` // YYYY-MM-DD
	Status    models.AttendanceStatus `json:"status" binding:"required" example:"present"`
	Notes     *string                 `json:"notes,omitempty"`
}

// UpdateAttendanceRequest corrects an existing attendance record
type UpdateAttendanceRequest struct {
	Status models.AttendanceStatus `json:"status" binding:"required" example:"absent"`
	Notes  *string                 `json:"notes,omitempty"`
}

// AttendanceListFilter holds query parameters for listing attendance
type AttendanceListFilter struct {
	StudentID *int64     `form:"student_id"`
	Date      *time.Time `form:"date" time_format:"2006-01-02"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Status    string     `form:"status"`
	Page      int        `form:"page"`
	Size      int        `form:"size"`
}

// AttendanceSummaryResponse is the per-student attendance summary
type AttendanceSummaryResponse struct {
	StudentID  int64   `json:"studentId"`
	TotalDays  int     `json:"totalDays"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Leave      int     `json:"leave"`
	Percentage float64 `json:"percentage" example:"80"`
}

// AttendanceResponse is the API representation of an attendance record
type AttendanceResponse struct {
	ID        int64                   `json:"id"`
	StudentID int64                   `json:"studentId"`
	Date      string                  `json:"date" example:"2024-03-01"`
	Status    models.AttendanceStatus `json:"status"`
	MarkedBy  int64                   `json:"markedBy"`
	Notes     *string                 `json:"notes,omitempty"`
}

// FromAttendance converts a models.Attendance to its response form
func FromAttendance(att *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        att.ID,
		StudentID: att.StudentID,
		Date:      att.Date.Format("2006-01-02"),
		Status:    att.Status,
		MarkedBy:  att.MarkedBy,
		Notes:     att.Notes,
	}
}

// FromAttendances converts a slice of attendance records
func FromAttendances(records []*models.Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, FromAttendance(att))
	}
	return responses
}
