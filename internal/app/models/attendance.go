package models

import (
	"time"
)

// AttendanceStatus defines the daily attendance state
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

// Valid reports whether the status is one of the closed set.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return true
	}
	return false
}

// Attendance defines the attendance model based on the 'attendance' table.
// At most one record exists per (student, date), enforced by a unique
// constraint.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	Date      time.Time        `json:"date" db:"date"`                       // Calendar date, midnight UTC
	Status    AttendanceStatus `json:"status" db:"status" example:"present"` // present, absent or leave
	MarkedBy  int64            `json:"markedBy" db:"marked_by"`              // User who marked the record
	Notes     *string          `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	Student   *Student         `json:"student,omitempty"` // Relation, no db tag
}
