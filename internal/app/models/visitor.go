package models

import (
	"time"
)

// Visitor defines the visitor model based on the 'visitors' table
type Visitor struct {
	ID          int64      `json:"id" db:"id"`
	StudentID   int64      `json:"studentId" db:"student_id"`       // Host student
	VisitorName string     `json:"visitorName" db:"visitor_name"`   // Visitor name
	Purpose     string     `json:"purpose" db:"purpose"`            // Purpose of visit
	Contact     string     `json:"contact" db:"contact"`            // Visitor contact number
	InTime      time.Time  `json:"inTime" db:"in_time"`             // Check-in time
	OutTime     *time.Time `json:"outTime,omitempty" db:"out_time"` // Check-out time, nil while the visit is ongoing
	ApprovedBy  *int64     `json:"approvedBy,omitempty" db:"approved_by"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	Student     *Student   `json:"student,omitempty"` // Relation, no db tag
}
