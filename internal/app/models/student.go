package models

import (
	"time"
)

// Student defines the student profile model based on the 'students' table
type Student struct {
	ID               int64      `json:"id" db:"id"`
	UserID           int64      `json:"userId" db:"user_id"`                      // 1:1 link to a user with role STUDENT
	RoomID           *int64     `json:"roomId,omitempty" db:"room_id"`            // Assigned room (nullable)
	Contact          string     `json:"contact" db:"contact"`                     // Student contact number
	EmergencyContact string     `json:"emergencyContact" db:"emergency_contact"`  // Emergency contact number
	GuardianName     string     `json:"guardianName" db:"guardian_name"`          // Parent/guardian name
	Address          string     `json:"address" db:"address"`                     // Permanent address
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"` // Nullable
	DateOfJoining    time.Time  `json:"dateOfJoining" db:"date_of_joining"`       // Date joined the hostel
	IsActive         bool       `json:"isActive" db:"is_active"`                  // Active student status
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
	User             *User      `json:"user,omitempty"` // Relation, no db tag
	Room             *Room      `json:"room,omitempty"` // Relation, no db tag
}
