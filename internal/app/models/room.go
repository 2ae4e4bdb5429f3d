package models

import (
	"time"
)

// RoomType defines the room size category
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeTriple RoomType = "triple"
)

// Valid reports whether the room type is one of the closed set.
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTriple:
		return true
	}
	return false
}

// RoomStatus is derived, never stored: maintenance when the tag is set,
// otherwise occupied iff occupancy > 0, vacant otherwise.
type RoomStatus string

const (
	RoomStatusVacant      RoomStatus = "vacant"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room defines the room model based on the 'rooms' table.
// Occupancy is computed from active student assignments at query time.
type Room struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	RoomNo           string    `json:"roomNo" db:"room_no" example:"A1"`         // Unique room number
	RoomType         RoomType  `json:"roomType" db:"room_type" example:"double"` // single, double or triple
	Capacity         int       `json:"capacity" db:"capacity" example:"2"`       // Maximum number of students
	Floor            int       `json:"floor" db:"floor" example:"1"`             // Floor number
	UnderMaintenance bool      `json:"underMaintenance" db:"under_maintenance"`  // Manual maintenance tag, orthogonal to occupancy
	Description      *string   `json:"description,omitempty" db:"description"`   // Additional room details (nullable)
	CurrentOccupancy int       `json:"currentOccupancy" db:"current_occupancy"`  // Computed: active students assigned to the room
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// Status derives the room status from the maintenance tag and occupancy.
func (r *Room) Status() RoomStatus {
	if r.UnderMaintenance {
		return RoomStatusMaintenance
	}
	if r.CurrentOccupancy > 0 {
		return RoomStatusOccupied
	}
	return RoomStatusVacant
}

// IsAvailable reports whether the room can take another student.
func (r *Room) IsAvailable() bool {
	return !r.UnderMaintenance && r.CurrentOccupancy < r.Capacity
}
