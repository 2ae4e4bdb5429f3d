package models

import (
	"time"
)

// MessMenu defines the daily mess menu model based on the 'mess_menus'
// table. Keyed by date, one menu per day.
type MessMenu struct {
	ID        int64     `json:"id" db:"id"`
	Date      time.Time `json:"date" db:"date"` // Menu date, unique
	Breakfast string    `json:"breakfast" db:"breakfast"`
	Lunch     string    `json:"lunch" db:"lunch"`
	Snacks    *string   `json:"snacks,omitempty" db:"snacks"` // Evening snacks (optional)
	Dinner    string    `json:"dinner" db:"dinner"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
