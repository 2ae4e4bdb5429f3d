package dto

import (
	"github.com/okan/hostelhub/internal/app/models"
)

// CreateRoomRequest represents a room creation request
type CreateRoomRequest struct {
	RoomNo      string          `json:"roomNo" binding:"required" example:"A1"`
	RoomType    models.RoomType `json:"roomType" binding:"required" example:"double"`
	Capacity    int             `json:"capacity" binding:"required,gt=0" example:"2"`
	Floor       int             `json:"floor" example:"1"`
	Description *string         `json:"description,omitempty"`
}

// UpdateRoomRequest represents a room update request
type UpdateRoomRequest struct {
	RoomType    *models.RoomType `json:"roomType,omitempty"`
	Capacity    *int             `json:"capacity,omitempty" binding:"omitempty,gt=0"`
	Floor       *int             `json:"floor,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// UpdateRoomStatusRequest toggles the maintenance tag. Vacant/occupied are
// derived from occupancy and cannot be set directly.
type UpdateRoomStatusRequest struct {
	UnderMaintenance bool `json:"underMaintenance"`
}

// RoomResponse represents room information with the derived status
type RoomResponse struct {
	ID               int64             `json:"id" example:"1"`
	RoomNo           string            `json:"roomNo" example:"A1"`
	RoomType         models.RoomType   `json:"roomType" example:"double"`
	Capacity         int               `json:"capacity" example:"2"`
	Floor            int               `json:"floor" example:"1"`
	CurrentOccupancy int               `json:"currentOccupancy" example:"1"`
	Status           models.RoomStatus `json:"status" example:"occupied" enums:"vacant,occupied,maintenance"`
	Description      *string           `json:"description,omitempty"`
}

// RoomListFilter holds query parameters for listing rooms
type RoomListFilter struct {
	Status   string `form:"status"`
	RoomType string `form:"type"`
}

// FromRoom converts a models.Room to a RoomResponse
func FromRoom(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:               room.ID,
		RoomNo:           room.RoomNo,
		RoomType:         room.RoomType,
		Capacity:         room.Capacity,
		Floor:            room.Floor,
		CurrentOccupancy: room.CurrentOccupancy,
		Status:           room.Status(),
		Description:      room.Description,
	}
}

// FromRooms converts a slice of rooms
func FromRooms(rooms []*models.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, FromRoom(r))
	}
	return out
}
