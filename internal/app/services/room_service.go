package services

import (
	"context"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/policy"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

type roomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetAll(ctx context.Context, filter dto.RoomListFilter) ([]*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	SetMaintenance(ctx context.Context, id int64, underMaintenance bool) error
	Delete(ctx context.Context, id int64) error
}

// RoomService handles room management
type RoomService struct {
	roomRepo roomRepository
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo roomRepository) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
	}
}

// CreateRoom creates a new room
func (s *RoomService) CreateRoom(ctx context.Context, actor policy.Actor, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourceRoom); err != nil {
		return nil, err
	}

	if !req.RoomType.Valid() {
		return nil, apperrors.NewValidationError("invalid room type")
	}

	room := &models.Room{
		RoomNo:      req.RoomNo,
		RoomType:    req.RoomType,
		Capacity:    req.Capacity,
		Floor:       req.Floor,
		Description: req.Description,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	resp := dto.FromRoom(room)
	return &resp, nil
}

// GetRoom retrieves a room with its derived status
func (s *RoomService) GetRoom(ctx context.Context, actor policy.Actor, id int64) (*dto.RoomResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceRoom); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromRoom(room)
	return &resp, nil
}

// ListRooms lists rooms matching the filter
func (s *RoomService) ListRooms(ctx context.Context, actor policy.Actor, filter dto.RoomListFilter) ([]dto.RoomResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceRoom); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromRooms(rooms), nil
}

// UpdateRoom updates a room's attributes. Capacity can never drop below
// the current occupancy.
func (s *RoomService) UpdateRoom(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceRoom); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomType != nil {
		if !req.RoomType.Valid() {
			return nil, apperrors.NewValidationError("invalid room type")
		}
		room.RoomType = *req.RoomType
	}
	if req.Capacity != nil {
		if *req.Capacity < room.CurrentOccupancy {
			return nil, apperrors.NewCustomError(apperrors.ErrStateConflict,
				"capacity cannot be lower than current occupancy")
		}
		room.Capacity = *req.Capacity
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Description != nil {
		room.Description = req.Description
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	resp := dto.FromRoom(room)
	return &resp, nil
}

// SetRoomMaintenance toggles the maintenance tag on a room
func (s *RoomService) SetRoomMaintenance(ctx context.Context, actor policy.Actor, id int64, underMaintenance bool) (*dto.RoomResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceRoom); err != nil {
		return nil, err
	}

	if err := s.roomRepo.SetMaintenance(ctx, id, underMaintenance); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromRoom(room)
	return &resp, nil
}

// DeleteRoom removes a room; occupied rooms cannot be deleted
func (s *RoomService) DeleteRoom(ctx context.Context, actor policy.Actor, id int64) error {
	if err := policy.Authorize(actor, policy.OpDelete, policy.ResourceRoom); err != nil {
		return err
	}

	return s.roomRepo.Delete(ctx, id)
}
