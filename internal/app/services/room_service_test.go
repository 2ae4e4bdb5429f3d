package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

type mockRoomRepo struct {
	rooms  map[int64]*models.Room
	nextID int64
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[int64]*models.Room), nextID: 1}
}

func (m *mockRoomRepo) Create(_ context.Context, room *models.Room) error {
	for _, r := range m.rooms {
		if r.RoomNo == room.RoomNo {
			return apperrors.ErrRoomAlreadyExists
		}
	}
	room.ID = m.nextID
	m.nextID++
	cp := *room
	m.rooms[room.ID] = &cp
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id int64) (*models.Room, error) {
	if r, ok := m.rooms[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, apperrors.ErrRoomNotFound
}

func (m *mockRoomRepo) GetAll(_ context.Context, filter dto.RoomListFilter) ([]*models.Room, error) {
	var out []*models.Room
	for id := int64(1); id < m.nextID; id++ {
		r, ok := m.rooms[id]
		if !ok {
			continue
		}
		if filter.Status != "" && string(r.Status()) != filter.Status {
			continue
		}
		if filter.RoomType != "" && string(r.RoomType) != filter.RoomType {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *models.Room) error {
	stored, ok := m.rooms[room.ID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	cp := *room
	cp.CurrentOccupancy = stored.CurrentOccupancy
	m.rooms[room.ID] = &cp
	return nil
}

func (m *mockRoomRepo) SetMaintenance(_ context.Context, id int64, underMaintenance bool) error {
	r, ok := m.rooms[id]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	r.UnderMaintenance = underMaintenance
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id int64) error {
	r, ok := m.rooms[id]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if r.CurrentOccupancy > 0 {
		return apperrors.ErrRoomHasOccupants
	}
	delete(m.rooms, id)
	return nil
}

func seedRoom(repo *mockRoomRepo, roomNo string, capacity, occupancy int, maintenance bool) *models.Room {
	room := &models.Room{
		RoomNo:           roomNo,
		RoomType:         models.RoomTypeDouble,
		Capacity:         capacity,
		Floor:            1,
		UnderMaintenance: maintenance,
	}
	_ = repo.Create(context.Background(), room)
	repo.rooms[room.ID].CurrentOccupancy = occupancy
	return room
}

func TestCreateRoom(t *testing.T) {
	repo := newMockRoomRepo()
	svc := NewRoomService(repo)

	resp, err := svc.CreateRoom(context.Background(), adminActor, &dto.CreateRoomRequest{
		RoomNo: "A101", RoomType: models.RoomTypeDouble, Capacity: 2, Floor: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "A101", resp.RoomNo)
	assert.Equal(t, models.RoomStatusVacant, resp.Status)
	assert.Equal(t, 0, resp.CurrentOccupancy)
}

func TestCreateRoom_DuplicateRoomNo(t *testing.T) {
	repo := newMockRoomRepo()
	svc := NewRoomService(repo)

	req := &dto.CreateRoomRequest{RoomNo: "A101", RoomType: models.RoomTypeSingle, Capacity: 1}
	_, err := svc.CreateRoom(context.Background(), adminActor, req)
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), adminActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrRoomAlreadyExists))
}

func TestCreateRoom_Denied(t *testing.T) {
	svc := NewRoomService(newMockRoomRepo())

	req := &dto.CreateRoomRequest{RoomNo: "A101", RoomType: models.RoomTypeSingle, Capacity: 1}
	_, err := svc.CreateRoom(context.Background(), wardenActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	_, err = svc.CreateRoom(context.Background(), studentActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestCreateRoom_InvalidType(t *testing.T) {
	svc := NewRoomService(newMockRoomRepo())

	_, err := svc.CreateRoom(context.Background(), adminActor, &dto.CreateRoomRequest{
		RoomNo: "A101", RoomType: "penthouse", Capacity: 1,
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestGetRoom_DerivedStatus(t *testing.T) {
	repo := newMockRoomRepo()
	svc := NewRoomService(repo)

	vacant := seedRoom(repo, "A101", 2, 0, false)
	occupied := seedRoom(repo, "A102", 2, 1, false)
	maintenance := seedRoom(repo, "A103", 2, 1, true)

	resp, err := svc.GetRoom(context.Background(), studentActor, vacant.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusVacant, resp.Status)

	resp, err = svc.GetRoom(context.Background(), studentActor, occupied.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusOccupied, resp.Status)

	// Maintenance wins over occupancy
	resp, err = svc.GetRoom(context.Background(), studentActor, maintenance.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, resp.Status)
}

func TestUpdateRoom_CapacityBelowOccupancy(t *testing.T) {
	repo := newMockRoomRepo()
	svc := NewRoomService(repo)

	room := seedRoom(repo, "A101", 3, 2, false)

	lower := 1
	_, err := svc.UpdateRoom(context.Background(), adminActor, room.ID, &dto.UpdateRoomRequest{Capacity: &lower})
	assert.True(t, errors.Is(err, apperrors.ErrStateConflict))

	// Equal to occupancy is allowed
	equal := 2
	resp, err := svc.UpdateRoom(context.Background(), adminActor, room.ID, &dto.UpdateRoomRequest{Capacity: &equal})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Capacity)
}

func TestSetRoomMaintenance(t *testing.T) {
	repo := newMockRoomRepo()
	svc := NewRoomService(repo)

	room := seedRoom(repo, "A101", 2, 0, false)

	resp, err := svc.SetRoomMaintenance(context.Background(), adminActor, room.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, resp.Status)

	resp, err = svc.SetRoomMaintenance(context.Background(), adminActor, room.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusVacant, resp.Status)
}

func TestDeleteRoom_Occupied(t *testing.T) {
	repo := newMockRoomRepo()
	svc := NewRoomService(repo)

	occupied := seedRoom(repo, "A101", 2, 1, false)
	vacant := seedRoom(repo, "A102", 2, 0, false)

	err := svc.DeleteRoom(context.Background(), adminActor, occupied.ID)
	assert.True(t, errors.Is(err, apperrors.ErrStateConflict))

	assert.NoError(t, svc.DeleteRoom(context.Background(), adminActor, vacant.ID))
}

func TestListRooms_StatusFilter(t *testing.T) {
	repo := newMockRoomRepo()
	svc := NewRoomService(repo)

	seedRoom(repo, "A101", 2, 0, false)
	seedRoom(repo, "A102", 2, 1, false)
	seedRoom(repo, "A103", 2, 0, true)

	resps, err := svc.ListRooms(context.Background(), studentActor, dto.RoomListFilter{Status: "vacant"})
	require.NoError(t, err)
	require.Len(t, resps, 1)
	assert.Equal(t, "A101", resps[0].RoomNo)

	resps, err = svc.ListRooms(context.Background(), studentActor, dto.RoomListFilter{Status: "maintenance"})
	require.NoError(t, err)
	require.Len(t, resps, 1)
	assert.Equal(t, "A103", resps[0].RoomNo)
}
