package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/dberrors"
)

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
	}
}

// roomSelect joins the computed occupancy; occupancy is never stored.
const roomSelect = `
	SELECT r.id, r.room_no, r.room_type, r.capacity, r.floor, r.under_maintenance,
	       r.description, r.created_at, r.updated_at,
	       COALESCE(o.occupancy, 0) AS current_occupancy
	FROM rooms r
	LEFT JOIN (
		SELECT room_id, COUNT(*) AS occupancy
		FROM students
		WHERE room_id IS NOT NULL AND is_active
		GROUP BY room_id
	) o ON o.room_id = r.id
`

func scanRoom(row pgx.Row) (*models.Room, error) {
	var room models.Room
	err := row.Scan(
		&room.ID,
		&room.RoomNo,
		&room.RoomType,
		&room.Capacity,
		&room.Floor,
		&room.UnderMaintenance,
		&room.Description,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.CurrentOccupancy,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Create creates a new room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (room_no, room_type, capacity, floor, under_maintenance, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		room.RoomNo, room.RoomType, room.Capacity, room.Floor,
		room.UnderMaintenance, room.Description,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_room_no_key") {
			return apperrors.ErrRoomAlreadyExists
		}
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by ID with its computed occupancy
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	room, err := scanRoom(r.db.QueryRow(ctx, roomSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return room, nil
}

// GetAll retrieves rooms matching the filter
func (r *RoomRepository) GetAll(ctx context.Context, filter dto.RoomListFilter) ([]*models.Room, error) {
	query := roomSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.RoomType != "" {
		args = append(args, filter.RoomType)
		query += fmt.Sprintf(" AND r.room_type = $%d", len(args))
	}

	// The derived status cannot be matched in SQL without re-deriving it;
	// translate the filter onto the tag and occupancy.
	switch models.RoomStatus(filter.Status) {
	case models.RoomStatusMaintenance:
		query += " AND r.under_maintenance"
	case models.RoomStatusOccupied:
		query += " AND NOT r.under_maintenance AND COALESCE(o.occupancy, 0) > 0"
	case models.RoomStatusVacant:
		query += " AND NOT r.under_maintenance AND COALESCE(o.occupancy, 0) = 0"
	}

	query += " ORDER BY r.room_no"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// Update updates an existing room's mutable fields
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET room_type = $1, capacity = $2, floor = $3, description = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		room.RoomType, room.Capacity, room.Floor, room.Description, room.ID)
	if err != nil {
		return fmt.Errorf("error updating room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// SetMaintenance toggles the manual maintenance tag
func (r *RoomRepository) SetMaintenance(ctx context.Context, id int64, underMaintenance bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE rooms SET under_maintenance = $1, updated_at = NOW() WHERE id = $2`,
		underMaintenance, id)
	if err != nil {
		return fmt.Errorf("error updating room maintenance tag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// Delete deletes a room by ID. Rooms with assigned students cannot be
// deleted.
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	var hasOccupants bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE room_id = $1 AND is_active)`, id).Scan(&hasOccupants)
	if err != nil {
		return fmt.Errorf("error checking room occupants: %w", err)
	}

	if hasOccupants {
		return apperrors.ErrRoomHasOccupants
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// CountAll returns the total number of rooms
func (r *RoomRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting rooms: %w", err)
	}
	return count, nil
}

// CountOccupied returns the number of rooms with at least one active student
func (r *RoomRepository) CountOccupied(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT room_id) FROM students
		WHERE room_id IS NOT NULL AND is_active
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting occupied rooms: %w", err)
	}
	return count, nil
}
