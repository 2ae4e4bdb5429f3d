package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/db"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for student profiles.
// It holds the full database handle because room assignment runs in a
// transaction.
type StudentRepository struct {
	database *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		database: database,
	}
}

const studentSelect = `
	SELECT s.id, s.user_id, s.room_id, s.contact, s.emergency_contact,
	       s.guardian_name, s.address, s.date_of_birth, s.date_of_joining,
	       s.is_active, s.created_at, s.updated_at,
	       u.id, u.username, u.first_name, u.last_name, u.role, u.is_active
	FROM students s
	JOIN users u ON u.id = s.user_id
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var user models.User
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.RoomID,
		&student.Contact,
		&student.EmergencyContact,
		&student.GuardianName,
		&student.Address,
		&student.DateOfBirth,
		&student.DateOfJoining,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.IsActive,
	)
	if err != nil {
		return nil, err
	}
	student.User = &user
	return &student, nil
}

// Create creates a new student profile for an existing user
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, contact, emergency_contact, guardian_name,
		                      address, date_of_birth, date_of_joining, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.database.Pool.QueryRow(ctx, query,
		student.UserID, student.Contact, student.EmergencyContact,
		student.GuardianName, student.Address, student.DateOfBirth,
		student.DateOfJoining, student.IsActive,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_user_id_key") {
			return apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID with the user relation loaded
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.database.Pool.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByUserID retrieves the student profile belonging to a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := scanStudent(r.database.Pool.QueryRow(ctx, studentSelect+` WHERE s.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves students matching the filter
func (r *StudentRepository) GetAll(ctx context.Context, filter dto.StudentListFilter) ([]*models.Student, error) {
	query := studentSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.RoomID != nil {
		args = append(args, *filter.RoomID)
		query += fmt.Sprintf(" AND s.room_id = $%d", len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += fmt.Sprintf(" AND s.is_active = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.username ILIKE $%d)",
			len(args), len(args), len(args))
	}

	query += " ORDER BY u.first_name, u.last_name"

	rows, err := r.database.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates a student's profile fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET contact = $1, emergency_contact = $2, guardian_name = $3,
		    address = $4, date_of_birth = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.database.Pool.Exec(ctx, query,
		student.Contact, student.EmergencyContact, student.GuardianName,
		student.Address, student.DateOfBirth, student.IsActive, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// AssignRoom assigns a student to a room. The capacity check and the
// assignment run in one transaction with the room row locked, so two
// concurrent assignments cannot both pass the check.
func (r *StudentRepository) AssignRoom(ctx context.Context, studentID, roomID int64) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var capacity int
		var underMaintenance bool
		err := tx.QueryRow(ctx,
			`SELECT capacity, under_maintenance FROM rooms WHERE id = $1 FOR UPDATE`,
			roomID).Scan(&capacity, &underMaintenance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrRoomNotFound
			}
			return fmt.Errorf("error locking room: %w", err)
		}

		if underMaintenance {
			return apperrors.ErrRoomUnderMaintenance
		}

		var occupancy int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM students WHERE room_id = $1 AND is_active AND id <> $2`,
			roomID, studentID).Scan(&occupancy)
		if err != nil {
			return fmt.Errorf("error counting occupants: %w", err)
		}

		if occupancy >= capacity {
			return apperrors.ErrRoomCapacityExceeded
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE students SET room_id = $1, updated_at = NOW() WHERE id = $2 AND is_active`,
			roomID, studentID)
		if err != nil {
			return fmt.Errorf("error assigning room: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}

// UnassignRoom removes a student's room assignment
func (r *StudentRepository) UnassignRoom(ctx context.Context, studentID int64) error {
	cmdTag, err := r.database.Pool.Exec(ctx,
		`UPDATE students SET room_id = NULL, updated_at = NOW() WHERE id = $1`,
		studentID)
	if err != nil {
		return fmt.Errorf("error unassigning room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Deactivate marks a student inactive and frees their room
func (r *StudentRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.database.Pool.Exec(ctx,
		`UPDATE students SET is_active = FALSE, room_id = NULL, updated_at = NOW() WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("error deactivating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// CountActive returns the number of active students
func (r *StudentRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.database.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
