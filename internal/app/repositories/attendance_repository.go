package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/dberrors"
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

const attendanceColumns = `id, student_id, date, status, marked_by, notes, created_at`

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var att models.Attendance
	err := row.Scan(
		&att.ID,
		&att.StudentID,
		&att.Date,
		&att.Status,
		&att.MarkedBy,
		&att.Notes,
		&att.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// Create inserts an attendance record. The (student_id, date) pair is
// unique; a second mark for the same day fails with a conflict instead
// of silently overwriting.
func (r *AttendanceRepository) Create(ctx context.Context, att *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, date, status, marked_by, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		att.StudentID, att.Date, att.Status, att.MarkedBy, att.Notes,
	).Scan(&att.ID, &att.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "attendance_student_id_date_key") {
			return apperrors.ErrAttendanceAlreadyMarked
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	att, err := scanAttendance(r.db.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	return att, nil
}

// GetAll retrieves attendance records matching the filter
func (r *AttendanceRepository) GetAll(ctx context.Context, filter dto.AttendanceListFilter) ([]*models.Attendance, int64, error) {
	where := ` FROM attendance WHERE 1=1`
	args := []interface{}{}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		where += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		where += fmt.Sprintf(" AND date = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting attendance records: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
	args = append(args, limit, offset)
	query := `SELECT ` + attendanceColumns + where +
		fmt.Sprintf(" ORDER BY date DESC, student_id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Update changes the status and notes of an existing record
func (r *AttendanceRepository) Update(ctx context.Context, att *models.Attendance) error {
	query := `
		UPDATE attendance
		SET status = $1, notes = $2, marked_by = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, att.Status, att.Notes, att.MarkedBy, att.ID)
	if err != nil {
		return fmt.Errorf("error updating attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// SummaryByStudent aggregates a student's attendance over a date range
func (r *AttendanceRepository) SummaryByStudent(ctx context.Context, studentID int64, from, to time.Time) (*dto.AttendanceSummaryResponse, error) {
	summary := &dto.AttendanceSummaryResponse{StudentID: studentID}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2),
		       COUNT(*) FILTER (WHERE status = $3)
		FROM attendance
		WHERE student_id = $4 AND date >= $5 AND date <= $6
	`, models.AttendancePresent, models.AttendanceAbsent,
		models.AttendanceLeave, studentID, from, to,
	).Scan(&summary.TotalDays, &summary.Present, &summary.Absent, &summary.Leave)
	if err != nil {
		return nil, fmt.Errorf("error aggregating attendance: %w", err)
	}

	if summary.TotalDays > 0 {
		summary.Percentage = float64(summary.Present) / float64(summary.TotalDays) * 100
	}

	return summary, nil
}

// CountByStatusOnDate counts records with a given status on one day
func (r *AttendanceRepository) CountByStatusOnDate(ctx context.Context, status models.AttendanceStatus, date time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE status = $1 AND date = $2`,
		status, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting attendance: %w", err)
	}
	return count, nil
}
