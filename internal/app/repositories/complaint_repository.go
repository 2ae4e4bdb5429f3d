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

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db *pgxpool.Pool
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
	}
}

const complaintColumns = `id, student_id, title, description, category, priority, status, resolved_by, resolution_notes, created_at, updated_at`

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var complaint models.Complaint
	err := row.Scan(
		&complaint.ID,
		&complaint.StudentID,
		&complaint.Title,
		&complaint.Description,
		&complaint.Category,
		&complaint.Priority,
		&complaint.Status,
		&complaint.ResolvedBy,
		&complaint.ResolutionNotes,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// Create files a new complaint
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (student_id, title, description, category, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		complaint.StudentID, complaint.Title, complaint.Description,
		complaint.Category, complaint.Priority, complaint.Status,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// GetByID retrieves a complaint by ID
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	complaint, err := scanComplaint(r.db.QueryRow(ctx,
		`SELECT `+complaintColumns+` FROM complaints WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error retrieving complaint: %w", err)
	}

	return complaint, nil
}

// GetAll retrieves complaints matching the filter
func (r *ComplaintRepository) GetAll(ctx context.Context, filter dto.ComplaintListFilter) ([]*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE 1=1`
	args := []interface{}{}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

// Update persists a complaint's lifecycle fields
func (r *ComplaintRepository) Update(ctx context.Context, complaint *models.Complaint) error {
	query := `
		UPDATE complaints
		SET status = $1, resolved_by = $2, resolution_notes = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		complaint.Status, complaint.ResolvedBy, complaint.ResolutionNotes, complaint.ID)
	if err != nil {
		return fmt.Errorf("error updating complaint: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	return nil
}

// CountOpen counts complaints that are not resolved yet
func (r *ComplaintRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM complaints WHERE status <> $1`,
		models.ComplaintResolved).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting complaints: %w", err)
	}
	return count, nil
}

// CountOpenByStudent counts one student's unresolved complaints
func (r *ComplaintRepository) CountOpenByStudent(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM complaints WHERE student_id = $1 AND status <> $2`,
		studentID, models.ComplaintResolved).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting complaints: %w", err)
	}
	return count, nil
}
