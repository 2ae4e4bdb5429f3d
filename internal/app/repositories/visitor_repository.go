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
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

// VisitorRepository handles database operations for visitor log entries
type VisitorRepository struct {
	db *pgxpool.Pool
}

// NewVisitorRepository creates a new visitor repository
func NewVisitorRepository(db *pgxpool.Pool) *VisitorRepository {
	return &VisitorRepository{
		db: db,
	}
}

const visitorColumns = `id, student_id, visitor_name, purpose, contact, in_time, out_time, approved_by, created_at`

func scanVisitor(row pgx.Row) (*models.Visitor, error) {
	var visitor models.Visitor
	err := row.Scan(
		&visitor.ID,
		&visitor.StudentID,
		&visitor.VisitorName,
		&visitor.Purpose,
		&visitor.Contact,
		&visitor.InTime,
		&visitor.OutTime,
		&visitor.ApprovedBy,
		&visitor.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// Create records a visitor check-in
func (r *VisitorRepository) Create(ctx context.Context, visitor *models.Visitor) error {
	query := `
		INSERT INTO visitors (student_id, visitor_name, purpose, contact, in_time, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		visitor.StudentID, visitor.VisitorName, visitor.Purpose,
		visitor.Contact, visitor.InTime, visitor.ApprovedBy,
	).Scan(&visitor.ID, &visitor.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating visitor entry: %w", err)
	}

	return nil
}

// GetByID retrieves a visitor entry by ID
func (r *VisitorRepository) GetByID(ctx context.Context, id int64) (*models.Visitor, error) {
	visitor, err := scanVisitor(r.db.QueryRow(ctx,
		`SELECT `+visitorColumns+` FROM visitors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVisitorNotFound
		}
		return nil, fmt.Errorf("error retrieving visitor entry: %w", err)
	}

	return visitor, nil
}

// GetAll retrieves a page of visitor entries matching the filter, along
// with the total match count.
func (r *VisitorRepository) GetAll(ctx context.Context, filter dto.VisitorListFilter) ([]*models.Visitor, int64, error) {
	where := ` FROM visitors WHERE 1=1`
	args := []interface{}{}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		where += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if filter.Today {
		where += " AND in_time::date = CURRENT_DATE"
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting visitor entries: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
	args = append(args, limit, offset)
	query := `SELECT ` + visitorColumns + where +
		fmt.Sprintf(" ORDER BY in_time DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var visitors []*models.Visitor
	for rows.Next() {
		visitor, err := scanVisitor(rows)
		if err != nil {
			return nil, 0, err
		}
		visitors = append(visitors, visitor)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return visitors, total, nil
}

// CheckOut stamps the departure time on an open visit. The guarded
// WHERE keeps an already-closed visit from being stamped twice.
func (r *VisitorRepository) CheckOut(ctx context.Context, id int64) (*models.Visitor, error) {
	visitor, err := scanVisitor(r.db.QueryRow(ctx, `
		UPDATE visitors SET out_time = NOW()
		WHERE id = $1 AND out_time IS NULL
		RETURNING `+visitorColumns,
		id))
	if err == nil {
		return visitor, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error checking out visitor: %w", err)
	}

	// Zero rows means either the entry is missing or the visit is
	// already closed; distinguish for the error taxonomy.
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM visitors WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("error checking visitor entry: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrVisitorNotFound
	}
	return nil, apperrors.ErrVisitorAlreadyLeft
}

// Delete removes a visitor entry
func (r *VisitorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM visitors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting visitor entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrVisitorNotFound
	}

	return nil
}

// CountToday counts visitors who checked in today
func (r *VisitorRepository) CountToday(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM visitors WHERE in_time::date = CURRENT_DATE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting visitors: %w", err)
	}
	return count, nil
}
