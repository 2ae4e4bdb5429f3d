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

// FeeRepository handles database operations for fee records
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

const feeColumns = `id, student_id, amount, due_date, status, paid_date, payment_method, notes, created_at, updated_at`

func scanFee(row pgx.Row) (*models.Fee, error) {
	var fee models.Fee
	err := row.Scan(
		&fee.ID,
		&fee.StudentID,
		&fee.Amount,
		&fee.DueDate,
		&fee.Status,
		&fee.PaidDate,
		&fee.PaymentMethod,
		&fee.Notes,
		&fee.CreatedAt,
		&fee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// Create creates a new fee record
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, amount, due_date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		fee.StudentID, fee.Amount, fee.DueDate, fee.Status, fee.Notes,
	).Scan(&fee.ID, &fee.CreatedAt, &fee.UpdatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating fee: %w", err)
	}

	return nil
}

// GetByID retrieves a fee record by ID
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	fee, err := scanFee(r.db.QueryRow(ctx,
		`SELECT `+feeColumns+` FROM fees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return fee, nil
}

// GetAll retrieves fee records matching the filter. Status filtering on
// the derived overdue state happens in the service layer; this only
// filters by stored columns.
func (r *FeeRepository) GetAll(ctx context.Context, filter dto.FeeListFilter) ([]*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE 1=1`
	args := []interface{}{}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}

	query += " ORDER BY due_date DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// Update persists a fee record's mutable fields including payment state
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	query := `
		UPDATE fees
		SET amount = $1, due_date = $2, status = $3, paid_date = $4,
		    payment_method = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		fee.Amount, fee.DueDate, fee.Status, fee.PaidDate,
		fee.PaymentMethod, fee.Notes, fee.ID)
	if err != nil {
		return fmt.Errorf("error updating fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// Delete deletes a fee record by ID
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// PendingStats returns the count and total amount of unpaid fee records
func (r *FeeRepository) PendingStats(ctx context.Context) (count int64, total float64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM fees WHERE status = $1
	`, models.FeeStatusPending).Scan(&count, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("error aggregating pending fees: %w", err)
	}
	return count, total, nil
}

// SumOutstandingByStudent returns the total unpaid amount for one student
func (r *FeeRepository) SumOutstandingByStudent(ctx context.Context, studentID int64) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM fees WHERE student_id = $1 AND status = $2
	`, studentID, models.FeeStatusPending).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error aggregating student fees: %w", err)
	}
	return total, nil
}
