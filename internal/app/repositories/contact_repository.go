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
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

// ContactRepository handles database operations for contact messages
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact message repository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

const contactColumns = `id, name, email, role, message, is_resolved, created_at`

func scanContactMessage(row pgx.Row) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := row.Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Role,
		&msg.Message,
		&msg.IsResolved,
		&msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Create stores an inbound contact message
func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, role, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Role, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating contact message: %w", err)
	}

	return nil
}

// GetByID retrieves a contact message by ID
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	msg, err := scanContactMessage(r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactMessageNotFound
		}
		return nil, fmt.Errorf("error retrieving contact message: %w", err)
	}

	return msg, nil
}

// GetAll retrieves contact messages matching the filter
func (r *ContactRepository) GetAll(ctx context.Context, filter dto.ContactListFilter) ([]*models.ContactMessage, int64, error) {
	where := ` FROM contact_messages WHERE 1=1`
	args := []interface{}{}

	if filter.IsResolved != nil {
		args = append(args, *filter.IsResolved)
		where += fmt.Sprintf(" AND is_resolved = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting contact messages: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
	args = append(args, limit, offset)
	query := `SELECT ` + contactColumns + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// MarkResolved flags a contact message as handled
func (r *ContactRepository) MarkResolved(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE contact_messages SET is_resolved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error resolving contact message: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContactMessageNotFound
	}

	return nil
}
