package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/dberrors"
)

// MessMenuRepository handles database operations for daily mess menus
type MessMenuRepository struct {
	db *pgxpool.Pool
}

// NewMessMenuRepository creates a new mess menu repository
func NewMessMenuRepository(db *pgxpool.Pool) *MessMenuRepository {
	return &MessMenuRepository{
		db: db,
	}
}

const messMenuColumns = `id, date, breakfast, lunch, snacks, dinner, created_at, updated_at`

func scanMessMenu(row pgx.Row) (*models.MessMenu, error) {
	var menu models.MessMenu
	err := row.Scan(
		&menu.ID,
		&menu.Date,
		&menu.Breakfast,
		&menu.Lunch,
		&menu.Snacks,
		&menu.Dinner,
		&menu.CreatedAt,
		&menu.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// Create creates a menu for a date. One menu per day.
func (r *MessMenuRepository) Create(ctx context.Context, menu *models.MessMenu) error {
	query := `
		INSERT INTO mess_menus (date, breakfast, lunch, snacks, dinner)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		menu.Date, menu.Breakfast, menu.Lunch, menu.Snacks, menu.Dinner,
	).Scan(&menu.ID, &menu.CreatedAt, &menu.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mess_menus_date_key") {
			return apperrors.ErrMenuAlreadyExists
		}
		return fmt.Errorf("error creating mess menu: %w", err)
	}

	return nil
}

// GetByID retrieves a menu by ID
func (r *MessMenuRepository) GetByID(ctx context.Context, id int64) (*models.MessMenu, error) {
	menu, err := scanMessMenu(r.db.QueryRow(ctx,
		`SELECT `+messMenuColumns+` FROM mess_menus WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMenuNotFound
		}
		return nil, fmt.Errorf("error retrieving mess menu: %w", err)
	}

	return menu, nil
}

// GetByDate retrieves the menu for a specific day
func (r *MessMenuRepository) GetByDate(ctx context.Context, date time.Time) (*models.MessMenu, error) {
	menu, err := scanMessMenu(r.db.QueryRow(ctx,
		`SELECT `+messMenuColumns+` FROM mess_menus WHERE date = $1`, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMenuNotFound
		}
		return nil, fmt.Errorf("error retrieving mess menu: %w", err)
	}

	return menu, nil
}

// GetRange retrieves menus between two dates inclusive
func (r *MessMenuRepository) GetRange(ctx context.Context, from, to time.Time) ([]*models.MessMenu, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+messMenuColumns+` FROM mess_menus WHERE date >= $1 AND date <= $2 ORDER BY date`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*models.MessMenu
	for rows.Next() {
		menu, err := scanMessMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}

// Update replaces the meals of an existing menu
func (r *MessMenuRepository) Update(ctx context.Context, menu *models.MessMenu) error {
	query := `
		UPDATE mess_menus
		SET breakfast = $1, lunch = $2, snacks = $3, dinner = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		menu.Breakfast, menu.Lunch, menu.Snacks, menu.Dinner, menu.ID)
	if err != nil {
		return fmt.Errorf("error updating mess menu: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMenuNotFound
	}

	return nil
}

// Delete removes a menu by ID
func (r *MessMenuRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM mess_menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting mess menu: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMenuNotFound
	}

	return nil
}
