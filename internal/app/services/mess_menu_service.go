package services

import (
	"context"
	"time"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/policy"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

type messMenuRepository interface {
	Create(ctx context.Context, menu *models.MessMenu) error
	GetByID(ctx context.Context, id int64) (*models.MessMenu, error)
	GetByDate(ctx context.Context, date time.Time) (*models.MessMenu, error)
	GetRange(ctx context.Context, from, to time.Time) ([]*models.MessMenu, error)
	Update(ctx context.Context, menu *models.MessMenu) error
	Delete(ctx context.Context, id int64) error
}

// MessMenuService handles the daily mess menus
type MessMenuService struct {
	menuRepo messMenuRepository
	now      func() time.Time
}

// NewMessMenuService creates a new mess menu service
func NewMessMenuService(menuRepo messMenuRepository) *MessMenuService {
	return &MessMenuService{
		menuRepo: menuRepo,
		now:      time.Now,
	}
}

// CreateMenu creates the menu for a date; the date is unique
func (s *MessMenuService) CreateMenu(ctx context.Context, actor policy.Actor, req *dto.CreateMessMenuRequest) (*dto.MessMenuResponse, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourceMessMenu); err != nil {
		return nil, err
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date, expected YYYY-MM-DD")
	}

	menu := &models.MessMenu{
		Date:      date,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Snacks:    req.Snacks,
		Dinner:    req.Dinner,
	}

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, err
	}

	resp := dto.FromMessMenu(menu)
	return &resp, nil
}

// GetMenu retrieves a menu by id
func (s *MessMenuService) GetMenu(ctx context.Context, actor policy.Actor, id int64) (*dto.MessMenuResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceMessMenu); err != nil {
		return nil, err
	}

	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromMessMenu(menu)
	return &resp, nil
}

// GetTodayMenu retrieves the menu for the current day
func (s *MessMenuService) GetTodayMenu(ctx context.Context, actor policy.Actor) (*dto.MessMenuResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceMessMenu); err != nil {
		return nil, err
	}

	menu, err := s.menuRepo.GetByDate(ctx, helpers.TruncateToDay(s.now()))
	if err != nil {
		return nil, err
	}

	resp := dto.FromMessMenu(menu)
	return &resp, nil
}

// ListMenus lists menus for a date range; defaults to the current week
func (s *MessMenuService) ListMenus(ctx context.Context, actor policy.Actor, from, to *time.Time) ([]dto.MessMenuResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceMessMenu); err != nil {
		return nil, err
	}

	start := helpers.TruncateToDay(s.now())
	end := start.AddDate(0, 0, 6)
	if from != nil {
		start = helpers.TruncateToDay(*from)
	}
	if to != nil {
		end = helpers.TruncateToDay(*to)
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("from must not be after to")
	}

	menus, err := s.menuRepo.GetRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return dto.FromMessMenus(menus), nil
}

// UpdateMenu replaces the meal slots of an existing menu
func (s *MessMenuService) UpdateMenu(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateMessMenuRequest) (*dto.MessMenuResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceMessMenu); err != nil {
		return nil, err
	}

	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Breakfast != nil {
		menu.Breakfast = *req.Breakfast
	}
	if req.Lunch != nil {
		menu.Lunch = *req.Lunch
	}
	if req.Snacks != nil {
		menu.Snacks = req.Snacks
	}
	if req.Dinner != nil {
		menu.Dinner = *req.Dinner
	}

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		return nil, err
	}

	resp := dto.FromMessMenu(menu)
	return &resp, nil
}

// DeleteMenu removes a menu
func (s *MessMenuService) DeleteMenu(ctx context.Context, actor policy.Actor, id int64) error {
	if err := policy.Authorize(actor, policy.OpDelete, policy.ResourceMessMenu); err != nil {
		return err
	}

	return s.menuRepo.Delete(ctx, id)
}
