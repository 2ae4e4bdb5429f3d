package services

import (
	"context"
	"time"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/policy"
)

type visitorRepository interface {
	Create(ctx context.Context, visitor *models.Visitor) error
	GetAll(ctx context.Context, filter dto.VisitorListFilter) ([]*models.Visitor, int64, error)
	CheckOut(ctx context.Context, id int64) (*models.Visitor, error)
	Delete(ctx context.Context, id int64) error
}

// VisitorService handles the visitor log
type VisitorService struct {
	visitorRepo visitorRepository
	now         func() time.Time
}

// NewVisitorService creates a new visitor service
func NewVisitorService(visitorRepo visitorRepository) *VisitorService {
	return &VisitorService{
		visitorRepo: visitorRepo,
		now:         time.Now,
	}
}

// CheckIn registers a visitor arriving for a student. The approving staff
// member is the acting user.
func (s *VisitorService) CheckIn(ctx context.Context, actor policy.Actor, req *dto.CreateVisitorRequest) (*dto.VisitorResponse, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourceVisitor); err != nil {
		return nil, err
	}

	approvedBy := actor.UserID
	visitor := &models.Visitor{
		StudentID:   req.StudentID,
		VisitorName: req.VisitorName,
		Purpose:     req.Purpose,
		Contact:     req.Contact,
		InTime:      s.now(),
		ApprovedBy:  &approvedBy,
	}

	if err := s.visitorRepo.Create(ctx, visitor); err != nil {
		return nil, err
	}

	resp := dto.FromVisitor(visitor)
	return &resp, nil
}

// ListVisitors lists visitor entries. Student callers only see visitors
// logged against themselves.
func (s *VisitorService) ListVisitors(ctx context.Context, actor policy.Actor, filter dto.VisitorListFilter) ([]dto.VisitorResponse, int64, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceVisitor); err != nil {
		return nil, 0, err
	}

	if ownID, restricted := policy.Scope(actor); restricted {
		filter.StudentID = &ownID
	}

	visitors, total, err := s.visitorRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return dto.FromVisitors(visitors), total, nil
}

// CheckOut stamps the visitor's departure. A visit that is already closed
// is a conflict and keeps its original out time.
func (s *VisitorService) CheckOut(ctx context.Context, actor policy.Actor, id int64) (*dto.VisitorResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceVisitor); err != nil {
		return nil, err
	}

	visitor, err := s.visitorRepo.CheckOut(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromVisitor(visitor)
	return &resp, nil
}

// DeleteVisitor removes a visitor entry
func (s *VisitorService) DeleteVisitor(ctx context.Context, actor policy.Actor, id int64) error {
	if err := policy.Authorize(actor, policy.OpDelete, policy.ResourceVisitor); err != nil {
		return err
	}

	return s.visitorRepo.Delete(ctx, id)
}
