package services

import (
	"context"
	"time"

	"github.com/okan/hostelhub/internal/app/lifecycle"
	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/policy"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

type feeRepository interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAll(ctx context.Context, filter dto.FeeListFilter) ([]*models.Fee, error)
	Update(ctx context.Context, fee *models.Fee) error
	Delete(ctx context.Context, id int64) error
}

// FeeService handles fee records and the payment state machine. Overdue is
// never stored; it is derived against the clock on every read.
type FeeService struct {
	feeRepo feeRepository
	now     func() time.Time
}

// NewFeeService creates a new fee service
func NewFeeService(feeRepo feeRepository) *FeeService {
	return &FeeService{
		feeRepo: feeRepo,
		now:     time.Now,
	}
}

// CreateFee creates a fee record for a student
func (s *FeeService) CreateFee(ctx context.Context, actor policy.Actor, req *dto.CreateFeeRequest) (*dto.FeeResponse, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourceFee); err != nil {
		return nil, err
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid dueDate, expected YYYY-MM-DD")
	}

	fee := &models.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		DueDate:   dueDate,
		Status:    models.FeeStatusPending,
		Notes:     req.Notes,
	}

	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}

	resp := dto.FromFee(fee, s.now())
	return &resp, nil
}

// GetFee retrieves a fee record. Student callers can only read their own
// fees; others read as not found.
func (s *FeeService) GetFee(ctx context.Context, actor policy.Actor, id int64) (*dto.FeeResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceFee); err != nil {
		return nil, err
	}

	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.OwnsRecord(actor, fee.StudentID) {
		return nil, apperrors.ErrFeeNotFound
	}

	resp := dto.FromFee(fee, s.now())
	return &resp, nil
}

// ListFees lists fee records. Student callers are pinned to their own
// records; the status filter matches the derived status.
func (s *FeeService) ListFees(ctx context.Context, actor policy.Actor, filter dto.FeeListFilter) ([]dto.FeeResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceFee); err != nil {
		return nil, err
	}

	if ownID, restricted := policy.Scope(actor); restricted {
		filter.StudentID = &ownID
	}

	fees, err := s.feeRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	at := s.now()
	responses := dto.FromFees(fees, at)

	if filter.Status != "" {
		want := models.FeeStatus(filter.Status)
		filtered := make([]dto.FeeResponse, 0, len(responses))
		for _, resp := range responses {
			if resp.Status == want {
				filtered = append(filtered, resp)
			}
		}
		responses = filtered
	}

	return responses, nil
}

// UpdateFee updates a fee's amount, due date or notes. The status is only
// reachable through MarkFeePaid.
func (s *FeeService) UpdateFee(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateFeeRequest) (*dto.FeeResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceFee); err != nil {
		return nil, err
	}

	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		fee.Amount = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := helpers.ParseDate(*req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid dueDate, expected YYYY-MM-DD")
		}
		fee.DueDate = dueDate
	}
	if req.Notes != nil {
		fee.Notes = req.Notes
	}

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	resp := dto.FromFee(fee, s.now())
	return &resp, nil
}

// MarkFeePaid records a payment. Paid fees reject a second payment and the
// stored record stays untouched.
func (s *FeeService) MarkFeePaid(ctx context.Context, actor policy.Actor, id int64, req *dto.MarkFeePaidRequest) (*dto.FeeResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceFee); err != nil {
		return nil, err
	}

	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.MarkFeePaid(fee, req.PaymentMethod, s.now()); err != nil {
		return nil, err
	}

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	resp := dto.FromFee(fee, s.now())
	return &resp, nil
}

// DeleteFee removes a fee record
func (s *FeeService) DeleteFee(ctx context.Context, actor policy.Actor, id int64) error {
	if err := policy.Authorize(actor, policy.OpDelete, policy.ResourceFee); err != nil {
		return err
	}

	return s.feeRepo.Delete(ctx, id)
}
