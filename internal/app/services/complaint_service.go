package services

import (
	"context"

	"github.com/okan/hostelhub/internal/app/lifecycle"
	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/policy"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

type complaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	GetAll(ctx context.Context, filter dto.ComplaintListFilter) ([]*models.Complaint, error)
	Update(ctx context.Context, complaint *models.Complaint) error
}

// ComplaintService handles complaint filing and the resolution workflow
type ComplaintService struct {
	complaintRepo complaintRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo complaintRepository) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
	}
}

// FileComplaint creates a complaint. Students always file against their own
// profile; staff may file on behalf of a student via StudentID.
func (s *ComplaintService) FileComplaint(ctx context.Context, actor policy.Actor, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourceComplaint); err != nil {
		return nil, err
	}

	studentID := req.StudentID
	if ownID, restricted := policy.Scope(actor); restricted {
		studentID = ownID
	}
	if studentID == 0 {
		return nil, apperrors.NewValidationError("studentId is required")
	}

	if !req.Category.Valid() {
		return nil, apperrors.NewValidationError("invalid complaint category")
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.NewValidationError("invalid complaint priority")
	}

	complaint := &models.Complaint{
		StudentID:   studentID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      models.ComplaintPending,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	resp := dto.FromComplaint(complaint)
	return &resp, nil
}

// GetComplaint retrieves a complaint. Students only see their own; foreign
// ids read as not found.
func (s *ComplaintService) GetComplaint(ctx context.Context, actor policy.Actor, id int64) (*dto.ComplaintResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceComplaint); err != nil {
		return nil, err
	}

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.OwnsRecord(actor, complaint.StudentID) {
		return nil, apperrors.ErrComplaintNotFound
	}

	resp := dto.FromComplaint(complaint)
	return &resp, nil
}

// ListComplaints lists complaints, scoped to the caller's own records for
// students.
func (s *ComplaintService) ListComplaints(ctx context.Context, actor policy.Actor, filter dto.ComplaintListFilter) ([]dto.ComplaintResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceComplaint); err != nil {
		return nil, err
	}

	if ownID, restricted := policy.Scope(actor); restricted {
		filter.StudentID = &ownID
	}

	complaints, err := s.complaintRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromComplaints(complaints), nil
}

// StartComplaint moves a pending complaint into progress
func (s *ComplaintService) StartComplaint(ctx context.Context, actor policy.Actor, id int64) (*dto.ComplaintResponse, error) {
	if err := policy.Authorize(actor, policy.OpResolve, policy.ResourceComplaint); err != nil {
		return nil, err
	}

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.StartComplaint(complaint); err != nil {
		return nil, err
	}

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	resp := dto.FromComplaint(complaint)
	return &resp, nil
}

// ResolveComplaint closes a complaint with mandatory resolution notes
func (s *ComplaintService) ResolveComplaint(ctx context.Context, actor policy.Actor, id int64, req *dto.ResolveComplaintRequest) (*dto.ComplaintResponse, error) {
	if err := policy.Authorize(actor, policy.OpResolve, policy.ResourceComplaint); err != nil {
		return nil, err
	}

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.ResolveComplaint(complaint, req.ResolutionNotes, actor.UserID); err != nil {
		return nil, err
	}

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	resp := dto.FromComplaint(complaint)
	return &resp, nil
}
