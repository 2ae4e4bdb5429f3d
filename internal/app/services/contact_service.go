package services

import (
	"context"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/policy"
)

type contactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	GetByID(ctx context.Context, id int64) (*models.ContactMessage, error)
	GetAll(ctx context.Context, filter dto.ContactListFilter) ([]*models.ContactMessage, int64, error)
	MarkResolved(ctx context.Context, id int64) error
}

// ContactService handles the public contact form inbox
type ContactService struct {
	contactRepo contactRepository
}

// NewContactService creates a new contact message service
func NewContactService(contactRepo contactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// SubmitMessage stores an inbound message from the public contact form.
// No actor: the endpoint is unauthenticated and the claimed role is kept
// as plain text.
func (s *ContactService) SubmitMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	resp := dto.FromContactMessage(msg)
	return &resp, nil
}

// ListMessages lists contact messages for the admin inbox
func (s *ContactService) ListMessages(ctx context.Context, actor policy.Actor, filter dto.ContactListFilter) ([]dto.ContactMessageResponse, int64, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceContactMessage); err != nil {
		return nil, 0, err
	}

	messages, total, err := s.contactRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return dto.FromContactMessages(messages), total, nil
}

// ResolveMessage flags a contact message as handled
func (s *ContactService) ResolveMessage(ctx context.Context, actor policy.Actor, id int64) (*dto.ContactMessageResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceContactMessage); err != nil {
		return nil, err
	}

	if err := s.contactRepo.MarkResolved(ctx, id); err != nil {
		return nil, err
	}

	msg, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromContactMessage(msg)
	return &resp, nil
}
