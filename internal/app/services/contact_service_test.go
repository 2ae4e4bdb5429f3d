package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

type mockContactRepo struct {
	messages map[int64]*models.ContactMessage
	nextID   int64
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{messages: map[int64]*models.ContactMessage{}, nextID: 1}
}

func (m *mockContactRepo) Create(_ context.Context, msg *models.ContactMessage) error {
	msg.ID = m.nextID
	m.nextID++
	cp := *msg
	m.messages[msg.ID] = &cp
	return nil
}

func (m *mockContactRepo) GetByID(_ context.Context, id int64) (*models.ContactMessage, error) {
	msg, ok := m.messages[id]
	if !ok {
		return nil, apperrors.ErrContactMessageNotFound
	}
	cp := *msg
	return &cp, nil
}

func (m *mockContactRepo) GetAll(_ context.Context, filter dto.ContactListFilter) ([]*models.ContactMessage, int64, error) {
	var out []*models.ContactMessage
	for id := int64(1); id < m.nextID; id++ {
		msg, ok := m.messages[id]
		if !ok {
			continue
		}
		if filter.IsResolved != nil && msg.IsResolved != *filter.IsResolved {
			continue
		}
		cp := *msg
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (m *mockContactRepo) MarkResolved(_ context.Context, id int64) error {
	msg, ok := m.messages[id]
	if !ok {
		return apperrors.ErrContactMessageNotFound
	}
	msg.IsResolved = true
	return nil
}

func submitTestMessage(t *testing.T, svc *ContactService) *dto.ContactMessageResponse {
	t.Helper()
	resp, err := svc.SubmitMessage(context.Background(), &dto.CreateContactMessageRequest{
		Name:    "Riya Sharma",
		Email:   "riya@example.com",
		Role:    "parent",
		Message: "When are visiting hours?",
	})
	require.NoError(t, err)
	return resp
}

func TestSubmitMessage(t *testing.T) {
	svc := NewContactService(newMockContactRepo())

	resp := submitTestMessage(t, svc)
	assert.Equal(t, "parent", resp.Role)
	assert.False(t, resp.IsResolved)
}

func TestListContactMessages(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo)

	first := submitTestMessage(t, svc)
	submitTestMessage(t, svc)

	_, err := svc.ResolveMessage(context.Background(), adminActor, first.ID)
	require.NoError(t, err)

	all, total, err := svc.ListMessages(context.Background(), adminActor, dto.ContactListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(2), total)

	unresolved := false
	open, _, err := svc.ListMessages(context.Background(), adminActor, dto.ContactListFilter{IsResolved: &unresolved})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.NotEqual(t, first.ID, open[0].ID)
}

func TestListContactMessages_Denied(t *testing.T) {
	svc := NewContactService(newMockContactRepo())

	_, _, err := svc.ListMessages(context.Background(), studentActor, dto.ContactListFilter{})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestResolveContactMessage(t *testing.T) {
	svc := NewContactService(newMockContactRepo())

	msg := submitTestMessage(t, svc)

	resp, err := svc.ResolveMessage(context.Background(), adminActor, msg.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsResolved)
}

func TestResolveContactMessage_Denied(t *testing.T) {
	svc := NewContactService(newMockContactRepo())

	msg := submitTestMessage(t, svc)

	_, err := svc.ResolveMessage(context.Background(), wardenActor, msg.ID)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestResolveContactMessage_Unknown(t *testing.T) {
	svc := NewContactService(newMockContactRepo())

	_, err := svc.ResolveMessage(context.Background(), adminActor, 404)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
