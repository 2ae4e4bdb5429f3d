package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

type mockVisitorRepo struct {
	visitors map[int64]*models.Visitor
	nextID   int64
}

func newMockVisitorRepo() *mockVisitorRepo {
	return &mockVisitorRepo{visitors: make(map[int64]*models.Visitor), nextID: 1}
}

func (m *mockVisitorRepo) Create(_ context.Context, visitor *models.Visitor) error {
	visitor.ID = m.nextID
	m.nextID++
	cp := *visitor
	m.visitors[visitor.ID] = &cp
	return nil
}

func (m *mockVisitorRepo) GetAll(_ context.Context, filter dto.VisitorListFilter) ([]*models.Visitor, int64, error) {
	var out []*models.Visitor
	for id := int64(1); id < m.nextID; id++ {
		v, ok := m.visitors[id]
		if !ok {
			continue
		}
		if filter.StudentID != nil && v.StudentID != *filter.StudentID {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (m *mockVisitorRepo) CheckOut(_ context.Context, id int64) (*models.Visitor, error) {
	v, ok := m.visitors[id]
	if !ok {
		return nil, apperrors.ErrVisitorNotFound
	}
	if v.OutTime != nil {
		return nil, apperrors.ErrVisitorAlreadyLeft
	}
	now := time.Now()
	v.OutTime = &now
	cp := *v
	return &cp, nil
}

func (m *mockVisitorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.visitors[id]; !ok {
		return apperrors.ErrVisitorNotFound
	}
	delete(m.visitors, id)
	return nil
}

func TestCheckIn(t *testing.T) {
	repo := newMockVisitorRepo()
	svc := NewVisitorService(repo)
	checkInAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return checkInAt }

	resp, err := svc.CheckIn(context.Background(), wardenActor, &dto.CreateVisitorRequest{
		StudentID:   10,
		VisitorName: "R. Sharma",
		Purpose:     "family visit",
		Contact:     "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, checkInAt, resp.InTime)
	assert.Nil(t, resp.OutTime)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, wardenActor.UserID, *resp.ApprovedBy)
}

func TestCheckIn_Denied(t *testing.T) {
	svc := NewVisitorService(newMockVisitorRepo())

	req := &dto.CreateVisitorRequest{StudentID: 10, VisitorName: "x", Purpose: "y", Contact: "z"}
	_, err := svc.CheckIn(context.Background(), adminActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	_, err = svc.CheckIn(context.Background(), studentActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestCheckOut(t *testing.T) {
	repo := newMockVisitorRepo()
	svc := NewVisitorService(repo)

	created, err := svc.CheckIn(context.Background(), wardenActor, &dto.CreateVisitorRequest{
		StudentID: 10, VisitorName: "R. Sharma", Purpose: "family visit", Contact: "555-0100",
	})
	require.NoError(t, err)

	resp, err := svc.CheckOut(context.Background(), wardenActor, created.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.OutTime)
	firstOut := *resp.OutTime

	// Second check-out is a conflict; the original out time survives
	_, err = svc.CheckOut(context.Background(), wardenActor, created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrStateConflict))
	assert.Equal(t, firstOut, *repo.visitors[created.ID].OutTime)
}

func TestCheckOut_NotFound(t *testing.T) {
	svc := NewVisitorService(newMockVisitorRepo())

	_, err := svc.CheckOut(context.Background(), wardenActor, 99)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestListVisitors_StudentScopePinned(t *testing.T) {
	repo := newMockVisitorRepo()
	svc := NewVisitorService(repo)

	_, err := svc.CheckIn(context.Background(), wardenActor, &dto.CreateVisitorRequest{
		StudentID: 10, VisitorName: "a", Purpose: "p", Contact: "c",
	})
	require.NoError(t, err)
	_, err = svc.CheckIn(context.Background(), wardenActor, &dto.CreateVisitorRequest{
		StudentID: 11, VisitorName: "b", Purpose: "p", Contact: "c",
	})
	require.NoError(t, err)

	other := int64(11)
	resps, total, err := svc.ListVisitors(context.Background(), studentActor, dto.VisitorListFilter{StudentID: &other})
	require.NoError(t, err)
	require.Len(t, resps, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(10), resps[0].StudentID)
}
