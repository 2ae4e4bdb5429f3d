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

type mockComplaintRepo struct {
	complaints map[int64]*models.Complaint
	nextID     int64
}

func newMockComplaintRepo() *mockComplaintRepo {
	return &mockComplaintRepo{complaints: make(map[int64]*models.Complaint), nextID: 1}
}

func (m *mockComplaintRepo) Create(_ context.Context, complaint *models.Complaint) error {
	complaint.ID = m.nextID
	m.nextID++
	cp := *complaint
	m.complaints[complaint.ID] = &cp
	return nil
}

func (m *mockComplaintRepo) GetByID(_ context.Context, id int64) (*models.Complaint, error) {
	if c, ok := m.complaints[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperrors.ErrComplaintNotFound
}

func (m *mockComplaintRepo) GetAll(_ context.Context, filter dto.ComplaintListFilter) ([]*models.Complaint, error) {
	var out []*models.Complaint
	for id := int64(1); id < m.nextID; id++ {
		c, ok := m.complaints[id]
		if !ok {
			continue
		}
		if filter.StudentID != nil && c.StudentID != *filter.StudentID {
			continue
		}
		if filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockComplaintRepo) Update(_ context.Context, complaint *models.Complaint) error {
	if _, ok := m.complaints[complaint.ID]; !ok {
		return apperrors.ErrComplaintNotFound
	}
	cp := *complaint
	m.complaints[complaint.ID] = &cp
	return nil
}

func fileTestComplaint(t *testing.T, svc *ComplaintService) *dto.ComplaintResponse {
	t.Helper()
	resp, err := svc.FileComplaint(context.Background(), studentActor, &dto.CreateComplaintRequest{
		Title:       "Leaking tap",
		Description: "The tap in room A102 leaks all night",
		Category:    models.CategoryPlumbing,
	})
	require.NoError(t, err)
	return resp
}

func TestFileComplaint(t *testing.T) {
	svc := NewComplaintService(newMockComplaintRepo())

	resp := fileTestComplaint(t, svc)
	assert.Equal(t, studentActor.StudentID, resp.StudentID)
	assert.Equal(t, models.ComplaintPending, resp.Status)
	assert.Equal(t, models.PriorityMedium, resp.Priority)
}

func TestFileComplaint_StudentIDPinned(t *testing.T) {
	svc := NewComplaintService(newMockComplaintRepo())

	// The client-supplied studentId is ignored for student callers
	resp, err := svc.FileComplaint(context.Background(), studentActor, &dto.CreateComplaintRequest{
		StudentID:   99,
		Title:       "Broken light",
		Description: "Corridor light is out",
		Category:    models.CategoryElectrical,
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, studentActor.StudentID, resp.StudentID)
	assert.Equal(t, models.PriorityHigh, resp.Priority)
}

func TestFileComplaint_StaffDenied(t *testing.T) {
	svc := NewComplaintService(newMockComplaintRepo())

	req := &dto.CreateComplaintRequest{
		StudentID: 10, Title: "t", Description: "d", Category: models.CategoryOther,
	}
	_, err := svc.FileComplaint(context.Background(), adminActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	_, err = svc.FileComplaint(context.Background(), wardenActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestFileComplaint_InvalidCategory(t *testing.T) {
	svc := NewComplaintService(newMockComplaintRepo())

	_, err := svc.FileComplaint(context.Background(), studentActor, &dto.CreateComplaintRequest{
		Title: "t", Description: "d", Category: "wifi",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestGetComplaint_OwnershipScoping(t *testing.T) {
	repo := newMockComplaintRepo()
	svc := NewComplaintService(repo)

	resp := fileTestComplaint(t, svc)

	// A different student reads it as not found
	foreign := studentActor
	foreign.StudentID = 11
	_, err := svc.GetComplaint(context.Background(), foreign, resp.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	// Staff and the owner read it fine
	_, err = svc.GetComplaint(context.Background(), wardenActor, resp.ID)
	assert.NoError(t, err)
	_, err = svc.GetComplaint(context.Background(), studentActor, resp.ID)
	assert.NoError(t, err)
}

func TestComplaintWorkflow(t *testing.T) {
	repo := newMockComplaintRepo()
	svc := NewComplaintService(repo)

	filed := fileTestComplaint(t, svc)

	started, err := svc.StartComplaint(context.Background(), wardenActor, filed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintInProgress, started.Status)

	resolved, err := svc.ResolveComplaint(context.Background(), wardenActor, filed.ID, &dto.ResolveComplaintRequest{
		ResolutionNotes: "tap washer replaced",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, wardenActor.UserID, *resolved.ResolvedBy)

	// Forward-only: neither transition can run again
	_, err = svc.StartComplaint(context.Background(), wardenActor, filed.ID)
	assert.True(t, errors.Is(err, apperrors.ErrComplaintAlreadyResolved))
	_, err = svc.ResolveComplaint(context.Background(), wardenActor, filed.ID, &dto.ResolveComplaintRequest{
		ResolutionNotes: "again",
	})
	assert.True(t, errors.Is(err, apperrors.ErrComplaintAlreadyResolved))
}

func TestResolveComplaint_StudentDenied(t *testing.T) {
	svc := NewComplaintService(newMockComplaintRepo())

	filed := fileTestComplaint(t, svc)

	_, err := svc.ResolveComplaint(context.Background(), studentActor, filed.ID, &dto.ResolveComplaintRequest{
		ResolutionNotes: "self-resolved",
	})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestListComplaints_StudentScopePinned(t *testing.T) {
	repo := newMockComplaintRepo()
	svc := NewComplaintService(repo)

	fileTestComplaint(t, svc)
	_ = repo.Create(context.Background(), &models.Complaint{
		StudentID: 11, Title: "t", Description: "d",
		Category: models.CategoryOther, Priority: models.PriorityLow,
		Status: models.ComplaintPending,
	})

	other := int64(11)
	resps, err := svc.ListComplaints(context.Background(), studentActor, dto.ComplaintListFilter{StudentID: &other})
	require.NoError(t, err)
	require.Len(t, resps, 1)
	assert.Equal(t, studentActor.StudentID, resps[0].StudentID)
}
