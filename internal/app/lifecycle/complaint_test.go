package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

func TestStartComplaint(t *testing.T) {
	c := &models.Complaint{Status: models.ComplaintPending}

	require.NoError(t, StartComplaint(c))
	assert.Equal(t, models.ComplaintInProgress, c.Status)

	// Starting twice is a conflict, not a silent no-op
	err := StartComplaint(c)
	assert.True(t, errors.Is(err, apperrors.ErrStateConflict))
	assert.Equal(t, models.ComplaintInProgress, c.Status)
}

func TestStartComplaint_Resolved(t *testing.T) {
	c := &models.Complaint{Status: models.ComplaintResolved}

	err := StartComplaint(c)
	assert.True(t, errors.Is(err, apperrors.ErrComplaintAlreadyResolved))
	assert.Equal(t, models.ComplaintResolved, c.Status)
}

func TestResolveComplaint(t *testing.T) {
	for _, from := range []models.ComplaintStatus{models.ComplaintPending, models.ComplaintInProgress} {
		c := &models.Complaint{Status: from}

		err := ResolveComplaint(c, "fixed the leaking tap", 42)
		require.NoError(t, err)

		assert.Equal(t, models.ComplaintResolved, c.Status)
		require.NotNil(t, c.ResolutionNotes)
		assert.Equal(t, "fixed the leaking tap", *c.ResolutionNotes)
		require.NotNil(t, c.ResolvedBy)
		assert.Equal(t, int64(42), *c.ResolvedBy)
	}
}

func TestResolveComplaint_AlreadyResolved(t *testing.T) {
	notes := "done"
	resolver := int64(1)
	c := &models.Complaint{
		Status:          models.ComplaintResolved,
		ResolutionNotes: &notes,
		ResolvedBy:      &resolver,
	}

	err := ResolveComplaint(c, "done again", 2)
	assert.True(t, errors.Is(err, apperrors.ErrComplaintAlreadyResolved))

	// First resolution is preserved
	assert.Equal(t, "done", *c.ResolutionNotes)
	assert.Equal(t, int64(1), *c.ResolvedBy)
}

func TestResolveComplaint_EmptyNotes(t *testing.T) {
	c := &models.Complaint{Status: models.ComplaintInProgress}

	err := ResolveComplaint(c, "   ", 42)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, models.ComplaintInProgress, c.Status)
	assert.Nil(t, c.ResolutionNotes)
}
