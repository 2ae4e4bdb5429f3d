package lifecycle

import (
	"strings"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

// StartComplaint moves a pending complaint to in_progress. Any other source
// state is a state conflict: resolved is terminal, in_progress is a no-op
// the caller must not silently repeat.
func StartComplaint(c *models.Complaint) error {
	switch c.Status {
	case models.ComplaintPending:
		c.Status = models.ComplaintInProgress
		return nil
	case models.ComplaintResolved:
		return apperrors.ErrComplaintAlreadyResolved
	default:
		return apperrors.NewCustomError(apperrors.ErrStateConflict, "complaint already in progress")
	}
}

// ResolveComplaint moves a complaint to resolved from pending or
// in_progress, storing the resolution notes and resolver. Empty notes are a
// validation failure that leaves the status unchanged; resolving an already
// resolved complaint is a state conflict.
func ResolveComplaint(c *models.Complaint, notes string, resolvedBy int64) error {
	if strings.TrimSpace(notes) == "" {
		return apperrors.NewValidationError("resolution notes are required")
	}
	if c.Status == models.ComplaintResolved {
		return apperrors.ErrComplaintAlreadyResolved
	}

	c.Status = models.ComplaintResolved
	c.ResolutionNotes = &notes
	c.ResolvedBy = &resolvedBy
	return nil
}
