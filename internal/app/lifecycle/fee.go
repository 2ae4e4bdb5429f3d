// Package lifecycle holds the fee and complaint state machines. The
// transition functions here are the single point of truth: services and
// repositories never flip status fields directly.
package lifecycle

import (
	"strings"
	"time"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

// EffectiveFeeStatus derives the visible fee status at an evaluation date.
// A stored pending fee becomes overdue once the evaluation date passes the
// due date; paid is terminal. Pure in (status, dueDate, at).
func EffectiveFeeStatus(status models.FeeStatus, dueDate, at time.Time) models.FeeStatus {
	if status == models.FeeStatusPaid {
		return models.FeeStatusPaid
	}
	if helpers.TruncateToDay(at).After(helpers.TruncateToDay(dueDate)) {
		return models.FeeStatusOverdue
	}
	return models.FeeStatusPending
}

// MarkFeePaid transitions a fee to paid, recording the payment method and
// date. Allowed from pending and overdue; a fee that is already paid is
// reported as a state conflict and left untouched. Empty payment method is
// a validation failure, not a state-machine failure.
func MarkFeePaid(fee *models.Fee, method string, at time.Time) error {
	if strings.TrimSpace(method) == "" {
		return apperrors.NewValidationError("payment method is required")
	}
	if fee.Status == models.FeeStatusPaid {
		return apperrors.ErrFeeAlreadySettled
	}

	paidDate := helpers.TruncateToDay(at)
	fee.Status = models.FeeStatusPaid
	fee.PaidDate = &paidDate
	fee.PaymentMethod = &method
	return nil
}
