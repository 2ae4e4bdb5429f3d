package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveFeeStatus(t *testing.T) {
	due := date(2024, 1, 15)

	tests := []struct {
		name   string
		stored models.FeeStatus
		at     time.Time
		want   models.FeeStatus
	}{
		{"pending before due date", models.FeeStatusPending, date(2024, 1, 10), models.FeeStatusPending},
		{"pending on due date", models.FeeStatusPending, date(2024, 1, 15), models.FeeStatusPending},
		{"due date passed", models.FeeStatusPending, date(2024, 1, 16), models.FeeStatusOverdue},
		{"long overdue", models.FeeStatusPending, date(2024, 3, 1), models.FeeStatusOverdue},
		{"paid is terminal", models.FeeStatusPaid, date(2024, 3, 1), models.FeeStatusPaid},
		{"intraday time ignored", models.FeeStatusPending, date(2024, 1, 15).Add(23 * time.Hour), models.FeeStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveFeeStatus(tt.stored, due, tt.at))
		})
	}
}

func TestMarkFeePaid(t *testing.T) {
	fee := &models.Fee{
		ID:        1,
		StudentID: 10,
		Amount:    500,
		DueDate:   date(2024, 1, 15),
		Status:    models.FeeStatusPending,
	}

	err := MarkFeePaid(fee, "upi", date(2024, 2, 1).Add(9*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, models.FeeStatusPaid, fee.Status)
	require.NotNil(t, fee.PaidDate)
	assert.Equal(t, date(2024, 2, 1), *fee.PaidDate)
	require.NotNil(t, fee.PaymentMethod)
	assert.Equal(t, "upi", *fee.PaymentMethod)
}

func TestMarkFeePaid_OverdueFee(t *testing.T) {
	// An overdue fee is stored as pending; paying it is a normal transition
	fee := &models.Fee{Status: models.FeeStatusPending, DueDate: date(2024, 1, 1)}

	err := MarkFeePaid(fee, "cash", date(2024, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, models.FeeStatusPaid, fee.Status)
}

func TestMarkFeePaid_AlreadyPaid(t *testing.T) {
	paidDate := date(2024, 1, 20)
	method := "cash"
	fee := &models.Fee{
		Status:        models.FeeStatusPaid,
		PaidDate:      &paidDate,
		PaymentMethod: &method,
	}

	err := MarkFeePaid(fee, "upi", date(2024, 2, 1))
	assert.True(t, errors.Is(err, apperrors.ErrFeeAlreadySettled))

	// Original payment record survives the rejected double payment
	assert.Equal(t, models.FeeStatusPaid, fee.Status)
	assert.Equal(t, paidDate, *fee.PaidDate)
	assert.Equal(t, "cash", *fee.PaymentMethod)
}

func TestMarkFeePaid_EmptyMethod(t *testing.T) {
	fee := &models.Fee{Status: models.FeeStatusPending, DueDate: date(2024, 1, 15)}

	for _, method := range []string{"", "   "} {
		err := MarkFeePaid(fee, method, date(2024, 1, 10))
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		assert.Equal(t, models.FeeStatusPending, fee.Status)
		assert.Nil(t, fee.PaidDate)
	}
}
