package dto

import (
	"time"

	"github.com/okan/hostelhub/internal/app/lifecycle"
	"github.com/okan/hostelhub/internal/app/models"
)

// CreateFeeRequest represents a fee creation request
type CreateFeeRequest struct {
	StudentID int64   `json:"studentId" binding:"required,gt=0"`
	Amount    float64 `json:"amount" binding:"required,gt=0" example:"500"`
	DueDate   string  `json:"dueDate" binding:"required" example:"2024-01-01"` // YYYY-MM-DD
	Notes     *string `json:"notes,omitempty"`
}

// UpdateFeeRequest represents a fee update request; status is never settable
// directly, only through mark-paid.
type UpdateFeeRequest struct {
	Amount  *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	DueDate *string  `json:"dueDate,omitempty" example:"2024-02-01"`
	Notes   *string  `json:"notes,omitempty"`
}

// MarkFeePaidRequest records a payment
type MarkFeePaidRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required" example:"Cash"`
}

// FeeResponse represents fee information with the lazily derived status
type FeeResponse struct {
	ID            int64            `json:"id"`
	StudentID     int64            `json:"studentId"`
	Amount        float64          `json:"amount"`
	DueDate       string           `json:"dueDate" example:"2024-01-01"`
	Status        models.FeeStatus `json:"status" example:"overdue" enums:"pending,overdue,paid"`
	PaidDate      *string          `json:"paidDate,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// FeeListFilter holds query parameters for listing fees
type FeeListFilter struct {
	StudentID *int64 `form:"student_id"`
	Status    string `form:"status"`
}

// FromFee converts a models.Fee to a FeeResponse, deriving the effective
// status at the given evaluation time.
func FromFee(fee *models.Fee, at time.Time) FeeResponse {
	resp := FeeResponse{
		ID:        fee.ID,
		StudentID: fee.StudentID,
		Amount:    fee.Amount,
		DueDate:   fee.DueDate.Format("2006-01-02"),
		Status:    lifecycle.EffectiveFeeStatus(fee.Status, fee.DueDate, at),
		Notes:     fee.Notes,
	}
	if fee.PaidDate != nil {
		paid := fee.PaidDate.Format("2006-01-02")
		resp.PaidDate = &paid
	}
	resp.PaymentMethod = fee.PaymentMethod
	return resp
}

// FromFees converts a slice of fees
func FromFees(fees []*models.Fee, at time.Time) []FeeResponse {
	out := make([]FeeResponse, 0, len(fees))
	for _, f := range fees {
		out = append(out, FromFee(f, at))
	}
	return out
}
