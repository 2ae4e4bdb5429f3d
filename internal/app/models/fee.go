package models

import (
	"time"
)

// FeeStatus defines the fee lifecycle state. Only pending and paid are ever
// stored; overdue is derived from the due date at read time.
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusOverdue FeeStatus = "overdue"
	FeeStatusPaid    FeeStatus = "paid"
)

// Fee defines the fee model based on the 'fees' table
type Fee struct {
	ID            int64      `json:"id" db:"id"`
	StudentID     int64      `json:"studentId" db:"student_id"`
	Amount        float64    `json:"amount" db:"amount" example:"500"`     // Fee amount, positive
	DueDate       time.Time  `json:"dueDate" db:"due_date"`                // Payment due date
	Status        FeeStatus  `json:"status" db:"status" example:"pending"` // Stored state: pending or paid
	PaidDate      *time.Time `json:"paidDate,omitempty" db:"paid_date"`    // Date payment received (nullable)
	PaymentMethod *string    `json:"paymentMethod,omitempty" db:"payment_method"`
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
	Student       *Student   `json:"student,omitempty"` // Relation, no db tag
}
