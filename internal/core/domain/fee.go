package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrFeeNotFound = errors.New("fee not found")
var ErrFeeAlreadyPaid = errors.New("fee already paid")
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// Fee is a billable obligation owed by exactly one user.
//
// Invariant: Paid is true if and only if PaymentDate is non-nil.
type Fee struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Paid        bool            `json:"paid"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Overdue reports whether the fee is unpaid and past its due date.
func (f *Fee) Overdue(now time.Time) bool {
	return !f.Paid && f.DueDate.Before(now)
}

// MarkPaid records payment at the given time. It fails if the fee has
// already been paid; the original payment date is never overwritten.
func (f *Fee) MarkPaid(at time.Time) error {
	if f.Paid {
		return ErrFeeAlreadyPaid
	}
	f.Paid = true
	f.PaymentDate = &at
	return nil
}
