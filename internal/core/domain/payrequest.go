package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrPayRequestNotFound = errors.New("payment request not found")
var ErrRequestAlreadyApproved = errors.New("payment request already approved")

// PaymentRequest is a client-asserted claim of having paid a fee, pending
// administrative confirmation. It references exactly one fee.
//
// Invariant: Approved transitions false→true exactly once; ApprovedAt is
// non-nil iff Approved is true. There is no rejection path; unapproved
// requests simply remain pending.
type PaymentRequest struct {
	ID            uint            `json:"id"`
	FeeID         uint            `json:"fee_id"`
	TransactionID string          `json:"transaction_id"`
	PayeeName     string          `json:"payee_name"`
	Amount        decimal.Decimal `json:"amount"`
	Approved      bool            `json:"approved"`
	RequestedAt   time.Time       `json:"requested_at"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
}

// Approve marks the request approved at the given time. A second approval
// is rejected, leaving the original approval timestamp intact.
func (p *PaymentRequest) Approve(at time.Time) error {
	if p.Approved {
		return ErrRequestAlreadyApproved
	}
	p.Approved = true
	p.ApprovedAt = &at
	return nil
}
