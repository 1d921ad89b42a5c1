package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// SubmitPayRequestInput carries a client's claim of having paid a fee.
// Submitting never mutates the fee; only an admin approval does.
type SubmitPayRequestInput struct {
	FeeID         uint
	RequesterID   uint
	TransactionID string
	PayeeName     string
	Amount        decimal.Decimal
}

// PayRequestService defines the payment-request workflow.
type PayRequestService interface {
	Submit(ctx context.Context, input SubmitPayRequestInput) (*domain.PaymentRequest, error)
	ListRequests(ctx context.Context) ([]domain.PaymentRequest, error)
	// Approve transitions a pending request to approved and marks the
	// referenced fee paid. Approved is terminal: a second call is rejected.
	Approve(ctx context.Context, id uint) (*domain.PaymentRequest, error)
}
