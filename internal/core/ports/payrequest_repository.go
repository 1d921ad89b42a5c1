package ports

import (
	"context"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// PayRequestRepository defines persistence for payment requests.
type PayRequestRepository interface {
	Create(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentRequest, error)
	FindByID(ctx context.Context, id uint) (*domain.PaymentRequest, error)
	List(ctx context.Context) ([]domain.PaymentRequest, error)
	// MarkApproved persists the approved request and the now-paid fee in a
	// single transaction so a failure leaves neither record changed.
	MarkApproved(ctx context.Context, req *domain.PaymentRequest, fee *domain.Fee) error
}
