package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

// PayRequestService implements the submit/approve payment-request workflow.
type PayRequestService struct {
	repo    ports.PayRequestRepository
	feeRepo ports.FeeRepository
	cache   ReportCache
	log     zerolog.Logger
}

func NewPayRequestService(repo ports.PayRequestRepository, feeRepo ports.FeeRepository, cache ReportCache, log zerolog.Logger) *PayRequestService {
	return &PayRequestService{repo: repo, feeRepo: feeRepo, cache: cache, log: log}
}

// Submit records a client's claim of having paid a fee. The fee itself is
// never touched here; only an admin approval makes the payment authoritative.
func (s *PayRequestService) Submit(ctx context.Context, input ports.SubmitPayRequestInput) (*domain.PaymentRequest, error) {
	fee, err := s.feeRepo.FindByID(ctx, input.FeeID)
	if err != nil {
		return nil, err
	}
	if fee.UserID != input.RequesterID {
		return nil, domain.ErrForbidden
	}

	req := &domain.PaymentRequest{
		FeeID:         input.FeeID,
		TransactionID: input.TransactionID,
		PayeeName:     input.PayeeName,
		Amount:        input.Amount.Round(2),
		RequestedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("request_id", created.ID).Uint("fee_id", created.FeeID).Str("transaction_id", created.TransactionID).Msg("payment request submitted")
	return created, nil
}

func (s *PayRequestService) ListRequests(ctx context.Context) ([]domain.PaymentRequest, error) {
	return s.repo.List(ctx)
}

// Approve transitions a pending request to approved and marks the referenced
// fee paid, both in one transaction. The transition is terminal: a request
// already approved is rejected, as is one whose fee has since vanished.
func (s *PayRequestService) Approve(ctx context.Context, id uint) (*domain.PaymentRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fee, err := s.feeRepo.FindByID(ctx, req.FeeID)
	if err != nil {
		return nil, err
	}

	approvedAt := time.Now().UTC()
	if err := req.Approve(approvedAt); err != nil {
		return nil, err
	}
	// A fee already paid through another path keeps its original payment
	// date; the approval itself still completes.
	if !fee.Paid {
		if err := fee.MarkPaid(approvedAt); err != nil {
			return nil, err
		}
	}
	fee.UpdatedAt = approvedAt

	if err := s.repo.MarkApproved(ctx, req, fee); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("report cache invalidation failed")
	}

	s.log.Info().Uint("request_id", req.ID).Uint("fee_id", fee.ID).Msg("payment request approved")
	return req, nil
}
