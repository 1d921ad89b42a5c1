package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

const (
	incomeCacheKey        = "income"
	monthlyCacheKeyFormat = "monthly:%d"
)

// ReportCache abstracts the short-lived cache for income reports (Redis).
// A nil-safe stub is acceptable in tests; failures are never fatal to the
// underlying query.
type ReportCache interface {
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context) error
}

// FeeService implements fee CRUD and income reporting.
type FeeService struct {
	repo     ports.FeeRepository
	userRepo ports.UserRepository
	cache    ReportCache
	log      zerolog.Logger
}

func NewFeeService(repo ports.FeeRepository, userRepo ports.UserRepository, cache ReportCache, log zerolog.Logger) *FeeService {
	return &FeeService{repo: repo, userRepo: userRepo, cache: cache, log: log}
}

func (s *FeeService) ListFees(ctx context.Context) ([]domain.Fee, error) {
	return s.repo.List(ctx)
}

func (s *FeeService) ListUserFees(ctx context.Context, userID uint) ([]domain.Fee, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *FeeService) GetFee(ctx context.Context, id uint) (*domain.Fee, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateFee creates a fee for an existing user. The amount must be strictly
// positive.
func (s *FeeService) CreateFee(ctx context.Context, input ports.CreateFeeInput) (*domain.Fee, error) {
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fee := &domain.Fee{
		UserID:      input.UserID,
		Amount:      input.Amount.Round(2),
		DueDate:     input.DueDate,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, fee)
	if err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	s.log.Info().Uint("fee_id", created.ID).Uint("user_id", created.UserID).Str("amount", created.Amount.String()).Msg("fee created")
	return created, nil
}

func (s *FeeService) UpdateFee(ctx context.Context, id uint, input ports.UpdateFeeInput) (*domain.Fee, error) {
	fee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domain.ErrInvalidAmount
		}
		fee.Amount = input.Amount.Round(2)
	}
	if input.DueDate != nil {
		fee.DueDate = *input.DueDate
	}
	if input.Description != nil {
		fee.Description = *input.Description
	}
	fee.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, fee); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	return fee, nil
}

// MarkPaid records payment of a fee. A second call on an already-paid fee is
// rejected and leaves the stored payment date untouched.
func (s *FeeService) MarkPaid(ctx context.Context, input ports.MarkPaidInput) (*domain.Fee, error) {
	fee, err := s.repo.FindByID(ctx, input.FeeID)
	if err != nil {
		return nil, err
	}

	paidAt := time.Now().UTC()
	if input.PaymentDate != nil {
		paidAt = input.PaymentDate.UTC()
	}
	if err := fee.MarkPaid(paidAt); err != nil {
		return nil, err
	}
	fee.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, fee); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	s.log.Info().Uint("fee_id", fee.ID).Time("payment_date", paidAt).Msg("fee marked paid")
	return fee, nil
}

func (s *FeeService) DeleteFee(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateReports(ctx)
	s.log.Info().Uint("fee_id", id).Msg("fee deleted")
	return nil
}

// Income partitions all fees into paid and unpaid buckets and derives the
// overdue subset and collection rate.
func (s *FeeService) Income(ctx context.Context) (*ports.IncomeSummary, error) {
	var cached ports.IncomeSummary
	if found, err := s.cache.Get(ctx, incomeCacheKey, &cached); err != nil {
		s.log.Warn().Err(err).Msg("report cache read failed")
	} else if found {
		return &cached, nil
	}

	fees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary := ports.IncomeSummary{
		TotalPaid:     decimal.Zero,
		TotalUnpaid:   decimal.Zero,
		OverdueAmount: decimal.Zero,
	}
	for i := range fees {
		fee := &fees[i]
		if fee.Paid {
			summary.PaidCount++
			summary.TotalPaid = summary.TotalPaid.Add(fee.Amount)
			continue
		}
		summary.UnpaidCount++
		summary.TotalUnpaid = summary.TotalUnpaid.Add(fee.Amount)
		if fee.Overdue(now) {
			summary.OverdueCount++
			summary.OverdueAmount = summary.OverdueAmount.Add(fee.Amount)
		}
	}
	summary.CollectionRate = collectionRate(summary.PaidCount, summary.UnpaidCount)

	if err := s.cache.Set(ctx, incomeCacheKey, &summary); err != nil {
		s.log.Warn().Err(err).Msg("report cache write failed")
	}
	return &summary, nil
}

// MonthlyIncome groups fees paid in the given year by payment month. All 12
// months appear in the result, in ascending order, zero months included.
func (s *FeeService) MonthlyIncome(ctx context.Context, year int) ([]ports.MonthlyIncome, error) {
	key := fmt.Sprintf(monthlyCacheKeyFormat, year)

	var cached []ports.MonthlyIncome
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.Warn().Err(err).Msg("report cache read failed")
	} else if found {
		return cached, nil
	}

	fees, err := s.repo.ListPaidInYear(ctx, year)
	if err != nil {
		return nil, err
	}

	months := make([]ports.MonthlyIncome, 12)
	for i := range months {
		months[i] = ports.MonthlyIncome{Month: i + 1, Total: decimal.Zero}
	}
	for i := range fees {
		fee := &fees[i]
		if fee.PaymentDate == nil {
			continue
		}
		m := int(fee.PaymentDate.Month()) - 1
		months[m].Total = months[m].Total.Add(fee.Amount)
		months[m].Count++
	}

	if err := s.cache.Set(ctx, key, months); err != nil {
		s.log.Warn().Err(err).Msg("report cache write failed")
	}
	return months, nil
}

// invalidateReports drops cached report entries after any fee mutation.
// Best effort only: a stale entry expires on its own TTL.
func (s *FeeService) invalidateReports(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("report cache invalidation failed")
	}
}

// collectionRate is the percentage of fees (by count) that are paid, rounded
// to two decimals. Defined as 0 when there are no fees.
func collectionRate(paid, unpaid int) float64 {
	total := paid + unpaid
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(paid)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	f, _ := rate.Float64()
	return f
}
