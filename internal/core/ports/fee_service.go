package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// CreateFeeInput carries all data needed to create a fee.
type CreateFeeInput struct {
	UserID      uint
	Amount      decimal.Decimal
	DueDate     time.Time
	Description string
}

// UpdateFeeInput carries a partial fee update. Nil fields are left unchanged.
type UpdateFeeInput struct {
	Amount      *decimal.Decimal
	DueDate     *time.Time
	Description *string
}

// MarkPaidInput records payment of a fee. When PaymentDate is nil the
// current time is used.
type MarkPaidInput struct {
	FeeID       uint
	PaymentDate *time.Time
}

// IncomeSummary partitions all fees into paid and unpaid buckets.
type IncomeSummary struct {
	TotalPaid   decimal.Decimal `json:"total_paid"`
	TotalUnpaid decimal.Decimal `json:"total_unpaid"`
	PaidCount   int             `json:"paid_count"`
	UnpaidCount int             `json:"unpaid_count"`
	// Overdue covers the subset of unpaid fees past their due date.
	OverdueCount  int             `json:"overdue_count"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
	// CollectionRate is paid / (paid + unpaid) × 100 by count, rounded to
	// two decimals; zero when there are no fees at all.
	CollectionRate float64 `json:"collection_rate"`
}

// MonthlyIncome is one month's paid total within a reporting year.
type MonthlyIncome struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// FeeService defines use-case operations over fees and income reporting.
type FeeService interface {
	ListFees(ctx context.Context) ([]domain.Fee, error)
	ListUserFees(ctx context.Context, userID uint) ([]domain.Fee, error)
	GetFee(ctx context.Context, id uint) (*domain.Fee, error)
	CreateFee(ctx context.Context, input CreateFeeInput) (*domain.Fee, error)
	UpdateFee(ctx context.Context, id uint, input UpdateFeeInput) (*domain.Fee, error)
	MarkPaid(ctx context.Context, input MarkPaidInput) (*domain.Fee, error)
	DeleteFee(ctx context.Context, id uint) error
	Income(ctx context.Context) (*IncomeSummary, error)
	// MonthlyIncome always returns exactly 12 entries, months 1..12 in
	// ascending order, including months with no paid fees.
	MonthlyIncome(ctx context.Context, year int) ([]MonthlyIncome, error)
}
