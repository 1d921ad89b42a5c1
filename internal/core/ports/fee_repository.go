package ports

import (
	"context"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// FeeRepository defines persistence for fees.
type FeeRepository interface {
	Create(ctx context.Context, fee *domain.Fee) (*domain.Fee, error)
	FindByID(ctx context.Context, id uint) (*domain.Fee, error)
	List(ctx context.Context) ([]domain.Fee, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Fee, error)
	// ListPaidInYear returns fees whose payment date falls within the given
	// calendar year.
	ListPaidInYear(ctx context.Context, year int) ([]domain.Fee, error)
	Update(ctx context.Context, fee *domain.Fee) error
	Delete(ctx context.Context, id uint) error
}
