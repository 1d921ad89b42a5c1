package ports

import (
	"context"
	"time"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user; owned fees and their payment requests are
	// removed by the store's cascade rules.
	Delete(ctx context.Context, id uint) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	RecordLogin(ctx context.Context, id uint, at time.Time) error
}
