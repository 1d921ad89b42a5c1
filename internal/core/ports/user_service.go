package ports

import (
	"context"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// CreateUserInput carries all data needed to create an account.
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	Role     domain.Role
	FullName string
	Phone    string
}

// UpdateUserInput carries a partial account update. Nil fields are left
// unchanged; a non-nil Password triggers a re-hash.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *domain.Role
	FullName *string
	Phone    *string
	Active   *bool
}

// UserService defines administrative use cases over accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
