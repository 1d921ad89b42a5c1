package ports

import (
	"context"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials of an active user and returns a signed
	// bearer token plus the authenticated user. Unknown users, inactive
	// users, and wrong passwords are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// SeedAdmin creates the default administrator account if no admin-role
	// user exists yet. It is idempotent: when an admin is already present it
	// returns (nil, false, nil).
	SeedAdmin(ctx context.Context) (*domain.User, bool, error)
}
