package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

// AuthService implements login and admin bootstrap.
type AuthService struct {
	repo          ports.UserRepository
	jwtSecret     string
	tokenTTL      time.Duration
	adminUsername string
	adminPassword string
	log           zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret, adminUsername, adminPassword string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		log:           log,
	}
}

// Login verifies the credentials of an active user and issues a signed token.
// Every failure mode collapses into ErrInvalidCredentials so callers cannot
// probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.RecordLogin(ctx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login time")
	} else {
		user.LastLoginAt = &now
	}

	return token, user, nil
}

// SeedAdmin creates the default administrator if and only if no admin-role
// user exists. Re-running it is a no-op.
func (s *AuthService) SeedAdmin(ctx context.Context) (*domain.User, bool, error) {
	count, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, false, err
	}
	if count > 0 {
		return nil, false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     s.adminUsername,
		Email:        s.adminUsername + "@localhost",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		FullName:     "Default Administrator",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		// A concurrent seed may have won the race; treat that as done.
		if errors.Is(err, domain.ErrUserExists) {
			return nil, false, nil
		}
		return nil, false, err
	}

	s.log.Info().Str("username", created.Username).Msg("default admin seeded")
	return created, true, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     string(user.Role),
		"user_id":  user.ID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
