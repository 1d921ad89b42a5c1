package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "alice",
		Password: "pass123",
		Email:    "alice@example.com",
		Role:     domain.RoleClient,
		FullName: "Alice Smith",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.Active {
		t.Fatalf("expected new user to be active")
	}
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{Username: "", Password: "x", Role: domain.RoleClient}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{Username: "bob", Password: "x", Role: "superuser"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	input := ports.CreateUserInput{Username: "bob", Password: "pass", Email: "bob@example.com", Role: domain.RoleClient}
	if _, err := svc.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateUser_PartialAndPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "carol", Password: "old-pass", Email: "carol@example.com", Role: domain.RoleClient,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	oldHash := user.PasswordHash

	newEmail := "carol@new.example.com"
	newPass := "new-pass"
	inactive := false
	updated, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{
		Email:    &newEmail,
		Password: &newPass,
		Active:   &inactive,
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Email != newEmail {
		t.Fatalf("email not updated: %s", updated.Email)
	}
	if updated.Active {
		t.Fatalf("expected user to be deactivated")
	}
	if updated.Username != "carol" {
		t.Fatalf("username should be immutable, got %s", updated.Username)
	}
	if updated.PasswordHash == oldHash {
		t.Fatalf("expected password hash to change")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(newPass)); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.DeleteUser(context.Background(), 42); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
