package handler

import "github.com/ahmadjutt29/isp-billing-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type seedAdminResponse struct {
	Seeded bool         `json:"seeded"`
	User   *domain.User `json:"user,omitempty"`
}

type createUserRequest struct {
	Username string `json:"username"  validate:"required,min=3"`
	Password string `json:"password"  validate:"required,min=6"`
	Email    string `json:"email"     validate:"required,email"`
	Role     string `json:"role"      validate:"required,oneof=admin client"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// updateUserRequest carries a partial update; absent fields stay unchanged.
type updateUserRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email"`
	Password *string `json:"password"  validate:"omitempty,min=6"`
	Role     *string `json:"role"      validate:"omitempty,oneof=admin client"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Active   *bool   `json:"active"`
}

type listUsersResponse struct {
	Data  []domain.User `json:"data"`
	Total int           `json:"total"`
}
