package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahmadjutt29/isp-billing-system/internal/api/metrics"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// SeedAdmin bootstraps the default administrator account. Calling it when an
// admin already exists is a harmless no-op.
//
// @Summary      Seed the default admin account
// @Tags         users
// @Produce      json
// @Success      200  {object}  seedAdminResponse
// @Success      201  {object}  seedAdminResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/seed-admin [post]
func (h *AuthHandler) SeedAdmin(c echo.Context) error {
	user, created, err := h.authService.SeedAdmin(c.Request().Context())
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, seedAdminResponse{Seeded: created, User: user})
}
