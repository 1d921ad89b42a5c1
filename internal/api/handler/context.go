package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both role and user_id
// must be present, proving the middleware ran and the token names a real
// principal.
func ctxClaims(c echo.Context) (domain.Role, uint, error) {
	raw, _ := c.Get("role").(string)
	role := domain.Role(raw)
	if !role.Valid() {
		return "", 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(uint)
	if userID == 0 {
		return "", 0, echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	return role, userID, nil
}

// pathID parses the :id route parameter as an unsigned integer.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
