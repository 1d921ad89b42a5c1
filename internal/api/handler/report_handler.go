package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

// ReportHandler exposes income reporting. Admin-only via router RBAC.
type ReportHandler struct {
	service ports.FeeService
}

func NewReportHandler(service ports.FeeService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Income handles GET /reports/income.
//
// @Summary      Income summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.IncomeSummary
// @Failure      403  {object}  errorResponse
// @Router       /reports/income [get]
func (h *ReportHandler) Income(c echo.Context) error {
	summary, err := h.service.Income(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Monthly handles GET /reports/income/monthly?year=. Defaults to the current
// year when the parameter is absent.
//
// @Summary      Monthly income breakdown for a year
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        year  query     int  false  "Reporting year (default: current)"
// @Success      200   {array}   ports.MonthlyIncome
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /reports/income/monthly [get]
func (h *ReportHandler) Monthly(c echo.Context) error {
	year := time.Now().UTC().Year()
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1970 || parsed > 9999 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = parsed
	}

	months, err := h.service.MonthlyIncome(c.Request().Context(), year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, months)
}
