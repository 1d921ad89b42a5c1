package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahmadjutt29/isp-billing-system/internal/api/metrics"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

// FeeHandler handles HTTP requests for fee operations. Admin-only routes are
// gated by RBAC middleware in the router; owner-or-admin checks happen here
// against the token claims.
type FeeHandler struct {
	service ports.FeeService
}

func NewFeeHandler(service ports.FeeService) *FeeHandler {
	return &FeeHandler{service: service}
}

// List handles GET /fees.
//
// @Summary      List all fees
// @Tags         fees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listFeesResponse
// @Failure      403  {object}  errorResponse
// @Router       /fees [get]
func (h *FeeHandler) List(c echo.Context) error {
	fees, err := h.service.ListFees(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listFeesResponse{Data: fees, Total: len(fees)})
}

// MyFees handles GET /fees/my-fees, the authenticated user's own fees.
//
// @Summary      List the caller's fees
// @Tags         fees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listFeesResponse
// @Failure      401  {object}  errorResponse
// @Router       /fees/my-fees [get]
func (h *FeeHandler) MyFees(c echo.Context) error {
	_, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fees, err := h.service.ListUserFees(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listFeesResponse{Data: fees, Total: len(fees)})
}

// Get handles GET /fees/:id. Clients may only fetch their own fees.
//
// @Summary      Get a fee by id
// @Tags         fees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Fee id"
// @Success      200  {object}  domain.Fee
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /fees/{id} [get]
func (h *FeeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fee, err := h.service.GetFee(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !role.CanAccessOwned(userID, fee.UserID) {
		return domain.ErrForbidden
	}
	return c.JSON(http.StatusOK, fee)
}

// Create handles POST /fees.
//
// @Summary      Create a fee
// @Tags         fees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFeeRequest  true  "Fee details"
// @Success      201   {object}  domain.Fee
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /fees [post]
func (h *FeeHandler) Create(c echo.Context) error {
	var req createFeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fee, err := h.service.CreateFee(c.Request().Context(), ports.CreateFeeInput{
		UserID:      req.UserID,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.FeesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, fee)
}

// Update handles PUT /fees/:id.
//
// @Summary      Update a fee
// @Tags         fees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Fee id"
// @Param        body  body      updateFeeRequest  true  "Fields to update"
// @Success      200   {object}  domain.Fee
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /fees/{id} [put]
func (h *FeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateFeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	fee, err := h.service.UpdateFee(c.Request().Context(), id, ports.UpdateFeeInput{
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fee)
}

// Pay handles PUT /fees/:id/pay. Owners and admins may record payment; a fee
// already paid is rejected with a conflict.
//
// @Summary      Mark a fee as paid
// @Tags         fees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true   "Fee id"
// @Param        body  body      payFeeRequest  false  "Optional payment date"
// @Success      200   {object}  domain.Fee
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /fees/{id}/pay [put]
func (h *FeeHandler) Pay(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req payFeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	fee, err := h.service.GetFee(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !role.CanAccessOwned(userID, fee.UserID) {
		return domain.ErrForbidden
	}

	paid, err := h.service.MarkPaid(c.Request().Context(), ports.MarkPaidInput{
		FeeID:       id,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues("direct").Inc()
	return c.JSON(http.StatusOK, paid)
}

// Delete handles DELETE /fees/:id. Payment requests referencing the fee are
// removed with it.
//
// @Summary      Delete a fee
// @Tags         fees
// @Security     BearerAuth
// @Param        id  path  int  true  "Fee id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /fees/{id} [delete]
func (h *FeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteFee(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
