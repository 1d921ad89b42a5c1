package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahmadjutt29/isp-billing-system/internal/api/metrics"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

// PayRequestHandler handles the payment-request workflow: clients submit a
// claim against one of their fees, administrators list and approve claims.
type PayRequestHandler struct {
	service ports.PayRequestService
}

func NewPayRequestHandler(service ports.PayRequestService) *PayRequestHandler {
	return &PayRequestHandler{service: service}
}

// Submit handles POST /fees/:id/pay-request. The claim is recorded but the
// fee stays unpaid until an administrator approves.
//
// @Summary      Submit a payment request for a fee
// @Tags         payrequests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Fee id"
// @Param        body  body      submitPayRequestRequest  true  "Payment claim"
// @Success      201   {object}  domain.PaymentRequest
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /fees/{id}/pay-request [post]
func (h *PayRequestHandler) Submit(c echo.Context) error {
	feeID, err := pathID(c)
	if err != nil {
		return err
	}
	_, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req submitPayRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitPayRequestInput{
		FeeID:         feeID,
		RequesterID:   userID,
		TransactionID: req.TransactionID,
		PayeeName:     req.PayeeName,
		Amount:        req.Amount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /payrequests.
//
// @Summary      List payment requests
// @Tags         payrequests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPayRequestsResponse
// @Failure      403  {object}  errorResponse
// @Router       /payrequests [get]
func (h *PayRequestHandler) List(c echo.Context) error {
	reqs, err := h.service.ListRequests(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPayRequestsResponse{Data: reqs, Total: len(reqs)})
}

// Approve handles POST /payrequests/:id/approve. Approval is the only path
// by which a client-submitted payment becomes authoritative.
//
// @Summary      Approve a payment request
// @Tags         payrequests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment request id"
// @Success      200  {object}  domain.PaymentRequest
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /payrequests/{id}/approve [post]
func (h *PayRequestHandler) Approve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	approved, err := h.service.Approve(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues("pay_request").Inc()
	return c.JSON(http.StatusOK, approved)
}
