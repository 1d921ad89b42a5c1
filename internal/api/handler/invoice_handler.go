package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ahmadjutt29/isp-billing-system/internal/api/metrics"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

// InvoiceHandler renders one fee into a PDF invoice and streams it back.
// Nothing is written to disk; a failed lookup produces no document at all.
type InvoiceHandler struct {
	feeService  ports.FeeService
	userService ports.UserService
	renderer    ports.InvoiceRenderer
}

func NewInvoiceHandler(feeService ports.FeeService, userService ports.UserService, renderer ports.InvoiceRenderer) *InvoiceHandler {
	return &InvoiceHandler{feeService: feeService, userService: userService, renderer: renderer}
}

// Get handles GET /fees/:id/invoice. Clients may only fetch invoices for
// their own fees.
//
// @Summary      Download the invoice PDF for a fee
// @Tags         fees
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  int  true  "Fee id"
// @Success      200  {file}    file
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /fees/{id}/invoice [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	fee, err := h.feeService.GetFee(ctx, id)
	if err != nil {
		return err
	}
	if !role.CanAccessOwned(userID, fee.UserID) {
		return domain.ErrForbidden
	}

	owner, err := h.userService.GetUser(ctx, fee.UserID)
	if err != nil {
		return err
	}

	pdf, err := h.renderer.Render(fee, owner, time.Now().UTC())
	if err != nil {
		return err
	}

	metrics.InvoicesRenderedTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="invoice-%06d.pdf"`, fee.ID))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
