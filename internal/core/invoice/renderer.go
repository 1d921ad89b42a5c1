// Package invoice renders a single fee and its owner into a fixed-layout,
// single-page PDF. Rendering is a pure projection: nothing is persisted.
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

const defaultLineItem = "Monthly Service Fee"

// Renderer produces invoice PDFs. One fee per document; no pagination,
// template selection, or multi-item support.
type Renderer struct {
	issuer string
}

func NewRenderer(issuer string) *Renderer {
	if issuer == "" {
		issuer = "ISP Billing"
	}
	return &Renderer{issuer: issuer}
}

// Render returns the PDF bytes for one fee and its owning user.
func (r *Renderer) Render(fee *domain.Fee, owner *domain.User, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(invoiceNumber(fee), false)
	pdf.AddPage()

	// Issuer header.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, r.issuer, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, "Invoice", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Invoice metadata.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Invoice No:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, invoiceNumber(fee), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Issue Date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, now.Format("02 Jan 2006"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Due Date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fee.DueDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Recipient block.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Billed To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	name := owner.FullName
	if name == "" {
		name = owner.Username
	}
	pdf.CellFormat(0, 6, name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, owner.Email, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Account: "+owner.Username, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Single line item.
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(140, 8, lineItemDescription(fee), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fee.Amount.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, fee.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.Ln(10)

	// Status block.
	status := statusLabel(fee, now)
	switch status {
	case "PAID":
		pdf.SetTextColor(0, 128, 0)
	case "OVERDUE":
		pdf.SetTextColor(192, 0, 0)
	default:
		pdf.SetTextColor(192, 128, 0)
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Status: "+status, "", 1, "L", false, 0, "")
	if fee.Paid && fee.PaymentDate != nil {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "Paid on "+fee.PaymentDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

// invoiceNumber derives the zero-padded invoice number from the fee id.
func invoiceNumber(fee *domain.Fee) string {
	return fmt.Sprintf("INV-%06d", fee.ID)
}

// lineItemDescription falls back to the standard service line when the fee
// carries no description.
func lineItemDescription(fee *domain.Fee) string {
	if fee.Description == "" {
		return defaultLineItem
	}
	return fee.Description
}

func statusLabel(fee *domain.Fee, now time.Time) string {
	switch {
	case fee.Paid:
		return "PAID"
	case fee.Overdue(now):
		return "OVERDUE"
	default:
		return "UNPAID"
	}
}
