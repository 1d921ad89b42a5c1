package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

func sampleFee() *domain.Fee {
	return &domain.Fee{
		ID:      42,
		UserID:  7,
		Amount:  decimal.RequireFromString("49.99"),
		DueDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func sampleOwner() *domain.User {
	return &domain.User{
		ID:       7,
		Username: "client1",
		Email:    "client1@example.com",
		FullName: "Jordan Smith",
		Role:     domain.RoleClient,
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer("Acme ISP")

	out, err := r.Render(sampleFee(), sampleOwner(), time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty document")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header: %q", out[:8])
	}
}

func TestRenderer_DefaultIssuer(t *testing.T) {
	r := NewRenderer("")
	if r.issuer != "ISP Billing" {
		t.Fatalf("expected default issuer, got %q", r.issuer)
	}
}

func TestInvoiceNumber(t *testing.T) {
	fee := sampleFee()
	if got := invoiceNumber(fee); got != "INV-000042" {
		t.Fatalf("expected INV-000042, got %q", got)
	}

	fee.ID = 1234567
	if got := invoiceNumber(fee); got != "INV-1234567" {
		t.Fatalf("expected INV-1234567, got %q", got)
	}
}

func TestLineItemDescription(t *testing.T) {
	fee := sampleFee()
	if got := lineItemDescription(fee); got != defaultLineItem {
		t.Fatalf("expected fallback description, got %q", got)
	}

	fee.Description = "Fiber 100Mbps"
	if got := lineItemDescription(fee); got != "Fiber 100Mbps" {
		t.Fatalf("expected explicit description, got %q", got)
	}
}

func TestStatusLabel(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	fee := sampleFee()
	fee.DueDate = now.AddDate(0, 1, 0)
	if got := statusLabel(fee, now); got != "UNPAID" {
		t.Fatalf("expected UNPAID, got %q", got)
	}

	fee.DueDate = now.AddDate(0, -1, 0)
	if got := statusLabel(fee, now); got != "OVERDUE" {
		t.Fatalf("expected OVERDUE, got %q", got)
	}

	paidAt := now.AddDate(0, 0, -5)
	if err := fee.MarkPaid(paidAt); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if got := statusLabel(fee, now); got != "PAID" {
		t.Fatalf("expected PAID, got %q", got)
	}
}
