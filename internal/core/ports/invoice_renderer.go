package ports

import (
	"time"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// InvoiceRenderer projects a single fee and its owner into a fixed-layout
// document, returned as raw bytes ready for file delivery. No copy is
// persisted.
type InvoiceRenderer interface {
	Render(fee *domain.Fee, owner *domain.User, now time.Time) ([]byte, error)
}
