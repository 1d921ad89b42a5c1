package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

type createFeeRequest struct {
	UserID      uint            `json:"user_id"     validate:"required"`
	Amount      decimal.Decimal `json:"amount"      validate:"required"`
	DueDate     time.Time       `json:"due_date"    validate:"required"`
	Description string          `json:"description"`
}

// updateFeeRequest carries a partial update; absent fields stay unchanged.
type updateFeeRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"due_date"`
	Description *string          `json:"description"`
}

// payFeeRequest optionally pins the payment date; when absent the current
// time is recorded.
type payFeeRequest struct {
	PaymentDate *time.Time `json:"payment_date"`
}

type listFeesResponse struct {
	Data  []domain.Fee `json:"data"`
	Total int          `json:"total"`
}
