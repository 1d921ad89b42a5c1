package handler

import (
	"github.com/shopspring/decimal"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

type submitPayRequestRequest struct {
	TransactionID string          `json:"transaction_id" validate:"required"`
	PayeeName     string          `json:"payee_name"     validate:"required"`
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
}

type listPayRequestsResponse struct {
	Data  []domain.PaymentRequest `json:"data"`
	Total int                     `json:"total"`
}
