package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// PayRequestRepository persists payment requests in Postgres via GORM.
type PayRequestRepository struct {
	db *gorm.DB
}

func NewPayRequestRepository(db *gorm.DB) *PayRequestRepository {
	return &PayRequestRepository{db: db}
}

func (r *PayRequestRepository) Create(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentRequest, error) {
	model := payRequestModelFrom(req)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrFeeNotFound
		}
		return nil, fmt.Errorf("insert payment request: %w", err)
	}
	return model.toDomain(), nil
}

func (r *PayRequestRepository) FindByID(ctx context.Context, id uint) (*domain.PaymentRequest, error) {
	var model PaymentRequestModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPayRequestNotFound
		}
		return nil, fmt.Errorf("find payment request: %w", err)
	}
	return model.toDomain(), nil
}

func (r *PayRequestRepository) List(ctx context.Context) ([]domain.PaymentRequest, error) {
	var models []PaymentRequestModel
	if err := r.db.WithContext(ctx).Order("requested_at desc").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list payment requests: %w", err)
	}

	reqs := make([]domain.PaymentRequest, 0, len(models))
	for i := range models {
		reqs = append(reqs, *models[i].toDomain())
	}
	return reqs, nil
}

// MarkApproved writes the approved request and the now-paid fee in one
// transaction. Either both rows change or neither does.
func (r *PayRequestRepository) MarkApproved(ctx context.Context, req *domain.PaymentRequest, fee *domain.Fee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&PaymentRequestModel{}).Where("id = ? AND approved = ?", req.ID, false).
			Updates(map[string]any{"approved": true, "approved_at": req.ApprovedAt})
		if res.Error != nil {
			return fmt.Errorf("approve payment request: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrRequestAlreadyApproved
		}

		feeModel := feeModelFrom(fee)
		res = tx.Model(&FeeModel{}).Where("id = ?", feeModel.ID).
			Select("Paid", "PaymentDate", "UpdatedAt").
			Updates(feeModel)
		if res.Error != nil {
			return fmt.Errorf("mark fee paid: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrFeeNotFound
		}
		return nil
	})
}
