package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// FeeRepository persists fees in Postgres via GORM.
type FeeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(db *gorm.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

func (r *FeeRepository) Create(ctx context.Context, fee *domain.Fee) (*domain.Fee, error) {
	model := feeModelFrom(fee)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert fee: %w", err)
	}
	return model.toDomain(), nil
}

func (r *FeeRepository) FindByID(ctx context.Context, id uint) (*domain.Fee, error) {
	var model FeeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFeeNotFound
		}
		return nil, fmt.Errorf("find fee: %w", err)
	}
	return model.toDomain(), nil
}

func (r *FeeRepository) List(ctx context.Context) ([]domain.Fee, error) {
	var models []FeeModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	return feesToDomain(models), nil
}

func (r *FeeRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Fee, error) {
	var models []FeeModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("due_date").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list user fees: %w", err)
	}
	return feesToDomain(models), nil
}

func (r *FeeRepository) ListPaidInYear(ctx context.Context, year int) ([]domain.Fee, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var models []FeeModel
	if err := r.db.WithContext(ctx).
		Where("paid = ? AND payment_date >= ? AND payment_date < ?", true, start, end).
		Order("payment_date").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list paid fees: %w", err)
	}
	return feesToDomain(models), nil
}

func (r *FeeRepository) Update(ctx context.Context, fee *domain.Fee) error {
	model := feeModelFrom(fee)
	res := r.db.WithContext(ctx).Model(&FeeModel{}).Where("id = ?", model.ID).
		Select("Amount", "DueDate", "Paid", "PaymentDate", "Description", "UpdatedAt").
		Updates(model)
	if res.Error != nil {
		return fmt.Errorf("update fee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrFeeNotFound
	}
	return nil
}

// Delete removes the fee row; payment requests referencing it go with it
// through the ON DELETE CASCADE constraint.
func (r *FeeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&FeeModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete fee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrFeeNotFound
	}
	return nil
}

func feesToDomain(models []FeeModel) []domain.Fee {
	fees := make([]domain.Fee, 0, len(models))
	for i := range models {
		fees = append(fees, *models[i].toDomain())
	}
	return fees
}
