package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// UserModel is the persisted shape of a user account.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
	FullName     string
	Phone        string
	Active       bool `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Fees []FeeModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}

// FeeModel is the persisted shape of a fee.
type FeeModel struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DueDate     time.Time       `gorm:"not null"`
	Paid        bool            `gorm:"not null;default:false"`
	PaymentDate *time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	PaymentRequests []PaymentRequestModel `gorm:"foreignKey:FeeID;constraint:OnDelete:CASCADE"`
}

func (FeeModel) TableName() string {
	return "fees"
}

// PaymentRequestModel is the persisted shape of a payment request.
type PaymentRequestModel struct {
	ID            uint            `gorm:"primaryKey"`
	FeeID         uint            `gorm:"index;not null"`
	TransactionID string          `gorm:"not null"`
	PayeeName     string          `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Approved      bool            `gorm:"not null;default:false"`
	RequestedAt   time.Time       `gorm:"not null"`
	ApprovedAt    *time.Time
}

func (PaymentRequestModel) TableName() string {
	return "payment_requests"
}

func (m *UserModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		FullName:     m.FullName,
		Phone:        m.Phone,
		Active:       m.Active,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userModelFrom(u *domain.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		FullName:     u.FullName,
		Phone:        u.Phone,
		Active:       u.Active,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *FeeModel) toDomain() *domain.Fee {
	return &domain.Fee{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		Paid:        m.Paid,
		PaymentDate: m.PaymentDate,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func feeModelFrom(f *domain.Fee) *FeeModel {
	return &FeeModel{
		ID:          f.ID,
		UserID:      f.UserID,
		Amount:      f.Amount,
		DueDate:     f.DueDate,
		Paid:        f.Paid,
		PaymentDate: f.PaymentDate,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m *PaymentRequestModel) toDomain() *domain.PaymentRequest {
	return &domain.PaymentRequest{
		ID:            m.ID,
		FeeID:         m.FeeID,
		TransactionID: m.TransactionID,
		PayeeName:     m.PayeeName,
		Amount:        m.Amount,
		Approved:      m.Approved,
		RequestedAt:   m.RequestedAt,
		ApprovedAt:    m.ApprovedAt,
	}
}

func payRequestModelFrom(p *domain.PaymentRequest) *PaymentRequestModel {
	return &PaymentRequestModel{
		ID:            p.ID,
		FeeID:         p.FeeID,
		TransactionID: p.TransactionID,
		PayeeName:     p.PayeeName,
		Amount:        p.Amount,
		Approved:      p.Approved,
		RequestedAt:   p.RequestedAt,
		ApprovedAt:    p.ApprovedAt,
	}
}
