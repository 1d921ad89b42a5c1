package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
	"github.com/ahmadjutt29/isp-billing-system/internal/core/ports"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.User, error)
	seedFn  func(ctx context.Context) (*domain.User, bool, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) SeedAdmin(ctx context.Context) (*domain.User, bool, error) {
	return s.seedFn(ctx)
}

type stubUserService struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	getFn    func(ctx context.Context, id uint) (*domain.User, error)
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id uint, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id uint, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubFeeService struct {
	listFn     func(ctx context.Context) ([]domain.Fee, error)
	listUserFn func(ctx context.Context, userID uint) ([]domain.Fee, error)
	getFn      func(ctx context.Context, id uint) (*domain.Fee, error)
	createFn   func(ctx context.Context, input ports.CreateFeeInput) (*domain.Fee, error)
	updateFn   func(ctx context.Context, id uint, input ports.UpdateFeeInput) (*domain.Fee, error)
	markPaidFn func(ctx context.Context, input ports.MarkPaidInput) (*domain.Fee, error)
	deleteFn   func(ctx context.Context, id uint) error
	incomeFn   func(ctx context.Context) (*ports.IncomeSummary, error)
	monthlyFn  func(ctx context.Context, year int) ([]ports.MonthlyIncome, error)
}

func (s *stubFeeService) ListFees(ctx context.Context) ([]domain.Fee, error) {
	return s.listFn(ctx)
}

func (s *stubFeeService) ListUserFees(ctx context.Context, userID uint) ([]domain.Fee, error) {
	return s.listUserFn(ctx, userID)
}

func (s *stubFeeService) GetFee(ctx context.Context, id uint) (*domain.Fee, error) {
	return s.getFn(ctx, id)
}

func (s *stubFeeService) CreateFee(ctx context.Context, input ports.CreateFeeInput) (*domain.Fee, error) {
	return s.createFn(ctx, input)
}

func (s *stubFeeService) UpdateFee(ctx context.Context, id uint, input ports.UpdateFeeInput) (*domain.Fee, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubFeeService) MarkPaid(ctx context.Context, input ports.MarkPaidInput) (*domain.Fee, error) {
	return s.markPaidFn(ctx, input)
}

func (s *stubFeeService) DeleteFee(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubFeeService) Income(ctx context.Context) (*ports.IncomeSummary, error) {
	return s.incomeFn(ctx)
}

func (s *stubFeeService) MonthlyIncome(ctx context.Context, year int) ([]ports.MonthlyIncome, error) {
	return s.monthlyFn(ctx, year)
}

type stubPayRequestService struct {
	submitFn  func(ctx context.Context, input ports.SubmitPayRequestInput) (*domain.PaymentRequest, error)
	listFn    func(ctx context.Context) ([]domain.PaymentRequest, error)
	approveFn func(ctx context.Context, id uint) (*domain.PaymentRequest, error)
}

func (s *stubPayRequestService) Submit(ctx context.Context, input ports.SubmitPayRequestInput) (*domain.PaymentRequest, error) {
	return s.submitFn(ctx, input)
}

func (s *stubPayRequestService) ListRequests(ctx context.Context) ([]domain.PaymentRequest, error) {
	return s.listFn(ctx)
}

func (s *stubPayRequestService) Approve(ctx context.Context, id uint) (*domain.PaymentRequest, error) {
	return s.approveFn(ctx, id)
}

type stubRenderer struct {
	renderFn func(fee *domain.Fee, owner *domain.User, now time.Time) ([]byte, error)
}

func (s *stubRenderer) Render(fee *domain.Fee, owner *domain.User, now time.Time) ([]byte, error) {
	return s.renderFn(fee, owner, now)
}
