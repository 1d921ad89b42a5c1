package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ahmadjutt29/isp-billing-system/internal/core/domain"
)

// --- user repository stub ---

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) RecordLogin(_ context.Context, id uint, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

// --- fee repository stub ---

type stubFeeRepo struct {
	fees      map[uint]*domain.Fee
	nextID    uint
	listCalls int
}

func newStubFeeRepo() *stubFeeRepo {
	return &stubFeeRepo{fees: make(map[uint]*domain.Fee)}
}

func cloneFee(f *domain.Fee) *domain.Fee {
	if f == nil {
		return nil
	}
	clone := *f
	if f.PaymentDate != nil {
		d := *f.PaymentDate
		clone.PaymentDate = &d
	}
	return &clone
}

func (r *stubFeeRepo) Create(_ context.Context, fee *domain.Fee) (*domain.Fee, error) {
	r.nextID++
	copy := cloneFee(fee)
	copy.ID = r.nextID
	r.fees[copy.ID] = copy
	return cloneFee(copy), nil
}

func (r *stubFeeRepo) FindByID(_ context.Context, id uint) (*domain.Fee, error) {
	f, ok := r.fees[id]
	if !ok {
		return nil, domain.ErrFeeNotFound
	}
	return cloneFee(f), nil
}

func (r *stubFeeRepo) List(_ context.Context) ([]domain.Fee, error) {
	r.listCalls++
	out := make([]domain.Fee, 0, len(r.fees))
	for _, f := range r.fees {
		out = append(out, *cloneFee(f))
	}
	return out, nil
}

func (r *stubFeeRepo) ListByUser(_ context.Context, userID uint) ([]domain.Fee, error) {
	var out []domain.Fee
	for _, f := range r.fees {
		if f.UserID == userID {
			out = append(out, *cloneFee(f))
		}
	}
	return out, nil
}

func (r *stubFeeRepo) ListPaidInYear(_ context.Context, year int) ([]domain.Fee, error) {
	var out []domain.Fee
	for _, f := range r.fees {
		if f.Paid && f.PaymentDate != nil && f.PaymentDate.Year() == year {
			out = append(out, *cloneFee(f))
		}
	}
	return out, nil
}

func (r *stubFeeRepo) Update(_ context.Context, fee *domain.Fee) error {
	if _, ok := r.fees[fee.ID]; !ok {
		return domain.ErrFeeNotFound
	}
	r.fees[fee.ID] = cloneFee(fee)
	return nil
}

func (r *stubFeeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.fees[id]; !ok {
		return domain.ErrFeeNotFound
	}
	delete(r.fees, id)
	return nil
}

// --- payment request repository stub ---

type stubPayRequestRepo struct {
	requests map[uint]*domain.PaymentRequest
	nextID   uint
	feeRepo  *stubFeeRepo
}

func newStubPayRequestRepo(feeRepo *stubFeeRepo) *stubPayRequestRepo {
	return &stubPayRequestRepo{requests: make(map[uint]*domain.PaymentRequest), feeRepo: feeRepo}
}

func clonePayRequest(p *domain.PaymentRequest) *domain.PaymentRequest {
	if p == nil {
		return nil
	}
	clone := *p
	if p.ApprovedAt != nil {
		d := *p.ApprovedAt
		clone.ApprovedAt = &d
	}
	return &clone
}

func (r *stubPayRequestRepo) Create(_ context.Context, req *domain.PaymentRequest) (*domain.PaymentRequest, error) {
	r.nextID++
	copy := clonePayRequest(req)
	copy.ID = r.nextID
	r.requests[copy.ID] = copy
	return clonePayRequest(copy), nil
}

func (r *stubPayRequestRepo) FindByID(_ context.Context, id uint) (*domain.PaymentRequest, error) {
	p, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrPayRequestNotFound
	}
	return clonePayRequest(p), nil
}

func (r *stubPayRequestRepo) List(_ context.Context) ([]domain.PaymentRequest, error) {
	out := make([]domain.PaymentRequest, 0, len(r.requests))
	for _, p := range r.requests {
		out = append(out, *clonePayRequest(p))
	}
	return out, nil
}

func (r *stubPayRequestRepo) MarkApproved(ctx context.Context, req *domain.PaymentRequest, fee *domain.Fee) error {
	stored, ok := r.requests[req.ID]
	if !ok {
		return domain.ErrPayRequestNotFound
	}
	if stored.Approved {
		return domain.ErrRequestAlreadyApproved
	}
	r.requests[req.ID] = clonePayRequest(req)
	return r.feeRepo.Update(ctx, fee)
}

// --- report cache stub ---

type stubCache struct {
	store         map[string][]byte
	invalidations int
}

func newStubCache() *stubCache {
	return &stubCache{store: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, v any) (bool, error) {
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (c *stubCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = raw
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.store = make(map[string][]byte)
	c.invalidations++
	return nil
}
