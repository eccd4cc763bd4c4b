package handler

import (
	"context"

	"voucher-server/internal/domain/voucher"

	"github.com/stretchr/testify/mock"
)

// MockVoucherRepository モックバウチャーリポジトリ
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) Create(ctx context.Context, v *voucher.Voucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindByID(ctx context.Context, id string) (*voucher.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voucher.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindAll(ctx context.Context, limit, offset int) ([]*voucher.Voucher, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*voucher.Voucher), args.Int(1), args.Error(2)
}

func (m *MockVoucherRepository) Update(ctx context.Context, v *voucher.Voucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoucherRepository) CountUserRedemptions(ctx context.Context, voucherID, userID string) (int, error) {
	args := m.Called(ctx, voucherID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) FindRedemptionByOrderID(ctx context.Context, orderID string) (*voucher.Redemption, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voucher.Redemption), args.Error(1)
}

func (m *MockVoucherRepository) CompareAndAppendRedemption(ctx context.Context, voucherID string, expectedUsageCount int, r *voucher.Redemption) error {
	args := m.Called(ctx, voucherID, expectedUsageCount, r)
	return args.Error(0)
}

func (m *MockVoucherRepository) ListRedemptions(ctx context.Context, voucherID string, limit, offset int) ([]*voucher.Redemption, int, error) {
	args := m.Called(ctx, voucherID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*voucher.Redemption), args.Int(1), args.Error(2)
}
