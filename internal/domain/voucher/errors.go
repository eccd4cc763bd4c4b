package voucher

import "errors"

var (
	// ErrVoucherNotFound バウチャーが見つからないエラー
	ErrVoucherNotFound = errors.New("voucher not found")
	// ErrVoucherAlreadyExists 同じIDのバウチャーが既に存在するエラー
	ErrVoucherAlreadyExists = errors.New("voucher already exists")
	// ErrUsageCountConflict 使用回数の比較追記が競合したエラー（再読込の上リトライする）
	ErrUsageCountConflict = errors.New("usage count conflict")
	// ErrOrderAlreadyRedeemed 同じ注文IDの引き換えが既に記録済みエラー
	ErrOrderAlreadyRedeemed = errors.New("order already redeemed")
	// ErrRedemptionNotFound 引き換え記録が見つからないエラー
	ErrRedemptionNotFound = errors.New("redemption not found")
)
