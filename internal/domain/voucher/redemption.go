package voucher

import (
	"time"
)

// Redemption 引き換え台帳エントリエンティティ
// 成功した引き換え1件につき1エントリの追記専用台帳で、
// カスタマーサポートの監査証跡を兼ねる
type Redemption struct {
	redemptionID   string
	voucherID      string
	userID         string
	orderID        string
	discountAmount int64
	redeemedAt     time.Time
}

// NewRedemption 新しいRedemptionエンティティを作成
func NewRedemption(redemptionID, voucherID, userID, orderID string, discountAmount int64) *Redemption {
	return &Redemption{
		redemptionID:   redemptionID,
		voucherID:      voucherID,
		userID:         userID,
		orderID:        orderID,
		discountAmount: discountAmount,
		redeemedAt:     time.Now(),
	}
}

// RedemptionID 引き換えIDを返す
func (r *Redemption) RedemptionID() string {
	return r.redemptionID
}

// VoucherID バウチャーIDを返す
func (r *Redemption) VoucherID() string {
	return r.voucherID
}

// UserID ユーザーIDを返す
func (r *Redemption) UserID() string {
	return r.userID
}

// OrderID 注文IDを返す
func (r *Redemption) OrderID() string {
	return r.orderID
}

// DiscountAmount 適用された割引額を返す
func (r *Redemption) DiscountAmount() int64 {
	return r.discountAmount
}

// RedeemedAt 引き換え日時を返す
func (r *Redemption) RedeemedAt() time.Time {
	return r.redeemedAt
}

// SetRedeemedAt 引き換え日時を設定（リポジトリから読み込んだ際に使用）
func (r *Redemption) SetRedeemedAt(t time.Time) {
	r.redeemedAt = t
}
