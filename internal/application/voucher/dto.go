package voucher

import (
	"time"

	domain "voucher-server/internal/domain/voucher"
)

// CheckVoucherRequest バウチャー適格性チェックリクエスト
type CheckVoucherRequest struct {
	VoucherID     string
	UserID        string
	OrderSubtotal int64 // 最小通貨単位
	ShippingCost  int64 // 最小通貨単位
}

// CheckVoucherResponse バウチャー適格性チェックレスポンス
// Approvedがfalseの場合はReasonに拒否理由が入る。副作用はない
type CheckVoucherResponse struct {
	VoucherID      string
	Approved       bool
	Reason         string
	Shortfall      int64 // BelowMinimumOrderValueの場合の不足額
	DiscountAmount int64 // 承認時に適用される割引額
}

// ConfirmVoucherRequest バウチャー確定（引き換えコミット）リクエスト
// DiscountAmountにはチェック時に算出された割引額をそのまま渡す
type ConfirmVoucherRequest struct {
	VoucherID      string
	UserID         string
	OrderID        string
	DiscountAmount int64
}

// ConfirmVoucherResponse バウチャー確定レスポンス
// Committedがtrueの場合は割引が確定している。同一注文IDでの再送では
// ReasonにAlreadyRedeemedが入り、元の確定結果が返る
type ConfirmVoucherResponse struct {
	VoucherID      string
	Committed      bool
	Reason         string
	RedemptionID   string
	DiscountAmount int64
}

// CreateVoucherRequest バウチャー作成リクエスト
type CreateVoucherRequest struct {
	VoucherID            string
	Kind                 string
	DiscountModel        string
	DiscountAmount       int64
	MaxDiscountAmount    int64
	ShippingWaiverAmount int64
	MinOrderValue        int64
	UsageLimitTotal      int
	UsageLimitPerUser    int
	ValidFrom            time.Time
	ValidUntil           time.Time
}

// CreateVoucherResponse バウチャー作成レスポンス
type CreateVoucherResponse struct {
	VoucherID string
	CreatedAt time.Time
}

// GetVoucherRequest バウチャー取得リクエスト
type GetVoucherRequest struct {
	VoucherID string
}

// GetVoucherResponse バウチャー取得レスポンス
type GetVoucherResponse struct {
	VoucherID            string
	Kind                 string
	DiscountModel        string
	DiscountAmount       int64
	MaxDiscountAmount    int64
	ShippingWaiverAmount int64
	MinOrderValue        int64
	UsageLimitTotal      int
	UsageLimitPerUser    int
	UsageCountTotal      int
	RemainingUses        int
	ValidFrom            time.Time
	ValidUntil           time.Time
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ListVouchersRequest バウチャー一覧取得リクエスト
type ListVouchersRequest struct {
	Limit  int
	Offset int
}

// ListVouchersResponse バウチャー一覧取得レスポンス
type ListVouchersResponse struct {
	Vouchers []*domain.Voucher
	Total    int
	Limit    int
	Offset   int
}

// DeactivateVoucherRequest バウチャー無効化リクエスト
type DeactivateVoucherRequest struct {
	VoucherID string
}

// DeactivateVoucherResponse バウチャー無効化レスポンス
type DeactivateVoucherResponse struct {
	VoucherID     string
	Active        bool
	DeactivatedAt time.Time
}

// DeleteVoucherRequest バウチャー削除（論理削除）リクエスト
type DeleteVoucherRequest struct {
	VoucherID string
}

// DeleteVoucherResponse バウチャー削除レスポンス
type DeleteVoucherResponse struct {
	VoucherID string
	DeletedAt time.Time
}

// ListRedemptionsRequest 引き換え台帳取得リクエスト
type ListRedemptionsRequest struct {
	VoucherID string
	Limit     int
	Offset    int
}

// ListRedemptionsResponse 引き換え台帳取得レスポンス
type ListRedemptionsResponse struct {
	Redemptions []*domain.Redemption
	Total       int
	Limit       int
	Offset      int
}

// ListRejectionReasonsResponse 拒否理由一覧レスポンス
type ListRejectionReasonsResponse struct {
	Reasons []string
}
