package handler

// CheckVoucherRequest バウチャー適格性チェックリクエスト
// @Description バウチャー適格性チェックリクエスト
type CheckVoucherRequest struct {
	VoucherID     string `json:"voucher_id" example:"SAVE10"`
	UserID        string `json:"user_id" example:"user123"`
	OrderSubtotal string `json:"order_subtotal" example:"120000"`
	ShippingCost  string `json:"shipping_cost" example:"5000"`
}

// CheckVoucherResponse バウチャー適格性チェックレスポンス
// @Description バウチャー適格性チェックレスポンス
type CheckVoucherResponse struct {
	VoucherID      string `json:"voucher_id" example:"SAVE10"`
	Approved       bool   `json:"approved" example:"true"`
	Reason         string `json:"reason,omitempty" example:"Expired"`
	Shortfall      string `json:"shortfall,omitempty" example:"3000"`
	DiscountAmount string `json:"discount_amount,omitempty" example:"12000"`
}

// ConfirmVoucherRequest バウチャー確定リクエスト
// @Description バウチャー確定リクエスト
type ConfirmVoucherRequest struct {
	VoucherID      string `json:"voucher_id" example:"SAVE10"`
	UserID         string `json:"user_id" example:"user123"`
	OrderID        string `json:"order_id" example:"order456"`
	DiscountAmount string `json:"discount_amount" example:"12000"`
}

// ConfirmVoucherResponse バウチャー確定レスポンス
// @Description バウチャー確定レスポンス
type ConfirmVoucherResponse struct {
	VoucherID      string `json:"voucher_id" example:"SAVE10"`
	Committed      bool   `json:"committed" example:"true"`
	Reason         string `json:"reason,omitempty" example:"AlreadyRedeemed"`
	RedemptionID   string `json:"redemption_id,omitempty" example:"red_123"`
	DiscountAmount string `json:"discount_amount,omitempty" example:"12000"`
}

// ListRejectionReasonsResponse 拒否理由一覧レスポンス
// @Description 拒否理由一覧レスポンス
type ListRejectionReasonsResponse struct {
	Reasons []string `json:"reasons"`
}

// CreateVoucherRequest バウチャー作成リクエスト
// @Description バウチャー作成リクエスト
type CreateVoucherRequest struct {
	VoucherID            string `json:"voucher_id" example:"SAVE10"`
	Kind                 string `json:"kind" example:"discount" enums:"discount,shipping_waiver"`
	DiscountModel        string `json:"discount_model" example:"percentage" enums:"fixed,percentage"`
	DiscountAmount       string `json:"discount_amount" example:"10"`
	MaxDiscountAmount    string `json:"max_discount_amount" example:"20000"`
	ShippingWaiverAmount string `json:"shipping_waiver_amount" example:"0"`
	MinOrderValue        string `json:"min_order_value" example:"50000"`
	UsageLimitTotal      int    `json:"usage_limit_total" example:"1000"`
	UsageLimitPerUser    int    `json:"usage_limit_per_user" example:"1"`
	ValidFrom            string `json:"valid_from" example:"2024-01-01T00:00:00Z"`
	ValidUntil           string `json:"valid_until" example:"2024-12-31T23:59:59Z"`
}

// CreateVoucherResponse バウチャー作成レスポンス
// @Description バウチャー作成レスポンス
type CreateVoucherResponse struct {
	VoucherID string `json:"voucher_id" example:"SAVE10"`
	CreatedAt string `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// GetVoucherResponse バウチャー取得レスポンス
// @Description バウチャー取得レスポンス
type GetVoucherResponse struct {
	VoucherID            string `json:"voucher_id" example:"SAVE10"`
	Kind                 string `json:"kind" example:"discount"`
	DiscountModel        string `json:"discount_model" example:"percentage"`
	DiscountAmount       string `json:"discount_amount" example:"10"`
	MaxDiscountAmount    string `json:"max_discount_amount" example:"20000"`
	ShippingWaiverAmount string `json:"shipping_waiver_amount" example:"0"`
	MinOrderValue        string `json:"min_order_value" example:"50000"`
	UsageLimitTotal      int    `json:"usage_limit_total" example:"1000"`
	UsageLimitPerUser    int    `json:"usage_limit_per_user" example:"1"`
	UsageCountTotal      int    `json:"usage_count_total" example:"42"`
	RemainingUses        int    `json:"remaining_uses" example:"958"`
	ValidFrom            string `json:"valid_from" example:"2024-01-01T00:00:00Z"`
	ValidUntil           string `json:"valid_until" example:"2024-12-31T23:59:59Z"`
	Active               bool   `json:"active" example:"true"`
	CreatedAt            string `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt            string `json:"updated_at" example:"2024-01-01T00:00:00Z"`
}

// ListVouchersResponse バウチャー一覧取得レスポンス
// @Description バウチャー一覧取得レスポンス
type ListVouchersResponse struct {
	Vouchers []VoucherItem `json:"vouchers"`
	Total    int           `json:"total" example:"100"`
	Limit    int           `json:"limit" example:"50"`
	Offset   int           `json:"offset" example:"0"`
}

// VoucherItem バウチャーアイテム
// @Description バウチャーアイテム
type VoucherItem struct {
	VoucherID       string `json:"voucher_id" example:"SAVE10"`
	Kind            string `json:"kind" example:"discount"`
	DiscountModel   string `json:"discount_model" example:"percentage"`
	DiscountAmount  string `json:"discount_amount" example:"10"`
	MinOrderValue   string `json:"min_order_value" example:"50000"`
	UsageLimitTotal int    `json:"usage_limit_total" example:"1000"`
	UsageCountTotal int    `json:"usage_count_total" example:"42"`
	ValidFrom       string `json:"valid_from" example:"2024-01-01T00:00:00Z"`
	ValidUntil      string `json:"valid_until" example:"2024-12-31T23:59:59Z"`
	Active          bool   `json:"active" example:"true"`
}

// DeactivateVoucherResponse バウチャー無効化レスポンス
// @Description バウチャー無効化レスポンス
type DeactivateVoucherResponse struct {
	VoucherID     string `json:"voucher_id" example:"SAVE10"`
	Active        bool   `json:"active" example:"false"`
	DeactivatedAt string `json:"deactivated_at" example:"2024-06-01T00:00:00Z"`
}

// DeleteVoucherResponse バウチャー削除レスポンス
// @Description バウチャー削除レスポンス
type DeleteVoucherResponse struct {
	VoucherID string `json:"voucher_id" example:"SAVE10"`
	DeletedAt string `json:"deleted_at" example:"2024-06-01T00:00:00Z"`
}

// ListRedemptionsResponse 引き換え台帳取得レスポンス
// @Description 引き換え台帳取得レスポンス
type ListRedemptionsResponse struct {
	Redemptions []RedemptionItem `json:"redemptions"`
	Total       int              `json:"total" example:"100"`
	Limit       int              `json:"limit" example:"50"`
	Offset      int              `json:"offset" example:"0"`
}

// RedemptionItem 引き換えアイテム
// @Description 引き換えアイテム
type RedemptionItem struct {
	RedemptionID   string `json:"redemption_id" example:"red_123"`
	VoucherID      string `json:"voucher_id" example:"SAVE10"`
	UserID         string `json:"user_id" example:"user123"`
	OrderID        string `json:"order_id" example:"order456"`
	DiscountAmount string `json:"discount_amount" example:"12000"`
	RedeemedAt     string `json:"redeemed_at" example:"2024-06-01T00:00:00Z"`
}
