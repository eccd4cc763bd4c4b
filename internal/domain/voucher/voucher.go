package voucher

import (
	"errors"
	"time"
)

// Voucher プロモーションバウチャーエンティティ
type Voucher struct {
	id                   string
	kind                 Kind
	discountModel        DiscountModel
	discountAmount       int64 // 固定額の場合は最小通貨単位、割合の場合はパーセント値
	maxDiscountAmount    int64 // 割合割引の上限額（最小通貨単位）
	shippingWaiverAmount int64 // 送料免除額（最小通貨単位）
	minOrderValue        int64 // 適用に必要な注文小計の下限（最小通貨単位）
	usageLimitTotal      int   // 全ユーザー合計の使用上限
	usageLimitPerUser    int   // ユーザー単位の使用上限
	usageCountTotal      int
	validFrom            time.Time
	validUntil           time.Time
	active               bool
	deleted              bool
	createdAt            time.Time
	updatedAt            time.Time
}

// NewVoucher 新しいVoucherエンティティを作成
func NewVoucher(
	id string,
	kind Kind,
	discountModel DiscountModel,
	discountAmount int64,
	maxDiscountAmount int64,
	shippingWaiverAmount int64,
	minOrderValue int64,
	usageLimitTotal int,
	usageLimitPerUser int,
	validFrom time.Time,
	validUntil time.Time,
) (*Voucher, error) {
	if !isValidVoucherID(id) {
		return nil, errors.New("invalid voucher id: must be uppercase alphanumeric")
	}
	if !kind.Valid() {
		return nil, errors.New("invalid voucher kind")
	}
	if minOrderValue < 0 {
		return nil, errors.New("min order value must be non-negative")
	}
	if usageLimitTotal <= 0 {
		return nil, errors.New("usage limit total must be positive")
	}
	if usageLimitPerUser <= 0 {
		return nil, errors.New("usage limit per user must be positive")
	}
	if !validUntil.After(validFrom) {
		return nil, errors.New("valid_until must be after valid_from")
	}

	switch kind {
	case KindDiscount:
		if !discountModel.Valid() {
			return nil, errors.New("invalid discount model")
		}
		if discountAmount <= 0 {
			return nil, errors.New("discount amount must be positive")
		}
		if discountModel == DiscountModelPercentage {
			if discountAmount > 100 {
				return nil, errors.New("percentage discount must be in (0, 100]")
			}
			if maxDiscountAmount < discountAmount {
				return nil, errors.New("max discount amount must be >= discount amount")
			}
		}
	case KindShippingWaiver:
		if shippingWaiverAmount < 0 {
			return nil, errors.New("shipping waiver amount must be non-negative")
		}
	}

	now := time.Now()
	return &Voucher{
		id:                   id,
		kind:                 kind,
		discountModel:        discountModel,
		discountAmount:       discountAmount,
		maxDiscountAmount:    maxDiscountAmount,
		shippingWaiverAmount: shippingWaiverAmount,
		minOrderValue:        minOrderValue,
		usageLimitTotal:      usageLimitTotal,
		usageLimitPerUser:    usageLimitPerUser,
		usageCountTotal:      0,
		validFrom:            validFrom,
		validUntil:           validUntil,
		active:               true,
		deleted:              false,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// isValidVoucherID バウチャーIDが大文字英数字のみかチェック
func isValidVoucherID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// ID バウチャーIDを返す
func (v *Voucher) ID() string {
	return v.id
}

// Kind バウチャー種別を返す
func (v *Voucher) Kind() Kind {
	return v.kind
}

// DiscountModel 割引モデルを返す
func (v *Voucher) DiscountModel() DiscountModel {
	return v.discountModel
}

// DiscountAmount 割引額（または割引率）を返す
func (v *Voucher) DiscountAmount() int64 {
	return v.discountAmount
}

// MaxDiscountAmount 割合割引の上限額を返す
func (v *Voucher) MaxDiscountAmount() int64 {
	return v.maxDiscountAmount
}

// ShippingWaiverAmount 送料免除額を返す
func (v *Voucher) ShippingWaiverAmount() int64 {
	return v.shippingWaiverAmount
}

// MinOrderValue 注文小計の下限を返す
func (v *Voucher) MinOrderValue() int64 {
	return v.minOrderValue
}

// UsageLimitTotal 全体の使用上限を返す
func (v *Voucher) UsageLimitTotal() int {
	return v.usageLimitTotal
}

// UsageLimitPerUser ユーザー単位の使用上限を返す
func (v *Voucher) UsageLimitPerUser() int {
	return v.usageLimitPerUser
}

// UsageCountTotal 現在の使用回数を返す
func (v *Voucher) UsageCountTotal() int {
	return v.usageCountTotal
}

// ValidFrom 有効開始日時を返す
func (v *Voucher) ValidFrom() time.Time {
	return v.validFrom
}

// ValidUntil 有効期限を返す
func (v *Voucher) ValidUntil() time.Time {
	return v.validUntil
}

// Active 有効フラグを返す
func (v *Voucher) Active() bool {
	return v.active
}

// Deleted 論理削除フラグを返す
func (v *Voucher) Deleted() bool {
	return v.deleted
}

// CreatedAt 作成日時を返す
func (v *Voucher) CreatedAt() time.Time {
	return v.createdAt
}

// UpdatedAt 更新日時を返す
func (v *Voucher) UpdatedAt() time.Time {
	return v.updatedAt
}

// RemainingUses 残り使用可能回数を返す（上限が既に超過している場合は0）
func (v *Voucher) RemainingUses() int {
	remaining := v.usageLimitTotal - v.usageCountTotal
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Deactivate バウチャーを無効化（管理キルスイッチ）
func (v *Voucher) Deactivate() {
	v.active = false
	v.updatedAt = time.Now()
}

// Activate バウチャーを再有効化
func (v *Voucher) Activate() {
	v.active = true
	v.updatedAt = time.Now()
}

// SoftDelete バウチャーを論理削除（物理削除は行わない）
func (v *Voucher) SoftDelete() {
	v.deleted = true
	v.updatedAt = time.Now()
}

// SetUsageCountTotal 使用回数を設定（リポジトリから読み込んだ際に使用）
func (v *Voucher) SetUsageCountTotal(count int) {
	v.usageCountTotal = count
}

// SetActive 有効フラグを設定（リポジトリから読み込んだ際に使用）
func (v *Voucher) SetActive(active bool) {
	v.active = active
}

// SetDeleted 論理削除フラグを設定（リポジトリから読み込んだ際に使用）
func (v *Voucher) SetDeleted(deleted bool) {
	v.deleted = deleted
}

// SetTimestamps 作成日時と更新日時を設定（リポジトリから読み込んだ際に使用）
func (v *Voucher) SetTimestamps(createdAt, updatedAt time.Time) {
	v.createdAt = createdAt
	v.updatedAt = updatedAt
}

// MustNewVoucher テスト用ヘルパー: NewVoucherを呼び出し、エラーが発生した場合はpanicする
func MustNewVoucher(
	id string,
	kind Kind,
	discountModel DiscountModel,
	discountAmount int64,
	maxDiscountAmount int64,
	shippingWaiverAmount int64,
	minOrderValue int64,
	usageLimitTotal int,
	usageLimitPerUser int,
	validFrom time.Time,
	validUntil time.Time,
) *Voucher {
	v, err := NewVoucher(id, kind, discountModel, discountAmount, maxDiscountAmount, shippingWaiverAmount, minOrderValue, usageLimitTotal, usageLimitPerUser, validFrom, validUntil)
	if err != nil {
		panic(err)
	}
	return v
}
