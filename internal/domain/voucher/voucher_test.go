package voucher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoucher(t *testing.T) {
	now := time.Now()
	validFrom := now.Add(-24 * time.Hour)
	validUntil := now.Add(24 * time.Hour)

	tests := []struct {
		name                 string
		id                   string
		kind                 Kind
		discountModel        DiscountModel
		discountAmount       int64
		maxDiscountAmount    int64
		shippingWaiverAmount int64
		minOrderValue        int64
		usageLimitTotal      int
		usageLimitPerUser    int
		validFrom            time.Time
		validUntil           time.Time
		wantErr              bool
	}{
		{
			name:              "正常系: 固定額割引バウチャーの作成",
			id:                "SAVE500",
			kind:              KindDiscount,
			discountModel:     DiscountModelFixed,
			discountAmount:    500,
			minOrderValue:     1000,
			usageLimitTotal:   100,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           false,
		},
		{
			name:              "正常系: 割合割引バウチャーの作成",
			id:                "SAVE10",
			kind:              KindDiscount,
			discountModel:     DiscountModelPercentage,
			discountAmount:    10,
			maxDiscountAmount: 20000,
			minOrderValue:     50000,
			usageLimitTotal:   2,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           false,
		},
		{
			name:                 "正常系: 送料免除バウチャーの作成",
			id:                   "FREESHIP",
			kind:                 KindShippingWaiver,
			shippingWaiverAmount: 800,
			usageLimitTotal:      50,
			usageLimitPerUser:    3,
			validFrom:            validFrom,
			validUntil:           validUntil,
			wantErr:              false,
		},
		{
			name:              "異常系: 小文字を含むID",
			id:                "save10",
			kind:              KindDiscount,
			discountModel:     DiscountModelFixed,
			discountAmount:    500,
			usageLimitTotal:   100,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           true,
		},
		{
			name:              "異常系: 空のID",
			id:                "",
			kind:              KindDiscount,
			discountModel:     DiscountModelFixed,
			discountAmount:    500,
			usageLimitTotal:   100,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           true,
		},
		{
			name:              "異常系: 割引額が0",
			id:                "SAVE0",
			kind:              KindDiscount,
			discountModel:     DiscountModelFixed,
			discountAmount:    0,
			usageLimitTotal:   100,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           true,
		},
		{
			name:              "異常系: 割合が100を超える",
			id:                "SAVE101",
			kind:              KindDiscount,
			discountModel:     DiscountModelPercentage,
			discountAmount:    101,
			maxDiscountAmount: 101,
			usageLimitTotal:   100,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           true,
		},
		{
			name:              "異常系: 割合割引で上限額が割引率未満",
			id:                "SAVE20",
			kind:              KindDiscount,
			discountModel:     DiscountModelPercentage,
			discountAmount:    20,
			maxDiscountAmount: 19,
			usageLimitTotal:   100,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           true,
		},
		{
			name:              "異常系: 全体使用上限が0",
			id:                "SAVE500",
			kind:              KindDiscount,
			discountModel:     DiscountModelFixed,
			discountAmount:    500,
			usageLimitTotal:   0,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           true,
		},
		{
			name:              "異常系: ユーザー単位使用上限が0",
			id:                "SAVE500",
			kind:              KindDiscount,
			discountModel:     DiscountModelFixed,
			discountAmount:    500,
			usageLimitTotal:   100,
			usageLimitPerUser: 0,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           true,
		},
		{
			name:              "異常系: 有効期限が開始日時と同一",
			id:                "SAVE500",
			kind:              KindDiscount,
			discountModel:     DiscountModelFixed,
			discountAmount:    500,
			usageLimitTotal:   100,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validFrom,
			wantErr:           true,
		},
		{
			name:              "異常系: 無効な種別",
			id:                "SAVE500",
			kind:              Kind("invalid"),
			discountModel:     DiscountModelFixed,
			discountAmount:    500,
			usageLimitTotal:   100,
			usageLimitPerUser: 1,
			validFrom:         validFrom,
			validUntil:        validUntil,
			wantErr:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewVoucher(
				tt.id,
				tt.kind,
				tt.discountModel,
				tt.discountAmount,
				tt.maxDiscountAmount,
				tt.shippingWaiverAmount,
				tt.minOrderValue,
				tt.usageLimitTotal,
				tt.usageLimitPerUser,
				tt.validFrom,
				tt.validUntil,
			)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, got.ID())
				assert.Equal(t, tt.kind, got.Kind())
				assert.Equal(t, 0, got.UsageCountTotal())
				assert.True(t, got.Active())
				assert.False(t, got.Deleted())
			}
		})
	}
}

func TestVoucher_RemainingUses(t *testing.T) {
	now := time.Now()
	v := MustNewVoucher("SAVE500", KindDiscount, DiscountModelFixed, 500, 0, 0, 0, 3, 1, now.Add(-time.Hour), now.Add(time.Hour))

	assert.Equal(t, 3, v.RemainingUses())

	v.SetUsageCountTotal(2)
	assert.Equal(t, 1, v.RemainingUses())

	// 管理編集で上限が既存の使用回数より下げられた場合は0を返す
	v.SetUsageCountTotal(5)
	assert.Equal(t, 0, v.RemainingUses())
}

func TestVoucher_Deactivate(t *testing.T) {
	now := time.Now()
	v := MustNewVoucher("SAVE500", KindDiscount, DiscountModelFixed, 500, 0, 0, 0, 3, 1, now.Add(-time.Hour), now.Add(time.Hour))

	require.True(t, v.Active())
	v.Deactivate()
	assert.False(t, v.Active())

	v.Activate()
	assert.True(t, v.Active())
}

func TestVoucher_SoftDelete(t *testing.T) {
	now := time.Now()
	v := MustNewVoucher("SAVE500", KindDiscount, DiscountModelFixed, 500, 0, 0, 0, 3, 1, now.Add(-time.Hour), now.Add(time.Hour))

	require.False(t, v.Deleted())
	v.SoftDelete()
	assert.True(t, v.Deleted())
}
