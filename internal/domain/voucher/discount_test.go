package voucher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDiscount(t *testing.T) {
	now := time.Now()
	validFrom := now.Add(-24 * time.Hour)
	validUntil := now.Add(24 * time.Hour)

	tests := []struct {
		name          string
		voucher       *Voucher
		orderSubtotal int64
		shippingCost  int64
		want          int64
	}{
		{
			name:          "正常系: 固定額割引",
			voucher:       MustNewVoucher("SAVE15000", KindDiscount, DiscountModelFixed, 15000, 0, 0, 0, 10, 1, validFrom, validUntil),
			orderSubtotal: 100000,
			want:          15000,
		},
		{
			name:          "正常系: 固定額割引は注文小計を超えない",
			voucher:       MustNewVoucher("SAVE15000", KindDiscount, DiscountModelFixed, 15000, 0, 0, 0, 10, 1, validFrom, validUntil),
			orderSubtotal: 10000,
			want:          10000,
		},
		{
			name:          "正常系: 割合割引",
			voucher:       MustNewVoucher("SAVE20", KindDiscount, DiscountModelPercentage, 20, 50000, 0, 0, 10, 1, validFrom, validUntil),
			orderSubtotal: 100000,
			want:          20000,
		},
		{
			name:          "正常系: 割合割引は上限額でキャップ",
			voucher:       MustNewVoucher("SAVE20", KindDiscount, DiscountModelPercentage, 20, 50000, 0, 0, 10, 1, validFrom, validUntil),
			orderSubtotal: 300000,
			want:          50000,
		},
		{
			name:          "正常系: 割合割引は切り捨て",
			voucher:       MustNewVoucher("SAVE3", KindDiscount, DiscountModelPercentage, 3, 100000, 0, 0, 10, 1, validFrom, validUntil),
			orderSubtotal: 99,
			want:          2, // 99 * 3 / 100 = 2.97 → 2
		},
		{
			name:          "正常系: 送料免除",
			voucher:       MustNewVoucher("FREESHIP", KindShippingWaiver, DiscountModelNone, 0, 0, 800, 0, 10, 1, validFrom, validUntil),
			orderSubtotal: 100000,
			shippingCost:  800,
			want:          800,
		},
		{
			name:          "正常系: 送料免除は実送料を超えない",
			voucher:       MustNewVoucher("FREESHIP", KindShippingWaiver, DiscountModelNone, 0, 0, 800, 0, 10, 1, validFrom, validUntil),
			orderSubtotal: 100000,
			shippingCost:  500,
			want:          500,
		},
		{
			name:          "正常系: 送料が0なら送料免除も0",
			voucher:       MustNewVoucher("FREESHIP", KindShippingWaiver, DiscountModelNone, 0, 0, 800, 0, 10, 1, validFrom, validUntil),
			orderSubtotal: 100000,
			shippingCost:  0,
			want:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDiscount(tt.voucher, tt.orderSubtotal, tt.shippingCost)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}
