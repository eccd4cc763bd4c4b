package voucher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRedemption(t *testing.T) {
	r := NewRedemption("red_123", "SAVE10", "user123", "order456", 20000)

	assert.Equal(t, "red_123", r.RedemptionID())
	assert.Equal(t, "SAVE10", r.VoucherID())
	assert.Equal(t, "user123", r.UserID())
	assert.Equal(t, "order456", r.OrderID())
	assert.Equal(t, int64(20000), r.DiscountAmount())
	assert.WithinDuration(t, time.Now(), r.RedeemedAt(), time.Second)
}

func TestRedemption_SetRedeemedAt(t *testing.T) {
	r := NewRedemption("red_123", "SAVE10", "user123", "order456", 20000)

	stored := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.SetRedeemedAt(stored)
	assert.Equal(t, stored, r.RedeemedAt())
}
