package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{
			name:    "正常系: discount",
			input:   "discount",
			want:    KindDiscount,
			wantErr: false,
		},
		{
			name:    "正常系: shipping_waiver",
			input:   "shipping_waiver",
			want:    KindShippingWaiver,
			wantErr: false,
		},
		{
			name:    "異常系: 無効な値",
			input:   "invalid",
			want:    "",
			wantErr: true,
		},
		{
			name:    "異常系: 空文字",
			input:   "",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKind_Valid(t *testing.T) {
	tests := []struct {
		name string
		k    Kind
		want bool
	}{
		{
			name: "正常系: discount",
			k:    KindDiscount,
			want: true,
		},
		{
			name: "正常系: shipping_waiver",
			k:    KindShippingWaiver,
			want: true,
		},
		{
			name: "異常系: 無効な値",
			k:    Kind("invalid"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.k.Valid()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "discount", KindDiscount.String())
	assert.Equal(t, "shipping_waiver", KindShippingWaiver.String())
}
