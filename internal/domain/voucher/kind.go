package voucher

import (
	"fmt"
)

// Kind バウチャー種別を表す値オブジェクト
type Kind string

const (
	KindDiscount       Kind = "discount"        // 割引バウチャー
	KindShippingWaiver Kind = "shipping_waiver" // 送料免除バウチャー
)

// NewKind 新しいKindを作成
func NewKind(s string) (Kind, error) {
	switch s {
	case "discount", "shipping_waiver":
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid voucher kind: %s", s)
	}
}

// String 文字列表現を返す
func (k Kind) String() string {
	return string(k)
}

// Valid 有効なバウチャー種別かどうかを返す
func (k Kind) Valid() bool {
	switch k {
	case KindDiscount, KindShippingWaiver:
		return true
	default:
		return false
	}
}
