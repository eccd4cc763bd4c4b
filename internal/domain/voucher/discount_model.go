package voucher

import (
	"fmt"
)

// DiscountModel 割引モデルを表す値オブジェクト
type DiscountModel string

const (
	DiscountModelFixed      DiscountModel = "fixed"      // 固定額割引
	DiscountModelPercentage DiscountModel = "percentage" // 割合割引（上限額付き）
	DiscountModelNone       DiscountModel = ""           // 送料免除バウチャーには割引モデルなし
)

// NewDiscountModel 新しいDiscountModelを作成
func NewDiscountModel(s string) (DiscountModel, error) {
	switch s {
	case "fixed", "percentage":
		return DiscountModel(s), nil
	case "":
		return DiscountModelNone, nil
	default:
		return "", fmt.Errorf("invalid discount model: %s", s)
	}
}

// String 文字列表現を返す
func (m DiscountModel) String() string {
	return string(m)
}

// Valid 有効な割引モデルかどうかを返す
func (m DiscountModel) Valid() bool {
	switch m {
	case DiscountModelFixed, DiscountModelPercentage:
		return true
	default:
		return false
	}
}
