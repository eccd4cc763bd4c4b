package voucher

// CalculateDiscount 承認済みバウチャーの割引額を計算する純粋関数
//
// 全ての金額は最小通貨単位のint64で扱う。割合割引は整数除算で切り捨てるため、
// 計算結果が数学的な正確値を超えることはない。返り値は常に0以上で、
// 割引は注文小計（送料免除の場合は実送料）を超えない。
// Evaluateが承認した後にのみ呼び出される。
func CalculateDiscount(v *Voucher, orderSubtotal, shippingCost int64) int64 {
	switch v.kind {
	case KindDiscount:
		switch v.discountModel {
		case DiscountModelFixed:
			return min64(v.discountAmount, orderSubtotal)
		case DiscountModelPercentage:
			raw := orderSubtotal * v.discountAmount / 100
			return min64(min64(raw, v.maxDiscountAmount), orderSubtotal)
		}
	case KindShippingWaiver:
		return min64(v.shippingWaiverAmount, shippingCost)
	}
	return 0
}

// min64 2つのint64の小さい方を返す
func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
