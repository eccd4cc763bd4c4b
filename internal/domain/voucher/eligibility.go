package voucher

import (
	"time"
)

// RejectionReason 適用拒否理由を表す値オブジェクト
// クライアント側のローカライズに使用される固定の列挙値
type RejectionReason string

const (
	ReasonNotFound                RejectionReason = "NotFound"
	ReasonInactive                RejectionReason = "Inactive"
	ReasonNotStarted              RejectionReason = "NotStarted"
	ReasonExpired                 RejectionReason = "Expired"
	ReasonBelowMinimumOrderValue  RejectionReason = "BelowMinimumOrderValue"
	ReasonGlobalLimitReached      RejectionReason = "GlobalLimitReached"
	ReasonPerUserLimitReached     RejectionReason = "PerUserLimitReached"
	ReasonLimitExceededAtCommit   RejectionReason = "LimitExceededAtCommit"
	ReasonAlreadyRedeemed         RejectionReason = "AlreadyRedeemed"
	ReasonCommitConflictExhausted RejectionReason = "CommitConflictExhausted"
)

// String 文字列表現を返す
func (r RejectionReason) String() string {
	return string(r)
}

// RejectionReasons 全ての拒否理由を列挙順に返す
func RejectionReasons() []RejectionReason {
	return []RejectionReason{
		ReasonNotFound,
		ReasonInactive,
		ReasonNotStarted,
		ReasonExpired,
		ReasonBelowMinimumOrderValue,
		ReasonGlobalLimitReached,
		ReasonPerUserLimitReached,
		ReasonLimitExceededAtCommit,
		ReasonAlreadyRedeemed,
		ReasonCommitConflictExhausted,
	}
}

// EligibilityResult 適格性評価の結果
// Approvedがfalseの場合はReasonに拒否理由が入る
type EligibilityResult struct {
	Approved  bool
	Reason    RejectionReason
	Shortfall int64 // BelowMinimumOrderValueの場合、不足額（minOrderValue - orderSubtotal）
	Voucher   *Voucher
}

// Evaluate バウチャーが(ユーザー, 注文小計, 送料)に適用可能かを評価する純粋関数
//
// チェック順序は契約の一部（最初の失敗が勝ち、ユーザーに表示されるメッセージを決める）:
// NotFound → Inactive → NotStarted → Expired → BelowMinimumOrderValue →
// GlobalLimitReached → PerUserLimitReached → 承認。
// validFrom / validUntil の境界時刻はどちらも承認（両端含む）。
// userUseCountは引き換え台帳におけるこのユーザーのエントリ数。
// 副作用はなく、カート編集中のプレビューとして何度でも呼び出せる。
func Evaluate(v *Voucher, userID string, orderSubtotal, shippingCost int64, userUseCount int, now time.Time) EligibilityResult {
	if v == nil || v.deleted {
		return rejected(ReasonNotFound)
	}
	if !v.active {
		return rejected(ReasonInactive)
	}
	if now.Before(v.validFrom) {
		return rejected(ReasonNotStarted)
	}
	if now.After(v.validUntil) {
		return rejected(ReasonExpired)
	}
	if orderSubtotal < v.minOrderValue {
		r := rejected(ReasonBelowMinimumOrderValue)
		r.Shortfall = v.minOrderValue - orderSubtotal
		return r
	}
	if v.usageCountTotal >= v.usageLimitTotal {
		return rejected(ReasonGlobalLimitReached)
	}
	if userUseCount >= v.usageLimitPerUser {
		return rejected(ReasonPerUserLimitReached)
	}

	return EligibilityResult{
		Approved: true,
		Voucher:  v,
	}
}

// EvaluateLimits 確定直前に使用回数上限のみを再検査する純粋関数
//
// チェック時点のスナップショットではなく現在の永続状態に対して呼び出すことで、
// チェックと確定の間に他の引き換えが割り込む隙を塞ぐ。上限超過は
// LimitExceededAtCommitとして返す（チェック時の拒否理由とは区別される）
func EvaluateLimits(v *Voucher, userUseCount int) EligibilityResult {
	if v == nil || v.deleted {
		return rejected(ReasonNotFound)
	}
	if v.usageCountTotal >= v.usageLimitTotal {
		return rejected(ReasonLimitExceededAtCommit)
	}
	if userUseCount >= v.usageLimitPerUser {
		return rejected(ReasonLimitExceededAtCommit)
	}

	return EligibilityResult{
		Approved: true,
		Voucher:  v,
	}
}

// rejected 指定した理由の拒否結果を作成
func rejected(reason RejectionReason) EligibilityResult {
	return EligibilityResult{
		Approved: false,
		Reason:   reason,
	}
}
