package voucher

import (
	"context"
)

// VoucherRepository バウチャーリポジトリインターフェース
//
// (usageCountTotal, redemptions)の組はこのリポジトリが所有し、
// CompareAndAppendRedemption以外から書き換えてはならない
type VoucherRepository interface {
	// Create バウチャーを作成（同じIDが存在する場合はErrVoucherAlreadyExists）
	Create(ctx context.Context, v *Voucher) error

	// FindByID IDでバウチャーを取得（論理削除済みも含めて返す。見つからない場合はErrVoucherNotFound）
	FindByID(ctx context.Context, id string) (*Voucher, error)

	// FindAll バウチャー一覧を取得（ページネーション対応、総件数も返す）
	FindAll(ctx context.Context, limit, offset int) ([]*Voucher, int, error)

	// Update バウチャーの管理フラグ（active, deleted）を更新
	Update(ctx context.Context, v *Voucher) error

	// CountUserRedemptions 台帳におけるユーザーの引き換え件数を取得
	CountUserRedemptions(ctx context.Context, voucherID, userID string) (int, error)

	// FindRedemptionByOrderID 注文IDで引き換え記録を取得（冪等性チェック用。
	// 見つからない場合はErrRedemptionNotFound）
	FindRedemptionByOrderID(ctx context.Context, orderID string) (*Redemption, error)

	// CompareAndAppendRedemption 使用回数がexpectedUsageCountと一致する場合のみ、
	// 使用回数のインクリメントと台帳への追記を単一の不可分な操作として実行する。
	// 一致しない場合はErrUsageCountConflict、注文IDが重複する場合はErrOrderAlreadyRedeemed
	CompareAndAppendRedemption(ctx context.Context, voucherID string, expectedUsageCount int, r *Redemption) error

	// ListRedemptions バウチャーの引き換え台帳を取得（ページネーション対応、総件数も返す）
	ListRedemptions(ctx context.Context, voucherID string, limit, offset int) ([]*Redemption, int, error)
}
