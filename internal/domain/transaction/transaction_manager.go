package transaction

import (
	"context"
	"database/sql"
)

// TransactionManager トランザクション管理インターフェース
//
// 使用回数の条件付きインクリメントと引き換え台帳への追記は、
// 同一トランザクション内で不可分に実行されなければならない
type TransactionManager interface {
	// WithTransaction トランザクション内で関数を実行
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}
