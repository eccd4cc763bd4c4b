package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"voucher-server/internal/domain/transaction"
	"voucher-server/internal/domain/voucher"
)

// MySQLの重複エントリエラーコード
const mysqlErrDuplicateEntry = 1062

// VoucherRepository MySQL実装のVoucherRepository
type VoucherRepository struct {
	db     *DB
	tm     transaction.TransactionManager
	tracer trace.Tracer
}

// NewVoucherRepository 新しいVoucherRepositoryを作成
func NewVoucherRepository(db *DB) *VoucherRepository {
	return &VoucherRepository{
		db:     db,
		tm:     NewTransactionManager(db),
		tracer: otel.Tracer("voucher-repository"),
	}
}

// Create バウチャーを作成
func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) error {
	ctx, span := r.tracer.Start(ctx, "VoucherRepository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.voucher_id", v.ID()),
		attribute.String("db.voucher_kind", v.Kind().String()),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "vouchers"),
	)

	query := `
		INSERT INTO vouchers (
			id, kind, discount_model, discount_amount, max_discount_amount,
			shipping_waiver_amount, min_order_value, usage_limit_total,
			usage_limit_per_user, usage_count_total, valid_from, valid_until,
			active, deleted, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		v.ID(),
		v.Kind().String(),
		v.DiscountModel().String(),
		v.DiscountAmount(),
		v.MaxDiscountAmount(),
		v.ShippingWaiverAmount(),
		v.MinOrderValue(),
		v.UsageLimitTotal(),
		v.UsageLimitPerUser(),
		v.UsageCountTotal(),
		v.ValidFrom(),
		v.ValidUntil(),
		v.Active(),
		v.Deleted(),
		v.CreatedAt(),
		v.UpdatedAt(),
	)

	if err != nil {
		var mysqlErr *gomysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			span.SetStatus(otelcodes.Ok, "voucher already exists")
			return voucher.ErrVoucherAlreadyExists
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to create voucher: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "voucher created")
	return nil
}

// FindByID IDでバウチャーを取得（論理削除済みも含めて返す）
func (r *VoucherRepository) FindByID(ctx context.Context, id string) (*voucher.Voucher, error) {
	ctx, span := r.tracer.Start(ctx, "VoucherRepository.FindByID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.voucher_id", id),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "vouchers"),
	)

	query := `
		SELECT
			id, kind, discount_model, discount_amount, max_discount_amount,
			shipping_waiver_amount, min_order_value, usage_limit_total,
			usage_limit_per_user, usage_count_total, valid_from, valid_until,
			active, deleted, created_at, updated_at
		FROM vouchers
		WHERE id = ?
	`

	v, err := r.scanVoucher(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "voucher not found")
		return nil, voucher.ErrVoucherNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("db.voucher_kind", v.Kind().String()),
		attribute.Int("db.usage_count_total", v.UsageCountTotal()),
	)
	span.SetStatus(otelcodes.Ok, "voucher found")
	return v, nil
}

// FindAll バウチャー一覧を取得（ページネーション対応、総件数も返す）
func (r *VoucherRepository) FindAll(ctx context.Context, limit, offset int) ([]*voucher.Voucher, int, error) {
	ctx, span := r.tracer.Start(ctx, "VoucherRepository.FindAll")
	defer span.End()

	span.SetAttributes(
		attribute.Int("db.limit", limit),
		attribute.Int("db.offset", offset),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "vouchers"),
	)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vouchers WHERE deleted = FALSE`).Scan(&total); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to count vouchers: %w", err)
	}

	query := `
		SELECT
			id, kind, discount_model, discount_amount, max_discount_amount,
			shipping_waiver_amount, min_order_value, usage_limit_total,
			usage_limit_per_user, usage_count_total, valid_from, valid_until,
			active, deleted, created_at, updated_at
		FROM vouchers
		WHERE deleted = FALSE
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to query vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []*voucher.Voucher
	for rows.Next() {
		v, err := r.scanVoucher(rows)
		if err != nil {
			return nil, 0, err
		}
		vouchers = append(vouchers, v)
	}

	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to iterate vouchers: %w", err)
	}

	span.SetAttributes(attribute.Int("db.result_count", len(vouchers)))
	span.SetStatus(otelcodes.Ok, fmt.Sprintf("found %d vouchers", len(vouchers)))
	return vouchers, total, nil
}

// Update バウチャーの管理フラグ（active, deleted）を更新
func (r *VoucherRepository) Update(ctx context.Context, v *voucher.Voucher) error {
	ctx, span := r.tracer.Start(ctx, "VoucherRepository.Update")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.voucher_id", v.ID()),
		attribute.Bool("db.active", v.Active()),
		attribute.Bool("db.deleted", v.Deleted()),
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.table", "vouchers"),
	)

	query := `
		UPDATE vouchers
		SET
			active = ?,
			deleted = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		v.Active(),
		v.Deleted(),
		v.ID(),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to update voucher: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		span.SetStatus(otelcodes.Ok, "voucher not found")
		return voucher.ErrVoucherNotFound
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", rowsAffected))
	span.SetStatus(otelcodes.Ok, "voucher updated")
	return nil
}

// CountUserRedemptions 台帳におけるユーザーの引き換え件数を取得
func (r *VoucherRepository) CountUserRedemptions(ctx context.Context, voucherID, userID string) (int, error) {
	ctx, span := r.tracer.Start(ctx, "VoucherRepository.CountUserRedemptions")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.voucher_id", voucherID),
		attribute.String("db.user_id", userID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "redemptions"),
	)

	query := `
		SELECT COUNT(*)
		FROM redemptions
		WHERE voucher_id = ? AND user_id = ?
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, voucherID, userID).Scan(&count); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return 0, fmt.Errorf("failed to count user redemptions: %w", err)
	}

	span.SetAttributes(attribute.Int("db.count", count))
	span.SetStatus(otelcodes.Ok, fmt.Sprintf("user redemptions: %d", count))
	return count, nil
}

// FindRedemptionByOrderID 注文IDで引き換え記録を取得（冪等性チェック用）
func (r *VoucherRepository) FindRedemptionByOrderID(ctx context.Context, orderID string) (*voucher.Redemption, error) {
	ctx, span := r.tracer.Start(ctx, "VoucherRepository.FindRedemptionByOrderID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.order_id", orderID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "redemptions"),
	)

	query := `
		SELECT redemption_id, voucher_id, user_id, order_id, discount_amount, redeemed_at
		FROM redemptions
		WHERE order_id = ?
	`

	var redemptionID, voucherID, userID, dbOrderID string
	var discountAmount int64
	var redeemedAt time.Time

	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&redemptionID,
		&voucherID,
		&userID,
		&dbOrderID,
		&discountAmount,
		&redeemedAt,
	)

	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "redemption not found")
		return nil, voucher.ErrRedemptionNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find redemption: %w", err)
	}

	span.SetAttributes(
		attribute.String("db.voucher_id", voucherID),
		attribute.Int64("db.discount_amount", discountAmount),
	)
	span.SetStatus(otelcodes.Ok, "redemption found")

	rd := voucher.NewRedemption(redemptionID, voucherID, userID, dbOrderID, discountAmount)
	rd.SetRedeemedAt(redeemedAt)
	return rd, nil
}

// CompareAndAppendRedemption 使用回数の比較付きインクリメントと台帳への追記を
// 単一トランザクションで実行する。使用回数が期待値と一致しない場合は
// ErrUsageCountConflict、注文IDが重複する場合はErrOrderAlreadyRedeemedを返す
func (r *VoucherRepository) CompareAndAppendRedemption(ctx context.Context, voucherID string, expectedUsageCount int, rd *voucher.Redemption) error {
	ctx, span := r.tracer.Start(ctx, "VoucherRepository.CompareAndAppendRedemption")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.voucher_id", voucherID),
		attribute.Int("db.expected_usage_count", expectedUsageCount),
		attribute.String("db.order_id", rd.OrderID()),
		attribute.String("db.operation", "UPDATE+INSERT"),
		attribute.String("db.table", "vouchers,redemptions"),
	)

	err := r.tm.WithTransaction(ctx, func(tx *sql.Tx) error {
		updateQuery := `
			UPDATE vouchers
			SET
				usage_count_total = usage_count_total + 1,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND usage_count_total = ?
		`

		result, err := tx.ExecContext(ctx, updateQuery, voucherID, expectedUsageCount)
		if err != nil {
			return fmt.Errorf("failed to increment usage count: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		// 使用回数が期待値と一致しなかった場合は他の引き換えが先行している
		if rowsAffected == 0 {
			return voucher.ErrUsageCountConflict
		}

		insertQuery := `
			INSERT INTO redemptions (
				redemption_id, voucher_id, user_id, order_id, discount_amount, redeemed_at
			) VALUES (?, ?, ?, ?, ?, ?)
		`

		_, err = tx.ExecContext(ctx, insertQuery,
			rd.RedemptionID(),
			rd.VoucherID(),
			rd.UserID(),
			rd.OrderID(),
			rd.DiscountAmount(),
			rd.RedeemedAt(),
		)
		if err != nil {
			var mysqlErr *gomysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
				return voucher.ErrOrderAlreadyRedeemed
			}
			return fmt.Errorf("failed to append redemption: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, voucher.ErrUsageCountConflict) {
			span.SetStatus(otelcodes.Ok, "usage count conflict")
			return err
		}
		if errors.Is(err, voucher.ErrOrderAlreadyRedeemed) {
			span.SetStatus(otelcodes.Ok, "order already redeemed")
			return err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return err
	}

	span.SetStatus(otelcodes.Ok, "redemption committed")
	return nil
}

// ListRedemptions バウチャーの引き換え台帳を取得（ページネーション対応、総件数も返す）
func (r *VoucherRepository) ListRedemptions(ctx context.Context, voucherID string, limit, offset int) ([]*voucher.Redemption, int, error) {
	ctx, span := r.tracer.Start(ctx, "VoucherRepository.ListRedemptions")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.voucher_id", voucherID),
		attribute.Int("db.limit", limit),
		attribute.Int("db.offset", offset),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "redemptions"),
	)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM redemptions WHERE voucher_id = ?`, voucherID).Scan(&total); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to count redemptions: %w", err)
	}

	query := `
		SELECT redemption_id, voucher_id, user_id, order_id, discount_amount, redeemed_at
		FROM redemptions
		WHERE voucher_id = ?
		ORDER BY redeemed_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, voucherID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to query redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []*voucher.Redemption
	for rows.Next() {
		var redemptionID, dbVoucherID, userID, orderID string
		var discountAmount int64
		var redeemedAt time.Time

		if err := rows.Scan(
			&redemptionID,
			&dbVoucherID,
			&userID,
			&orderID,
			&discountAmount,
			&redeemedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan redemption: %w", err)
		}

		rd := voucher.NewRedemption(redemptionID, dbVoucherID, userID, orderID, discountAmount)
		rd.SetRedeemedAt(redeemedAt)
		redemptions = append(redemptions, rd)
	}

	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to iterate redemptions: %w", err)
	}

	span.SetAttributes(attribute.Int("db.result_count", len(redemptions)))
	span.SetStatus(otelcodes.Ok, fmt.Sprintf("found %d redemptions", len(redemptions)))
	return redemptions, total, nil
}

// rowScanner QueryRowContextとrows.Nextの両方のスキャンを受けるための共通インターフェース
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanVoucher 1行分のバウチャーをスキャンしてエンティティに変換
func (r *VoucherRepository) scanVoucher(row rowScanner) (*voucher.Voucher, error) {
	var id, dbKind, dbDiscountModel string
	var discountAmount, maxDiscountAmount, shippingWaiverAmount, minOrderValue int64
	var usageLimitTotal, usageLimitPerUser, usageCountTotal int
	var validFrom, validUntil time.Time
	var active, deleted bool
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&id,
		&dbKind,
		&dbDiscountModel,
		&discountAmount,
		&maxDiscountAmount,
		&shippingWaiverAmount,
		&minOrderValue,
		&usageLimitTotal,
		&usageLimitPerUser,
		&usageCountTotal,
		&validFrom,
		&validUntil,
		&active,
		&deleted,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan voucher: %w", err)
	}

	kind, err := voucher.NewKind(dbKind)
	if err != nil {
		return nil, fmt.Errorf("invalid voucher kind: %w", err)
	}

	discountModel, err := voucher.NewDiscountModel(dbDiscountModel)
	if err != nil {
		return nil, fmt.Errorf("invalid discount model: %w", err)
	}

	v, err := voucher.NewVoucher(
		id,
		kind,
		discountModel,
		discountAmount,
		maxDiscountAmount,
		shippingWaiverAmount,
		minOrderValue,
		usageLimitTotal,
		usageLimitPerUser,
		validFrom,
		validUntil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct voucher entity: %w", err)
	}

	v.SetUsageCountTotal(usageCountTotal)
	v.SetActive(active)
	v.SetDeleted(deleted)
	v.SetTimestamps(createdAt, updatedAt)

	return v, nil
}
