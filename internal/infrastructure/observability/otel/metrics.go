package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// 適格性チェック数
	CheckCount metric.Int64Counter

	// コミット済み引き換え数
	RedemptionCount metric.Int64Counter

	// コミット確定処理数
	ConfirmCount metric.Int64Counter

	// 比較追記の競合発生数
	CommitConflictCount metric.Int64Counter

	// 適用された割引額の分布
	DiscountAmount metric.Int64Histogram

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	checkCount, err := meter.Int64Counter(
		"voucher_checks_total",
		metric.WithDescription("Total number of voucher eligibility checks"),
	)
	if err != nil {
		return nil, err
	}

	redemptionCount, err := meter.Int64Counter(
		"voucher_redemptions_total",
		metric.WithDescription("Total number of committed voucher redemptions"),
	)
	if err != nil {
		return nil, err
	}

	confirmCount, err := meter.Int64Counter(
		"voucher_confirms_total",
		metric.WithDescription("Total number of voucher confirm attempts"),
	)
	if err != nil {
		return nil, err
	}

	commitConflictCount, err := meter.Int64Counter(
		"voucher_commit_conflicts_total",
		metric.WithDescription("Total number of compare-and-append conflicts"),
	)
	if err != nil {
		return nil, err
	}

	discountAmount, err := meter.Int64Histogram(
		"voucher_discount_amount",
		metric.WithDescription("Applied discount amount in minor currency units"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		CheckCount:          checkCount,
		RedemptionCount:     redemptionCount,
		ConfirmCount:        confirmCount,
		CommitConflictCount: commitConflictCount,
		DiscountAmount:      discountAmount,
		RequestCount:        requestCount,
		ResponseTime:        responseTime,
		ErrorCount:          errorCount,
	}, nil
}

// RecordCheck 適格性チェックの結果を記録
func (m *Metrics) RecordCheck(ctx context.Context, approved bool, reason string) {
	m.CheckCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.Bool("approved", approved),
			attribute.String("reason", reason),
		),
	)
}

// RecordRedemption コミット済み引き換えを記録
func (m *Metrics) RecordRedemption(ctx context.Context, voucherKind string) {
	m.RedemptionCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("voucher_kind", voucherKind),
		),
	)
}

// RecordConfirm コミット確定処理の結果を記録
func (m *Metrics) RecordConfirm(ctx context.Context, committed bool, reason string) {
	m.ConfirmCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.Bool("committed", committed),
			attribute.String("reason", reason),
		),
	)
}

// RecordCommitConflict 比較追記の競合を記録
func (m *Metrics) RecordCommitConflict(ctx context.Context, voucherID string) {
	m.CommitConflictCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("voucher_id", voucherID),
		),
	)
}

// RecordDiscountAmount 適用された割引額を記録
func (m *Metrics) RecordDiscountAmount(ctx context.Context, voucherKind string, amount int64) {
	m.DiscountAmount.Record(ctx, amount,
		metric.WithAttributes(
			attribute.String("voucher_kind", voucherKind),
		),
	)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, seconds float64) {
	m.ResponseTime.Record(ctx, seconds,
		metric.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
