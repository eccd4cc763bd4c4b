package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewMetrics(t *testing.T) {
	// Noopメータープロバイダーを使用
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)
	assert.NotNil(t, metrics)

	assert.NotNil(t, metrics.CheckCount)
	assert.NotNil(t, metrics.RedemptionCount)
	assert.NotNil(t, metrics.ConfirmCount)
	assert.NotNil(t, metrics.CommitConflictCount)
	assert.NotNil(t, metrics.DiscountAmount)
	assert.NotNil(t, metrics.RequestCount)
	assert.NotNil(t, metrics.ResponseTime)
	assert.NotNil(t, metrics.ErrorCount)
}

func TestMetrics_RecordCheck(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 適格性チェックを記録
	metrics.RecordCheck(ctx, true, "")
	metrics.RecordCheck(ctx, false, "expired")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordRedemption(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 引き換えを記録
	metrics.RecordRedemption(ctx, "discount")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordConfirm(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// コミット確定処理を記録
	metrics.RecordConfirm(ctx, true, "")
	metrics.RecordConfirm(ctx, false, "global_limit_reached")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordCommitConflict(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 競合を記録
	metrics.RecordCommitConflict(ctx, "SAVE10")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordDiscountAmount(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 割引額を記録
	metrics.RecordDiscountAmount(ctx, "discount", 10000)
	metrics.RecordDiscountAmount(ctx, "shipping_waiver", 500)

	// エラーが発生しないことを確認
}

func TestMetrics_RecordRequest(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// リクエストを記録
	metrics.RecordRequest(ctx, "POST", "/api/v1/vouchers/check")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordResponseTime(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// レスポンス時間を記録
	metrics.RecordResponseTime(ctx, "POST", "/api/v1/vouchers/check", 0.123)

	// エラーが発生しないことを確認
}

func TestMetrics_RecordError(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// エラーを記録
	metrics.RecordError(ctx, "database_error")

	// エラーが発生しないことを確認
}

func TestMetrics_RecordCheckWithDifferentReasons(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 異なる拒否理由を記録
	metrics.RecordCheck(ctx, false, "not_found")
	metrics.RecordCheck(ctx, false, "inactive")
	metrics.RecordCheck(ctx, false, "per_user_limit_reached")

	// エラーが発生しないことを確認
}

func TestMetrics_MultipleCalls(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 複数回メトリクスを記録
	for i := 0; i < 10; i++ {
		metrics.RecordCheck(ctx, true, "")
		metrics.RecordRedemption(ctx, "discount")
		metrics.RecordDiscountAmount(ctx, "discount", int64(100*i))
		metrics.RecordRequest(ctx, "POST", "/api/v1/vouchers/confirm")
		metrics.RecordResponseTime(ctx, "POST", "/api/v1/vouchers/confirm", 0.1)
	}

	// エラーが発生しないことを確認
}

func TestNewMetrics_ErrorHandling(t *testing.T) {
	// メータープロバイダーが設定されていない場合でも、エラーが発生しないことを確認
	// （実際にはnoopメータープロバイダーが使用される）
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)
	assert.NotNil(t, metrics)
}
