package voucher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domain "voucher-server/internal/domain/voucher"
	otelinfra "voucher-server/internal/infrastructure/observability/otel"
)

// VoucherApplicationService バウチャーアプリケーションサービス
//
// 業務上の拒否（期限切れ、上限到達など）はエラーではなく型付きの結果として
// 返す。エラーを返すのはインフラ障害と不正な管理操作のみ
type VoucherApplicationService struct {
	voucherRepo domain.VoucherRepository
	logger      *otelinfra.Logger
	metrics     *otelinfra.Metrics
	tracer      trace.Tracer
	maxRetries  int
}

// NewVoucherApplicationService 新しいVoucherApplicationServiceを作成
func NewVoucherApplicationService(
	voucherRepo domain.VoucherRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	maxCommitRetries int,
) *VoucherApplicationService {
	return &VoucherApplicationService{
		voucherRepo: voucherRepo,
		logger:      logger,
		metrics:     metrics,
		tracer:      otel.Tracer("voucher-service"),
		maxRetries:  maxCommitRetries,
	}
}

// CheckVoucher バウチャーの適格性を評価し、承認時は割引額を返す
//
// 副作用はなく、カート編集中に何度でも呼び出せる
func (s *VoucherApplicationService) CheckVoucher(ctx context.Context, req *CheckVoucherRequest) (*CheckVoucherResponse, error) {
	ctx, span := s.tracer.Start(ctx, "VoucherApplicationService.CheckVoucher")
	defer span.End()

	span.SetAttributes(
		attribute.String("voucher_id", req.VoucherID),
		attribute.String("user_id", req.UserID),
		attribute.Int64("order_subtotal", req.OrderSubtotal),
		attribute.Int64("shipping_cost", req.ShippingCost),
	)

	s.logger.Info(ctx, "Checking voucher", map[string]interface{}{
		"voucher_id":     req.VoucherID,
		"user_id":        req.UserID,
		"order_subtotal": req.OrderSubtotal,
	})

	result, err := s.evaluate(ctx, req.VoucherID, req.UserID, req.OrderSubtotal, req.ShippingCost, time.Now())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to check voucher", err, map[string]interface{}{
			"voucher_id": req.VoucherID,
		})
		s.metrics.RecordError(ctx, "voucher_check_failed")
		return nil, err
	}

	resp := &CheckVoucherResponse{
		VoucherID: req.VoucherID,
		Approved:  result.Approved,
		Reason:    result.Reason.String(),
		Shortfall: result.Shortfall,
	}
	if result.Approved {
		resp.DiscountAmount = domain.CalculateDiscount(result.Voucher, req.OrderSubtotal, req.ShippingCost)
	}

	s.metrics.RecordCheck(ctx, resp.Approved, resp.Reason)

	span.SetAttributes(
		attribute.Bool("approved", resp.Approved),
		attribute.String("reason", resp.Reason),
		attribute.Int64("discount_amount", resp.DiscountAmount),
	)
	span.SetStatus(otelcodes.Ok, "voucher checked")
	return resp, nil
}

// ConfirmVoucher 注文確定時に使用回数上限を再検査し、引き換えを不可分にコミットする
//
// 同一注文IDでの再送は新しい引き換えを追加せず、元の確定結果を返す。
// 比較追記が競合した場合は上限回数まで再試行し、それでも確定できない
// 場合はCommitConflictExhaustedの拒否結果を返す
func (s *VoucherApplicationService) ConfirmVoucher(ctx context.Context, req *ConfirmVoucherRequest) (*ConfirmVoucherResponse, error) {
	ctx, span := s.tracer.Start(ctx, "VoucherApplicationService.ConfirmVoucher")
	defer span.End()

	span.SetAttributes(
		attribute.String("voucher_id", req.VoucherID),
		attribute.String("user_id", req.UserID),
		attribute.String("order_id", req.OrderID),
		attribute.Int64("discount_amount", req.DiscountAmount),
	)

	s.logger.Info(ctx, "Confirming voucher", map[string]interface{}{
		"voucher_id": req.VoucherID,
		"user_id":    req.UserID,
		"order_id":   req.OrderID,
	})

	// 冪等性チェック: この注文IDで既に確定済みなら元の結果を返す
	existing, err := s.voucherRepo.FindRedemptionByOrderID(ctx, req.OrderID)
	if err != nil && !errors.Is(err, domain.ErrRedemptionNotFound) {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to check idempotency: %w", err)
	}
	if existing != nil {
		resp := s.alreadyRedeemedResponse(ctx, req.VoucherID, existing)
		span.SetStatus(otelcodes.Ok, "order already redeemed")
		return resp, nil
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 10 * time.Millisecond
			time.Sleep(backoff)
		}

		// 確定直前に現在の永続状態で上限のみ再検査する（チェック時のスナップショットは使わない）
		result, err := s.evaluateLimits(ctx, req.VoucherID, req.UserID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			s.metrics.RecordError(ctx, "voucher_confirm_failed")
			return nil, err
		}

		if !result.Approved {
			resp := &ConfirmVoucherResponse{
				VoucherID: req.VoucherID,
				Committed: false,
				Reason:    result.Reason.String(),
			}
			s.metrics.RecordConfirm(ctx, false, resp.Reason)
			span.SetAttributes(attribute.String("reason", resp.Reason))
			span.SetStatus(otelcodes.Ok, "voucher confirm rejected")
			return resp, nil
		}

		v := result.Voucher
		discount := req.DiscountAmount
		redemption := domain.NewRedemption(
			uuid.NewString(),
			req.VoucherID,
			req.UserID,
			req.OrderID,
			discount,
		)

		err = s.voucherRepo.CompareAndAppendRedemption(ctx, req.VoucherID, v.UsageCountTotal(), redemption)
		if err == nil {
			resp := &ConfirmVoucherResponse{
				VoucherID:      req.VoucherID,
				Committed:      true,
				RedemptionID:   redemption.RedemptionID(),
				DiscountAmount: discount,
			}

			s.metrics.RecordConfirm(ctx, true, "")
			s.metrics.RecordRedemption(ctx, v.Kind().String())
			s.metrics.RecordDiscountAmount(ctx, v.Kind().String(), discount)

			s.logger.Info(ctx, "Voucher confirmed successfully", map[string]interface{}{
				"voucher_id":      req.VoucherID,
				"order_id":        req.OrderID,
				"redemption_id":   redemption.RedemptionID(),
				"discount_amount": discount,
			})

			span.SetAttributes(
				attribute.String("redemption_id", redemption.RedemptionID()),
				attribute.Int64("discount_amount", discount),
				attribute.Int("commit_attempts", attempt+1),
			)
			span.SetStatus(otelcodes.Ok, "voucher confirmed")
			return resp, nil
		}

		if errors.Is(err, domain.ErrOrderAlreadyRedeemed) {
			// 並行した同一注文の確定が先にコミットされた場合
			existing, findErr := s.voucherRepo.FindRedemptionByOrderID(ctx, req.OrderID)
			if findErr != nil {
				span.RecordError(findErr)
				span.SetStatus(otelcodes.Error, findErr.Error())
				return nil, fmt.Errorf("failed to load committed redemption: %w", findErr)
			}
			resp := s.alreadyRedeemedResponse(ctx, req.VoucherID, existing)
			span.SetStatus(otelcodes.Ok, "order already redeemed")
			return resp, nil
		}

		if errors.Is(err, domain.ErrUsageCountConflict) {
			s.metrics.RecordCommitConflict(ctx, req.VoucherID)
			s.logger.Warn(ctx, "Redemption commit conflict, retrying", map[string]interface{}{
				"voucher_id": req.VoucherID,
				"order_id":   req.OrderID,
				"attempt":    attempt + 1,
			})
			continue
		}

		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to confirm voucher", err, map[string]interface{}{
			"voucher_id": req.VoucherID,
			"order_id":   req.OrderID,
		})
		s.metrics.RecordError(ctx, "voucher_confirm_failed")
		return nil, err
	}

	// 再試行上限まで競合し続けた場合
	resp := &ConfirmVoucherResponse{
		VoucherID: req.VoucherID,
		Committed: false,
		Reason:    domain.ReasonCommitConflictExhausted.String(),
	}

	s.metrics.RecordConfirm(ctx, false, resp.Reason)
	s.logger.Warn(ctx, "Redemption commit retries exhausted", map[string]interface{}{
		"voucher_id":  req.VoucherID,
		"order_id":    req.OrderID,
		"max_retries": s.maxRetries,
	})

	span.SetAttributes(attribute.String("reason", resp.Reason))
	span.SetStatus(otelcodes.Ok, "commit retries exhausted")
	return resp, nil
}

// ListRejectionReasons 拒否理由の列挙値一覧を返す
//
// クライアント側でのローカライズテーブル構築に使用される
func (s *VoucherApplicationService) ListRejectionReasons(ctx context.Context) *ListRejectionReasonsResponse {
	_, span := s.tracer.Start(ctx, "VoucherApplicationService.ListRejectionReasons")
	defer span.End()

	reasons := domain.RejectionReasons()
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, r.String())
	}

	span.SetStatus(otelcodes.Ok, "rejection reasons listed")
	return &ListRejectionReasonsResponse{Reasons: out}
}

// CreateVoucher バウチャーを作成（管理API）
func (s *VoucherApplicationService) CreateVoucher(ctx context.Context, req *CreateVoucherRequest) (*CreateVoucherResponse, error) {
	ctx, span := s.tracer.Start(ctx, "VoucherApplicationService.CreateVoucher")
	defer span.End()

	span.SetAttributes(
		attribute.String("voucher_id", req.VoucherID),
		attribute.String("voucher_kind", req.Kind),
		attribute.String("discount_model", req.DiscountModel),
	)

	s.logger.Info(ctx, "Creating voucher", map[string]interface{}{
		"voucher_id":  req.VoucherID,
		"kind":        req.Kind,
		"valid_from":  req.ValidFrom,
		"valid_until": req.ValidUntil,
	})

	kind, err := domain.NewKind(req.Kind)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("invalid voucher kind: %w", err)
	}

	discountModel, err := domain.NewDiscountModel(req.DiscountModel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("invalid discount model: %w", err)
	}

	v, err := domain.NewVoucher(
		req.VoucherID,
		kind,
		discountModel,
		req.DiscountAmount,
		req.MaxDiscountAmount,
		req.ShippingWaiverAmount,
		req.MinOrderValue,
		req.UsageLimitTotal,
		req.UsageLimitPerUser,
		req.ValidFrom,
		req.ValidUntil,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to create voucher entity: %w", err)
	}

	if err := s.voucherRepo.Create(ctx, v); err != nil {
		if errors.Is(err, domain.ErrVoucherAlreadyExists) {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to create voucher", err, map[string]interface{}{
			"voucher_id": req.VoucherID,
		})
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	s.logger.Info(ctx, "Voucher created successfully", map[string]interface{}{
		"voucher_id": req.VoucherID,
	})

	span.SetStatus(otelcodes.Ok, "voucher created")
	return &CreateVoucherResponse{
		VoucherID: v.ID(),
		CreatedAt: v.CreatedAt(),
	}, nil
}

// GetVoucher バウチャーを取得（管理API）
func (s *VoucherApplicationService) GetVoucher(ctx context.Context, req *GetVoucherRequest) (*GetVoucherResponse, error) {
	ctx, span := s.tracer.Start(ctx, "VoucherApplicationService.GetVoucher")
	defer span.End()

	span.SetAttributes(attribute.String("voucher_id", req.VoucherID))

	v, err := s.voucherRepo.FindByID(ctx, req.VoucherID)
	if err != nil {
		if errors.Is(err, domain.ErrVoucherNotFound) {
			span.SetStatus(otelcodes.Ok, "voucher not found")
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find voucher: %w", err)
	}

	// 論理削除済みは管理APIでも見えない
	if v.Deleted() {
		span.SetStatus(otelcodes.Ok, "voucher deleted")
		return nil, domain.ErrVoucherNotFound
	}

	span.SetStatus(otelcodes.Ok, "voucher found")
	return &GetVoucherResponse{
		VoucherID:            v.ID(),
		Kind:                 v.Kind().String(),
		DiscountModel:        v.DiscountModel().String(),
		DiscountAmount:       v.DiscountAmount(),
		MaxDiscountAmount:    v.MaxDiscountAmount(),
		ShippingWaiverAmount: v.ShippingWaiverAmount(),
		MinOrderValue:        v.MinOrderValue(),
		UsageLimitTotal:      v.UsageLimitTotal(),
		UsageLimitPerUser:    v.UsageLimitPerUser(),
		UsageCountTotal:      v.UsageCountTotal(),
		RemainingUses:        v.RemainingUses(),
		ValidFrom:            v.ValidFrom(),
		ValidUntil:           v.ValidUntil(),
		Active:               v.Active(),
		CreatedAt:            v.CreatedAt(),
		UpdatedAt:            v.UpdatedAt(),
	}, nil
}

// ListVouchers バウチャー一覧を取得（管理API）
func (s *VoucherApplicationService) ListVouchers(ctx context.Context, req *ListVouchersRequest) (*ListVouchersResponse, error) {
	ctx, span := s.tracer.Start(ctx, "VoucherApplicationService.ListVouchers")
	defer span.End()

	span.SetAttributes(
		attribute.Int("limit", req.Limit),
		attribute.Int("offset", req.Offset),
	)

	// ページネーションパラメータのバリデーション
	if req.Limit <= 0 {
		req.Limit = 50 // デフォルト値
	}
	if req.Limit > 100 {
		req.Limit = 100 // 最大値
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	vouchers, total, err := s.voucherRepo.FindAll(ctx, req.Limit, req.Offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to list vouchers", err, nil)
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}

	span.SetAttributes(attribute.Int("result_count", len(vouchers)))
	span.SetStatus(otelcodes.Ok, "vouchers listed")
	return &ListVouchersResponse{
		Vouchers: vouchers,
		Total:    total,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}, nil
}

// DeactivateVoucher バウチャーを無効化する（管理キルスイッチ）
//
// 無効化後のチェックと確定は全てInactiveで拒否される。台帳は変更しない
func (s *VoucherApplicationService) DeactivateVoucher(ctx context.Context, req *DeactivateVoucherRequest) (*DeactivateVoucherResponse, error) {
	ctx, span := s.tracer.Start(ctx, "VoucherApplicationService.DeactivateVoucher")
	defer span.End()

	span.SetAttributes(attribute.String("voucher_id", req.VoucherID))

	s.logger.Info(ctx, "Deactivating voucher", map[string]interface{}{
		"voucher_id": req.VoucherID,
	})

	v, err := s.voucherRepo.FindByID(ctx, req.VoucherID)
	if err != nil {
		if errors.Is(err, domain.ErrVoucherNotFound) {
			span.SetStatus(otelcodes.Ok, "voucher not found")
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find voucher: %w", err)
	}
	if v.Deleted() {
		span.SetStatus(otelcodes.Ok, "voucher deleted")
		return nil, domain.ErrVoucherNotFound
	}

	v.Deactivate()
	if err := s.voucherRepo.Update(ctx, v); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to deactivate voucher", err, map[string]interface{}{
			"voucher_id": req.VoucherID,
		})
		return nil, fmt.Errorf("failed to deactivate voucher: %w", err)
	}

	s.logger.Info(ctx, "Voucher deactivated successfully", map[string]interface{}{
		"voucher_id": req.VoucherID,
	})

	span.SetStatus(otelcodes.Ok, "voucher deactivated")
	return &DeactivateVoucherResponse{
		VoucherID:     v.ID(),
		Active:        v.Active(),
		DeactivatedAt: v.UpdatedAt(),
	}, nil
}

// DeleteVoucher バウチャーを論理削除する（管理API）
//
// 台帳は監査証跡として保持されるため、物理削除は行わない
func (s *VoucherApplicationService) DeleteVoucher(ctx context.Context, req *DeleteVoucherRequest) (*DeleteVoucherResponse, error) {
	ctx, span := s.tracer.Start(ctx, "VoucherApplicationService.DeleteVoucher")
	defer span.End()

	span.SetAttributes(attribute.String("voucher_id", req.VoucherID))

	s.logger.Info(ctx, "Deleting voucher", map[string]interface{}{
		"voucher_id": req.VoucherID,
	})

	v, err := s.voucherRepo.FindByID(ctx, req.VoucherID)
	if err != nil {
		if errors.Is(err, domain.ErrVoucherNotFound) {
			span.SetStatus(otelcodes.Ok, "voucher not found")
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find voucher: %w", err)
	}
	if v.Deleted() {
		span.SetStatus(otelcodes.Ok, "voucher deleted")
		return nil, domain.ErrVoucherNotFound
	}

	v.SoftDelete()
	if err := s.voucherRepo.Update(ctx, v); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to delete voucher", err, map[string]interface{}{
			"voucher_id": req.VoucherID,
		})
		return nil, fmt.Errorf("failed to delete voucher: %w", err)
	}

	s.logger.Info(ctx, "Voucher deleted successfully", map[string]interface{}{
		"voucher_id": req.VoucherID,
	})

	span.SetStatus(otelcodes.Ok, "voucher deleted")
	return &DeleteVoucherResponse{
		VoucherID: v.ID(),
		DeletedAt: v.UpdatedAt(),
	}, nil
}

// ListRedemptions バウチャーの引き換え台帳を取得（管理API）
func (s *VoucherApplicationService) ListRedemptions(ctx context.Context, req *ListRedemptionsRequest) (*ListRedemptionsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "VoucherApplicationService.ListRedemptions")
	defer span.End()

	span.SetAttributes(
		attribute.String("voucher_id", req.VoucherID),
		attribute.Int("limit", req.Limit),
		attribute.Int("offset", req.Offset),
	)

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Limit > 100 {
		req.Limit = 100
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	// バウチャーの存在確認
	if _, err := s.voucherRepo.FindByID(ctx, req.VoucherID); err != nil {
		if errors.Is(err, domain.ErrVoucherNotFound) {
			span.SetStatus(otelcodes.Ok, "voucher not found")
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find voucher: %w", err)
	}

	redemptions, total, err := s.voucherRepo.ListRedemptions(ctx, req.VoucherID, req.Limit, req.Offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to list redemptions", err, map[string]interface{}{
			"voucher_id": req.VoucherID,
		})
		return nil, fmt.Errorf("failed to list redemptions: %w", err)
	}

	span.SetAttributes(attribute.Int("result_count", len(redemptions)))
	span.SetStatus(otelcodes.Ok, "redemptions listed")
	return &ListRedemptionsResponse{
		Redemptions: redemptions,
		Total:       total,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}, nil
}

// evaluate バウチャーと台帳を読み込み、適格性を評価する
//
// バウチャーが存在しない場合はNotFoundの拒否結果になる（エラーではない）
func (s *VoucherApplicationService) evaluate(ctx context.Context, voucherID, userID string, orderSubtotal, shippingCost int64, now time.Time) (domain.EligibilityResult, error) {
	v, err := s.voucherRepo.FindByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, domain.ErrVoucherNotFound) {
			return domain.Evaluate(nil, userID, orderSubtotal, shippingCost, 0, now), nil
		}
		return domain.EligibilityResult{}, fmt.Errorf("failed to find voucher: %w", err)
	}

	userUseCount, err := s.voucherRepo.CountUserRedemptions(ctx, voucherID, userID)
	if err != nil {
		return domain.EligibilityResult{}, fmt.Errorf("failed to count user redemptions: %w", err)
	}

	return domain.Evaluate(v, userID, orderSubtotal, shippingCost, userUseCount, now), nil
}

// evaluateLimits バウチャーと台帳を読み込み、使用回数上限のみを再検査する
//
// 確定経路専用。上限超過はLimitExceededAtCommitの拒否結果になる
func (s *VoucherApplicationService) evaluateLimits(ctx context.Context, voucherID, userID string) (domain.EligibilityResult, error) {
	v, err := s.voucherRepo.FindByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, domain.ErrVoucherNotFound) {
			return domain.EvaluateLimits(nil, 0), nil
		}
		return domain.EligibilityResult{}, fmt.Errorf("failed to find voucher: %w", err)
	}

	userUseCount, err := s.voucherRepo.CountUserRedemptions(ctx, voucherID, userID)
	if err != nil {
		return domain.EligibilityResult{}, fmt.Errorf("failed to count user redemptions: %w", err)
	}

	return domain.EvaluateLimits(v, userUseCount), nil
}

// alreadyRedeemedResponse 確定済み引き換え記録から冪等レスポンスを構築する
func (s *VoucherApplicationService) alreadyRedeemedResponse(ctx context.Context, voucherID string, existing *domain.Redemption) *ConfirmVoucherResponse {
	s.logger.Info(ctx, "Order already redeemed, returning original result", map[string]interface{}{
		"voucher_id":    voucherID,
		"order_id":      existing.OrderID(),
		"redemption_id": existing.RedemptionID(),
	})

	s.metrics.RecordConfirm(ctx, true, domain.ReasonAlreadyRedeemed.String())

	return &ConfirmVoucherResponse{
		VoucherID:      existing.VoucherID(),
		Committed:      true,
		Reason:         domain.ReasonAlreadyRedeemed.String(),
		RedemptionID:   existing.RedemptionID(),
		DiscountAmount: existing.DiscountAmount(),
	}
}
