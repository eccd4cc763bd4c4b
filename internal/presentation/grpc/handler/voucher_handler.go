package handler

import (
	"context"
	"strconv"

	voucherapp "voucher-server/internal/application/voucher"
	"voucher-server/internal/presentation/grpc/pb"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// VoucherHandler gRPCバウチャーサービスハンドラー
//
// 業務上の拒否（期限切れや上限到達など）はエラーではなく、
// approved/committedフラグと理由コードを持つレスポンスとして返す。
// gRPCステータスエラーは不正な引数とインフラ障害に限られる
type VoucherHandler struct {
	pb.UnimplementedVoucherServiceServer
	voucherService *voucherapp.VoucherApplicationService
}

// NewVoucherHandler 新しいVoucherHandlerを作成
func NewVoucherHandler(voucherService *voucherapp.VoucherApplicationService) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
	}
}

// CheckVoucher バウチャー適格性チェック
func (h *VoucherHandler) CheckVoucher(ctx context.Context, req *pb.CheckVoucherRequest) (*pb.CheckVoucherResponse, error) {
	if req.VoucherId == "" {
		return nil, status.Error(codes.InvalidArgument, "voucher_id is required")
	}
	if req.UserId == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.OrderSubtotal == "" {
		return nil, status.Error(codes.InvalidArgument, "order_subtotal is required")
	}

	orderSubtotal, err := strconv.ParseInt(req.OrderSubtotal, 10, 64)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid order_subtotal format")
	}
	shippingCost, err := parseOptionalAmount(req.ShippingCost)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid shipping_cost format")
	}

	appReq := &voucherapp.CheckVoucherRequest{
		VoucherID:     req.VoucherId,
		UserID:        req.UserId,
		OrderSubtotal: orderSubtotal,
		ShippingCost:  shippingCost,
	}

	appResp, err := h.voucherService.CheckVoucher(ctx, appReq)
	if err != nil {
		return nil, handleError(err)
	}

	resp := &pb.CheckVoucherResponse{
		VoucherId: appResp.VoucherID,
		Approved:  appResp.Approved,
		Reason:    appResp.Reason,
	}
	if appResp.Approved {
		resp.DiscountAmount = strconv.FormatInt(appResp.DiscountAmount, 10)
	}
	if appResp.Shortfall > 0 {
		resp.Shortfall = strconv.FormatInt(appResp.Shortfall, 10)
	}

	return resp, nil
}

// ConfirmVoucher バウチャー引き換え確定
func (h *VoucherHandler) ConfirmVoucher(ctx context.Context, req *pb.ConfirmVoucherRequest) (*pb.ConfirmVoucherResponse, error) {
	if req.VoucherId == "" {
		return nil, status.Error(codes.InvalidArgument, "voucher_id is required")
	}
	if req.UserId == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	if req.DiscountAmount == "" {
		return nil, status.Error(codes.InvalidArgument, "discount_amount is required")
	}

	// チェック時に算出された割引額をそのまま記録する
	discountAmount, err := strconv.ParseInt(req.DiscountAmount, 10, 64)
	if err != nil || discountAmount < 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid discount_amount format")
	}

	appReq := &voucherapp.ConfirmVoucherRequest{
		VoucherID:      req.VoucherId,
		UserID:         req.UserId,
		OrderID:        req.OrderId,
		DiscountAmount: discountAmount,
	}

	appResp, err := h.voucherService.ConfirmVoucher(ctx, appReq)
	if err != nil {
		return nil, handleError(err)
	}

	resp := &pb.ConfirmVoucherResponse{
		VoucherId:    appResp.VoucherID,
		Committed:    appResp.Committed,
		Reason:       appResp.Reason,
		RedemptionId: appResp.RedemptionID,
	}
	if appResp.Committed {
		resp.DiscountAmount = strconv.FormatInt(appResp.DiscountAmount, 10)
	}

	return resp, nil
}

// ListRejectionReasons 拒否理由一覧取得
func (h *VoucherHandler) ListRejectionReasons(ctx context.Context, req *pb.ListRejectionReasonsRequest) (*pb.ListRejectionReasonsResponse, error) {
	appResp := h.voucherService.ListRejectionReasons(ctx)

	return &pb.ListRejectionReasonsResponse{
		Reasons: appResp.Reasons,
	}, nil
}

// parseOptionalAmount 省略可能な金額フィールドをint64に変換する
func parseOptionalAmount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// handleError エラーをgRPCステータスコードに変換
func handleError(err error) error {
	// gRPCステータスエラーの場合はそのまま返す
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}

	// 予期しないエラー
	return status.Error(codes.Internal, "internal server error")
}
