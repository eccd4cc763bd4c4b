package handler

import (
	"net/http"
	"strconv"
	"time"

	voucherapp "voucher-server/internal/application/voucher"

	"github.com/labstack/echo/v4"
)

// VoucherHandler バウチャー関連ハンドラー
type VoucherHandler struct {
	voucherService *voucherapp.VoucherApplicationService
}

// NewVoucherHandler 新しいVoucherHandlerを作成
func NewVoucherHandler(voucherService *voucherapp.VoucherApplicationService) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
	}
}

// CheckVoucher バウチャー適格性チェックハンドラー
// @Summary バウチャーの適格性をチェック
// @Description 注文に対するバウチャーの適格性を評価し、承認時は割引額を返します。副作用はありません
// @Tags voucher
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CheckVoucherRequest true "適格性チェックリクエスト"
// @Success 200 {object} CheckVoucherResponse "チェック結果（拒否も200で返る）"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 403 {object} ErrorResponse "認証エラー"
// @Router /vouchers/check [post]
func (h *VoucherHandler) CheckVoucher(c echo.Context) error {
	var reqBody CheckVoucherRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// トークンのuser_idとリクエストのuser_idが一致するか確認
	tokenUserID, ok := c.Get("user_id").(string)
	if !ok || tokenUserID != reqBody.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "user_id mismatch")
	}

	orderSubtotal, shippingCost, err := parseOrderAmounts(reqBody.OrderSubtotal, reqBody.ShippingCost)
	if err != nil {
		return err
	}

	req := &voucherapp.CheckVoucherRequest{
		VoucherID:     reqBody.VoucherID,
		UserID:        reqBody.UserID,
		OrderSubtotal: orderSubtotal,
		ShippingCost:  shippingCost,
	}

	resp, err := h.voucherService.CheckVoucher(c.Request().Context(), req)
	if err != nil {
		return err
	}

	checkResp := CheckVoucherResponse{
		VoucherID: resp.VoucherID,
		Approved:  resp.Approved,
		Reason:    resp.Reason,
	}
	if resp.Approved {
		checkResp.DiscountAmount = strconv.FormatInt(resp.DiscountAmount, 10)
	}
	if resp.Shortfall > 0 {
		checkResp.Shortfall = strconv.FormatInt(resp.Shortfall, 10)
	}

	return c.JSON(http.StatusOK, checkResp)
}

// ConfirmVoucher バウチャー確定ハンドラー
// @Summary バウチャーの引き換えを確定
// @Description 使用回数上限を再検査の上で引き換えを記録し、割引を確定します。同一注文IDでの再送は元の結果を返します
// @Tags voucher
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ConfirmVoucherRequest true "確定リクエスト"
// @Success 200 {object} ConfirmVoucherResponse "確定結果（拒否も200で返る）"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 403 {object} ErrorResponse "認証エラー"
// @Router /vouchers/confirm [post]
func (h *VoucherHandler) ConfirmVoucher(c echo.Context) error {
	var reqBody ConfirmVoucherRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// トークンのuser_idとリクエストのuser_idが一致するか確認
	tokenUserID, ok := c.Get("user_id").(string)
	if !ok || tokenUserID != reqBody.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "user_id mismatch")
	}

	if reqBody.OrderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order_id is required")
	}

	// チェック時に算出された割引額をそのまま記録する
	discountAmount, err := strconv.ParseInt(reqBody.DiscountAmount, 10, 64)
	if err != nil || discountAmount < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid discount_amount format")
	}

	req := &voucherapp.ConfirmVoucherRequest{
		VoucherID:      reqBody.VoucherID,
		UserID:         reqBody.UserID,
		OrderID:        reqBody.OrderID,
		DiscountAmount: discountAmount,
	}

	resp, err := h.voucherService.ConfirmVoucher(c.Request().Context(), req)
	if err != nil {
		return err
	}

	confirmResp := ConfirmVoucherResponse{
		VoucherID:    resp.VoucherID,
		Committed:    resp.Committed,
		Reason:       resp.Reason,
		RedemptionID: resp.RedemptionID,
	}
	if resp.Committed {
		confirmResp.DiscountAmount = strconv.FormatInt(resp.DiscountAmount, 10)
	}

	return c.JSON(http.StatusOK, confirmResp)
}

// ListRejectionReasons 拒否理由一覧取得ハンドラー
// @Summary 拒否理由の一覧を取得
// @Description 適格性評価が返しうる拒否理由コードの一覧を返します
// @Tags voucher
// @Produce json
// @Success 200 {object} ListRejectionReasonsResponse "拒否理由一覧"
// @Router /vouchers/rejection-reasons [get]
func (h *VoucherHandler) ListRejectionReasons(c echo.Context) error {
	resp := h.voucherService.ListRejectionReasons(c.Request().Context())

	return c.JSON(http.StatusOK, ListRejectionReasonsResponse{
		Reasons: resp.Reasons,
	})
}

// CreateVoucher バウチャー作成ハンドラー（管理API用）
// @Summary バウチャーを作成（管理API）
// @Description 新しいバウチャーを作成します
// @Tags admin
// @Accept json
// @Produce json
// @Param X-API-Key header string true "APIキー"
// @Param request body CreateVoucherRequest true "バウチャー作成リクエスト"
// @Success 200 {object} CreateVoucherResponse "バウチャー作成成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 409 {object} ErrorResponse "バウチャーIDが重複"
// @Router /admin/vouchers [post]
func (h *VoucherHandler) CreateVoucher(c echo.Context) error {
	var reqBody CreateVoucherRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	discountAmount, err := strconv.ParseInt(reqBody.DiscountAmount, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid discount_amount format")
	}
	maxDiscountAmount, err := parseOptionalAmount(reqBody.MaxDiscountAmount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid max_discount_amount format")
	}
	shippingWaiverAmount, err := parseOptionalAmount(reqBody.ShippingWaiverAmount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid shipping_waiver_amount format")
	}
	minOrderValue, err := parseOptionalAmount(reqBody.MinOrderValue)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid min_order_value format")
	}

	validFrom, err := time.Parse(time.RFC3339, reqBody.ValidFrom)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid valid_from format")
	}
	validUntil, err := time.Parse(time.RFC3339, reqBody.ValidUntil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid valid_until format")
	}

	req := &voucherapp.CreateVoucherRequest{
		VoucherID:            reqBody.VoucherID,
		Kind:                 reqBody.Kind,
		DiscountModel:        reqBody.DiscountModel,
		DiscountAmount:       discountAmount,
		MaxDiscountAmount:    maxDiscountAmount,
		ShippingWaiverAmount: shippingWaiverAmount,
		MinOrderValue:        minOrderValue,
		UsageLimitTotal:      reqBody.UsageLimitTotal,
		UsageLimitPerUser:    reqBody.UsageLimitPerUser,
		ValidFrom:            validFrom,
		ValidUntil:           validUntil,
	}

	resp, err := h.voucherService.CreateVoucher(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreateVoucherResponse{
		VoucherID: resp.VoucherID,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	})
}

// GetVoucher バウチャー取得ハンドラー（管理API用）
// @Summary バウチャーを取得（管理API）
// @Description 指定されたバウチャーの詳細を取得します
// @Tags admin
// @Produce json
// @Param voucher_id path string true "バウチャーID" example(SAVE10)
// @Param X-API-Key header string true "APIキー"
// @Success 200 {object} GetVoucherResponse "バウチャー取得成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 404 {object} ErrorResponse "バウチャーが見つからない"
// @Router /admin/vouchers/{voucher_id} [get]
func (h *VoucherHandler) GetVoucher(c echo.Context) error {
	voucherID := c.Param("voucher_id")
	if voucherID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "voucher_id is required")
	}

	resp, err := h.voucherService.GetVoucher(c.Request().Context(), &voucherapp.GetVoucherRequest{
		VoucherID: voucherID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, GetVoucherResponse{
		VoucherID:            resp.VoucherID,
		Kind:                 resp.Kind,
		DiscountModel:        resp.DiscountModel,
		DiscountAmount:       strconv.FormatInt(resp.DiscountAmount, 10),
		MaxDiscountAmount:    strconv.FormatInt(resp.MaxDiscountAmount, 10),
		ShippingWaiverAmount: strconv.FormatInt(resp.ShippingWaiverAmount, 10),
		MinOrderValue:        strconv.FormatInt(resp.MinOrderValue, 10),
		UsageLimitTotal:      resp.UsageLimitTotal,
		UsageLimitPerUser:    resp.UsageLimitPerUser,
		UsageCountTotal:      resp.UsageCountTotal,
		RemainingUses:        resp.RemainingUses,
		ValidFrom:            resp.ValidFrom.Format(time.RFC3339),
		ValidUntil:           resp.ValidUntil.Format(time.RFC3339),
		Active:               resp.Active,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	})
}

// ListVouchers バウチャー一覧取得ハンドラー（管理API用）
// @Summary バウチャー一覧を取得（管理API）
// @Description バウチャーの一覧をページネーション付きで取得します
// @Tags admin
// @Produce json
// @Param limit query int false "取得件数（デフォルト50、最大100）" example(50)
// @Param offset query int false "オフセット" example(0)
// @Param X-API-Key header string true "APIキー"
// @Success 200 {object} ListVouchersResponse "バウチャー一覧取得成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /admin/vouchers [get]
func (h *VoucherHandler) ListVouchers(c echo.Context) error {
	limit, offset := parsePagination(c)

	resp, err := h.voucherService.ListVouchers(c.Request().Context(), &voucherapp.ListVouchersRequest{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	items := make([]VoucherItem, len(resp.Vouchers))
	for i, v := range resp.Vouchers {
		items[i] = VoucherItem{
			VoucherID:       v.ID(),
			Kind:            string(v.Kind()),
			DiscountModel:   string(v.DiscountModel()),
			DiscountAmount:  strconv.FormatInt(v.DiscountAmount(), 10),
			MinOrderValue:   strconv.FormatInt(v.MinOrderValue(), 10),
			UsageLimitTotal: v.UsageLimitTotal(),
			UsageCountTotal: v.UsageCountTotal(),
			ValidFrom:       v.ValidFrom().Format(time.RFC3339),
			ValidUntil:      v.ValidUntil().Format(time.RFC3339),
			Active:          v.Active(),
		}
	}

	return c.JSON(http.StatusOK, ListVouchersResponse{
		Vouchers: items,
		Total:    resp.Total,
		Limit:    resp.Limit,
		Offset:   resp.Offset,
	})
}

// DeactivateVoucher バウチャー無効化ハンドラー（管理API用）
// @Summary バウチャーを無効化（管理API）
// @Description 指定されたバウチャーを無効化します。以降のチェックと確定は拒否されます
// @Tags admin
// @Produce json
// @Param voucher_id path string true "バウチャーID" example(SAVE10)
// @Param X-API-Key header string true "APIキー"
// @Success 200 {object} DeactivateVoucherResponse "バウチャー無効化成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 404 {object} ErrorResponse "バウチャーが見つからない"
// @Router /admin/vouchers/{voucher_id}/deactivate [post]
func (h *VoucherHandler) DeactivateVoucher(c echo.Context) error {
	voucherID := c.Param("voucher_id")
	if voucherID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "voucher_id is required")
	}

	resp, err := h.voucherService.DeactivateVoucher(c.Request().Context(), &voucherapp.DeactivateVoucherRequest{
		VoucherID: voucherID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeactivateVoucherResponse{
		VoucherID:     resp.VoucherID,
		Active:        resp.Active,
		DeactivatedAt: resp.DeactivatedAt.Format(time.RFC3339),
	})
}

// DeleteVoucher バウチャー削除ハンドラー（管理API用）
// @Summary バウチャーを削除（管理API）
// @Description 指定されたバウチャーを論理削除します。引き換え台帳は保持されます
// @Tags admin
// @Produce json
// @Param voucher_id path string true "バウチャーID" example(SAVE10)
// @Param X-API-Key header string true "APIキー"
// @Success 200 {object} DeleteVoucherResponse "バウチャー削除成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 404 {object} ErrorResponse "バウチャーが見つからない"
// @Router /admin/vouchers/{voucher_id} [delete]
func (h *VoucherHandler) DeleteVoucher(c echo.Context) error {
	voucherID := c.Param("voucher_id")
	if voucherID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "voucher_id is required")
	}

	resp, err := h.voucherService.DeleteVoucher(c.Request().Context(), &voucherapp.DeleteVoucherRequest{
		VoucherID: voucherID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeleteVoucherResponse{
		VoucherID: resp.VoucherID,
		DeletedAt: resp.DeletedAt.Format(time.RFC3339),
	})
}

// ListRedemptions 引き換え台帳取得ハンドラー（管理API用）
// @Summary 引き換え台帳を取得（管理API）
// @Description 指定されたバウチャーの引き換え記録をページネーション付きで取得します
// @Tags admin
// @Produce json
// @Param voucher_id path string true "バウチャーID" example(SAVE10)
// @Param limit query int false "取得件数（デフォルト50、最大100）" example(50)
// @Param offset query int false "オフセット" example(0)
// @Param X-API-Key header string true "APIキー"
// @Success 200 {object} ListRedemptionsResponse "引き換え台帳取得成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 404 {object} ErrorResponse "バウチャーが見つからない"
// @Router /admin/vouchers/{voucher_id}/redemptions [get]
func (h *VoucherHandler) ListRedemptions(c echo.Context) error {
	voucherID := c.Param("voucher_id")
	if voucherID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "voucher_id is required")
	}

	limit, offset := parsePagination(c)

	resp, err := h.voucherService.ListRedemptions(c.Request().Context(), &voucherapp.ListRedemptionsRequest{
		VoucherID: voucherID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return err
	}

	items := make([]RedemptionItem, len(resp.Redemptions))
	for i, r := range resp.Redemptions {
		items[i] = RedemptionItem{
			RedemptionID:   r.RedemptionID(),
			VoucherID:      r.VoucherID(),
			UserID:         r.UserID(),
			OrderID:        r.OrderID(),
			DiscountAmount: strconv.FormatInt(r.DiscountAmount(), 10),
			RedeemedAt:     r.RedeemedAt().Format(time.RFC3339),
		}
	}

	return c.JSON(http.StatusOK, ListRedemptionsResponse{
		Redemptions: items,
		Total:       resp.Total,
		Limit:       resp.Limit,
		Offset:      resp.Offset,
	})
}

// parseOrderAmounts 注文金額フィールドをint64に変換する
func parseOrderAmounts(subtotal, shipping string) (int64, int64, error) {
	orderSubtotal, err := strconv.ParseInt(subtotal, 10, 64)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid order_subtotal format")
	}
	shippingCost, err := parseOptionalAmount(shipping)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid shipping_cost format")
	}
	return orderSubtotal, shippingCost, nil
}

// parseOptionalAmount 省略可能な金額フィールドをint64に変換する
func parseOptionalAmount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// parsePagination クエリパラメータからlimit/offsetを取得する
func parsePagination(c echo.Context) (int, int) {
	limit := 50
	if l := c.QueryParam("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}
	offset := 0
	if o := c.QueryParam("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil {
			offset = parsed
		}
	}
	return limit, offset
}
