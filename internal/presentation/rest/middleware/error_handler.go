package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"voucher-server/internal/domain/voucher"
	otelinfra "voucher-server/internal/infrastructure/observability/otel"
)

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
//
// ここで扱うのはインフラ障害と不正な管理操作のみ。業務上の拒否
// （期限切れや上限到達など）はハンドラーが200の結果として返すため、
// ここには到達しない
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	if errors.Is(err, voucher.ErrVoucherNotFound) {
		logger.Warn(ctx, "Voucher not found", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "voucher_not_found",
			Message: err.Error(),
		})
	}

	if errors.Is(err, voucher.ErrVoucherAlreadyExists) {
		logger.Warn(ctx, "Voucher already exists", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "voucher_already_exists",
			Message: err.Error(),
		})
	}

	if errors.Is(err, voucher.ErrRedemptionNotFound) {
		logger.Warn(ctx, "Redemption not found", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "redemption_not_found",
			Message: err.Error(),
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
