package rest

import (
	authapp "voucher-server/internal/application/auth"
	voucherapp "voucher-server/internal/application/voucher"
	"voucher-server/internal/infrastructure/config"
	otelinfra "voucher-server/internal/infrastructure/observability/otel"
	"voucher-server/internal/presentation/rest/handler"
	restmiddleware "voucher-server/internal/presentation/rest/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Router REST APIルーター
type Router struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	voucherHandler *handler.VoucherHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	authService *authapp.AuthApplicationService,
	voucherService *voucherapp.VoucherApplicationService,
) (*Router, error) {
	e := echo.New()

	// Echoのデフォルトエラーハンドラーを無効化（カスタムエラーハンドラーを使用）
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// エラーハンドリングミドルウェアで処理される
	}

	// ミドルウェアの設定
	setupMiddleware(e, cfg, logger, metrics)

	// ハンドラーの作成
	authHandler := handler.NewAuthHandler(authService)
	voucherHandler := handler.NewVoucherHandler(voucherService)

	// ルーティングの設定
	setupRoutes(e, cfg, logger, authHandler, voucherHandler)

	// Swagger UI / ReDoc統合
	SetupSwagger(e)

	return &Router{
		echo:           e,
		authHandler:    authHandler,
		voucherHandler: voucherHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, cfg *config.Config, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	// セキュリティヘッダーの設定
	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// メトリクスミドルウェア
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	logger *otelinfra.Logger,
	authHandler *handler.AuthHandler,
	voucherHandler *handler.VoucherHandler,
) {
	// ヘルスチェックエンドポイント（認証不要）
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// API v1グループ
	api := e.Group("/api/v1")

	// 認証トークン発行（認証不要）
	api.POST("/auth/token", authHandler.GenerateToken)

	// 拒否理由一覧（認証不要）
	api.GET("/vouchers/rejection-reasons", voucherHandler.ListRejectionReasons)

	// 認証が必要なエンドポイント
	authGroup := api.Group("", restmiddleware.AuthMiddleware(&cfg.JWT, logger))

	// バウチャー適格性チェック・確定エンドポイント
	authGroup.POST("/vouchers/check", voucherHandler.CheckVoucher)
	authGroup.POST("/vouchers/confirm", voucherHandler.ConfirmVoucher)

	// 管理APIグループ（APIキー認証）
	admin := e.Group("/admin", restmiddleware.APIKeyMiddleware(&cfg.AdminAPI, logger))

	admin.POST("/vouchers", voucherHandler.CreateVoucher)
	admin.GET("/vouchers", voucherHandler.ListVouchers)
	admin.GET("/vouchers/:voucher_id", voucherHandler.GetVoucher)
	admin.POST("/vouchers/:voucher_id/deactivate", voucherHandler.DeactivateVoucher)
	admin.DELETE("/vouchers/:voucher_id", voucherHandler.DeleteVoucher)
	admin.GET("/vouchers/:voucher_id/redemptions", voucherHandler.ListRedemptions)
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown サーバーをシャットダウン
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
