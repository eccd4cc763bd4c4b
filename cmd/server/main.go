package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	authapp "voucher-server/internal/application/auth"
	voucherapp "voucher-server/internal/application/voucher"
	"voucher-server/internal/infrastructure/config"
	otelinfra "voucher-server/internal/infrastructure/observability/otel"
	"voucher-server/internal/infrastructure/persistence/mysql"
	grpcserver "voucher-server/internal/presentation/grpc"
	"voucher-server/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("voucher-server")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("voucher-server")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// データベース接続の初期化
	db, err := mysql.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// リポジトリの初期化
	voucherRepo := mysql.NewVoucherRepository(db)

	// アプリケーションサービスの初期化
	authService := authapp.NewAuthApplicationService(&cfg.JWT, logger)

	voucherService := voucherapp.NewVoucherApplicationService(
		voucherRepo,
		logger,
		metrics,
		cfg.Redemption.MaxCommitRetries,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(cfg, logger, metrics, authService, voucherService)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// gRPCサーバーの初期化
	grpcSrv, err := grpcserver.NewServer(cfg, logger, voucherService)
	if err != nil {
		log.Fatalf("Failed to create gRPC server: %v", err)
	}

	// サーバーアドレスの設定
	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("REST API server starting on %s", address)
		if err := router.Start(address); err != nil {
			log.Printf("REST API server error: %v", err)
		}
	}()

	// gRPCサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("gRPC server starting on port %d", grpcSrv.Port())
		if err := grpcSrv.Start(); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// シグナルを待機
	<-quit
	log.Println("Shutting down servers...")

	// グレースフルシャットダウン
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// REST APIサーバーのシャットダウン
	if err := router.Shutdown(); err != nil {
		log.Printf("Error shutting down REST API server: %v", err)
	}

	// gRPCサーバーのシャットダウン
	if err := grpcSrv.Stop(shutdownCtx); err != nil {
		log.Printf("Error shutting down gRPC server: %v", err)
	}

	log.Println("Servers stopped")
}
