package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karyakir/karyakir_backend/internal/config"
	"github.com/karyakir/karyakir_backend/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗しました: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("サーバーを起動しています...", zap.String("mode", cfg.Server.Mode))

	gin.SetMode(cfg.Server.Mode)

	// エンドポイント登録をzapに出力
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		logger.Debug("エンドポイント登録",
			zap.String("method", httpMethod),
			zap.String("path", absolutePath),
			zap.String("handler", handlerName),
			zap.Int("handlers", nuHandlers))
	}

	// データベース接続
	db, err := config.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal("データベース接続に失敗しました", zap.Error(err))
	}

	if cfg.Database.Driver == "sqlite" {
		// ローカル開発用のsqliteは起動時にテーブルを作成
		if err := config.AutoMigrate(db); err != nil {
			logger.Fatal("マイグレーションに失敗しました", zap.Error(err))
		}
	}

	// ルーターをセットアップ
	router, err := routes.SetupRouter(cfg, db, logger)
	if err != nil {
		logger.Fatal("ルーターの初期化に失敗しました", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("サーバーを開始しています...", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("サーバーの起動に失敗しました", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーを停止しています...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("サーバーの停止に失敗しました", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
