package main

import (
	"fmt"
	"os"
	"time"

	"github.com/karyakir/karyakir_backend/internal/config"
	"github.com/karyakir/karyakir_backend/internal/mock"
	"github.com/karyakir/karyakir_backend/internal/repository"
	"github.com/karyakir/karyakir_backend/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Karya KIR のデータベース管理",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "テーブルを作成・更新する",
	Args:  cobra.NoArgs,
	RunE: withDB(func(db *gorm.DB, logger *zap.Logger) error {
		if err := config.AutoMigrate(db); err != nil {
			return fmt.Errorf("マイグレーションに失敗しました: %w", err)
		}
		logger.Info("マイグレーションが成功しました")
		return nil
	}),
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "テーブルを削除する",
	Args:  cobra.NoArgs,
	RunE: withDB(func(db *gorm.DB, logger *zap.Logger) error {
		if err := config.DropTables(db); err != nil {
			return fmt.Errorf("テーブル削除に失敗しました: %w", err)
		}
		logger.Info("テーブルの削除が成功しました")
		return nil
	}),
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "開発用のモックデータを投入する",
	Args:  cobra.NoArgs,
	RunE: withDB(func(db *gorm.DB, logger *zap.Logger) error {
		works, err := mock.Seed(db, time.Now())
		if err != nil {
			return fmt.Errorf("モックデータの投入に失敗しました: %w", err)
		}
		logger.Info("モックデータを投入しました", zap.Int("works", len(works)))
		return nil
	}),
}

var recountCmd = &cobra.Command{
	Use:   "recount",
	Short: "いいね数とコメント数を実データから再計算する",
	Args:  cobra.NoArgs,
	RunE: withDB(func(db *gorm.DB, logger *zap.Logger) error {
		// 再計算ではストレージとイベントを使わない
		workService := services.NewWorkService(
			repository.NewWorkRepository(db),
			repository.NewCommentRepository(db),
			nil,
			services.NewEventPublisher(nil, ""),
			logger,
		)
		updated, err := workService.Recount()
		if err != nil {
			return fmt.Errorf("再計算に失敗しました: %w", err)
		}
		logger.Info("カウンターを再計算しました", zap.Int64("works", updated))
		return nil
	}),
}

// withDB 設定とデータベース接続を用意してからコマンドを実行
func withDB(run func(db *gorm.DB, logger *zap.Logger) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("設定の読み込みに失敗しました: %w", err)
		}

		logger, err := config.NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("ロガーの初期化に失敗しました: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		db, err := config.InitDB(cfg, logger)
		if err != nil {
			return fmt.Errorf("データベース接続に失敗しました: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		return run(db, logger)
	}
}

func init() {
	rootCmd.AddCommand(upCmd, downCmd, seedCmd, recountCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
