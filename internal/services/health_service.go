package services

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthStatus ヘルスステータス
type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthService ヘルスチェックに関するサービスインターフェース
type HealthService interface {
	GetStatus() HealthStatus
}

// healthService HealthServiceの実装
type healthService struct {
	db        *gorm.DB
	logger    *zap.Logger
	startTime time.Time
}

// NewHealthService HealthServiceを作成
func NewHealthService(db *gorm.DB, logger *zap.Logger) HealthService {
	return &healthService{
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// GetStatus サービスのステータスを取得
func (s *healthService) GetStatus() HealthStatus {
	status := HealthStatus{
		Status:    "ok",
		Database:  "ok",
		Uptime:    time.Since(s.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "1.0.0", // アプリケーションバージョン
	}

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		// ドライバのエラー内容は公開せずログにだけ残す
		s.logger.Warn("データベースのヘルスチェックに失敗しました", zap.Error(err))
		status.Status = "degraded"
		status.Database = "unavailable"
	}

	return status
}
