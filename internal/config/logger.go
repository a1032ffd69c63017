package config

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 設定に応じたzapロガーを作成
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg.Server.Mode == "debug" || strings.EqualFold(cfg.Log.Level, "debug") {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if level, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
		zapConfig.Level = zap.NewAtomicLevelAt(level)
	}
	zapConfig.EncoderConfig.TimeKey = "time"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapConfig.Build()
}
