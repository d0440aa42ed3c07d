package observability

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/complaint-service/internal/config"
)

func TestNewLoggerHonorsLevel(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "debug", Env: "development"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled in development")
	}
}

func TestNewLoggerProductionSuppressesDebug(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "debug", Env: "production"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be disabled in production")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info level should stay enabled in production")
	}
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "shout", Env: "development"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("unknown level should fall back to info")
	}
}
