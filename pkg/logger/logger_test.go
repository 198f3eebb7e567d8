package logger

import (
	"path/filepath"
	"testing"

	"quiz_hub_backend/internal/config"

	"go.uber.org/zap"
)

func TestInitLoggerAndSetMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Log.File = filepath.Join(t.TempDir(), "app.log")
	cfg.Log.MaxSize = 1

	prev := Log
	defer func() { Log = prev }()

	InitLogger(cfg)
	if Level() != zap.DebugLevel {
		t.Errorf("Expected debug level, got %v", Level())
	}
	Log.Debug("debug message")

	SetMode("release")
	if Level() != zap.InfoLevel {
		t.Errorf("Expected info level after switching mode, got %v", Level())
	}
}
