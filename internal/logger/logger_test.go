package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestHelpersSafeBeforeInit(t *testing.T) {
	// 未初始化时使用 no-op logger，不应 panic
	Debug("debug", zap.Int("n", 1))
	Info("info")
	Warn("warn")
	Error("error")
	Sync()
}

func TestFileOutput(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "opus.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	t.Cleanup(func() {
		_ = InitWithFileConfig("info", FileConfig{}, false)
	})

	Info("[Alchemy] engine started", zap.Int("particles", 200))
	Debug("[Scroll] tracker registered", zap.String("name", "geometry"))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[Alchemy] engine started") {
		t.Errorf("log file missing info entry:\n%s", content)
	}
	if !strings.Contains(content, "particles") {
		t.Errorf("log file missing structured field:\n%s", content)
	}
	if !strings.Contains(content, "DEBUG") {
		t.Errorf("log file missing debug entry:\n%s", content)
	}
}

func TestNoCoresIsNop(t *testing.T) {
	if err := InitWithFileConfig("info", FileConfig{}, false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without cores should be a no-op")
	}
}
