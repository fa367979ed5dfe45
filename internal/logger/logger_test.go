package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "lights.log")

	// 1MB is the smallest size lumberjack rotates at.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Nop()

	payload := strings.Repeat("l", 300)
	for i := 0; i < 6000; i++ {
		Sugar.Infof("selection %d: %s", i, payload)
	}
	Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Fatal("main log file does not exist")
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	rotated := 0
	for _, e := range entries {
		name := e.Name()
		if name != "lights.log" && strings.HasPrefix(name, "lights-") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("expected a rotated backup next to lights.log, found %d files", len(entries))
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{level: "error", expected: []string{"ERROR"}, excluded: []string{"WARN", "INFO", "DEBUG"}},
		{level: "warn", expected: []string{"ERROR", "WARN"}, excluded: []string{"INFO", "DEBUG"}},
		{level: "info", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
		{level: "debug", expected: []string{"ERROR", "WARN", "INFO", "DEBUG"}},
		{level: "bogus", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			if err := InitWithFileConfig(tt.level, FileConfig{Path: logFile, MaxSizeMB: 10}, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}
			defer Nop()

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestJSONFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "lights.json")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 10, JSON: true}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Nop()

	Named("lighting").Info("registered light", zap.Int("point_lights", 3))
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "lighting" {
		t.Errorf("expected component lighting, got %v", entry["component"])
	}
	if entry["point_lights"] != float64(3) {
		t.Errorf("expected point_lights 3, got %v", entry["point_lights"])
	}
}

func TestNopBeforeInit(t *testing.T) {
	Nop()

	// Must not panic without Init.
	Info("dropped")
	Named("scene").Warn("dropped")
	Sync()
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/lightquery.log")

	if cfg.Path != "/tmp/lightquery.log" {
		t.Errorf("expected path /tmp/lightquery.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 14 {
		t.Errorf("expected MaxAgeDays 14, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
	if cfg.JSON {
		t.Error("expected console encoding by default")
	}
}
