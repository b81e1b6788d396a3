package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitDebugModeUsesConsole(t *testing.T) {
	log := Init("debug", Options{})
	if log == nil {
		t.Fatal("expected logger instance")
	}
	if L != log {
		t.Fatal("global instance not updated")
	}
	if !log.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug mode should enable debug level")
	}
}

func TestInitReleaseModeWritesFile(t *testing.T) {
	dir := t.TempDir()
	log := Init("release", Options{Dir: dir, Filename: "test.log"})
	if log == nil {
		t.Fatal("expected logger instance")
	}

	log.Sugar().Infow("release_log_entry", "key", "value")
	if err := log.Sync(); err != nil {
		t.Logf("sync returned: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	if !strings.Contains(string(content), "release_log_entry") {
		t.Fatalf("log entry missing from file: %s", content)
	}
	if !strings.Contains(string(content), `"key":"value"`) {
		t.Fatalf("structured field missing from file: %s", content)
	}
}

func TestHelpersWorkWithoutInit(t *testing.T) {
	saved := L
	L = nil
	defer func() { L = saved }()

	if Z() == nil {
		t.Fatal("Z should fall back to a usable logger")
	}
	if S() == nil {
		t.Fatal("S should fall back to a usable logger")
	}
	if StdLogger() == nil {
		t.Fatal("StdLogger should fall back to a usable logger")
	}
	// 不应 panic
	Infow("fallback_entry", "key", "value")
}

func TestResolveLogFilePathDefaults(t *testing.T) {
	dir := t.TempDir()
	path, err := resolveLogFilePath(Options{Dir: dir})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if path != filepath.Join(dir, defaultLogFilename) {
		t.Fatalf("path want default filename, got %s", path)
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	if got := normalizePositiveInt(0, 7); got != 7 {
		t.Fatalf("want fallback 7 got %d", got)
	}
	if got := normalizePositiveInt(-3, 7); got != 7 {
		t.Fatalf("want fallback 7 got %d", got)
	}
	if got := normalizePositiveInt(12, 7); got != 12 {
		t.Fatalf("want 12 got %d", got)
	}
}
