package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(FormatJSON, LevelInfo, &buf).With("run_id", "run-1")

	logger.Debug("hidden")
	logger.Warn("correction ignored", "team", "Arsenal", "delta", -2, "error", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := sonic.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "correction ignored" || entry["level"] != "WARN" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["run_id"] != "run-1" || entry["team"] != "Arsenal" || entry["error"] != "boom" {
		t.Fatalf("unexpected fields: %+v", entry)
	}
	if caller, _ := entry["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("caller must point at the call site, got %q", caller)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	New(FormatConsole, LevelDebug, &buf).Info("verify finished", "errors", 0)

	if !strings.Contains(buf.String(), "verify finished") || !strings.Contains(buf.String(), `"errors": 0`) {
		t.Fatalf("unexpected console output: %q", buf.String())
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("With on nil logger must return a usable logger")
	}
}
