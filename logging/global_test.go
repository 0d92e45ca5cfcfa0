package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emi03-byte/MedAI/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLogLevel(tt.input)
			if got != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetConsoleLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		env         config.Environment
		logLevelStr string
		verbose     bool
		expected    slog.Level
	}{
		{"dev defaults to info", config.EnvDevelopment, "", false, slog.LevelInfo},
		{"test quiet defaults to error", config.EnvTest, "", false, slog.LevelError},
		{"test verbose defaults to info", config.EnvTest, "", true, slog.LevelInfo},
		{"prod defaults to warn", config.EnvProduction, "", false, slog.LevelWarn},
		{"staging defaults to warn", config.EnvStaging, "", false, slog.LevelWarn},
		{"prod with debug override", config.EnvProduction, "debug", false, slog.LevelDebug},
		{"dev with error override", config.EnvDevelopment, "error", false, slog.LevelError},
		{"test with debug override (ignored)", config.EnvTest, "debug", false, slog.LevelError},
		{"test with debug override (ignored) verbose", config.EnvTest, "debug", true, slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetConsoleLogLevel(tt.env, tt.logLevelStr, tt.verbose)
			if got != tt.expected {
				t.Errorf("GetConsoleLogLevel(%v, %q, %v) = %v, want %v", tt.env, tt.logLevelStr, tt.verbose, got, tt.expected)
			}
		})
	}
}

func TestGetFileLogLevel(t *testing.T) {
	got := GetFileLogLevel()
	if got != slog.LevelDebug {
		t.Errorf("GetFileLogLevel() = %v, want %v", got, slog.LevelDebug)
	}
}

func TestInitLogger_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	InitLogger(Options{Dir: dir, RetentionWeeks: 1, MaxFileSize: 1024 * 1024, ConsoleLevel: slog.LevelError})
	defer func() {
		Close()
		DefaultLoggingService = nil
	}()

	if DefaultLoggingService == nil {
		t.Fatal("InitLogger did not initialize DefaultLoggingService")
	}

	Debug("resolved code", "code", "A02BC01")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "atcmap-*.log"))
	if len(matches) != 1 {
		t.Fatalf("Expected one log file, got %v", matches)
	}
	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), `"code":"A02BC01"`) {
		t.Errorf("Expected JSON debug record in file, got: %s", content)
	}
}

func TestInitLogger_ConsoleOnly(t *testing.T) {
	InitLogger(Options{ConsoleLevel: slog.LevelError})
	defer func() { DefaultLoggingService = nil }()

	if DefaultLoggingService.file != nil {
		t.Error("Expected no rotating file without a directory")
	}
	Info("console only")
}

func TestPackageFunctionsWithoutInit(t *testing.T) {
	DefaultLoggingService = nil

	// must not panic
	Info("info")
	Warn("warn")
	Error("error")
	Debug("debug")
}

func TestMultiHandler(t *testing.T) {
	var a, b strings.Builder
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}
	logger := slog.New(h).With("run", "r1").WithGroup("g")

	logger.Debug("only json")
	logger.Info("both", "k", "v")

	if strings.Contains(a.String(), "only json") {
		t.Error("Text handler should not receive debug records")
	}
	if !strings.Contains(a.String(), "g.k=v") || !strings.Contains(a.String(), "run=r1") {
		t.Errorf("Unexpected text output: %s", a.String())
	}
	if !strings.Contains(b.String(), "only json") || !strings.Contains(b.String(), `"g":{"k":"v"}`) {
		t.Errorf("Unexpected json output: %s", b.String())
	}
}
