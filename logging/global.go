// Package logging wraps log/slog with a console handler and a weekly
// rotating JSON file.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/emi03-byte/MedAI/config"
)

type LoggingService struct {
	Logger *slog.Logger
	file   *RotatingLogger
}

var DefaultLoggingService *LoggingService

// Options configures InitLogger.
type Options struct {
	Dir            string // empty disables the file handler
	RetentionWeeks int
	MaxFileSize    int64
	ConsoleLevel   slog.Level
}

// OptionsFromConfig derives logger options from the application config.
func OptionsFromConfig(cfg *config.Config, verbose bool) Options {
	return Options{
		Dir:            cfg.LogDir,
		RetentionWeeks: cfg.LogRetentionWeeks,
		MaxFileSize:    cfg.MaxLogFileSize,
		ConsoleLevel:   GetConsoleLogLevel(cfg.Env, cfg.LogLevel, verbose),
	}
}

// InitLogger builds the global logger and installs it as the slog default.
// Failing to open the log file degrades to console-only logging.
func InitLogger(opts Options) {
	Close()

	console := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: opts.ConsoleLevel})
	service := &LoggingService{Logger: slog.New(console)}

	if opts.Dir != "" {
		rl := NewRotatingLogger(opts.Dir, opts.RetentionWeeks, opts.MaxFileSize)
		if err := rl.Open(); err != nil {
			service.Logger.Error("Failed to initialize rotating logger", "error", err)
		} else {
			rl.StartCleanup(24 * time.Hour)
			file := slog.NewJSONHandler(rl, &slog.HandlerOptions{Level: GetFileLogLevel()})
			service.Logger = slog.New(&multiHandler{handlers: []slog.Handler{console, file}})
			service.file = rl
		}
	}

	DefaultLoggingService = service
	slog.SetDefault(service.Logger)
}

// Close flushes and closes the log file, if any.
func Close() error {
	if DefaultLoggingService == nil || DefaultLoggingService.file == nil {
		return nil
	}
	err := DefaultLoggingService.file.Close()
	DefaultLoggingService.file = nil
	return err
}

// GetConsoleLogLevel picks the console level. Tests stay quiet unless
// verbose; other environments honour LOG_LEVEL and otherwise default to info
// in development and warn elsewhere.
func GetConsoleLogLevel(env config.Environment, level string, verbose bool) slog.Level {
	if env == config.EnvTest {
		if verbose {
			return slog.LevelInfo
		}
		return slog.LevelError
	}
	if level != "" {
		return parseLogLevel(level)
	}
	if env == config.EnvDevelopment {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// GetFileLogLevel returns the file handler level. The file always keeps debug.
func GetFileLogLevel() slog.Level {
	return slog.LevelDebug
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logger() *slog.Logger {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		return fallback
	}
	return DefaultLoggingService.Logger
}

// Fallback to console logger if not initialized
var fallback = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// Package-level functions for direct access

func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}

func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}

// InfoContext logs with ctx so handlers can pick up request scoped values.
func InfoContext(ctx context.Context, msg string, args ...any) {
	logger().InfoContext(ctx, msg, args...)
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// With returns the global logger with args attached to every record.
func With(args ...any) *slog.Logger {
	return logger().With(args...)
}
