// Package logger wraps a process-wide zap logger with a runtime adjustable level.
// A terminal UI owns stdout, so output goes to a file when one is configured and is
// discarded otherwise.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.Mutex
	log      = zap.NewNop()
	logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	closer   io.Closer
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// ParseLevel maps debug, info, warn and error (any case) to a zap level. Anything else is info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Init builds the global logger. An empty path discards output.
func Init(level, path string) error {
	mu.Lock()
	defer mu.Unlock()

	logLevel.SetLevel(ParseLevel(level))

	var sink zapcore.WriteSyncer
	var c io.Closer
	if path == "" {
		sink = zapcore.AddSync(io.Discard)
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.Lock(f)
		c = f
	}
	replaceLocked(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), sink, logLevel), c)
	return nil
}

// InitWithWriter builds the global logger on w. Used by tests.
func InitWithWriter(level string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logLevel.SetLevel(ParseLevel(level))
	replaceLocked(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(w), logLevel), nil)
}

func replaceLocked(core zapcore.Core, c io.Closer) {
	_ = log.Sync()
	if closer != nil {
		_ = closer.Close()
	}
	log = zap.New(core, zap.AddCaller())
	closer = c
}

// SetLevel changes the level without rebuilding the logger.
func SetLevel(level string) {
	logLevel.SetLevel(ParseLevel(level))
}

// L returns the current logger.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}

// Named returns a child of the current logger.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Sync flushes buffered entries and closes the log file, if any.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	err := log.Sync()
	if closer != nil {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
		closer = nil
		log = zap.NewNop()
	}
	return err
}
