package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Verbosity the logger was initialized with
	Verbosity int
)

func init() {
	// Safe no-op logger until Initialize() is called
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger for the given verbosity.
//
// Entries go to stderr: stdout carries generated output that is piped
// into other source files and must stay clean.
func Initialize(verbosity int) error {
	return InitializeWithSink(verbosity, zapcore.Lock(os.Stderr))
}

// InitializeWithSink is Initialize with an explicit destination.
func InitializeWithSink(verbosity int, sink zapcore.WriteSyncer) error {
	Verbosity = verbosity
	Logger = zap.New(
		zapcore.NewCore(newConsoleEncoder(), sink, VerbosityToLevel(verbosity)),
	).Sugar()
	return nil
}

// newConsoleEncoder returns a calm console encoder without timestamps
// so output stays diffable between runs.
func newConsoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}
