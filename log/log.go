// Package log provides structured logging for the subxt packages on top of zap.
package log

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// mainLoggerName is a name of the global logger.
const mainLoggerName = "subxt"

// where logs go by default.
var logWriter io.Writer = os.Stderr

// AppLog is the local app singleton logger.
var (
	mu     sync.RWMutex
	AppLog Log
)

// GetLogger gets logger.
func GetLogger() Log {
	mu.RLock()
	defer mu.RUnlock()

	return AppLog
}

// SetupGlobal overwrites global logger.
func SetupGlobal(logger Log) {
	mu.Lock()
	defer mu.Unlock()
	AppLog = logger
}

func init() {
	SetupGlobal(NewWithLevel(mainLoggerName,
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
	))
}

// NewNop creates silent logger.
func NewNop() Log {
	return NewFromLog(zap.NewNop())
}

// NewWithLevel creates a logger with a fixed level and with a set of (optional) hooks.
func NewWithLevel(module string,
	level zap.AtomicLevel,
	encoder zapcore.Encoder,
	hooks ...func(zapcore.Entry) error,
) Log {
	return newWithWriter(logWriter, module, level, encoder, hooks...)
}

func newWithWriter(w io.Writer, module string,
	level zap.AtomicLevel,
	encoder zapcore.Encoder,
	hooks ...func(zapcore.Entry) error,
) Log {
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	log := zap.New(zapcore.RegisterHooks(core, hooks...)).Named(module)
	l := NewFromLog(log)
	l.lvl = &level
	return l
}

// NewFromLog creates a Log from an existing zap-compatible log.
func NewFromLog(l *zap.Logger) Log {
	return Log{logger: l, sugar: l.Sugar()}
}

// Encoder returns the zap encoder for the encoder kind ("console" or "json").
func Encoder(kind string) zapcore.Encoder {
	if kind == "json" {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
}

// public wrappers abstracting away logging lib impl

// Info prints formatted info level log message.
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Debug prints formatted debug level log message.
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Warning prints formatted warning level log message.
func Warning(msg string, args ...any) {
	GetLogger().Warning(msg, args...)
}

// Error prints formatted error level log message.
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// With returns a FieldLogger which you can append fields to.
func With() FieldLogger {
	return GetLogger().With()
}
