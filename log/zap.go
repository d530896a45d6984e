package log

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is an exported type that embeds our logger.
type Log struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	lvl    *zap.AtomicLevel
}

// Exported from Log basic logging options.

// Info prints formatted info level log message.
func (l Log) Info(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Debug prints formatted debug level log message.
func (l Log) Debug(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Error prints formatted error level log message.
func (l Log) Error(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

// Warning prints formatted warning level log message.
func (l Log) Warning(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Zap returns the underlying zap logger.
func (l Log) Zap() *zap.Logger {
	return l.logger
}

// Wrap and export field logic

// Field is a log field holding a name and value
type Field zap.Field

// Field satisfy loggable field interface.
func (f Field) Field() Field { return f }

// String returns a string Field
func String(name, val string) Field {
	return Field(zap.String(name, val))
}

// Int returns an int Field.
func Int(name string, val int) Field {
	return Field(zap.Int(name, val))
}

// Uint8 returns an uint8 Field.
func Uint8(name string, val uint8) Field {
	return Field(zap.Uint8(name, val))
}

// Uint32 returns an uint32 Field.
func Uint32(name string, val uint32) Field {
	return Field(zap.Uint32(name, val))
}

// Uint64 returns an uint64 Field
func Uint64(name string, val uint64) Field {
	return Field(zap.Uint64(name, val))
}

// Bool returns a bool field
func Bool(name string, val bool) Field {
	return Field(zap.Bool(name, val))
}

// Stringer returns a field that is rendered with val.String().
func Stringer(name string, val fmt.Stringer) Field {
	return Field(zap.Stringer(name, val))
}

// Hex returns a field with bytes rendered as 0x-prefixed hex.
func Hex(name string, val []byte) Field {
	return Field(zap.String(name, "0x"+hex.EncodeToString(val)))
}

// Strings returns a field holding a list of strings.
func Strings(name string, val []string) Field {
	return Field(zap.Strings(name, val))
}

// Err returns an error field
func Err(v error) Field {
	return Field(zap.NamedError("message", v))
}

// LoggableField as an interface to enable every type to be used as a log field.
type LoggableField interface {
	Field() Field
}

func unpack(fields []LoggableField) []zap.Field {
	flds := make([]zap.Field, len(fields))
	for i, f := range fields {
		flds[i] = zap.Field(f.Field())
	}
	return flds
}

// FieldLogger is a logger that only logs messages with fields. it does not support formatting.
type FieldLogger struct {
	l *zap.Logger
}

// With returns a logger object that logs fields
func (l Log) With() FieldLogger {
	return FieldLogger{l.logger}
}

// WithName returns a logger with the given name appended.
func (l Log) WithName(prefix string) Log {
	lgr := l.logger.Named(prefix)
	return Log{
		logger: lgr,
		sugar:  lgr.Sugar(),
		lvl:    l.lvl,
	}
}

// WithFields returns a logger with fields permanently appended to it.
func (l Log) WithFields(fields ...LoggableField) Log {
	lgr := l.logger.With(unpack(fields)...)
	return Log{
		logger: lgr,
		sugar:  lgr.Sugar(),
		lvl:    l.lvl,
	}
}

// SetLevel changes the level of a logger created with NewWithLevel.
func (l Log) SetLevel(level zapcore.Level) {
	if l.lvl != nil {
		l.lvl.SetLevel(level)
	}
}

// Info prints message with fields
func (fl FieldLogger) Info(msg string, fields ...LoggableField) {
	fl.l.Info(msg, unpack(fields)...)
}

// Debug prints message with fields
func (fl FieldLogger) Debug(msg string, fields ...LoggableField) {
	fl.l.Debug(msg, unpack(fields)...)
}

// Error prints message with fields
func (fl FieldLogger) Error(msg string, fields ...LoggableField) {
	fl.l.Error(msg, unpack(fields)...)
}

// Warning prints message with fields
func (fl FieldLogger) Warning(msg string, fields ...LoggableField) {
	fl.l.Warn(msg, unpack(fields)...)
}
