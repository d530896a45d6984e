package log

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type fakePallet struct {
	name string
}

func (p fakePallet) Field() Field {
	return String("pallet", p.name)
}

func testEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	return zapcore.NewConsoleEncoder(cfg)
}

func TestLogLevel(t *testing.T) {
	r := require.New(t)

	var hooked []zapcore.Level
	hookFn := func(entry zapcore.Entry) error {
		hooked = append(hooked, entry.Level)
		return nil
	}

	var buf bytes.Buffer
	logger := newWithWriter(&buf, "logtest", zap.NewAtomicLevelAt(zapcore.InfoLevel), testEncoder(), hookFn).
		WithFields(fakePallet{name: "Balances"})

	logger.Debug("hidden")
	r.Equal(0, buf.Len())

	logger.Info("test001")
	r.Equal(fmt.Sprintf("INFO\tlogtest\ttest001\t%s\n", `{"pallet": "Balances"}`), buf.String())
	buf.Reset()
	r.Equal([]zapcore.Level{zapcore.InfoLevel}, hooked)

	logger.SetLevel(zapcore.DebugLevel)
	logger.With().Debug("test002", Uint8("index", 3), Hex("raw", []byte{0xab, 0xcd}))
	r.Equal(
		fmt.Sprintf("DEBUG\tlogtest\ttest002\t%s\n", `{"pallet": "Balances", "index": 3, "raw": "0xabcd"}`),
		buf.String(),
	)
	r.Equal([]zapcore.Level{zapcore.InfoLevel, zapcore.DebugLevel}, hooked)
}

func TestFieldLoggerError(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, "errors", zap.NewAtomicLevelAt(zapcore.InfoLevel), testEncoder())
	logger.With().Warning("lookup failed", Err(errors.New("pallet index not found")))
	require.Contains(t, buf.String(), `"message": "pallet index not found"`)
	require.Contains(t, buf.String(), "WARN")
}

func TestNop(t *testing.T) {
	logger := NewNop()
	logger.Info("nothing")
	logger.With().Error("nothing", String("k", "v"))
	logger.SetLevel(zapcore.DebugLevel)
}
