package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected buffer and NO_COLOR set for deterministic output.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{"info", func(l *logger.Logger) { l.Info("some message") }, "info_basic"},
		{"warn", func(l *logger.Logger) { l.Warn("some warning") }, "warn_basic"},
		{"debug hidden", func(l *logger.Logger) { l.Debug("hidden") }, "debug_hidden"},
		{"error simple", func(l *logger.Logger) { l.Error(os.ErrPermission) }, "error_simple"},
		{
			"error chain",
			func(l *logger.Logger) {
				inner := zerr.With(zerr.New("webassembly sdk is not installed"), "sdk_root", "/opt/emsdk")
				l.Error(zerr.Wrap(inner, "failed to create toolchain"))
			},
			"error_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Verbose(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetVerbose(true)
	lg.Debug("resolved options")
	assert.Equal(t, "○ resolved options\n", buf.String())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("resolved options")
	assert.Empty(t, buf.String())
}

func TestLogger_NilError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Info("planned")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "planned", record["msg"])
	assert.Equal(t, "INFO", record["level"])

	buf.Reset()
	lg.Error(errors.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(h).WithGroup("plan").With("target", "game")

	lg.Info("linked", "actions", 3)
	assert.Equal(t, "linked plan.target=game plan.actions=3\n", buf.String())
}
