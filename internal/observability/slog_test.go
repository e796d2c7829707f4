package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stolasapp/basicauth/internal/config"
)

func TestToLogLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, toLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, toLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, toLogLevel("warn"))
	assert.Equal(t, slog.LevelError, toLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, toLogLevel(""))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json respects level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cfg := config.Default()
		cfg.LogLevel = "warn"
		logger := NewLogger(&buf, false, cfg)
		logger.Info("hidden")
		logger.Warn("shown", slog.String("key", "value"))
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"key":"value"`)
	})

	t.Run("text with source in dev mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cfg := config.Default()
		cfg.DevMode = true
		NewLogger(&buf, true, cfg).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "source=")
	})
}
