package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want zapcore.Level
	}{
		{"Debug Console", Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"Info Json", Config{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{"Warn Console", Config{Level: "warn", Format: "console"}, zapcore.WarnLevel},
		{"Unknown Level Falls Back", Config{Level: "loud", Format: "json"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestWithRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := WithRunID(zap.New(core), "abc")
	l.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["run_id"])

	assert.Same(t, l, WithRunID(l, ""))
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-1")
		WithRayID(base, c).Info("request")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ray-1", logs.All()[0].ContextMap()["ray_id"])
}
