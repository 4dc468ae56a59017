package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads every section", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
socket-port: "8081"
redis:
  host: redis
  port: "6380"
  session-ttl: 2h
bot:
  think-delay: 250ms
  default-difficulty: medium
  medium-optimal-rate: 0.5
telemetry:
  enabled: true
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: values are taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "8081", conf.SocketPort)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2*time.Hour, conf.Redis.SessionTTL)
		assert.Equal(t, 250*time.Millisecond, conf.Bot.ThinkDelay)
		assert.Equal(t, "medium", conf.Bot.DefaultDifficulty)
		assert.InDelta(t, 0.5, conf.Bot.MediumOptimalRate, 1e-9)
		assert.True(t, conf.Telemetry.Enabled)
		assert.Equal(t, "tictactoe-solo", conf.Telemetry.ServiceName)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		path := writeConfig(t, "log-level: warn\n")

		conf := MustLoad(path)

		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.SessionTTL)
		assert.Equal(t, "hard", conf.Bot.DefaultDifficulty)
		assert.InDelta(t, 0.7, conf.Bot.MediumOptimalRate, 1e-9)
		assert.False(t, conf.Telemetry.Enabled)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "bot:\n  default-difficulty: easy\n")
		t.Setenv("BOT_DEFAULT_DIFFICULTY", "medium")

		conf := MustLoad(path)

		assert.Equal(t, "medium", conf.Bot.DefaultDifficulty)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}
