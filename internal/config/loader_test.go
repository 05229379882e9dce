package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadWritesDefaultConfig(t *testing.T) {
	logger := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(&logger, path)
	assert.NoError(t, err)
	assert.Equal(t, path, resolved)

	// The default file was written back.
	_, err = os.Stat(path)
	assert.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Addr, cfg.Addr)
	assert.Equal(t, def.MaxFrameBytes, cfg.MaxFrameBytes)
	assert.Equal(t, def.Limits.ModerationThreshold, cfg.Limits.ModerationThreshold)
}

func TestLoadReadsExistingFile(t *testing.T) {
	logger := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
addr: ":9999"
log_level: debug
limits:
  max_chat_chars: 200
  chat_interval: 250ms
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, _, err := Load(&logger, path)
	assert.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 200, cfg.Limits.MaxChatChars)
	assert.Equal(t, 250*time.Millisecond, cfg.Limits.ChatInterval)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().Limits.MaxImageBytes, cfg.Limits.MaxImageBytes)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	logger := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o600))

	_, _, err := Load(&logger, path)
	assert.Error(t, err)
}

func TestCoreLimitsConversion(t *testing.T) {
	cfg := Default()
	limits := cfg.CoreLimits()
	assert.Equal(t, cfg.Limits.MaxChatChars, limits.MaxChatChars)
	assert.Equal(t, cfg.Limits.ChatInterval, limits.ChatInterval)
	assert.Equal(t, cfg.Limits.MaxVideoBytes, limits.MaxVideoBytes)
	assert.Equal(t, cfg.Limits.ModerationThreshold, limits.ModerationThreshold)
}
