package config

import (
	"time"

	"github.com/vovakirdan/wirematch-server/internal/core"
)

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	MaxFrameBytes     int64         `mapstructure:"max_frame_bytes" yaml:"max_frame_bytes"`
	Limits            LimitsConfig  `mapstructure:"limits" yaml:"limits"`
}

// LimitsConfig exposes the relay and moderation tunables.
type LimitsConfig struct {
	MaxChatChars        int           `mapstructure:"max_chat_chars" yaml:"max_chat_chars"`
	ChatInterval        time.Duration `mapstructure:"chat_interval" yaml:"chat_interval"`
	MediaInterval       time.Duration `mapstructure:"media_interval" yaml:"media_interval"`
	MaxImageBytes       int64         `mapstructure:"max_image_bytes" yaml:"max_image_bytes"`
	MaxVideoBytes       int64         `mapstructure:"max_video_bytes" yaml:"max_video_bytes"`
	ModerationThreshold int           `mapstructure:"moderation_threshold" yaml:"moderation_threshold"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	limits := core.DefaultLimits()
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		MaxFrameBytes:     15 << 20,
		Limits: LimitsConfig{
			MaxChatChars:        limits.MaxChatChars,
			ChatInterval:        limits.ChatInterval,
			MediaInterval:       limits.MediaInterval,
			MaxImageBytes:       limits.MaxImageBytes,
			MaxVideoBytes:       limits.MaxVideoBytes,
			ModerationThreshold: limits.ModerationThreshold,
		},
	}
}

// CoreLimits converts the limits block into the core representation.
func (c Config) CoreLimits() core.Limits {
	return core.Limits{
		MaxChatChars:        c.Limits.MaxChatChars,
		ChatInterval:        c.Limits.ChatInterval,
		MediaInterval:       c.Limits.MediaInterval,
		MaxImageBytes:       c.Limits.MaxImageBytes,
		MaxVideoBytes:       c.Limits.MaxVideoBytes,
		ModerationThreshold: c.Limits.ModerationThreshold,
	}
}
