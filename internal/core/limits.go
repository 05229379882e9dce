package core

import "time"

// Limits holds the relay validation and moderation tunables.
type Limits struct {
	MaxChatChars        int
	ChatInterval        time.Duration
	MediaInterval       time.Duration
	MaxImageBytes       int64
	MaxVideoBytes       int64
	ModerationThreshold int
}

// DefaultLimits returns the production defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxChatChars:        500,
		ChatInterval:        500 * time.Millisecond,
		MediaInterval:       2 * time.Second,
		MaxImageBytes:       5 << 20,
		MaxVideoBytes:       10 << 20,
		ModerationThreshold: 3,
	}
}
