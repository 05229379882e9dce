package core

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// relay validates inbound session events and forwards them to the
// sender's partner. Forwarding is best-effort: a missing or unwritable
// partner drops the event, validation failures go back to the sender.
// All methods run on the hub goroutine.
type relay struct {
	limits Limits
	log    *zerolog.Logger
	now    func() time.Time
}

func newRelay(limits Limits, logger *zerolog.Logger) *relay {
	return &relay{limits: limits, log: logger, now: time.Now}
}

func (r *relay) chat(sender, partner *Client, text string) {
	if text == "" {
		sender.send(validationError(ReasonEmptyMessage))
		return
	}
	if utf8.RuneCountInString(text) > r.limits.MaxChatChars {
		sender.send(validationError(ReasonMessageTooLong))
		return
	}
	now := r.now()
	if now.Sub(sender.lastChatAt) < r.limits.ChatInterval {
		sender.send(validationError(ReasonRateLimited))
		return
	}
	sender.lastChatAt = now
	if partner == nil {
		return
	}
	partner.send(&Event{Kind: EventChatMessage, Text: text})
}

func (r *relay) typing(sender, partner *Client, flag bool) {
	if partner == nil {
		return
	}
	partner.send(&Event{
		Kind:      EventTyping,
		Typing:    flag,
		Timestamp: r.now().UnixMilli(),
	})
}

func (r *relay) media(sender, partner *Client, item *MediaItem) {
	if reason := r.validateMedia(item); reason != "" {
		r.log.Debug().Str("client_id", sender.ID).Str("reason", reason).Msg("media rejected")
		sender.send(validationError(reason))
		return
	}
	now := r.now()
	if now.Sub(sender.lastMediaAt) < r.limits.MediaInterval {
		sender.send(validationError(ReasonRateLimited))
		return
	}
	sender.lastMediaAt = now
	if partner == nil {
		return
	}
	partner.send(&Event{Kind: EventMedia, Media: item})
}

func (r *relay) validateMedia(item *MediaItem) string {
	if item == nil {
		return ReasonInvalidPayload
	}
	if item.Type != "image" && item.Type != "video" {
		return ReasonInvalidMediaType
	}
	if len(item.Filename) < 1 || len(item.Filename) > 255 {
		return ReasonInvalidFilename
	}
	mime, payload, ok := splitDataURL(item.Data)
	if !ok {
		return ReasonInvalidPayload
	}
	if !strings.HasPrefix(mime, item.Type+"/") {
		return ReasonMimeMismatch
	}
	limit := r.limits.MaxImageBytes
	if item.Type == "video" {
		limit = r.limits.MaxVideoBytes
	}
	if decodedSize(payload) > limit {
		return ReasonMediaTooLarge
	}
	return ""
}

func (r *relay) signal(sender, partner *Client, kind SignalKind, payload json.RawMessage) {
	switch kind {
	case SignalOffer, SignalAnswer, SignalICECandidate:
	default:
		sender.send(validationError(ReasonInvalidPayload))
		return
	}
	if partner == nil {
		return
	}
	// The payload is opaque to the server and forwarded untouched.
	partner.send(&Event{Kind: EventSignal, Signal: kind, Payload: payload})
}

// splitDataURL splits "data:<mime>[;base64],<payload>" into its MIME
// type and payload part.
func splitDataURL(s string) (mime, payload string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return "", "", false
	}
	header, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mime, _, _ = strings.Cut(header, ";")
	if mime == "" {
		return "", "", false
	}
	return mime, payload, true
}

// decodedSize computes the decoded byte count of a base64 payload from
// its length, without decoding the payload itself.
func decodedSize(b64 string) int64 {
	n := int64(len(b64)) / 4 * 3
	switch {
	case strings.HasSuffix(b64, "=="):
		n -= 2
	case strings.HasSuffix(b64, "="):
		n--
	}
	return n
}
