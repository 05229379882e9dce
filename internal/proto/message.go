package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

const (
	InboundTypeJoin         = "join"
	InboundTypeChatMessage  = "chat_message"
	InboundTypeTyping       = "typing"
	InboundTypeMedia        = "media"
	InboundTypeOffer        = "webrtc_offer"
	InboundTypeAnswer       = "webrtc_answer"
	InboundTypeICECandidate = "webrtc_ice_candidate"
	InboundTypeModeration   = "moderation_signal"
	InboundTypeSkip         = "skip"
	InboundTypeLeave        = "leave"
	InboundTypePing         = "heartbeat_ping"

	OutboundTypePresenceCount       = "presence_count"
	OutboundTypeSearching           = "searching"
	OutboundTypePaired              = "paired"
	OutboundTypeChatMessage         = "chat_message"
	OutboundTypeTyping              = "typing"
	OutboundTypeMedia               = "media"
	OutboundTypePartnerDisconnected = "partner_disconnected"
	OutboundTypeContentBlocked      = "content_blocked"
	OutboundTypeModerationWarning   = "moderation_warning"
	OutboundTypeValidationError     = "validation_error"
	OutboundTypePong                = "heartbeat_pong"
)

// JoinData requests a match for the given mode and interests.
type JoinData struct {
	Mode      string   `json:"mode"`
	Interests []string `json:"interests,omitempty"`
}

// ChatMessageData carries a text message in either direction.
type ChatMessageData struct {
	Text string `json:"text"`
}

// TypingData carries the typing indicator state. Timestamp is set by
// the server on outbound messages.
type TypingData struct {
	Flag      bool  `json:"flag"`
	Timestamp int64 `json:"timestamp,omitempty"`
}

// MediaData carries a shared image or video in either direction.
type MediaData struct {
	MediaType string `json:"mediaType"`
	Filename  string `json:"filename"`
	Data      string `json:"data"`
	Size      int64  `json:"size"`
}

// ModerationData reports flagged content from a client.
type ModerationData struct {
	Confidence float64 `json:"confidence"`
}

// PingData is a heartbeat in either direction; the server echoes the
// client's timestamp back in the pong.
type PingData struct {
	Timestamp int64 `json:"timestamp"`
}

// PresenceCountData reports the total number of connected clients.
type PresenceCountData struct {
	Count int `json:"count"`
}

// PairedData tells a client a partner was found.
type PairedData struct {
	Mode            string   `json:"mode"`
	CommonInterests []string `json:"commonInterests,omitempty"`
}

// ModerationWarningData carries the sender's running violation count.
type ModerationWarningData struct {
	ViolationCount int `json:"violationCount"`
}

// ValidationErrorData describes why a message was rejected.
type ValidationErrorData struct {
	Reason string `json:"reason"`
}
