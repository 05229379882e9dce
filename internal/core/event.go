package core

import "encoding/json"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventPresenceCount reports the total number of connected clients.
	EventPresenceCount EventKind = iota
	// EventSearching tells a client it was enqueued and is waiting.
	EventSearching
	// EventPaired tells a client a partner was found.
	EventPaired
	// EventChatMessage delivers a partner's text message.
	EventChatMessage
	// EventTyping delivers a partner's typing indicator state.
	EventTyping
	// EventMedia delivers a partner's media item.
	EventMedia
	// EventSignal delivers a partner's WebRTC signaling payload.
	EventSignal
	// EventPartnerDisconnected tells a client its partner is gone.
	EventPartnerDisconnected
	// EventContentBlocked tells a client its partner's content was blocked.
	EventContentBlocked
	// EventModerationWarning warns a client about its running violation count.
	EventModerationWarning
	// EventValidationError reports a rejected message back to its sender.
	EventValidationError
	// EventPong echoes a heartbeat ping.
	EventPong
)

// Event is sent to clients to describe what happened in the system.
// Only the fields for the given Kind are set.
type Event struct {
	Kind EventKind

	Count int // EventPresenceCount

	Mode            ChatMode // EventPaired
	CommonInterests []string // EventPaired

	Text string // EventChatMessage

	Typing    bool  // EventTyping
	Timestamp int64 // EventTyping (server time), EventPong (echoed)

	Media *MediaItem // EventMedia

	Signal  SignalKind      // EventSignal
	Payload json.RawMessage // EventSignal, verbatim

	Violations int // EventModerationWarning

	Reason string // EventValidationError
}
