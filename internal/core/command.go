package core

import "encoding/json"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin requests a match with the given mode and interests.
	CommandJoin CommandKind = iota
	// CommandChatMessage sends a text message to the partner.
	CommandChatMessage
	// CommandTyping reports the typing indicator state to the partner.
	CommandTyping
	// CommandMedia sends an image or video item to the partner.
	CommandMedia
	// CommandSignal relays a WebRTC signaling payload to the partner.
	CommandSignal
	// CommandModerationSignal reports the sender's content as flagged.
	CommandModerationSignal
	// CommandSkip abandons the current partner and re-enters matching.
	CommandSkip
	// CommandLeave abandons the current partner and stops matching.
	CommandLeave
	// CommandPing asks for a heartbeat echo.
	CommandPing
)

// SignalKind distinguishes the three relayed WebRTC envelope types.
type SignalKind string

const (
	SignalOffer        SignalKind = "webrtc_offer"
	SignalAnswer       SignalKind = "webrtc_answer"
	SignalICECandidate SignalKind = "webrtc_ice_candidate"
)

// MediaItem is a user-shared file. Data is the payload as received,
// forwarded untouched when validation passes.
type MediaItem struct {
	Type     string // "image" or "video"
	Filename string
	Data     string // data URL
	Size     int64  // size as declared by the sender
}

// Command represents an action requested by a client. Only the fields
// for the given Kind are set.
type Command struct {
	Kind CommandKind

	Mode      ChatMode // CommandJoin
	Interests []string // CommandJoin

	Text string // CommandChatMessage

	Typing bool // CommandTyping

	Media *MediaItem // CommandMedia

	Signal  SignalKind      // CommandSignal
	Payload json.RawMessage // CommandSignal, forwarded verbatim

	Confidence float64 // CommandModerationSignal

	Timestamp int64 // CommandPing
}
