package core

import "time"

// ChatMode selects which waiting pool a client joins.
type ChatMode string

const (
	ModeText  ChatMode = "text"
	ModeVideo ChatMode = "video"
)

// Valid reports whether m is one of the supported modes.
func (m ChatMode) Valid() bool {
	return m == ModeText || m == ModeVideo
}

// Client is one live connection as seen by the core layer. Everything
// except the channels is owned by the hub goroutine and must not be
// touched from anywhere else while the client is registered.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event

	Mode      ChatMode
	Interests []string // lower-cased at join time

	PartnerID  string
	Waiting    bool
	Violations int

	lastChatAt  time.Time
	lastMediaAt time.Time
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 16),
		Events:   make(chan *Event, 32),
	}
}

// send delivers an event without blocking. A full buffer means the
// consumer is slow or already closing, and the event is dropped.
func (c *Client) send(ev *Event) bool {
	select {
	case c.Events <- ev:
		return true
	default:
		return false
	}
}
