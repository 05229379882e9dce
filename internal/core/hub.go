package core

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Hub owns every live client and serializes all state mutations onto a
// single goroutine. Pairing and teardown touch two clients at once, so
// everything that reads or writes the registry, the waiting pools, or
// the partner links goes through Run's loop. Outbound delivery is
// non-blocking and never holds that loop on network I/O.
type Hub struct {
	log *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand

	clients map[string]*Client
	matcher *matcher
	relay   *relay
	limits  Limits

	connected atomic.Int64
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// NewHub constructs a hub. Run must be started before clients register.
func NewHub(limits Limits, logger *zerolog.Logger) *Hub {
	return &Hub{
		log:        logger,
		register:   make(chan *Client, 8),
		unregister: make(chan *Client, 8),
		commands:   make(chan clientCommand, 64),
		clients:    make(map[string]*Client),
		matcher:    newMatcher(),
		relay:      newRelay(limits, logger),
		limits:     limits,
	}
}

// Run processes registrations and commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.addClient(c)
		case c := <-h.unregister:
			h.removeClient(c)
		case cc := <-h.commands:
			h.handleCommand(cc.client, cc.cmd)
		}
	}
}

// RegisterClient adds a connection to the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient removes a connection and unwinds all references to
// it. Idempotent.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// ConnectionCount returns the current number of registered clients.
// Safe to call from any goroutine.
func (h *Hub) ConnectionCount() int64 {
	return h.connected.Load()
}

// pump forwards one client's commands into the hub's serialized command
// channel, preserving the order the client issued them.
func (h *Hub) pump(c *Client) {
	for cmd := range c.Commands {
		h.commands <- clientCommand{client: c, cmd: cmd}
	}
}

func (h *Hub) addClient(c *Client) {
	h.clients[c.ID] = c
	h.connected.Store(int64(len(h.clients)))
	go h.pump(c)
	h.log.Info().Str("client_id", c.ID).Int("online", len(h.clients)).Msg("client connected")
	h.broadcastPresence()
}

func (h *Hub) removeClient(c *Client) {
	if _, ok := h.clients[c.ID]; !ok {
		return
	}
	delete(h.clients, c.ID)
	h.connected.Store(int64(len(h.clients)))
	close(c.Commands)

	h.matcher.remove(c)
	c.Waiting = false

	if partner := h.partnerOf(c); partner != nil {
		h.unpair(c, partner)
		partner.send(&Event{Kind: EventPartnerDisconnected})
		h.matchOrWait(partner)
	}

	h.log.Info().Str("client_id", c.ID).Int("online", len(h.clients)).Msg("client disconnected")
	h.broadcastPresence()
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	if _, ok := h.clients[c.ID]; !ok {
		// Raced with disconnect; the client is gone.
		return
	}
	switch cmd.Kind {
	case CommandJoin:
		h.handleJoin(c, cmd.Mode, cmd.Interests)
	case CommandChatMessage:
		h.relay.chat(c, h.partnerOf(c), cmd.Text)
	case CommandTyping:
		h.relay.typing(c, h.partnerOf(c), cmd.Typing)
	case CommandMedia:
		h.relay.media(c, h.partnerOf(c), cmd.Media)
	case CommandSignal:
		h.relay.signal(c, h.partnerOf(c), cmd.Signal, cmd.Payload)
	case CommandModerationSignal:
		h.handleModeration(c, cmd.Confidence)
	case CommandSkip:
		h.handleSkip(c)
	case CommandLeave:
		h.teardown(c)
	case CommandPing:
		c.send(&Event{Kind: EventPong, Timestamp: cmd.Timestamp})
	}
}

func (h *Hub) handleJoin(c *Client, mode ChatMode, interests []string) {
	if !mode.Valid() {
		c.send(validationError(ReasonInvalidMode))
		return
	}

	// Joining again while paired behaves like a skip of the current
	// partner; joining while waiting just refreshes mode and interests.
	if partner := h.partnerOf(c); partner != nil {
		h.unpair(c, partner)
		partner.send(&Event{Kind: EventPartnerDisconnected})
		h.matchOrWait(partner)
	}
	h.matcher.remove(c)

	c.Mode = mode
	c.Interests = normalizeInterests(interests)
	h.matchOrWait(c)
}

func (h *Hub) handleSkip(c *Client) {
	partner := h.partnerOf(c)
	if partner != nil {
		h.unpair(c, partner)
		partner.send(&Event{Kind: EventPartnerDisconnected})
	}
	if c.Mode == "" {
		// Skip before any join; nothing to re-enter.
		return
	}
	if partner != nil {
		h.matchOrWait(partner)
	}
	h.matchOrWait(c)
}

// teardown implements leave: the pairing is dissolved, the partner is
// notified and re-queued, and c stays connected but unmatched.
func (h *Hub) teardown(c *Client) {
	if partner := h.partnerOf(c); partner != nil {
		h.unpair(c, partner)
		partner.send(&Event{Kind: EventPartnerDisconnected})
		h.matchOrWait(partner)
	}
	h.matcher.remove(c)
	c.Waiting = false
}

func (h *Hub) handleModeration(c *Client, confidence float64) {
	c.Violations++
	h.log.Warn().
		Str("client_id", c.ID).
		Float64("confidence", confidence).
		Int("violations", c.Violations).
		Msg("moderation signal")

	if partner := h.partnerOf(c); partner != nil {
		partner.send(&Event{Kind: EventContentBlocked})
	}
	c.send(&Event{Kind: EventModerationWarning, Violations: c.Violations})

	if c.Violations >= h.limits.ModerationThreshold {
		h.teardown(c)
	}
}

// matchOrWait pairs c with a waiting candidate or enqueues it.
func (h *Hub) matchOrWait(c *Client) {
	if cand := h.matcher.match(c); cand != nil {
		h.pair(c, cand)
		return
	}
	c.Waiting = true
	h.matcher.enqueue(c)
	c.send(&Event{Kind: EventSearching})
}

func (h *Hub) pair(a, b *Client) {
	a.PartnerID, b.PartnerID = b.ID, a.ID
	a.Waiting, b.Waiting = false, false

	common := commonInterests(a.Interests, b.Interests)
	a.send(&Event{Kind: EventPaired, Mode: a.Mode, CommonInterests: common})
	b.send(&Event{Kind: EventPaired, Mode: b.Mode, CommonInterests: common})

	h.log.Info().
		Str("client_id", a.ID).
		Str("partner_id", b.ID).
		Str("mode", string(a.Mode)).
		Strs("common_interests", common).
		Msg("clients paired")
}

func (h *Hub) unpair(a, b *Client) {
	a.PartnerID, b.PartnerID = "", ""
}

func (h *Hub) partnerOf(c *Client) *Client {
	if c.PartnerID == "" {
		return nil
	}
	return h.clients[c.PartnerID]
}

func (h *Hub) broadcastPresence() {
	ev := &Event{Kind: EventPresenceCount, Count: len(h.clients)}
	for _, c := range h.clients {
		c.send(ev)
	}
}
