package core

import "strings"

// matcher owns the per-mode waiting pools. It is only ever called from
// the hub goroutine, so it needs no locking of its own.
type matcher struct {
	pools map[ChatMode][]*Client
}

func newMatcher() *matcher {
	return &matcher{
		pools: map[ChatMode][]*Client{
			ModeText:  nil,
			ModeVideo: nil,
		},
	}
}

// enqueue appends c to the tail of the pool for its mode.
func (m *matcher) enqueue(c *Client) {
	m.pools[c.Mode] = append(m.pools[c.Mode], c)
}

// remove drops c from whichever pool holds it. Safe to call for clients
// that were never enqueued.
func (m *matcher) remove(c *Client) {
	for mode, pool := range m.pools {
		for i, cand := range pool {
			if cand.ID == c.ID {
				m.pools[mode] = append(pool[:i], pool[i+1:]...)
				return
			}
		}
	}
}

// match picks a waiting candidate for c and removes it from the pool.
// Candidates sharing interests with c are preferred, most shared
// interests first, earliest-enqueued winning ties. When c declares no
// interests, or nothing overlaps, the head of the queue wins. Returns
// nil when the pool is empty. c itself is never in the pool here.
func (m *matcher) match(c *Client) *Client {
	pool := m.pools[c.Mode]

	best := -1
	if len(c.Interests) > 0 {
		shared := 0
		for i, cand := range pool {
			if cand.ID == c.ID {
				continue
			}
			if n := len(commonInterests(c.Interests, cand.Interests)); n > shared {
				shared = n
				best = i
			}
		}
	}
	if best == -1 {
		for i, cand := range pool {
			if cand.ID != c.ID {
				best = i
				break
			}
		}
	}
	if best == -1 {
		return nil
	}

	cand := pool[best]
	m.pools[c.Mode] = append(pool[:best], pool[best+1:]...)
	return cand
}

// waiting reports the pool size for a mode.
func (m *matcher) waiting(mode ChatMode) int {
	return len(m.pools[mode])
}

// normalizeInterests lower-cases, trims, and de-duplicates interests.
func normalizeInterests(interests []string) []string {
	if len(interests) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(interests))
	out := make([]string, 0, len(interests))
	for _, raw := range interests {
		in := strings.ToLower(strings.TrimSpace(raw))
		if in == "" {
			continue
		}
		if _, dup := seen[in]; dup {
			continue
		}
		seen[in] = struct{}{}
		out = append(out, in)
	}
	return out
}

// commonInterests returns the intersection of two normalized interest
// lists, in a's order.
func commonInterests(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(b))
	for _, in := range b {
		set[in] = struct{}{}
	}
	var out []string
	for _, in := range a {
		if _, ok := set[in]; ok {
			out = append(out, in)
		}
	}
	return out
}
