package core

import (
	"reflect"
	"testing"
)

func waitingClient(id string, mode ChatMode, interests ...string) *Client {
	c := NewClient(id)
	c.Mode = mode
	c.Interests = normalizeInterests(interests)
	c.Waiting = true
	return c
}

func TestMatchTakesQueueHeadWithoutInterests(t *testing.T) {
	m := newMatcher()
	first := waitingClient("first", ModeText)
	second := waitingClient("second", ModeText)
	m.enqueue(first)
	m.enqueue(second)

	joiner := waitingClient("joiner", ModeText)
	if got := m.match(joiner); got != first {
		t.Fatalf("matched %v, want first in queue", got)
	}
	if m.waiting(ModeText) != 1 {
		t.Fatalf("pool size = %d, want 1", m.waiting(ModeText))
	}
}

func TestMatchPrefersMostSharedInterests(t *testing.T) {
	m := newMatcher()
	one := waitingClient("one", ModeText, "music")
	two := waitingClient("two", ModeText, "music", "golang")
	m.enqueue(one)
	m.enqueue(two)

	joiner := waitingClient("joiner", ModeText, "golang", "music", "cooking")
	if got := m.match(joiner); got != two {
		t.Fatalf("matched %q, want two", got.ID)
	}
}

func TestMatchTieGoesToEarliestEnqueued(t *testing.T) {
	m := newMatcher()
	one := waitingClient("one", ModeText, "music")
	two := waitingClient("two", ModeText, "music")
	m.enqueue(one)
	m.enqueue(two)

	joiner := waitingClient("joiner", ModeText, "music")
	if got := m.match(joiner); got != one {
		t.Fatalf("matched %q, want one", got.ID)
	}
}

func TestMatchFallsBackToFIFOWhenNothingOverlaps(t *testing.T) {
	m := newMatcher()
	one := waitingClient("one", ModeText, "sports")
	two := waitingClient("two", ModeText, "cinema")
	m.enqueue(one)
	m.enqueue(two)

	joiner := waitingClient("joiner", ModeText, "music")
	if got := m.match(joiner); got != one {
		t.Fatalf("matched %q, want one (FIFO fallback)", got.ID)
	}
}

func TestMatchIgnoresOtherModes(t *testing.T) {
	m := newMatcher()
	m.enqueue(waitingClient("v", ModeVideo))

	joiner := waitingClient("joiner", ModeText)
	if got := m.match(joiner); got != nil {
		t.Fatalf("matched %q across modes", got.ID)
	}
}

func TestRemoveDropsOnlyTarget(t *testing.T) {
	m := newMatcher()
	one := waitingClient("one", ModeText)
	two := waitingClient("two", ModeText)
	three := waitingClient("three", ModeText)
	m.enqueue(one)
	m.enqueue(two)
	m.enqueue(three)

	m.remove(two)
	m.remove(two) // not present anymore

	if m.waiting(ModeText) != 2 {
		t.Fatalf("pool size = %d, want 2", m.waiting(ModeText))
	}
	if got := m.match(waitingClient("joiner", ModeText)); got != one {
		t.Fatalf("matched %q, want one", got.ID)
	}
	if got := m.match(waitingClient("joiner2", ModeText)); got != three {
		t.Fatalf("matched %q, want three", got.ID)
	}
}

func TestNormalizeInterests(t *testing.T) {
	got := normalizeInterests([]string{" Music ", "MUSIC", "golang", "", "  "})
	want := []string{"music", "golang"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeInterests = %v, want %v", got, want)
	}
	if normalizeInterests(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestCommonInterestsIsCaseInsensitiveViaNormalization(t *testing.T) {
	a := normalizeInterests([]string{"Music", "Hiking"})
	b := normalizeInterests([]string{"hiking", "music", "chess"})
	got := commonInterests(a, b)
	want := []string{"music", "hiking"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("commonInterests = %v, want %v", got, want)
	}
	if commonInterests(a, nil) != nil {
		t.Fatal("expected nil intersection with empty side")
	}
}
