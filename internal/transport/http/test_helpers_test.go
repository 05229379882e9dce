package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirematch-server/internal/config"
	"github.com/vovakirdan/wirematch-server/internal/core"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	hub := core.NewHub(core.DefaultLimits(), &logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second

	server := NewServer(hub, cfg, &logger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func dialWS(ctx context.Context, t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

type outbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// readUntilType reads frames until one with the wanted type arrives,
// discarding presence broadcasts and other interleaved events.
func readUntilType(ctx context.Context, t *testing.T, conn *websocket.Conn, want string) outbound {
	t.Helper()

	for {
		var ob outbound
		if err := wsjson.Read(ctx, conn, &ob); err != nil {
			t.Fatalf("waiting for %q: %v", want, err)
		}
		if ob.Type == want {
			return ob
		}
	}
}

func sendEnvelope(ctx context.Context, t *testing.T, conn *websocket.Conn, typ string, data any) {
	t.Helper()

	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			t.Fatalf("marshal %q data: %v", typ, err)
		}
		raw = b
	}
	if err := wsjson.Write(ctx, conn, map[string]any{"type": typ, "data": raw}); err != nil {
		t.Fatalf("write %q: %v", typ, err)
	}
}
