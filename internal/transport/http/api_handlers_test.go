package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/wirematch-server/internal/proto"
)

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatsEndpointReportsConnections(t *testing.T) {
	ts := startTestServer(t)

	fetch := func() StatsResponse {
		t.Helper()
		resp, err := ts.Client().Get(ts.URL + "/api/stats")
		assert.NoError(t, err)
		defer resp.Body.Close()

		var stats StatsResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
		return stats
	}

	assert.EqualValues(t, 0, fetch().Connections)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(ctx, t, ts)
	// The first presence broadcast confirms registration completed.
	readUntilType(ctx, t, conn, proto.OutboundTypePresenceCount)

	assert.EqualValues(t, 1, fetch().Connections)
}
