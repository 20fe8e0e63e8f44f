package ws

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

func TestHub_DropsWhenBufferFull(t *testing.T) {
	t.Parallel()

	hub := NewHub(slog.Default(), 1)
	c := hub.register()

	hub.Publish(domain.CardEvent{Type: domain.CardEventBatchStarted})
	hub.Publish(domain.CardEvent{Type: domain.CardEventBatchCompleted})

	ev := <-c.outbound
	assert.Equal(t, domain.CardEventBatchStarted, ev.Type)
	select {
	case ev := <-c.outbound:
		t.Fatalf("expected dropped event, got %v", ev.Type)
	default:
	}

	hub.unregister(c)
	assert.Equal(t, 0, hub.Clients())
	// Double unregister must not panic on closed channel.
	hub.unregister(c)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	t.Parallel()

	hub := NewHub(slog.Default(), 0)
	c := hub.register()
	hub.Close()

	_, ok := <-c.outbound
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Clients())
}

func newTestServer(t *testing.T, hub *Hub, origins string) *httptest.Server {
	t.Helper()
	h := NewHandler(hub, config.CORSConfig{AllowedOrigins: origins}, slog.Default())
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHandler_StreamsEvents(t *testing.T) {
	t.Parallel()

	hub := NewHub(slog.Default(), 0)
	srv := newTestServer(t, hub, "*")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 5*time.Millisecond)

	card := domain.NewLoadingCard("card-1", "Go", "Pro Tip", time.Now())
	hub.Publish(domain.CardEvent{Type: domain.CardEventCreated, BatchID: "b1", Card: &card})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got domain.CardEvent
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, domain.CardEventCreated, got.Type)
	assert.Equal(t, "b1", got.BatchID)
	require.NotNil(t, got.Card)
	assert.Equal(t, "card-1", got.Card.ID)
	assert.Equal(t, domain.CardStateLoading, got.Card.State)
}

func TestHandler_UnregistersOnClose(t *testing.T) {
	t.Parallel()

	hub := NewHub(slog.Default(), 0)
	srv := newTestServer(t, hub, "*")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 5*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestHandler_RejectsForeignOrigin(t *testing.T) {
	t.Parallel()

	hub := NewHub(slog.Default(), 0)
	srv := newTestServer(t, hub, "https://app.example.com")

	header := http.Header{}
	header.Set("Origin", "https://evil.example.com")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, hub.Clients())
}

func TestOriginAllowed(t *testing.T) {
	t.Parallel()

	allowed := []string{"https://app.example.com"}

	r := httptest.NewRequest(http.MethodGet, "http://api.example.com/ws/cards", nil)
	assert.True(t, originAllowed(r, allowed), "no origin header")

	r.Header.Set("Origin", "https://app.example.com")
	assert.True(t, originAllowed(r, allowed))

	r.Header.Set("Origin", "http://api.example.com")
	assert.True(t, originAllowed(r, allowed), "same origin")

	r.Header.Set("Origin", "https://other.example.com")
	assert.False(t, originAllowed(r, allowed))
}
