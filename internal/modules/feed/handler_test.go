package feed

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clipstream/internal/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	userID int64
	err    error
}

func (s *stubVerifier) Verify(tokenStr string, kind token.Kind) (int64, error) {
	return s.userID, s.err
}

func newFeedServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(hub, &stubVerifier{userID: 42})
	handler.RegisterRoutes(r.Group("/api/v1"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/feed/ws?token=x"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestConnect_ReconnectKeepsUserOnline(t *testing.T) {
	// The first connection's read goroutine runs its deferred cleanup
	// once Register closes it; the replacement must survive that and
	// keep receiving events.
	hub := NewHub()
	srv := newFeedServer(t, hub)

	dialFeed(t, srv)
	require.Eventually(t, func() bool { return hub.IsOnline(42) },
		time.Second, 10*time.Millisecond)

	second := dialFeed(t, srv)

	// Give the first connection's goroutine time to observe the close
	// and run its cleanup before asserting.
	time.Sleep(300 * time.Millisecond)

	assert.True(t, hub.IsOnline(42))
	require.True(t, hub.SendToUser(42, Event{Type: EventVideoLiked, ActorID: 7}))

	var got Event
	require.NoError(t, second.ReadJSON(&got))
	assert.Equal(t, EventVideoLiked, got.Type)
	assert.Equal(t, int64(7), got.ActorID)
}

func TestConnect_DisconnectTakesUserOffline(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)

	conn := dialFeed(t, srv)
	require.Eventually(t, func() bool { return hub.IsOnline(42) },
		time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return !hub.IsOnline(42) },
		time.Second, 10*time.Millisecond)
}
