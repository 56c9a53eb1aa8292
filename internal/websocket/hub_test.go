package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(v))
}

func TestSubscribeAndNotify(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialHub(t, hub)

	writeJSON(t, conn, map[string]any{"type": "subscribe", "portfolios": []string{"pf-1"}, "id": "req-1"})
	ack := readMessage(t, conn)
	assert.Equal(t, "subscribed", ack.Type)
	assert.Equal(t, "req-1", ack.ID)

	hub.NotifyPortfolioUpdated("pf-1")
	event := readMessage(t, conn)
	assert.Equal(t, "portfolio.updated", event.Type)
	assert.Equal(t, "pf-1", event.PortfolioID)
}

func TestNotifyOnlyReachesSubscribers(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialHub(t, hub)

	writeJSON(t, conn, map[string]any{"type": "subscribe", "portfolios": []string{"pf-1"}})
	require.Equal(t, "subscribed", readMessage(t, conn).Type)

	// An event for a different portfolio must not arrive; the next frame
	// the client sees is the pong for its own ping.
	hub.NotifyPortfolioUpdated("pf-2")
	writeJSON(t, conn, map[string]any{"type": "ping", "id": "req-2"})
	msg := readMessage(t, conn)
	assert.Equal(t, "pong", msg.Type)
	assert.Equal(t, "req-2", msg.ID)
}

func TestUnsubscribe(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialHub(t, hub)

	writeJSON(t, conn, map[string]any{"type": "subscribe", "portfolios": []string{"pf-1", "pf-2"}})
	require.Equal(t, "subscribed", readMessage(t, conn).Type)

	writeJSON(t, conn, map[string]any{"type": "unsubscribe", "portfolios": []string{"pf-1"}})
	require.Equal(t, "unsubscribed", readMessage(t, conn).Type)

	hub.NotifyPortfolioUpdated("pf-1")
	hub.NotifyActiveChanged("pf-2")

	msg := readMessage(t, conn)
	assert.Equal(t, "portfolio.activated", msg.Type)
	assert.Equal(t, "pf-2", msg.PortfolioID)
}

func TestUnknownMessageType(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialHub(t, hub)

	writeJSON(t, conn, map[string]any{"type": "teleport"})
	msg := readMessage(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.NotEmpty(t, msg.Error)
}

func TestNotifyRacesDisconnect(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	// Hammer notifications while clients subscribe and drop. Fan-out and
	// channel close both run on the hub goroutine, so no send can land on
	// a closed channel.
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				hub.NotifyPortfolioUpdated("pf-1")
			}
		}
	}()

	for i := 0; i < 25; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)

		writeJSON(t, conn, map[string]any{"type": "subscribe", "portfolios": []string{"pf-1"}})

		// First frame may be the ack or an already-queued update.
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, _, err = conn.ReadMessage()
		require.NoError(t, err)

		conn.Close()
	}

	close(stop)
	wg.Wait()
}

func TestNotifyWithoutClients(t *testing.T) {
	hub := NewHub()
	// No Run goroutine and no clients; notifications must not block.
	done := make(chan struct{})
	go func() {
		hub.NotifyPortfolioUpdated("pf-1")
		hub.NotifyActiveChanged("pf-1")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notify blocked with no subscribers")
	}
}
