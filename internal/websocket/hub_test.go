package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_PublishEventReachesUserClients(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, 42)
		hub.Register <- client
		go client.ReadPump()
		go client.WritePump()
	}))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount(42) == 1 }, 5*time.Second, 10*time.Millisecond)

	hub.PublishEvent(7, []byte(`{"event_type":"other_user"}`))
	hub.PublishEvent(42, []byte(`{"event_type":"folder_created"}`))

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.JSONEq(t, `{"event_type":"folder_created"}`, string(data))

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount(42) == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestClient_StandaloneEcho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(nil, conn, 1)
		client.OnMessage = func(data []byte) {
			client.Send(append([]byte("echo:"), data...))
		}
		go client.WritePump()
		go client.ReadPump()
	}))
	defer srv.Close()

	conn := dial(t, srv)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, "echo:ping", string(data))
}

func TestClient_SendAfterClose(t *testing.T) {
	client := NewClient(nil, nil, 1)
	require.True(t, client.Send([]byte("queued")))
	client.close()
	client.close()
	require.False(t, client.Send([]byte("dropped")))
}
