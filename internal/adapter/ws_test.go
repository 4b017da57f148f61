package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

func TestSubscribeURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{name: "http", baseURL: "http://localhost:8080", want: "ws://localhost:8080/api/records/vaccines/subscribe"},
		{name: "https", baseURL: "https://pawtrail.example", want: "wss://pawtrail.example/api/records/vaccines/subscribe"},
		{name: "no scheme", baseURL: "localhost:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := subscribeURL(tt.baseURL, models.CollectionVaccines)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscribe_DeliversSnapshotsUntilServerCloses(t *testing.T) {
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/records/healthlogs/subscribe", r.URL.Path)
		require.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, conn.WriteJSON(models.Snapshot{
			Collection: models.CollectionHealthLogs,
			Records:    []models.Record{{ID: "log-1"}},
		}))
		require.NoError(t, conn.WriteJSON(models.Snapshot{
			Collection: models.CollectionHealthLogs,
			Records:    []models.Record{{ID: "log-2"}, {ID: "log-1"}},
		}))
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	a.SetToken("session-token")

	stream, err := a.Subscribe(t.Context(), models.CollectionHealthLogs)
	require.NoError(t, err)
	defer stream.Close()

	first := <-stream.Snapshots()
	require.Len(t, first.Records, 1)

	second := <-stream.Snapshots()
	require.Len(t, second.Records, 2)

	// Server handler returned, so the stream must terminate without retrying.
	select {
	case _, open := <-stream.Snapshots():
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("stream did not terminate after server close")
	}
}

func TestSubscribe_CloseStopsStream(t *testing.T) {
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		// Keep the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	stream, err := a.Subscribe(t.Context(), models.CollectionVaccines)
	require.NoError(t, err)

	require.NoError(t, stream.Close())

	select {
	case _, open := <-stream.Snapshots():
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("stream did not terminate after Close")
	}
}
