package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirunaj/pawtrail/internal/hub"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

func dialSubscribe(t *testing.T, srv *httptest.Server, collection string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/records/" + collection + "/subscribe"
	header := http.Header{"Authorization": []string{"Bearer test-token"}}

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) models.Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var snapshot models.Snapshot
	require.NoError(t, conn.ReadJSON(&snapshot))
	return snapshot
}

func TestSubscribe_StreamsSnapshots(t *testing.T) {
	h := hub.New(logger.Nop())

	unsubscribed := make(chan struct{})
	records := &mockRecordService{
		subscribeFn: func(_ context.Context, ownerID int64, collection string) (*hub.Subscriber, models.Snapshot, error) {
			sub := h.Subscribe(ownerID, collection)
			initial := models.Snapshot{
				Collection: collection,
				Records:    []models.Record{{ID: "rec-1", Collection: collection}},
			}
			return sub, initial, nil
		},
		unsubscribeFn: func(ownerID int64, collection string, sub *hub.Subscriber) {
			h.Unsubscribe(ownerID, collection, sub)
			close(unsubscribed)
		},
	}

	srv := httptest.NewServer(newTestRouter(t, records, &mockBlobService{}))
	defer srv.Close()

	conn := dialSubscribe(t, srv, models.CollectionVaccines)

	initial := readSnapshot(t, conn)
	assert.Equal(t, models.CollectionVaccines, initial.Collection)
	require.Len(t, initial.Records, 1)
	assert.Equal(t, "rec-1", initial.Records[0].ID)

	// A mutation on the server side shows up as the next full snapshot.
	h.Publish(42, models.Snapshot{
		Collection: models.CollectionVaccines,
		Records:    []models.Record{{ID: "rec-2"}, {ID: "rec-1"}},
	})

	next := readSnapshot(t, conn)
	assert.Len(t, next.Records, 2)

	conn.Close()

	select {
	case <-unsubscribed:
	case <-time.After(time.Second):
		t.Fatal("handler did not unsubscribe after client disconnect")
	}
}

func TestSubscribe_PartitionsByCollection(t *testing.T) {
	h := hub.New(logger.Nop())

	records := &mockRecordService{
		subscribeFn: func(_ context.Context, ownerID int64, collection string) (*hub.Subscriber, models.Snapshot, error) {
			return h.Subscribe(ownerID, collection), models.Snapshot{Collection: collection}, nil
		},
		unsubscribeFn: func(ownerID int64, collection string, sub *hub.Subscriber) {
			h.Unsubscribe(ownerID, collection, sub)
		},
	}

	srv := httptest.NewServer(newTestRouter(t, records, &mockBlobService{}))
	defer srv.Close()

	vaccines := dialSubscribe(t, srv, models.CollectionVaccines)
	healthlogs := dialSubscribe(t, srv, models.CollectionHealthLogs)

	_ = readSnapshot(t, vaccines)
	_ = readSnapshot(t, healthlogs)

	h.Publish(42, models.Snapshot{
		Collection: models.CollectionHealthLogs,
		Records:    []models.Record{{ID: "log-1"}},
	})

	got := readSnapshot(t, healthlogs)
	assert.Equal(t, models.CollectionHealthLogs, got.Collection)

	// The vaccines stream stays quiet.
	require.NoError(t, vaccines.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var unexpected models.Snapshot
	err := vaccines.ReadJSON(&unexpected)
	assert.Error(t, err)
}
