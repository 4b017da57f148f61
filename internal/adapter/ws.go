// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

// streamBuffer matches the server-side subscriber buffer: a consumer that
// falls further behind than this is about to be dropped by the server anyway.
const streamBuffer = 8

// Subscribe implements [ServerAdapter]. It dials the collection's websocket
// endpoint with the stored bearer token and returns a [SnapshotStream] fed by
// a background read loop. There is no reconnection: when the connection drops
// the stream ends and the caller decides whether to subscribe again.
func (h *httpServerAdapter) Subscribe(ctx context.Context, collection string) (SnapshotStream, error) {
	wsURL, err := subscribeURL(h.baseURL, collection)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if token := h.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if resp != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("subscribe dial %s: %w", collection, err)
	}

	stream := &wsSnapshotStream{
		conn:       conn,
		collection: collection,
		snapshots:  make(chan models.Snapshot, streamBuffer),
		done:       make(chan struct{}),
		logger:     h.logger,
	}

	go stream.readLoop()
	go func() {
		select {
		case <-ctx.Done():
			stream.Close()
		case <-stream.done:
		}
	}()

	return stream, nil
}

// subscribeURL turns the adapter's base URL into the websocket endpoint for
// one collection.
func subscribeURL(baseURL, collection string) (string, error) {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		baseURL = "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		baseURL = "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return "", fmt.Errorf("unsupported base url scheme: %s", baseURL)
	}

	return baseURL + "/api/records/" + collection + "/subscribe", nil
}

type wsSnapshotStream struct {
	conn       *websocket.Conn
	collection string

	snapshots chan models.Snapshot
	done      chan struct{}
	closeOnce sync.Once

	logger *logger.Logger
}

// Snapshots implements [SnapshotStream].
func (s *wsSnapshotStream) Snapshots() <-chan models.Snapshot {
	return s.snapshots
}

// Close implements [SnapshotStream]. It sends a close frame on a best-effort
// basis and tears the connection down, which ends the read loop.
func (s *wsSnapshotStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		_ = s.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		err = s.conn.Close()
		close(s.done)
	})
	return err
}

// readLoop decodes snapshots off the wire until the connection ends, then
// closes the delivery channel so consumers observe the termination.
func (s *wsSnapshotStream) readLoop() {
	defer close(s.snapshots)

	for {
		var snapshot models.Snapshot
		if err := s.conn.ReadJSON(&snapshot); err != nil {
			select {
			case <-s.done:
				// closed locally, nothing to report
			default:
				s.logger.Debug().Err(err).Str("collection", s.collection).
					Msg("subscription connection ended")
			}
			return
		}

		select {
		case s.snapshots <- snapshot:
		case <-s.done:
			return
		}
	}
}
