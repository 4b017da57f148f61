// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The bearer token is already verified by the auth middleware, and the
	// API carries no cookies, so cross-origin upgrades are harmless.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// subscribe upgrades the request to a websocket and streams full collection
// snapshots to the client: the current state first, then one snapshot after
// every mutation of the owner's collection. The stream ends when the client
// disconnects or the hub drops the subscriber for falling behind.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")

	sub, initial, err := h.services.RecordService.Subscribe(ctx, ownerID, collection)
	if err != nil {
		log.Err(err).Str("func", "*Handler.subscribe").Msg("error registering subscription")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.services.RecordService.Unsubscribe(ownerID, collection, sub)
		log.Err(err).Str("func", "*Handler.subscribe").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	defer h.services.RecordService.Unsubscribe(ownerID, collection, sub)

	log.Info().Int64("user_id", ownerID).Str("collection", collection).Msg("subscription opened")

	if err := conn.WriteJSON(initial); err != nil {
		log.Err(err).Str("func", "*Handler.subscribe").Msg("error writing initial snapshot")
		return
	}

	// The client never sends data frames; the read loop exists to notice
	// close frames and dropped connections.
	disconnected := make(chan struct{})
	go func() {
		defer close(disconnected)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snapshot, open := <-sub.Deliveries():
			if !open {
				// Dropped by the hub: tell the client to resubscribe.
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscriber dropped"))
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				log.Err(err).Str("func", "*Handler.subscribe").Msg("error writing snapshot")
				return
			}
		case <-disconnected:
			log.Info().Int64("user_id", ownerID).Str("collection", collection).Msg("subscription closed by client")
			return
		case <-ctx.Done():
			return
		}
	}
}
