// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

// Package hub fans full collection snapshots out to websocket subscribers.
// It is a plain in-process registry: the service layer publishes after every
// successful mutation, the subscribe handler drains one subscriber per
// connection.
package hub

import (
	"sync"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

// subscriberBuffer bounds how many undelivered snapshots a subscriber may
// accumulate before it is considered too slow and dropped.
const subscriberBuffer = 8

type subKey struct {
	userID     int64
	collection string
}

// Subscriber is one live subscription to a (user, collection) pair.
type Subscriber struct {
	deliveries chan models.Snapshot
	closeOnce  sync.Once
}

// Deliveries returns the snapshot stream. The channel is closed when the
// subscriber is unsubscribed or dropped; the reader must treat a close as
// the end of the subscription.
func (s *Subscriber) Deliveries() <-chan models.Snapshot {
	return s.deliveries
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() { close(s.deliveries) })
}

// Hub is the per (user, collection) subscriber registry.
type Hub struct {
	logger *logger.Logger

	mu          sync.RWMutex
	subscribers map[subKey]map[*Subscriber]struct{}
}

// New constructs an empty hub.
func New(log *logger.Logger) *Hub {
	return &Hub{
		logger:      log,
		subscribers: make(map[subKey]map[*Subscriber]struct{}),
	}
}

// Subscribe registers a new subscriber for one user's collection.
func (h *Hub) Subscribe(userID int64, collection string) *Subscriber {
	sub := &Subscriber{deliveries: make(chan models.Snapshot, subscriberBuffer)}
	key := subKey{userID: userID, collection: collection}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[key] == nil {
		h.subscribers[key] = make(map[*Subscriber]struct{})
	}
	h.subscribers[key][sub] = struct{}{}

	h.logger.Debug().Str("func", "*Hub.Subscribe").
		Int64("user_id", userID).Str("collection", collection).
		Msg("subscriber registered")

	return sub
}

// Unsubscribe removes the subscriber and closes its stream. Safe to call
// more than once and after a drop.
func (h *Hub) Unsubscribe(userID int64, collection string, sub *Subscriber) {
	key := subKey{userID: userID, collection: collection}

	h.mu.Lock()
	if subs, ok := h.subscribers[key]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.subscribers, key)
		}
	}
	h.mu.Unlock()

	sub.close()
}

// Publish delivers a full snapshot to every subscriber of one user's
// collection. A subscriber whose buffer is full is dropped rather than
// blocking the mutation path; its stream is closed so the connection
// handler terminates.
func (h *Hub) Publish(userID int64, snapshot models.Snapshot) {
	key := subKey{userID: userID, collection: snapshot.Collection}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subscribers[key]
	for sub := range subs {
		select {
		case sub.deliveries <- snapshot:
		default:
			delete(subs, sub)
			sub.close()
			h.logger.Warn().Str("func", "*Hub.Publish").
				Int64("user_id", userID).Str("collection", snapshot.Collection).
				Msg("dropped slow subscriber")
		}
	}
	if len(subs) == 0 {
		delete(h.subscribers, key)
	}
}

// Subscribers reports the live subscriber count for one user's collection.
func (h *Hub) Subscribers(userID int64, collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[subKey{userID: userID, collection: collection}])
}
