// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hirunaj/pawtrail/internal/adapter"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/mirror"
	"github.com/hirunaj/pawtrail/models"
)

type clientSubscriptionService struct {
	adapter adapter.ServerAdapter
	mirror  *mirror.Mirror
	logger  *logger.Logger

	mu      sync.Mutex
	streams []adapter.SnapshotStream
	pumps   sync.WaitGroup
}

// NewClientSubscriptionService constructs a [ClientSubscriptionService]
// feeding the given mirror.
func NewClientSubscriptionService(serverAdapter adapter.ServerAdapter, mirror *mirror.Mirror, logger *logger.Logger) ClientSubscriptionService {
	return &clientSubscriptionService{
		adapter: serverAdapter,
		mirror:  mirror,
		logger:  logger,
	}
}

// Subscribe implements [ClientSubscriptionService]. Previous streams are
// always torn down first, so re-subscribing never leaves a stale pump writing
// into the mirror. When any stream fails to open, the ones already opened are
// closed and the mirror stays empty.
func (s *clientSubscriptionService) Subscribe(ctx context.Context, collections ...string) error {
	s.Teardown()
	s.mirror.Reset()

	streams := make([]adapter.SnapshotStream, 0, len(collections))
	for _, collection := range collections {
		stream, err := s.adapter.Subscribe(ctx, collection)
		if err != nil {
			for _, opened := range streams {
				_ = opened.Close()
			}
			return fmt.Errorf("subscribe to %s: %w", collection, err)
		}
		streams = append(streams, stream)
	}

	s.mu.Lock()
	s.streams = streams
	for _, stream := range streams {
		s.pumps.Add(1)
		go s.pump(stream)
	}
	s.mu.Unlock()

	return nil
}

// pump folds snapshot deliveries into the mirror until the stream's channel
// closes. A closed channel means the connection died; there is no retry, the
// pump just exits.
func (s *clientSubscriptionService) pump(stream adapter.SnapshotStream) {
	defer s.pumps.Done()

	for snapshot := range stream.Snapshots() {
		s.mirror.Apply(snapshot)
	}

	s.logger.Debug().Str("func", "*clientSubscriptionService.pump").
		Msg("snapshot stream ended")
}

// Teardown implements [ClientSubscriptionService].
func (s *clientSubscriptionService) Teardown() {
	s.mu.Lock()
	streams := s.streams
	s.streams = nil
	s.mu.Unlock()

	for _, stream := range streams {
		if err := stream.Close(); err != nil {
			s.logger.Err(err).Str("func", "*clientSubscriptionService.Teardown").
				Msg("closing snapshot stream")
		}
	}

	s.pumps.Wait()
}

// Records implements [ClientSubscriptionService].
func (s *clientSubscriptionService) Records(collection string) []models.Record {
	return s.mirror.Records(collection)
}

// LostAndFound implements [ClientSubscriptionService].
func (s *clientSubscriptionService) LostAndFound() []models.Record {
	return s.mirror.Merged(models.ReportCollections...)
}
