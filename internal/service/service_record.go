// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hirunaj/pawtrail/internal/hub"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/store"
	"github.com/hirunaj/pawtrail/models"
)

// recordService implements [RecordService] over the record repository and
// the snapshot hub. Every successful mutation re-queries the owner's
// collection and publishes the full snapshot, which is how subscribed
// clients learn about their own writes.
type recordService struct {
	recordRepository store.RecordRepository
	hub              *hub.Hub
	logger           *logger.Logger
}

// NewRecordService constructs a [RecordService].
func NewRecordService(recordRepository store.RecordRepository, h *hub.Hub, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		hub:              h,
		logger:           logger,
	}
}

// CreateRecord assigns the record identifier, persists the record, and fans
// the owner's refreshed collection out to subscribers.
func (s *recordService) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if record.OwnerID == 0 || !models.ValidCollection(record.Collection) {
		log.Error().Str("collection", record.Collection).Msg("invalid record data provided")
		return models.Record{}, ErrInvalidDataProvided
	}

	record.ID = uuid.NewString()

	saved, err := s.recordRepository.CreateRecord(ctx, record)
	if err != nil {
		log.Err(err).Str("collection", record.Collection).Msg("record creation ended with error")
		return models.Record{}, fmt.Errorf("record creation ended with error: %w", err)
	}

	s.publishSnapshot(ctx, saved.OwnerID, saved.Collection)
	return saved, nil
}

// UpdateRecord applies a partial update and fans the refreshed collection out.
func (s *recordService) UpdateRecord(ctx context.Context, ownerID int64, collection, recordID string, patch models.RecordPatch) (models.Record, error) {
	log := logger.FromContext(ctx)

	if ownerID == 0 || recordID == "" || !models.ValidCollection(collection) {
		log.Error().Str("collection", collection).Str("record_id", recordID).Msg("invalid update request")
		return models.Record{}, ErrInvalidDataProvided
	}
	if patch.Empty() {
		return models.Record{}, ErrInvalidDataProvided
	}

	updated, err := s.recordRepository.UpdateRecord(ctx, ownerID, collection, recordID, patch)
	if err != nil {
		log.Err(err).Str("collection", collection).Str("record_id", recordID).Msg("record update ended with error")
		return models.Record{}, fmt.Errorf("record update ended with error: %w", err)
	}

	s.publishSnapshot(ctx, ownerID, collection)
	return updated, nil
}

// DeleteRecord removes one record and fans the refreshed collection out.
func (s *recordService) DeleteRecord(ctx context.Context, ownerID int64, collection, recordID string) error {
	log := logger.FromContext(ctx)

	if ownerID == 0 || recordID == "" || !models.ValidCollection(collection) {
		log.Error().Str("collection", collection).Str("record_id", recordID).Msg("invalid delete request")
		return ErrInvalidDataProvided
	}

	if err := s.recordRepository.DeleteRecord(ctx, ownerID, collection, recordID); err != nil {
		log.Err(err).Str("collection", collection).Str("record_id", recordID).Msg("record deletion ended with error")
		return fmt.Errorf("record deletion ended with error: %w", err)
	}

	s.publishSnapshot(ctx, ownerID, collection)
	return nil
}

// ListRecords returns the owner's collection, newest first.
func (s *recordService) ListRecords(ctx context.Context, ownerID int64, collection string) ([]models.Record, error) {
	if ownerID == 0 || !models.ValidCollection(collection) {
		return nil, ErrInvalidDataProvided
	}

	records, err := s.recordRepository.ListRecords(ctx, ownerID, collection)
	if err != nil {
		return nil, fmt.Errorf("record listing ended with error: %w", err)
	}

	return records, nil
}

// SearchRecords runs one community-wide search-variant query.
func (s *recordService) SearchRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error) {
	if !models.ValidCollection(query.Collection) {
		return nil, ErrInvalidDataProvided
	}

	records, err := s.recordRepository.SearchRecords(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("record search ended with error: %w", err)
	}

	return records, nil
}

// Subscribe registers a hub subscriber and returns the initial full snapshot
// so the connection handler can deliver current state before any mutation
// happens.
func (s *recordService) Subscribe(ctx context.Context, ownerID int64, collection string) (*hub.Subscriber, models.Snapshot, error) {
	if ownerID == 0 || !models.ValidCollection(collection) {
		return nil, models.Snapshot{}, ErrInvalidDataProvided
	}

	records, err := s.recordRepository.ListRecords(ctx, ownerID, collection)
	if err != nil {
		return nil, models.Snapshot{}, fmt.Errorf("initial snapshot query ended with error: %w", err)
	}

	sub := s.hub.Subscribe(ownerID, collection)
	return sub, models.Snapshot{Collection: collection, Records: records}, nil
}

// Unsubscribe removes a hub subscriber.
func (s *recordService) Unsubscribe(ownerID int64, collection string, sub *hub.Subscriber) {
	s.hub.Unsubscribe(ownerID, collection, sub)
}

// publishSnapshot re-queries one user's collection and hands the full
// snapshot to the hub. A query failure here is logged and swallowed: the
// mutation already succeeded and subscribers will be healed by the next
// delivery.
func (s *recordService) publishSnapshot(ctx context.Context, ownerID int64, collection string) {
	log := logger.FromContext(ctx)

	records, err := s.recordRepository.ListRecords(ctx, ownerID, collection)
	if err != nil {
		log.Err(err).Str("func", "*recordService.publishSnapshot").
			Str("collection", collection).Msg("snapshot query failed, skipping fan-out")
		return
	}

	s.hub.Publish(ownerID, models.Snapshot{Collection: collection, Records: records})
}
