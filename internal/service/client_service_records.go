// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package service

import (
	"context"
	"fmt"

	"github.com/hirunaj/pawtrail/internal/adapter"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/validators"
	"github.com/hirunaj/pawtrail/models"
)

// remoteRecordService is the remote-mode implementation of
// [ClientRecordService]. Mutations are optimistic only in the UI sense:
// nothing is written locally, and the mirror catches up when the server fans
// the post-mutation snapshot back out.
type remoteRecordService struct {
	adapter   adapter.ServerAdapter
	session   ClientSessionService
	validator validators.Validator
	logger    *logger.Logger
}

// NewRemoteRecordService constructs the remote-mode [ClientRecordService].
func NewRemoteRecordService(serverAdapter adapter.ServerAdapter, session ClientSessionService, validator validators.Validator, logger *logger.Logger) ClientRecordService {
	return &remoteRecordService{
		adapter:   serverAdapter,
		session:   session,
		validator: validator,
		logger:    logger,
	}
}

// AddRecord implements [ClientRecordService]. It fails fast without an
// identity and never inserts into any local store on success.
func (s *remoteRecordService) AddRecord(ctx context.Context, collection string, record models.Record) (models.Record, error) {
	if _, ok := s.session.CurrentUser(); !ok {
		return models.Record{}, ErrNoIdentity
	}

	record.Collection = collection
	if err := s.validator.Validate(ctx, record); err != nil {
		return models.Record{}, err
	}

	created, err := s.adapter.CreateRecord(ctx, collection, record)
	if err != nil {
		return models.Record{}, fmt.Errorf("add record: %w", err)
	}

	return created, nil
}

// UpdateRecord implements [ClientRecordService].
func (s *remoteRecordService) UpdateRecord(ctx context.Context, collection, recordID string, patch models.RecordPatch) (models.Record, error) {
	if _, ok := s.session.CurrentUser(); !ok {
		return models.Record{}, ErrNoIdentity
	}
	if patch.Empty() {
		return models.Record{}, ErrInvalidDataProvided
	}

	updated, err := s.adapter.UpdateRecord(ctx, collection, recordID, patch)
	if err != nil {
		return models.Record{}, fmt.Errorf("update record: %w", err)
	}

	return updated, nil
}

// DeleteRecord implements [ClientRecordService].
func (s *remoteRecordService) DeleteRecord(ctx context.Context, collection, recordID string, confirmed bool) error {
	if _, ok := s.session.CurrentUser(); !ok {
		return ErrNoIdentity
	}
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := s.adapter.DeleteRecord(ctx, collection, recordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	return nil
}

// ClearRecords implements [ClientRecordService]. The records are deleted one
// by one; a failure stops the loop and leaves the remaining records in place.
func (s *remoteRecordService) ClearRecords(ctx context.Context, collection string) error {
	if _, ok := s.session.CurrentUser(); !ok {
		return ErrNoIdentity
	}

	records, err := s.adapter.ListRecords(ctx, collection)
	if err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	for _, record := range records {
		if err := s.adapter.DeleteRecord(ctx, collection, record.ID); err != nil {
			s.logger.Err(err).Str("func", "*remoteRecordService.ClearRecords").
				Str("collection", collection).Str("record_id", record.ID).
				Msg("clear stopped mid-way")
			return fmt.Errorf("clear records stopped at %s: %w", record.ID, err)
		}
	}

	return nil
}

// ListRecords implements [ClientRecordService].
func (s *remoteRecordService) ListRecords(ctx context.Context, collection string) ([]models.Record, error) {
	if _, ok := s.session.CurrentUser(); !ok {
		return nil, ErrNoIdentity
	}

	records, err := s.adapter.ListRecords(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}
