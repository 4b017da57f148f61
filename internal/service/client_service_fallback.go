package service

import (
	"context"
	"fmt"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/store"
	"github.com/hirunaj/pawtrail/internal/validators"
	"github.com/hirunaj/pawtrail/models"
)

// fallbackRecordService is the local-only implementation of
// [ClientRecordService]. It keeps the same validation and confirmation rules
// as remote mode but writes into the device store, needs no identity, and
// clears a collection in one rewrite instead of a delete loop.
type fallbackRecordService struct {
	repository store.LocalRecordRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewFallbackRecordService constructs the local-only [ClientRecordService].
func NewFallbackRecordService(repository store.LocalRecordRepository, validator validators.Validator, logger *logger.Logger) ClientRecordService {
	return &fallbackRecordService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

// AddRecord implements [ClientRecordService].
func (s *fallbackRecordService) AddRecord(ctx context.Context, collection string, record models.Record) (models.Record, error) {
	record.Collection = collection
	if err := s.validator.Validate(ctx, record); err != nil {
		return models.Record{}, err
	}

	created, err := s.repository.AddRecord(ctx, record)
	if err != nil {
		return models.Record{}, fmt.Errorf("add local record: %w", err)
	}

	return created, nil
}

// UpdateRecord implements [ClientRecordService].
func (s *fallbackRecordService) UpdateRecord(ctx context.Context, collection, recordID string, patch models.RecordPatch) (models.Record, error) {
	if patch.Empty() {
		return models.Record{}, ErrInvalidDataProvided
	}

	updated, err := s.repository.UpdateRecord(ctx, collection, recordID, patch)
	if err != nil {
		return models.Record{}, fmt.Errorf("update local record: %w", err)
	}

	return updated, nil
}

// DeleteRecord implements [ClientRecordService].
func (s *fallbackRecordService) DeleteRecord(ctx context.Context, collection, recordID string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := s.repository.DeleteRecord(ctx, collection, recordID); err != nil {
		return fmt.Errorf("delete local record: %w", err)
	}

	return nil
}

// ClearRecords implements [ClientRecordService].
func (s *fallbackRecordService) ClearRecords(ctx context.Context, collection string) error {
	if err := s.repository.ClearRecords(ctx, collection); err != nil {
		return fmt.Errorf("clear local records: %w", err)
	}

	return nil
}

// ListRecords implements [ClientRecordService].
func (s *fallbackRecordService) ListRecords(ctx context.Context, collection string) ([]models.Record, error) {
	records, err := s.repository.ListRecords(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list local records: %w", err)
	}

	return records, nil
}
