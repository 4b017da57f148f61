// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

// recordsKeyPrefix namespaces the per-collection arrays inside the kv slot.
const recordsKeyPrefix = "records:"

// localRecordRepository is the [LocalRecordRepository] implementation backing
// the client's local-only fallback mode. Each collection is one JSON array
// under one kv key; every mutation rewrites the collection's whole array,
// exactly like the localStorage pattern it mirrors. An in-memory copy is kept
// so reads never touch the slot after construction.
//
// Records are held newest first. With no server clock in this mode,
// timestamps come from the local clock at insertion time.
type localRecordRepository struct {
	logger *logger.Logger
	kv     KVSlot

	mu      sync.Mutex
	records map[string][]models.Record
}

// NewLocalRecordRepository constructs the fallback store and synchronously
// hydrates every known collection from the kv slot. A collection that fails
// to decode is logged and treated as empty; it will be overwritten by the
// next mutation.
func NewLocalRecordRepository(kv KVSlot, log *logger.Logger) LocalRecordRepository {
	log.Debug().Msg("creating local record repository")

	repo := &localRecordRepository{
		logger:  log,
		kv:      kv,
		records: make(map[string][]models.Record, len(models.Collections)),
	}
	repo.load(context.Background())

	return repo
}

func (r *localRecordRepository) load(ctx context.Context) {
	for _, collection := range models.Collections {
		value, ok, err := r.kv.Get(ctx, recordsKeyPrefix+collection)
		if err != nil {
			r.logger.Err(err).Str("func", "*localRecordRepository.load").
				Str("collection", collection).Msg("error hydrating collection")
			continue
		}
		if !ok {
			continue
		}

		var records []models.Record
		if err := json.Unmarshal([]byte(value), &records); err != nil {
			r.logger.Err(err).Str("func", "*localRecordRepository.load").
				Str("collection", collection).Msg("error decoding collection, starting empty")
			continue
		}

		r.records[collection] = records
	}
}

// ListRecords returns a copy of the collection, newest first.
func (r *localRecordRepository) ListRecords(ctx context.Context, collection string) ([]models.Record, error) {
	if !models.ValidCollection(collection) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]models.Record, len(r.records[collection]))
	copy(records, r.records[collection])
	return records, nil
}

// AddRecord assigns a local identifier and timestamps, prepends the record,
// and rewrites the collection.
func (r *localRecordRepository) AddRecord(ctx context.Context, record models.Record) (models.Record, error) {
	if !models.ValidCollection(record.Collection) {
		return models.Record{}, fmt.Errorf("%w: %s", ErrUnknownCollection, record.Collection)
	}

	record.ID = uuid.NewString()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	collection := record.Collection
	r.records[collection] = append([]models.Record{record}, r.records[collection]...)

	if err := r.persist(ctx, collection); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// UpdateRecord applies the non-nil fields of patch in place and rewrites the
// collection.
func (r *localRecordRepository) UpdateRecord(ctx context.Context, collection, recordID string, patch models.RecordPatch) (models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.records[collection]
	for i := range records {
		if records[i].ID != recordID {
			continue
		}

		applyPatch(&records[i], patch)
		records[i].UpdatedAt = time.Now()

		if err := r.persist(ctx, collection); err != nil {
			return models.Record{}, err
		}
		return records[i], nil
	}

	return models.Record{}, ErrRecordNotFound
}

// DeleteRecord removes one record and rewrites the collection.
func (r *localRecordRepository) DeleteRecord(ctx context.Context, collection, recordID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.records[collection]
	for i := range records {
		if records[i].ID != recordID {
			continue
		}

		r.records[collection] = append(records[:i:i], records[i+1:]...)
		return r.persist(ctx, collection)
	}

	return ErrRecordNotFound
}

// ClearRecords drops the whole collection and its kv key.
func (r *localRecordRepository) ClearRecords(ctx context.Context, collection string) error {
	if !models.ValidCollection(collection) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, collection)
	return r.kv.Remove(ctx, recordsKeyPrefix+collection)
}

// persist serializes the collection's full array into its kv key.
// Callers hold r.mu.
func (r *localRecordRepository) persist(ctx context.Context, collection string) error {
	payload, err := json.Marshal(r.records[collection])
	if err != nil {
		return fmt.Errorf("error encoding collection %s: %w", collection, err)
	}

	return r.kv.Set(ctx, recordsKeyPrefix+collection, string(payload))
}

func applyPatch(record *models.Record, patch models.RecordPatch) {
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Location != nil {
		record.Location = *patch.Location
	}
	if patch.Date != nil {
		record.Date = *patch.Date
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	if patch.Contact != nil {
		record.Contact = *patch.Contact
	}
	if patch.PhotoURL != nil {
		record.PhotoURL = *patch.PhotoURL
	}
	if patch.Food != nil {
		record.Food = *patch.Food
	}
	if patch.WaterML != nil {
		record.WaterML = *patch.WaterML
	}
	if patch.Vomit != nil {
		record.Vomit = *patch.Vomit
	}
	if patch.Diarrhea != nil {
		record.Diarrhea = *patch.Diarrhea
	}
	if patch.ActivityMin != nil {
		record.ActivityMin = *patch.ActivityMin
	}
}
