// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. Every collection lives in the single "records" table,
// discriminated by the collection column.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRecord persists a new record and returns it with the
// database-assigned timestamps. The lowercased search columns are derived
// here so callers cannot desynchronize them from the display values.
func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if !models.ValidCollection(record.Collection) {
		return models.Record{}, fmt.Errorf("%w: %s", ErrUnknownCollection, record.Collection)
	}

	record.NameLC = normalizeToken(record.Name)
	record.LocationLC = normalizeToken(record.Location)

	query, args, err := buildRecordInsert(record)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.CreateRecord").Msg("error building insert query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	saved, err := scanRecordRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotSaved
		}
		log.Err(err).Str("func", "*recordRepository.CreateRecord").Msg("error scanning inserted record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// UpdateRecord applies the non-nil fields of patch to one record owned by
// ownerID and returns the updated row. A miss (wrong id, wrong owner or
// wrong collection) yields [ErrRecordNotFound].
func (r *recordRepository) UpdateRecord(ctx context.Context, ownerID int64, collection, recordID string, patch models.RecordPatch) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordUpdate(ownerID, collection, recordID, patch)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.UpdateRecord").Msg("error building update query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	updated, err := scanRecordRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.UpdateRecord").Msg("error scanning updated record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteRecord removes one record owned by ownerID. Deleting a record that
// does not exist yields [ErrRecordNotFound].
func (r *recordRepository) DeleteRecord(ctx context.Context, ownerID int64, collection, recordID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordDelete(ownerID, collection, recordID)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteRecord").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteRecord").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// ListRecords returns every record of one user's collection ordered by
// CreatedAt descending. This is the exact content of a snapshot delivery.
func (r *recordRepository) ListRecords(ctx context.Context, ownerID int64, collection string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordList(ownerID, collection)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.ListRecords").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecords(ctx, query, args...)
}

// SearchRecords runs one search-variant query across all users of one
// collection.
func (r *recordRepository) SearchRecords(ctx context.Context, searchQuery models.SearchQuery) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if !models.ValidCollection(searchQuery.Collection) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, searchQuery.Collection)
	}

	query, args, err := buildRecordSearch(searchQuery)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.SearchRecords").Msg("error building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecords(ctx, query, args...)
}

func (r *recordRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.queryRecords").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "*recordRepository.queryRecords").Msg("error scanning record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var record models.Record
	err := row.Scan(
		&record.ID, &record.OwnerID, &record.Collection,
		&record.Name, &record.NameLC, &record.Location, &record.LocationLC,
		&record.Date, &record.Status, &record.Notes, &record.Contact, &record.PhotoURL,
		&record.Food, &record.WaterML, &record.Vomit, &record.Diarrhea, &record.ActivityMin,
		&record.CreatedAt, &record.UpdatedAt,
	)
	return record, err
}

func scanRecordRow(row *sql.Row) (models.Record, error) {
	if err := row.Err(); err != nil {
		return models.Record{}, err
	}
	return scanRecord(row)
}
