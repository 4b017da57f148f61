package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hirunaj/pawtrail/internal/logger"
)

// kvSlot is the SQLite-backed implementation of [KVSlot]. One row per key in
// the kv table; values are opaque strings, typically JSON.
type kvSlot struct {
	logger *logger.Logger
	db     *DB
}

// NewKVSlot constructs a [KVSlot] over an open client database connection.
func NewKVSlot(db *DB, logger *logger.Logger) KVSlot {
	logger.Debug().Msg("creating kv slot")
	return &kvSlot{
		db:     db,
		logger: logger,
	}
}

// Get returns the value stored under key and whether the key exists.
func (s *kvSlot) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getKVValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*kvSlot.Get").Str("key", key).Msg("error reading kv value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *kvSlot) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, setKVValue, key, value); err != nil {
		s.logger.Err(err).Str("func", "*kvSlot.Set").Str("key", key).Msg("error writing kv value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *kvSlot) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, removeKVValue, key); err != nil {
		s.logger.Err(err).Str("func", "*kvSlot.Remove").Str("key", key).Msg("error removing kv value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
