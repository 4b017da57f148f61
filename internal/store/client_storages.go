package store

import (
	"context"
	"fmt"

	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
)

// ClientStorages groups all client-side storage facilities into a single
// value that can be passed around the service layer: the raw kv slot (used
// for the session) and the fallback record repository built on top of it.
type ClientStorages struct {
	// KVSlot is the localStorage-analog backing both the session and the
	// fallback collections.
	KVSlot KVSlot

	// RecordRepository is the local-only fallback record store.
	RecordRepository LocalRecordRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Ensures the kv table exists.
//  3. Constructs a [KVSlot] and hydrates a [LocalRecordRepository] from it.
//
// Returns an error if the database connection cannot be established.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	kv := NewKVSlot(db, logger)

	return &ClientStorages{
		KVSlot:           kv,
		RecordRepository: NewLocalRecordRepository(kv, logger),
	}, nil
}
