package store

import "github.com/hirunaj/pawtrail/internal/logger"

// Storages aggregates every server-side repository behind one value the
// service layer is wired with.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RecordRepository
}

// NewStorages constructs all repositories over one database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecordRepository: NewRecordRepository(db, log),
	}
}
