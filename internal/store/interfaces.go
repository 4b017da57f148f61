package store

import (
	"context"

	"github.com/hirunaj/pawtrail/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RecordRepository persists records of all collections in one table.
//
// List and the mutating methods are owner-scoped: a caller can only ever see
// or touch its own records. Search is deliberately not owner-scoped — lost
// and found reports are community-visible and searched across all users.
type RecordRepository interface {
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)
	UpdateRecord(ctx context.Context, ownerID int64, collection, recordID string, patch models.RecordPatch) (models.Record, error)
	DeleteRecord(ctx context.Context, ownerID int64, collection, recordID string) error
	ListRecords(ctx context.Context, ownerID int64, collection string) ([]models.Record, error)
	SearchRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
