package service

import (
	"context"

	"github.com/hirunaj/pawtrail/internal/hub"
	"github.com/hirunaj/pawtrail/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// AuthService handles account registration, credential verification, and JWT
// lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, login, password string) (models.User, error)
	Login(ctx context.Context, login, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordService is the server-side record API: owner-scoped CRUD with
// snapshot fan-out, community-wide search, and subscription management.
type RecordService interface {
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)
	UpdateRecord(ctx context.Context, ownerID int64, collection, recordID string, patch models.RecordPatch) (models.Record, error)
	DeleteRecord(ctx context.Context, ownerID int64, collection, recordID string) error
	ListRecords(ctx context.Context, ownerID int64, collection string) ([]models.Record, error)
	SearchRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error)

	// Subscribe registers a snapshot stream for one user's collection and
	// returns the initial full snapshot alongside it.
	Subscribe(ctx context.Context, ownerID int64, collection string) (*hub.Subscriber, models.Snapshot, error)
	Unsubscribe(ownerID int64, collection string, sub *hub.Subscriber)
}

// BlobService presigns photo uploads and downloads against the object store.
type BlobService interface {
	PresignUpload(ctx context.Context) (models.PresignedUpload, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}
