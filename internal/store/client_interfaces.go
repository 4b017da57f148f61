package store

import (
	"context"

	"github.com/hirunaj/pawtrail/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KVSlot is a synchronous key-value slot, the moral equivalent of a browser's
// localStorage: opaque string values under string keys, one writer at a time.
// The client keeps its session and the local-only fallback collections here.
type KVSlot interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// LocalRecordRepository is the local-only fallback record store used when no
// remote service is configured. It is single-tenant: records have no owner
// and live entirely on this device.
type LocalRecordRepository interface {
	ListRecords(ctx context.Context, collection string) ([]models.Record, error)
	AddRecord(ctx context.Context, record models.Record) (models.Record, error)
	UpdateRecord(ctx context.Context, collection, recordID string, patch models.RecordPatch) (models.Record, error)
	DeleteRecord(ctx context.Context, collection, recordID string) error
	ClearRecords(ctx context.Context, collection string) error
}
