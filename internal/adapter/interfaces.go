// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

// Package adapter provides transport-layer abstractions for communicating
// with the pawtrail server and with the health-insights service.
//
// The primary abstraction is [ServerAdapter], which decouples the client's
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) whose live subscriptions ride on a
// websocket per collection.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/hirunaj/pawtrail/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the pawtrail
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login, or when restoring a stored session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the server's auth response.
	Register(ctx context.Context, login, password string) (models.AuthResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken and returns the server's auth
	// response.
	Login(ctx context.Context, login, password string) (models.AuthResponse, error)

	// CreateRecord writes one new record to the named collection and returns
	// the server-assigned copy (id, lowercased fields, timestamps).
	CreateRecord(ctx context.Context, collection string, record models.Record) (models.Record, error)

	// UpdateRecord applies a partial update to one record.
	UpdateRecord(ctx context.Context, collection, recordID string, patch models.RecordPatch) (models.Record, error)

	// DeleteRecord removes one record. Returns [ErrNotFound] (wrapped) if the
	// record does not exist.
	DeleteRecord(ctx context.Context, collection, recordID string) error

	// ListRecords fetches the caller's records in one collection, newest first.
	ListRecords(ctx context.Context, collection string) ([]models.Record, error)

	// QueryRecords runs one community-wide exact-match search variant.
	QueryRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error)

	// PresignPhoto asks the server for a presigned photo upload slot.
	PresignPhoto(ctx context.Context) (models.PresignedUpload, error)

	// Subscribe opens a live snapshot stream for one collection. The stream
	// delivers the current state first and then one full snapshot after every
	// server-side mutation. The caller must Close the stream; cancelling ctx
	// also terminates it.
	Subscribe(ctx context.Context, collection string) (SnapshotStream, error)
}

// SnapshotStream is one live collection subscription as seen by the client.
type SnapshotStream interface {
	// Snapshots returns the delivery channel. It is closed when the server
	// ends the subscription, the connection drops, or Close is called. No
	// reconnection is attempted.
	Snapshots() <-chan models.Snapshot

	// Close tears the subscription down and releases the connection.
	Close() error
}

// InsightsAdapter talks to the health-insights analysis service.
type InsightsAdapter interface {
	// AnalyzeLogs submits up to the last week of health log entries and
	// returns the computed insights. Failures are returned as-is; the caller
	// decides how to surface them.
	AnalyzeLogs(ctx context.Context, entries []models.HealthEntry) (models.HealthInsights, error)
}
