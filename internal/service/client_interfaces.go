// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package service

import (
	"context"

	"github.com/hirunaj/pawtrail/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mocks.go -package=mock

// ClientSessionService manages the client's stored identity: account
// creation, sign-in, session restore from the local slot, and sign-out.
type ClientSessionService interface {
	// SignUp registers a new account, stores the session locally, and leaves
	// the transport authenticated.
	SignUp(ctx context.Context, login, password string) (models.User, error)

	// SignIn authenticates an existing account, stores the session locally,
	// and leaves the transport authenticated.
	SignIn(ctx context.Context, login, password string) (models.User, error)

	// RestoreSession loads the stored session, if any, and re-authenticates
	// the transport with it. Returns [ErrNoStoredSession] when the slot is
	// empty.
	RestoreSession(ctx context.Context) (models.User, error)

	// SignOut clears the transport token and removes the stored session.
	// Callers must tear live subscriptions down first.
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in user, if any.
	CurrentUser() (models.User, bool)
}

// ClientRecordService is the optimistic mutation layer over one record
// backend. In remote mode writes go to the server only: the local mirror is
// updated by the subscription snapshot that follows, never by the mutation
// itself. In local-only fallback mode writes go to the device store.
type ClientRecordService interface {
	// AddRecord validates and writes one new record.
	AddRecord(ctx context.Context, collection string, record models.Record) (models.Record, error)

	// UpdateRecord applies a partial update to one record.
	UpdateRecord(ctx context.Context, collection, recordID string, patch models.RecordPatch) (models.Record, error)

	// DeleteRecord removes one record. It refuses to act until confirmed is
	// true, returning [ErrConfirmationRequired].
	DeleteRecord(ctx context.Context, collection, recordID string, confirmed bool) error

	// ClearRecords removes every record in the collection. In remote mode the
	// clear is a sequence of single deletes and is not atomic: a mid-way
	// failure leaves the remainder in place.
	ClearRecords(ctx context.Context, collection string) error

	// ListRecords fetches the collection's current records, newest first.
	ListRecords(ctx context.Context, collection string) ([]models.Record, error)
}

// ClientSubscriptionService owns the live snapshot subscriptions and the
// mirror they feed.
type ClientSubscriptionService interface {
	// Subscribe tears any previous subscriptions down, then opens one stream
	// per named collection. There is no retry: a dead stream stays dead until
	// the next Subscribe call.
	Subscribe(ctx context.Context, collections ...string) error

	// Teardown closes every live stream and waits for their pumps to stop.
	// Safe to call repeatedly.
	Teardown()

	// Records returns the mirror's view of one collection, newest first.
	Records(collection string) []models.Record

	// LostAndFound returns the merged lost+found view, newest first. Each
	// report keeps its source collection, so a snapshot for one source never
	// disturbs the other's records.
	LostAndFound() []models.Record
}

// ClientSearchService runs community-wide report searches.
type ClientSearchService interface {
	// Search runs the three query variants for one collection concurrently
	// (name+location, location only, name only), merges the results, drops
	// duplicate IDs, and sorts newest first. If any variant fails the whole
	// search fails.
	Search(ctx context.Context, collection, name, location string) ([]models.Record, error)

	// SearchReports runs Search over both report collections and merges the
	// results the same way.
	SearchReports(ctx context.Context, name, location string) ([]models.Record, error)
}

// ClientInsightsService submits recent health logs for analysis.
type ClientInsightsService interface {
	// Analyze posts up to the last seven health log entries and returns the
	// verdict. Returns [ErrNothingToAnalyze] when there are no entries.
	Analyze(ctx context.Context) (models.HealthInsights, error)
}
