// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

// Package mirror holds the client's live local copy of the signed-in user's
// collections. Subscriptions feed it full snapshots; views are derived on
// read.
package mirror

import (
	"sort"
	"sync"

	"github.com/hirunaj/pawtrail/models"
)

// Mirror is a set of per-source record maps keyed by record identifier.
// Every snapshot delivery replaces exactly one source's map, so concurrent
// subscriptions to different sources can never overwrite each other's slice
// of a merged view, whatever order their deliveries land in.
//
// All views are copies sorted by CreatedAt descending; the internal maps are
// never handed out.
type Mirror struct {
	mu      sync.RWMutex
	sources map[string]map[string]models.Record
}

// New returns an empty mirror.
func New() *Mirror {
	return &Mirror{
		sources: make(map[string]map[string]models.Record),
	}
}

// Apply folds one snapshot delivery into the mirror, replacing the named
// source's previous contents entirely.
func (m *Mirror) Apply(snapshot models.Snapshot) {
	keyed := make(map[string]models.Record, len(snapshot.Records))
	for _, record := range snapshot.Records {
		keyed[record.ID] = record
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[snapshot.Collection] = keyed
}

// Records returns one source's view, newest first.
func (m *Mirror) Records(collection string) []models.Record {
	return m.Merged(collection)
}

// Merged returns the union of the named sources, newest first. Ties on
// CreatedAt are broken by ID so the view is stable between reads.
func (m *Mirror) Merged(collections ...string) []models.Record {
	m.mu.RLock()

	merged := make([]models.Record, 0)
	for _, collection := range collections {
		for _, record := range m.sources[collection] {
			merged = append(merged, record)
		}
	}
	m.mu.RUnlock()

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].ID < merged[j].ID
	})

	return merged
}

// Len reports how many records one source currently holds.
func (m *Mirror) Len(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sources[collection])
}

// Reset drops every source. Called on sign-out after subscriptions are torn
// down, so a later identity starts from a blank mirror.
func (m *Mirror) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = make(map[string]map[string]models.Record)
}
