// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package models

// Snapshot is one websocket delivery: the full current contents of a single
// user's collection, ordered by CreatedAt descending. The server never sends
// diffs; every delivery replaces whatever the subscriber held before.
type Snapshot struct {
	Collection string   `json:"collection"`
	Records    []Record `json:"records"`
}
