// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package models

// AuthRequest is the body of both register and login calls.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SearchQuery holds the normalized tokens of one search-variant query.
// Empty Name and Location means "most recent Limit records".
type SearchQuery struct {
	Collection string `json:"collection"`
	Name       string `json:"name,omitempty"`
	Location   string `json:"location,omitempty"`
	Limit      int    `json:"limit"`
}
