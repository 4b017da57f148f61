// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package models

import "time"

// Record is the single document shape shared by every collection. Each
// collection uses the subset of fields that makes sense for it: vaccines use
// Name/Date/Status/Notes, health logs use Date/Food/WaterML/Vomit/Diarrhea/
// ActivityMin/Notes, lost and found reports use Name/Location/Contact/
// PhotoURL/Notes.
//
// NameLC and LocationLC are server-maintained lowercased copies of Name and
// Location kept for exact-match search; clients never set them directly.
type Record struct {
	ID          string    `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Collection  string    `json:"collection"`
	Name        string    `json:"name,omitempty"`
	NameLC      string    `json:"name_lc,omitempty"`
	Location    string    `json:"location,omitempty"`
	LocationLC  string    `json:"location_lc,omitempty"`
	Date        string    `json:"date,omitempty"`
	Status      string    `json:"status,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Food        string    `json:"food,omitempty"`
	WaterML     float64   `json:"water_ml,omitempty"`
	Vomit       string    `json:"vomit,omitempty"`
	Diarrhea    string    `json:"diarrhea,omitempty"`
	ActivityMin float64   `json:"activity_min,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordPatch carries a partial update. Only non-nil fields are applied, so
// callers send exactly the fields the user edited and nothing else.
type RecordPatch struct {
	Name        *string  `json:"name,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Contact     *string  `json:"contact,omitempty"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	Food        *string  `json:"food,omitempty"`
	WaterML     *float64 `json:"water_ml,omitempty"`
	Vomit       *string  `json:"vomit,omitempty"`
	Diarrhea    *string  `json:"diarrhea,omitempty"`
	ActivityMin *float64 `json:"activity_min,omitempty"`
}

// Empty reports whether the patch carries no changes at all.
func (p RecordPatch) Empty() bool {
	return p.Name == nil && p.Location == nil && p.Date == nil &&
		p.Status == nil && p.Notes == nil && p.Contact == nil &&
		p.PhotoURL == nil && p.Food == nil && p.WaterML == nil &&
		p.Vomit == nil && p.Diarrhea == nil && p.ActivityMin == nil
}

// Vaccine status values toggled by the client.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)
