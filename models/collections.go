// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package models

// Collection names known to the server and the client sync engine.
const (
	CollectionVaccines     = "vaccines"
	CollectionHealthLogs   = "healthlogs"
	CollectionLostReports  = "lost_reports"
	CollectionFoundReports = "found_reports"
)

// Collections lists every collection the server accepts, in a fixed order.
var Collections = []string{
	CollectionVaccines,
	CollectionHealthLogs,
	CollectionLostReports,
	CollectionFoundReports,
}

// ReportCollections are the two sources merged into the combined
// lost-and-found view and searched by the cross-collection search.
var ReportCollections = []string{
	CollectionLostReports,
	CollectionFoundReports,
}

// ValidCollection reports whether name is one of the known collections.
func ValidCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
