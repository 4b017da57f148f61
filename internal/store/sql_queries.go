package store

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/hirunaj/pawtrail/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

// recordColumns is the canonical column order every record query selects and
// every scan helper consumes. The version column is bookkeeping only and is
// deliberately not part of it.
var recordColumns = []string{
	"id", "owner_id", "collection",
	"name", "name_lc", "location", "location_lc",
	"date", "status", "notes", "contact", "photo_url",
	"food", "water_ml", "vomit", "diarrhea", "activity_min",
	"created_at", "updated_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildRecordInsert builds the INSERT for a new record. Timestamps are
// assigned by the database and returned via RETURNING so the caller receives
// the canonical representation.
func buildRecordInsert(record models.Record) (string, []any, error) {
	return psql.Insert("records").
		Columns(
			"id", "owner_id", "collection",
			"name", "name_lc", "location", "location_lc",
			"date", "status", "notes", "contact", "photo_url",
			"food", "water_ml", "vomit", "diarrhea", "activity_min",
		).
		Values(
			record.ID, record.OwnerID, record.Collection,
			record.Name, record.NameLC, record.Location, record.LocationLC,
			record.Date, record.Status, record.Notes, record.Contact, record.PhotoURL,
			record.Food, record.WaterML, record.Vomit, record.Diarrhea, record.ActivityMin,
		).
		Suffix("RETURNING " + strings.Join(recordColumns, ", ")).
		ToSql()
}

// buildRecordUpdate builds a partial UPDATE from the non-nil fields of patch.
// Editing Name or Location refreshes the corresponding lowercased search
// column in the same statement.
func buildRecordUpdate(ownerID int64, collection, recordID string, patch models.RecordPatch) (string, []any, error) {
	b := psql.Update("records").
		Set("updated_at", squirrel.Expr("now()")).
		Set("version", squirrel.Expr("version + 1"))

	if patch.Name != nil {
		b = b.Set("name", *patch.Name).
			Set("name_lc", normalizeToken(*patch.Name))
	}
	if patch.Location != nil {
		b = b.Set("location", *patch.Location).
			Set("location_lc", normalizeToken(*patch.Location))
	}
	if patch.Date != nil {
		b = b.Set("date", *patch.Date)
	}
	if patch.Status != nil {
		b = b.Set("status", *patch.Status)
	}
	if patch.Notes != nil {
		b = b.Set("notes", *patch.Notes)
	}
	if patch.Contact != nil {
		b = b.Set("contact", *patch.Contact)
	}
	if patch.PhotoURL != nil {
		b = b.Set("photo_url", *patch.PhotoURL)
	}
	if patch.Food != nil {
		b = b.Set("food", *patch.Food)
	}
	if patch.WaterML != nil {
		b = b.Set("water_ml", *patch.WaterML)
	}
	if patch.Vomit != nil {
		b = b.Set("vomit", *patch.Vomit)
	}
	if patch.Diarrhea != nil {
		b = b.Set("diarrhea", *patch.Diarrhea)
	}
	if patch.ActivityMin != nil {
		b = b.Set("activity_min", *patch.ActivityMin)
	}

	return b.
		Where(squirrel.Eq{"id": recordID, "owner_id": ownerID, "collection": collection}).
		Suffix("RETURNING " + strings.Join(recordColumns, ", ")).
		ToSql()
}

// buildRecordList builds the owner-scoped listing a snapshot is made of,
// newest first.
func buildRecordList(ownerID int64, collection string) (string, []any, error) {
	return psql.Select(recordColumns...).
		From("records").
		Where(squirrel.Eq{"owner_id": ownerID, "collection": collection}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildRecordDelete builds the owner-scoped DELETE of a single record.
func buildRecordDelete(ownerID int64, collection, recordID string) (string, []any, error) {
	return psql.Delete("records").
		Where(squirrel.Eq{"id": recordID, "owner_id": ownerID, "collection": collection}).
		ToSql()
}

// buildRecordSearch builds one search-variant query. Name and Location are
// already-normalized tokens; empty tokens are not filtered on, so an empty
// query degrades to "most recent Limit records of the collection".
func buildRecordSearch(query models.SearchQuery) (string, []any, error) {
	b := psql.Select(recordColumns...).
		From("records").
		Where(squirrel.Eq{"collection": query.Collection}).
		OrderBy("created_at DESC")

	if query.Name != "" {
		b = b.Where(squirrel.Eq{"name_lc": query.Name})
	}
	if query.Location != "" {
		b = b.Where(squirrel.Eq{"location_lc": query.Location})
	}
	if query.Limit > 0 {
		b = b.Limit(uint64(query.Limit))
	}

	return b.ToSql()
}

// normalizeToken lowercases and trims a value the way the search columns and
// search tokens are normalized everywhere else.
func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
