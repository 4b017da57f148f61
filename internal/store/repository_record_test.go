package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func recordRows(records ...models.Record) *sqlmock.Rows {
	rows := sqlmock.NewRows(recordColumns)
	for _, r := range records {
		rows.AddRow(
			r.ID, r.OwnerID, r.Collection,
			r.Name, r.NameLC, r.Location, r.LocationLC,
			r.Date, r.Status, r.Notes, r.Contact, r.PhotoURL,
			r.Food, r.WaterML, r.Vomit, r.Diarrhea, r.ActivityMin,
			r.CreatedAt, r.UpdatedAt,
		)
	}
	return rows
}

func TestCreateRecord_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	input := models.Record{
		ID:         "11111111-1111-1111-1111-111111111111",
		OwnerID:    42,
		Collection: models.CollectionLostReports,
		Name:       "Bruno",
		Location:   "Colombo",
	}

	saved := input
	saved.NameLC = "bruno"
	saved.LocationLC = "colombo"
	saved.CreatedAt = time.Now().UTC()
	saved.UpdatedAt = saved.CreatedAt

	mock.ExpectQuery("INSERT INTO records").
		WillReturnRows(recordRows(saved))

	got, err := repo.CreateRecord(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "bruno", got.NameLC)
	assert.Equal(t, "colombo", got.LocationLC)
	assert.False(t, got.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_UnknownCollection(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	_, err := repo.CreateRecord(context.Background(), models.Record{Collection: "unknown"})

	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestUpdateRecord_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	updated := models.Record{
		ID:         "rec-1",
		OwnerID:    42,
		Collection: models.CollectionVaccines,
		Name:       "Rabies",
		NameLC:     "rabies",
		Status:     models.StatusDone,
	}

	mock.ExpectQuery("UPDATE records").
		WillReturnRows(recordRows(updated))

	status := models.StatusDone
	got, err := repo.UpdateRecord(context.Background(), 42, models.CollectionVaccines, "rec-1", models.RecordPatch{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRecord_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("UPDATE records").
		WillReturnError(sql.ErrNoRows)

	status := models.StatusDone
	_, err := repo.UpdateRecord(context.Background(), 42, models.CollectionVaccines, "missing", models.RecordPatch{Status: &status})

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteRecord_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM records").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteRecord(context.Background(), 42, models.CollectionVaccines, "rec-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecord_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM records").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRecord(context.Background(), 42, models.CollectionVaccines, "missing")

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestListRecords_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	newer := models.Record{ID: "rec-2", OwnerID: 42, Collection: models.CollectionVaccines, CreatedAt: time.Now()}
	older := models.Record{ID: "rec-1", OwnerID: 42, Collection: models.CollectionVaccines, CreatedAt: time.Now().Add(-time.Hour)}

	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs(models.CollectionVaccines, int64(42)).
		WillReturnRows(recordRows(newer, older))

	got, err := repo.ListRecords(context.Background(), 42, models.CollectionVaccines)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rec-2", got[0].ID)
	assert.Equal(t, "rec-1", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecords_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM records").
		WillReturnRows(recordRows())

	got, err := repo.ListRecords(context.Background(), 42, models.CollectionVaccines)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchRecords_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	match := models.Record{
		ID:         "rec-9",
		OwnerID:    7,
		Collection: models.CollectionLostReports,
		Name:       "Bruno",
		NameLC:     "bruno",
		Location:   "Colombo",
		LocationLC: "colombo",
	}

	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs(models.CollectionLostReports, "bruno", "colombo").
		WillReturnRows(recordRows(match))

	got, err := repo.SearchRecords(context.Background(), models.SearchQuery{
		Collection: models.CollectionLostReports,
		Name:       "bruno",
		Location:   "colombo",
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rec-9", got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRecords_UnknownCollection(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	_, err := repo.SearchRecords(context.Background(), models.SearchQuery{Collection: "nope"})

	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestSearchRecords_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM records").
		WillReturnError(assert.AnError)

	_, err := repo.SearchRecords(context.Background(), models.SearchQuery{Collection: models.CollectionLostReports})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
