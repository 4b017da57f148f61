// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/mock"
	"github.com/hirunaj/pawtrail/internal/validators"
	"github.com/hirunaj/pawtrail/models"
)

func newRemoteRecordServiceForTest(t *testing.T) (ClientRecordService, *mock.MockServerAdapter, *mock.MockClientSessionService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockClientSessionService(ctrl)
	records := NewRemoteRecordService(serverAdapter, session, validators.NewRecordValidator(), logger.Nop())

	return records, serverAdapter, session
}

func signedIn(session *mock.MockClientSessionService) {
	session.EXPECT().
		CurrentUser().
		Return(models.User{UserID: 1, Login: "hiruna"}, true).
		AnyTimes()
}

func signedOut(session *mock.MockClientSessionService) {
	session.EXPECT().
		CurrentUser().
		Return(models.User{}, false).
		AnyTimes()
}

func TestRemoteRecordService_AddRecord(t *testing.T) {
	t.Run("writes to the server only", func(t *testing.T) {
		records, serverAdapter, session := newRemoteRecordServiceForTest(t)
		signedIn(session)

		report := models.Record{Name: "Bruno", Location: "Colombo"}
		serverAdapter.EXPECT().
			CreateRecord(gomock.Any(), models.CollectionLostReports, gomock.Any()).
			DoAndReturn(func(_ any, collection string, record models.Record) (models.Record, error) {
				require.Equal(t, collection, record.Collection)
				record.ID = "r1"
				return record, nil
			})

		created, err := records.AddRecord(t.Context(), models.CollectionLostReports, report)
		require.NoError(t, err)
		assert.Equal(t, "r1", created.ID)
		assert.Equal(t, "Bruno", created.Name)
	})

	t.Run("fails fast without identity", func(t *testing.T) {
		records, _, session := newRemoteRecordServiceForTest(t)
		signedOut(session)

		_, err := records.AddRecord(t.Context(), models.CollectionLostReports, models.Record{Name: "Bruno", Location: "Colombo"})
		assert.ErrorIs(t, err, ErrNoIdentity)
	})

	t.Run("validates before sending", func(t *testing.T) {
		records, _, session := newRemoteRecordServiceForTest(t)
		signedIn(session)

		_, err := records.AddRecord(t.Context(), models.CollectionLostReports, models.Record{Location: "Colombo"})
		assert.ErrorIs(t, err, validators.ErrEmptyName)
	})
}

func TestRemoteRecordService_UpdateRecord(t *testing.T) {
	t.Run("sends the patch", func(t *testing.T) {
		records, serverAdapter, session := newRemoteRecordServiceForTest(t)
		signedIn(session)

		status := models.StatusDone
		serverAdapter.EXPECT().
			UpdateRecord(gomock.Any(), models.CollectionVaccines, "v1", models.RecordPatch{Status: &status}).
			Return(models.Record{ID: "v1", Status: models.StatusDone}, nil)

		updated, err := records.UpdateRecord(t.Context(), models.CollectionVaccines, "v1", models.RecordPatch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.StatusDone, updated.Status)
	})

	t.Run("rejects an empty patch", func(t *testing.T) {
		records, _, session := newRemoteRecordServiceForTest(t)
		signedIn(session)

		_, err := records.UpdateRecord(t.Context(), models.CollectionVaccines, "v1", models.RecordPatch{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestRemoteRecordService_DeleteRecord(t *testing.T) {
	t.Run("refuses without confirmation", func(t *testing.T) {
		records, _, session := newRemoteRecordServiceForTest(t)
		signedIn(session)

		err := records.DeleteRecord(t.Context(), models.CollectionVaccines, "v1", false)
		assert.ErrorIs(t, err, ErrConfirmationRequired)
	})

	t.Run("deletes when confirmed", func(t *testing.T) {
		records, serverAdapter, session := newRemoteRecordServiceForTest(t)
		signedIn(session)

		serverAdapter.EXPECT().
			DeleteRecord(gomock.Any(), models.CollectionVaccines, "v1").
			Return(nil)

		require.NoError(t, records.DeleteRecord(t.Context(), models.CollectionVaccines, "v1", true))
	})
}

func TestRemoteRecordService_ClearRecords(t *testing.T) {
	t.Run("deletes one by one", func(t *testing.T) {
		records, serverAdapter, session := newRemoteRecordServiceForTest(t)
		signedIn(session)

		serverAdapter.EXPECT().
			ListRecords(gomock.Any(), models.CollectionHealthLogs).
			Return([]models.Record{{ID: "h1"}, {ID: "h2"}}, nil)
		serverAdapter.EXPECT().DeleteRecord(gomock.Any(), models.CollectionHealthLogs, "h1").Return(nil)
		serverAdapter.EXPECT().DeleteRecord(gomock.Any(), models.CollectionHealthLogs, "h2").Return(nil)

		require.NoError(t, records.ClearRecords(t.Context(), models.CollectionHealthLogs))
	})

	t.Run("stops mid-way on failure leaving the rest in place", func(t *testing.T) {
		records, serverAdapter, session := newRemoteRecordServiceForTest(t)
		signedIn(session)

		serverAdapter.EXPECT().
			ListRecords(gomock.Any(), models.CollectionHealthLogs).
			Return([]models.Record{{ID: "h1"}, {ID: "h2"}, {ID: "h3"}}, nil)
		serverAdapter.EXPECT().DeleteRecord(gomock.Any(), models.CollectionHealthLogs, "h1").Return(nil)
		serverAdapter.EXPECT().
			DeleteRecord(gomock.Any(), models.CollectionHealthLogs, "h2").
			Return(errors.New("connection reset"))

		err := records.ClearRecords(t.Context(), models.CollectionHealthLogs)
		assert.Error(t, err)
	})
}
