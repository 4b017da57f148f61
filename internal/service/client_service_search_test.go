// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/mock"
	"github.com/hirunaj/pawtrail/models"
)

func newSearchServiceForTest(t *testing.T) (ClientSearchService, *mock.MockServerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	return NewClientSearchService(serverAdapter, logger.Nop()), serverAdapter
}

func TestClientSearchService_Search(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("runs all three variants with lowercased tokens and dedupes", func(t *testing.T) {
		search, serverAdapter := newSearchServiceForTest(t)

		both := models.Record{ID: "r1", NameLC: "bruno", LocationLC: "colombo", CreatedAt: base.Add(2 * time.Hour)}
		sameLocation := models.Record{ID: "r2", LocationLC: "colombo", CreatedAt: base.Add(time.Hour)}
		sameName := models.Record{ID: "r3", NameLC: "bruno", CreatedAt: base}

		serverAdapter.EXPECT().
			QueryRecords(gomock.Any(), models.SearchQuery{
				Collection: models.CollectionLostReports,
				Name:       "bruno",
				Location:   "colombo",
				Limit:      searchLimit,
			}).
			Return([]models.Record{both}, nil)
		serverAdapter.EXPECT().
			QueryRecords(gomock.Any(), models.SearchQuery{
				Collection: models.CollectionLostReports,
				Location:   "colombo",
				Limit:      searchLimit,
			}).
			Return([]models.Record{both, sameLocation}, nil)
		serverAdapter.EXPECT().
			QueryRecords(gomock.Any(), models.SearchQuery{
				Collection: models.CollectionLostReports,
				Name:       "bruno",
				Limit:      searchLimit,
			}).
			Return([]models.Record{both, sameName}, nil)

		found, err := search.Search(t.Context(), models.CollectionLostReports, " Bruno ", "Colombo")
		require.NoError(t, err)

		require.Len(t, found, 3)
		assert.Equal(t, "r1", found[0].ID)
		assert.Equal(t, "r2", found[1].ID)
		assert.Equal(t, "r3", found[2].ID)
	})

	t.Run("name-only search issues exactly one name-filtered query", func(t *testing.T) {
		search, serverAdapter := newSearchServiceForTest(t)

		// No unfiltered variant may run: it would mix in up to a page of
		// records matching neither token.
		serverAdapter.EXPECT().
			QueryRecords(gomock.Any(), models.SearchQuery{
				Collection: models.CollectionFoundReports,
				Name:       "bruno",
				Limit:      searchLimit,
			}).
			Return([]models.Record{{ID: "r1", NameLC: "bruno"}}, nil)

		found, err := search.Search(t.Context(), models.CollectionFoundReports, "Bruno", "")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "bruno", found[0].NameLC)
	})

	t.Run("location-only search issues exactly one location-filtered query", func(t *testing.T) {
		search, serverAdapter := newSearchServiceForTest(t)

		serverAdapter.EXPECT().
			QueryRecords(gomock.Any(), models.SearchQuery{
				Collection: models.CollectionFoundReports,
				Location:   "colombo",
				Limit:      searchLimit,
			}).
			Return([]models.Record{{ID: "r1", LocationLC: "colombo"}}, nil)

		found, err := search.Search(t.Context(), models.CollectionFoundReports, "", "Colombo")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "colombo", found[0].LocationLC)
	})

	t.Run("search with no tokens falls back to one most-recent query", func(t *testing.T) {
		search, serverAdapter := newSearchServiceForTest(t)

		serverAdapter.EXPECT().
			QueryRecords(gomock.Any(), models.SearchQuery{
				Collection: models.CollectionFoundReports,
				Limit:      searchLimit,
			}).
			Return([]models.Record{{ID: "r1"}, {ID: "r2"}}, nil)

		found, err := search.Search(t.Context(), models.CollectionFoundReports, "", "")
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("fails as a whole when any variant fails", func(t *testing.T) {
		search, serverAdapter := newSearchServiceForTest(t)

		serverAdapter.EXPECT().
			QueryRecords(gomock.Any(), models.SearchQuery{
				Collection: models.CollectionLostReports,
				Location:   "colombo",
				Limit:      searchLimit,
			}).
			Return(nil, errors.New("bad gateway"))
		serverAdapter.EXPECT().
			QueryRecords(gomock.Any(), gomock.Any()).
			Return([]models.Record{{ID: "r1"}}, nil).
			AnyTimes()

		_, err := search.Search(t.Context(), models.CollectionLostReports, "Bruno", "Colombo")
		assert.ErrorIs(t, err, ErrSearchFailed)
	})
}

func TestSearchVariants(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		location string
		want     []models.SearchQuery
	}{
		{
			name:     "both tokens yield all three variants",
			token:    "bruno",
			location: "colombo",
			want: []models.SearchQuery{
				{Collection: models.CollectionLostReports, Name: "bruno", Location: "colombo", Limit: searchLimit},
				{Collection: models.CollectionLostReports, Location: "colombo", Limit: searchLimit},
				{Collection: models.CollectionLostReports, Name: "bruno", Limit: searchLimit},
			},
		},
		{
			name:  "name only yields the name variant alone",
			token: "bruno",
			want: []models.SearchQuery{
				{Collection: models.CollectionLostReports, Name: "bruno", Limit: searchLimit},
			},
		},
		{
			name:     "location only yields the location variant alone",
			location: "colombo",
			want: []models.SearchQuery{
				{Collection: models.CollectionLostReports, Location: "colombo", Limit: searchLimit},
			},
		},
		{
			name: "no tokens yields the single most-recent fallback",
			want: []models.SearchQuery{
				{Collection: models.CollectionLostReports, Limit: searchLimit},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := searchVariants(models.CollectionLostReports, tt.token, tt.location)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientSearchService_SearchReports(t *testing.T) {
	search, serverAdapter := newSearchServiceForTest(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	lost := models.Record{ID: "l1", Collection: models.CollectionLostReports, CreatedAt: base.Add(time.Hour)}
	found := models.Record{ID: "f1", Collection: models.CollectionFoundReports, CreatedAt: base}

	serverAdapter.EXPECT().
		QueryRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, query models.SearchQuery) ([]models.Record, error) {
			switch query.Collection {
			case models.CollectionLostReports:
				return []models.Record{lost}, nil
			case models.CollectionFoundReports:
				return []models.Record{found}, nil
			default:
				return nil, errors.New("unexpected collection")
			}
		}).
		Times(6)

	merged, err := search.SearchReports(t.Context(), "Bruno", "Colombo")
	require.NoError(t, err)

	require.Len(t, merged, 2)
	assert.Equal(t, "l1", merged[0].ID)
	assert.Equal(t, "f1", merged[1].ID)
}
