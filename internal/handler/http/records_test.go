package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirunaj/pawtrail/internal/hub"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/service"
	"github.com/hirunaj/pawtrail/internal/store"
	"github.com/hirunaj/pawtrail/models"
)

// ─────────────────────────────────────────────
// Mock RecordService / BlobService
// ─────────────────────────────────────────────

type mockRecordService struct {
	createRecordFn func(ctx context.Context, record models.Record) (models.Record, error)
	updateRecordFn func(ctx context.Context, ownerID int64, collection, recordID string, patch models.RecordPatch) (models.Record, error)
	deleteRecordFn func(ctx context.Context, ownerID int64, collection, recordID string) error
	listRecordsFn  func(ctx context.Context, ownerID int64, collection string) ([]models.Record, error)
	searchFn       func(ctx context.Context, query models.SearchQuery) ([]models.Record, error)
	subscribeFn    func(ctx context.Context, ownerID int64, collection string) (*hub.Subscriber, models.Snapshot, error)
	unsubscribeFn  func(ownerID int64, collection string, sub *hub.Subscriber)
}

func (m *mockRecordService) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	return m.createRecordFn(ctx, record)
}

func (m *mockRecordService) UpdateRecord(ctx context.Context, ownerID int64, collection, recordID string, patch models.RecordPatch) (models.Record, error) {
	return m.updateRecordFn(ctx, ownerID, collection, recordID, patch)
}

func (m *mockRecordService) DeleteRecord(ctx context.Context, ownerID int64, collection, recordID string) error {
	return m.deleteRecordFn(ctx, ownerID, collection, recordID)
}

func (m *mockRecordService) ListRecords(ctx context.Context, ownerID int64, collection string) ([]models.Record, error) {
	return m.listRecordsFn(ctx, ownerID, collection)
}

func (m *mockRecordService) SearchRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error) {
	return m.searchFn(ctx, query)
}

func (m *mockRecordService) Subscribe(ctx context.Context, ownerID int64, collection string) (*hub.Subscriber, models.Snapshot, error) {
	return m.subscribeFn(ctx, ownerID, collection)
}

func (m *mockRecordService) Unsubscribe(ownerID int64, collection string, sub *hub.Subscriber) {
	if m.unsubscribeFn != nil {
		m.unsubscribeFn(ownerID, collection, sub)
	}
}

type mockBlobService struct {
	presignUploadFn   func(ctx context.Context) (models.PresignedUpload, error)
	presignDownloadFn func(ctx context.Context, key string) (string, error)
}

func (m *mockBlobService) PresignUpload(ctx context.Context) (models.PresignedUpload, error) {
	return m.presignUploadFn(ctx)
}

func (m *mockBlobService) PresignDownload(ctx context.Context, key string) (string, error) {
	return m.presignDownloadFn(ctx, key)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// passthroughAuth accepts any bearer token and resolves it to user 42.
func passthroughAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == "expired" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: 42}, nil
		},
	}
}

// newTestRouter wires the mocks into a full chi router so tests exercise
// routing and the auth middleware alongside the handler itself.
func newTestRouter(t *testing.T, records service.RecordService, blobs service.BlobService) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{
		AuthService:   passthroughAuth(),
		RecordService: records,
		BlobService:   blobs,
	}, logger.Nop())
	return h.Init()
}

func doAuthedRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	r := httptest.NewRequest(method, target, reader)
	r.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

// ─────────────────────────────────────────────
// create / list / update / delete
// ─────────────────────────────────────────────

func TestCreateRecord_SetsOwnerAndCollection(t *testing.T) {
	records := &mockRecordService{
		createRecordFn: func(_ context.Context, record models.Record) (models.Record, error) {
			assert.Equal(t, int64(42), record.OwnerID)
			assert.Equal(t, models.CollectionLostReports, record.Collection)
			assert.Equal(t, "Bruno", record.Name)
			record.ID = "rec-1"
			return record, nil
		},
	}
	router := newTestRouter(t, records, &mockBlobService{})

	w := doAuthedRequest(t, router, http.MethodPost, "/api/records/lost_reports",
		`{"name":"Bruno","location":"Colombo","owner_id":999,"collection":"spoofed"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "rec-1", created.ID)
	assert.Equal(t, int64(42), created.OwnerID)
}

func TestListRecords(t *testing.T) {
	records := &mockRecordService{
		listRecordsFn: func(_ context.Context, ownerID int64, collection string) ([]models.Record, error) {
			assert.Equal(t, int64(42), ownerID)
			assert.Equal(t, models.CollectionVaccines, collection)
			return []models.Record{{ID: "rec-1"}, {ID: "rec-2"}}, nil
		},
	}
	router := newTestRouter(t, records, &mockBlobService{})

	w := doAuthedRequest(t, router, http.MethodGet, "/api/records/vaccines", "")

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestUpdateRecord(t *testing.T) {
	records := &mockRecordService{
		updateRecordFn: func(_ context.Context, ownerID int64, collection, recordID string, patch models.RecordPatch) (models.Record, error) {
			assert.Equal(t, int64(42), ownerID)
			assert.Equal(t, "rec-1", recordID)
			require.NotNil(t, patch.Status)
			assert.Equal(t, models.StatusDone, *patch.Status)
			return models.Record{ID: recordID, Status: *patch.Status}, nil
		},
	}
	router := newTestRouter(t, records, &mockBlobService{})

	w := doAuthedRequest(t, router, http.MethodPatch, "/api/records/vaccines/rec-1", `{"status":"done"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRecord(t *testing.T) {
	t.Run("existing record", func(t *testing.T) {
		records := &mockRecordService{
			deleteRecordFn: func(_ context.Context, _ int64, _, recordID string) error {
				assert.Equal(t, "rec-1", recordID)
				return nil
			},
		}
		router := newTestRouter(t, records, &mockBlobService{})

		w := doAuthedRequest(t, router, http.MethodDelete, "/api/records/vaccines/rec-1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing record", func(t *testing.T) {
		records := &mockRecordService{
			deleteRecordFn: func(_ context.Context, _ int64, _, _ string) error {
				return store.ErrRecordNotFound
			},
		}
		router := newTestRouter(t, records, &mockBlobService{})

		w := doAuthedRequest(t, router, http.MethodDelete, "/api/records/vaccines/gone", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// ─────────────────────────────────────────────
// query
// ─────────────────────────────────────────────

func TestQueryRecords(t *testing.T) {
	t.Run("passes lowercased tokens and default limit", func(t *testing.T) {
		records := &mockRecordService{
			searchFn: func(_ context.Context, query models.SearchQuery) ([]models.Record, error) {
				assert.Equal(t, models.CollectionLostReports, query.Collection)
				assert.Equal(t, "bruno", query.Name)
				assert.Equal(t, "colombo", query.Location)
				assert.Equal(t, defaultSearchLimit, query.Limit)
				return []models.Record{{ID: "rec-1"}}, nil
			},
		}
		router := newTestRouter(t, records, &mockBlobService{})

		w := doAuthedRequest(t, router, http.MethodGet,
			"/api/records/lost_reports/query?name_lc=bruno&location_lc=colombo", "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects bad limit", func(t *testing.T) {
		router := newTestRouter(t, &mockRecordService{}, &mockBlobService{})

		w := doAuthedRequest(t, router, http.MethodGet, "/api/records/lost_reports/query?limit=zero", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// ─────────────────────────────────────────────
// photos + auth middleware
// ─────────────────────────────────────────────

func TestPresignPhoto(t *testing.T) {
	blobs := &mockBlobService{
		presignUploadFn: func(_ context.Context) (models.PresignedUpload, error) {
			return models.PresignedUpload{Key: "photos/k", PutURL: "http://put", GetURL: "http://get"}, nil
		},
	}
	router := newTestRouter(t, &mockRecordService{}, blobs)

	w := doAuthedRequest(t, router, http.MethodPost, "/api/photos/presign", "")

	require.Equal(t, http.StatusOK, w.Code)

	var upload models.PresignedUpload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &upload))
	assert.Equal(t, "photos/k", upload.Key)
}

func TestResolvePhoto(t *testing.T) {
	blobs := &mockBlobService{
		presignDownloadFn: func(_ context.Context, key string) (string, error) {
			assert.Equal(t, "photos/k", key)
			return "http://get-fresh", nil
		},
	}
	router := newTestRouter(t, &mockRecordService{}, blobs)

	w := doAuthedRequest(t, router, http.MethodGet, "/api/photos/resolve?key=photos%2Fk", "")

	require.Equal(t, http.StatusOK, w.Code)

	var download models.PresignedDownload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &download))
	assert.Equal(t, "http://get-fresh", download.GetURL)
}

func TestAuthMiddleware(t *testing.T) {
	router := newTestRouter(t, &mockRecordService{}, &mockBlobService{})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "header without token", authHeader: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "empty token", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", authHeader: "Bearer expired", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/records/vaccines", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
