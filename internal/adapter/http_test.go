package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

func newTestAdapter(t *testing.T, srv *httptest.Server) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "spaces only", address: "   "},
		{name: "scheme only", address: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestNormalizeBaseURL_AddsScheme(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

func TestRegister_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.AuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Login)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "fresh-token",
			User:  models.User{UserID: 1, Login: req.Login},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)

	resp, err := a.Register(t.Context(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.User.UserID)
	assert.Equal(t, "fresh-token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)

	_, err := a.Login(t.Context(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestCreateRecord_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/records/lost_reports", r.URL.Path)
		require.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var record models.Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&record))
		record.ID = "rec-1"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("session-token")

	created, err := a.CreateRecord(t.Context(), models.CollectionLostReports, models.Record{Name: "Bruno", Location: "Colombo"})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", created.ID)
	assert.Equal(t, "Bruno", created.Name)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "record was not found", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("session-token")

	err := a.DeleteRecord(t.Context(), models.CollectionVaccines, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRecords_DecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/records/vaccines", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Record{{ID: "rec-2"}, {ID: "rec-1"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("session-token")

	records, err := a.ListRecords(t.Context(), models.CollectionVaccines)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec-2", records[0].ID)
}

func TestQueryRecords_PassesTokensAndLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/records/found_reports/query", r.URL.Path)
		assert.Equal(t, "bruno", r.URL.Query().Get("name_lc"))
		assert.Equal(t, "colombo", r.URL.Query().Get("location_lc"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Record{{ID: "rec-1"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("session-token")

	records, err := a.QueryRecords(t.Context(), models.SearchQuery{
		Collection: models.CollectionFoundReports,
		Name:       "bruno",
		Location:   "colombo",
		Limit:      25,
	})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPresignPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/photos/presign", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.PresignedUpload{Key: "photos/k", PutURL: "http://put", GetURL: "http://get"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("session-token")

	upload, err := a.PresignPhoto(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "photos/k", upload.Key)
}
