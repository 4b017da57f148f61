package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/utils"
	"github.com/hirunaj/pawtrail/models"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token from the response is
// stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, login, password string) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Login: login, Password: password}).
		SetResult(&authResp).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token from the response is
// stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, login, password string) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Login: login, Password: password}).
		SetResult(&authResp).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

// CreateRecord implements [ServerAdapter]. It POSTs the record to
// POST /api/records/{collection}. Requires a valid bearer token.
func (h *httpServerAdapter) CreateRecord(ctx context.Context, collection string, record models.Record) (models.Record, error) {
	var created models.Record

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&created).
		Post("/api/records/" + collection)
	if err != nil {
		return models.Record{}, fmt.Errorf("create record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return created, nil
}

// UpdateRecord implements [ServerAdapter]. It PATCHes the partial update to
// PATCH /api/records/{collection}/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateRecord(ctx context.Context, collection, recordID string, patch models.RecordPatch) (models.Record, error) {
	var updated models.Record

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Patch("/api/records/" + collection + "/" + recordID)
	if err != nil {
		return models.Record{}, fmt.Errorf("update record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return updated, nil
}

// DeleteRecord implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/records/{collection}/{id}. Returns [ErrNotFound] (wrapped) on
// HTTP 404. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, collection, recordID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/records/" + collection + "/" + recordID)
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListRecords implements [ServerAdapter]. It GETs the caller's records from
// GET /api/records/{collection}. Requires a valid bearer token.
func (h *httpServerAdapter) ListRecords(ctx context.Context, collection string) ([]models.Record, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/records/" + collection)
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.Record
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return records, nil
}

// QueryRecords implements [ServerAdapter]. It GETs one search variant from
// GET /api/records/{collection}/query. Tokens are passed as-is: callers
// lowercase them before building the query. Requires a valid bearer token.
func (h *httpServerAdapter) QueryRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error) {
	req := h.authedRequest(ctx)
	if query.Name != "" {
		req.SetQueryParam("name_lc", query.Name)
	}
	if query.Location != "" {
		req.SetQueryParam("location_lc", query.Location)
	}
	if query.Limit > 0 {
		req.SetQueryParam("limit", fmt.Sprint(query.Limit))
	}

	resp, err := req.Get("/api/records/" + query.Collection + "/query")
	if err != nil {
		return nil, fmt.Errorf("query records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.Record
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}

	return records, nil
}

// PresignPhoto implements [ServerAdapter]. It POSTs to
// POST /api/photos/presign and returns the upload slot. Requires a valid
// bearer token.
func (h *httpServerAdapter) PresignPhoto(ctx context.Context) (models.PresignedUpload, error) {
	var upload models.PresignedUpload

	resp, err := h.authedRequest(ctx).
		SetResult(&upload).
		Post("/api/photos/presign")
	if err != nil {
		return models.PresignedUpload{}, fmt.Errorf("presign photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PresignedUpload{}, err
	}

	return upload, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
