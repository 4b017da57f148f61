package adapter

import (
	"context"
	"fmt"

	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/utils"
	"github.com/hirunaj/pawtrail/models"
)

type httpInsightsAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPInsightsAdapter constructs an [InsightsAdapter] talking to the
// health-analysis API at adapterCfg.InsightsAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPInsightsAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (InsightsAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.InsightsAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid insights address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpInsightsAdapter{client: client, logger: logger}, nil
}

// AnalyzeLogs implements [InsightsAdapter]. It POSTs the entries to
// POST /api/health/analyze-logs and decodes the insights response. The call
// is made once per request with no retry; a failed analysis is reported to
// the caller untouched.
func (h *httpInsightsAdapter) AnalyzeLogs(ctx context.Context, entries []models.HealthEntry) (models.HealthInsights, error) {
	var insights models.HealthInsights

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AnalyzeLogsRequest{Logs: entries}).
		SetResult(&insights).
		Post("/api/health/analyze-logs")
	if err != nil {
		return models.HealthInsights{}, fmt.Errorf("analyze logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthInsights{}, err
	}

	return insights, nil
}
