package service

import (
	"context"
	"fmt"

	"github.com/hirunaj/pawtrail/internal/adapter"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

// analyzeWindow is how many of the newest health log entries are submitted
// for analysis.
const analyzeWindow = 7

type clientInsightsService struct {
	adapter adapter.InsightsAdapter
	records ClientRecordService
	logger  *logger.Logger
}

// NewClientInsightsService constructs a [ClientInsightsService] reading
// health logs through the given record service, so it works the same in
// remote and local-only mode.
func NewClientInsightsService(insightsAdapter adapter.InsightsAdapter, records ClientRecordService, logger *logger.Logger) ClientInsightsService {
	return &clientInsightsService{
		adapter: insightsAdapter,
		records: records,
		logger:  logger,
	}
}

// Analyze implements [ClientInsightsService].
func (s *clientInsightsService) Analyze(ctx context.Context) (models.HealthInsights, error) {
	records, err := s.records.ListRecords(ctx, models.CollectionHealthLogs)
	if err != nil {
		return models.HealthInsights{}, fmt.Errorf("load health logs: %w", err)
	}
	if len(records) == 0 {
		return models.HealthInsights{}, ErrNothingToAnalyze
	}

	if len(records) > analyzeWindow {
		records = records[:analyzeWindow]
	}

	entries := make([]models.HealthEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, models.HealthEntry{
			DateISO:  record.Date,
			Food:     record.Food,
			Water:    record.WaterML,
			Vomit:    record.Vomit,
			Diarrhea: record.Diarrhea,
			Activity: record.ActivityMin,
			Notes:    record.Notes,
		})
	}

	insights, err := s.adapter.AnalyzeLogs(ctx, entries)
	if err != nil {
		return models.HealthInsights{}, fmt.Errorf("analyze health logs: %w", err)
	}

	return insights, nil
}
