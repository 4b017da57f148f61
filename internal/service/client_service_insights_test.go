package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/mock"
	"github.com/hirunaj/pawtrail/models"
)

func newInsightsServiceForTest(t *testing.T) (ClientInsightsService, *mock.MockInsightsAdapter, *mock.MockClientRecordService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	insightsAdapter := mock.NewMockInsightsAdapter(ctrl)
	records := mock.NewMockClientRecordService(ctrl)
	insights := NewClientInsightsService(insightsAdapter, records, logger.Nop())

	return insights, insightsAdapter, records
}

func TestClientInsightsService_Analyze(t *testing.T) {
	t.Run("submits the newest entries in the backend's shape", func(t *testing.T) {
		insights, insightsAdapter, records := newInsightsServiceForTest(t)

		records.EXPECT().
			ListRecords(gomock.Any(), models.CollectionHealthLogs).
			Return([]models.Record{
				{ID: "h1", Date: "2026-08-20", Food: "kibble", WaterML: 450, ActivityMin: 60},
				{ID: "h2", Date: "2026-08-19", Vomit: "once", Notes: "tired"},
			}, nil)
		insightsAdapter.EXPECT().
			AnalyzeLogs(gomock.Any(), []models.HealthEntry{
				{DateISO: "2026-08-20", Food: "kibble", Water: 450, Activity: 60},
				{DateISO: "2026-08-19", Vomit: "once", Notes: "tired"},
			}).
			Return(models.HealthInsights{Status: "watch", Score: 0.6, Reasons: []string{"vomiting"}}, nil)

		verdict, err := insights.Analyze(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "watch", verdict.Status)
	})

	t.Run("caps the window at the newest seven entries", func(t *testing.T) {
		insights, insightsAdapter, records := newInsightsServiceForTest(t)

		logs := make([]models.Record, 10)
		for i := range logs {
			logs[i] = models.Record{ID: string(rune('a' + i)), Date: "2026-08-20"}
		}
		records.EXPECT().
			ListRecords(gomock.Any(), models.CollectionHealthLogs).
			Return(logs, nil)
		insightsAdapter.EXPECT().
			AnalyzeLogs(gomock.Any(), gomock.Len(analyzeWindow)).
			Return(models.HealthInsights{Status: "good"}, nil)

		_, err := insights.Analyze(t.Context())
		require.NoError(t, err)
	})

	t.Run("returns ErrNothingToAnalyze on empty logs", func(t *testing.T) {
		insights, _, records := newInsightsServiceForTest(t)

		records.EXPECT().
			ListRecords(gomock.Any(), models.CollectionHealthLogs).
			Return(nil, nil)

		_, err := insights.Analyze(t.Context())
		assert.ErrorIs(t, err, ErrNothingToAnalyze)
	})

	t.Run("propagates backend failure", func(t *testing.T) {
		insights, insightsAdapter, records := newInsightsServiceForTest(t)

		records.EXPECT().
			ListRecords(gomock.Any(), models.CollectionHealthLogs).
			Return([]models.Record{{ID: "h1", Date: "2026-08-20"}}, nil)
		insightsAdapter.EXPECT().
			AnalyzeLogs(gomock.Any(), gomock.Any()).
			Return(models.HealthInsights{}, errors.New("service unavailable"))

		_, err := insights.Analyze(t.Context())
		assert.Error(t, err)
	})
}
