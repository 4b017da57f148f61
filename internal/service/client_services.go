package service

import (
	"context"

	"github.com/hirunaj/pawtrail/internal/adapter"
	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/mirror"
	"github.com/hirunaj/pawtrail/internal/store"
	"github.com/hirunaj/pawtrail/internal/validators"
	"github.com/hirunaj/pawtrail/models"
)

// ClientServices aggregates the client service layer. Which record backend
// sits behind RecordService depends on configuration: with a record-store
// address the client runs remote mode, without one it runs the local-only
// fallback and every network-bound service reports [ErrRemoteDisabled].
type ClientServices struct {
	SessionService      ClientSessionService
	RecordService       ClientRecordService
	SubscriptionService ClientSubscriptionService
	SearchService       ClientSearchService
	InsightsService     ClientInsightsService
}

// NewClientServices wires the client services. serverAdapter may be nil in
// local-only mode; insightsAdapter may be nil when no insights address is
// configured.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, insightsAdapter adapter.InsightsAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	services := &ClientServices{}

	validator := validators.NewRecordValidator()

	if cfg.Remote() {
		session := NewClientSessionService(serverAdapter, storages.KVSlot, logger)
		services.SessionService = session
		services.RecordService = NewRemoteRecordService(serverAdapter, session, validator, logger)
		services.SubscriptionService = NewClientSubscriptionService(serverAdapter, mirror.New(), logger)
		services.SearchService = NewClientSearchService(serverAdapter, logger)
	} else {
		services.SessionService = disabledSessionService{}
		services.RecordService = NewFallbackRecordService(storages.RecordRepository, validator, logger)
		services.SubscriptionService = disabledSubscriptionService{}
		services.SearchService = disabledSearchService{}
	}

	if insightsAdapter != nil {
		services.InsightsService = NewClientInsightsService(insightsAdapter, services.RecordService, logger)
	} else {
		services.InsightsService = disabledInsightsService{}
	}

	return services
}

// The disabled implementations stand in for network-bound services when the
// client has no remote address configured. Reads return empty views; calls
// that would need the network return [ErrRemoteDisabled].

type disabledSessionService struct{}

func (disabledSessionService) SignUp(context.Context, string, string) (models.User, error) {
	return models.User{}, ErrRemoteDisabled
}

func (disabledSessionService) SignIn(context.Context, string, string) (models.User, error) {
	return models.User{}, ErrRemoteDisabled
}

func (disabledSessionService) RestoreSession(context.Context) (models.User, error) {
	return models.User{}, ErrRemoteDisabled
}

func (disabledSessionService) SignOut(context.Context) error { return ErrRemoteDisabled }

func (disabledSessionService) CurrentUser() (models.User, bool) { return models.User{}, false }

type disabledSubscriptionService struct{}

func (disabledSubscriptionService) Subscribe(context.Context, ...string) error {
	return ErrRemoteDisabled
}

func (disabledSubscriptionService) Teardown() {}

func (disabledSubscriptionService) Records(string) []models.Record { return []models.Record{} }

func (disabledSubscriptionService) LostAndFound() []models.Record { return []models.Record{} }

type disabledSearchService struct{}

func (disabledSearchService) Search(context.Context, string, string, string) ([]models.Record, error) {
	return nil, ErrRemoteDisabled
}

func (disabledSearchService) SearchReports(context.Context, string, string) ([]models.Record, error) {
	return nil, ErrRemoteDisabled
}

type disabledInsightsService struct{}

func (disabledInsightsService) Analyze(context.Context) (models.HealthInsights, error) {
	return models.HealthInsights{}, ErrRemoteDisabled
}
