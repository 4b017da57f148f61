package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/hirunaj/pawtrail/internal/adapter"
	"github.com/hirunaj/pawtrail/internal/client"
	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/service"
	"github.com/hirunaj/pawtrail/internal/store"
	"github.com/hirunaj/pawtrail/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// appWorker runs the sync engine until the process is told to stop.
type appWorker struct {
	ctx    context.Context
	app    *client.App
	logger *logger.Logger
}

func (w *appWorker) Run() {
	if err := w.app.Run(w.ctx); err != nil {
		w.logger.Error().Err(err).Msg("client run error")
	}
}

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("pawtrail-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var serverAdapter adapter.ServerAdapter
	if cfg.Remote() {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create server adapter")
		}
	}

	var insightsAdapter adapter.InsightsAdapter
	if cfg.Adapter.InsightsAddress != "" {
		insightsAdapter, err = adapter.NewHTTPInsightsAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create insights adapter")
		}
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, insightsAdapter, cfg, log)

	app := client.NewApp(services, log)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	workers.NewWorkers(&appWorker{ctx: ctx, app: app, logger: log}).Run()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
