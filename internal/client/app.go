// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

// Package client wires the client service layer into a runnable sync engine:
// restore the stored session, open one live subscription per collection, and
// keep the mirror warm until the context ends.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/service"
	"github.com/hirunaj/pawtrail/models"
)

// App is the headless client engine. A UI embeds it and talks to Services
// directly; Run only manages the session and the live subscriptions.
type App struct {
	Services *service.ClientServices

	logger *logger.Logger
}

// NewApp constructs the client engine over an already-wired service layer.
func NewApp(services *service.ClientServices, logger *logger.Logger) *App {
	logger.Info().Msg("client app created")

	return &App{
		Services: services,
		logger:   logger,
	}
}

// Run restores the stored session, subscribes to every collection, and blocks
// until ctx is cancelled. Without a stored session (or in local-only mode) it
// idles: records are still served, but nothing goes live until SignIn.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.GetChildLogger()

	if _, err := a.Services.SessionService.RestoreSession(ctx); err != nil {
		if errors.Is(err, service.ErrNoStoredSession) || errors.Is(err, service.ErrRemoteDisabled) {
			log.Info().Err(err).Msg("running without a live session")
			<-ctx.Done()
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	if err := a.GoLive(ctx); err != nil {
		return err
	}
	defer a.Services.SubscriptionService.Teardown()

	log.Info().Msg("client app is live")
	<-ctx.Done()

	return nil
}

// GoLive opens one subscription per collection, tearing any previous set
// down first. Called from Run and again after an interactive sign-in.
func (a *App) GoLive(ctx context.Context) error {
	if err := a.Services.SubscriptionService.Subscribe(ctx, models.Collections...); err != nil {
		return fmt.Errorf("go live: %w", err)
	}
	return nil
}

// SignOut tears live subscriptions down before dropping the session, so no
// pump keeps writing into the mirror after the identity is gone.
func (a *App) SignOut(ctx context.Context) error {
	a.Services.SubscriptionService.Teardown()

	if err := a.Services.SessionService.SignOut(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}

	return nil
}
