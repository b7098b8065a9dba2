// Package realtime implements the profile change feed on Google Pub/Sub.
package realtime

import (
	"context"
	"log/slog"

	"refboard/config"
	"refboard/internal/domain/constants"
	"refboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopWatcher is a no-op implementation when the change feed is disabled.
// Watches succeed but never fire.
type noopWatcher struct {
	logger *slog.Logger
}

func (w *noopWatcher) WatchProfile(_ context.Context, profileID uuid.UUID, _ func(*service.ProfileChange)) (service.UnwatchFunc, error) {
	w.logger.Debug("[NoopChangeFeed] Change feed disabled, watch is inert",
		slog.String("profile_id", profileID.String()),
	)

	return func() {}, nil
}

func (w *noopWatcher) Close() error {
	return nil
}

// WatcherParams holds dependencies for ProfileWatcher, injected by Fx
type WatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewProfileWatcher creates a ProfileWatcher based on configuration
func NewProfileWatcher(params WatcherParams) (service.ProfileWatcher, error) {
	cfg := params.Config.ChangeFeed
	logger := params.Logger

	// If the change feed is not configured, return a no-op watcher
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.ChangeFeedProviderNone {
		logger.Info("Change feed not configured, using no-op watcher")

		return &noopWatcher{logger: logger}, nil
	}

	if cfg.Provider != constants.ChangeFeedProviderGoogle {
		return nil, errors.Errorf("unknown change feed provider: %s", cfg.Provider)
	}

	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}
	if cfg.SubscriptionID == "" {
		return nil, errors.New("subscription ID is required for google provider")
	}
	logger.Info("Using Google Pub/Sub change feed",
		slog.String("project_id", cfg.ProjectID),
		slog.String("subscription_id", cfg.SubscriptionID),
	)

	watcher, err := NewGoogleProfileWatcher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to close the watcher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing ProfileWatcher")

			return watcher.Close()
		},
	})

	return watcher, nil
}

// Module provides the change feed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProfileWatcher),
)
