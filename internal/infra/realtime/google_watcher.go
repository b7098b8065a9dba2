package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"refboard/config"
	"refboard/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// googleProfileWatcher implements ProfileWatcher on a Google Pub/Sub subscription
// carrying profile change events. A single Receive loop fans messages out to the
// watches registered for the profile named in the message attributes.
type googleProfileWatcher struct {
	client     *pubsub.Client
	subscriber *pubsub.Subscriber
	logger     *slog.Logger

	cancelReceive context.CancelFunc

	mu       sync.Mutex
	handlers map[uuid.UUID]map[int64]func(*service.ProfileChange)
	nextID   int64
}

// NewGoogleProfileWatcher creates a new Google Pub/Sub backed profile watcher
// and starts its receive loop.
func NewGoogleProfileWatcher(ctx context.Context, cfg *config.ChangeFeedConfig, logger *slog.Logger) (service.ProfileWatcher, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	receiveCtx, cancel := context.WithCancel(context.Background())
	watcher := &googleProfileWatcher{
		client:        client,
		subscriber:    client.Subscriber(cfg.SubscriptionID),
		logger:        logger,
		cancelReceive: cancel,
		handlers:      make(map[uuid.UUID]map[int64]func(*service.ProfileChange)),
	}

	go func() {
		if err := watcher.subscriber.Receive(receiveCtx, watcher.handleMessage); err != nil && receiveCtx.Err() == nil {
			logger.Error("[GoogleChangeFeed] Receive loop terminated",
				slog.String("error", err.Error()),
			)
		}
	}()

	logger.Info("Google Pub/Sub change feed initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("subscription_id", cfg.SubscriptionID),
	)

	return watcher, nil
}

// WatchProfile registers a handler for updates to the given profile.
func (w *googleProfileWatcher) WatchProfile(_ context.Context, profileID uuid.UUID, handler func(*service.ProfileChange)) (service.UnwatchFunc, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.handlers[profileID] == nil {
		w.handlers[profileID] = make(map[int64]func(*service.ProfileChange))
	}
	w.nextID++
	id := w.nextID
	w.handlers[profileID][id] = handler

	var once sync.Once
	unwatch := func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()

			delete(w.handlers[profileID], id)
			if len(w.handlers[profileID]) == 0 {
				delete(w.handlers, profileID)
			}
		})
	}

	return unwatch, nil
}

// handleMessage dispatches one feed message to the watches of its profile.
// Messages are always acked; an unparseable event is dropped with a warning
// because redelivery cannot fix it.
func (w *googleProfileWatcher) handleMessage(_ context.Context, msg *pubsub.Message) {
	defer msg.Ack()

	rawID := msg.Attributes["profile_id"]
	profileID, err := uuid.Parse(rawID)
	if err != nil {
		w.logger.Warn("[GoogleChangeFeed] Dropping event without a valid profile_id attribute",
			slog.String("profile_id", rawID),
		)

		return
	}

	var change service.ProfileChange
	if err := json.Unmarshal(msg.Data, &change); err != nil {
		w.logger.Warn("[GoogleChangeFeed] Dropping unreadable event",
			slog.String("profile_id", rawID),
			slog.String("error", err.Error()),
		)

		return
	}
	change.ProfileID = profileID.String()

	w.mu.Lock()
	registered := make([]func(*service.ProfileChange), 0, len(w.handlers[profileID]))
	for _, handler := range w.handlers[profileID] {
		registered = append(registered, handler)
	}
	w.mu.Unlock()

	for _, handler := range registered {
		handler(&change)
	}
}

// Close stops the receive loop and releases Pub/Sub client resources.
func (w *googleProfileWatcher) Close() error {
	w.cancelReceive()

	if w.client != nil {
		return errors.WithStack(w.client.Close())
	}

	return nil
}
