// Package session keeps the server-side state of open dashboard browser
// sessions: one referral tree/table controller and one payment-history pager
// per session, plus the realtime watch on the network root.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"refboard/config"
	"refboard/internal/browser"
	domainerrors "refboard/internal/domain/errors"
	"refboard/internal/domain/service"
	"refboard/internal/infra/metrics"
	"refboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Notifier collects the user-facing failure messages raised by the browser
// core so the next poll can surface them as toasts.
type Notifier struct {
	mu       sync.Mutex
	messages []string
}

// Error implements browser.Notifier.
func (n *Notifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.messages = append(n.messages, message)
}

// Drain returns the pending messages and clears them.
func (n *Notifier) Drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	messages := n.messages
	n.messages = nil

	return messages
}

// Session is one open dashboard browser.
type Session struct {
	ID       uuid.UUID
	Tree     *browser.TreeTable
	History  *browser.HistoryPager
	notifier *Notifier

	cancel   context.CancelFunc
	unwatch  service.UnwatchFunc
	lastSeen time.Time
}

// Notifications returns and clears the pending toast messages.
func (s *Session) Notifications() []string {
	return s.notifier.Drain()
}

func (s *Session) close() {
	if s.unwatch != nil {
		s.unwatch()
	}
	s.Tree.Close()
	s.cancel()
}

// StoreParams defines the dependencies for the session store.
type StoreParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     *config.Config
	ReferralUC usecase.ReferralUsecase
	InvoiceUC  usecase.InvoiceUsecase
	Watcher    service.ProfileWatcher
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// Store owns every live session and reaps the ones that went idle.
type Store struct {
	cfg        *config.Config
	referralUC usecase.ReferralUsecase
	invoiceUC  usecase.InvoiceUsecase
	watcher    service.ProfileWatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	done     chan struct{}
}

// NewStore creates the session store and starts the idle sweeper.
func NewStore(params StoreParams) *Store {
	store := &Store{
		cfg:        params.Config,
		referralUC: params.ReferralUC,
		invoiceUC:  params.InvoiceUC,
		watcher:    params.Watcher,
		metrics:    params.Metrics,
		logger:     params.Logger,
		sessions:   make(map[uuid.UUID]*Session),
		done:       make(chan struct{}),
	}

	go store.sweepLoop()

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			store.Shutdown()

			return nil
		},
	})

	return store
}

// Create opens a new session and loads the network root into its tree. The
// root load must succeed for the session to exist.
func (s *Store) Create(ctx context.Context) (*Session, error) {
	sessionCtx, cancel := context.WithCancel(context.Background())
	notifier := &Notifier{}

	tree := browser.NewTreeTable(
		sessionCtx,
		s.referralUC,
		notifier,
		s.cfg.Referral.SearchDebounce,
		s.metrics,
		s.logger,
	)

	if err := tree.LoadRoot(ctx); err != nil {
		cancel()

		return nil, errors.Wrap(err, "failed to open browser session")
	}

	sess := &Session{
		ID:       uuid.New(),
		Tree:     tree,
		History:  browser.NewHistoryPager(s.invoiceUC, notifier, s.metrics, s.logger),
		notifier: notifier,
		cancel:   cancel,
		lastSeen: time.Now(),
	}

	// Realtime updates are best effort; the session works without them.
	rootID := tree.RootID()
	unwatch, err := s.watcher.WatchProfile(sessionCtx, rootID, func(change *service.ProfileChange) {
		tree.ApplyProfileChange(rootID, change)
	})
	if err != nil {
		s.logger.Warn("Root profile watch unavailable",
			slog.String("error", err.Error()),
		)
	} else {
		sess.unwatch = unwatch
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ActiveBrowserSessions.Inc()
	}

	return sess, nil
}

// Get returns a live session and refreshes its idle deadline.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domainerrors.ErrBrowserSessionNotFound
	}
	sess.lastSeen = time.Now()

	return sess, nil
}

// Delete disposes a session and tears down its realtime watch.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return domainerrors.ErrBrowserSessionNotFound
	}

	sess.close()
	if s.metrics != nil {
		s.metrics.ActiveBrowserSessions.Dec()
	}

	return nil
}

// Shutdown stops the sweeper and disposes every live session.
func (s *Store) Shutdown() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
		if s.metrics != nil {
			s.metrics.ActiveBrowserSessions.Dec()
		}
	}
}

func (s *Store) sweepLoop() {
	interval := s.cfg.Session.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.cfg.Session.IdleTTL {
			delete(s.sessions, id)
			expired = append(expired, sess)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.close()
		if s.metrics != nil {
			s.metrics.ActiveBrowserSessions.Dec()
		}
		s.logger.Info("Idle browser session reaped",
			slog.String("session_id", sess.ID.String()),
		)
	}
}
