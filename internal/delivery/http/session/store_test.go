package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"refboard/config"
	"refboard/internal/domain/entity"
	domainerrors "refboard/internal/domain/errors"
	"refboard/internal/domain/service"
	mockUC "refboard/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStoreTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Referral.RootUsername = "usuario_master"
	cfg.Referral.SearchLimit = 50
	cfg.Referral.SearchDebounce = 30 * time.Millisecond
	cfg.History.PageSize = 10
	cfg.Session.IdleTTL = 30 * time.Minute
	cfg.Session.SweepInterval = time.Minute

	return cfg
}

// stubWatcher records watch and unwatch calls.
type stubWatcher struct {
	mu        sync.Mutex
	watched   []uuid.UUID
	unwatched int
	err       error
}

func (w *stubWatcher) WatchProfile(_ context.Context, profileID uuid.UUID, _ func(*service.ProfileChange)) (service.UnwatchFunc, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return nil, w.err
	}
	w.watched = append(w.watched, profileID)

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.unwatched++
	}, nil
}

func (w *stubWatcher) Close() error { return nil }

func (w *stubWatcher) UnwatchCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.unwatched
}

func newTestStore(t *testing.T, referralUC *mockUC.MockReferralUsecase, invoiceUC *mockUC.MockInvoiceUsecase, watcher service.ProfileWatcher) *Store {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	store := NewStore(StoreParams{
		Lifecycle:  lc,
		Config:     newStoreTestConfig(),
		ReferralUC: referralUC,
		InvoiceUC:  invoiceUC,
		Watcher:    watcher,
		Logger:     newTestLogger(),
	})
	t.Cleanup(store.Shutdown)

	return store
}

func TestStore_CreateLoadsRootAndWatchesIt(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	watcher := &stubWatcher{}

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master", DirectReferralsCount: 3}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	store := newTestStore(t, referralUC, invoiceUC, watcher)

	sess, err := store.Create(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)

	rows := sess.Tree.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, root.ID, rows[0].Profile.ID)
	assert.Equal(t, []uuid.UUID{root.ID}, watcher.watched)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestStore_CreateFailsWhenRootLoadFails(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)

	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(nil, errors.New("db down")).Once()

	store := newTestStore(t, referralUC, invoiceUC, &stubWatcher{})

	sess, err := store.Create(context.Background())
	require.Error(t, err)
	assert.Nil(t, sess)
}

func TestStore_CreateSurvivesWatcherFailure(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	watcher := &stubWatcher{err: errors.New("feed unavailable")}

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	store := newTestStore(t, referralUC, invoiceUC, watcher)

	sess, err := store.Create(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
}

func TestStore_DeleteTearsDownSession(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	watcher := &stubWatcher{}

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	store := newTestStore(t, referralUC, invoiceUC, watcher)

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.Delete(sess.ID))
	assert.Equal(t, 1, watcher.UnwatchCount())

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBrowserSessionNotFound)

	assert.ErrorIs(t, store.Delete(sess.ID), domainerrors.ErrBrowserSessionNotFound)
}

func TestStore_GetUnknownSession(t *testing.T) {
	store := newTestStore(t, mockUC.NewMockReferralUsecase(t), mockUC.NewMockInvoiceUsecase(t), &stubWatcher{})

	_, err := store.Get(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrBrowserSessionNotFound)
}

func TestStore_SweepReapsIdleSessions(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	watcher := &stubWatcher{}

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	store := newTestStore(t, referralUC, invoiceUC, watcher)

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	// Not idle long enough yet.
	store.sweep(time.Now())
	_, err = store.Get(sess.ID)
	require.NoError(t, err)

	store.sweep(time.Now().Add(store.cfg.Session.IdleTTL + time.Second))
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBrowserSessionNotFound)
	assert.Equal(t, 1, watcher.UnwatchCount())
}

func TestNotifier_DrainClearsMessages(t *testing.T) {
	n := &Notifier{}
	n.Error("primeira falha")
	n.Error("segunda falha")

	assert.Equal(t, []string{"primeira falha", "segunda falha"}, n.Drain())
	assert.Empty(t, n.Drain())
}
