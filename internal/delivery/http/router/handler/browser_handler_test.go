package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"refboard/config"
	"refboard/internal/delivery/http/session"
	"refboard/internal/domain/entity"
	"refboard/internal/domain/service"
	mockUC "refboard/internal/mocks/usecase"
	"refboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// watcherStub satisfies the profile watcher without a real change feed.
type watcherStub struct{}

func (watcherStub) WatchProfile(context.Context, uuid.UUID, func(*service.ProfileChange)) (service.UnwatchFunc, error) {
	return func() {}, nil
}

func (watcherStub) Close() error { return nil }

func newBrowserTestStore(t *testing.T, referralUC *mockUC.MockReferralUsecase, invoiceUC *mockUC.MockInvoiceUsecase) *session.Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Referral.SearchDebounce = 30 * time.Millisecond
	cfg.Session.IdleTTL = 30 * time.Minute
	cfg.Session.SweepInterval = time.Minute

	store := session.NewStore(session.StoreParams{
		Lifecycle:  fxtest.NewLifecycle(t),
		Config:     cfg,
		ReferralUC: referralUC,
		InvoiceUC:  invoiceUC,
		Watcher:    watcherStub{},
		Logger:     newTestLogger(),
	})
	t.Cleanup(store.Shutdown)

	return store
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBrowserHandler_CreateSession(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master", DirectReferralsCount: 2}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	handler := &BrowserHandler{
		store:  newBrowserTestStore(t, referralUC, invoiceUC),
		logger: newTestLogger(),
	}

	c, rec := newTestContext(http.MethodPost, "/browser/sessions")

	require.NoError(t, handler.CreateSession(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_id")
	assert.Contains(t, rec.Body.String(), "usuario_master")
	assert.Contains(t, rec.Body.String(), `"mode":"tree"`)
}

func TestBrowserHandler_GetRows_UnknownSession(t *testing.T) {
	handler := &BrowserHandler{
		store:  newBrowserTestStore(t, mockUC.NewMockReferralUsecase(t), mockUC.NewMockInvoiceUsecase(t)),
		logger: newTestLogger(),
	}

	c, rec := newTestContext(http.MethodGet, "/browser/sessions/x/rows")
	c.SetParamNames("sessionId")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, handler.GetRows(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "BROWSER_SESSION_NOT_FOUND")
}

func TestBrowserHandler_ToggleUnknownNode(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	store := newBrowserTestStore(t, referralUC, invoiceUC)

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	handler := &BrowserHandler{store: store, logger: newTestLogger()}

	c, rec := newTestContext(http.MethodPost, "/browser/sessions/x/toggle/y")
	c.SetParamNames("sessionId", "nodeId")
	c.SetParamValues(sess.ID.String(), uuid.NewString())

	require.NoError(t, handler.ToggleNode(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBrowserHandler_SetFilters_RejectsUnknownWhatsapp(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	store := newBrowserTestStore(t, referralUC, invoiceUC)

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	handler := &BrowserHandler{store: store, logger: newTestLogger()}

	c, rec := newJSONContext(http.MethodPut, "/browser/sessions/x/filters", `{"whatsapp":"maybe"}`)
	c.SetParamNames("sessionId")
	c.SetParamValues(sess.ID.String())

	require.NoError(t, handler.SetFilters(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBrowserHandler_HistoryLoadAndScroll(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	store := newBrowserTestStore(t, referralUC, invoiceUC)

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	invoiceUC.EXPECT().
		GetInvoicePage(mock.Anything, 0, mock.Anything).
		Return(&usecase.InvoicePage{
			Invoices: []*entity.Invoice{{ID: uuid.New(), Description: "Assinatura via PIX", Status: entity.InvoiceStatusPaid}},
			Page:     0,
			HasMore:  true,
		}, nil).
		Once()
	invoiceUC.EXPECT().
		GetInvoicePage(mock.Anything, 1, mock.Anything).
		Return(&usecase.InvoicePage{
			Invoices: []*entity.Invoice{{ID: uuid.New(), Description: "Assinatura cartão", Status: entity.InvoiceStatusPaid}},
			Page:     1,
			HasMore:  false,
		}, nil).
		Once()

	handler := &BrowserHandler{store: store, logger: newTestLogger()}

	c, rec := newTestContext(http.MethodPost, "/browser/sessions/x/history/load")
	c.SetParamNames("sessionId")
	c.SetParamValues(sess.ID.String())
	require.NoError(t, handler.LoadHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"has_more":true`)
	assert.Contains(t, rec.Body.String(), `"payment_channel":"pix"`)

	c, rec = newTestContext(http.MethodPost, "/browser/sessions/x/history/scroll")
	c.SetParamNames("sessionId")
	c.SetParamValues(sess.ID.String())
	require.NoError(t, handler.ScrollHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":1`)
	assert.Contains(t, rec.Body.String(), `"has_more":false`)
}

func TestBrowserHandler_SetHistoryFilters_RejectsUnknownStatus(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	store := newBrowserTestStore(t, referralUC, invoiceUC)

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	handler := &BrowserHandler{store: store, logger: newTestLogger()}

	c, rec := newJSONContext(http.MethodPut, "/browser/sessions/x/history/filters", `{"status":"refunded"}`)
	c.SetParamNames("sessionId")
	c.SetParamValues(sess.ID.String())

	require.NoError(t, handler.SetHistoryFilters(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBrowserHandler_DeleteSession(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	invoiceUC := mockUC.NewMockInvoiceUsecase(t)
	store := newBrowserTestStore(t, referralUC, invoiceUC)

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	handler := &BrowserHandler{store: store, logger: newTestLogger()}

	c, rec := newTestContext(http.MethodDelete, "/browser/sessions/x")
	c.SetParamNames("sessionId")
	c.SetParamValues(sess.ID.String())
	require.NoError(t, handler.DeleteSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/browser/sessions/x/rows")
	c.SetParamNames("sessionId")
	c.SetParamValues(sess.ID.String())
	require.NoError(t, handler.GetRows(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
