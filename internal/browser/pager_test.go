package browser

import (
	"context"
	"testing"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	mockUC "refboard/internal/mocks/usecase"
	"refboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoicePage(page, n int, hasMore bool) *usecase.InvoicePage {
	invoices := make([]*entity.Invoice, 0, n)
	for i := 0; i < n; i++ {
		invoices = append(invoices, &entity.Invoice{
			ID:     uuid.New(),
			Status: entity.InvoiceStatusPaid,
		})
	}

	return &usecase.InvoicePage{
		Invoices: invoices,
		Page:     page,
		HasMore:  hasMore,
	}
}

func TestHistoryPager_LoadFirstPage(t *testing.T) {
	uc := mockUC.NewMockInvoiceUsecase(t)
	pager := NewHistoryPager(uc, nil, nil, newTestLogger())

	ctx := context.Background()
	query := usecase.InvoiceQuery{Sort: repository.DateSortDesc}

	uc.EXPECT().
		GetInvoicePage(ctx, 0, query).
		Return(invoicePage(0, 10, true), nil)

	require.NoError(t, pager.Load(ctx))
	assert.Len(t, pager.Invoices(), 10)
	assert.Equal(t, 0, pager.Page())
	assert.True(t, pager.HasMore())
}

func TestHistoryPager_ScrollAppendsNextPage(t *testing.T) {
	uc := mockUC.NewMockInvoiceUsecase(t)
	pager := NewHistoryPager(uc, nil, nil, newTestLogger())

	ctx := context.Background()
	query := usecase.InvoiceQuery{Sort: repository.DateSortDesc}

	uc.EXPECT().
		GetInvoicePage(ctx, 0, query).
		Return(invoicePage(0, 10, true), nil).
		Once()
	uc.EXPECT().
		GetInvoicePage(ctx, 1, query).
		Return(invoicePage(1, 4, false), nil).
		Once()

	require.NoError(t, pager.Load(ctx))
	require.NoError(t, pager.OnLastRowVisible(ctx))

	assert.Len(t, pager.Invoices(), 14)
	assert.Equal(t, 1, pager.Page())
	assert.False(t, pager.HasMore())

	// History is exhausted, further scroll triggers are no-ops.
	require.NoError(t, pager.OnLastRowVisible(ctx))
	assert.Len(t, pager.Invoices(), 14)
}

func TestHistoryPager_ScrollBeforeLoadIsNoop(t *testing.T) {
	uc := mockUC.NewMockInvoiceUsecase(t)
	pager := NewHistoryPager(uc, nil, nil, newTestLogger())

	// No expectations: a fetch here would fail the test.
	require.NoError(t, pager.OnLastRowVisible(context.Background()))
	assert.Empty(t, pager.Invoices())
}

func TestHistoryPager_FailedPageLeavesCursorUntouched(t *testing.T) {
	uc := mockUC.NewMockInvoiceUsecase(t)
	notifier := &captureNotifier{}
	pager := NewHistoryPager(uc, notifier, nil, newTestLogger())

	ctx := context.Background()
	query := usecase.InvoiceQuery{Sort: repository.DateSortDesc}

	uc.EXPECT().
		GetInvoicePage(ctx, 0, query).
		Return(invoicePage(0, 10, true), nil).
		Once()
	uc.EXPECT().
		GetInvoicePage(ctx, 1, query).
		Return(nil, errors.New("db error")).
		Once()
	uc.EXPECT().
		GetInvoicePage(ctx, 1, query).
		Return(invoicePage(1, 2, false), nil).
		Once()

	require.NoError(t, pager.Load(ctx))

	// The failed fetch keeps page and hasMore as they were.
	err := pager.OnLastRowVisible(ctx)
	assert.Error(t, err)
	assert.Equal(t, 0, pager.Page())
	assert.True(t, pager.HasMore())
	assert.Len(t, pager.Invoices(), 10)
	assert.Contains(t, notifier.Messages(), "Não foi possível carregar o histórico de pagamentos")

	// The next scroll retries the same page.
	require.NoError(t, pager.OnLastRowVisible(ctx))
	assert.Equal(t, 1, pager.Page())
	assert.Len(t, pager.Invoices(), 12)
}

func TestHistoryPager_StatusFilterReloadsFromStart(t *testing.T) {
	uc := mockUC.NewMockInvoiceUsecase(t)
	pager := NewHistoryPager(uc, nil, nil, newTestLogger())

	ctx := context.Background()
	overdue := entity.InvoiceStatusOverdue

	uc.EXPECT().
		GetInvoicePage(ctx, 0, usecase.InvoiceQuery{Sort: repository.DateSortDesc}).
		Return(invoicePage(0, 10, true), nil).
		Once()
	uc.EXPECT().
		GetInvoicePage(ctx, 0, usecase.InvoiceQuery{Status: &overdue, Sort: repository.DateSortDesc}).
		Return(invoicePage(0, 2, false), nil).
		Once()

	require.NoError(t, pager.Load(ctx))
	require.NoError(t, pager.SetStatusFilter(ctx, &overdue))

	// Page zero replaces the accumulated rows instead of appending.
	assert.Len(t, pager.Invoices(), 2)
	assert.Equal(t, 0, pager.Page())
	assert.False(t, pager.HasMore())
}

func TestHistoryPager_FilterChangeSupersedesInFlightFetch(t *testing.T) {
	uc := mockUC.NewMockInvoiceUsecase(t)
	pager := NewHistoryPager(uc, nil, nil, newTestLogger())

	ctx := context.Background()
	overdue := entity.InvoiceStatusOverdue
	unfiltered := usecase.InvoiceQuery{Sort: repository.DateSortDesc}
	filtered := usecase.InvoiceQuery{Status: &overdue, Sort: repository.DateSortDesc}

	staleStarted := make(chan struct{})
	release := make(chan struct{})

	uc.EXPECT().
		GetInvoicePage(ctx, 0, unfiltered).
		RunAndReturn(func(context.Context, int, usecase.InvoiceQuery) (*usecase.InvoicePage, error) {
			close(staleStarted)
			<-release

			return invoicePage(0, 10, true), nil
		}).
		Once()
	uc.EXPECT().
		GetInvoicePage(ctx, 0, filtered).
		Return(invoicePage(0, 2, false), nil).
		Once()

	done := make(chan error, 1)
	go func() { done <- pager.Load(ctx) }()
	<-staleStarted

	// The filter change does not wait for the outstanding fetch; it issues
	// its own page-zero reload and supersedes it.
	require.NoError(t, pager.SetStatusFilter(ctx, &overdue))
	assert.Len(t, pager.Invoices(), 2)
	assert.False(t, pager.HasMore())

	close(release)
	require.NoError(t, <-done)

	// The superseded unfiltered rows never land.
	assert.Len(t, pager.Invoices(), 2)
	assert.Equal(t, 0, pager.Page())
	assert.False(t, pager.HasMore())
	assert.False(t, pager.Loading())
}

func TestHistoryPager_ScrollIgnoredWhileFetchInFlight(t *testing.T) {
	uc := mockUC.NewMockInvoiceUsecase(t)
	pager := NewHistoryPager(uc, nil, nil, newTestLogger())

	ctx := context.Background()
	query := usecase.InvoiceQuery{Sort: repository.DateSortDesc}

	started := make(chan struct{})
	release := make(chan struct{})

	uc.EXPECT().
		GetInvoicePage(ctx, 0, query).
		Return(invoicePage(0, 10, true), nil).
		Once()
	uc.EXPECT().
		GetInvoicePage(ctx, 1, query).
		RunAndReturn(func(context.Context, int, usecase.InvoiceQuery) (*usecase.InvoicePage, error) {
			close(started)
			<-release

			return invoicePage(1, 4, false), nil
		}).
		Once()

	require.NoError(t, pager.Load(ctx))

	done := make(chan error, 1)
	go func() { done <- pager.OnLastRowVisible(ctx) }()
	<-started

	// A second trigger while the page fetch is outstanding must not fetch
	// again; the .Once() above would fail on a duplicate request.
	require.NoError(t, pager.OnLastRowVisible(ctx))

	close(release)
	require.NoError(t, <-done)

	assert.Len(t, pager.Invoices(), 14)
	assert.Equal(t, 1, pager.Page())
	assert.False(t, pager.HasMore())
}

func TestHistoryPager_SortChangeReloadsFromStart(t *testing.T) {
	uc := mockUC.NewMockInvoiceUsecase(t)
	pager := NewHistoryPager(uc, nil, nil, newTestLogger())

	ctx := context.Background()

	uc.EXPECT().
		GetInvoicePage(ctx, 0, usecase.InvoiceQuery{Sort: repository.DateSortDesc}).
		Return(invoicePage(0, 10, true), nil).
		Once()
	uc.EXPECT().
		GetInvoicePage(ctx, 0, usecase.InvoiceQuery{Sort: repository.DateSortAsc}).
		Return(invoicePage(0, 10, true), nil).
		Once()

	require.NoError(t, pager.Load(ctx))
	require.NoError(t, pager.SetSort(ctx, repository.DateSortAsc))

	assert.Len(t, pager.Invoices(), 10)
	assert.Equal(t, 0, pager.Page())
}
