package browser

import (
	"context"
	"log/slog"
	"sync"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	"refboard/internal/infra/metrics"
	"refboard/internal/usecase"

	"github.com/pkg/errors"
)

const msgLoadHistoryFailed = "Não foi possível carregar o histórico de pagamentos"

// HistoryPager drives the infinite-scroll payment history. Page zero replaces
// the accumulated rows; every later page appends. A page is committed only
// when its fetch succeeds, so a failed fetch leaves the cursor where it was
// and the next scroll retries the same page.
//
// Every filter or sort change bumps a generation counter and starts its own
// page-zero fetch; a fetch that returns to a different generation than it
// started under is discarded, so rows of a superseded filter state can never
// land in the accumulated list.
type HistoryPager struct {
	uc       usecase.InvoiceUsecase
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger

	mu         sync.Mutex
	generation uint64
	status     *entity.InvoiceStatus
	sort       repository.DateSort
	invoices   []*entity.Invoice
	page       int
	started    bool
	hasMore    bool
	loading    bool
}

// NewHistoryPager creates a pager with no pages loaded yet.
func NewHistoryPager(uc usecase.InvoiceUsecase, notifier Notifier, m *metrics.Metrics, logger *slog.Logger) *HistoryPager {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HistoryPager{
		uc:       uc,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		sort:     repository.DateSortDesc,
	}
}

// Load fetches page zero, replacing anything accumulated so far. A fetch
// still in flight is superseded.
func (p *HistoryPager) Load(ctx context.Context) error {
	p.mu.Lock()
	gen, query := p.resetLocked()
	p.mu.Unlock()

	return p.fetchPage(ctx, gen, 0, query)
}

// OnLastRowVisible is the scroll trigger: it fetches the next page unless a
// fetch is already in flight or the end of the history was reached.
func (p *HistoryPager) OnLastRowVisible(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || !p.started || !p.hasMore {
		p.mu.Unlock()

		return nil
	}
	gen := p.generation
	next := p.page + 1
	p.loading = true
	query := usecase.InvoiceQuery{
		Status: p.status,
		Sort:   p.sort,
	}
	p.mu.Unlock()

	return p.fetchPage(ctx, gen, next, query)
}

// SetStatusFilter narrows the history to one status and reloads from page
// zero, superseding any fetch still in flight. A nil status removes the
// narrowing.
func (p *HistoryPager) SetStatusFilter(ctx context.Context, status *entity.InvoiceStatus) error {
	p.mu.Lock()
	p.status = status
	gen, query := p.resetLocked()
	p.mu.Unlock()

	return p.fetchPage(ctx, gen, 0, query)
}

// SetSort flips the issue-date ordering and reloads from page zero,
// superseding any fetch still in flight.
func (p *HistoryPager) SetSort(ctx context.Context, sort repository.DateSort) error {
	p.mu.Lock()
	if sort == "" {
		sort = repository.DateSortDesc
	}
	p.sort = sort
	gen, query := p.resetLocked()
	p.mu.Unlock()

	return p.fetchPage(ctx, gen, 0, query)
}

// resetLocked invalidates any in-flight fetch and claims the loading state
// for a page-zero reload. Callers hold the mutex.
func (p *HistoryPager) resetLocked() (uint64, usecase.InvoiceQuery) {
	p.generation++
	p.loading = true

	return p.generation, usecase.InvoiceQuery{
		Status: p.status,
		Sort:   p.sort,
	}
}

func (p *HistoryPager) fetchPage(ctx context.Context, gen uint64, page int, query usecase.InvoiceQuery) error {
	result, err := p.uc.GetInvoicePage(ctx, page, query)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		// Superseded while in flight; the newer fetch owns the loading flag.
		if p.metrics != nil {
			p.metrics.StaleDiscardsTotal.Inc()
		}

		return nil
	}
	p.loading = false

	if err != nil {
		// Cursor state is untouched so the caller can retry the same page.
		p.notifier.Error(msgLoadHistoryFailed)
		p.logger.Warn("Invoice page fetch failed",
			slog.Int("page", page),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "failed to fetch invoice page")
	}

	if page == 0 {
		p.invoices = result.Invoices
	} else {
		p.invoices = append(p.invoices, result.Invoices...)
	}
	p.page = result.Page
	p.hasMore = result.HasMore
	p.started = true

	if p.metrics != nil {
		p.metrics.HistoryPagesTotal.Inc()
	}

	return nil
}

// Invoices returns the rows accumulated so far.
func (p *HistoryPager) Invoices() []*entity.Invoice {
	p.mu.Lock()
	defer p.mu.Unlock()

	rows := make([]*entity.Invoice, len(p.invoices))
	copy(rows, p.invoices)

	return rows
}

// HasMore reports whether another page may exist.
func (p *HistoryPager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.hasMore
}

// Page reports the last committed page index.
func (p *HistoryPager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.page
}

// Loading reports whether a page fetch is in flight.
func (p *HistoryPager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.loading
}
