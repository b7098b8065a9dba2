package browser

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	"refboard/internal/domain/service"
	"refboard/internal/infra/metrics"
	"refboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Mode is the display mode of the browser.
type Mode string

const (
	// ModeTree shows the lazily expanded referral hierarchy.
	ModeTree Mode = "tree"
	// ModeSearch shows a flat result list driven by the active filters.
	ModeSearch Mode = "search"
)

// PlanFilterAll disables plan narrowing.
const PlanFilterAll = "all"

// ErrUnknownNode is returned when a toggle targets a node not in the arena.
var ErrUnknownNode = errors.New("unknown node")

// User-facing failure messages, pt-BR like the rest of the product.
const (
	msgLoadNetworkFailed   = "Não foi possível carregar a rede"
	msgLoadReferralsFailed = "Não foi possível carregar os indicados"
	msgSearchFailed        = "Não foi possível buscar os perfis"
)

// TreeTable drives one referral browser view. It owns the node arena of the
// tree, the committed filter set, and the flat search results, and it decides
// which of the two modes the view is in.
//
// Fetches run outside the mutex. Every committed view change bumps a
// generation counter; a fetch that returns to a different generation than it
// started under is discarded, so a stale response can never overwrite the
// state of a newer view.
type TreeTable struct {
	uc       usecase.ReferralUsecase
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
	debounce time.Duration

	// ctx is the session context used by debounce-triggered fetches.
	ctx context.Context

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer

	searchInput   string // text as typed, not yet committed
	searchText    string // committed after the debounce window
	planFilter    string
	contactFilter repository.ContactChannelFilter

	rootID uuid.UUID
	nodes  map[uuid.UUID]*Node

	results []*entity.Profile
	loading bool
}

// NewTreeTable creates a browser view bound to the given session context.
func NewTreeTable(ctx context.Context, uc usecase.ReferralUsecase, notifier Notifier, debounce time.Duration, m *metrics.Metrics, logger *slog.Logger) *TreeTable {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TreeTable{
		uc:            uc,
		notifier:      notifier,
		metrics:       m,
		logger:        logger,
		debounce:      debounce,
		ctx:           ctx,
		planFilter:    PlanFilterAll,
		contactFilter: repository.ContactChannelAll,
		nodes:         make(map[uuid.UUID]*Node),
	}
}

// LoadRoot fetches the network root and resets the tree to a single collapsed
// node. It must succeed before tree mode can render anything.
func (t *TreeTable) LoadRoot(ctx context.Context) error {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	t.loading = true
	t.mu.Unlock()

	root, err := t.uc.GetRootProfile(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		t.countStaleDiscard()

		return nil
	}
	t.loading = false

	if err != nil {
		t.notifier.Error(msgLoadNetworkFailed)

		return errors.Wrap(err, "failed to load network root")
	}

	t.rootID = root.ID
	t.nodes = map[uuid.UUID]*Node{
		root.ID: {Profile: root},
	}

	return nil
}

// SetSearchText records new search input and restarts the trailing debounce
// window. The view does not change until the window elapses.
func (t *TreeTable) SetSearchText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.searchInput = text

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.debounce, t.commitSearch)
}

// commitSearch runs when the debounce window elapses with no further input.
func (t *TreeTable) commitSearch() {
	t.mu.Lock()

	committed := strings.TrimSpace(t.searchInput)
	if committed == t.searchText {
		t.mu.Unlock()

		return
	}

	t.searchText = committed

	if t.modeLocked() != ModeSearch {
		// All filters inactive again; the arena still holds the tree.
		t.leaveSearchLocked()
		t.mu.Unlock()

		return
	}

	t.generation++
	gen := t.generation
	t.loading = true
	text := t.searchText
	contact := t.contactFilter
	t.mu.Unlock()

	t.runSearch(gen, text, contact)
}

// leaveSearchLocked invalidates any in-flight flat fetch and drops the search
// view state so tree mode renders with no leftover spinner or results.
// Callers hold the mutex.
func (t *TreeTable) leaveSearchLocked() {
	t.generation++
	t.loading = false
	t.results = nil
}

// SetPlanFilter narrows the flat view to one plan label. The narrowing itself
// happens client-side over already fetched results; a fetch is only needed
// when this filter is what switches the view out of tree mode.
func (t *TreeTable) SetPlanFilter(plan string) {
	t.mu.Lock()

	if plan == "" {
		plan = PlanFilterAll
	}
	if strings.EqualFold(plan, t.planFilter) {
		t.mu.Unlock()

		return
	}

	prevMode := t.modeLocked()
	t.planFilter = plan

	if t.modeLocked() != ModeSearch {
		if prevMode == ModeSearch {
			t.leaveSearchLocked()
		}
		t.mu.Unlock()

		return
	}

	if prevMode == ModeSearch {
		// Narrowing is client-side; the fetched flat results stay valid,
		// including one still in flight.
		t.mu.Unlock()

		return
	}

	t.generation++
	gen := t.generation
	t.loading = true
	text := t.searchText
	contact := t.contactFilter
	t.mu.Unlock()

	t.runSearch(gen, text, contact)
}

// SetContactFilter narrows the flat view by public WhatsApp presence. The
// narrowing is part of the server query, so changing it refetches.
func (t *TreeTable) SetContactFilter(filter repository.ContactChannelFilter) {
	t.mu.Lock()

	if filter == "" {
		filter = repository.ContactChannelAll
	}
	if filter == t.contactFilter {
		t.mu.Unlock()

		return
	}

	t.contactFilter = filter

	if t.modeLocked() != ModeSearch {
		t.leaveSearchLocked()
		t.mu.Unlock()

		return
	}

	t.generation++
	gen := t.generation
	t.loading = true
	text := t.searchText
	contact := t.contactFilter
	t.mu.Unlock()

	t.runSearch(gen, text, contact)
}

// runSearch fetches the flat result set for the captured filter state and
// applies it unless the view moved on while the fetch was in flight.
func (t *TreeTable) runSearch(gen uint64, text string, contact repository.ContactChannelFilter) {
	profiles, err := t.uc.SearchProfiles(t.ctx, text, contact)

	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		t.countStaleDiscard()

		return
	}
	t.loading = false

	if err != nil {
		t.results = nil
		t.notifier.Error(msgSearchFailed)
		t.logger.Warn("Profile search failed",
			slog.String("error", err.Error()),
		)

		return
	}

	t.results = profiles
	if t.metrics != nil {
		t.metrics.SearchesTotal.Inc()
	}
}

// ToggleNode expands or collapses one tree node. The first expansion fetches
// the children; later ones reuse the cached list. Expanding a node whose
// cached referral count is zero is a no-op.
func (t *TreeTable) ToggleNode(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()

	// Expansion is a tree-mode affordance only.
	if t.modeLocked() == ModeSearch {
		t.mu.Unlock()

		return nil
	}

	node, ok := t.nodes[id]
	if !ok {
		t.mu.Unlock()

		return errors.Wrapf(ErrUnknownNode, "node %s", id)
	}

	if node.Expanded {
		node.Expanded = false
		t.mu.Unlock()

		return nil
	}

	if !node.CanExpand() || node.Loading {
		t.mu.Unlock()

		return nil
	}

	if node.Loaded {
		node.Expanded = true
		t.mu.Unlock()

		return nil
	}

	node.Loading = true
	gen := t.generation
	t.mu.Unlock()

	children, err := t.uc.GetDirectReferrals(ctx, id)

	t.mu.Lock()
	defer t.mu.Unlock()

	node.Loading = false

	if gen != t.generation {
		t.countStaleDiscard()

		return nil
	}

	if err != nil {
		// Loaded stays unset so the next expand retries the fetch.
		t.notifier.Error(msgLoadReferralsFailed)

		return errors.Wrap(err, "failed to load direct referrals")
	}

	ids := make([]uuid.UUID, 0, len(children))
	for _, child := range children {
		ids = append(ids, child.ID)
		if _, exists := t.nodes[child.ID]; !exists {
			t.nodes[child.ID] = &Node{Profile: child}
		}
	}
	node.Children = ids
	node.Loaded = true
	node.Expanded = true

	if t.metrics != nil {
		t.metrics.NodeExpansionsTotal.Inc()
	}

	return nil
}

// Mode reports the current display mode, derived from the committed filters.
func (t *TreeTable) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.modeLocked()
}

func (t *TreeTable) modeLocked() Mode {
	if t.searchText != "" {
		return ModeSearch
	}
	if !strings.EqualFold(t.planFilter, PlanFilterAll) {
		return ModeSearch
	}
	if t.contactFilter != repository.ContactChannelAll && t.contactFilter != "" {
		return ModeSearch
	}

	return ModeTree
}

// RootID reports the network root loaded by LoadRoot, or uuid.Nil before it.
func (t *TreeTable) RootID() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.rootID
}

// Loading reports whether a top-level fetch is in flight.
func (t *TreeTable) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.loading
}

// SearchText reports the committed search text.
func (t *TreeTable) SearchText() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.searchText
}

// Rows renders the visible rows of the current mode. In tree mode this walks
// the expanded part of the hierarchy depth-first; in search mode it applies
// the client-side plan narrowing over the fetched flat results.
func (t *TreeTable) Rows() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.modeLocked() == ModeSearch {
		return t.flatRowsLocked()
	}

	return t.treeRowsLocked()
}

func (t *TreeTable) flatRowsLocked() []Row {
	rows := make([]Row, 0, len(t.results))
	for _, profile := range t.results {
		if !strings.EqualFold(t.planFilter, PlanFilterAll) &&
			!strings.EqualFold(profile.ResolvedPlan(), t.planFilter) {
			continue
		}
		rows = append(rows, Row{Profile: profile})
	}

	return rows
}

func (t *TreeTable) treeRowsLocked() []Row {
	if t.rootID == uuid.Nil {
		return nil
	}

	var rows []Row
	var visit func(id uuid.UUID, depth int)
	visit = func(id uuid.UUID, depth int) {
		node, ok := t.nodes[id]
		if !ok {
			return
		}

		rows = append(rows, Row{
			Profile:   node.Profile,
			Depth:     depth,
			Expanded:  node.Expanded,
			Loading:   node.Loading,
			CanExpand: node.CanExpand(),
		})

		if node.Expanded && node.Loaded {
			for _, childID := range node.Children {
				visit(childID, depth+1)
			}
		}
	}
	visit(t.rootID, 0)

	return rows
}

// ClearFilters resets every filter at once and returns the view to tree mode.
// The tree arena is untouched, so no fetch is needed.
func (t *TreeTable) ClearFilters() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	t.searchInput = ""
	t.searchText = ""
	t.planFilter = PlanFilterAll
	t.contactFilter = repository.ContactChannelAll
	t.leaveSearchLocked()
}

// ApplyProfileChange folds a realtime profile update into every cached copy of
// the profile, in the node arena and in the flat results. Unknown profiles are
// ignored. Empty change fields mean unchanged.
func (t *TreeTable) ApplyProfileChange(id uuid.UUID, change *service.ProfileChange) {
	if change == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if node, ok := t.nodes[id]; ok && node.Profile != nil {
		applyChange(node.Profile, change)
	}
	for _, profile := range t.results {
		if profile != nil && profile.ID == id {
			applyChange(profile, change)
		}
	}
}

func applyChange(p *entity.Profile, change *service.ProfileChange) {
	if change.Username != "" {
		p.Username = change.Username
	}
	if change.FullName != "" {
		p.FullName = change.FullName
	}
	if change.AvatarURL != "" {
		p.AvatarURL = change.AvatarURL
	}
}

// Close cancels any pending debounce timer.
func (t *TreeTable) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *TreeTable) countStaleDiscard() {
	if t.metrics != nil {
		t.metrics.StaleDiscardsTotal.Inc()
	}
}
