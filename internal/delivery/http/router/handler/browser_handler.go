package handler

import (
	"log/slog"
	"net/http"

	"refboard/internal/browser"
	"refboard/internal/delivery/http/response"
	"refboard/internal/delivery/http/session"
	"refboard/internal/domain/entity"
	domainerrors "refboard/internal/domain/errors"
	"refboard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BrowserHandlerParams holds dependencies for BrowserHandler, injected by Fx.
type BrowserHandlerParams struct {
	fx.In

	Store  *session.Store
	Logger *slog.Logger
}

// BrowserHandler exposes the stateful dashboard browser: the referral
// tree/table and the payment history pager of each open session.
type BrowserHandler struct {
	store  *session.Store
	logger *slog.Logger
}

// NewBrowserHandler is the constructor for BrowserHandler
func NewBrowserHandler(params BrowserHandlerParams) *BrowserHandler {
	return &BrowserHandler{
		store:  params.Store,
		logger: params.Logger,
	}
}

// BrowserRow is one rendered row of the tree or the flat result list.
type BrowserRow struct {
	Profile   *entity.Profile `json:"profile"`
	Plan      string          `json:"plan"`
	Depth     int             `json:"depth"`
	Expanded  bool            `json:"expanded"`
	Loading   bool            `json:"loading"`
	CanExpand bool            `json:"can_expand"`
}

// BrowserState is the poll payload of one session's tree view.
type BrowserState struct {
	SessionID     string       `json:"session_id"`
	Mode          string       `json:"mode"`
	Loading       bool         `json:"loading"`
	SearchText    string       `json:"search_text"`
	Rows          []BrowserRow `json:"rows"`
	Notifications []string     `json:"notifications"`
}

// HistoryRow is one payment-history row with its derived payment channel.
type HistoryRow struct {
	*entity.Invoice
	PaymentChannel string `json:"payment_channel"`
}

// HistoryState is the poll payload of one session's payment history.
type HistoryState struct {
	SessionID     string       `json:"session_id"`
	Rows          []HistoryRow `json:"rows"`
	Page          int          `json:"page"`
	HasMore       bool         `json:"has_more"`
	Loading       bool         `json:"loading"`
	Notifications []string     `json:"notifications"`
}

// SearchRequest carries the raw search input as typed.
type SearchRequest struct {
	Text string `json:"text"`
}

// FiltersRequest carries the filter controls. Absent fields mean unchanged.
type FiltersRequest struct {
	Plan     *string `json:"plan,omitempty"`
	Whatsapp *string `json:"whatsapp,omitempty"`
}

// HistoryFiltersRequest carries the history controls. Absent fields mean
// unchanged; an empty status clears the narrowing.
type HistoryFiltersRequest struct {
	Status *string `json:"status,omitempty"`
	Sort   *string `json:"sort,omitempty"`
}

// CreateSession opens a new browser session rooted at the network master.
func (h *BrowserHandler) CreateSession(c echo.Context) error {
	sess, err := h.store.Create(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, mapReferralError(err))
	}

	return response.Success(c, http.StatusCreated, h.browserState(sess), "Browser session created successfully")
}

// DeleteSession disposes a browser session.
func (h *BrowserHandler) DeleteSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	if err := h.store.Delete(sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session closed"}, "Browser session closed successfully")
}

// GetRows renders the current rows of the session's tree or search view.
func (h *BrowserHandler) GetRows(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.browserState(sess), "Rows retrieved successfully")
}

// ToggleNode expands or collapses one tree node.
func (h *BrowserHandler) ToggleNode(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	nodeID, err := uuid.Parse(c.Param("nodeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid node ID")
	}

	if err := sess.Tree.ToggleNode(c.Request().Context(), nodeID); err != nil {
		if errors.Is(err, browser.ErrUnknownNode) {
			return response.HandleAppError(c, domainerrors.ErrNotFound)
		}
		// Fetch failures surface through the session notifications.
		h.logger.Warn("Node toggle failed",
			slog.String("node_id", nodeID.String()),
			slog.String("error", err.Error()),
		)
	}

	return response.Success(c, http.StatusOK, h.browserState(sess), "Node toggled successfully")
}

// SetSearch records new search input. The committed view only changes after
// the debounce window elapses, so the returned rows may still be the old ones.
func (h *BrowserHandler) SetSearch(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	sess.Tree.SetSearchText(req.Text)

	return response.Success(c, http.StatusOK, h.browserState(sess), "Search input recorded successfully")
}

// SetFilters applies the plan and WhatsApp filter controls.
func (h *BrowserHandler) SetFilters(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FiltersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	if req.Whatsapp != nil {
		contact, ok := parseContactFilter(*req.Whatsapp)
		if !ok {
			return response.BadRequest(c, "INVALID_FILTER", "whatsapp filter must be all, yes or no")
		}
		sess.Tree.SetContactFilter(contact)
	}
	if req.Plan != nil {
		sess.Tree.SetPlanFilter(*req.Plan)
	}

	return response.Success(c, http.StatusOK, h.browserState(sess), "Filters applied successfully")
}

// ClearFilters resets search text and both filters, returning to tree mode.
func (h *BrowserHandler) ClearFilters(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sess.Tree.ClearFilters()

	return response.Success(c, http.StatusOK, h.browserState(sess), "Filters cleared successfully")
}

// GetHistory renders the payment history accumulated so far.
func (h *BrowserHandler) GetHistory(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.historyState(sess), "History retrieved successfully")
}

// LoadHistory fetches the first history page, replacing anything loaded.
func (h *BrowserHandler) LoadHistory(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := sess.History.Load(c.Request().Context()); err != nil {
		h.logger.Warn("History load failed",
			slog.String("error", err.Error()),
		)
	}

	return response.Success(c, http.StatusOK, h.historyState(sess), "History loaded successfully")
}

// ScrollHistory is the infinite-scroll trigger for the next history page.
func (h *BrowserHandler) ScrollHistory(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := sess.History.OnLastRowVisible(c.Request().Context()); err != nil {
		h.logger.Warn("History scroll failed",
			slog.String("error", err.Error()),
		)
	}

	return response.Success(c, http.StatusOK, h.historyState(sess), "History advanced successfully")
}

// SetHistoryFilters applies the status filter and issue-date sort, reloading
// the history from the first page.
func (h *BrowserHandler) SetHistoryFilters(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req HistoryFiltersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid history filter input")
	}

	ctx := c.Request().Context()

	if req.Status != nil {
		var status *entity.InvoiceStatus
		if *req.Status != "" {
			parsed := entity.InvoiceStatus(*req.Status)
			if !parsed.Valid() {
				return response.BadRequest(c, "INVALID_FILTER", "Unknown invoice status")
			}
			status = &parsed
		}
		if err := sess.History.SetStatusFilter(ctx, status); err != nil {
			h.logger.Warn("History status filter failed",
				slog.String("error", err.Error()),
			)
		}
	}

	if req.Sort != nil {
		sort := repository.DateSort(*req.Sort)
		if sort != "" && sort != repository.DateSortAsc && sort != repository.DateSortDesc {
			return response.BadRequest(c, "INVALID_FILTER", "sort must be asc or desc")
		}
		if err := sess.History.SetSort(ctx, sort); err != nil {
			h.logger.Warn("History sort change failed",
				slog.String("error", err.Error()),
			)
		}
	}

	return response.Success(c, http.StatusOK, h.historyState(sess), "History filters applied successfully")
}

func (h *BrowserHandler) session(c echo.Context) (*session.Session, error) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return nil, domainerrors.ErrBrowserSessionNotFound
	}

	return h.store.Get(sessionID)
}

func (h *BrowserHandler) browserState(sess *session.Session) BrowserState {
	rows := sess.Tree.Rows()
	viewRows := make([]BrowserRow, 0, len(rows))
	for _, row := range rows {
		viewRows = append(viewRows, BrowserRow{
			Profile:   row.Profile,
			Plan:      row.Profile.ResolvedPlan(),
			Depth:     row.Depth,
			Expanded:  row.Expanded,
			Loading:   row.Loading,
			CanExpand: row.CanExpand,
		})
	}

	return BrowserState{
		SessionID:     sess.ID.String(),
		Mode:          string(sess.Tree.Mode()),
		Loading:       sess.Tree.Loading(),
		SearchText:    sess.Tree.SearchText(),
		Rows:          viewRows,
		Notifications: sess.Notifications(),
	}
}

func (h *BrowserHandler) historyState(sess *session.Session) HistoryState {
	invoices := sess.History.Invoices()
	rows := make([]HistoryRow, 0, len(invoices))
	for _, invoice := range invoices {
		rows = append(rows, HistoryRow{
			Invoice:        invoice,
			PaymentChannel: invoice.PaymentChannel(),
		})
	}

	return HistoryState{
		SessionID:     sess.ID.String(),
		Rows:          rows,
		Page:          sess.History.Page(),
		HasMore:       sess.History.HasMore(),
		Loading:       sess.History.Loading(),
		Notifications: sess.Notifications(),
	}
}
