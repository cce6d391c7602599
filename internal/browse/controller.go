package browse

import (
	"context"
	"log/slog"

	"github.com/justchokingaround/morty/internal/api"
)

// Status is the state of the list fetch lifecycle
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher is the gateway capability used by the controller and the enricher
type Fetcher interface {
	Characters(ctx context.Context, req api.Request) (*api.CharacterPage, error)
	Character(ctx context.Context, id string) (*api.CharacterDetail, error)
}

// Load is a list fetch issued by the controller
type Load struct {
	Token uint64
	Route Route
}

// Run performs the fetch. It touches no controller state and is safe to call off the UI loop.
func (l Load) Run(ctx context.Context, f Fetcher) PageResult {
	page, err := f.Characters(ctx, l.Route.Request())
	return PageResult{Token: l.Token, Route: l.Route, Page: page, Err: err}
}

// PageResult is the outcome of a Load
type PageResult struct {
	Token uint64
	Route Route
	Page  *api.CharacterPage
	Err   error
}

// Controller owns the list fetch state machine and the selection over its items.
// It is not safe for concurrent use; the UI loop is its only caller.
type Controller struct {
	router Router
	logger *slog.Logger

	status Status
	token  uint64

	route     Route
	issued    Route
	hasIssued bool
	filter    api.Filter
	hasFilter bool
	page      *api.CharacterPage
	err       error
	selected  int
}

// NewController creates an idle controller reading routes from router
func NewController(router Router, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		router:   router,
		logger:   logger,
		selected: -1,
	}
}

// Sync reconciles the controller with the router's current path.
// An unusable page, or a page other than 1 under a changed filter set, is
// rewritten in place to page 1. A Load is returned when (page, filter) differs
// from the last issued request.
func (c *Controller) Sync() (Load, bool) {
	path := c.router.CurrentPath()
	route, valid := parseRoute(path)

	if c.hasFilter && route.Filter != c.filter && route.Page != 1 {
		c.logger.Debug("filters changed, resetting page", "from_page", route.Page)
		route.Page = 1
		valid = false
	}
	c.filter = route.Filter
	c.hasFilter = true

	if !valid {
		c.router.Replace(route.Path())
	}
	c.route = route

	if c.hasIssued && route == c.issued {
		return Load{}, false
	}
	return c.issue(route), true
}

// Reload re-issues the current route regardless of its state
func (c *Controller) Reload() Load {
	return c.issue(c.route)
}

func (c *Controller) issue(route Route) Load {
	c.token++
	c.issued = route
	c.hasIssued = true
	c.status = StatusLoading
	c.page = nil
	c.err = nil
	c.selected = -1

	c.logger.Debug("loading characters", "token", c.token, "path", route.Path())
	return Load{Token: c.token, Route: route}
}

// Apply commits a result. Results of anything but the latest Load are dropped
// and Apply returns false.
func (c *Controller) Apply(res PageResult) bool {
	if res.Token != c.token {
		c.logger.Debug("dropping stale result", "token", res.Token, "latest", c.token)
		return false
	}

	c.selected = -1
	if res.Err != nil {
		c.status = StatusFailed
		c.err = res.Err
		c.page = nil
		c.logger.Warn("failed to load characters", "path", res.Route.Path(), "error", res.Err)
		return true
	}

	page := res.Page
	if page == nil {
		page = &api.CharacterPage{Page: res.Route.Page, Items: []api.Character{}, Pagination: &api.PaginationInfo{}}
	}
	c.status = StatusSuccess
	c.err = nil
	c.page = page
	return true
}

// Status returns the lifecycle state
func (c *Controller) Status() Status {
	return c.status
}

// Route returns the route last synced from the router
func (c *Controller) Route() Route {
	return c.route
}

// Token returns the token of the latest Load
func (c *Controller) Token() uint64 {
	return c.token
}

// Page returns the current successful page, or nil
func (c *Controller) Page() *api.CharacterPage {
	return c.page
}

// Items returns the displayed characters
func (c *Controller) Items() []api.Character {
	if c.page == nil {
		return nil
	}
	return c.page.Items
}

// Err returns the error of a failed load
func (c *Controller) Err() error {
	return c.err
}

// IsEmpty reports a successful load without any character
func (c *Controller) IsEmpty() bool {
	return c.status == StatusSuccess && c.page.IsEmpty()
}

// Pagination derives the pagination bar for the current page.
// It reports false unless the last load succeeded.
func (c *Controller) Pagination() (Window, bool) {
	if c.status != StatusSuccess || c.page.Pagination == nil {
		return Window{}, false
	}
	return DerivePagination(c.page.Pagination.TotalPages, c.route.Page), true
}

// TotalCount returns the number of characters matching the current filters
func (c *Controller) TotalCount() int {
	if c.page == nil || c.page.Pagination == nil {
		return 0
	}
	return c.page.Pagination.TotalCount
}

// Select opens the item with id and returns the id to enrich.
// An unknown id clears the selection.
func (c *Controller) Select(id string) (string, bool) {
	for i, item := range c.Items() {
		if item.ID == id {
			c.selected = i
			return id, true
		}
	}
	c.selected = -1
	return "", false
}

// Next moves the selection forward without wrapping
func (c *Controller) Next() (string, bool) {
	return c.move(1)
}

// Previous moves the selection back without wrapping
func (c *Controller) Previous() (string, bool) {
	return c.move(-1)
}

func (c *Controller) move(delta int) (string, bool) {
	items := c.Items()
	if c.selected < 0 || c.selected >= len(items) {
		return "", false
	}
	next := c.selected + delta
	if next < 0 || next >= len(items) {
		return "", false
	}
	c.selected = next
	return items[next].ID, true
}

// Close clears the selection
func (c *Controller) Close() {
	c.selected = -1
}

// SelectedIndex returns the selected index or -1
func (c *Controller) SelectedIndex() int {
	return c.selected
}

// Selected returns the selected character
func (c *Controller) Selected() (api.Character, bool) {
	items := c.Items()
	if c.selected < 0 || c.selected >= len(items) {
		return api.Character{}, false
	}
	return items[c.selected], true
}
