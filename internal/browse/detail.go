package browse

import (
	"context"
	"log/slog"

	"github.com/justchokingaround/morty/internal/api"
)

// DetailLoad is a detail fetch issued by the Enricher
type DetailLoad struct {
	ID string
}

// Run performs the fetch without touching enricher state
func (d DetailLoad) Run(ctx context.Context, f Fetcher) DetailResult {
	detail, err := f.Character(ctx, d.ID)
	return DetailResult{ID: d.ID, Detail: detail, Err: err}
}

// DetailResult is the outcome of a DetailLoad
type DetailResult struct {
	ID     string
	Detail *api.CharacterDetail
	Err    error
}

// Enricher fetches character details on selection, independently of the list lifecycle.
// A detail is fetched at most once at a time per id and kept once it arrives.
type Enricher struct {
	cache   *api.DetailCache
	pending map[string]struct{}
	errs    map[string]error
	logger  *slog.Logger
}

// NewEnricher creates an Enricher backed by cache
func NewEnricher(cache *api.DetailCache, logger *slog.Logger) *Enricher {
	if cache == nil {
		cache = api.NewDetailCache()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{
		cache:   cache,
		pending: make(map[string]struct{}),
		errs:    make(map[string]error),
		logger:  logger,
	}
}

// Begin returns a load for id unless its detail is cached or already in flight.
// A previous failure for id is forgotten so the fetch is retried.
func (e *Enricher) Begin(id string) (DetailLoad, bool) {
	if id == "" {
		return DetailLoad{}, false
	}
	if _, ok := e.cache.Get(id); ok {
		return DetailLoad{}, false
	}
	if _, ok := e.pending[id]; ok {
		return DetailLoad{}, false
	}
	e.pending[id] = struct{}{}
	delete(e.errs, id)
	return DetailLoad{ID: id}, true
}

// Complete records the outcome of a DetailLoad
func (e *Enricher) Complete(res DetailResult) {
	delete(e.pending, res.ID)
	if res.Err != nil {
		e.errs[res.ID] = res.Err
		e.logger.Warn("failed to load character detail", "id", res.ID, "error", res.Err)
		return
	}
	if res.Detail != nil {
		e.cache.Set(res.ID, res.Detail)
	}
}

// Lookup reports what is known about id: the detail, whether a fetch is in flight, and the last error
func (e *Enricher) Lookup(id string) (*api.CharacterDetail, bool, error) {
	if detail, ok := e.cache.Get(id); ok {
		return detail, false, nil
	}
	_, pending := e.pending[id]
	return nil, pending, e.errs[id]
}
