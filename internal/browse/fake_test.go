package browse

import (
	"context"
	"fmt"
	"sync"

	"github.com/justchokingaround/morty/internal/api"
)

// fakeFetcher serves generated pages. When gates holds a channel for a page,
// Characters blocks until it is closed.
type fakeFetcher struct {
	mu       sync.Mutex
	requests []api.Request
	details  []string

	totalPages int
	perPage    int
	gates      map[int]chan struct{}
	err        error
	detailErr  error
}

func newFakeFetcher(totalPages, perPage int) *fakeFetcher {
	return &fakeFetcher{totalPages: totalPages, perPage: perPage, gates: map[int]chan struct{}{}}
}

func (f *fakeFetcher) Characters(ctx context.Context, req api.Request) (*api.CharacterPage, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	gate := f.gates[req.Page]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return makePage(req.Page, f.perPage, f.totalPages), nil
}

func (f *fakeFetcher) Character(ctx context.Context, id string) (*api.CharacterDetail, error) {
	f.mu.Lock()
	f.details = append(f.details, id)
	f.mu.Unlock()

	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return &api.CharacterDetail{
		Character: api.Character{ID: id, Name: "Character " + id},
		Episodes:  []api.Episode{{ID: "1", Name: "Pilot", Code: "S01E01"}},
	}, nil
}

func (f *fakeFetcher) lastRequest() api.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func makePage(page, perPage, totalPages int) *api.CharacterPage {
	items := make([]api.Character, 0, perPage)
	for i := 0; i < perPage; i++ {
		id := fmt.Sprint((page-1)*perPage + i + 1)
		items = append(items, api.Character{ID: id, Name: "Character " + id, Status: api.StatusAlive})
	}
	return &api.CharacterPage{
		Page:  page,
		Items: items,
		Pagination: &api.PaginationInfo{
			TotalCount: perPage * totalPages,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}
