package api

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// PageFetcher is the subset of Client used by FetchPages
type PageFetcher interface {
	Characters(ctx context.Context, req Request) (*CharacterPage, error)
}

// FetchPages fetches pages from..to (inclusive) with at most limit requests in flight.
// Pages are returned in order. The first failure cancels the remaining requests.
func FetchPages(ctx context.Context, f PageFetcher, from, to int, filter Filter, limit int) ([]*CharacterPage, error) {
	if from < 1 {
		from = 1
	}
	if to < from {
		return nil, fmt.Errorf("invalid page range %d-%d", from, to)
	}
	if limit < 1 {
		limit = 1
	}

	pages := make([]*CharacterPage, to-from+1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range pages {
		page := from + i
		g.Go(func() error {
			result, err := f.Characters(gctx, Request{Page: page, Filter: filter})
			if err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
			pages[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
