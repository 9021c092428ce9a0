package mock

import (
	"context"

	"docdex"
)

var _ docdex.SearchDiscoverer = (*SearchDiscoverer)(nil)

// SearchDiscoverer is a mock implementation of docdex.SearchDiscoverer.
type SearchDiscoverer struct {
	DiscoverFn func(ctx context.Context, query string, limit int) ([]string, error)
}

func (d *SearchDiscoverer) Discover(ctx context.Context, query string, limit int) ([]string, error) {
	return d.DiscoverFn(ctx, query, limit)
}

var _ docdex.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of docdex.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) []docdex.SearchResult
}

func (s *Searcher) Search(ctx context.Context, query string) []docdex.SearchResult {
	return s.SearchFn(ctx, query)
}
