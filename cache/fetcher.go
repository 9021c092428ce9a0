package cache

import (
	"context"

	"docdex"
)

// Compile-time interface verification.
var _ docdex.Fetcher = (*Fetcher)(nil)

// Fetcher is a cache-first decorator around another docdex.Fetcher.
// Hits are served from the cache; misses are delegated and, when the
// fetch succeeds, inserted. Failed fetches are returned but never
// cached, so a later retry gets a fresh attempt.
type Fetcher struct {
	Cache docdex.PageCache
	Next  docdex.Fetcher
}

// NewFetcher creates a cache-first Fetcher.
func NewFetcher(cache docdex.PageCache, next docdex.Fetcher) *Fetcher {
	return &Fetcher{Cache: cache, Next: next}
}

// Fetch returns the cached page for url if present, fetching and caching
// it otherwise.
func (f *Fetcher) Fetch(ctx context.Context, url string) *docdex.Page {
	if page, ok := f.Cache.Get(url); ok {
		return page
	}
	page := f.Next.Fetch(ctx, url)
	if page.Success {
		f.Cache.Put(url, page)
	}
	return page
}
