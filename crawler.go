package docdex

import "context"

// Crawler walks the documentation site breadth-first from seed URLs.
//
// Crawl returns the successfully fetched pages keyed by URL; failed
// fetches are omitted. Cancelling the context stops the walk and
// returns the pages fetched so far; a partial crawl is a valid result,
// not an error.
type Crawler interface {
	Crawl(ctx context.Context, seeds []string, maxDepth int) map[string]*Page
}

// HostLimiter enforces a minimum delay between requests to the same
// host. Wait blocks until a request to host is allowed, or returns an
// error if the context is canceled first.
type HostLimiter interface {
	Wait(ctx context.Context, host string) error
}
