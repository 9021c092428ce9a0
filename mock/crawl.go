package mock

import (
	"context"

	"docdex"
)

var _ docdex.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of docdex.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, seeds []string, maxDepth int) map[string]*docdex.Page
}

func (c *Crawler) Crawl(ctx context.Context, seeds []string, maxDepth int) map[string]*docdex.Page {
	return c.CrawlFn(ctx, seeds, maxDepth)
}

var _ docdex.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of docdex.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
