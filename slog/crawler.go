package slog

import (
	"context"
	"log/slog"
	"time"

	"docdex"
)

// Ensure LoggingCrawler implements docdex.Crawler.
var _ docdex.Crawler = (*LoggingCrawler)(nil)

// LoggingCrawler wraps a Crawler with per-crawl logging.
type LoggingCrawler struct {
	next   docdex.Crawler
	logger *slog.Logger
}

// NewLoggingCrawler creates a new LoggingCrawler.
func NewLoggingCrawler(next docdex.Crawler, logger *slog.Logger) *LoggingCrawler {
	return &LoggingCrawler{next: next, logger: logger}
}

// Crawl delegates to the wrapped crawler and logs the outcome.
func (c *LoggingCrawler) Crawl(ctx context.Context, seeds []string, maxDepth int) map[string]*docdex.Page {
	begin := time.Now()
	pages := c.next.Crawl(ctx, seeds, maxDepth)

	c.logger.Info("crawl",
		"seeds", len(seeds),
		"max_depth", maxDepth,
		"fetched", len(pages),
		"duration", time.Since(begin),
	)
	return pages
}
