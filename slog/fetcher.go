// Package slog provides logging decorators for the core service
// interfaces, built on the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"docdex"
)

// Ensure LoggingFetcher implements docdex.Fetcher.
var _ docdex.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   docdex.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docdex.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) *docdex.Page {
	begin := time.Now()
	page := f.next.Fetch(ctx, url)
	if page.Success {
		f.logger.Debug("page fetch",
			"url", url,
			"title", page.Title,
			"links", len(page.Links),
			"duration", time.Since(begin),
		)
	} else {
		f.logger.Warn("page fetch failed",
			"url", url,
			"err", page.Err,
			"duration", time.Since(begin),
		)
	}
	return page
}
