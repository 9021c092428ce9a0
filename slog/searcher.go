package slog

import (
	"context"
	"log/slog"
	"time"

	"docdex"
)

// Ensure LoggingSearcher implements docdex.Searcher.
var _ docdex.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-query logging.
type LoggingSearcher struct {
	next   docdex.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docdex.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string) []docdex.SearchResult {
	begin := time.Now()
	results := s.next.Search(ctx, query)

	top := 0
	if len(results) > 0 {
		top = results[0].Relevance
	}
	s.logger.Info("search",
		"query", query,
		"results", len(results),
		"top_relevance", top,
		"duration", time.Since(begin),
	)
	return results
}
