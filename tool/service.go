// Package tool implements the named operation layer shared by the MCP
// server and the CLI: argument validation, dispatch, and human-readable
// text rendering of results.
package tool

import (
	"context"
	"log/slog"

	"docdex"
)

// Operation names.
const (
	OpGetGuidance    = "get_guidance"
	OpSearchDocs     = "search_docs"
	OpCrawlDocs      = "crawl_docs"
	OpRefreshDocs    = "refresh_docs"
	OpListCachedURLs = "list_cached_urls"
	OpCrawlStats     = "crawl_stats"
	OpGetSourceLink  = "get_source_link"
)

// Operations lists every operation name the service dispatches.
var Operations = []string{
	OpGetGuidance,
	OpSearchDocs,
	OpCrawlDocs,
	OpRefreshDocs,
	OpListCachedURLs,
	OpCrawlStats,
	OpGetSourceLink,
}

// Service executes named operations against the crawler, searcher, and
// page cache. All operations return human-readable text.
type Service struct {
	cfg      *docdex.Config
	scope    *docdex.Scope
	cache    docdex.PageCache
	fetcher  docdex.Fetcher
	searcher docdex.Searcher
	crawler  docdex.Crawler
	registry *docdex.Registry
	logger   *slog.Logger
}

// NewService creates a Service. The fetcher is used only for on-demand
// resource resolution and should be cache-first.
func NewService(cfg *docdex.Config, cache docdex.PageCache, fetcher docdex.Fetcher, searcher docdex.Searcher, crawler docdex.Crawler, registry *docdex.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		cfg:      cfg,
		scope:    cfg.Scope(),
		cache:    cache,
		fetcher:  fetcher,
		searcher: searcher,
		crawler:  crawler,
		registry: registry,
		logger:   logger,
	}
}

// Preload seeds the cache with the canonical document of every pinned
// topic so the canonical answer is available before any crawl has run.
func (s *Service) Preload() {
	for _, t := range s.cfg.Topics {
		if t.Canonical == nil {
			continue
		}
		if _, ok := s.cache.Get(t.CanonicalURL); !ok {
			s.cache.Put(t.CanonicalURL, t.Canonical)
		}
	}
}

// Call dispatches the named operation. A missing or malformed argument
// returns an EINVALID error; an unknown name returns ENOTFOUND.
func (s *Service) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	switch name {
	case OpGetGuidance:
		userContext, err := stringArg(args, "context")
		if err != nil {
			return "", err
		}
		requirements, err := stringArg(args, "requirements")
		if err != nil {
			return "", err
		}
		return s.getGuidance(ctx, userContext, requirements), nil

	case OpSearchDocs:
		query, err := stringArg(args, "query")
		if err != nil {
			return "", err
		}
		return s.searchDocs(ctx, query), nil

	case OpCrawlDocs:
		maxDepth, err := intArg(args, "max_depth", s.cfg.MaxDepth)
		if err != nil {
			return "", err
		}
		return s.crawlDocs(ctx, maxDepth), nil

	case OpRefreshDocs:
		return s.refreshDocs(), nil

	case OpListCachedURLs:
		return s.listCachedURLs(), nil

	case OpCrawlStats:
		return s.crawlStats(), nil

	case OpGetSourceLink:
		query, err := stringArg(args, "query")
		if err != nil {
			return "", err
		}
		return s.getSourceLink(ctx, query), nil
	}
	return "", docdex.Errorf(docdex.ENOTFOUND, "unknown operation: %s", name)
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", docdex.Errorf(docdex.EINVALID, "missing required argument %q", key)
	}
	str, ok := v.(string)
	if !ok {
		return "", docdex.Errorf(docdex.EINVALID, "argument %q must be a string", key)
	}
	return str, nil
}

// intArg reads an optional integer argument. JSON transports deliver
// numbers as float64.
func intArg(args map[string]any, key string, fallback int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, docdex.Errorf(docdex.EINVALID, "argument %q must be an integer", key)
}
