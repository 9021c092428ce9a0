// Package search orchestrates query answering: candidate gathering,
// scoring, two-hop link expansion, and pinned-topic injection.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"docdex"
)

// searchConcurrency bounds parallel page prefetches within one query.
const searchConcurrency = 4

var _ docdex.Searcher = (*Searcher)(nil)

// Searcher answers free-text queries over the documentation site.
//
// A search runs in two waves. The first wave scores a fixed candidate
// set: the configured entry points, the category root pages, and a
// best-effort batch from the site's own search endpoint. The second
// wave follows outbound links from first-wave pages that either scored
// above the high-relevance threshold or are product overview pages.
type Searcher struct {
	fetcher    docdex.Fetcher
	scorer     docdex.Scorer
	discoverer docdex.SearchDiscoverer // optional
	scope      *docdex.Scope
	logger     *slog.Logger
	cfg        *docdex.Config
}

// NewSearcher creates a Searcher. The fetcher is expected to be
// cache-first so repeated queries do not refetch the candidate set.
// discoverer may be nil to disable site search discovery.
func NewSearcher(cfg *docdex.Config, fetcher docdex.Fetcher, scorer docdex.Scorer, discoverer docdex.SearchDiscoverer, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Searcher{
		fetcher:    fetcher,
		scorer:     scorer,
		discoverer: discoverer,
		scope:      cfg.Scope(),
		logger:     logger,
		cfg:        cfg,
	}
}

// Search returns ranked results for query, never an error. When nothing
// matches it returns a single placeholder entry carrying the site's
// manual search URL.
func (s *Searcher) Search(ctx context.Context, query string) []docdex.SearchResult {
	candidates := s.candidates(ctx, query)
	pages := s.fetchAll(ctx, candidates)

	seen := make(map[string]bool, len(candidates))
	for _, url := range candidates {
		seen[url] = true
	}

	var results []docdex.SearchResult
	var expand []string
	for _, url := range candidates {
		page := pages[url]
		if page == nil || !page.Success {
			continue
		}
		score := s.scorer.Score(query, page)
		if score > 0 {
			results = append(results, s.result(query, page, score))
			if score > s.cfg.HighRelevance {
				expand = s.expandable(expand, seen, page.Links, s.cfg.ExpandLinks)
			}
		} else if isOverviewURL(url) {
			// Overview pages are link hubs; follow their links even
			// when the page itself does not match.
			expand = s.expandable(expand, seen, page.Links, s.cfg.OverviewExpandLinks)
		}
	}

	expanded := s.fetchAll(ctx, expand)
	for _, url := range expand {
		page := expanded[url]
		if page == nil || !page.Success {
			continue
		}
		if score := s.scorer.Score(query, page); score > 0 {
			results = append(results, s.result(query, page, score))
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	results = s.injectPinned(query, results)

	if len(results) == 0 {
		return []docdex.SearchResult{s.placeholder(query)}
	}
	if len(results) > s.cfg.ResultLimit {
		results = results[:s.cfg.ResultLimit]
	}
	return results
}

// candidates returns the first-wave URL set: entry points, category
// roots, and site search discoveries, deduplicated in that order.
func (s *Searcher) candidates(ctx context.Context, query string) []string {
	seen := make(map[string]bool)
	var urls []string
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}

	for _, u := range s.cfg.EntryPoints {
		add(u)
	}
	for _, u := range s.cfg.CategoryRoots() {
		add(u)
	}

	if s.discoverer != nil {
		found, err := s.discoverer.Discover(ctx, query, s.cfg.SearchDiscoveryLimit)
		if err != nil {
			s.logger.Warn("site search discovery failed", "query", query, "err", err)
		} else {
			for _, u := range found {
				add(u)
			}
		}
	}
	return urls
}

// fetchAll fetches urls with bounded parallelism and returns them keyed
// by URL. Fetch never fails, so no fetch aborts the group.
func (s *Searcher) fetchAll(ctx context.Context, urls []string) map[string]*docdex.Page {
	pages := make(map[string]*docdex.Page, len(urls))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(searchConcurrency)
	for _, url := range urls {
		g.Go(func() error {
			page := s.fetcher.Fetch(gctx, url)
			mu.Lock()
			pages[url] = page
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return pages
}

// expandable collects up to limit of page links for the second wave.
// The limit counts considered links, so a page full of already-seen or
// out-of-scope links contributes nothing.
func (s *Searcher) expandable(dst []string, seen map[string]bool, links []string, limit int) []string {
	for i, link := range links {
		if i >= limit {
			break
		}
		if seen[link] || !s.scope.InScope(link) {
			continue
		}
		seen[link] = true
		dst = append(dst, link)
	}
	return dst
}

func (s *Searcher) result(query string, page *docdex.Page, score int) docdex.SearchResult {
	return docdex.SearchResult{
		Title:     page.Title,
		URL:       page.URL,
		Relevance: score,
		Snippet:   s.scorer.Snippet(query, page.Content, s.cfg.SnippetLength),
		Excerpts:  s.scorer.Excerpts(query, page.Content, s.cfg.ExcerptCount),
		Content:   page.Content,
	}
}

// injectPinned prepends the canonical document of a matched pinned
// topic when it is not already among the results. Injection happens
// after sorting so the canonical page holds the first rank regardless
// of its score.
func (s *Searcher) injectPinned(query string, results []docdex.SearchResult) []docdex.SearchResult {
	topic := s.cfg.MatchTopic(query)
	if topic == nil || topic.Canonical == nil {
		return results
	}
	for _, r := range results {
		if r.URL == topic.CanonicalURL {
			return results
		}
	}

	score := s.scorer.Score(query, topic.Canonical)
	s.logger.Info("injected pinned topic document", "topic", topic.Name, "query", query, "score", score)
	return append([]docdex.SearchResult{s.result(query, topic.Canonical, score)}, results...)
}

func (s *Searcher) placeholder(query string) docdex.SearchResult {
	return docdex.SearchResult{
		Title:   fmt.Sprintf("No results found for %q", query),
		URL:     s.cfg.SearchURL(query),
		Snippet: fmt.Sprintf("No matching content found in the documentation for %q. Try the manual search link or use different keywords.", query),
	}
}

func isOverviewURL(url string) bool {
	return strings.Contains(url, "overview") || strings.Contains(url, "web-governance")
}
