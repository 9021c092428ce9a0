package search_test

import (
	"context"
	"strings"
	"testing"

	"docdex"
	"docdex/mock"
	"docdex/relevance"
	"docdex/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchConfig() *docdex.Config {
	cfg := docdex.DefaultConfig()
	cfg.EntryPoints = []string{
		"https://docs.acquia.com/site-factory/overview",
		"https://docs.acquia.com/acquia-dam/overview",
	}
	cfg.Categories = []string{"site-factory", "acquia-dam"}
	return cfg
}

func fetcherFor(pages map[string]*docdex.Page) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) *docdex.Page {
			if p, ok := pages[url]; ok {
				return p
			}
			return &docdex.Page{URL: url, Err: "Network Error"}
		},
	}
}

func newSearcher(cfg *docdex.Config, pages map[string]*docdex.Page, discoverer docdex.SearchDiscoverer) *search.Searcher {
	return search.NewSearcher(cfg, fetcherFor(pages), relevance.NewScorer(cfg.Topics), discoverer, nil)
}

func TestSearch_ranks_by_relevance(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	pages := map[string]*docdex.Page{
		"https://docs.acquia.com/site-factory/overview": {
			URL:     "https://docs.acquia.com/site-factory/overview",
			Title:   "Site Factory",
			Content: "One mention of multisite here.",
			Success: true,
		},
		"https://docs.acquia.com/acquia-dam/overview": {
			URL:     "https://docs.acquia.com/acquia-dam/overview",
			Title:   "Acquia DAM",
			Content: strings.Repeat("multisite notes. ", 5),
			Success: true,
		},
	}
	s := newSearcher(cfg, pages, nil)

	results := s.Search(context.Background(), "multisite")

	require.Len(t, results, 2)
	assert.Equal(t, "https://docs.acquia.com/acquia-dam/overview", results[0].URL)
	assert.Greater(t, results[0].Relevance, results[1].Relevance)
	assert.NotEmpty(t, results[0].Snippet)
}

func TestSearch_returns_placeholder_when_nothing_matches(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	pages := map[string]*docdex.Page{
		"https://docs.acquia.com/site-factory/overview": {
			URL:     "https://docs.acquia.com/site-factory/overview",
			Title:   "Site Factory",
			Content: "Nothing relevant here.",
			Success: true,
		},
	}
	s := newSearcher(cfg, pages, nil)

	results := s.Search(context.Background(), "kubernetes")

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Title, "No results found")
	assert.Equal(t, cfg.SearchURL("kubernetes"), results[0].URL)
	assert.Equal(t, 0, results[0].Relevance)
}

func TestSearch_empty_query_returns_placeholder(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	pages := map[string]*docdex.Page{
		"https://docs.acquia.com/site-factory/overview": {
			URL:     "https://docs.acquia.com/site-factory/overview",
			Title:   "Site Factory",
			Content: "Plenty of content that must not match an empty query.",
			Success: true,
		},
	}
	s := newSearcher(cfg, pages, nil)

	results := s.Search(context.Background(), "")

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Title, "No results found")
}

func TestSearch_uses_site_search_discovery(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	discovered := "https://docs.acquia.com/site-factory/multisite-setup"
	pages := map[string]*docdex.Page{
		discovered: {
			URL:     discovered,
			Title:   "Multisite setup",
			Content: "How to configure multisite installations.",
			Success: true,
		},
	}
	var gotLimit int
	discoverer := &mock.SearchDiscoverer{
		DiscoverFn: func(_ context.Context, _ string, limit int) ([]string, error) {
			gotLimit = limit
			return []string{discovered}, nil
		},
	}
	s := newSearcher(cfg, pages, discoverer)

	results := s.Search(context.Background(), "multisite")

	require.Len(t, results, 1)
	assert.Equal(t, discovered, results[0].URL)
	assert.Equal(t, cfg.SearchDiscoveryLimit, gotLimit)
}

func TestSearch_survives_discovery_failure(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	pages := map[string]*docdex.Page{
		"https://docs.acquia.com/site-factory/overview": {
			URL:     "https://docs.acquia.com/site-factory/overview",
			Title:   "Multisite overview",
			Content: "Managing multisite installations at scale.",
			Success: true,
		},
	}
	discoverer := &mock.SearchDiscoverer{
		DiscoverFn: func(context.Context, string, int) ([]string, error) {
			return nil, docdex.Errorf(docdex.EUNAVAILABLE, "search endpoint down")
		},
	}
	s := newSearcher(cfg, pages, discoverer)

	results := s.Search(context.Background(), "multisite")

	require.Len(t, results, 1)
	assert.Equal(t, "https://docs.acquia.com/site-factory/overview", results[0].URL)
}

func TestSearch_expands_links_from_high_relevance_pages(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	deep := "https://docs.acquia.com/site-factory/multisite-deployment"
	pages := map[string]*docdex.Page{
		"https://docs.acquia.com/site-factory/overview": {
			URL:     "https://docs.acquia.com/site-factory/overview",
			Title:   "Multisite",
			Content: strings.Repeat("multisite ", 30),
			Links:   []string{deep},
			Success: true,
		},
		deep: {
			URL:     deep,
			Title:   "Multisite deployment",
			Content: "Deploying a multisite tree.",
			Success: true,
		},
	}
	s := newSearcher(cfg, pages, nil)

	results := s.Search(context.Background(), "multisite")

	require.Len(t, results, 2)
	urls := []string{results[0].URL, results[1].URL}
	assert.Contains(t, urls, deep)
}

func TestSearch_expands_links_from_overview_pages(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	deep := "https://docs.acquia.com/site-factory/varnish-caching"
	pages := map[string]*docdex.Page{
		"https://docs.acquia.com/site-factory/overview": {
			URL:     "https://docs.acquia.com/site-factory/overview",
			Title:   "Site Factory",
			Content: "Product overview without the query term.",
			Links:   []string{deep},
			Success: true,
		},
		deep: {
			URL:     deep,
			Title:   "Varnish caching",
			Content: "Tuning varnish for high traffic sites.",
			Success: true,
		},
	}
	s := newSearcher(cfg, pages, nil)

	results := s.Search(context.Background(), "varnish")

	require.Len(t, results, 1)
	assert.Equal(t, deep, results[0].URL)
}

func TestSearch_injects_pinned_canonical_document(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	pages := map[string]*docdex.Page{
		"https://docs.acquia.com/site-factory/overview": {
			URL:     "https://docs.acquia.com/site-factory/overview",
			Title:   "Site Factory",
			Content: "Nothing about caching backends.",
			Success: true,
		},
	}
	s := newSearcher(cfg, pages, nil)

	results := s.Search(context.Background(), "enable memcached settings.php")

	require.NotEmpty(t, results)
	topic := cfg.Topics["memcached"]
	assert.Equal(t, topic.CanonicalURL, results[0].URL)
	assert.Greater(t, results[0].Relevance, 1000)
}

func TestSearch_does_not_duplicate_pinned_document(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	topic := cfg.Topics["memcached"]
	cfg.EntryPoints = []string{topic.CanonicalURL}
	pages := map[string]*docdex.Page{
		topic.CanonicalURL: topic.Canonical,
	}
	s := newSearcher(cfg, pages, nil)

	results := s.Search(context.Background(), "enable memcached settings.php")

	count := 0
	for _, r := range results {
		if r.URL == topic.CanonicalURL {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, topic.CanonicalURL, results[0].URL)
}

func TestSearch_truncates_to_result_limit(t *testing.T) {
	t.Parallel()

	cfg := searchConfig()
	cfg.ResultLimit = 2
	cfg.EntryPoints = []string{
		"https://docs.acquia.com/site-factory/a",
		"https://docs.acquia.com/site-factory/b",
		"https://docs.acquia.com/site-factory/c",
	}
	pages := make(map[string]*docdex.Page)
	for _, u := range cfg.EntryPoints {
		pages[u] = &docdex.Page{
			URL:     u,
			Title:   "Multisite page",
			Content: "multisite content",
			Success: true,
		}
	}
	s := newSearcher(cfg, pages, nil)

	results := s.Search(context.Background(), "multisite")

	assert.Len(t, results, 2)
}
