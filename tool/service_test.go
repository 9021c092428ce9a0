package tool_test

import (
	"context"
	"strings"
	"testing"

	"docdex"
	"docdex/cache"
	"docdex/mock"
	"docdex/tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *tool.Service
	cache    *cache.FIFO
	registry *docdex.Registry
	searcher *mock.Searcher
	crawler  *mock.Crawler
	fetcher  *mock.Fetcher
}

func newFixture(cfg *docdex.Config) *fixture {
	f := &fixture{
		cache:    cache.New(cfg.CacheSize),
		registry: docdex.NewRegistry(),
		searcher: &mock.Searcher{
			SearchFn: func(context.Context, string) []docdex.SearchResult { return nil },
		},
		crawler: &mock.Crawler{
			CrawlFn: func(context.Context, []string, int) map[string]*docdex.Page { return nil },
		},
		fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) *docdex.Page {
				return &docdex.Page{URL: url, Err: "Network Error"}
			},
		},
	}
	f.svc = tool.NewService(cfg, f.cache, f.fetcher, f.searcher, f.crawler, f.registry, nil)
	return f
}

func TestCall_unknown_operation(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())

	_, err := f.svc.Call(context.Background(), "reticulate_splines", nil)
	require.Error(t, err)
	assert.Equal(t, docdex.ENOTFOUND, docdex.ErrorCode(err))
}

func TestCall_missing_required_argument(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())

	for _, tt := range []struct {
		op   string
		args map[string]any
	}{
		{tool.OpSearchDocs, map[string]any{}},
		{tool.OpGetSourceLink, nil},
		{tool.OpGetGuidance, map[string]any{"context": "drupal site"}},
		{tool.OpSearchDocs, map[string]any{"query": 42}},
	} {
		_, err := f.svc.Call(context.Background(), tt.op, tt.args)
		require.Error(t, err, "op %s args %v", tt.op, tt.args)
		assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
	}
}

func TestCall_accepts_empty_query(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())
	f.searcher.SearchFn = func(_ context.Context, query string) []docdex.SearchResult {
		return []docdex.SearchResult{{Title: `No results found for ""`, URL: "https://docs.acquia.com/search/?q="}}
	}

	out, err := f.svc.Call(context.Background(), tool.OpSearchDocs, map[string]any{"query": ""})
	require.NoError(t, err)
	assert.Contains(t, out, "No results found")
}

func TestSearchDocs_renders_ranked_results(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())
	f.searcher.SearchFn = func(_ context.Context, query string) []docdex.SearchResult {
		return []docdex.SearchResult{
			{
				Title:     "Multisite setup",
				URL:       "https://docs.acquia.com/site-factory/multisite",
				Relevance: 20,
				Snippet:   "Configure multisite installs.",
				Excerpts:  []string{"A longer excerpt mentioning multisite configuration in detail."},
			},
			{
				Title:     "Site Factory",
				URL:       "https://docs.acquia.com/site-factory",
				Relevance: 5,
			},
		}
	}

	out, err := f.svc.Call(context.Background(), tool.OpSearchDocs, map[string]any{"query": "multisite"})
	require.NoError(t, err)

	assert.Contains(t, out, `Found 2 results for "multisite"`)
	assert.Contains(t, out, "1. **Multisite setup**")
	assert.Contains(t, out, "Summary: Configure multisite installs.")
	assert.Contains(t, out, "Key content:")
	assert.Contains(t, out, "2. **Site Factory**")
}

func TestGetGuidance_includes_topic_banner_and_steps(t *testing.T) {
	t.Parallel()

	cfg := docdex.DefaultConfig()
	topic := cfg.Topics["memcached"]
	f := newFixture(cfg)
	f.searcher.SearchFn = func(_ context.Context, query string) []docdex.SearchResult {
		return []docdex.SearchResult{{
			Title:     topic.Canonical.Title,
			URL:       topic.CanonicalURL,
			Relevance: 1200,
			Snippet:   "Enable Memcached on Cloud Platform.",
		}}
	}

	out, err := f.svc.Call(context.Background(), tool.OpGetGuidance, map[string]any{
		"context":      "Drupal site on Cloud Classic",
		"requirements": "enable memcached in settings.php",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "**Detected: memcached configuration request**")
	assert.Contains(t, out, topic.CanonicalURL)
	assert.Contains(t, out, "```php")
	assert.Contains(t, out, "Implementation steps:")
	assert.Contains(t, out, "composer require drupal/memcache")
}

func TestGetGuidance_without_topic_match(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())
	f.searcher.SearchFn = func(_ context.Context, query string) []docdex.SearchResult {
		return []docdex.SearchResult{{Title: "Site Factory", URL: "https://docs.acquia.com/site-factory"}}
	}

	out, err := f.svc.Call(context.Background(), tool.OpGetGuidance, map[string]any{
		"context":      "drupal",
		"requirements": "multisite",
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "configuration request")
	assert.Contains(t, out, "**Found 1 relevant documentation sources:**")
}

func TestCrawlDocs_merges_new_pages_into_cache(t *testing.T) {
	t.Parallel()

	cfg := docdex.DefaultConfig()
	f := newFixture(cfg)
	f.cache.Put("https://docs.acquia.com/old", &docdex.Page{URL: "https://docs.acquia.com/old", Success: true})

	var gotDepth int
	f.crawler.CrawlFn = func(_ context.Context, seeds []string, maxDepth int) map[string]*docdex.Page {
		gotDepth = maxDepth
		return map[string]*docdex.Page{
			"https://docs.acquia.com/old": {URL: "https://docs.acquia.com/old", Success: true},
			"https://docs.acquia.com/new": {URL: "https://docs.acquia.com/new", Success: true},
		}
	}

	out, err := f.svc.Call(context.Background(), tool.OpCrawlDocs, map[string]any{"max_depth": float64(2)})
	require.NoError(t, err)

	assert.Equal(t, 2, gotDepth)
	assert.Contains(t, out, "Crawled 2 pages.")
	assert.Contains(t, out, "Added 1 new pages to cache.")
	assert.Equal(t, 2, f.cache.Len())
}

func TestCrawlDocs_defaults_max_depth(t *testing.T) {
	t.Parallel()

	cfg := docdex.DefaultConfig()
	f := newFixture(cfg)

	var gotDepth int
	f.crawler.CrawlFn = func(_ context.Context, _ []string, maxDepth int) map[string]*docdex.Page {
		gotDepth = maxDepth
		return nil
	}

	_, err := f.svc.Call(context.Background(), tool.OpCrawlDocs, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxDepth, gotDepth)
}

func TestRefreshDocs_clears_cache_and_registry(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())
	f.cache.Put("https://docs.acquia.com/a", &docdex.Page{Success: true})
	f.registry.Add("https://docs.acquia.com/a")

	out, err := f.svc.Call(context.Background(), tool.OpRefreshDocs, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "Cache cleared")
	assert.Equal(t, 0, f.cache.Len())
	assert.Equal(t, 0, f.registry.Len())
}

func TestListCachedURLs_empty_and_populated(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())

	out, err := f.svc.Call(context.Background(), tool.OpListCachedURLs, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "No cached pages")

	f.cache.Put("https://docs.acquia.com/site-factory/a", &docdex.Page{
		URL:     "https://docs.acquia.com/site-factory/a",
		Title:   "Page A",
		Content: "Body of page A.",
		Success: true,
	})

	out, err = f.svc.Call(context.Background(), tool.OpListCachedURLs, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "1 total")
	assert.Contains(t, out, "**Page A**")
	assert.Contains(t, out, "https://docs.acquia.com/site-factory/a")
}

func TestCrawlStats_groups_by_category(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())
	f.cache.Put("https://docs.acquia.com/site-factory/a", &docdex.Page{
		URL: "https://docs.acquia.com/site-factory/a", Title: "SF A", Success: true,
	})
	f.cache.Put("https://docs.acquia.com/acquia-dam/b", &docdex.Page{
		URL: "https://docs.acquia.com/acquia-dam/b", Title: "DAM B", Success: true,
	})
	f.cache.Put("https://docs.acquia.com/random", &docdex.Page{
		URL: "https://docs.acquia.com/random", Title: "Other", Success: true,
	})

	out, err := f.svc.Call(context.Background(), tool.OpCrawlStats, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "3 total pages")
	assert.Contains(t, out, "**Site Factory** (1 pages):")
	assert.Contains(t, out, "**Acquia Dam** (1 pages):")
	assert.Contains(t, out, "**General** (1 pages):")
}

func TestGetSourceLink_topic_and_fallbacks(t *testing.T) {
	t.Parallel()

	cfg := docdex.DefaultConfig()
	topic := cfg.Topics["memcached"]
	f := newFixture(cfg)
	f.searcher.SearchFn = func(_ context.Context, query string) []docdex.SearchResult {
		return []docdex.SearchResult{{URL: "https://docs.acquia.com/site-factory/best"}}
	}

	out, err := f.svc.Call(context.Background(), tool.OpGetSourceLink, map[string]any{"query": "enable memcached settings.php"})
	require.NoError(t, err)
	assert.Contains(t, out, topic.CanonicalURL)

	out, err = f.svc.Call(context.Background(), tool.OpGetSourceLink, map[string]any{"query": "multisite"})
	require.NoError(t, err)
	assert.Contains(t, out, "https://docs.acquia.com/site-factory/best")
}

func TestPreload_seeds_pinned_canonical_documents(t *testing.T) {
	t.Parallel()

	cfg := docdex.DefaultConfig()
	f := newFixture(cfg)

	f.svc.Preload()

	page, ok := f.cache.Get(cfg.Topics["memcached"].CanonicalURL)
	require.True(t, ok)
	assert.True(t, page.Success)
	assert.True(t, strings.Contains(page.Content, "memcache"))
}

func TestResources_lists_cached_pages(t *testing.T) {
	t.Parallel()

	cfg := docdex.DefaultConfig()
	f := newFixture(cfg)

	resources := f.svc.Resources()

	// Preload guarantees at least the pinned canonical document.
	require.NotEmpty(t, resources)
	assert.Equal(t, tool.ResourceScheme+cfg.Topics["memcached"].CanonicalURL, resources[0].URI)
	assert.Equal(t, "Enabling Memcached on Cloud Platform", resources[0].Name)
	assert.Contains(t, resources[0].Description, "Documentation:")
}

func TestReadResource_cached_fetched_and_missing(t *testing.T) {
	t.Parallel()

	f := newFixture(docdex.DefaultConfig())
	f.cache.Put("https://docs.acquia.com/site-factory/a", &docdex.Page{
		URL:     "https://docs.acquia.com/site-factory/a",
		Title:   "Page A",
		Content: "Body.",
		Success: true,
	})

	out, err := f.svc.ReadResource(context.Background(), tool.ResourceScheme+"https://docs.acquia.com/site-factory/a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Page A"))
	assert.Contains(t, out, "Source: https://docs.acquia.com/site-factory/a")

	f.fetcher.FetchFn = func(_ context.Context, url string) *docdex.Page {
		return &docdex.Page{URL: url, Title: "Fetched", Content: "Fresh.", Success: true}
	}
	out, err = f.svc.ReadResource(context.Background(), tool.ResourceScheme+"https://docs.acquia.com/uncached")
	require.NoError(t, err)
	assert.Contains(t, out, "# Fetched")

	f.fetcher.FetchFn = func(_ context.Context, url string) *docdex.Page {
		return &docdex.Page{URL: url, Err: "Network Error"}
	}
	_, err = f.svc.ReadResource(context.Background(), tool.ResourceScheme+"https://docs.acquia.com/gone")
	require.Error(t, err)
	assert.Equal(t, docdex.ENOTFOUND, docdex.ErrorCode(err))
}
