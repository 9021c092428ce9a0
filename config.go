package docdex

import (
	"net/url"
	"strings"
	"time"
)

// Config holds the crawl and search policy for one documentation site.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// BaseURL is the root of the documentation site.
	BaseURL string

	// EntryPoints are the known documentation entry pages used to seed
	// crawls and searches.
	EntryPoints []string

	// Crawler limits.
	MaxDepth            int
	MaxPagesPerCategory int
	SameCategoryFanout  int
	OtherCategoryFanout int
	RequestDelay        time.Duration

	// CacheSize is the page cache capacity.
	CacheSize int

	// Search tuning.
	ResultLimit          int
	SnippetLength        int
	ExcerptCount         int
	MinBlockLength       int
	HighRelevance        int // score above which outbound links are expanded
	ExpandLinks          int // links followed from a high-relevance page
	OverviewExpandLinks  int // links followed from an overview page
	SearchDiscoveryLimit int // candidates taken from the site search endpoint

	// Scope policy.
	ExcludedPaths      []string
	ExcludedExtensions []string
	AssetMarkers       []string
	Categories         []string

	// Topics are the pinned-topic rules, keyed by name.
	Topics map[string]*Topic
}

// DefaultConfig returns the configuration for the Acquia documentation
// site, including the pinned Memcached topic.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://docs.acquia.com/",
		EntryPoints: []string{
			"https://docs.acquia.com/acquia-source/overview",
			"https://docs.acquia.com/campaign-studio/overview",
			"https://docs.acquia.com/content-optimization/overview",
			"https://docs.acquia.com/conversion-optimization/overview",
			"https://docs.acquia.com/customer-data-platform/overview-0",
			"https://docs.acquia.com/acquia-cloud-platform/overview",
			"https://docs.acquia.com/acquia-dam/overview",
			"https://docs.acquia.com/drupal-starter-kits/overview",
			"https://docs.acquia.com/site-factory/overview",
			"https://docs.acquia.com/web-governance/overview",
		},
		MaxDepth:            5,
		MaxPagesPerCategory: 75,
		SameCategoryFanout:  25,
		OtherCategoryFanout: 8,
		RequestDelay:        500 * time.Millisecond,
		CacheSize:           1000,

		ResultLimit:          10,
		SnippetLength:        300,
		ExcerptCount:         3,
		MinBlockLength:       30,
		HighRelevance:        50,
		ExpandLinks:          20,
		OverviewExpandLinks:  30,
		SearchDiscoveryLimit: 20,

		ExcludedPaths: []string{
			"/user/login", "/user/register", "/user/password", "/user/logout",
			"/admin/", "/taxonomy/term/", "/node/add",
			"/contact", "/rss.xml", "/sitemap.xml",
		},
		ExcludedExtensions: []string{
			".jpg", ".jpeg", ".png", ".gif", ".pdf", ".zip", ".tar.gz", ".css", ".js",
		},
		AssetMarkers: []string{"/themes/", "/modules/", "/core/", "/sites/default"},
		Categories: []string{
			"acquia-source",
			"campaign-studio",
			"content-optimization",
			"conversion-optimization",
			"customer-data-platform",
			"acquia-cloud-platform",
			"acquia-dam",
			"drupal-starter-kits",
			"site-factory",
			"web-governance",
		},

		Topics: map[string]*Topic{
			"memcached": memcachedTopic(),
		},
	}
}

// Scope builds the URL classifier for this configuration.
func (c *Config) Scope() *Scope {
	host := ""
	if u, err := url.Parse(c.BaseURL); err == nil {
		host = u.Host
	}
	return &Scope{
		Host:               host,
		ExcludedPaths:      c.ExcludedPaths,
		ExcludedExtensions: c.ExcludedExtensions,
		AssetMarkers:       c.AssetMarkers,
		Categories:         c.Categories,
	}
}

// CategoryRoots returns the top-level page for each configured category.
// Together with EntryPoints these form the search candidate set.
func (c *Config) CategoryRoots() []string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	roots := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		roots = append(roots, base+"/"+cat)
	}
	return roots
}

// SearchURL returns the site's manual search URL for query, used both
// for best-effort candidate discovery and as the no-results fallback.
func (c *Config) SearchURL(query string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/search/?q=" + url.QueryEscape(query)
}

// MatchTopic returns the first pinned topic whose rule matches query, or
// nil if none match.
func (c *Config) MatchTopic(query string) *Topic {
	for _, t := range c.Topics {
		if t.MatchQuery(query) {
			return t
		}
	}
	return nil
}
