package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"docdex"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSearchTimeout bounds the best-effort site search request. It is
// shorter than the page fetch timeout since a slow search endpoint should
// not stall the whole query.
const DefaultSearchTimeout = 10 * time.Second

// Compile-time interface verification.
var _ docdex.SearchDiscoverer = (*SiteSearch)(nil)

// SiteSearch discovers candidate URLs for a query by scraping the result
// links of the documentation site's own search endpoint. Callers treat
// failures as non-fatal: a broken search endpoint only reduces candidate
// coverage.
type SiteSearch struct {
	client *http.Client
	config *docdex.Config
	scope  *docdex.Scope
}

// NewSiteSearch creates a SiteSearch for the configured site.
func NewSiteSearch(config *docdex.Config) *SiteSearch {
	return &SiteSearch{
		client: &http.Client{Timeout: DefaultSearchTimeout},
		config: config,
		scope:  config.Scope(),
	}
}

// Discover returns up to limit in-scope URLs linked from the site's
// search results for query.
func (s *SiteSearch) Discover(ctx context.Context, query string, limit int) ([]string, error) {
	searchURL := s.config.SearchURL(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, docdex.Errorf(docdex.EUNAVAILABLE, "site search unavailable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, docdex.Errorf(docdex.EUNAVAILABLE, "site search returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, DefaultMaxResponseBytes))
	if err != nil {
		return nil, err
	}

	return s.extractResultLinks(string(body), limit)
}

func (s *SiteSearch) extractResultLinks(html string, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}

	base, err := url.Parse(s.config.BaseURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var links []string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		resolved := base.ResolveReference(ref)
		resolved.Fragment = ""
		full := resolved.String()

		if !s.scope.InScope(full) {
			return true
		}
		if _, dup := seen[full]; dup {
			return true
		}
		seen[full] = struct{}{}
		links = append(links, full)
		return len(links) < limit
	})

	return links, nil
}
