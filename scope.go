package docdex

import (
	"net/url"
	"strings"
)

// GeneralCategory is assigned to in-scope URLs that match no category
// path marker.
const GeneralCategory = "general"

// Scope decides whether a URL is in-scope for crawling and which product
// category it belongs to. The policy is deny-list, not allow-list: every
// path under the documentation host that hits no exclusion rule is
// in-scope, favoring recall over precision.
//
// Category assignment is purely syntactic and total: every URL maps to
// exactly one category, deterministically.
type Scope struct {
	// Host is the documentation host (e.g. "docs.example.com"). URLs on
	// any other host are out of scope.
	Host string

	// ExcludedPaths are substrings that disqualify a path
	// (login/admin/account-management paths, feed/sitemap endpoints).
	ExcludedPaths []string

	// ExcludedExtensions disqualify paths by suffix (images, archives,
	// stylesheets, scripts).
	ExcludedExtensions []string

	// AssetMarkers are internal asset path segments
	// (theme/module/core/site-internals).
	AssetMarkers []string

	// Categories are product category names checked in order against the
	// path as "/<name>" markers. The first match wins.
	Categories []string
}

// InScope reports whether rawURL is an in-scope documentation page.
func (s *Scope) InScope(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != s.Host {
		return false
	}

	path := strings.ToLower(u.Path)

	for _, p := range s.ExcludedPaths {
		if strings.Contains(path, p) {
			return false
		}
	}
	for _, ext := range s.ExcludedExtensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}

	if !strings.HasPrefix(path, "/") || len(path) <= 1 {
		return false
	}
	for _, m := range s.AssetMarkers {
		if strings.Contains(path, m) {
			return false
		}
	}
	return true
}

// Category returns the product category for rawURL. URLs matching no
// category marker (including unparseable ones) are assigned
// GeneralCategory.
func (s *Scope) Category(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return GeneralCategory
	}
	path := strings.ToLower(u.Path)
	for _, name := range s.Categories {
		if strings.Contains(path, "/"+name) {
			return name
		}
	}
	return GeneralCategory
}
