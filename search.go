package docdex

import "context"

// SearchResult represents one ranked search match. Results are transient,
// constructed and returned within a single query call.
type SearchResult struct {
	Title     string
	URL       string
	Relevance int // always >= 0
	Snippet   string
	Excerpts  []string
	Content   string
}

// Searcher answers free-text queries with ranked results.
//
// Implementations favor returning a partial or placeholder answer over
// raising: an empty match set yields a single placeholder entry carrying
// a manual-search fallback URL, never an error.
type Searcher interface {
	Search(ctx context.Context, query string) []SearchResult
}

// SearchDiscoverer finds additional candidate URLs for a query using the
// target site's own search endpoint. It is best-effort: failures degrade
// candidate coverage but never abort a search.
type SearchDiscoverer interface {
	Discover(ctx context.Context, query string, limit int) ([]string, error)
}

// Scorer scores a page against a query and extracts representative text.
type Scorer interface {
	// Score returns a non-negative relevance score for page given query.
	Score(query string, page *Page) int

	// Snippet extracts up to two matching sentences from content,
	// truncated to maxLen characters with an ellipsis.
	Snippet(query, content string, maxLen int) string

	// Excerpts extracts up to maxCount content blocks containing a query
	// word, preserving original order.
	Excerpts(query, content string, maxCount int) []string
}
