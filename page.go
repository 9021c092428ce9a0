package docdex

import "context"

// Page represents a fetched documentation page. A Page is immutable once
// created; re-fetching a URL produces a new Page that replaces any prior
// record for the same URL on cache insertion.
type Page struct {
	URL     string
	Title   string
	Content string // plain text, newline-separated blocks
	Links   []string
	Success bool
	Err     string // human-readable failure classification when !Success
}

// Fetcher retrieves and parses documentation pages.
//
// Fetch never returns an error: network and parse failures are converted
// into a Page with Success=false and a human-readable classification in
// Err. The context controls timeout and cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) *Page
}

// PageCache is a bounded key-value store of fetched pages with strict
// FIFO eviction: when full, Put evicts the entry inserted earliest among
// those currently present. A Get does not refresh recency. A Get on a
// miss does not fetch; fetching is the caller's responsibility.
type PageCache interface {
	// Get returns the cached page for url. The bool result is false on
	// a miss.
	Get(url string) (*Page, bool)

	// Put inserts a page, evicting the oldest entry if the cache is at
	// capacity. Replacing an existing URL keeps its insertion position.
	Put(url string, page *Page)

	// Clear empties the cache and any auxiliary per-URL bookkeeping.
	Clear()

	// Len returns the number of cached pages.
	Len() int

	// URLs returns the cached URLs in insertion order.
	URLs() []string
}

// ParseResult holds the structured content extracted from raw HTML.
type ParseResult struct {
	Title       string
	ContentHTML string   // main content region with boilerplate removed
	Links       []string // absolute URLs, fragments stripped
}

// Parser extracts the title, main content region, and outbound links
// from an HTML page. The pageURL is used to resolve relative links.
type Parser interface {
	Parse(pageURL string, html string) (*ParseResult, error)
}

// Converter converts clean content HTML into plain text blocks.
type Converter interface {
	Convert(html string) (string, error)
}
