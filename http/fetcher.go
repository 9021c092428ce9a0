// Package http provides the HTTP implementation of docdex.Fetcher and
// best-effort candidate discovery through the site's search endpoint.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"docdex"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMaxResponseBytes caps response bodies to protect memory.
const DefaultMaxResponseBytes = 5 << 20 // 5 MiB

// defaultUserAgent mimics a desktop browser; some documentation hosts
// serve reduced markup to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Compile-time interface verification.
var _ docdex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation pages over HTTP and parses them into
// structured Page records. Per the docdex.Fetcher contract Fetch never
// fails: every network or parse problem is converted into a Page with
// Success=false and a human-readable classification.
type Fetcher struct {
	client    *http.Client
	parser    docdex.Parser
	converter docdex.Converter
	registry  *docdex.Registry

	timeout  time.Duration
	maxBytes int64
	referer  string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithMaxResponseBytes caps the response body size.
// Defaults to DefaultMaxResponseBytes.
func WithMaxResponseBytes(n int64) Option {
	return func(f *Fetcher) { f.maxBytes = n }
}

// WithReferer sets the Referer header sent with each request.
func WithReferer(referer string) Option {
	return func(f *Fetcher) { f.referer = referer }
}

// WithRegistry records every discovered link in the given registry.
func WithRegistry(r *docdex.Registry) Option {
	return func(f *Fetcher) { f.registry = r }
}

// NewFetcher creates a Fetcher that parses pages with parser and renders
// content with converter.
func NewFetcher(parser docdex.Parser, converter docdex.Converter, opts ...Option) *Fetcher {
	f := &Fetcher{
		parser:    parser,
		converter: converter,
		timeout:   DefaultFetchTimeout,
		maxBytes:  DefaultMaxResponseBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch retrieves and parses the page at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) *docdex.Page {
	body, err := f.get(ctx, url)
	if err != nil {
		return failedPage(url, "Network Error", fmt.Sprintf("network error: %v", err))
	}

	if int64(len(body)) > f.maxBytes {
		return failedPage(url, "Parse Error", "parse error: response too large")
	}

	parsed, err := f.parser.Parse(url, string(body))
	if err != nil {
		return failedPage(url, "Parse Error", fmt.Sprintf("parse error: %v", err))
	}

	content, err := f.converter.Convert(parsed.ContentHTML)
	if err != nil {
		return failedPage(url, "Parse Error", fmt.Sprintf("parse error: %v", err))
	}

	if f.registry != nil {
		for _, link := range parsed.Links {
			f.registry.Add(link)
		}
	}

	return &docdex.Page{
		URL:     url,
		Title:   parsed.Title,
		Content: content,
		Links:   parsed.Links,
		Success: true,
	}
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if f.referer != "" {
		req.Header.Set("Referer", f.referer)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	// Read one byte past the cap so oversized bodies are detectable.
	return io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
}

func failedPage(url, title, detail string) *docdex.Page {
	return &docdex.Page{
		URL:     url,
		Title:   title,
		Content: detail,
		Err:     detail,
	}
}
