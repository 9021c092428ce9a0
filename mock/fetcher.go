package mock

import (
	"context"

	"docdex"
)

var _ docdex.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docdex.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) *docdex.Page
}

func (f *Fetcher) Fetch(ctx context.Context, url string) *docdex.Page {
	return f.FetchFn(ctx, url)
}

var _ docdex.Parser = (*Parser)(nil)

// Parser is a mock implementation of docdex.Parser.
type Parser struct {
	ParseFn func(pageURL string, html string) (*docdex.ParseResult, error)
}

func (p *Parser) Parse(pageURL string, html string) (*docdex.ParseResult, error) {
	return p.ParseFn(pageURL, html)
}

var _ docdex.Converter = (*Converter)(nil)

// Converter is a mock implementation of docdex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
