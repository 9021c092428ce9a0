// Package goquery provides HTML parsing for documentation pages: title
// extraction, main content region selection, and outbound link discovery.
package goquery

import (
	"net/url"
	"strings"

	"docdex"

	"github.com/PuerkitoBio/goquery"
)

// Compile-time interface verification.
var _ docdex.Parser = (*Parser)(nil)

// boilerplateSelector matches elements removed before content extraction.
const boilerplateSelector = "script, style, nav, footer, header, aside, iframe"

// contentSelectors are tried in order; the first match becomes the main
// content region. The list covers the content wrappers used by Drupal
// themes, most to least specific.
var contentSelectors = []string{
	"div.node__content",
	"div.field--name-body",
	"div.field-item",
	"article",
	"main",
	"div.content",
	"div#content",
	"div.region-content",
	"div.block-system-main-block",
	"div.layout-content",
	"section.block-layout-builder",
	"div.views-element-container",
}

// titleSelectors are tried in order for the page title.
var titleSelectors = []string{
	"h1.page-title",
	"h1.title",
	"h1",
	"title",
}

// navSelectors find links in navigation structures that plain anchor
// scanning inside the content region would miss.
var navSelectors = []string{
	"nav a", ".menu a", ".sidebar a", ".navigation a",
	".toc a", ".table-of-contents a", ".book-navigation a",
	".region-sidebar a", ".block-menu a", ".breadcrumb a",
	".pager a", ".item-list a", ".view-content a",
	".field--name-field-related-content a",
	".block-views a", ".views-row a",
}

// Parser extracts structured page data from raw HTML.
type Parser struct {
	// Scope filters discovered links; out-of-scope links are dropped.
	Scope *docdex.Scope
}

// NewParser creates a Parser that keeps only links accepted by scope.
func NewParser(scope *docdex.Scope) *Parser {
	return &Parser{Scope: scope}
}

// Parse extracts the title, main content region, and in-scope outbound
// links from html. Relative links are resolved against pageURL and URL
// fragments are stripped. Links back to pageURL itself are dropped.
func (p *Parser) Parse(pageURL string, html string) (*docdex.ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}

	// Links are collected before boilerplate removal so navigation
	// structures still contribute.
	links := p.extractLinks(doc, base, pageURL)

	doc.Find(boilerplateSelector).Remove()

	return &docdex.ParseResult{
		Title:       extractTitle(doc),
		ContentHTML: extractContent(doc),
		Links:       links,
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, sel := range titleSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			title := strings.TrimSpace(s.Text())
			if title == "" {
				continue
			}
			// Drop the site name suffix ("Page Title | Acquia Docs").
			if idx := strings.Index(title, " | "); idx != -1 {
				title = strings.TrimSpace(title[:idx])
			}
			return title
		}
	}
	return "Untitled"
}

func extractContent(doc *goquery.Document) string {
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			if html, err := goquery.OuterHtml(s); err == nil {
				return html
			}
		}
	}
	if html, err := doc.Find("body").First().Html(); err == nil && html != "" {
		return html
	}
	return ""
}

func (p *Parser) extractLinks(doc *goquery.Document, base *url.URL, pageURL string) []string {
	seen := make(map[string]struct{})
	var links []string

	collect := func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		resolved.Fragment = ""
		full := resolved.String()

		if full == pageURL {
			return
		}
		if _, dup := seen[full]; dup {
			return
		}
		if p.Scope != nil && !p.Scope.InScope(full) {
			return
		}
		seen[full] = struct{}{}
		links = append(links, full)
	}

	doc.Find("a[href]").Each(collect)
	for _, sel := range navSelectors {
		doc.Find(sel).Each(collect)
	}
	return links
}
