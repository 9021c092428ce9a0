package tool

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"docdex"
)

const (
	resultSeparator    = "\n" + "============================================================" + "\n"
	previewLength      = 100
	excerptTruncateLen = 400
	statsPagesPerGroup = 5
)

// getGuidance answers a combined context + requirements query and
// renders results with topic-aware framing.
func (s *Service) getGuidance(ctx context.Context, userContext, requirements string) string {
	query := userContext + " " + requirements
	results := s.searcher.Search(ctx, query)

	var b strings.Builder
	fmt.Fprintf(&b, "**Guidance for: %s**\n\n", requirements)
	fmt.Fprintf(&b, "**Context:** %s\n\n", userContext)

	topic := s.cfg.MatchTopic(query)
	if topic != nil && topic.Canonical != nil {
		fmt.Fprintf(&b, "**Detected: %s configuration request**\n\n", topic.Name)
		fmt.Fprintf(&b, "**Source documentation:** %s\n\n", topic.CanonicalURL)
		if snippet := codeBlock(topic.Canonical.Content); snippet != "" {
			b.WriteString(snippet + "\n\n")
		}
	}

	fmt.Fprintf(&b, "**Found %d relevant documentation sources:**\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, r.Title)
		fmt.Fprintf(&b, "   Source: %s\n", r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   Key info: %s\n", r.Snippet)
		}
		if topic != nil && r.URL == topic.CanonicalURL && len(topic.Steps) > 0 {
			b.WriteString("\n   Implementation steps:\n")
			for j, step := range topic.Steps {
				fmt.Fprintf(&b, "   %d. %s\n", j+1, step)
			}
			fmt.Fprintf(&b, "   Complete documentation: %s\n", r.URL)
		}
		b.WriteString(resultSeparator)
	}
	return b.String()
}

// searchDocs renders ranked search results with snippets and excerpts.
func (s *Service) searchDocs(ctx context.Context, query string) string {
	results := s.searcher.Search(ctx, query)

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results for %q:\n\n", len(results), query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, r.Title)
		fmt.Fprintf(&b, "   Source: %s\n", r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   Summary: %s\n", r.Snippet)
		}
		if len(r.Excerpts) > 0 {
			b.WriteString("\n   Key content:\n")
			for _, excerpt := range r.Excerpts {
				if len(excerpt) > excerptTruncateLen {
					excerpt = excerpt[:excerptTruncateLen] + "..."
				}
				fmt.Fprintf(&b, "   - %s\n", excerpt)
			}
		}
		fmt.Fprintf(&b, "\n   Complete documentation: %s\n", r.URL)
		b.WriteString(resultSeparator)
	}
	return b.String()
}

// crawlDocs runs a crawl from the configured entry points and merges
// newly discovered pages into the cache.
func (s *Service) crawlDocs(ctx context.Context, maxDepth int) string {
	before := make(map[string]bool)
	for _, url := range s.cache.URLs() {
		before[url] = true
	}

	pages := s.crawler.Crawl(ctx, s.cfg.EntryPoints, maxDepth)

	added := 0
	for url, page := range pages {
		if before[url] {
			continue
		}
		if _, ok := s.cache.Get(url); !ok {
			s.cache.Put(url, page)
		}
		added++
	}
	return fmt.Sprintf("Crawled %d pages. Added %d new pages to cache. Cache now has %d pages.",
		len(pages), added, s.cache.Len())
}

func (s *Service) refreshDocs() string {
	s.cache.Clear()
	if s.registry != nil {
		s.registry.Clear()
	}
	return "Cache cleared. Searches fetch fresh content until the next crawl."
}

func (s *Service) listCachedURLs() string {
	urls := s.cache.URLs()
	if len(urls) == 0 {
		return "No cached pages. Run refresh_docs or crawl_docs first."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Cached documentation pages (%d total):**\n\n", len(urls))
	for i, url := range urls {
		page, ok := s.cache.Get(url)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, page.Title)
		fmt.Fprintf(&b, "   %s\n", url)
		fmt.Fprintf(&b, "   %s...\n\n", preview(page.Content))
	}
	return b.String()
}

// crawlStats groups cached pages by product category.
func (s *Service) crawlStats() string {
	urls := s.cache.URLs()
	if len(urls) == 0 {
		return "No cached pages. Run refresh_docs or crawl_docs first."
	}

	groups := make(map[string][]*docdex.Page)
	for _, url := range urls {
		page, ok := s.cache.Get(url)
		if !ok {
			continue
		}
		category := s.scope.Category(url)
		groups[category] = append(groups[category], page)
	}

	categories := make([]string, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var b strings.Builder
	fmt.Fprintf(&b, "**Crawl statistics (%d total pages):**\n\n", len(urls))
	for _, category := range categories {
		pages := groups[category]
		fmt.Fprintf(&b, "**%s** (%d pages):\n", categoryTitle(category), len(pages))
		for i, page := range pages {
			if i >= statsPagesPerGroup {
				fmt.Fprintf(&b, "  ... and %d more pages\n", len(pages)-statsPagesPerGroup)
				break
			}
			fmt.Fprintf(&b, "  - %s\n    %s\n", page.Title, page.URL)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// getSourceLink resolves the best official documentation URL for a
// query: the pinned canonical document when a topic matches, otherwise
// the top search result (the placeholder already carries the manual
// search URL).
func (s *Service) getSourceLink(ctx context.Context, query string) string {
	var b strings.Builder
	b.WriteString("**Official documentation source:**\n\n")
	fmt.Fprintf(&b, "**Query:** %s\n", query)

	topic := s.cfg.MatchTopic(query)
	if topic != nil && topic.Canonical != nil {
		fmt.Fprintf(&b, "**Source link:** %s\n\n", topic.CanonicalURL)
		fmt.Fprintf(&b, "**Topic:** %s\n", topic.Name)
		fmt.Fprintf(&b, "**Documentation title:** %s\n", topic.Canonical.Title)
		return b.String()
	}

	sourceURL := s.cfg.SearchURL(query)
	if results := s.searcher.Search(ctx, query); len(results) > 0 && results[0].URL != "" {
		sourceURL = results[0].URL
	}
	fmt.Fprintf(&b, "**Source link:** %s\n", sourceURL)
	return b.String()
}

// codeBlock extracts the first fenced php block from content.
func codeBlock(content string) string {
	start := strings.Index(content, "```php")
	if start == -1 {
		return ""
	}
	rest := content[start+len("```php"):]
	end := strings.Index(rest, "```")
	if end == -1 {
		return ""
	}
	return content[start : start+len("```php")+end+len("```")]
}

func preview(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) > previewLength {
		return content[:previewLength]
	}
	return content
}

// categoryTitle renders a category slug as a display name
// ("site-factory" becomes "Site Factory").
func categoryTitle(category string) string {
	words := strings.Split(category, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
