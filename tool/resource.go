package tool

import (
	"context"
	"fmt"
	"strings"

	"docdex"
)

// ResourceScheme prefixes every resource identifier.
const ResourceScheme = "docs://"

// Resource describes one addressable documentation page.
type Resource struct {
	URI         string
	Name        string
	Description string
}

// Resources lists every cached page as an addressable resource, in
// cache insertion order. Preload guarantees the pinned canonical
// documents are always present.
func (s *Service) Resources() []Resource {
	s.Preload()

	urls := s.cache.URLs()
	resources := make([]Resource, 0, len(urls))
	for _, url := range urls {
		page, ok := s.cache.Get(url)
		if !ok {
			continue
		}
		resources = append(resources, Resource{
			URI:         ResourceScheme + url,
			Name:        page.Title,
			Description: "Documentation: " + page.Title,
		})
	}
	return resources
}

// ReadResource resolves a resource identifier to formatted page
// content, fetching on demand when the page is not cached. An
// unreachable page returns an ENOTFOUND error.
func (s *Service) ReadResource(ctx context.Context, uri string) (string, error) {
	url := strings.TrimPrefix(uri, ResourceScheme)

	if page, ok := s.cache.Get(url); ok {
		return formatResource(page), nil
	}

	page := s.fetcher.Fetch(ctx, url)
	if !page.Success {
		return "", docdex.Errorf(docdex.ENOTFOUND, "content not available for %s", url)
	}
	return formatResource(page), nil
}

func formatResource(page *docdex.Page) string {
	return fmt.Sprintf("# %s\n\nSource: %s\n\n%s", page.Title, page.URL, page.Content)
}
