// Package crawl implements a breadth-first documentation crawler with
// per-category page budgets and bounded per-page fanout.
package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"docdex"
)

var _ docdex.Crawler = (*Crawler)(nil)

// Crawler walks a documentation site breadth-first. Three limits bound
// the walk: maximum depth from the seeds, a page budget per product
// category, and a per-page cap on enqueued links (higher for links in
// the same category as the parent page).
type Crawler struct {
	fetcher docdex.Fetcher
	scope   *docdex.Scope
	limiter docdex.HostLimiter
	logger  *slog.Logger

	maxPagesPerCategory int
	sameCategoryFanout  int
	otherCategoryFanout int
}

// NewCrawler creates a Crawler with the given collaborators and the
// crawl limits from cfg.
func NewCrawler(fetcher docdex.Fetcher, scope *docdex.Scope, limiter docdex.HostLimiter, logger *slog.Logger, cfg *docdex.Config) *Crawler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Crawler{
		fetcher:             fetcher,
		scope:               scope,
		limiter:             limiter,
		logger:              logger,
		maxPagesPerCategory: cfg.MaxPagesPerCategory,
		sameCategoryFanout:  cfg.SameCategoryFanout,
		otherCategoryFanout: cfg.OtherCategoryFanout,
	}
}

// Crawl visits pages breadth-first from seeds up to maxDepth and
// returns the successfully fetched pages by URL. Failed fetches are
// logged and omitted. Out-of-scope seeds are dropped. With maxDepth of
// 0 only the seeds themselves are visited. Cancelling the context
// returns the pages fetched so far.
func (c *Crawler) Crawl(ctx context.Context, seeds []string, maxDepth int) map[string]*docdex.Page {
	frontier := NewFrontier()
	visited := make(map[string]bool)
	budget := make(map[string]int)
	pages := make(map[string]*docdex.Page)

	for _, seed := range seeds {
		if !c.scope.InScope(seed) {
			c.logger.Debug("seed out of scope", "url", seed)
			continue
		}
		frontier.Push(Item{URL: seed, Depth: 0, Category: c.scope.Category(seed)})
	}

	for {
		if ctx.Err() != nil {
			return pages
		}
		item, ok := frontier.Pop()
		if !ok {
			return pages
		}
		if item.Depth > maxDepth {
			continue
		}
		if visited[item.URL] {
			continue
		}

		// Budget is checked before the URL is marked visited, so a URL
		// skipped for budget is not burned and stays eligible if it is
		// reached again in a later crawl.
		category := c.scope.Category(item.URL)
		if budget[category] >= c.maxPagesPerCategory {
			continue
		}
		visited[item.URL] = true
		budget[category]++

		if err := c.limiter.Wait(ctx, hostOf(item.URL)); err != nil {
			return pages
		}
		page := c.fetcher.Fetch(ctx, item.URL)
		if !page.Success {
			c.logger.Debug("fetch failed", "url", item.URL, "err", page.Err)
			continue
		}
		pages[item.URL] = page

		c.enqueueLinks(frontier, visited, page, category, item.Depth+1, maxDepth)
	}
}

// enqueueLinks pushes up to sameCategoryFanout same-category links and
// otherCategoryFanout other-category links from page onto the frontier.
func (c *Crawler) enqueueLinks(frontier *Frontier, visited map[string]bool, page *docdex.Page, category string, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}

	same, other := 0, 0
	for _, link := range page.Links {
		if !c.scope.InScope(link) || visited[link] {
			continue
		}
		linkCategory := c.scope.Category(link)
		if linkCategory == category {
			if same >= c.sameCategoryFanout {
				continue
			}
			if frontier.Push(Item{URL: link, Depth: depth, Category: linkCategory}) {
				same++
			}
		} else {
			if other >= c.otherCategoryFanout {
				continue
			}
			if frontier.Push(Item{URL: link, Depth: depth, Category: linkCategory}) {
				other++
			}
		}
	}
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
