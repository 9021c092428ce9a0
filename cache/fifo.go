// Package cache provides the bounded in-memory page cache with strict
// FIFO eviction.
package cache

import (
	"fmt"
	"sync"

	"docdex"

	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var _ docdex.PageCache = (*FIFO)(nil)

// FIFO is a bounded page cache with FIFO eviction. Unlike an LRU cache a
// hit does not refresh recency: the entry inserted earliest is always
// evicted first. Safe for concurrent use.
type FIFO struct {
	mu       sync.Mutex
	capacity int
	pages    map[string]*docdex.Page
	keys     map[string]string // url -> short content key
	order    []string          // insertion order, oldest first
}

// New creates a FIFO cache holding at most capacity pages.
// A non-positive capacity defaults to 1.
func New(capacity int) *FIFO {
	if capacity <= 0 {
		capacity = 1
	}
	return &FIFO{
		capacity: capacity,
		pages:    make(map[string]*docdex.Page),
		keys:     make(map[string]string),
	}
}

// Get returns the cached page for url, or false on a miss.
func (c *FIFO) Get(url string) (*docdex.Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, ok := c.pages[url]
	return page, ok
}

// Put inserts a page, evicting the single oldest surviving entry when the
// cache is at capacity. Replacing a URL already present keeps its
// insertion position. Eviction and insertion are one atomic step.
func (c *FIFO) Put(url string, page *docdex.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pages[url]; ok {
		c.pages[url] = page
		c.keys[url] = shortKey(url)
		return
	}

	if len(c.pages) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.pages, oldest)
		delete(c.keys, oldest)
	}

	c.pages[url] = page
	c.keys[url] = shortKey(url)
	c.order = append(c.order, url)
}

// Clear empties the cache and the per-URL key bookkeeping in one step.
// It is the only way to reset eviction order.
func (c *FIFO) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = make(map[string]*docdex.Page)
	c.keys = make(map[string]string)
	c.order = nil
}

// Len returns the number of cached pages.
func (c *FIFO) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pages)
}

// URLs returns the cached URLs in insertion order, oldest first.
func (c *FIFO) URLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	urls := make([]string, len(c.order))
	copy(urls, c.order)
	return urls
}

// Key returns the short identifier for a cached URL, used in diagnostic
// listings. The bool result is false if the URL is not cached.
func (c *FIFO) Key(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key, ok := c.keys[url]
	return key, ok
}

func shortKey(url string) string {
	return fmt.Sprintf("%08x", xxhash.Sum64String(url)&0xffffffff)
}
