package crawl

import (
	"strings"
	"sync"

	"docdex/bloom"
)

// Frontier sizing defaults.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom
	// filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate
	// for enqueue-time deduplication.
	frontierFalsePositiveRate = 0.01
)

// Item is one frontier entry. Category is a hint carried from the
// parent page; the authoritative category is re-classified at pop time.
type Item struct {
	URL      string
	Depth    int
	Category string
}

// Frontier is a FIFO crawl queue with Bloom filter deduplication at
// enqueue time. FIFO ordering is what makes the traversal breadth-first.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []Item
}

// NewFrontier creates an empty Frontier with default Bloom sizing.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Push appends an item to the queue. Returns false if the URL has
// already been enqueued; URL fragments are stripped first, so URLs
// differing only by fragment are duplicates.
func (f *Frontier) Push(item Item) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	item.URL = stripFragment(item.URL)
	if f.seen.TestAndAdd(item.URL) {
		return false
	}
	f.queue = append(f.queue, item)
	return true
}

// Pop removes and returns the head of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (Item, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return Item{}, false
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item, true
}

// Len returns the number of queued items.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL has ever been enqueued.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(url))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
