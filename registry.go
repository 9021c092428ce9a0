package docdex

import "sync"

// Registry is a process-wide, append-only set of every URL ever observed
// as a link target, independent of whether it was crawled. It feeds
// diagnostics and statistics only; traversal decisions never read it.
// Safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	urls map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{urls: make(map[string]struct{})}
}

// Add records a discovered URL.
func (r *Registry) Add(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls[url] = struct{}{}
}

// Len returns the number of distinct URLs observed so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.urls)
}

// Seen reports whether url has been observed.
func (r *Registry) Seen(url string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.urls[url]
	return ok
}

// Clear removes all recorded URLs.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = make(map[string]struct{})
}
