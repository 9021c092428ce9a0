// Package docdex provides a documentation-site crawler and search server.
// It crawls a documentation host breadth-first under per-category page
// budgets, caches fetched pages in a bounded FIFO cache, and answers
// free-text queries by scoring pages for relevance and extracting
// representative snippets. The result set is exposed to calling agents
// as named tool operations and addressable resources.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, bloom/).
package docdex
