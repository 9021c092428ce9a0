// Package relevance scores documentation pages against free-text queries
// and extracts representative snippets and excerpts.
package relevance

import (
	"strings"

	"docdex"
)

// Base scoring weights. Title matches outrank body matches: a per-word
// title hit is worth five body occurrences.
const (
	titleExactBonus    = 10
	titleWordWeight    = 5
	contentExactWeight = 2
	contentWordWeight  = 1
)

// DefaultMinBlockLength filters out short navigation fragments when
// extracting excerpts.
const DefaultMinBlockLength = 30

// Compile-time interface verification.
var _ docdex.Scorer = (*Scorer)(nil)

// Scorer implements two-tier relevance scoring: a generic multi-signal
// base score, plus pinned-topic boosts that guarantee the canonical page
// for a recognized topic outranks generic matches.
type Scorer struct {
	// Topics are the pinned-topic rules consulted for boosts.
	Topics map[string]*docdex.Topic

	// MinBlockLength is the minimum excerpt block length.
	// Defaults to DefaultMinBlockLength when zero.
	MinBlockLength int
}

// NewScorer creates a Scorer with the given pinned-topic rules.
func NewScorer(topics map[string]*docdex.Topic) *Scorer {
	return &Scorer{Topics: topics}
}

// Score returns the non-negative relevance of page for query.
//
// The base score sums four signals: an exact query substring in the
// title, per-word title hits, exact query substring occurrences in the
// content, and per-word content occurrences. When the query matches a
// pinned topic, the topic's canonical page receives the flat boost and
// every page accrues the per-occurrence content keyword boost.
func (s *Scorer) Score(query string, page *docdex.Page) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	words := strings.Fields(q)
	title := strings.ToLower(page.Title)
	content := strings.ToLower(page.Content)

	score := 0
	if strings.Contains(title, q) {
		score += titleExactBonus
	}
	for _, w := range words {
		if strings.Contains(title, w) {
			score += titleWordWeight
		}
	}
	score += strings.Count(content, q) * contentExactWeight
	for _, w := range words {
		score += strings.Count(content, w) * contentWordWeight
	}

	for _, topic := range s.Topics {
		if !topic.MatchQuery(q) {
			continue
		}
		if topic.IsCanonical(page) {
			score += topic.Boost
		}
		for _, kw := range topic.ContentKeywords {
			score += strings.Count(content, kw) * topic.KeywordBoost
		}
	}

	return score
}

// Snippet extracts up to two sentences containing a query word,
// truncated to maxLen characters with an ellipsis. Returns the empty
// string if no sentence matches.
func (s *Scorer) Snippet(query, content string, maxLen int) string {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return ""
	}

	var matched []string
	for _, sentence := range strings.Split(content, ".") {
		lower := strings.ToLower(sentence)
		if containsAnyWord(lower, words) {
			matched = append(matched, strings.TrimSpace(sentence))
			if len(matched) >= 2 {
				break
			}
		}
	}
	if len(matched) == 0 {
		return ""
	}

	snippet := strings.Join(matched, ". ") + "."
	if len(snippet) > maxLen {
		return snippet[:maxLen] + "..."
	}
	return snippet
}

// Excerpts extracts up to maxCount content blocks containing a query
// word, preserving original order. Blocks shorter than MinBlockLength
// are skipped.
func (s *Scorer) Excerpts(query, content string, maxCount int) []string {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	minLen := s.MinBlockLength
	if minLen <= 0 {
		minLen = DefaultMinBlockLength
	}

	var excerpts []string
	for _, block := range strings.Split(content, "\n") {
		block = strings.TrimSpace(block)
		if len(block) <= minLen {
			continue
		}
		if containsAnyWord(strings.ToLower(block), words) {
			excerpts = append(excerpts, block)
			if len(excerpts) >= maxCount {
				break
			}
		}
	}
	return excerpts
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
