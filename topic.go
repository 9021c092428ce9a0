package docdex

import "strings"

// Topic is a pinned-topic rule: when a query matches the rule, the
// canonical page for the topic receives a large additive score boost and
// is guaranteed a place at the top of the result list.
//
// Matching is heuristic: the query matches when it contains a topic
// keyword together with a configuration-context keyword, or a topic
// keyword together with an action verb, or any canonical phrase verbatim.
type Topic struct {
	// Name identifies the topic in logs and stats.
	Name string

	// Keywords are the primary topic indicators.
	Keywords []string

	// ConfigKeywords indicate a configuration context
	// (file names, "configuration", "config").
	ConfigKeywords []string

	// ActionKeywords are action verbs ("enable", "configure", "install").
	ActionKeywords []string

	// Phrases are canonical phrasings matched verbatim.
	Phrases []string

	// CanonicalURL is the pinned canonical document for the topic.
	CanonicalURL string

	// TitleKeyword marks a page as canonical when present in its title,
	// in addition to the URL match.
	TitleKeyword string

	// Boost is the flat score boost applied to the canonical page.
	Boost int

	// ContentKeywords accrue KeywordBoost per occurrence in page content
	// when the query matches the topic.
	ContentKeywords []string

	// KeywordBoost is the per-occurrence boost for ContentKeywords.
	KeywordBoost int

	// Steps are the condensed implementation steps shown alongside the
	// canonical document in guidance output.
	Steps []string

	// Canonical is the pre-loaded canonical document, seeded into the
	// page cache at startup.
	Canonical *Page
}

// MatchQuery reports whether query triggers this topic rule.
func (t *Topic) MatchQuery(query string) bool {
	q := strings.ToLower(query)

	hasTopic := containsAny(q, t.Keywords)
	if hasTopic && containsAny(q, t.ConfigKeywords) {
		return true
	}
	if hasTopic && containsAny(q, t.ActionKeywords) {
		return true
	}
	return containsAny(q, t.Phrases)
}

// IsCanonical reports whether page is the canonical document for this
// topic, matched by URL or by the title keyword.
func (t *Topic) IsCanonical(page *Page) bool {
	if page.URL == t.CanonicalURL {
		return true
	}
	return t.TitleKeyword != "" && strings.Contains(strings.ToLower(page.Title), t.TitleKeyword)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
