// Package tags derives keyword tags and platform hashtags from a topic
// string. Derivation is a deterministic union of a fixed base vocabulary
// with the topic's own words; no relevance ranking is applied.
package tags

import (
	"fmt"
	"strings"
)

// maxTags caps the size of a derived tag set.
const maxTags = 10

// baseVocabulary is always unioned into the derived set, ahead of
// topic-specific words, so it can never be crowded out.
var baseVocabulary = []string{"technology", "business", "strategy", "innovation", "growth"}

// stopWords are dropped from the topic before tagging.
var stopWords = map[string]bool{
	"of": true, "for": true, "the": true, "and": true, "a": true, "an": true,
}

// Derive returns up to 10 unique lower-cased tags for a topic: the base
// vocabulary plus the topic's non-stop-words. The result has set
// semantics; callers that need a stable rendering order must sort.
func Derive(topic string) []string {
	seen := make(map[string]bool, maxTags)
	result := make([]string, 0, maxTags)

	add := func(tag string) {
		if tag == "" || seen[tag] || len(result) >= maxTags {
			return
		}
		seen[tag] = true
		result = append(result, tag)
	}

	for _, tag := range baseVocabulary {
		add(tag)
	}
	for _, word := range strings.Fields(strings.ToLower(topic)) {
		if !stopWords[word] {
			add(word)
		}
	}
	return result
}

// Hashtags renders the first 5 derived tags as space-joined "#tag" tokens
// for social posts. The choice of which 5 follows derivation order, which
// is implementation-defined.
func Hashtags(topic string) string {
	derived := Derive(topic)
	if len(derived) > 5 {
		derived = derived[:5]
	}
	parts := make([]string, 0, len(derived))
	for _, tag := range derived {
		parts = append(parts, fmt.Sprintf("#%s", tag))
	}
	return strings.Join(parts, " ")
}
