// Package textutil provides the small deterministic text helpers shared by
// every format builder: truncation, word counting, topic normalization, and
// the stable topic hash used for phrase-pool selection.
package textutil

import (
	"hash/fnv"
	"strings"
)

// Ellipsis is the marker appended to truncated text.
const Ellipsis = "..."

// Truncate trims text to at most limit bytes without splitting the last
// word harshly: if the final space in the kept segment falls within the
// last 20% of the budget, the cut backs up to it. Truncated output always
// ends with the ellipsis marker, and re-truncating such output at the same
// limit returns it unchanged.
func Truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	if strings.HasSuffix(text, Ellipsis) && len(text) <= limit+len(Ellipsis) {
		return text
	}
	cut := text[:limit]
	if idx := strings.LastIndex(cut, " "); idx > int(float64(limit)*0.8) {
		cut = cut[:idx]
	}
	return cut + Ellipsis
}

// CountWords counts whitespace-separated tokens. An empty or all-space
// document yields 0.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// NormalizeTopic strips the "Benefits of X for Y" framing so the topic
// reads naturally inside prose: a leading "Benefits of " and a trailing
// " for" fragment are removed.
func NormalizeTopic(topic string) string {
	topic = strings.ReplaceAll(topic, "Benefits of ", "")
	return strings.ReplaceAll(topic, " for", "")
}

// TopicHash returns a stable FNV-1a hash of the topic string. It is not
// cryptographic; it only needs to be consistent for the same topic within
// and across runs so that repeated requests select the same phrasings.
func TopicHash(topic string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(topic))
	return h.Sum32()
}

// Pick selects a member of a phrase pool by the topic hash.
func Pick(topic string, pool []string) string {
	return pool[int(TopicHash(topic))%len(pool)]
}
