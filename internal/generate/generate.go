// Package generate is the content-generation engine. It maps a
// GenerationRequest plus a variation index into structurally distinct copy:
// one format builder per content type, a selector that runs the matching
// builder three times, and an analysis synthesizer over the batch.
//
// Everything here is deterministic. Title structure varies by variation
// index (`titles[index mod len]`); phrasing inside sections varies by a
// stable hash of the topic, so repeated calls with the same request produce
// identical output.
package generate

import (
	"fmt"
	"strings"

	"copysmith/internal/core"
)

// Variations produced per request. Callers rely on index order: variation 1
// carries the engagement/question framing, variation 2 the value framing,
// variation 3 the narrative framing.
const variationCount = 3

// Generate validates the request and produces exactly three variations plus
// a textual analysis of the batch. The only typed failure is
// core.UnsupportedContentTypeError for an unknown content type; a tone
// outside the enum fails with a plain error. Unknown audiences and
// platforms degrade to defaults and never fail.
func Generate(req core.GenerationRequest) ([]core.ContentVariation, string, error) {
	if !core.ValidContentType(req.ContentType) {
		return nil, "", &core.UnsupportedContentTypeError{Value: req.ContentType}
	}
	if !core.ValidTone(req.Tone) {
		return nil, "", fmt.Errorf("unsupported tone: %q", string(req.Tone))
	}

	variations := make([]core.ContentVariation, 0, variationCount)
	for i := 0; i < variationCount; i++ {
		variations = append(variations, buildVariation(req, i))
	}
	return variations, Analyze(req, variations), nil
}

// buildVariation dispatches to the format builder for the request's content
// type. The type set is closed, so a switch stands in for a registry; the
// selector has already validated membership.
func buildVariation(req core.GenerationRequest, index int) core.ContentVariation {
	switch req.ContentType {
	case core.TypeArticle:
		return buildArticle(req, index)
	case core.TypeShortPost:
		return buildShortPost(req, index)
	case core.TypeDigest:
		return buildDigest(req, index)
	case core.TypeScript:
		return buildScript(req, index)
	case core.TypeCampaignEmail:
		return buildCampaignEmail(req, index)
	default:
		// Unreachable after validation; keep the compiler honest.
		panic(&core.UnsupportedContentTypeError{Value: req.ContentType})
	}
}

// resolveWordCount applies the request override or the per-type default.
func resolveWordCount(req core.GenerationRequest) int {
	if req.WordCount > 0 {
		return req.WordCount
	}
	return core.DefaultWordCount(req.ContentType)
}

// displayName renders an enum value for prose: hyphens become spaces and
// each word is title-cased ("tech-leads" -> "Tech Leads").
func displayName(value string) string {
	words := strings.Fields(strings.ReplaceAll(value, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
