// Package profiles holds the static tone and audience descriptor tables that
// parameterize generated copy. The tables are process-wide, read-only
// configuration: built once at init, never mutated.
package profiles

import "copysmith/internal/core"

// ToneProfile describes how copy in a given tone should read.
type ToneProfile struct {
	Style           string // Sentence-level voice description
	Emphasis        string // What the copy should foreground
	ExampleLanguage string // The kind of supporting evidence to cite
}

// AudienceProfile describes who the copy is written for.
type AudienceProfile struct {
	PainPoints       []string // Ordered, most pressing first
	Interests        []string // Ordered, strongest first
	LanguageRegister string   // Register the copy should be written in
}

var toneProfiles = map[core.Tone]ToneProfile{
	core.ToneProfessional: {
		Style:           "Clear, authoritative, and industry-specific language",
		Emphasis:        "Expertise, credibility, and measurable results",
		ExampleLanguage: "Industry statistics, case studies, technical data",
	},
	core.ToneConversational: {
		Style:           "Friendly, accessible language with personal anecdotes",
		Emphasis:        "Relatability, story-telling, and personal experiences",
		ExampleLanguage: "Personal stories, relatable scenarios, everyday situations",
	},
	core.TonePersuasive: {
		Style:           "Compelling arguments with emotional and logical appeals",
		Emphasis:        "Benefits, urgency, and transformation",
		ExampleLanguage: "Before/after scenarios, success stories, compelling statistics",
	},
	core.ToneInformative: {
		Style:           "Educational, clear explanations with structured information",
		Emphasis:        "Learning, understanding, and comprehensive coverage",
		ExampleLanguage: "Step-by-step guides, detailed explanations, comprehensive lists",
	},
	core.ToneHumorous: {
		Style:           "Witty, light-hearted language with appropriate humor",
		Emphasis:        "Entertainment, engagement, and memorable content",
		ExampleLanguage: "Funny analogies, wordplay, entertaining scenarios",
	},
}

var audienceProfiles = map[core.Audience]AudienceProfile{
	core.AudienceFounders: {
		PainPoints:       []string{"Rapid growth", "Market validation", "Resource constraints"},
		Interests:        []string{"Growth strategies", "Funding", "Technology adoption"},
		LanguageRegister: "Business-focused, results-oriented",
	},
	core.AudienceTechLeads: {
		PainPoints:       []string{"Team management", "Technical debt", "Scalability"},
		Interests:        []string{"Best practices", "Team productivity", "Architecture"},
		LanguageRegister: "Technical but accessible",
	},
	core.AudienceMarketers: {
		PainPoints:       []string{"Lead generation", "ROI measurement", "Brand awareness"},
		Interests:        []string{"Marketing trends", "Campaign optimization", "Customer acquisition"},
		LanguageRegister: "Strategy-focused, metrics-driven",
	},
	core.AudienceGeneral: {
		PainPoints:       []string{"Learning new concepts", "Practical application"},
		Interests:        []string{"Accessible information", "Clear benefits"},
		LanguageRegister: "Simple, jargon-free",
	},
}

// ToneFor looks up the profile for a tone. The second return reports
// membership; callers that require a valid tone should check it.
func ToneFor(t core.Tone) (ToneProfile, bool) {
	p, ok := toneProfiles[t]
	return p, ok
}

// AudienceFor looks up the profile for an audience, falling back to the
// general profile for unknown values. Audience lookup never fails.
func AudienceFor(a core.Audience) AudienceProfile {
	if p, ok := audienceProfiles[a]; ok {
		return p
	}
	return audienceProfiles[core.AudienceGeneral]
}

// StyleAdjectives maps a tone to the short adjective list used by the
// analysis report's communication-strategy block.
func StyleAdjectives(t core.Tone) string {
	switch t {
	case core.ToneProfessional:
		return "authoritative, credible, data-driven"
	case core.ToneConversational:
		return "friendly, accessible, personal"
	case core.TonePersuasive:
		return "compelling, benefit-focused, action-oriented"
	case core.ToneInformative:
		return "educational, clear, comprehensive"
	case core.ToneHumorous:
		return "entertaining, engaging, memorable"
	default:
		return "authoritative, credible, data-driven"
	}
}
