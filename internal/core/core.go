package core

import "fmt"

// ContentType identifies one of the supported document shapes.
type ContentType string

const (
	// TypeArticle is a long-form post with titled sections.
	TypeArticle ContentType = "article"
	// TypeShortPost is a platform-constrained social post.
	TypeShortPost ContentType = "short-post"
	// TypeDigest is a newsletter-style issue with fixed sections.
	TypeDigest ContentType = "digest"
	// TypeScript is a narrated video script with timing markers.
	TypeScript ContentType = "script"
	// TypeCampaignEmail is a subject/body/footer campaign email.
	TypeCampaignEmail ContentType = "campaign-email"
)

// Audience identifies a target reader profile.
type Audience string

const (
	AudienceFounders  Audience = "founders"
	AudienceTechLeads Audience = "tech-leads"
	AudienceMarketers Audience = "marketers"
	AudienceGeneral   Audience = "general"
)

// Tone identifies the voice the generated copy is written in.
type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneConversational Tone = "conversational"
	TonePersuasive     Tone = "persuasive"
	ToneInformative    Tone = "informative"
	ToneHumorous       Tone = "humorous"
)

// Platform identifies a short-post publishing target. It only affects the
// character budget of short-post content; other content types ignore it.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformGeneral   Platform = "general"
)

// GenerationRequest describes one content-generation run. Topic, ContentType
// and Tone are required; the remaining fields fall back to documented
// defaults when left zero.
type GenerationRequest struct {
	Topic           string      `json:"topic"`            // Subject of the generated copy
	ContentType     ContentType `json:"content_type"`     // Document shape to produce
	Audience        Audience    `json:"audience"`         // Target reader profile (unknown -> general)
	Tone            Tone        `json:"tone"`             // Voice of the copy
	WordCount       int         `json:"word_count"`       // Target length, 0 -> per-type default
	Platform        Platform    `json:"platform"`         // Short-post target (unknown -> general)
	CallToAction    string      `json:"call_to_action"`   // Optional CTA override
	IncludeExamples bool        `json:"include_examples"` // Carry examples/statistics hints
	IncludeSEO      bool        `json:"include_seo"`      // Derive keyword tags
}

// NewRequest returns a request with the optional booleans at their
// documented defaults (both enabled).
func NewRequest(topic string, contentType ContentType, audience Audience, tone Tone) GenerationRequest {
	return GenerationRequest{
		Topic:           topic,
		ContentType:     contentType,
		Audience:        audience,
		Tone:            tone,
		IncludeExamples: true,
		IncludeSEO:      true,
	}
}

// ContentVariation is one generated rendering of a request. Variations are
// immutable once returned; the caller owns them.
type ContentVariation struct {
	Title        string   `json:"title"`          // Selected title for this variation
	Body         string   `json:"body"`           // Full assembled document
	Headings     []string `json:"headings"`       // Structural markers in document order
	CallToAction string   `json:"call_to_action"` // Resolved CTA (may be empty)
	Tags         []string `json:"tags"`           // Keyword tags, at most 10, order unspecified
	WordCount    int      `json:"word_count"`     // Whitespace-token count of Body
}

// ContentTypes lists the supported content types in menu order.
func ContentTypes() []ContentType {
	return []ContentType{TypeArticle, TypeShortPost, TypeDigest, TypeScript, TypeCampaignEmail}
}

// Audiences lists the supported audiences in menu order.
func Audiences() []Audience {
	return []Audience{AudienceFounders, AudienceTechLeads, AudienceMarketers, AudienceGeneral}
}

// Tones lists the supported tones in menu order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneConversational, TonePersuasive, ToneInformative, ToneHumorous}
}

// Platforms lists the supported short-post platforms in menu order.
func Platforms() []Platform {
	return []Platform{PlatformTwitter, PlatformLinkedIn, PlatformFacebook, PlatformInstagram, PlatformGeneral}
}

// ValidContentType reports whether t is one of the five supported types.
func ValidContentType(t ContentType) bool {
	switch t {
	case TypeArticle, TypeShortPost, TypeDigest, TypeScript, TypeCampaignEmail:
		return true
	}
	return false
}

// ValidTone reports whether t is a member of the tone enum.
func ValidTone(t Tone) bool {
	switch t {
	case ToneProfessional, ToneConversational, TonePersuasive, ToneInformative, ToneHumorous:
		return true
	}
	return false
}

// DefaultWordCount returns the target word count used when a request does
// not specify one.
func DefaultWordCount(t ContentType) int {
	switch t {
	case TypeArticle:
		return 800
	case TypeShortPost:
		return 200
	case TypeDigest:
		return 600
	case TypeScript:
		return 1200
	case TypeCampaignEmail:
		return 400
	default:
		return 500
	}
}

// UnsupportedContentTypeError reports a content type outside the supported
// set. It is the single typed error the engine returns and carries the
// offending value for display.
type UnsupportedContentTypeError struct {
	Value ContentType
}

func (e *UnsupportedContentTypeError) Error() string {
	return fmt.Sprintf("unsupported content type: %q", string(e.Value))
}
