package generate

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"copysmith/internal/core"
	"copysmith/internal/textutil"
)

func TestGenerateProducesThreeVariations(t *testing.T) {
	for _, contentType := range core.ContentTypes() {
		req := core.NewRequest("Remote Work", contentType, core.AudienceGeneral, core.ToneProfessional)

		variations, analysis, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate(%q) failed: %v", contentType, err)
		}
		if len(variations) != 3 {
			t.Fatalf("Generate(%q) produced %d variations, want 3", contentType, len(variations))
		}
		if analysis == "" {
			t.Errorf("Generate(%q) produced an empty analysis", contentType)
		}

		for i, v := range variations {
			if v.Title == "" {
				t.Errorf("%s variation %d has an empty title", contentType, i)
			}
			if v.Body == "" {
				t.Errorf("%s variation %d has an empty body", contentType, i)
			}
			if want := textutil.CountWords(v.Body); v.WordCount != want {
				t.Errorf("%s variation %d reports %d words, body has %d", contentType, i, v.WordCount, want)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, contentType := range core.ContentTypes() {
		req := core.NewRequest("AI in Marketing", contentType, core.AudienceMarketers, core.ToneInformative)

		first, firstAnalysis, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate(%q) failed: %v", contentType, err)
		}
		second, secondAnalysis, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate(%q) failed on repeat: %v", contentType, err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Errorf("Generate(%q) is not deterministic across calls", contentType)
		}
		if firstAnalysis != secondAnalysis {
			t.Errorf("Analysis for %q differs across calls", contentType)
		}
	}
}

func TestGenerateUnsupportedContentType(t *testing.T) {
	req := core.NewRequest("DevOps", "podcast", core.AudienceGeneral, core.ToneProfessional)

	variations, _, err := Generate(req)
	if err == nil {
		t.Fatal("Expected an error for an unsupported content type")
	}
	if variations != nil {
		t.Errorf("Expected no variations on failure, got %d", len(variations))
	}

	var typeErr *core.UnsupportedContentTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("Expected UnsupportedContentTypeError, got %T: %v", err, err)
	}
	if typeErr.Value != "podcast" {
		t.Errorf("Expected the error to carry %q, got %q", "podcast", typeErr.Value)
	}
}

func TestGenerateUnsupportedTone(t *testing.T) {
	req := core.NewRequest("DevOps", core.TypeArticle, core.AudienceGeneral, "sarcastic")

	_, _, err := Generate(req)
	if err == nil {
		t.Fatal("Expected an error for an unsupported tone")
	}
	var typeErr *core.UnsupportedContentTypeError
	if errors.As(err, &typeErr) {
		t.Error("Tone failures should not be typed as content-type errors")
	}
	if !strings.Contains(err.Error(), "sarcastic") {
		t.Errorf("Expected the error to name the tone, got %q", err.Error())
	}
}

func TestGenerateUnknownAudienceAndPlatformDegrade(t *testing.T) {
	req := core.NewRequest("DevOps", core.TypeShortPost, "astronauts", core.ToneConversational)
	req.Platform = "myspace"

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Expected unknown audience and platform to degrade gracefully, got %v", err)
	}
	for i, v := range variations {
		if len(v.Body) > 300+len(textutil.Ellipsis) {
			t.Errorf("Variation %d exceeds the general platform budget: %d bytes", i, len(v.Body))
		}
	}
}

func TestArticleVariations(t *testing.T) {
	req := core.NewRequest("Benefits of DevOps for Startups", core.TypeArticle, core.AudienceFounders, core.ToneProfessional)

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	titles := make(map[string]bool)
	for i, v := range variations {
		titles[v.Title] = true

		if len(v.Headings) == 0 {
			t.Errorf("Variation %d has no headings", i)
		}
		for _, heading := range []string{"The Problem", "The Solution", "Key Benefits", "Implementation", "Real-World Examples", "Conclusion"} {
			found := false
			for _, h := range v.Headings {
				if h == heading {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Variation %d is missing the %q section", i, heading)
			}
		}

		// Body prose uses the normalized topic; the raw phrasing appears
		// only in titles.
		if strings.Contains(v.Body, "Benefits of DevOps for Startups") {
			t.Errorf("Variation %d body contains the raw topic phrase", i)
		}
		if !strings.Contains(v.Body, "DevOps Startups") {
			t.Errorf("Variation %d body does not mention the normalized topic", i)
		}

		if v.CallToAction == "" {
			t.Errorf("Variation %d has no call to action", i)
		}
		if len(v.Tags) == 0 {
			t.Errorf("Variation %d has no tags despite IncludeSEO", i)
		}
	}

	if len(titles) != 3 {
		t.Errorf("Expected 3 distinct titles, got %d", len(titles))
	}
}

func TestArticleCTAOverride(t *testing.T) {
	req := core.NewRequest("DevOps", core.TypeArticle, core.AudienceFounders, core.ToneProfessional)
	req.CallToAction = "Book a demo today."

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, v := range variations {
		if v.CallToAction != "Book a demo today." {
			t.Errorf("Variation %d did not honor the CTA override: %q", i, v.CallToAction)
		}
	}
}

func TestArticleWithoutSEOTags(t *testing.T) {
	req := core.NewRequest("DevOps", core.TypeArticle, core.AudienceFounders, core.ToneProfessional)
	req.IncludeSEO = false

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, v := range variations {
		if len(v.Tags) != 0 {
			t.Errorf("Variation %d has tags despite IncludeSEO=false: %v", i, v.Tags)
		}
	}
}

func TestShortPostPlatformBudget(t *testing.T) {
	budgets := map[core.Platform]int{
		core.PlatformTwitter:   280,
		core.PlatformLinkedIn:  700,
		core.PlatformFacebook:  500,
		core.PlatformInstagram: 2200,
		core.PlatformGeneral:   300,
	}

	for platform, limit := range budgets {
		req := core.NewRequest("Remote Work", core.TypeShortPost, core.AudienceGeneral, core.ToneConversational)
		req.Platform = platform

		variations, _, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate for %q failed: %v", platform, err)
		}
		for i, v := range variations {
			if len(v.Body) > limit+len(textutil.Ellipsis) {
				t.Errorf("%s variation %d is %d bytes, budget %d", platform, i, len(v.Body), limit)
			}
		}
	}
}

func TestShortPostFramings(t *testing.T) {
	req := core.NewRequest("Remote Work", core.TypeShortPost, core.AudienceGeneral, core.ToneConversational)
	req.Platform = core.PlatformInstagram

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if variations[0].Title != "Quick Tip: Remote Work" {
		t.Errorf("Variation 0 title = %q", variations[0].Title)
	}
	if variations[1].Title != "Remote Work Explained" {
		t.Errorf("Variation 1 title = %q", variations[1].Title)
	}
	if variations[2].Title != "My Experience with Remote Work" {
		t.Errorf("Variation 2 title = %q", variations[2].Title)
	}

	for i, v := range variations {
		if len(v.Headings) != 0 {
			t.Errorf("Variation %d has headings, short posts carry none: %v", i, v.Headings)
		}
		if !strings.Contains(v.Body, "#") {
			t.Errorf("Variation %d is missing hashtags", i)
		}
	}
}

func TestShortPostLinkedInCTA(t *testing.T) {
	req := core.NewRequest("Remote Work", core.TypeShortPost, core.AudienceGeneral, core.ToneConversational)
	req.Platform = core.PlatformLinkedIn

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, v := range variations {
		if !strings.Contains(v.CallToAction, "connect") {
			t.Errorf("Variation %d does not use the networking CTA: %q", i, v.CallToAction)
		}
	}
}

func TestDigestFixedCTA(t *testing.T) {
	req := core.NewRequest("AI in Marketing", core.TypeDigest, core.AudienceMarketers, core.ToneInformative)
	req.CallToAction = "This override must be ignored."

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, v := range variations {
		if v.CallToAction != subscribeCTA {
			t.Errorf("Variation %d CTA = %q, want the fixed subscribe prompt", i, v.CallToAction)
		}
		if !strings.Contains(v.Body, "Featured Article: AI in Marketing") {
			t.Errorf("Variation %d is missing the featured section", i)
		}
		if len(v.Headings) == 0 {
			t.Errorf("Variation %d has no headings", i)
		}
	}
}

func TestScriptStructure(t *testing.T) {
	req := core.NewRequest("Microservices Architecture", core.TypeScript, core.AudienceTechLeads, core.ToneInformative)

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, v := range variations {
		if !strings.Contains(v.Body, "# Video Script:") {
			t.Errorf("Variation %d is missing the script header", i)
		}
		// 1200 words at 150 wpm.
		if !strings.Contains(v.Body, "**Duration: ~8 minutes**") {
			t.Errorf("Variation %d has the wrong duration estimate", i)
		}
		if !strings.Contains(v.Body, "Target Audience: Tech Leads") {
			t.Errorf("Variation %d has the wrong audience header", i)
		}

		for _, heading := range []string{"Hook (0-15 seconds)", "Production Notes", "Call to Action (final 15 seconds)"} {
			found := false
			for _, h := range v.Headings {
				if h == heading {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Variation %d is missing the %q section", i, heading)
			}
		}
	}
}

func TestScriptDurationHonorsWordCount(t *testing.T) {
	req := core.NewRequest("DevOps", core.TypeScript, core.AudienceGeneral, core.ToneInformative)
	req.WordCount = 600

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(variations[0].Body, "**Duration: ~4 minutes**") {
		t.Error("Expected the duration estimate to follow the requested word count")
	}
}

func TestCampaignEmailKinds(t *testing.T) {
	req := core.NewRequest("Cloud Cost Optimization", core.TypeCampaignEmail, core.AudienceFounders, core.TonePersuasive)
	req.CallToAction = "This override must be ignored."

	variations, _, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	wantCTAs := []string{
		"Access Your Starter Resources →",
		"Download Free Guide →",
		"Claim Your Spot Now →",
	}
	for i, v := range variations {
		if v.CallToAction != wantCTAs[i] {
			t.Errorf("Variation %d CTA = %q, want %q", i, v.CallToAction, wantCTAs[i])
		}
		if !strings.Contains(v.Body, "**Subject Line:**") {
			t.Errorf("Variation %d is missing the subject line block", i)
		}
		if !strings.Contains(v.Body, "**Footer:**") {
			t.Errorf("Variation %d is missing the footer block", i)
		}
		if len(v.Headings) != 0 {
			t.Errorf("Variation %d has headings, campaign emails carry none: %v", i, v.Headings)
		}
	}
}

func TestAnalyzeReport(t *testing.T) {
	req := core.NewRequest("Benefits of DevOps for Startups", core.TypeArticle, core.AudienceFounders, core.ToneProfessional)

	variations, analysis, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	wantFragments := []string{
		"# Content Generation Analysis",
		"- **Topic**: Benefits of DevOps for Startups",
		"- **Content Type**: article",
		"- **Target Audience**: Founders",
		"- **Tone**: Professional",
		"### Variation 1:",
		"### Variation 2:",
		"### Variation 3:",
		"## Communication Strategy for Founders",
		"- **Communication style**: Business-focused, results-oriented",
		"- **Content tone**: authoritative, credible, data-driven",
		"## Recommendations",
		"## Next Steps",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(analysis, fragment) {
			t.Errorf("Analysis is missing %q", fragment)
		}
	}

	for i, v := range variations {
		if !strings.Contains(analysis, v.Title) {
			t.Errorf("Analysis does not mention variation %d's title %q", i, v.Title)
		}
	}
}

func TestAnalyzeWithoutTags(t *testing.T) {
	req := core.NewRequest("DevOps", core.TypeArticle, core.AudienceGeneral, core.ToneProfessional)
	req.IncludeSEO = false

	_, analysis, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(analysis, "- **Key Tags**: None") {
		t.Error("Expected tag-less variations to report None in the analysis")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"tech-leads", "Tech Leads"},
		{"founders", "Founders"},
		{"campaign-email", "Campaign Email"},
		{"professional", "Professional"},
	}
	for _, test := range tests {
		if got := displayName(test.value); got != test.want {
			t.Errorf("displayName(%q) = %q, want %q", test.value, got, test.want)
		}
	}
}
