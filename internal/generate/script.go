package generate

import (
	"fmt"

	"copysmith/internal/core"
	"copysmith/internal/markdown"
	"copysmith/internal/tags"
	"copysmith/internal/textutil"
)

var scriptTitles = []string{
	"How %s is Changing Everything",
	"The Complete Guide to %s",
	"%s: What You Need to Know",
	"Why %s Matters More Than Ever",
}

// speakingPace is the words-per-minute rate used to estimate duration.
const speakingPace = 150

// buildScript assembles a video script: hook, intro, main points,
// demonstration, conclusion, CTA, and production notes. The duration
// estimate (word count / 150, integer division) is embedded in section
// headers as elapsed-time ranges.
func buildScript(req core.GenerationRequest, index int) core.ContentVariation {
	title := fmt.Sprintf(scriptTitles[index%len(scriptTitles)], req.Topic)

	wordCount := resolveWordCount(req)
	duration := wordCount / speakingPace
	cta := scriptCTA(req.Topic)

	body := fmt.Sprintf(`# Video Script: %s
**Duration: ~%d minutes**
**Target Audience: %s**

## Hook (0-15 seconds)
%s

## Introduction (15-45 seconds)
%s

## Main Content (45 seconds - %d minutes)
%s

## Demonstration/Example (%d-%.1f minutes)
%s

## Conclusion (%.1f-%d minutes)
%s

## Call to Action (final 15 seconds)
%s

## Production Notes
- Include engaging visuals and graphics
- Add subtitles for accessibility
- Use energetic, clear delivery
- Maintain eye contact with camera
- Include relevant background music at low volume
`,
		title,
		duration,
		displayName(string(resolveAudience(req.Audience))),
		scriptHook(req.Topic),
		scriptIntro(req.Topic),
		duration-1,
		scriptMainPoints(req.Topic),
		duration-1, float64(duration)-0.5,
		scriptDemonstration(req.Topic),
		float64(duration)-0.5, duration,
		scriptConclusion(req.Topic),
		cta,
	)

	return core.ContentVariation{
		Title:        title,
		Body:         body,
		Headings:     markdown.ExtractHeadings(body),
		CallToAction: cta,
		Tags:         tags.Derive(req.Topic),
		WordCount:    textutil.CountWords(body),
	}
}

// resolveAudience mirrors the profile lookup's graceful fallback so the
// script header never shows an unknown audience value.
func resolveAudience(a core.Audience) core.Audience {
	switch a {
	case core.AudienceFounders, core.AudienceTechLeads, core.AudienceMarketers, core.AudienceGeneral:
		return a
	default:
		return core.AudienceGeneral
	}
}

func scriptHook(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf("What if I told you that %s could transform your business in ways you never imagined? Today, I'm going to share the exact framework that's helped dozens of companies achieve remarkable results.", clean)
}

func scriptIntro(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf("Hi everyone! I'm excited to talk about %s today because I've seen firsthand how it can completely change how organizations operate. In the next few minutes, I'll walk you through what %s really means, why it matters, and most importantly, how you can implement it successfully.", clean, clean)
}

func scriptMainPoints(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`**Point 1: Understanding the Fundamentals**
%s isn't just about processes, it's about mindset. The most successful implementations start with understanding WHY before jumping into HOW.

**Point 2: Common Implementation Challenges**
Most organizations struggle with three things: resistance to change, unclear objectives, and insufficient training. Here's how to avoid these pitfalls...

[presenter shares anecdotal evidence or real-world case study]

**Point 3: Building Sustainable Success**
Sustainable %s implementation requires ongoing commitment and continuous learning. It's not a one-time project, it's an ongoing journey.`, clean, clean)
}

func scriptDemonstration(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf("Let me show you exactly how this works in practice. [Insert demonstration of %s principles in action] This real-world example shows the difference between theoretical knowledge and practical application.", clean)
}

func scriptConclusion(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`%s isn't just another business trend, it's a fundamental shift in how successful organizations operate. The companies embracing these principles today are building sustainable competitive advantages that will serve them for years to come.

Remember: Success comes from consistent application of proven principles, not perfection on day one.`, clean)
}

func scriptCTA(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf("If you found this helpful, please like and subscribe for more content like this. And if you're ready to start your %s journey, check out the link in the description for our complete starter kit. Thanks for watching!", clean)
}
