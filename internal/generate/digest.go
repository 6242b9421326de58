package generate

import (
	"fmt"

	"copysmith/internal/core"
	"copysmith/internal/markdown"
	"copysmith/internal/tags"
	"copysmith/internal/textutil"
)

var digestTitles = []string{
	"Weekly Insights: %s",
	"The %s Newsletter",
	"Trending: %s Update",
	"Deep Dive: %s",
}

// subscribeCTA is fixed for digests; a request override is ignored because
// the subscribe prompt is part of the format.
const subscribeCTA = "Subscribe to our weekly newsletter for more insights like this!"

// buildDigest assembles a newsletter-style issue: welcome banner, featured
// section, trending section, closing thoughts, and a postscript.
func buildDigest(req core.GenerationRequest, index int) core.ContentVariation {
	title := fmt.Sprintf(digestTitles[index%len(digestTitles)], req.Topic)

	body := fmt.Sprintf(`## Welcome to This Week's Issue

%s

## Featured Article: %s

%s

## What's Trending

%s

## Closing Thoughts

%s

---
P.S. %s
`,
		digestWelcome(req.Topic),
		req.Topic,
		digestFeatured(req.Topic),
		digestTrending(req.Topic),
		digestClosing(req.Topic),
		digestPostscript(req.Topic),
	)

	return core.ContentVariation{
		Title:        title,
		Body:         body,
		Headings:     markdown.ExtractHeadings(body),
		CallToAction: subscribeCTA,
		Tags:         tags.Derive(req.Topic),
		WordCount:    textutil.CountWords(body),
	}
}

func digestWelcome(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf("In this week's newsletter, we're diving deep into %s and its impact on modern business. Whether you're just getting started or looking to optimize your current approach, this edition has something for everyone.", clean)
}

func digestFeatured(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`**Understanding %s**

Recent industry data shows that organizations embracing %s principles see significant improvements across multiple metrics:

- 35%% faster project completion times
- 40%% reduction in manual errors
- 60%% improvement in team collaboration

But here's what's interesting: successful implementation isn't just about following processes, it's about creating a culture of continuous improvement.

**Key Implementation Strategies:**

1. **Start Small**: Begin with pilot projects in select teams
2. **Measure Everything**: Establish clear KPIs before implementation
3. **Communicate Value**: Ensure all stakeholders understand the benefits
4. **Iterate Quickly**: Use feedback loops to refine approaches

The companies seeing the best results aren't those with the most sophisticated tools, they're those with the clearest understanding of what they're trying to achieve.`, clean, clean)
}

func digestTrending(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`**Industry Spotlight**: This week, we're featuring how TechCorp successfully scaled %s across 500+ employees in just 4 months. Their secret? Focusing on human elements before technical implementation.

**Quick Question**: What's been your biggest challenge with %s implementation? Reply to this email and we'll feature the best insights in next week's edition.

**Resource Spotlight**: Check out our updated %s toolkit with 15 proven templates and frameworks.`, clean, clean, clean)
}

func digestClosing(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`The future belongs to organizations that can adapt quickly and continuously improve. %s provides the framework for exactly that kind of transformation.

Whether you're just beginning your journey or looking to take your current implementation to the next level, focus on the fundamentals: clear strategy, proper communication, and consistent execution.

What questions do you have about %s? We'd love to hear from you, just reply to this email.`, clean, clean)
}

func digestPostscript(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf("Don't forget: %s is a marathon, not a sprint. Take time to celebrate small wins along the way! 🎉", clean)
}
