package generate

import (
	"fmt"

	"copysmith/internal/core"
	"copysmith/internal/tags"
	"copysmith/internal/textutil"
)

// platformBudget is the character limit applied to short-post bodies.
// Unknown platforms fall back to the general budget.
func platformBudget(p core.Platform) int {
	switch p {
	case core.PlatformTwitter:
		return 280
	case core.PlatformLinkedIn:
		return 700
	case core.PlatformFacebook:
		return 500
	case core.PlatformInstagram:
		return 2200
	default:
		return 300
	}
}

// buildShortPost assembles a social post. The variation index selects the
// framing: 0 = question hook, 1 = value hook, 2 = story hook. The body is
// truncated to the platform budget without splitting words; short posts
// have no structural headings.
func buildShortPost(req core.GenerationRequest, index int) core.ContentVariation {
	limit := platformBudget(req.Platform)

	var title, body string
	switch index % variationCount {
	case 0:
		title = fmt.Sprintf("Quick Tip: %s", req.Topic)
		body = questionPost(req.Topic, limit)
	case 1:
		title = fmt.Sprintf("%s Explained", req.Topic)
		body = valuePost(req.Topic, limit)
	default:
		title = fmt.Sprintf("My Experience with %s", req.Topic)
		body = storyPost(req.Topic, limit)
	}

	return core.ContentVariation{
		Title:        title,
		Body:         body,
		Headings:     nil,
		CallToAction: shortPostCTA(req.Topic, req.Platform),
		Tags:         tags.Derive(req.Topic),
		WordCount:    textutil.CountWords(body),
	}
}

func questionPost(topic string, limit int) string {
	clean := textutil.NormalizeTopic(topic)
	questions := []string{
		fmt.Sprintf("What's the biggest challenge you face with %s? 🤔", clean),
		fmt.Sprintf("Have you tried implementing %s in your organization? What worked? What didn't?", clean),
		fmt.Sprintf("If you could improve one thing about %s, what would it be?", clean),
		fmt.Sprintf("What advice would you give someone starting with %s?", clean),
	}

	post := textutil.Pick(topic, questions) +
		"\n\n💡 Share your thoughts below! Learning from each other's experiences helps us all grow." +
		"\n\n" + tags.Hashtags(topic)
	return textutil.Truncate(post, limit)
}

func valuePost(topic string, limit int) string {
	clean := textutil.NormalizeTopic(topic)
	hooks := []string{
		fmt.Sprintf("🚀 %s Tip: Most organizations overlook this key principle...", clean),
		fmt.Sprintf("💡 Quick %s insight: The difference between success and failure often comes down to this one thing:", clean),
		fmt.Sprintf("⚡ %s Fact: Companies that do this correctly see 3x better results than those who don't", clean),
		fmt.Sprintf("🎯 %s Strategy: Stop focusing on tools, start focusing on this instead", clean),
	}

	post := textutil.Pick(topic, hooks) +
		"\n\nProper implementation requires understanding both the technical AND human elements. Many teams focus solely on the mechanics and miss the cultural transformation that drives success." +
		"\n\n" + tags.Hashtags(topic)
	return textutil.Truncate(post, limit)
}

func storyPost(topic string, limit int) string {
	clean := textutil.NormalizeTopic(topic)
	stories := []string{
		fmt.Sprintf("When we first started implementing %s, we made every mistake in the book 😅", clean),
		fmt.Sprintf("Two years ago, our team was struggling with %s. Here's what changed everything...", clean),
		fmt.Sprintf("I used to think %s was just another business buzzword. Then I saw the results.", clean),
		fmt.Sprintf("The most surprising thing about %s? It wasn't what I expected at all...", clean),
	}

	post := textutil.Pick(topic, stories) +
		"\n\nLesson learned: Success comes from consistent application of proven principles, not flashy tools or overnight transformations." +
		"\n\n" + tags.Hashtags(topic)
	return textutil.Truncate(post, limit)
}

func shortPostCTA(topic string, platform core.Platform) string {
	clean := textutil.NormalizeTopic(topic)
	if platform == core.PlatformLinkedIn {
		return fmt.Sprintf("Looking to implement %s? Let's connect and discuss how we can help your organization succeed.", clean)
	}
	return fmt.Sprintf("What's your experience with %s? Share your thoughts in the comments! 💬", clean)
}
