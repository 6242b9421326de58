package generate

import (
	"fmt"

	"copysmith/internal/core"
	"copysmith/internal/markdown"
	"copysmith/internal/tags"
	"copysmith/internal/textutil"
)

// campaignKind is the email sub-type chosen by the variation index.
type campaignKind string

const (
	campaignWelcome     campaignKind = "welcome"
	campaignEducational campaignKind = "educational"
	campaignPromotional campaignKind = "promotional"
)

var campaignKinds = []campaignKind{campaignWelcome, campaignEducational, campaignPromotional}

var campaignTitles = map[campaignKind][]string{
	campaignWelcome:     {"Welcome to the %s Journey", "Getting Started with %s"},
	campaignEducational: {"Understanding %s: A Complete Guide", "The Science Behind %s"},
	campaignPromotional: {"Transform Your Business with %s", "%s: The Game-Changer You Need"},
}

// campaignCTAs are fixed per sub-type; the request override does not apply
// to campaign emails.
var campaignCTAs = map[campaignKind]string{
	campaignWelcome:     "Access Your Starter Resources →",
	campaignEducational: "Download Free Guide →",
	campaignPromotional: "Claim Your Spot Now →",
}

// buildCampaignEmail assembles a subject line, a sub-type-specific body
// (welcome, educational, or promotional, chosen by index mod 3), and a
// footer. Campaign emails carry no markdown headings.
func buildCampaignEmail(req core.GenerationRequest, index int) core.ContentVariation {
	kind := campaignKinds[index%len(campaignKinds)]

	titleOptions := campaignTitles[kind]
	title := fmt.Sprintf(titleOptions[index%len(titleOptions)], req.Topic)

	body := fmt.Sprintf(`**Subject Line:** %s

---

**Email Body:**

%s

---

**Footer:**
%s
`,
		emailSubject(req.Topic, kind),
		emailBody(req.Topic, kind),
		emailFooter(req.Topic),
	)

	return core.ContentVariation{
		Title:        title,
		Body:         body,
		Headings:     markdown.ExtractHeadings(body),
		CallToAction: campaignCTAs[kind],
		Tags:         tags.Derive(req.Topic),
		WordCount:    textutil.CountWords(body),
	}
}

func emailSubject(topic string, kind campaignKind) string {
	clean := textutil.NormalizeTopic(topic)
	subjects := map[campaignKind][]string{
		campaignWelcome: {
			fmt.Sprintf("Welcome to the %s Success Hub! 🚀", clean),
			fmt.Sprintf("Getting Started with %s: Your Journey Begins Now", clean),
		},
		campaignEducational: {
			fmt.Sprintf("The Complete Guide to %s (Free)", clean),
			fmt.Sprintf("Understanding %s: What Everyone Gets Wrong", clean),
		},
		campaignPromotional: {
			fmt.Sprintf("Transform Your Business with %s", clean),
			fmt.Sprintf("%s: The Secret Your Competitors Don't Know", clean),
		},
	}
	return textutil.Pick(topic, subjects[kind])
}

func emailBody(topic string, kind campaignKind) string {
	clean := textutil.NormalizeTopic(topic)

	switch kind {
	case campaignWelcome:
		return fmt.Sprintf(`Hi there!

Welcome to our community of %s practitioners! 🎉

You've just joined thousands of professionals who are transforming their organizations through strategic %s implementation.

Here's what you can expect:

✓ Weekly insights and best practices
✓ Exclusive resources and templates
✓ Direct access to our expert team
✓ Member-only webinars and workshops

**Getting Started:**
1. Complete your profile in our member portal
2. Download your welcome package
3. Join our community discussion forum

Ready to dive in? Click below to access your starter resources!

Best regards,
The Team`, clean, clean)

	case campaignEducational:
		return fmt.Sprintf(`Hi,

I wanted to share something important about %s that most people miss.

After analyzing hundreds of implementations, I've noticed a pattern:

The successful companies aren't those with the biggest budgets or the latest tools, they're the ones that understand the fundamental principles behind %s.

**What Sets Successful Organizations Apart:**

1. They start with clear objectives, not trendy tools
2. They focus on cultural adoption first, technical implementation second
3. They measure progress continuously and adjust quickly
4. They invest in training and ongoing support

**The 80/20 Rule of %s:**
80%% of your results come from 20%% of the core principles. Master these fundamentals, and everything else becomes much easier.

Want to learn the specific 20%% that delivers massive results?

Download our comprehensive guide (completely free) and discover the framework that's helped organizations achieve remarkable transformation.

To your success,
The Team`, clean, clean, clean)

	default: // promotional
		return fmt.Sprintf(`Hi,

What if I told you that in 90 days, you could transform how your organization operates with %s?

I know that seems ambitious, but I've seen it happen dozens of times.

The secret isn't working harder, it's working smarter with proven frameworks that thousands of successful organizations use.

**Here's What You Get:**

✅ Our complete %s implementation toolkit
✅ Access to our exclusive member community
✅ Personalized consultation with our experts
✅ Ongoing support during your transformation

**Special Offer (Limited Time):**
Normally $997, but as a valued subscriber, you can access everything for just $297.

This includes everything you need to get started immediately:
- 25 proven templates and frameworks
- Video training series (5+ hours of content)
- Monthly group coaching calls
- Direct email support

**But this offer expires at midnight tonight.**

That's because we believe in results, not indefinite deliberation. If you're ready to transform your organization with %s, now's the time to act.

Click below to secure your spot before it's too late.

Best regards,
The Team

P.S. Questions? Just reply to this email, we personally read every response.`, clean, clean, clean)
	}
}

func emailFooter(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`---
**Need help implementing %s?**
Book a free consultation: [your-website.com/consultation]

**Connect with us:**
Blog | LinkedIn | Twitter | YouTube

© 2024 Your Company Name. All rights reserved.
You received this email because you subscribed to our newsletter.
Unsubscribe | Update preferences`, clean)
}
