package generate

import (
	"fmt"
	"strings"

	"copysmith/internal/core"
	"copysmith/internal/markdown"
	"copysmith/internal/profiles"
	"copysmith/internal/tags"
	"copysmith/internal/textutil"
)

var articleTitles = []string{
	"The Ultimate Guide to %s",
	"Why %s Matters More Than You Think",
	"Transforming Your Business with %s: A Complete Guide",
	"The Hidden Benefits of %s You Need to Know",
	"Mastering %s: From Beginner to Expert",
}

// buildArticle assembles a long-form article: intro, problem, solution,
// benefits, implementation, examples, conclusion. Headings come from the
// "##" section markers; the CTA honors the request override.
func buildArticle(req core.GenerationRequest, index int) core.ContentVariation {
	title := fmt.Sprintf(articleTitles[index%len(articleTitles)], req.Topic)

	audience := profiles.AudienceFor(req.Audience)
	tone, _ := profiles.ToneFor(req.Tone)

	sections := []struct {
		heading string
		body    string
	}{
		{"The Problem", articleProblem(req.Topic, audience)},
		{"The Solution", articleSolution(req.Topic, tone)},
		{"Key Benefits", articleBenefits(req.Topic, tone)},
		{"Implementation", articleImplementation()},
		{"Real-World Examples", articleExamples(req.Topic, tone)},
	}

	var body strings.Builder
	body.WriteString(articleIntro(req.Topic, audience))
	body.WriteString("\n")
	for _, s := range sections {
		body.WriteString(fmt.Sprintf("## %s\n", s.heading))
		body.WriteString(s.body)
		body.WriteString("\n\n")
	}
	body.WriteString("## Conclusion\n")
	body.WriteString(articleConclusion(req.Topic))

	content := body.String()

	cta := req.CallToAction
	if cta == "" {
		cta = defaultArticleCTA(req.Topic)
	}

	var tagSet []string
	if req.IncludeSEO {
		tagSet = tags.Derive(req.Topic)
	}

	return core.ContentVariation{
		Title:        title,
		Body:         content,
		Headings:     markdown.ExtractHeadings(content),
		CallToAction: cta,
		Tags:         tagSet,
		WordCount:    textutil.CountWords(content),
	}
}

func articleIntro(topic string, audience profiles.AudienceProfile) string {
	clean := textutil.NormalizeTopic(topic)
	painPoints := strings.Join(audience.PainPoints[:min(2, len(audience.PainPoints))], ", ")

	intros := []string{
		fmt.Sprintf("In today's fast-paced business environment, %s has emerged as a critical factor for success. Whether you're dealing with %s or seeking sustainable growth, understanding %s can be the game-changer your organization needs.", clean, painPoints, clean),
		fmt.Sprintf("You've probably heard about %s, but do you truly understand its transformative potential? For %s professionals, this isn't just another trend: it's a fundamental shift that can revolutionize how you operate.", clean, audience.Interests[0]),
		fmt.Sprintf("The numbers don't lie: companies that successfully implement %s see remarkable improvements across multiple metrics. But here's what most people miss: it's not just about the technology or methodology, it's about the mindset shift that makes it all possible.", clean),
	}
	return textutil.Pick(topic, intros)
}

func articleProblem(topic string, audience profiles.AudienceProfile) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`Traditional approaches to %s often fall short because they fail to address fundamental challenges:

- **%s**: Most organizations struggle with this because they lack systematic approaches
- **Scalability Issues**: Rapid growth can quickly overwhelm unprepared teams
- **Resource Constraints**: Limited budgets and personnel create bottlenecks

These challenges aren't insurmountable, but they require a strategic, modern approach.`, clean, audience.PainPoints[0])
}

func articleSolution(topic string, tone profiles.ToneProfile) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`The solution lies in adopting a comprehensive %s strategy that addresses both immediate needs and long-term objectives.

**Core Principles:**

1. **Strategic Integration**: Seamlessly blend %s into existing workflows
2. **Team Alignment**: Ensure all stakeholders understand the value and implementation process
3. **Continuous Improvement**: Build mechanisms for ongoing optimization and adaptation

**Implementation Framework:**

- Start with pilot projects to demonstrate quick wins
- Scale proven methodologies across teams and departments
- Measure progress using established KPIs and metrics
- Iterate and refine based on real-world feedback

%s: Companies implementing this approach typically see 30-40%% improvements in key performance indicators within the first quarter.`, clean, clean, tone.ExampleLanguage)
}

func articleBenefits(topic string, tone profiles.ToneProfile) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`**Immediate Benefits:**

- **Improved Efficiency**: Streamlined processes reduce time-to-market by 25-40%%
- **Enhanced Quality**: Systematic approaches result in fewer errors and higher customer satisfaction
- **Cost Reduction**: Automation and optimization typically deliver 15-30%% cost savings

**Long-term Advantages:**

- **Competitive Edge**: Organizations that master %s consistently outperform competitors
- **Team Satisfaction**: Clear processes and continuous improvement boost employee engagement
- **Innovation Acceleration**: Structured frameworks enable faster experimentation and adaptation

**ROI Considerations:**

%s show that the average return on investment for %s initiatives ranges from 200-400%% within the first 18 months, making it one of the most valuable strategic investments available.`, clean, tone.ExampleLanguage, clean)
}

// articleImplementation is topic-independent: the rollout playbook reads the
// same regardless of subject.
func articleImplementation() string {
	return `**Getting Started:**

1. **Assessment Phase** (Weeks 1-2)
   - Conduct comprehensive analysis of current state
   - Identify key stakeholders and decision makers
   - Define success metrics and timeline

2. **Planning Phase** (Weeks 3-4)
   - Develop detailed implementation roadmap
   - Allocate resources and assign responsibilities
   - Create communication and training plans

3. **Execution Phase** (Months 2-6)
   - Implement pilot programs with select teams
   - Monitor progress and adjust strategies
   - Scale successful approaches across organization

**Common Pitfalls to Avoid:**

- **Scope Creep**: Keep initial implementation focused on core objectives
- **Insufficient Training**: Invest in comprehensive team education
- **Inadequate Metrics**: Establish clear measurement systems from the start
- **Cultural Resistance**: Address change management proactively

**Success Metrics:**

- Process efficiency improvements
- Cost reduction percentages
- Team satisfaction scores
- Customer satisfaction ratings`
}

func articleExamples(topic string, tone profiles.ToneProfile) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`**Case Study: Tech Startup Success Story**

A mid-stage startup implemented %s as part of their growth strategy. Within six months, they achieved:

- 45%% reduction in deployment time
- 60%% fewer production incidents
- 35%% improvement in customer satisfaction scores

**Industry Example: Enterprise Adoption**

A Fortune 500 company rolled out %s across 200+ teams globally. Key results included:

- $2.3M in annual cost savings
- 50%% faster feature delivery
- 80%% reduction in manual processes

%s consistently demonstrate that companies embracing %s outperform their peers across virtually every measurable dimension.`, clean, clean, tone.ExampleLanguage, clean)
}

func articleConclusion(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	return fmt.Sprintf(`The evidence is clear: %s represents a fundamental shift in how successful organizations operate. Rather than being an optional enhancement, it's becoming a competitive necessity.

**Key Takeaways:**

- Strategic implementation delivers measurable ROI within months, not years
- Success depends on cultural adoption, not just technical implementation
- Continuous improvement and adaptation are essential for long-term success

The question isn't whether to embrace %s, but how quickly you can get started. Organizations that delay implementation risk falling behind competitors who are already realizing the benefits.

**Ready to Transform Your Organization?**

The implementation journey begins with a single step: assessment of your current state and identification of immediate opportunities for improvement. With the right strategy and commitment, %s can transform your organization from reactive to proactive, from inefficient to optimized, and from good to great.`, clean, clean, clean)
}

func defaultArticleCTA(topic string) string {
	clean := textutil.NormalizeTopic(topic)
	ctas := []string{
		fmt.Sprintf("Ready to implement %s in your organization? Start with our free assessment tool.", clean),
		fmt.Sprintf("Want to learn more about %s? Download our comprehensive guide today.", clean),
		fmt.Sprintf("Start your %s journey today. Get personalized recommendations for your team.", clean),
		fmt.Sprintf("Transform your business with %s. Book a consultation to get started.", clean),
	}
	return textutil.Pick(topic, ctas)
}
