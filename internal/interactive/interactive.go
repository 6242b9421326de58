// Package interactive implements the prompt-driven front-end: it gathers
// GenerationRequest fields through numbered menus, runs the engine, renders
// the results, and offers to save them. It is a collaborator of the engine
// and owns its own recoverable errors: invalid input re-prompts, filesystem
// failures are reported, and nothing here crashes the process.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"copysmith/internal/config"
	"copysmith/internal/core"
	"copysmith/internal/generate"
	"copysmith/internal/logger"
	"copysmith/internal/render"
)

// previewLen bounds the body preview shown before the full-view prompt.
const previewLen = 300

// Handler manages the interactive content-creation workflow.
type Handler struct {
	sessionID string
	scanner   *bufio.Scanner
	out       io.Writer
	running   bool
}

// NewHandler creates a handler reading from stdin and writing to stdout.
func NewHandler() *Handler {
	return &Handler{
		sessionID: uuid.New().String(),
		scanner:   bufio.NewScanner(os.Stdin),
		out:       os.Stdout,
	}
}

// Run starts the main menu loop and blocks until the user exits.
func (h *Handler) Run() {
	h.running = true
	logger.Debug("Interactive session started", "session_id", h.sessionID)
	h.printWelcome()

	for h.running {
		h.printMenu()
		switch h.promptChoice("Enter your choice (1-4): ", 4) {
		case 1:
			h.createContent()
		case 2:
			h.previewContentTypes()
		case 3:
			h.showExample()
		case 4:
			h.exit()
		case 0:
			// Input stream closed.
			h.exit()
		}
	}
}

func (h *Handler) printWelcome() {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(h.out, line)
	fmt.Fprintln(h.out, "🚀 COPYSMITH")
	fmt.Fprintln(h.out, line)
	fmt.Fprintln(h.out, "Generate marketing copy across multiple formats:")
	for _, t := range core.ContentTypes() {
		fmt.Fprintf(h.out, "• %s\n", t)
	}
	fmt.Fprintln(h.out, line)
}

func (h *Handler) printMenu() {
	fmt.Fprintln(h.out, "\n📝 MAIN MENU")
	fmt.Fprintln(h.out, strings.Repeat("-", 30))
	fmt.Fprintln(h.out, "1. Create Content")
	fmt.Fprintln(h.out, "2. Preview Content Types")
	fmt.Fprintln(h.out, "3. Show Example")
	fmt.Fprintln(h.out, "4. Exit")
	fmt.Fprintln(h.out, strings.Repeat("-", 30))
}

// createContent walks the full gather/generate/display/save workflow.
func (h *Handler) createContent() {
	fmt.Fprintln(h.out, "\n🎯 CONTENT CREATION")
	fmt.Fprintln(h.out, strings.Repeat("-", 40))

	req, ok := h.gatherRequest()
	if !ok {
		return
	}

	fmt.Fprintln(h.out, "\n⚙️ Generating content...")
	variations, analysis, err := generate.Generate(req)
	if err != nil {
		fmt.Fprintf(h.out, "❌ Error creating content: %v\n", err)
		return
	}

	h.displayResults(variations, analysis)
	h.offerSave(req, variations, analysis)
}

// gatherRequest prompts for every request field, applying the documented
// defaults. The second return is false when input ends mid-gather.
func (h *Handler) gatherRequest() (core.GenerationRequest, bool) {
	topic, ok := h.promptRequired("📌 Topic: ")
	if !ok {
		return core.GenerationRequest{}, false
	}

	contentType := h.selectContentType()
	audience := h.selectAudience()
	tone := h.selectTone()

	fmt.Fprintln(h.out, "\n🔧 ADDITIONAL OPTIONS")
	fmt.Fprintln(h.out, strings.Repeat("-", 25))

	req := core.NewRequest(topic, contentType, audience, tone)
	req.WordCount = h.promptWordCount(contentType)
	if contentType == core.TypeShortPost {
		req.Platform = h.selectPlatform()
	}
	req.CallToAction = h.promptLine("Custom call-to-action (optional, press Enter to skip): ")
	req.IncludeExamples = h.promptBool("Include examples and statistics? (y/n) ", true)
	req.IncludeSEO = h.promptBool("Include SEO keyword tags? (y/n) ", true)

	return req, true
}

func (h *Handler) selectContentType() core.ContentType {
	options := core.ContentTypes()
	fmt.Fprintln(h.out, "\n📄 CONTENT TYPE")
	for i, t := range options {
		fmt.Fprintf(h.out, "%d. %s\n", i+1, t)
	}
	choice := h.promptChoice(fmt.Sprintf("Select content type (1-%d): ", len(options)), len(options))
	if choice == 0 {
		choice = 1
	}
	return options[choice-1]
}

func (h *Handler) selectAudience() core.Audience {
	options := core.Audiences()
	fmt.Fprintln(h.out, "\n👥 TARGET AUDIENCE")
	for i, a := range options {
		fmt.Fprintf(h.out, "%d. %s\n", i+1, a)
	}
	choice := h.promptChoice(fmt.Sprintf("Select target audience (1-%d): ", len(options)), len(options))
	if choice == 0 {
		return core.AudienceGeneral
	}
	return options[choice-1]
}

func (h *Handler) selectTone() core.Tone {
	options := core.Tones()
	fmt.Fprintln(h.out, "\n🎭 CONTENT TONE")
	for i, t := range options {
		fmt.Fprintf(h.out, "%d. %s\n", i+1, t)
	}
	choice := h.promptChoice(fmt.Sprintf("Select tone (1-%d): ", len(options)), len(options))
	if choice == 0 {
		return core.ToneProfessional
	}
	return options[choice-1]
}

func (h *Handler) selectPlatform() core.Platform {
	options := core.Platforms()
	fmt.Fprintln(h.out, "\n📱 SOCIAL MEDIA PLATFORM")
	for i, p := range options {
		fmt.Fprintf(h.out, "%d. %s\n", i+1, p)
	}
	line := h.promptLine(fmt.Sprintf("Select platform (1-%d) or press Enter for general: ", len(options)))
	if line == "" {
		return core.PlatformGeneral
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	fmt.Fprintln(h.out, "❌ Invalid choice, using general.")
	return core.PlatformGeneral
}

func (h *Handler) promptWordCount(contentType core.ContentType) int {
	fallback := core.DefaultWordCount(contentType)
	for {
		line := h.promptLine(fmt.Sprintf("Word count (default: %d, press Enter for default): ", fallback))
		if line == "" {
			return 0 // Builder applies the per-type default.
		}
		count, err := strconv.Atoi(line)
		if err != nil || count <= 0 {
			fmt.Fprintln(h.out, "❌ Please enter a positive number.")
			continue
		}
		return count
	}
}

// displayResults shows a summary, a preview per variation with an optional
// full view, and an optional analysis dump.
func (h *Handler) displayResults(variations []core.ContentVariation, analysis string) {
	line := strings.Repeat("=", 50)
	fmt.Fprintln(h.out, "\n🎉 CONTENT GENERATED SUCCESSFULLY!")
	fmt.Fprintln(h.out, line)
	fmt.Fprintf(h.out, "📊 Summary: %d variations generated\n", len(variations))
	fmt.Fprintln(h.out, line)

	for i, variation := range variations {
		fmt.Fprintf(h.out, "\n📄 VARIATION %d\n", i+1)
		fmt.Fprintln(h.out, strings.Repeat("-", 30))
		fmt.Fprintf(h.out, "🎯 Title: %s\n", variation.Title)
		fmt.Fprintf(h.out, "📏 Word Count: %d\n", variation.WordCount)
		if len(variation.Tags) > 0 {
			fmt.Fprintf(h.out, "🔖 Tags: %s\n", strings.Join(variation.Tags, ", "))
		}
		if variation.CallToAction != "" {
			fmt.Fprintf(h.out, "📢 CTA: %s\n", variation.CallToAction)
		}

		preview := variation.Body
		if len(preview) > previewLen {
			preview = preview[:previewLen] + "..."
		}
		fmt.Fprintf(h.out, "\n📝 Preview:\n%s\n", preview)

		if h.promptBool("\nShow full content? (y/n) ", false) {
			fmt.Fprintf(h.out, "\n📄 FULL CONTENT - VARIATION %d\n%s\n%s\n%s\n", i+1, line, variation.Body, line)
		}
	}

	if h.promptBool("\nView detailed analysis? (y/n) ", false) {
		fmt.Fprintf(h.out, "\n📊 DETAILED ANALYSIS\n%s\n%s\n", line, analysis)
	}
}

func (h *Handler) offerSave(req core.GenerationRequest, variations []core.ContentVariation, analysis string) {
	if !h.promptBool("\nSave content to files? (y/n) ", false) {
		return
	}
	result, err := render.SaveContent(req, variations, analysis, config.Get().Output.Directory)
	if err != nil {
		fmt.Fprintf(h.out, "❌ Error saving content: %v\n", err)
		return
	}
	fmt.Fprintf(h.out, "✅ Content saved: %d variation files + %s\n", len(result.VariationPaths), result.AnalysisPath)
}

// previewContentTypes prints the content-type catalog with default lengths.
func (h *Handler) previewContentTypes() {
	fmt.Fprintln(h.out, "\n📖 CONTENT TYPE PREVIEWS")
	fmt.Fprintln(h.out, strings.Repeat("=", 50))

	descriptions := map[core.ContentType]string{
		core.TypeArticle:       "Long-form guide with section headings, examples, and actionable insights",
		core.TypeShortPost:     "Platform-optimized post with hashtags and engagement hooks",
		core.TypeDigest:        "Newsletter issue with welcome, featured, and trending sections",
		core.TypeScript:        "Complete video script with hook, timing markers, and production notes",
		core.TypeCampaignEmail: "Subject line, campaign body, and compelling call-to-action",
	}

	for _, t := range core.ContentTypes() {
		fmt.Fprintf(h.out, "\n📄 %s\n", strings.ToUpper(string(t)))
		fmt.Fprintf(h.out, "   📏 Default length: %d words\n", core.DefaultWordCount(t))
		fmt.Fprintf(h.out, "   📝 Features: %s\n", descriptions[t])
	}
}

// showExample generates the canned showcase request and prints the first
// variation.
func (h *Handler) showExample() {
	fmt.Fprintln(h.out, "\n🔥 EXAMPLE: 'Benefits of DevOps for Startups'")
	fmt.Fprintln(h.out, strings.Repeat("=", 60))

	req := core.NewRequest("Benefits of DevOps for Startups", core.TypeArticle, core.AudienceFounders, core.ToneProfessional)

	fmt.Fprintln(h.out, "⚙️ Generating example content...")
	variations, analysis, err := generate.Generate(req)
	if err != nil {
		fmt.Fprintf(h.out, "❌ Error generating example: %v\n", err)
		return
	}
	h.displayResults(variations[:1], analysis)
}

func (h *Handler) exit() {
	fmt.Fprintln(h.out, "\n👋 Thanks for using copysmith. Happy creating!")
	h.running = false
}

// promptLine reads one trimmed line, returning "" at end of input.
func (h *Handler) promptLine(prompt string) string {
	fmt.Fprint(h.out, prompt)
	if !h.scanner.Scan() {
		h.running = false
		return ""
	}
	return strings.TrimSpace(h.scanner.Text())
}

// promptRequired re-prompts until a non-empty line arrives; the second
// return is false when input ends first.
func (h *Handler) promptRequired(prompt string) (string, bool) {
	for h.running {
		if line := h.promptLine(prompt); line != "" {
			return line, true
		}
		if h.running {
			fmt.Fprintln(h.out, "❌ This field is required.")
		}
	}
	return "", false
}

// promptChoice reads a menu number in [1, max], re-prompting on invalid
// input. It returns 0 when the input stream ends.
func (h *Handler) promptChoice(prompt string, max int) int {
	for h.running {
		line := h.promptLine(prompt)
		if !h.running {
			break
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= max {
			return n
		}
		fmt.Fprintf(h.out, "❌ Invalid choice. Please enter 1-%d.\n", max)
	}
	return 0
}

// promptBool reads a yes/no answer, with Enter selecting the default.
func (h *Handler) promptBool(prompt string, fallback bool) bool {
	hint := "N"
	if fallback {
		hint = "Y"
	}
	for h.running {
		line := strings.ToLower(h.promptLine(fmt.Sprintf("%s(default: %s): ", prompt, hint)))
		switch line {
		case "":
			return fallback
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			if h.running {
				fmt.Fprintln(h.out, "❌ Please enter y/n or yes/no.")
			}
		}
	}
	return fallback
}
