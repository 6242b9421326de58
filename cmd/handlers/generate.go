package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"copysmith/internal/config"
	"copysmith/internal/core"
	"copysmith/internal/generate"
	"copysmith/internal/logger"
	"copysmith/internal/render"
)

// NewGenerateCmd creates the one-shot generation command.
func NewGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [topic]",
		Short: "Generate three content variations for a topic",
		Long: `Generate three structurally distinct variations of marketing copy for a
topic, plus an analysis report.

Examples:
  copysmith generate "Benefits of DevOps for Startups" --type article --audience founders
  copysmith generate "Remote Work" --type short-post --platform twitter --tone conversational
  copysmith generate "Platform Engineering" --type script --words 900 --save`,
		Args: cobra.ExactArgs(1),
		Run:  generateRunFunc,
	}

	generateCmd.Flags().StringP("type", "t", "article", "Content type: article, short-post, digest, script, campaign-email")
	generateCmd.Flags().StringP("audience", "a", "", "Target audience: founders, tech-leads, marketers, general")
	generateCmd.Flags().String("tone", "", "Tone: professional, conversational, persuasive, informative, humorous")
	generateCmd.Flags().IntP("words", "w", 0, "Target word count (0 uses the per-type default)")
	generateCmd.Flags().StringP("platform", "p", "", "Short-post platform: twitter, linkedin, facebook, instagram, general")
	generateCmd.Flags().String("cta", "", "Custom call-to-action override")
	generateCmd.Flags().Bool("no-examples", false, "Skip examples and statistics hints")
	generateCmd.Flags().Bool("no-seo", false, "Skip SEO keyword tag derivation")
	generateCmd.Flags().Bool("save", false, "Save variations and analysis to the output directory")
	generateCmd.Flags().StringP("output", "o", "", "Output directory for saved content (default from config)")
	generateCmd.Flags().Bool("analysis", false, "Print the analysis report after the variations")

	return generateCmd
}

func generateRunFunc(cmd *cobra.Command, args []string) {
	req := requestFromFlags(cmd, args[0])

	variations, analysis, err := generate.Generate(req)
	if err != nil {
		logger.Error("Content generation failed", err, "topic", req.Topic, "type", string(req.ContentType))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printVariations(variations)

	if showAnalysis, _ := cmd.Flags().GetBool("analysis"); showAnalysis {
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println(analysis)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		outputDir, _ := cmd.Flags().GetString("output")
		if outputDir == "" {
			outputDir = config.Get().Output.Directory
		}
		result, err := render.SaveContent(req, variations, analysis, outputDir)
		if err != nil {
			logger.Error("Failed to save content", err, "output_dir", outputDir)
			fmt.Fprintf(os.Stderr, "Error saving content: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %d variation files and %s\n", len(result.VariationPaths), result.AnalysisPath)
	}
}

// requestFromFlags builds a GenerationRequest from the command flags,
// filling unset audience/tone/platform from config defaults.
func requestFromFlags(cmd *cobra.Command, topic string) core.GenerationRequest {
	cfg := config.Get()

	contentType, _ := cmd.Flags().GetString("type")
	audience, _ := cmd.Flags().GetString("audience")
	tone, _ := cmd.Flags().GetString("tone")
	platform, _ := cmd.Flags().GetString("platform")
	if audience == "" {
		audience = cfg.Defaults.Audience
	}
	if tone == "" {
		tone = cfg.Defaults.Tone
	}
	if platform == "" {
		platform = cfg.Defaults.Platform
	}

	req := core.NewRequest(topic, core.ContentType(contentType), core.Audience(audience), core.Tone(tone))
	req.WordCount, _ = cmd.Flags().GetInt("words")
	req.Platform = core.Platform(platform)
	req.CallToAction, _ = cmd.Flags().GetString("cta")

	noExamples, _ := cmd.Flags().GetBool("no-examples")
	req.IncludeExamples = !noExamples
	noSEO, _ := cmd.Flags().GetBool("no-seo")
	req.IncludeSEO = !noSEO

	return req
}

// printVariations renders the generated batch to stdout.
func printVariations(variations []core.ContentVariation) {
	line := strings.Repeat("=", 60)
	for i, variation := range variations {
		fmt.Println(line)
		fmt.Printf("VARIATION %d: %s\n", i+1, variation.Title)
		fmt.Printf("Words: %d", variation.WordCount)
		if len(variation.Tags) > 0 {
			fmt.Printf(" | Tags: %s", strings.Join(variation.Tags, ", "))
		}
		fmt.Println()
		if variation.CallToAction != "" {
			fmt.Printf("CTA: %s\n", variation.CallToAction)
		}
		fmt.Println(line)
		fmt.Println(variation.Body)
		fmt.Println()
	}
}
