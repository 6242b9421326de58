package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"copysmith/internal/generate"
	"copysmith/internal/logger"
	"copysmith/internal/tui"
)

// NewTUICmd creates the terminal-browser command: generate a batch, then
// open it in the two-pane viewer.
func NewTUICmd() *cobra.Command {
	tuiCmd := &cobra.Command{
		Use:   "tui [topic]",
		Short: "Generate content and browse it in a terminal UI",
		Long: `Generate three variations for a topic and open them in an interactive
terminal browser: variation list on the left, full body on the right,
with an analysis toggle.

Example:
  copysmith tui "Platform Engineering" --type digest --audience tech-leads`,
		Args: cobra.ExactArgs(1),
		Run:  tuiRunFunc,
	}

	tuiCmd.Flags().StringP("type", "t", "article", "Content type: article, short-post, digest, script, campaign-email")
	tuiCmd.Flags().StringP("audience", "a", "", "Target audience: founders, tech-leads, marketers, general")
	tuiCmd.Flags().String("tone", "", "Tone: professional, conversational, persuasive, informative, humorous")
	tuiCmd.Flags().IntP("words", "w", 0, "Target word count (0 uses the per-type default)")
	tuiCmd.Flags().StringP("platform", "p", "", "Short-post platform: twitter, linkedin, facebook, instagram, general")
	tuiCmd.Flags().String("cta", "", "Custom call-to-action override")
	tuiCmd.Flags().Bool("no-examples", false, "Skip examples and statistics hints")
	tuiCmd.Flags().Bool("no-seo", false, "Skip SEO keyword tag derivation")

	return tuiCmd
}

func tuiRunFunc(cmd *cobra.Command, args []string) {
	req := requestFromFlags(cmd, args[0])

	variations, analysis, err := generate.Generate(req)
	if err != nil {
		logger.Error("Content generation failed", err, "topic", req.Topic, "type", string(req.ContentType))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Browse(variations, analysis); err != nil {
		logger.Error("Content browser failed", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
