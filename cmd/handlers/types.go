package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"copysmith/internal/core"
)

// NewTypesCmd creates the content-type catalog command.
func NewTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported content types and their structure",
		Run: func(cmd *cobra.Command, args []string) {
			printContentTypes()
		},
	}
}

func printContentTypes() {
	catalog := []struct {
		contentType core.ContentType
		structure   string
	}{
		{core.TypeArticle, "intro, problem, solution, benefits, implementation, examples, conclusion"},
		{core.TypeShortPost, "single hook (question, value, or story) with hashtags; platform character budget applies"},
		{core.TypeDigest, "welcome banner, featured section, trending section, closing, postscript; fixed subscribe CTA"},
		{core.TypeScript, "hook, intro, main points, demonstration, conclusion, CTA, production notes; timed section headers"},
		{core.TypeCampaignEmail, "subject line, campaign body (welcome/educational/promotional by variation), footer"},
	}

	fmt.Println("Supported content types:")
	for _, entry := range catalog {
		fmt.Printf("\n  %-15s default %d words\n", entry.contentType, core.DefaultWordCount(entry.contentType))
		fmt.Printf("    %s\n", entry.structure)
	}
	fmt.Println("\nAudiences: founders, tech-leads, marketers, general (unknown values fall back to general)")
	fmt.Println("Tones:     professional, conversational, persuasive, informative, humorous")
	fmt.Println("Platforms: twitter (280), linkedin (700), facebook (500), instagram (2200), general (300)")
}
