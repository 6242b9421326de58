package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"copysmith/internal/core"
	"copysmith/internal/generate"
)

// exampleRequests are the canned showcase runs, one per content type.
var exampleRequests = []core.GenerationRequest{
	core.NewRequest("Benefits of DevOps for Startups", core.TypeArticle, core.AudienceFounders, core.ToneProfessional),
	core.NewRequest("Remote Work", core.TypeShortPost, core.AudienceGeneral, core.ToneConversational),
	core.NewRequest("AI in Marketing", core.TypeDigest, core.AudienceMarketers, core.ToneInformative),
	core.NewRequest("Microservices Architecture", core.TypeScript, core.AudienceTechLeads, core.ToneInformative),
	core.NewRequest("Cloud Cost Optimization", core.TypeCampaignEmail, core.AudienceFounders, core.TonePersuasive),
}

// NewExampleCmd creates the showcase command: it runs a canned request per
// content type and prints the first variation of each.
func NewExampleCmd() *cobra.Command {
	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Run showcase generations across all content types",
		Long: `Generate example content for a canned request per content type and show
the first variation of each, demonstrating what every format produces.`,
		Run: exampleRunFunc,
	}
	exampleCmd.Flags().Bool("full", false, "Print full bodies instead of previews")
	return exampleCmd
}

func exampleRunFunc(cmd *cobra.Command, args []string) {
	full, _ := cmd.Flags().GetBool("full")
	line := strings.Repeat("=", 60)

	for _, req := range exampleRequests {
		fmt.Println(line)
		fmt.Printf("EXAMPLE: %q as %s (%s, %s)\n", req.Topic, req.ContentType, req.Audience, req.Tone)
		fmt.Println(line)

		variations, _, err := generate.Generate(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating example: %v\n", err)
			os.Exit(1)
		}

		variation := variations[0]
		fmt.Printf("Title: %s\n", variation.Title)
		fmt.Printf("Word Count: %d\n", variation.WordCount)
		if variation.CallToAction != "" {
			fmt.Printf("CTA: %s\n", variation.CallToAction)
		}
		if len(variation.Tags) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(variation.Tags, ", "))
		}

		body := variation.Body
		if !full && len(body) > 500 {
			body = body[:500] + "..."
		}
		fmt.Printf("\n%s\n\n", body)
	}
}
