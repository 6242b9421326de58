package handlers

import (
	"github.com/spf13/cobra"

	"copysmith/internal/interactive"
)

// NewInteractiveCmd creates the menu-driven workflow command.
func NewInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Create content through an interactive menu workflow",
		Long: `Walk through content creation step by step: pick a content type,
audience, tone, and options through numbered menus, preview the generated
variations, and optionally save them to files.`,
		Run: func(cmd *cobra.Command, args []string) {
			interactive.NewHandler().Run()
		},
	}
}
