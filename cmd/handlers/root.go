package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"copysmith/internal/config"
	"copysmith/internal/logger"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "copysmith",
		Short: "copysmith generates marketing copy in multiple formats from a structured request",
		Long: `copysmith is a deterministic content-generation engine and CLI. Given a
topic, content type, target audience, and tone it produces three
structurally distinct variations (articles, short posts, digests, video
scripts, campaign emails) plus an analysis report.

Examples:
  copysmith generate "Benefits of DevOps for Startups" --type article --audience founders --tone professional
  copysmith generate "Remote Work" --type short-post --platform twitter --tone conversational --save
  copysmith interactive
  copysmith tui "Platform Engineering" --type digest
  copysmith types`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.copysmith.yaml)")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewInteractiveCmd())
	rootCmd.AddCommand(NewTUICmd())
	rootCmd.AddCommand(NewTypesCmd())
	rootCmd.AddCommand(NewExampleCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads the config file and environment, then applies the
// configured log level.
func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.App.LogLevel)
}
