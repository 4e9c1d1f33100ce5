package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tgbotosho/content-engine/pkg/config"
	"github.com/tgbotosho/content-engine/pkg/logger"
	"github.com/tgbotosho/content-engine/pkg/output"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "content-engine",
	Short: "Content Engine - analytics and scoring for a multi-niche content business",
	Long: `Content Engine is a command-line toolkit for running a multi-niche
content operation. It aggregates post analytics against per-niche
benchmarks, rotates hashtag sets, generates and scores hooks,
analyzes long-form SEO, validates voice rules, and synthesizes
research into content briefs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		if !output.ValidateOutputFormat(outputFmt) {
			fmt.Fprintf(os.Stderr, "Error: invalid output format %q (use text or json)\n", outputFmt)
			os.Exit(1)
		}

		// Save output format to config
		config.Set("output.format", outputFmt)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/content-engine/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(hashtagsCmd)
	rootCmd.AddCommand(hooksCmd)
	rootCmd.AddCommand(seoCmd)
	rootCmd.AddCommand(voiceCmd)
	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(versionCmd)
}
