package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tgbotosho/content-engine/pkg/hook"
	"github.com/tgbotosho/content-engine/pkg/niche"
	"github.com/tgbotosho/content-engine/pkg/output"
)

var (
	hookNiche    string
	hookPlatform string
	hookTopic    string
	hookContext  string
	hookTopN     int
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Hook generation and scoring commands",
	Long:  "Generate opening-line variants for a topic, or score an existing hook, in each niche's voice",
}

var hooksGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate ranked hook variants for a topic",
	Long: `Build all eight hook types for a topic, score them for specificity,
voice, tension, and platform fit, and rank them. Exits 1 when even the
top pick scores below the recommended threshold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := hook.Generate(hookNiche, hookTopic, hookPlatform, hookContext, hookTopN)
		if err != nil {
			return err
		}
		if err := output.PrintReport(report.Report, report); err != nil {
			return err
		}
		if top := report.TopHook(); top == nil || top.Score < 7.0 {
			os.Exit(1)
		}
		return nil
	},
}

var hooksScoreCmd = &cobra.Command{
	Use:   "score <hook-text>",
	Short: "Score an existing hook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := hook.ScoreExisting(args[0], hookNiche, hookPlatform)
		if output.GetOutputFormat() == output.FormatJSON {
			if err := output.PrintJSON(result); err != nil {
				return err
			}
		} else {
			output.PrintInfo("Type:   %s", result.HookType)
			output.PrintInfo("Score:  %.1f  (%s)", result.Score, result.Label)
			output.PrintInfo("Notes:  %s", result.Notes)
		}
		if result.Score < 7.0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	hooksCmd.PersistentFlags().StringVar(&hookNiche, "niche", niche.DefaultNiche, "Content niche")
	hooksCmd.PersistentFlags().StringVar(&hookPlatform, "platform", niche.DefaultPlatform, "Target platform")
	hooksGenerateCmd.Flags().StringVar(&hookTopic, "topic", "", "Topic to generate hooks for")
	hooksGenerateCmd.Flags().StringVar(&hookContext, "context", "", "Angle or insight to weave into the hooks")
	hooksGenerateCmd.Flags().IntVar(&hookTopN, "top", 0, "Limit the rendered report to the top N hooks")
	_ = hooksGenerateCmd.MarkFlagRequired("topic")

	hooksCmd.AddCommand(hooksGenerateCmd)
	hooksCmd.AddCommand(hooksScoreCmd)
}
