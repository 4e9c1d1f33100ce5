package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tgbotosho/content-engine/pkg/analytics"
	"github.com/tgbotosho/content-engine/pkg/output"
)

var (
	analyticsFile        string
	analyticsDir         string
	analyticsSource      string
	analyticsPeriod      string
	analyticsNiche       string
	analyticsPlatform    string
	analyticsCompetitors string
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Performance analytics commands",
	Long:  "Aggregate post metrics, score them against niche benchmarks, and surface patterns",
}

var analyticsSummarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Build the weekly performance brief",
	Long: `Load posts from an export file, a directory of exports, or the
performance history, score them against niche benchmarks, and render
the weekly brief. Exits 1 when any analyzed niche is below benchmark.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		brief, err := analytics.Summarize(analyticsOptions())
		if err != nil {
			return err
		}
		if err := output.PrintReport(brief.Report, brief); err != nil {
			return err
		}
		if analytics.HasBelowBenchmark(brief) {
			os.Exit(1)
		}
		return nil
	},
}

var analyticsPostCmd = &cobra.Command{
	Use:   "post <post-id>",
	Short: "Deep-dive a single post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		post, view, err := analytics.DeepDive(analyticsOptions(), args[0])
		if err != nil {
			return err
		}
		return output.PrintReport(view, post)
	},
}

var analyticsTopicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List repurpose-worthy topics from top performers",
	RunE: func(cmd *cobra.Command, args []string) error {
		brief, err := analytics.Summarize(analyticsOptions())
		if err != nil {
			return err
		}
		if output.GetOutputFormat() == output.FormatJSON {
			return output.PrintJSON(brief.TopTopics)
		}
		if len(brief.TopTopics) == 0 {
			output.PrintInfo("No standout topics in this period.")
			return nil
		}
		headers := []string{"TOPIC", "ENGAGEMENT", "FORMAT", "POST"}
		rows := make([][]string, 0, len(brief.TopTopics))
		for _, t := range brief.TopTopics {
			rows = append(rows, []string{
				t.Title,
				fmt.Sprintf("%.2f%%", t.AvgEngagement),
				t.FormatType,
				t.BestPostID,
			})
		}
		output.PrintTable(headers, rows)
		return nil
	},
}

func analyticsOptions() analytics.Options {
	return analytics.Options{
		File:            analyticsFile,
		Dir:             analyticsDir,
		Source:          analyticsSource,
		Period:          analyticsPeriod,
		Niche:           analyticsNiche,
		Platform:        analyticsPlatform,
		CompetitorsFile: analyticsCompetitors,
	}
}

func init() {
	analyticsCmd.PersistentFlags().StringVar(&analyticsFile, "file", "", "Analytics export file (.csv or .json)")
	analyticsCmd.PersistentFlags().StringVar(&analyticsDir, "dir", "", "Directory of analytics exports")
	analyticsCmd.PersistentFlags().StringVar(&analyticsSource, "source", "", "Export source: linkedin, instagram, twitter, contentstudio")
	analyticsCmd.PersistentFlags().StringVar(&analyticsPeriod, "period", "week", "Period: week, month, all")
	analyticsCmd.PersistentFlags().StringVar(&analyticsNiche, "niche", "", "Restrict to one niche")
	analyticsCmd.PersistentFlags().StringVar(&analyticsPlatform, "platform", "", "Restrict to one platform")
	analyticsCmd.PersistentFlags().StringVar(&analyticsCompetitors, "competitors", "", "Competitor metrics file (.json)")

	analyticsCmd.AddCommand(analyticsSummarizeCmd)
	analyticsCmd.AddCommand(analyticsPostCmd)
	analyticsCmd.AddCommand(analyticsTopicsCmd)
}
