package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tgbotosho/content-engine/pkg/hashtag"
	"github.com/tgbotosho/content-engine/pkg/niche"
	"github.com/tgbotosho/content-engine/pkg/output"
)

var (
	hashtagNiche     string
	hashtagPlatform  string
	hashtagTopic     string
	hashtagEmergency bool
)

var hashtagsCmd = &cobra.Command{
	Use:   "hashtags",
	Short: "Hashtag rotation commands",
	Long:  "Recommend hashtag sets with cooldown-aware rotation per niche and platform",
}

var hashtagsRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the next hashtag set",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := hashtag.Recommend(hashtagNiche, hashtagPlatform, hashtagTopic, hashtagEmergency)
		if err != nil {
			return err
		}
		return output.PrintReport(set.Report, set)
	},
}

var hashtagsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Plan a week of hashtag sets",
	Long:  "Produce seven rotation sets, one per day, without recording usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := hashtag.WeekRotation(hashtagNiche, hashtagPlatform)
		if err != nil {
			return err
		}
		if output.GetOutputFormat() == output.FormatJSON {
			return output.PrintJSON(sets)
		}
		days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
		for i, set := range sets {
			fmt.Printf("%-10s Set %s: %s\n", days[i], set.SetLabel, strings.Join(set.Tags, " "))
		}
		return nil
	},
}

var hashtagsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cooldown status for a niche's pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := hashtag.Status(hashtagNiche)
		if err != nil {
			return err
		}
		fmt.Println(view)
		return nil
	},
}

var hashtagsMarkUsedCmd = &cobra.Command{
	Use:   "mark-used <tag>...",
	Short: "Record hashtags as used in a published post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !niche.Valid(hashtagNiche) {
			return fmt.Errorf("unknown niche '%s'", hashtagNiche)
		}
		path, err := hashtag.UsagePath()
		if err != nil {
			return err
		}
		if err := hashtag.MarkUsed(path, hashtagNiche, args); err != nil {
			return err
		}
		output.PrintSuccess("Recorded %d tag(s) for %s", len(args), hashtagNiche)
		return nil
	},
}

func init() {
	hashtagsCmd.PersistentFlags().StringVar(&hashtagNiche, "niche", niche.DefaultNiche, "Content niche")
	hashtagsCmd.PersistentFlags().StringVar(&hashtagPlatform, "platform", niche.DefaultPlatform, "Target platform")
	hashtagsRecommendCmd.Flags().StringVar(&hashtagTopic, "topic", "", "Post topic for relevance-weighted substitutions")
	hashtagsRecommendCmd.Flags().BoolVar(&hashtagEmergency, "emergency", false, "Pad with adjacent-niche tags for reach")

	hashtagsCmd.AddCommand(hashtagsRecommendCmd)
	hashtagsCmd.AddCommand(hashtagsWeekCmd)
	hashtagsCmd.AddCommand(hashtagsStatusCmd)
	hashtagsCmd.AddCommand(hashtagsMarkUsedCmd)
}
