package analytics

import (
	"fmt"
	"sort"
	"strings"
)

var (
	sep    = strings.Repeat("═", 60)
	subSep = strings.Repeat("─", 60)
)

// formatComma renders an int with thousands separators for the deep dive
func formatComma(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}

func statusIcon(status string) string {
	switch status {
	case StatusAbove:
		return "✅"
	case StatusMeeting:
		return "✓ "
	default:
		return "⚠️"
	}
}

// renderPostSummary emits a three-line block for one post in a
// top/bottom performers list.
func renderPostSummary(lines *[]string, rank int, p PostMetrics, prefix string) {
	hook := p.HookWords
	if len([]rune(hook)) > 70 {
		hook = truncate(hook, 70) + "..."
	}
	*lines = append(*lines,
		fmt.Sprintf("  %s#%d  \"%s\"", prefix, rank, hook),
		fmt.Sprintf("       Engmt: %.1f%%  |  Comments: %d  |  Saves: %d  |  Shares: %d",
			p.EngagementRate, p.Comments, p.Saves, p.Shares),
		fmt.Sprintf("       Format: %s  |  Score: %.0f/100", p.FormatType, p.CompositeScore))
}

// RenderBrief renders the full weekly brief as plain text
func RenderBrief(brief *WeeklyBrief) string {
	var lines []string

	lines = append(lines,
		sep,
		"WEEKLY ANALYTICS BRIEF",
		sep,
		fmt.Sprintf("Period:   %s  →  %s", brief.PeriodStart, brief.PeriodEnd),
		"Niches:   "+strings.Join(brief.NichesAnalyzed, " | "),
		fmt.Sprintf("Posts:    %d analyzed", brief.TotalPosts),
		"Generated: "+brief.GeneratedAt,
		"",
		"OVERALL PERFORMANCE",
		fmt.Sprintf("  Avg Engagement Rate:  %.1f%%", brief.OverallAvgEngagement),
	)

	// Day keys are the non-numeric entries of each timing map
	dayAverages := newGroupMeans()
	for _, perf := range brief.NichePerformances {
		for _, day := range dayNames {
			if v, ok := perf.TimingInsights[day]; ok {
				dayAverages.add(day, v)
			}
		}
	}
	if len(dayAverages.order) > 0 {
		bestDay, _ := dayAverages.argmax()
		lines = append(lines, fmt.Sprintf("  Best Day (overall):   %s", bestDay))
	}

	overallFormats := newGroupMeans()
	for _, perf := range brief.NichePerformances {
		for _, f := range perf.formatOrder {
			overallFormats.add(f, perf.FormatBreakdown[f])
		}
	}
	if len(overallFormats.order) > 0 {
		bestFmt, bestVal := overallFormats.argmax()
		worstFmt, worstVal := overallFormats.argmin()
		lines = append(lines,
			fmt.Sprintf("  Best Format:          %s (%.1f%% avg)", bestFmt, bestVal),
			fmt.Sprintf("  Lowest Format:        %s (%.1f%% avg)", worstFmt, worstVal))
	}

	for _, perf := range brief.NichePerformances {
		lines = append(lines,
			"",
			subSep,
			fmt.Sprintf("NICHE: %s  (%d posts)  [%s]", perf.Niche, perf.PostCount, strings.ToUpper(perf.Platform)),
			subSep,
			"",
			"  TOP PERFORMERS")
		for i, p := range perf.TopPerformers {
			renderPostSummary(&lines, i+1, p, "")
			lines = append(lines, "")
		}
		lines = append(lines, "  BOTTOM PERFORMERS")
		for i, p := range perf.BottomPerformers {
			renderPostSummary(&lines, i+1, p, "⚠ ")
			lines = append(lines, "")
		}

		lines = append(lines,
			fmt.Sprintf("  BENCHMARK STATUS  %s %s", statusIcon(perf.BenchmarkStatus), perf.BenchmarkStatus),
			fmt.Sprintf("    Avg: %.1f%%  |  Target: %.1f%%  |  Delta: %+.1fpp",
				perf.AvgEngagementRate, perf.BenchmarkTarget, perf.AvgEngagementRate-perf.BenchmarkTarget),
			"")

		if len(perf.Patterns) > 0 {
			lines = append(lines, "  PATTERNS DETECTED")
			for _, pattern := range perf.Patterns {
				lines = append(lines, "    → "+pattern)
			}
			lines = append(lines, "")
		}

		if len(perf.HashtagPerformance) > 0 {
			lines = append(lines, "  HASHTAG PERFORMANCE")
			keys := append([]string(nil), perf.hashtagOrder...)
			if len(keys) == 0 {
				for k := range perf.HashtagPerformance {
					keys = append(keys, k)
				}
				sort.Strings(keys)
			}
			sort.SliceStable(keys, func(i, j int) bool {
				return perf.HashtagPerformance[keys[i]] > perf.HashtagPerformance[keys[j]]
			})
			if len(keys) > 3 {
				keys = keys[:3]
			}
			for _, k := range keys {
				lines = append(lines, fmt.Sprintf("    %s  →  %.1f%%", truncate(k, 50), perf.HashtagPerformance[k]))
			}
			lines = append(lines, "")
		}
	}

	if len(brief.CompetitorInsights) > 0 {
		lines = append(lines, subSep, "COMPETITOR SNAPSHOT", subSep, "")
		for _, comp := range brief.CompetitorInsights {
			sign := ""
			if comp.DeltaVsOurs > 0 {
				sign = "+"
			}
			lines = append(lines,
				fmt.Sprintf("  %s  (%s):  Avg %.1f%%  (%s%.1fpp vs us)",
					comp.Name, strings.ToUpper(comp.Platform), comp.AvgEngagementRate, sign, comp.DeltaVsOurs),
				fmt.Sprintf("    Top topic: \"%s\"  (%.1f%%)", comp.TopTopic, comp.TopTopicEngagement),
				"    → "+comp.SuggestedResponse,
				"")
		}
	}

	lines = append(lines, subSep, "RECOMMENDATIONS FOR NEXT WEEK", subSep, "")
	for i, rec := range brief.OverallRecommendations {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, rec))
	}
	lines = append(lines, "")

	if len(brief.TopTopics) > 0 {
		lines = append(lines, "TOP PERFORMING TOPICS (repurpose candidates)", "")
		topics := brief.TopTopics
		if len(topics) > 4 {
			topics = topics[:4]
		}
		for _, topic := range topics {
			lines = append(lines, fmt.Sprintf("  %.1f%%  |  %s  |  \"%s\"",
				topic.AvgEngagement, topic.FormatType, truncate(topic.Title, 60)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, sep)
	return strings.Join(lines, "\n")
}

// RenderDeepDive renders the single-post drill-down view
func RenderDeepDive(p *PostMetrics) string {
	hashtags := "N/A"
	if len(p.Hashtags) > 0 {
		hashtags = strings.Join(p.Hashtags, " ")
	}
	return fmt.Sprintf(`═══ POST DEEP DIVE ═══
ID:           %s
Niche:        %s  |  Platform: %s
Published:    %s
Format:       %s
Hook:         "%s"

ENGAGEMENT
  Impressions:   %s
  Reach:         %s
  Likes:         %d
  Comments:      %d  (%.2f%%)
  Saves:         %d  (%.2f%%)
  Shares:        %d  (%.2f%%)
  Link Clicks:   %d  (%.2f%%)
  Overall:       %.2f%%

SCORE:  %.0f/100  |  Benchmark delta: %+.2fpp
Hashtags: %s`,
		p.PostID, p.Niche, p.Platform, p.PublishedAt, p.FormatType, p.HookWords,
		formatComma(p.Impressions), formatComma(p.Reach),
		p.Likes,
		p.Comments, p.CommentRate,
		p.Saves, p.SaveRate,
		p.Shares, p.ShareRate,
		p.Clicks, p.ClickRate,
		p.EngagementRate,
		p.CompositeScore, p.BenchmarkDelta,
		hashtags)
}
