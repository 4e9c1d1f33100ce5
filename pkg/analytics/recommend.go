package analytics

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/niche"
)

const maxNicheRecommendations = 4

// buildNicheRecommendations produces up to four next-week actions for one
// niche group. Candidates are evaluated in priority order: benchmark gap,
// format mix, timing, repurpose, then the save-rate bonus.
func buildNicheRecommendations(perf *NichePerformance, group []PostMetrics, bench niche.Benchmark, target float64) []string {
	var recs []string

	if perf.BenchmarkStatus == StatusBelow {
		recs = append(recs, fmt.Sprintf(
			"[%s] Avg %.1f%% is %.1fpp below %.1f%% target — test '%s' format (your top performer this period)",
			perf.Niche, perf.AvgEngagementRate, math.Abs(perf.AvgEngagementRate-target), target, perf.BestFormat))
	}

	if perf.BestFormat != "" && perf.WorstFormat != "" {
		bestRate := perf.FormatBreakdown[perf.BestFormat]
		worstRate := perf.FormatBreakdown[perf.WorstFormat]
		if bestRate > worstRate*1.5 {
			recs = append(recs, fmt.Sprintf(
				"[%s] '%s' format: %.1f%% vs '%s': %.1f%% — shift mix toward %s",
				perf.Niche, perf.BestFormat, bestRate, perf.WorstFormat, worstRate, perf.BestFormat))
		}
	}

	if perf.BestDay != "N/A" {
		recs = append(recs, fmt.Sprintf(
			"[%s] Post on %s at %s — historically highest reach/engagement",
			perf.Niche, perf.BestDay, perf.BestHour))
	}

	if len(perf.TopPerformers) > 0 {
		top := perf.TopPerformers[0]
		recs = append(recs, fmt.Sprintf(
			"[%s] Top post (%.1f%%) used '%s' hook — consider a follow-up or repurpose for deeper engagement",
			perf.Niche, top.EngagementRate, top.FormatType))
	}

	saves := make([]float64, len(group))
	for i, p := range group {
		saves[i] = p.SaveRate
	}
	if avgSave := mean(saves); avgSave > 1.5*bench.SaveRateTarget {
		recs = append(recs, fmt.Sprintf(
			"[%s] Save rate %.1f%% is well above target — content is reference-worthy; consider LinkedIn Article to capture long-tail SEO",
			perf.Niche, avgSave))
	}

	if len(recs) > maxNicheRecommendations {
		recs = recs[:maxNicheRecommendations]
	}
	return recs
}

// LoadCompetitors reads a competitor snapshot file: a JSON array of objects
// with name, platform, avg_engagement_rate, and top topic fields.
func LoadCompetitors(path string) ([]map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileNotFound(path)
	}
	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewCLIError(errors.ErrorTypeParse, fmt.Sprintf("parsing %s: %v", path, err), err)
	}
	return raw, nil
}

// CompareCompetitors positions each competitor against our blended average
// engagement. Delta is competitor minus us, so positive means they lead.
func CompareCompetitors(posts []PostMetrics, raw []map[string]interface{}) []CompetitorInsight {
	var ourAvg float64
	if len(posts) > 0 {
		rates := make([]float64, len(posts))
		for i, p := range posts {
			rates[i] = p.EngagementRate
		}
		ourAvg = mean(rates)
	}

	insights := make([]CompetitorInsight, 0, len(raw))
	for _, comp := range raw {
		name, _ := comp["name"].(string)
		if name == "" {
			name = "Competitor"
		}
		platform, _ := comp["platform"].(string)
		if platform == "" {
			platform = niche.DefaultPlatform
		}
		theirAvg := coerceFloat(comp["avg_engagement_rate"])
		delta := round2(theirAvg - ourAvg)
		topTopic, _ := comp["top_topic"].(string)

		var response string
		switch {
		case delta > 0.5:
			response = fmt.Sprintf("They outperform on '%s' — consider a response or adjacent take", topTopic)
		case delta < -0.5:
			response = fmt.Sprintf("We outperform them (%.1fpp ahead) — maintain content quality", math.Abs(delta))
		default:
			response = "Comparable performance — differentiate by doubling down on unique angles"
		}

		insights = append(insights, CompetitorInsight{
			Name:               name,
			Platform:           platform,
			AvgEngagementRate:  round2(theirAvg),
			DeltaVsOurs:        delta,
			TopTopic:           topTopic,
			TopTopicEngagement: coerceFloat(comp["top_topic_engagement"]),
			SuggestedResponse:  response,
		})
	}
	return insights
}

// ExtractTopTopics pulls repurpose candidates from each niche's top two
// performers, deduplicated on content and capped at six.
func ExtractTopTopics(perfs []NichePerformance) []TopicInsight {
	seen := map[string]bool{}
	var topics []TopicInsight
	for _, perf := range perfs {
		top := perf.TopPerformers
		if len(top) > 2 {
			top = top[:2]
		}
		for _, p := range top {
			key := strings.ToLower(truncate(p.ContentPreview, 60))
			if seen[key] {
				continue
			}
			seen[key] = true
			topics = append(topics, TopicInsight{
				Title:         truncate(p.ContentPreview, 80),
				AvgEngagement: p.EngagementRate,
				PostCount:     1,
				FormatType:    p.FormatType,
				BestPostID:    p.PostID,
			})
		}
	}
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].AvgEngagement > topics[j].AvgEngagement
	})
	if len(topics) > 6 {
		topics = topics[:6]
	}
	return topics
}
