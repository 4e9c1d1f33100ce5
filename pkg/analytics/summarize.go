package analytics

import (
	"fmt"
	"time"

	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/logger"
	"github.com/tgbotosho/content-engine/pkg/niche"
)

const maxOverallRecommendations = 8

// Options configures one summarize run. Exactly one of File or Dir names
// the input; with neither set the run reads from accumulated history.
type Options struct {
	File            string
	Dir             string
	Source          string
	Period          string
	Niche           string
	Platform        string
	CompetitorsFile string
}

// loadPosts resolves the input source: an explicit file, a directory of
// exports, or the history file when neither is given.
func loadPosts(opts Options) ([]PostMetrics, error) {
	switch {
	case opts.File != "":
		return LoadPostsFromFile(opts.File, opts.Source)
	case opts.Dir != "":
		return LoadPostsFromDir(opts.Dir)
	default:
		path, err := HistoryPath()
		if err != nil {
			return nil, err
		}
		return LoadHistory(path), nil
	}
}

// orderedKeys collects distinct values in first-seen order
func orderedKeys(posts []PostMetrics, key func(PostMetrics) string) []string {
	seen := map[string]bool{}
	var keys []string
	for _, p := range posts {
		k := key(p)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// Summarize runs the full aggregation pipeline and returns the brief with
// its rendered report attached.
func Summarize(opts Options) (*WeeklyBrief, error) {
	posts, err := loadPosts(opts)
	if err != nil {
		return nil, err
	}

	posts = FilterByPeriod(posts, opts.Period, time.Now())

	if opts.Niche != "" {
		posts = filterPosts(posts, func(p PostMetrics) bool { return p.Niche == opts.Niche })
	}
	if opts.Platform != "" {
		posts = filterPosts(posts, func(p PostMetrics) bool { return p.Platform == opts.Platform })
	}
	if len(posts) == 0 {
		return nil, errors.NewEmptyDataset("No posts found for the specified period and filters.")
	}

	// History append is best-effort; a read-only data dir should not block
	// the report.
	if histPath, err := HistoryPath(); err == nil {
		if err := AppendHistory(histPath, posts); err != nil {
			logger.Warn("could not append performance history", "path", histPath, "err", err)
		}
	}

	niches := orderedKeys(posts, func(p PostMetrics) string { return p.Niche })
	platforms := orderedKeys(posts, func(p PostMetrics) string { return p.Platform })

	var perfs []NichePerformance
	for _, n := range niches {
		for _, pl := range platforms {
			if perf := AnalyzeNiche(posts, n, pl); perf != nil {
				perfs = append(perfs, *perf)
			}
		}
	}

	var competitors []CompetitorInsight
	if opts.CompetitorsFile != "" {
		raw, err := LoadCompetitors(opts.CompetitorsFile)
		if err != nil {
			logger.Warn("skipping competitor snapshot", "file", opts.CompetitorsFile, "err", err)
		} else {
			competitors = CompareCompetitors(posts, raw)
		}
	}

	overall := collectRecommendations(perfs, competitors)

	rates := make([]float64, len(posts))
	for i, p := range posts {
		rates[i] = p.EngagementRate
	}

	brief := &WeeklyBrief{
		Period:                 opts.Period,
		PeriodStart:            periodBound(posts, true),
		PeriodEnd:              periodBound(posts, false),
		NichesAnalyzed:         niches,
		PlatformsAnalyzed:      platforms,
		TotalPosts:             len(posts),
		OverallAvgEngagement:   round2(mean(rates)),
		NichePerformances:      perfs,
		CompetitorInsights:     competitors,
		OverallRecommendations: overall,
		TopTopics:              ExtractTopTopics(perfs),
		GeneratedAt:            time.Now().Format("2006-01-02 15:04"),
	}
	brief.Report = RenderBrief(brief)
	return brief, nil
}

func filterPosts(posts []PostMetrics, keep func(PostMetrics) bool) []PostMetrics {
	out := make([]PostMetrics, 0, len(posts))
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// collectRecommendations merges per-niche recommendations first-wins, then
// appends competitor suggestions, capped at eight. Competitor lines are
// checked against seen but not recorded there, so two competitors can
// produce the same generic suggestion.
func collectRecommendations(perfs []NichePerformance, competitors []CompetitorInsight) []string {
	seen := map[string]bool{}
	var recs []string
	for _, perf := range perfs {
		for _, r := range perf.Recommendations {
			if seen[r] {
				continue
			}
			seen[r] = true
			recs = append(recs, r)
		}
	}
	for _, comp := range competitors {
		line := fmt.Sprintf("[competitor] %s", comp.SuggestedResponse)
		if seen[line] {
			continue
		}
		recs = append(recs, line)
	}
	if len(recs) > maxOverallRecommendations {
		recs = recs[:maxOverallRecommendations]
	}
	return recs
}

// DeepDive looks up one post by ID across the configured input and renders
// its drill-down view.
func DeepDive(opts Options, postID string) (*PostMetrics, string, error) {
	posts, err := loadPosts(opts)
	if err != nil {
		return nil, "", err
	}
	for i := range posts {
		if posts[i].PostID == postID {
			return &posts[i], RenderDeepDive(&posts[i]), nil
		}
	}
	return nil, "", errors.NewEmptyDataset(fmt.Sprintf("Post ID '%s' not found in data.", postID))
}

// HasBelowBenchmark reports whether any analyzed niche missed its target.
// The summarize command exits non-zero on it so cron jobs can alert.
func HasBelowBenchmark(brief *WeeklyBrief) bool {
	for _, perf := range brief.NichePerformances {
		if perf.BenchmarkStatus == StatusBelow {
			return true
		}
	}
	return false
}

// ValidNiche mirrors the flag validation done by the CLI layer
func ValidNiche(key string) bool {
	return key == "" || niche.Valid(key)
}
