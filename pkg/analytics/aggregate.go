package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tgbotosho/content-engine/pkg/niche"
)

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// groupMeans accumulates values per key while remembering first-seen key
// order, which Go maps discard.
type groupMeans struct {
	order  []string
	values map[string][]float64
}

func newGroupMeans() *groupMeans {
	return &groupMeans{values: make(map[string][]float64)}
}

func (g *groupMeans) add(key string, v float64) {
	if _, ok := g.values[key]; !ok {
		g.order = append(g.order, key)
	}
	g.values[key] = append(g.values[key], v)
}

func (g *groupMeans) means() map[string]float64 {
	out := make(map[string]float64, len(g.values))
	for k, vs := range g.values {
		out[k] = round2(mean(vs))
	}
	return out
}

// argmax returns the first-seen key with the strictly greatest value
func (g *groupMeans) argmax() (string, float64) {
	best := ""
	bestVal := 0.0
	for _, k := range g.order {
		v := mean(g.values[k])
		if best == "" || v > bestVal {
			best = k
			bestVal = v
		}
	}
	return best, round2(bestVal)
}

func (g *groupMeans) argmin() (string, float64) {
	worst := ""
	worstVal := 0.0
	for _, k := range g.order {
		v := mean(g.values[k])
		if worst == "" || v < worstVal {
			worst = k
			worstVal = v
		}
	}
	return worst, round2(worstVal)
}

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// mondayIndexed maps Go's Sunday-first weekday onto a Monday-first table
func mondayIndexed(t time.Time) string {
	return dayNames[(int(t.Weekday())+6)%7]
}

// AnalyzeNiche aggregates the posts belonging to one (niche, platform)
// group. Returns nil when the group is empty.
func AnalyzeNiche(posts []PostMetrics, nicheKey, platform string) *NichePerformance {
	var group []PostMetrics
	for _, p := range posts {
		if p.Niche == nicheKey && p.Platform == platform {
			group = append(group, p)
		}
	}
	if len(group) == 0 {
		return nil
	}

	bench := niche.Get(nicheKey)
	target := bench.EngagementTarget * bench.Scale(platform)

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].CompositeScore > group[j].CompositeScore
	})

	rates := make([]float64, len(group))
	for i, p := range group {
		rates[i] = p.EngagementRate
	}
	avg := round2(mean(rates))
	med := round2(median(rates))

	status := StatusBelow
	switch {
	case avg >= target:
		status = StatusAbove
	case avg >= 0.85*target:
		status = StatusMeeting
	}

	topN := 3
	if len(group) < topN {
		topN = len(group)
	}
	top := append([]PostMetrics(nil), group[:topN]...)
	bottom := make([]PostMetrics, 0, topN)
	for i := len(group) - 1; i >= len(group)-topN; i-- {
		bottom = append(bottom, group[i])
	}

	formats := newGroupMeans()
	for _, p := range group {
		formats.add(p.FormatType, p.EngagementRate)
	}
	bestFormat, _ := formats.argmax()
	worstFormat, _ := formats.argmin()

	timing, bestDay, bestHour := analyzeTiming(group)
	hashtags := analyzeHashtags(group)

	perf := &NichePerformance{
		Niche:                nicheKey,
		Platform:             platform,
		PeriodStart:          periodBound(group, true),
		PeriodEnd:            periodBound(group, false),
		PostCount:            len(group),
		AvgEngagementRate:    avg,
		MedianEngagementRate: med,
		BenchmarkTarget:      round2(target),
		BenchmarkStatus:      status,
		TopPerformers:        top,
		BottomPerformers:     bottom,
		FormatBreakdown:      formats.means(),
		BestFormat:           bestFormat,
		WorstFormat:          worstFormat,
		TimingInsights:       timing,
		BestDay:              bestDay,
		BestHour:             bestHour,
		Patterns:             detectPatterns(group),
		HashtagPerformance:   hashtags.means(),
		Trend:                "STABLE",
		TrendDelta:           0.0,
		formatOrder:          formats.order,
		hashtagOrder:         hashtags.order,
	}
	perf.Recommendations = buildNicheRecommendations(perf, group, bench, target)
	return perf
}

// analyzeTiming buckets engagement by publish day and hour. Posts with
// unparseable timestamps are skipped.
func analyzeTiming(group []PostMetrics) (map[string]float64, string, string) {
	days := newGroupMeans()
	hours := newGroupMeans()
	for _, p := range group {
		t, ok := parseTimestamp(p.PublishedAt)
		if !ok {
			continue
		}
		days.add(mondayIndexed(t), p.EngagementRate)
		hours.add(fmt.Sprintf("%02d:00", t.Hour()), p.EngagementRate)
	}

	merged := days.means()
	for k, v := range hours.means() {
		merged[k] = v
	}

	bestDay, bestHour := "N/A", "N/A"
	if len(days.order) > 0 {
		bestDay, _ = days.argmax()
	}
	if len(hours.order) > 0 {
		bestHour, _ = hours.argmax()
	}
	return merged, bestDay, bestHour
}

// analyzeHashtags keys each post by its first four tags, sorted, so the
// same tag set matches regardless of ordering in the export.
func analyzeHashtags(group []PostMetrics) *groupMeans {
	tags := newGroupMeans()
	for _, p := range group {
		if len(p.Hashtags) == 0 {
			continue
		}
		firstFour := p.Hashtags
		if len(firstFour) > 4 {
			firstFour = firstFour[:4]
		}
		sorted := append([]string(nil), firstFour...)
		sort.Strings(sorted)
		tags.add(strings.Join(sorted, " "), p.EngagementRate)
	}
	return tags
}

// periodBound returns the earliest or latest parseable publish date
func periodBound(group []PostMetrics, earliest bool) string {
	var bound time.Time
	found := false
	for _, p := range group {
		d, ok := parseDate(p.PublishedAt)
		if !ok {
			continue
		}
		if !found || (earliest && d.Before(bound)) || (!earliest && d.After(bound)) {
			bound = d
			found = true
		}
	}
	if !found {
		return "N/A"
	}
	return bound.Format("2006-01-02")
}
