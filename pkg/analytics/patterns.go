package analytics

import "fmt"

const maxPatterns = 5

// majorityFormat returns the most common format in posts, ties breaking
// toward the format encountered first.
func majorityFormat(posts []PostMetrics) string {
	order := []string{}
	counts := map[string]int{}
	for _, p := range posts {
		if _, ok := counts[p.FormatType]; !ok {
			order = append(order, p.FormatType)
		}
		counts[p.FormatType]++
	}
	best := ""
	bestCount := 0
	for _, f := range order {
		if counts[f] > bestCount {
			best = f
			bestCount = counts[f]
		}
	}
	return best
}

// detectPatterns surfaces up to five notable signals in one niche group.
// Rules fire in a fixed order so the capped list is deterministic: format
// outliers first, then save/comment signals, then underperformer clusters.
func detectPatterns(group []PostMetrics) []string {
	var patterns []string

	formats := newGroupMeans()
	byFormat := map[string][]PostMetrics{}
	for _, p := range group {
		formats.add(p.FormatType, p.EngagementRate)
		byFormat[p.FormatType] = append(byFormat[p.FormatType], p)
	}

	for _, f := range formats.order {
		var others []float64
		for _, p := range group {
			if p.FormatType != f {
				others = append(others, p.EngagementRate)
			}
		}
		if len(others) == 0 {
			continue
		}
		fmtAvg := mean(formats.values[f])
		othersAvg := mean(others)
		if fmtAvg > othersAvg*1.5 {
			patterns = append(patterns, fmt.Sprintf(
				"Posts with '%s' format: %.1f%% avg vs %.1f%% for others (+%.1fpp)",
				f, fmtAvg, othersAvg, fmtAvg-othersAvg))
		} else if fmtAvg < othersAvg*0.7 {
			patterns = append(patterns, fmt.Sprintf(
				"Posts with '%s' format underperform: %.1f%% vs %.1f%% avg",
				f, fmtAvg, othersAvg))
		}
	}

	var highSave []PostMetrics
	for _, p := range group {
		if p.SaveRate > 0.5 {
			highSave = append(highSave, p)
		}
	}
	if len(highSave) >= 2 {
		patterns = append(patterns, fmt.Sprintf(
			"High-save posts (>50%% save rate) are mostly '%s' format — reference-quality content",
			majorityFormat(highSave)))
	}

	var highComment []PostMetrics
	for _, p := range group {
		if p.CommentRate > 0.5 {
			highComment = append(highComment, p)
		}
	}
	if len(highComment) > 0 {
		patterns = append(patterns, fmt.Sprintf(
			"Posts driving comments tend to be '%s' format — algorithm reward signal active",
			majorityFormat(highComment)))
	}

	var lowPerformers []PostMetrics
	for _, p := range group {
		if p.BenchmarkDelta < -1.5 {
			lowPerformers = append(lowPerformers, p)
		}
	}
	if len(lowPerformers) >= 2 {
		patterns = append(patterns, fmt.Sprintf(
			"Low performers cluster around '%s' format — review hook quality for these",
			majorityFormat(lowPerformers)))
	}

	if len(patterns) > maxPatterns {
		patterns = patterns[:maxPatterns]
	}
	return patterns
}
