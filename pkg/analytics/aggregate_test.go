package analytics

import (
	"strings"
	"testing"
)

// scoredPost builds a fully scored post for aggregation tests
func scoredPost(id, nicheKey, platform, published, content string, impressions, likes, comments, shares, saves int) PostMetrics {
	p := PostMetrics{
		PostID:      id,
		Niche:       nicheKey,
		Platform:    platform,
		PublishedAt: published,
		Impressions: impressions,
		Likes:       likes,
		Comments:    comments,
		Shares:      shares,
		Saves:       saves,
	}
	return finalize(p, content)
}

func ttbpGroup() []PostMetrics {
	// "mid" and "high" both saturate the rate component caps; the clicks
	// on "high" are what separate their composite scores.
	high := PostMetrics{
		PostID:      "high",
		Niche:       "ttbp",
		Platform:    "linkedin",
		PublishedAt: "2025-06-06T09:00:00",
		Impressions: 1000,
		Likes:       80,
		Comments:    15,
		Shares:      5,
		Saves:       5,
		Clicks:      20,
	}
	return []PostMetrics{
		scoredPost("low", "ttbp", "linkedin", "2025-06-02T09:00:00", "A quiet reflection on work", 1000, 10, 2, 2, 1),
		scoredPost("mid", "ttbp", "linkedin", "2025-06-04T14:00:00", "1. First lesson\n2. Second lesson", 1000, 40, 8, 4, 3),
		finalize(high, "1. The promotion playbook\n2. Steps"),
	}
}

func TestAnalyzeNicheCore(t *testing.T) {
	perf := AnalyzeNiche(ttbpGroup(), "ttbp", "linkedin")
	if perf == nil {
		t.Fatal("expected a performance group")
	}

	if perf.PostCount != 3 {
		t.Errorf("post count = %d", perf.PostCount)
	}
	// Rates are 1.5, 5.5, 10.5: avg 5.83, median 5.5
	if perf.AvgEngagementRate != 5.83 {
		t.Errorf("avg = %v, want 5.83", perf.AvgEngagementRate)
	}
	if perf.MedianEngagementRate != 5.5 {
		t.Errorf("median = %v, want 5.5", perf.MedianEngagementRate)
	}
	if perf.BenchmarkStatus != StatusAbove {
		t.Errorf("status = %s, want ABOVE against 3.0 target", perf.BenchmarkStatus)
	}
	if perf.TopPerformers[0].PostID != "high" {
		t.Errorf("top performer = %s", perf.TopPerformers[0].PostID)
	}
	if perf.BottomPerformers[0].PostID != "low" {
		t.Errorf("bottom performers should lead with the worst, got %s", perf.BottomPerformers[0].PostID)
	}
	if perf.PeriodStart != "2025-06-02" || perf.PeriodEnd != "2025-06-06" {
		t.Errorf("period bounds = %s / %s", perf.PeriodStart, perf.PeriodEnd)
	}
}

func TestAnalyzeNicheEmptyGroup(t *testing.T) {
	if perf := AnalyzeNiche(ttbpGroup(), "wellwithtunde", "linkedin"); perf != nil {
		t.Errorf("empty group should return nil, got %+v", perf)
	}
	if perf := AnalyzeNiche(ttbpGroup(), "ttbp", "twitter"); perf != nil {
		t.Errorf("platform mismatch should return nil, got %+v", perf)
	}
}

func TestAnalyzeNicheStatusThresholds(t *testing.T) {
	tests := []struct {
		name   string
		likes  int
		status string
	}{
		{"above", 35, StatusAbove},    // 3.5% vs 3.0 target
		{"meeting", 27, StatusMeeting}, // 2.7% >= 2.55
		{"below", 10, StatusBelow},    // 1.0%
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := []PostMetrics{
				scoredPost("p", "ttbp", "linkedin", "2025-06-02", "plain words here", 1000, tt.likes, 0, 0, 0),
			}
			perf := AnalyzeNiche(group, "ttbp", "linkedin")
			if perf.BenchmarkStatus != tt.status {
				t.Errorf("status = %s, want %s", perf.BenchmarkStatus, tt.status)
			}
		})
	}
}

func TestAnalyzeNicheFormatsAndTiming(t *testing.T) {
	perf := AnalyzeNiche(ttbpGroup(), "ttbp", "linkedin")

	if perf.BestFormat != "numbered_list" {
		t.Errorf("best format = %s", perf.BestFormat)
	}
	// Prose with any three-letter run trips the case-insensitive
	// bold_claim rule, so the quiet post lands there
	if perf.WorstFormat != "bold_claim" {
		t.Errorf("worst format = %s", perf.WorstFormat)
	}
	// 2025-06-06 is a Friday and carries the 10.5% post
	if perf.BestDay != "Fri" {
		t.Errorf("best day = %s", perf.BestDay)
	}
	if perf.BestHour != "09:00" {
		t.Errorf("best hour = %s", perf.BestHour)
	}
	if _, ok := perf.TimingInsights["Mon"]; !ok {
		t.Errorf("timing insights missing Mon: %v", perf.TimingInsights)
	}
}

func TestAnalyzeNicheNoTimestamps(t *testing.T) {
	group := []PostMetrics{
		scoredPost("p", "ttbp", "linkedin", "", "plain words here", 1000, 30, 0, 0, 0),
	}
	perf := AnalyzeNiche(group, "ttbp", "linkedin")
	if perf.BestDay != "N/A" || perf.BestHour != "N/A" {
		t.Errorf("timing should be N/A without timestamps, got %s %s", perf.BestDay, perf.BestHour)
	}
	if perf.PeriodStart != "N/A" {
		t.Errorf("period start = %s, want N/A", perf.PeriodStart)
	}
}

func TestMedian(t *testing.T) {
	if got := median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("odd median = %v", got)
	}
	if got := median([]float64{4, 1, 2, 3}); got != 2.5 {
		t.Errorf("even median = %v", got)
	}
	if got := median(nil); got != 0 {
		t.Errorf("empty median = %v", got)
	}
}

func TestDetectPatternsZeroBaseline(t *testing.T) {
	// A format still counts as an outlier when every other format sits at zero
	group := []PostMetrics{
		scoredPost("a", "ttbp", "linkedin", "2025-06-02", "1. The only post that worked", 1000, 50, 0, 0, 0),
		scoredPost("b", "ttbp", "linkedin", "2025-06-03", "plain musing today", 1000, 0, 0, 0, 0),
	}
	patterns := detectPatterns(group)
	joined := strings.Join(patterns, "\n")
	if !strings.Contains(joined, "'numbered_list' format: 5.0% avg vs 0.0% for others") {
		t.Errorf("expected the overperform signal against a zero baseline, got:\n%s", joined)
	}
}

func TestDetectPatterns(t *testing.T) {
	// Two high-save posts and one format outlier
	group := []PostMetrics{
		scoredPost("a", "ttbp", "linkedin", "2025-06-02", "1. Save this checklist", 1000, 40, 3, 2, 10),
		scoredPost("b", "ttbp", "linkedin", "2025-06-03", "1. Another checklist", 1000, 35, 2, 2, 8),
		scoredPost("c", "ttbp", "linkedin", "2025-06-04", "plain musing today", 1000, 5, 1, 0, 0),
	}
	patterns := detectPatterns(group)

	if len(patterns) == 0 || len(patterns) > maxPatterns {
		t.Fatalf("pattern count = %d", len(patterns))
	}
	joined := strings.Join(patterns, "\n")
	if !strings.Contains(joined, "numbered_list") {
		t.Errorf("expected a numbered_list signal, got:\n%s", joined)
	}
	if !strings.Contains(joined, "High-save posts (>50% save rate)") {
		t.Errorf("expected the high-save pattern, got:\n%s", joined)
	}
}

func TestMajorityFormatTieBreak(t *testing.T) {
	posts := []PostMetrics{
		{FormatType: "framework"},
		{FormatType: "contrarian"},
	}
	if got := majorityFormat(posts); got != "framework" {
		t.Errorf("tie should break toward first seen, got %s", got)
	}
}
