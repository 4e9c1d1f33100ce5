// Package analytics implements the performance brief engine: it normalizes
// heterogeneous post exports into PostMetrics, scores them against niche
// benchmarks, aggregates per (niche, platform), detects patterns, and
// renders weekly/monthly briefs.
package analytics

// PostMetrics is one social post's performance snapshot. Raw counters come
// from the export; rates and scores are recomputed from them on every run
// and are never a source of truth.
type PostMetrics struct {
	PostID         string `json:"post_id"`
	Niche          string `json:"niche"`
	Platform       string `json:"platform"` // linkedin | instagram | twitter
	PublishedAt    string `json:"published_at"`
	ContentPreview string `json:"content_preview"` // first 120 chars
	FormatType     string `json:"format_type"`
	HookWords      string `json:"hook_words"` // first line extracted

	Impressions int `json:"impressions"`
	Reach       int `json:"reach"`
	Likes       int `json:"likes"`
	Comments    int `json:"comments"`
	Shares      int `json:"shares"`
	Saves       int `json:"saves"`
	Clicks      int `json:"clicks"`

	EngagementRate float64 `json:"engagement_rate"`
	CommentRate    float64 `json:"comment_rate"`
	SaveRate       float64 `json:"save_rate"`
	ShareRate      float64 `json:"share_rate"`
	ClickRate      float64 `json:"click_rate"`
	BenchmarkDelta float64 `json:"benchmark_delta"` // vs scaled niche target
	CompositeScore float64 `json:"composite_score"` // 0-100

	Hashtags []string `json:"hashtags"`
	Notes    string   `json:"notes,omitempty"`
}

// TopicInsight is a repurpose candidate pulled from top performers
type TopicInsight struct {
	Title         string  `json:"title"`
	AvgEngagement float64 `json:"avg_engagement"`
	PostCount     int     `json:"post_count"`
	FormatType    string  `json:"format_type"`
	BestPostID    string  `json:"best_post_id"`
}

// Benchmark status values
const (
	StatusAbove   = "ABOVE"
	StatusMeeting = "MEETING"
	StatusBelow   = "BELOW"
)

// NichePerformance aggregates one (niche, platform) group over a period.
// It is built fresh per report run and only Recommendations is filled in
// after construction.
type NichePerformance struct {
	Niche                string             `json:"niche"`
	Platform             string             `json:"platform"`
	PeriodStart          string             `json:"period_start"`
	PeriodEnd            string             `json:"period_end"`
	PostCount            int                `json:"post_count"`
	AvgEngagementRate    float64            `json:"avg_engagement_rate"`
	MedianEngagementRate float64            `json:"median_engagement_rate"`
	BenchmarkTarget      float64            `json:"benchmark_target"`
	BenchmarkStatus      string             `json:"benchmark_status"` // ABOVE | MEETING | BELOW
	TopPerformers        []PostMetrics      `json:"top_performers"`
	BottomPerformers     []PostMetrics      `json:"bottom_performers"` // index 0 = worst
	FormatBreakdown      map[string]float64 `json:"format_breakdown"`
	BestFormat           string             `json:"best_format"`
	WorstFormat          string             `json:"worst_format"`
	TimingInsights       map[string]float64 `json:"timing_insights"` // day/hour → avg engagement
	BestDay              string             `json:"best_day"`
	BestHour             string             `json:"best_hour"`
	Patterns             []string           `json:"patterns"`
	HashtagPerformance   map[string]float64 `json:"hashtag_performance"`
	Recommendations      []string           `json:"recommendations"`
	Trend                string             `json:"trend"` // UP | STABLE | DOWN vs prior period
	TrendDelta           float64            `json:"trend_delta"`

	// argmax tie-breaks follow first-seen order, which maps cannot preserve
	formatOrder  []string
	hashtagOrder []string
}

// CompetitorInsight compares one competitor account against our average.
// DeltaVsOurs is positive when they are ahead.
type CompetitorInsight struct {
	Name               string  `json:"name"`
	Platform           string  `json:"platform"`
	AvgEngagementRate  float64 `json:"avg_engagement_rate"`
	DeltaVsOurs        float64 `json:"delta_vs_ours"`
	TopTopic           string  `json:"top_topic"`
	TopTopicEngagement float64 `json:"top_topic_engagement"`
	SuggestedResponse  string  `json:"suggested_response"`
}

// WeeklyBrief is the full report object for one run. Report holds the
// rendered text and is excluded from JSON output for pipeline consumers.
type WeeklyBrief struct {
	Period                 string              `json:"period"`
	PeriodStart            string              `json:"period_start"`
	PeriodEnd              string              `json:"period_end"`
	NichesAnalyzed         []string            `json:"niches_analyzed"`
	PlatformsAnalyzed      []string            `json:"platforms_analyzed"`
	TotalPosts             int                 `json:"total_posts"`
	OverallAvgEngagement   float64             `json:"overall_avg_engagement"`
	NichePerformances      []NichePerformance  `json:"niche_performances"`
	CompetitorInsights     []CompetitorInsight `json:"competitor_insights"`
	OverallRecommendations []string            `json:"overall_recommendations"`
	TopTopics              []TopicInsight      `json:"top_topics"`
	GeneratedAt            string              `json:"generated_at"`
	Report                 string              `json:"-"`
}
