package analytics

import (
	"math"

	"github.com/tgbotosho/content-engine/pkg/niche"
)

func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round1(x float64) float64 { return math.Round(x*10) / 10 }

// computeRates derives the per-post rates from raw counters. Impressions is
// the denominator when present; reach stands in otherwise, floored at 1 so
// a zero-data post yields zero rates instead of NaN.
func computeRates(p *PostMetrics) {
	base := float64(p.Impressions)
	if base <= 0 {
		base = math.Max(float64(p.Reach), 1)
	}

	interactions := float64(p.Likes + p.Comments + p.Shares + p.Saves)
	p.EngagementRate = round2(interactions / base * 100)
	p.CommentRate = round2(float64(p.Comments) / base * 100)
	p.SaveRate = round2(float64(p.Saves) / base * 100)
	p.ShareRate = round2(float64(p.Shares) / base * 100)
	p.ClickRate = round2(float64(p.Clicks) / base * 100)
}

// scorePost computes the 0-100 composite score against the post's niche
// benchmark, scaled for its platform. Component caps: engagement 50,
// comments 15, saves 15, shares 10, clicks 10.
func scorePost(p *PostMetrics) {
	bench := niche.Get(p.Niche)
	scaledTarget := bench.EngagementTarget * bench.Scale(p.Platform)

	var engScore float64
	if scaledTarget > 0 {
		engScore = math.Min(50, p.EngagementRate/scaledTarget*50)
	}
	var commentScore float64
	if bench.CommentRateTarget > 0 {
		commentScore = math.Min(15, p.CommentRate/bench.CommentRateTarget*15)
	}
	var saveScore float64
	if bench.SaveRateTarget > 0 {
		saveScore = math.Min(15, p.SaveRate/bench.SaveRateTarget*15)
	}
	var shareScore float64
	if bench.ShareRateTarget > 0 {
		shareScore = math.Min(10, p.ShareRate/bench.ShareRateTarget*10)
	}
	clickScore := math.Min(10, p.ClickRate*5)

	p.CompositeScore = round1(engScore + commentScore + saveScore + shareScore + clickScore)
	p.BenchmarkDelta = round2(p.EngagementRate - scaledTarget)
}
