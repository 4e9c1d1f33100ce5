package analytics

import "testing"

func TestComputeRatesBasic(t *testing.T) {
	tests := []struct {
		name       string
		post       PostMetrics
		engagement float64
		comment    float64
	}{
		{
			name:       "impressions denominator",
			post:       PostMetrics{Impressions: 1000, Likes: 10, Comments: 2, Shares: 2, Saves: 1},
			engagement: 1.5,
			comment:    0.2,
		},
		{
			name:       "reach fallback when impressions missing",
			post:       PostMetrics{Reach: 500, Likes: 5, Comments: 5},
			engagement: 2.0,
			comment:    1.0,
		},
		{
			name:       "no audience data floors the denominator at one",
			post:       PostMetrics{Likes: 2},
			engagement: 200.0,
			comment:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			computeRates(&tt.post)
			if tt.post.EngagementRate != tt.engagement {
				t.Errorf("engagement rate = %v, want %v", tt.post.EngagementRate, tt.engagement)
			}
			if tt.post.CommentRate != tt.comment {
				t.Errorf("comment rate = %v, want %v", tt.post.CommentRate, tt.comment)
			}
		})
	}
}

func TestComputeRatesScaleInvariance(t *testing.T) {
	// Doubling all counters and the denominator must not move the rates
	small := PostMetrics{Impressions: 1000, Likes: 30, Comments: 10, Shares: 5, Saves: 5, Clicks: 20}
	large := PostMetrics{Impressions: 2000, Likes: 60, Comments: 20, Shares: 10, Saves: 10, Clicks: 40}
	computeRates(&small)
	computeRates(&large)

	if small.EngagementRate != large.EngagementRate {
		t.Errorf("engagement rate not scale invariant: %v vs %v", small.EngagementRate, large.EngagementRate)
	}
	if small.ClickRate != large.ClickRate {
		t.Errorf("click rate not scale invariant: %v vs %v", small.ClickRate, large.ClickRate)
	}
}

func TestScorePostBounds(t *testing.T) {
	// A post that crushes every target still caps at 100
	monster := PostMetrics{Niche: "ttbp", Platform: "linkedin", Impressions: 100,
		Likes: 90, Comments: 50, Shares: 40, Saves: 30, Clicks: 60}
	computeRates(&monster)
	scorePost(&monster)
	if monster.CompositeScore > 100 || monster.CompositeScore < 0 {
		t.Errorf("composite score out of bounds: %v", monster.CompositeScore)
	}
	if monster.CompositeScore != 100 {
		t.Errorf("saturated post should score 100, got %v", monster.CompositeScore)
	}

	zero := PostMetrics{Niche: "ttbp", Platform: "linkedin", Impressions: 1000}
	computeRates(&zero)
	scorePost(&zero)
	if zero.CompositeScore != 0 {
		t.Errorf("zero-interaction post should score 0, got %v", zero.CompositeScore)
	}
}

func TestScorePostMonotonic(t *testing.T) {
	prev := -1.0
	for _, likes := range []int{0, 5, 10, 20, 40} {
		p := PostMetrics{Niche: "ttbp", Platform: "linkedin", Impressions: 1000, Likes: likes}
		computeRates(&p)
		scorePost(&p)
		if p.CompositeScore < prev {
			t.Errorf("score decreased with more likes: %v after %v", p.CompositeScore, prev)
		}
		prev = p.CompositeScore
	}
}

func TestScorePostPlatformScaling(t *testing.T) {
	// ttbp instagram target is 1.4x linkedin, so the same rates score lower
	li := PostMetrics{Niche: "ttbp", Platform: "linkedin", Impressions: 1000, Likes: 20}
	ig := PostMetrics{Niche: "ttbp", Platform: "instagram", Impressions: 1000, Likes: 20}
	for _, p := range []*PostMetrics{&li, &ig} {
		computeRates(p)
		scorePost(p)
	}
	if ig.CompositeScore >= li.CompositeScore {
		t.Errorf("instagram score %v should be below linkedin %v at equal rates", ig.CompositeScore, li.CompositeScore)
	}
	if ig.BenchmarkDelta >= li.BenchmarkDelta {
		t.Errorf("instagram delta %v should be below linkedin %v", ig.BenchmarkDelta, li.BenchmarkDelta)
	}
}

func TestScorePostBenchmarkDelta(t *testing.T) {
	p := PostMetrics{Niche: "ttbp", Platform: "linkedin", Impressions: 1000, Likes: 40, Comments: 8, Shares: 4, Saves: 3}
	computeRates(&p)
	scorePost(&p)
	if p.EngagementRate != 5.5 {
		t.Fatalf("engagement rate = %v, want 5.5", p.EngagementRate)
	}
	if p.BenchmarkDelta != 2.5 {
		t.Errorf("benchmark delta = %v, want 2.5 (5.5 minus 3.0 target)", p.BenchmarkDelta)
	}
}
