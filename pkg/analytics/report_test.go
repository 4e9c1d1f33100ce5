package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatComma(t *testing.T) {
	assert.Equal(t, "0", formatComma(0))
	assert.Equal(t, "999", formatComma(999))
	assert.Equal(t, "1,000", formatComma(1000))
	assert.Equal(t, "12,500", formatComma(12500))
	assert.Equal(t, "1,234,567", formatComma(1234567))
	assert.Equal(t, "-42,000", formatComma(-42000))
}

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, "✅", statusIcon(StatusAbove))
	assert.Equal(t, "✓ ", statusIcon(StatusMeeting))
	assert.Equal(t, "⚠️", statusIcon(StatusBelow))
}

func TestRenderPostSummaryTruncatesHook(t *testing.T) {
	long := strings.Repeat("a very long hook ", 10)
	p := PostMetrics{
		HookWords:      long,
		EngagementRate: 4.25,
		Comments:       12,
		Saves:          3,
		Shares:         2,
		FormatType:     "numbered_list",
		CompositeScore: 81,
	}

	var lines []string
	renderPostSummary(&lines, 1, p, "")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "#1")
	assert.Contains(t, lines[0], "...")
	assert.Contains(t, lines[1], "Engmt: 4.2%")
	assert.Contains(t, lines[1], "Comments: 12")
	assert.Contains(t, lines[2], "Format: numbered_list")
	assert.Contains(t, lines[2], "Score: 81/100")
}

func TestRenderBriefLayout(t *testing.T) {
	brief := &WeeklyBrief{
		NichesAnalyzed: []string{"ttbp"},
		TotalPosts:     1,
		NichePerformances: []NichePerformance{{
			Niche:    "ttbp",
			Platform: "linkedin",
			PostCount: 1,
			BenchmarkStatus: StatusAbove,
			TopPerformers: []PostMetrics{{
				PostID:         "p1",
				HookWords:      "Short hook",
				EngagementRate: 4.0,
				FormatType:     "numbered_list",
				CompositeScore: 81,
			}},
		}},
		CompetitorInsights: []CompetitorInsight{{
			Name:              "BigVoice",
			Platform:          "linkedin",
			AvgEngagementRate: 6.5,
			TopTopic:          "AI careers",
			SuggestedResponse: "Study their format mix",
		}},
	}
	report := RenderBrief(brief)

	// Each post block ends with a blank line before the next section
	assert.Contains(t, report, "Score: 81/100\n\n  BOTTOM PERFORMERS")
	// The bottom-performers header prints even when the list is empty
	assert.Contains(t, report, "  BOTTOM PERFORMERS\n  BENCHMARK STATUS")
	// Competitor platforms render upcased
	assert.Contains(t, report, "BigVoice  (LINKEDIN):  Avg 6.5%")
	// The recommendations section always prints, recommendations or not
	assert.Contains(t, report, "RECOMMENDATIONS FOR NEXT WEEK")
}

func TestRenderDeepDive(t *testing.T) {
	p := &PostMetrics{
		PostID:         "li-042",
		Niche:          "ttbp",
		Platform:       "linkedin",
		PublishedAt:    "2026-08-20",
		FormatType:     "bold_claim",
		HookWords:      "Most managers are optimizing the wrong layer",
		Impressions:    12500,
		Reach:          9800,
		Likes:          240,
		Comments:       31,
		CommentRate:    0.25,
		Saves:          18,
		SaveRate:       0.14,
		Shares:         9,
		ShareRate:      0.07,
		Clicks:         55,
		ClickRate:      0.44,
		EngagementRate: 2.38,
		CompositeScore: 62,
		BenchmarkDelta: -0.62,
		Hashtags:       []string{"#Leadership", "#CareerGrowth"},
	}

	view := RenderDeepDive(p)
	assert.Contains(t, view, "POST DEEP DIVE")
	assert.Contains(t, view, "ID:           li-042")
	assert.Contains(t, view, "Impressions:   12,500")
	assert.Contains(t, view, "Benchmark delta: -0.62pp")
	assert.Contains(t, view, "#Leadership #CareerGrowth")

	p.Hashtags = nil
	assert.Contains(t, RenderDeepDive(p), "Hashtags: N/A")
}
