package analytics

import (
	"testing"
	"time"
)

// filterNow is the fixed reference time the window tests filter against
var filterNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestFilterByPeriod(t *testing.T) {
	posts := []PostMetrics{
		{PostID: "recent", PublishedAt: "2025-06-13T10:00:00"},
		{PostID: "lastweek", PublishedAt: "2025-06-05"},
		{PostID: "old", PublishedAt: "2025-04-16"},
	}

	week := FilterByPeriod(posts, PeriodWeek, filterNow)
	if len(week) != 1 || week[0].PostID != "recent" {
		t.Errorf("week filter kept %d posts, want just the recent one", len(week))
	}

	month := FilterByPeriod(posts, PeriodMonth, filterNow)
	if len(month) != 2 {
		t.Errorf("month filter kept %d posts, want 2", len(month))
	}

	all := FilterByPeriod(posts, PeriodAll, filterNow)
	if len(all) != 3 {
		t.Errorf("all filter kept %d posts, want 3", len(all))
	}
}

func TestFilterByPeriodKeepsUnparseable(t *testing.T) {
	posts := []PostMetrics{
		{PostID: "garbage", PublishedAt: "last tuesday"},
		{PostID: "empty", PublishedAt: ""},
	}
	got := FilterByPeriod(posts, PeriodWeek, filterNow)
	if len(got) != 2 {
		t.Errorf("unparseable dates should be kept, got %d posts", len(got))
	}
}

func TestFilterByPeriodEmptyFallback(t *testing.T) {
	// A stale export should still produce a report rather than nothing
	posts := []PostMetrics{
		{PostID: "ancient", PublishedAt: "2019-03-01"},
	}
	got := FilterByPeriod(posts, PeriodWeek, filterNow)
	if len(got) != 1 {
		t.Errorf("empty window should fall back to the full input, got %d posts", len(got))
	}
}

func TestFilterByPeriodSubsetChain(t *testing.T) {
	posts := []PostMetrics{
		{PostID: "a", PublishedAt: "2025-06-14"},
		{PostID: "b", PublishedAt: "2025-06-01"},
		{PostID: "c", PublishedAt: "2025-05-01"},
	}
	week := FilterByPeriod(posts, PeriodWeek, filterNow)
	month := FilterByPeriod(posts, PeriodMonth, filterNow)

	inMonth := map[string]bool{}
	for _, p := range month {
		inMonth[p.PostID] = true
	}
	for _, p := range week {
		if !inMonth[p.PostID] {
			t.Errorf("post %s in week window but not in month window", p.PostID)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		hour int
	}{
		{"2025-06-03T14:30:00Z", true, 14},
		{"2025-06-03T14:30:00+02:00", true, 14},
		{"2025-06-03T09:05", true, 9},
		{"2025-06-03", true, 0},
		{"not a date", false, 0},
	}
	for _, tt := range tests {
		got, ok := parseTimestamp(tt.in)
		if ok != tt.ok {
			t.Errorf("parseTimestamp(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Hour() != tt.hour {
			t.Errorf("parseTimestamp(%q) hour = %d, want %d", tt.in, got.Hour(), tt.hour)
		}
	}
}
