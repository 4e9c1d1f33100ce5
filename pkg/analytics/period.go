package analytics

import (
	"strings"
	"time"
)

// Period tokens accepted by the summarize flow
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// parseDate extracts the calendar date from an export timestamp, which may
// be a bare date or a full ISO timestamp.
func parseDate(published string) (time.Time, bool) {
	datePart := strings.SplitN(published, "T", 2)[0]
	t, err := time.Parse("2006-01-02", strings.TrimSpace(datePart))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseTimestamp parses a full export timestamp for day/hour analysis,
// dropping any zone suffix. Exports mix "Z", "+00:00", and naive stamps.
func parseTimestamp(published string) (time.Time, bool) {
	s := strings.ReplaceAll(published, "Z", "+00:00")
	s = strings.SplitN(s, "+", 2)[0]
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByPeriod keeps posts published within the trailing window ending at
// now: 7 days for week, 30 for month, everything for all. Posts with
// unparseable dates are kept. If the window matches nothing the input is
// returned unchanged so a stale export still produces a report.
func FilterByPeriod(posts []PostMetrics, period string, now time.Time) []PostMetrics {
	if period == PeriodAll {
		return posts
	}

	days := 7
	if period == PeriodMonth {
		days = 30
	}
	cutoff := now.AddDate(0, 0, -days)

	filtered := make([]PostMetrics, 0, len(posts))
	for _, p := range posts {
		d, ok := parseDate(p.PublishedAt)
		if !ok || !d.Before(cutoff) {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return posts
	}
	return filtered
}
