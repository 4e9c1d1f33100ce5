// Package voice validates content against per-niche voice rules: banned
// phrases, openers, signature green flags, tone markers, and platform
// length windows.
package voice

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/logger"
	"github.com/tgbotosho/content-engine/pkg/niche"
)

// Issue severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Verdict labels, best to worst
const (
	VerdictPass        = "PASS"
	VerdictRevise      = "REVISE"
	VerdictHeavyRevise = "HEAVY REVISE"
	VerdictReject      = "REJECT"
)

// Issue is one flagged problem in the validated text
type Issue struct {
	Severity string `json:"severity"`
	Category string `json:"category"` // banned | opener | tone | length | green_flag
	Message  string `json:"message"`
	LineHint string `json:"line_hint,omitempty"`
}

// Result is the outcome of validating one piece of content
type Result struct {
	Niche     string   `json:"niche"`
	Platform  string   `json:"platform"`
	Score     int      `json:"score"`
	Verdict   string   `json:"verdict"`
	Issues    []Issue  `json:"issues"`
	Strengths []string `json:"strengths"`
	CharCount int      `json:"char_count"`
	WordCount int      `json:"word_count"`
	File      string   `json:"file,omitempty"`
	Report    string   `json:"-"`
}

// ExitCode maps a verdict to the process exit status
func ExitCode(verdict string) int {
	switch verdict {
	case VerdictPass:
		return 0
	case VerdictRevise:
		return 1
	default:
		return 2
	}
}

func truncRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

// Validate scores text against the niche's voice rules. Weights: banned
// phrases 30, green flags 25, opener 20, tone 15, platform length 10.
func Validate(nicheKey, text, platform string) (*Result, error) {
	rs, ok := rules[nicheKey]
	if !ok {
		return nil, errors.NewCLIError(errors.ErrorTypeValidation,
			fmt.Sprintf("unknown niche '%s'", nicheKey), nil).
			WithSuggestion("valid niches: " + strings.Join(niche.Order, ", "))
	}

	var issues []Issue
	var strengths []string
	textLower := strings.ToLower(text)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	firstLine := strings.ToLower(strings.TrimSpace(lines[0]))

	bannedHits := 0
	for _, phrase := range rs.BannedPhrases {
		if !strings.Contains(textLower, phrase) {
			continue
		}
		bannedHits++
		for i, line := range lines {
			if strings.Contains(strings.ToLower(line), phrase) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Category: "banned",
					Message:  fmt.Sprintf("%q — banned phrase, see the niche voice guide for replacements", phrase),
					LineHint: fmt.Sprintf("line %d: ...%s...", i+1, truncRunes(strings.TrimSpace(line), 60)),
				})
				break
			}
		}
	}
	bannedScore := 30 - bannedHits*10
	if bannedScore < 0 {
		bannedScore = 0
	}
	if bannedHits == 0 {
		strengths = append(strengths, "No banned phrases detected")
		bannedScore = 30
	}

	var greenFound []string
	for _, flag := range rs.GreenFlags {
		if strings.Contains(textLower, flag) {
			greenFound = append(greenFound, fmt.Sprintf("%q", flag))
		}
	}
	greenScore := 10 // absence is a warning, not a failure
	if len(greenFound) > 0 {
		first := greenFound
		if len(first) > 2 {
			first = first[:2]
		}
		strengths = append(strengths, "Green flag phrase present: "+strings.Join(first, ", "))
		greenScore = 25
	} else {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: "green_flag",
			Message:  "No signature phrases found — consider adding one for voice authenticity",
			LineHint: "Check the niche voice guide's green flag section",
		})
	}

	openerOK := true
	for _, bad := range rs.BannedOpeners {
		if strings.HasPrefix(firstLine, bad) {
			openerOK = false
			issues = append(issues, Issue{
				Severity: SeverityError,
				Category: "opener",
				Message:  fmt.Sprintf("Opening starts with %q — rewrite first line", bad),
				LineHint: "First line: " + truncRunes(lines[0], 80),
			})
			break
		}
	}
	var openerScore int
	switch {
	case openerOK && utf8.RuneCountInString(firstLine) > 10:
		strengths = append(strengths, "Opening does not use a banned opener")
		openerScore = 20
	case openerOK:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: "opener",
			Message:  "Opening line is very short — ensure it's a strong hook",
			LineHint: "First line: " + truncRunes(lines[0], 80),
		})
		openerScore = 15
	default:
		openerScore = 5
	}

	toneHits := 0
	for _, group := range rs.ToneMarkers {
		for _, marker := range group.Markers {
			if strings.Contains(textLower, marker) {
				toneHits++
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Category: "tone",
					Message:  fmt.Sprintf("Tone marker %q (%s) — may clash with niche voice", marker, group.Type),
				})
			}
		}
	}
	toneScore := 15
	if toneHits > 0 {
		toneScore = 15 - toneHits*5
		if toneScore < 5 {
			toneScore = 5
		}
	} else {
		strengths = append(strengths, "Tone markers look clean")
	}

	charCount := utf8.RuneCountInString(text)
	wordCount := len(strings.Fields(text))

	platformScore := 8 // unknown platform gets partial credit
	if spec, known := PlatformLengthSpecs[platform]; known {
		switch {
		case charCount < spec[0]:
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: "length",
				Message:  fmt.Sprintf("Content too short for %s (%d chars, min %d)", platform, charCount, spec[0]),
			})
			platformScore = 5
		case charCount > spec[1]:
			issues = append(issues, Issue{
				Severity: SeverityError,
				Category: "length",
				Message:  fmt.Sprintf("Content too long for %s (%d chars, max %d)", platform, charCount, spec[1]),
			})
			platformScore = 5
		default:
			strengths = append(strengths, fmt.Sprintf("Length within %s spec (%d chars)", platform, charCount))
			platformScore = 10
		}
	}

	score := bannedScore + greenScore + openerScore + toneScore + platformScore
	verdict := VerdictReject
	switch {
	case score >= 85:
		verdict = VerdictPass
	case score >= 70:
		verdict = VerdictRevise
	case score >= 50:
		verdict = VerdictHeavyRevise
	}

	r := &Result{
		Niche:     nicheKey,
		Platform:  platform,
		Score:     score,
		Verdict:   verdict,
		Issues:    issues,
		Strengths: strengths,
		CharCount: charCount,
		WordCount: wordCount,
	}
	r.Report = renderReport(r)
	return r, nil
}

// ValidateFile validates the content of one file
func ValidateFile(nicheKey, path, platform string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFound(path)
		}
		return nil, err
	}
	r, err := Validate(nicheKey, string(data), platform)
	if err != nil {
		return nil, err
	}
	r.File = filepath.Base(path)
	return r, nil
}

// ValidateDir validates every .md and .txt file in a directory, skipping
// files that cannot be read.
func ValidateDir(nicheKey, dir, platform string) ([]*Result, error) {
	if _, ok := rules[nicheKey]; !ok {
		return nil, errors.NewCLIError(errors.ErrorTypeValidation,
			fmt.Sprintf("unknown niche '%s'", nicheKey), nil).
			WithSuggestion("valid niches: " + strings.Join(niche.Order, ", "))
	}

	var results []*Result
	for _, pattern := range []string{"*.md", "*.txt"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		for _, path := range matches {
			r, err := ValidateFile(nicheKey, path, platform)
			if err != nil {
				logger.Warn("skipping unreadable content file", "file", path, "err", err)
				continue
			}
			results = append(results, r)
		}
	}
	return results, nil
}

func renderReport(r *Result) string {
	sep := strings.Repeat("═", 40)
	lines := []string{
		sep,
		"VOICE ENFORCER REPORT",
		sep,
		"Niche:      " + r.Niche,
		"Platform:   " + r.Platform,
		fmt.Sprintf("Score:      %d/100", r.Score),
		"Verdict:    " + r.Verdict,
		fmt.Sprintf("Length:     %d chars / %d words", r.CharCount, r.WordCount),
		"",
	}

	if len(r.Issues) > 0 {
		lines = append(lines, fmt.Sprintf("Issues Found (%d):", len(r.Issues)))
		for _, issue := range r.Issues {
			icon := "⚠️ "
			if issue.Severity == SeverityError {
				icon = "❌"
			}
			lines = append(lines, fmt.Sprintf("  %s [%s] %s", icon, strings.ToUpper(issue.Category), issue.Message))
			if issue.LineHint != "" {
				lines = append(lines, "     → "+issue.LineHint)
			}
		}
		lines = append(lines, "")
	}

	if len(r.Strengths) > 0 {
		lines = append(lines, fmt.Sprintf("Strengths (%d):", len(r.Strengths)))
		for _, s := range r.Strengths {
			lines = append(lines, "  ✅ "+s)
		}
		lines = append(lines, "")
	}

	switch r.Verdict {
	case VerdictPass:
		lines = append(lines, "✅ Clear for scheduling/publishing.")
	case VerdictRevise:
		lines = append(lines, "⚠️  Fix flagged issues, then re-validate before scheduling.")
	case VerdictHeavyRevise:
		lines = append(lines, "🔴 Significant rewrite needed. Address all errors first.")
	default:
		lines = append(lines, "🔴 REJECT — Regenerate from scratch.")
	}

	lines = append(lines, sep)
	return strings.Join(lines, "\n")
}
