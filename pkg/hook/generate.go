package hook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/niche"
)

// Result is one generated or scored hook
type Result struct {
	HookType string  `json:"hook_type"`
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	Label    string  `json:"label"`
	Notes    string  `json:"notes"`
	Rank     int     `json:"rank"`
}

// Report is the full set of hooks for one topic, ranked best first
type Report struct {
	Niche    string   `json:"niche"`
	Platform string   `json:"platform"`
	Topic    string   `json:"topic"`
	Context  string   `json:"context"`
	Hooks    []Result `json:"hooks"`
	Report   string   `json:"-"`
}

// TopHook returns the highest-ranked hook, nil when empty
func (r *Report) TopHook() *Result {
	if len(r.Hooks) == 0 {
		return nil
	}
	return &r.Hooks[0]
}

// capitalize upcases the first rune and lowercases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// buildHookText fills the structural scaffold for one hook type. With
// context the hook weaves in the caller's angle; without it the scaffold
// stands alone.
func buildHookText(hookType, topic, context string) string {
	t := strings.TrimRight(strings.TrimSpace(topic), ".")

	switch hookType {
	case "curiosity_gap":
		if context == "" {
			return fmt.Sprintf("Nobody prepares you for the moment when %s stops being a strategy and becomes a mirror.", t)
		}
		return fmt.Sprintf("Most people get %s wrong — not because of effort, but because %s.", t, context)
	case "bold_claim":
		if context == "" {
			return fmt.Sprintf("The common advice on %s is optimizing the wrong layer.", t)
		}
		return fmt.Sprintf("%s isn't a tools problem. %s.", capitalize(t), capitalize(context))
	case "personal_story":
		if context == "" {
			return fmt.Sprintf("I sat with %s for three years before I understood what it was actually asking of me.", t)
		}
		return fmt.Sprintf("I built the whole thing — %s. That's when %s finally made sense.", context, t)
	case "data_shock":
		if context == "" {
			return fmt.Sprintf("The stat on %s that nobody leads with: most people are solving the wrong version of the problem.", t)
		}
		return fmt.Sprintf("Here's the number that changed how I think about %s: %s.", t, context)
	case "pattern_interrupt":
		if context == "" {
			return fmt.Sprintf("The %s conversation is happening in the wrong room.", t)
		}
		return fmt.Sprintf("You didn't fail at %s. %s.", t, capitalize(context))
	case "question":
		if context == "" {
			return fmt.Sprintf("What are you actually building when you invest everything into %s?", t)
		}
		return fmt.Sprintf("If %s, what does that say about how we've framed %s?", context, t)
	case "contrarian":
		if context == "" {
			return fmt.Sprintf("Everyone's focused on %s. Nobody's asking whether the framing is right.", t)
		}
		return fmt.Sprintf("The conventional wisdom on %s sounds correct. %s — and that changes everything.", t, capitalize(context))
	case "number_list":
		if context == "" {
			return fmt.Sprintf("3 things about %s that most frameworks completely miss.", t)
		}
		return fmt.Sprintf("3 patterns I keep seeing in %s — and %s.", t, context)
	}

	if context == "" {
		context = "something worth examining."
	}
	return fmt.Sprintf("On %s: %s", t, context)
}

// buildNotes annotates one hook with voice and length observations
func buildNotes(text, hookType, nicheKey, platform string) string {
	cfg := NicheConfigs[nicheKey]
	textLower := strings.ToLower(text)
	var parts []string

	for _, ban := range cfg.BannedOpeners {
		if strings.HasPrefix(textLower, strings.ToLower(ban)) {
			parts = append(parts, fmt.Sprintf("⚠️ Starts with banned opener: \"%s\"", ban))
		}
	}
	for _, pat := range cfg.AvoidPatterns {
		if pat.MatchString(textLower) {
			parts = append(parts, fmt.Sprintf("⚠️ Contains avoid-pattern: %s", pat.String()))
		}
	}
	if len(parts) == 0 {
		for _, best := range cfg.BestTypes {
			if best == hookType {
				parts = append(parts, fmt.Sprintf("✅ Preferred type for %s", nicheKey))
				break
			}
		}
		maxChars := 999
		if ps, ok := PlatformSpecs[platform]; ok {
			maxChars = ps.MaxChars
		}
		if len(text) <= maxChars {
			parts = append(parts, fmt.Sprintf("✅ Length fits %s", platform))
		} else {
			parts = append(parts, fmt.Sprintf("⚠️ Slightly long for %s", platform))
		}
	}

	if len(parts) == 0 {
		return "No issues"
	}
	return strings.Join(parts, " | ")
}

// Generate builds all eight hook variants for a topic, scored and ranked.
// topN limits the rendered report, not the returned slice.
func Generate(nicheKey, topic, platform, context string, topN int) (*Report, error) {
	if _, ok := NicheConfigs[nicheKey]; !ok {
		return nil, errors.NewCLIError(errors.ErrorTypeValidation,
			fmt.Sprintf("unknown niche '%s'", nicheKey), nil).
			WithSuggestion("valid niches: " + strings.Join(niche.Order, ", "))
	}

	hooks := make([]Result, 0, len(Types))
	for _, hookType := range Types {
		text := buildHookText(hookType, topic, context)
		score := Score(text, hookType, nicheKey, platform)
		hooks = append(hooks, Result{
			HookType: hookType,
			Text:     text,
			Score:    score,
			Label:    ScoreLabel(score),
			Notes:    buildNotes(text, hookType, nicheKey, platform),
		})
	}

	sort.SliceStable(hooks, func(i, j int) bool { return hooks[i].Score > hooks[j].Score })
	for i := range hooks {
		hooks[i].Rank = i + 1
	}

	displayed := hooks
	if topN > 0 && topN < len(hooks) {
		displayed = hooks[:topN]
	}

	report := &Report{
		Niche:    nicheKey,
		Platform: platform,
		Topic:    topic,
		Context:  context,
		Hooks:    hooks,
	}
	report.Report = renderReport(report, displayed)
	return report, nil
}

// ScoreExisting scores a caller-provided hook, detecting its type from
// surface patterns.
func ScoreExisting(text, nicheKey, platform string) Result {
	textLower := strings.ToLower(text)
	detected := "curiosity_gap"
	switch {
	case numberListRe.MatchString(textLower):
		detected = "number_list"
	case strings.HasPrefix(textLower, "i ") || strings.HasPrefix(textLower, "my ") ||
		strings.HasPrefix(textLower, "last ") || strings.HasPrefix(textLower, "three years"):
		detected = "personal_story"
	case percentOnlyRe.MatchString(textLower):
		detected = "data_shock"
	case strings.Contains(text, "?"):
		detected = "question"
	case contrarianRe.MatchString(textLower):
		detected = "contrarian"
	}

	score := Score(text, detected, nicheKey, platform)
	return Result{
		HookType: "detected: " + detected,
		Text:     text,
		Score:    score,
		Label:    ScoreLabel(score),
		Notes:    "Auto-detected as " + detected,
		Rank:     1,
	}
}

func renderReport(r *Report, displayed []Result) string {
	sep := strings.Repeat("═", 45)
	lines := []string{
		sep,
		"HOOK GENERATOR REPORT",
		sep,
		"Niche:     " + r.Niche,
		"Platform:  " + r.Platform,
		"Topic:     " + r.Topic,
	}
	if r.Context != "" {
		lines = append(lines, "Context:   "+r.Context)
	}
	lines = append(lines, "", fmt.Sprintf("%d HOOK(S) — Sorted by Score", len(displayed)), strings.Repeat("─", 45))

	for _, h := range displayed {
		star := "  "
		if h.Rank == 1 {
			star = "★ "
		}
		typeDisplay := strings.ReplaceAll(strings.ToUpper(h.HookType), "_", " ")
		lines = append(lines,
			fmt.Sprintf("\n[%d] %-20s Score: %-4v  %s%s", h.Rank, typeDisplay, h.Score, star, h.Label),
			fmt.Sprintf("    \"%s\"", h.Text),
			"    → "+h.Notes)
	}

	lines = append(lines, "", sep)
	if top := r.TopHook(); top != nil {
		lines = append(lines,
			fmt.Sprintf("TOP PICK: [%s]", strings.ReplaceAll(strings.ToUpper(top.HookType), "_", " ")),
			fmt.Sprintf("\"%s\"", top.Text))
	}
	lines = append(lines, sep)
	return strings.Join(lines, "\n")
}
