package research

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/niche"
)

// Source kinds accepted by Synthesize
const (
	SourceURL  = "url"
	SourceText = "text"
	SourceFile = "file"
)

// Source is one raw research input
type Source struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Angle is one niche-relevant content angle derived from the material
type Angle struct {
	Angle              string `json:"angle"`
	Frame              string `json:"frame"`
	HookTypeSuggestion string `json:"hook_type_suggestion"`
}

// VoiceFlag marks a banned term or a niche-aligned phrase in the source
type VoiceFlag struct {
	FlagType string `json:"flag_type"` // "warning" | "green"
	Term     string `json:"term"`
	Context  string `json:"context"`
}

// Brief is the synthesized output for one batch of sources
type Brief struct {
	Niche               string      `json:"niche"`
	Platform            string      `json:"platform"`
	SourceSummary       string      `json:"source_summary"`
	KeyFacts            []string    `json:"key_facts"`
	ContentAngles       []Angle     `json:"content_angles"`
	PrimaryAngle        string      `json:"primary_angle"`
	RecommendedHookType string      `json:"recommended_hook_type"`
	HookReasoning       string      `json:"hook_reasoning"`
	SuggestedTags       []string    `json:"suggested_tags"`
	VoiceFlags          []VoiceFlag `json:"voice_flags"`
	SourceRefs          []string    `json:"source_refs"`
	Report              string      `json:"-"`
}

var (
	percentFactRe  = regexp.MustCompile(`\b\d+[\.\d]*%`)
	moneyFactRe    = regexp.MustCompile(`(?i)\$[\d,]+|\d+ (million|billion|trillion)`)
	claimVerbRe    = regexp.MustCompile(`(?i)\b(found|shows?|reveals?|reports?|according to|study|research|data)\b`)
	yearRe         = regexp.MustCompile(`\b\d{4}\b`)
	quotableRe     = regexp.MustCompile(`"[^"]{10,}"`)
	anyDigitRe     = regexp.MustCompile(`\d+`)
	summaryClaimRe = regexp.MustCompile(`(?i)\b(key|main|important|central|critical|finding|conclusion|result)\b`)
)

// splitSentences splits on whitespace following sentence punctuation
func splitSentences(s string) []string {
	var out []string
	var cur strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			if i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' || runes[i+1] == '\r') {
				out = append(out, cur.String())
				cur.Reset()
				for i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' || runes[i+1] == '\r') {
					i++
				}
			}
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// extractKeyFacts pulls the sentences most likely to anchor a post:
// percentages, dollar figures, attributed claims, years, quotables.
func extractKeyFacts(text string, maxFacts int) []string {
	type scored struct {
		score int
		sent  string
	}
	var facts []scored
	for _, sent := range splitSentences(text) {
		sent = strings.TrimSpace(sent)
		if len(sent) < 20 || len(sent) > 300 {
			continue
		}
		score := 0
		if percentFactRe.MatchString(sent) {
			score += 3
		}
		if moneyFactRe.MatchString(sent) {
			score += 2
		}
		if claimVerbRe.MatchString(sent) {
			score += 2
		}
		if yearRe.MatchString(sent) {
			score++
		}
		if quotableRe.MatchString(sent) {
			score += 2
		}
		if score > 0 {
			facts = append(facts, scored{score, sent})
		}
	}

	if len(facts) == 0 {
		fallback := strings.TrimSpace(text)
		if len(fallback) > 200 {
			fallback = strings.TrimSpace(fallback[:200]) + "..."
		}
		return []string{fallback}
	}

	sort.SliceStable(facts, func(i, j int) bool { return facts[i].score > facts[j].score })
	if len(facts) > maxFacts {
		facts = facts[:maxFacts]
	}
	out := make([]string, len(facts))
	for i, f := range facts {
		out[i] = f.sent
	}
	return out
}

// generateAngles derives three angles: the strongest data point, the gap
// the source does not address, and a personal-story entry point.
func generateAngles(nicheKey string, keyFacts []string, combinedText string) []Angle {
	lens := Lenses[nicheKey]
	frames := lens.AngleFrames
	concerns := lens.AudienceConcerns
	var angles []Angle

	if len(keyFacts) > 0 {
		snippet := keyFacts[0]
		if len(snippet) > 120 {
			snippet = snippet[:120]
		}
		snippet = strings.TrimRight(snippet, ".")
		suggestion := "bold_claim"
		if anyDigitRe.MatchString(snippet) {
			suggestion = "data_shock"
		}
		angles = append(angles, Angle{
			Angle:              fmt.Sprintf("%s — and its implications for %s", snippet, concerns[0]),
			Frame:              frames[0],
			HookTypeSuggestion: suggestion,
		})
	}

	textLower := strings.ToLower(combinedText)
	gap := concerns[1]
	for _, concern := range concerns[1:3] {
		if !strings.Contains(textLower, strings.ToLower(strings.Fields(concern)[0])) {
			gap = concern
			break
		}
	}
	frame2 := frames[0]
	if len(frames) > 1 {
		frame2 = frames[1]
	}
	angles = append(angles, Angle{
		Angle:              fmt.Sprintf("What this research misses about %s — and why that gap matters", gap),
		Frame:              frame2,
		HookTypeSuggestion: "contrarian",
	})

	frame3 := frames[0]
	if len(frames) > 2 {
		frame3 = frames[2]
	}
	concern3 := concerns[0]
	if len(concerns) > 2 {
		concern3 = concerns[2]
	}
	angles = append(angles, Angle{
		Angle:              fmt.Sprintf("A personal experience lens on %s: what this data confirms", concern3),
		Frame:              frame3,
		HookTypeSuggestion: "personal_story",
	})

	return angles
}

func contextSnippet(text string, idx, termLen, before, after int) string {
	start := idx - before
	if start < 0 {
		start = 0
	}
	end := idx + termLen + after
	if end > len(text) {
		end = len(text)
	}
	return "..." + strings.TrimSpace(text[start:end]) + "..."
}

// detectVoiceFlags scans for banned terms and niche-aligned phrases
func detectVoiceFlags(nicheKey, text string) []VoiceFlag {
	lens := Lenses[nicheKey]
	textLower := strings.ToLower(text)
	var flags []VoiceFlag

	for _, term := range lens.BannedTerms {
		if idx := strings.Index(textLower, strings.ToLower(term)); idx >= 0 {
			flags = append(flags, VoiceFlag{
				FlagType: "warning",
				Term:     term,
				Context:  contextSnippet(text, idx, len(term), 40, 40),
			})
		}
	}
	for _, keyword := range lens.VoiceKeywords {
		if idx := strings.Index(textLower, strings.ToLower(keyword)); idx >= 0 {
			flags = append(flags, VoiceFlag{
				FlagType: "green",
				Term:     keyword,
				Context:  contextSnippet(text, idx, len(keyword), 20, 60),
			})
		}
	}
	return flags
}

// generateTags suggests up to five cluster tags from concerns and angles
func generateTags(nicheKey, combinedText string, angles []Angle) []string {
	lens := Lenses[nicheKey]
	textLower := strings.ToLower(combinedText)
	var tags []string

	for _, concern := range lens.AudienceConcerns {
		words := strings.Fields(concern)
		if len(words) > 2 {
			words = words[:2]
		}
		for _, w := range words {
			if strings.Contains(textLower, strings.ToLower(w)) {
				tags = append(tags, concern)
				break
			}
		}
		if len(tags) >= 4 {
			break
		}
	}

	for i, angle := range angles {
		if i >= 2 {
			break
		}
		words := strings.Fields(angle.Angle)
		if len(words) > 3 {
			words = words[:3]
		}
		tag := strings.Join(words, " ")
		seen := false
		for _, t := range tags {
			if t == tag {
				seen = true
				break
			}
		}
		if !seen {
			tags = append(tags, tag)
		}
	}

	if len(tags) > 5 {
		tags = tags[:5]
	}
	return tags
}

// buildSummary takes the first two substantive sentences plus any with
// claim markers, capped at four sentences and 800 chars.
func buildSummary(text string, maxSentences int) string {
	var sentences []string
	for _, s := range splitSentences(strings.ReplaceAll(text, "\n", " ")) {
		if s = strings.TrimSpace(s); len(s) > 40 {
			sentences = append(sentences, s)
		}
	}

	var selected []string
	if len(sentences) >= 2 {
		selected = append(selected, sentences[:2]...)
		for _, sent := range sentences[2:] {
			if summaryClaimRe.MatchString(sent) {
				selected = append(selected, sent)
			}
			if len(selected) >= maxSentences {
				break
			}
		}
	} else if len(sentences) > 0 {
		selected = sentences
	}
	if len(selected) > maxSentences {
		selected = selected[:maxSentences]
	}

	summary := strings.Join(selected, " ")
	if len(summary) > 800 {
		cut := summary[:800]
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		summary = cut + "..."
	}
	return summary
}

// Synthesize collects all sources, extracts the brief components, and
// renders the report.
func Synthesize(nicheKey string, sources []Source, platform string) (*Brief, error) {
	if _, ok := Lenses[nicheKey]; !ok {
		return nil, errors.NewCLIError(errors.ErrorTypeValidation,
			fmt.Sprintf("unknown niche '%s'", nicheKey), nil).
			WithSuggestion("valid niches: " + strings.Join(niche.Order, ", "))
	}

	var texts []string
	var refs []string
	for _, src := range sources {
		content := strings.TrimSpace(src.Content)
		switch src.Type {
		case SourceURL:
			texts = append(texts, FetchURLText(content))
			refs = append(refs, content)
		case SourceFile:
			text, err := ReadFileText(content)
			if err != nil {
				return nil, err
			}
			texts = append(texts, text)
			refs = append(refs, filepath.Base(content))
		default:
			texts = append(texts, content)
			refs = append(refs, "inline text")
		}
	}

	combined := strings.Join(texts, "\n\n")
	if strings.TrimSpace(combined) == "" {
		return nil, errors.NewCLIError(errors.ErrorTypeEmptyDataset,
			"No content extracted from provided sources.", nil).
			WithSuggestion("provide at least one of: --url, --text, --file")
	}

	summary := buildSummary(combined, 4)
	keyFacts := extractKeyFacts(combined, 5)
	angles := generateAngles(nicheKey, keyFacts, combined)
	voiceFlags := detectVoiceFlags(nicheKey, combined)
	tags := generateTags(nicheKey, combined, angles)

	bestType := "curiosity_gap"
	if len(angles) > 0 {
		bestType = angles[0].HookTypeSuggestion
	}
	preferred := PreferredHookTypes[nicheKey]
	inPreferred := false
	for _, p := range preferred {
		if p == bestType {
			inPreferred = true
			break
		}
	}
	if !inPreferred {
		bestType = preferred[0]
	}

	material := "a strong claim"
	if len(keyFacts) > 0 && anyDigitRe.MatchString(keyFacts[0]) {
		material = "strong data points"
	}
	reasoning := fmt.Sprintf("Source contains %s that maps well to %s for the %s audience.",
		material, strings.ReplaceAll(bestType, "_", " "), nicheKey)

	primaryAngle := summary
	if len(primaryAngle) > 120 {
		primaryAngle = primaryAngle[:120]
	}
	if len(angles) > 0 {
		primaryAngle = angles[0].Angle
	}

	brief := &Brief{
		Niche:               nicheKey,
		Platform:            platform,
		SourceSummary:       summary,
		KeyFacts:            keyFacts,
		ContentAngles:       angles,
		PrimaryAngle:        primaryAngle,
		RecommendedHookType: bestType,
		HookReasoning:       reasoning,
		SuggestedTags:       tags,
		VoiceFlags:          voiceFlags,
		SourceRefs:          refs,
	}
	brief.Report = renderBrief(brief)
	return brief, nil
}

func renderBrief(b *Brief) string {
	sep := strings.Repeat("═", 45)
	lines := []string{
		sep,
		"RESEARCH BRIEF",
		sep,
		"Niche:     " + b.Niche,
		"Platform:  " + b.Platform,
		"Sources:   " + strings.Join(b.SourceRefs, ", "),
		"",
		"SOURCE SUMMARY",
		strings.Repeat("─", 45),
		b.SourceSummary,
		"",
	}

	if len(b.KeyFacts) > 0 {
		lines = append(lines, fmt.Sprintf("KEY FACTS & QUOTABLES (%d):", len(b.KeyFacts)))
		for _, fact := range b.KeyFacts {
			if len(fact) > 200 {
				fact = fact[:200]
			}
			lines = append(lines, "  • "+fact)
		}
		lines = append(lines, "")
	}

	if len(b.ContentAngles) > 0 {
		lines = append(lines, fmt.Sprintf("CONTENT ANGLES (%d):", len(b.ContentAngles)))
		for i, angle := range b.ContentAngles {
			lines = append(lines,
				fmt.Sprintf("  %d. %s", i+1, angle.Angle),
				"     Frame: "+angle.Frame,
				"     Hook suggestion: "+angle.HookTypeSuggestion)
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"RECOMMENDED HOOK TYPE",
		"  → "+b.RecommendedHookType,
		"  → Reasoning: "+b.HookReasoning,
		"")

	if len(b.SuggestedTags) > 0 {
		lines = append(lines,
			"SUGGESTED TAGS / CLUSTERS",
			"  → "+strings.Join(b.SuggestedTags, ", "),
			"")
	}

	var warnings, greens []VoiceFlag
	for _, f := range b.VoiceFlags {
		if f.FlagType == "warning" {
			warnings = append(warnings, f)
		} else {
			greens = append(greens, f)
		}
	}
	if len(warnings) > 0 || len(greens) > 0 {
		lines = append(lines, "VOICE FLAGS")
		for _, f := range warnings {
			ctx := f.Context
			if len(ctx) > 100 {
				ctx = ctx[:100]
			}
			lines = append(lines,
				fmt.Sprintf("  ⚠️  \"%s\" — banned in %s", f.Term, b.Niche),
				"      Context: "+ctx)
		}
		for _, f := range greens {
			lines = append(lines, fmt.Sprintf("  ✅  \"%s\" — niche-aligned phrase detected", f.Term))
		}
		lines = append(lines, "")
	}

	lines = append(lines, sep)
	return strings.Join(lines, "\n")
}
