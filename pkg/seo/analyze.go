package seo

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/niche"
)

// KeywordReport covers primary keyword placement, density, and cluster
// coverage
type KeywordReport struct {
	PrimaryKeyword         string   `json:"primary_keyword"`
	PrimaryInFirst100Words bool     `json:"primary_in_first_100_words"`
	PrimaryDensity         float64  `json:"primary_density"`
	DensityOK              bool     `json:"density_ok"`
	SecondaryKeywords      []string `json:"secondary_keywords"`
	SecondaryFound         []string `json:"secondary_found"`
	SecondaryMissing       []string `json:"secondary_missing"`
	SemanticVariantsFound  []string `json:"semantic_variants_found"`
	Score                  int      `json:"score"`
}

// Verdict labels, best to worst
const (
	VerdictOptimized = "OPTIMIZED"
	VerdictGood      = "GOOD"
	VerdictNeedsWork = "NEEDS WORK"
	VerdictWeak      = "WEAK"
)

// Report is the full SEO analysis for one piece of content
type Report struct {
	Niche           string            `json:"niche"`
	Platform        string            `json:"platform"`
	ContentPreview  string            `json:"content_preview"`
	WordCount       int               `json:"word_count"`
	WordCountOK     bool              `json:"word_count_ok"`
	PrimaryKeyword  string            `json:"primary_keyword"`
	Meta            MetaTags          `json:"meta"`
	Headings        HeadingAnalysis   `json:"headings"`
	Keywords        KeywordReport     `json:"keywords"`
	Readability     ReadabilityReport `json:"readability"`
	Recommendations []string          `json:"recommendations"`
	Score           int               `json:"score"`
	Verdict         string            `json:"verdict"`
	GeneratedAt     string            `json:"generated_at"`
	Report          string            `json:"-"`
}

// Meta is the fast-mode result: keyword plus generated tags only
type Meta struct {
	PrimaryKeyword       string `json:"primary_keyword"`
	MetaTitle            string `json:"meta_title"`
	MetaTitleChars       int    `json:"meta_title_chars"`
	MetaDescription      string `json:"meta_description"`
	MetaDescriptionChars int    `json:"meta_description_chars"`
}

// ExitCode maps a verdict to the process exit status
func ExitCode(verdict string) int {
	switch verdict {
	case VerdictOptimized, VerdictGood:
		return 0
	case VerdictNeedsWork:
		return 1
	case VerdictWeak:
		return 2
	}
	return 1
}

func buildKeywordReport(content, nicheKey, primaryKeyword string) KeywordReport {
	cfg := Configs[nicheKey]

	fields := strings.Fields(content)
	if len(fields) > 100 {
		fields = fields[:100]
	}
	first100 := strings.ToLower(strings.Join(fields, " "))
	primaryInFirst100 := strings.Contains(first100, strings.ToLower(primaryKeyword))

	density := keywordDensity(content, primaryKeyword)
	densityOK := density >= KeywordDensityMin && density <= KeywordDensityMax

	secondaryFound := extractSecondaryKeywords(content, nicheKey, primaryKeyword)
	secondaryMissing := findMissingSecondary(cfg, primaryKeyword, secondaryFound)
	variants := findSemanticVariants(content, nicheKey, primaryKeyword)

	score := 100
	if !primaryInFirst100 {
		score -= 20
	}
	if !densityOK {
		if density < KeywordDensityMin {
			score -= 15
		} else {
			score -= 20 // over-stuffed
		}
	}
	switch {
	case len(secondaryFound) < 2:
		score -= 20
	case len(secondaryFound) < 4:
		score -= 10
	}
	if score < 0 {
		score = 0
	}

	allSecondary := cfg.TopicCluster
	if len(allSecondary) > 8 {
		allSecondary = allSecondary[:8]
	}
	if len(secondaryMissing) > 4 {
		secondaryMissing = secondaryMissing[:4]
	}

	return KeywordReport{
		PrimaryKeyword:         primaryKeyword,
		PrimaryInFirst100Words: primaryInFirst100,
		PrimaryDensity:         math.Round(density*10000) / 10000,
		DensityOK:              densityOK,
		SecondaryKeywords:      allSecondary,
		SecondaryFound:         secondaryFound,
		SecondaryMissing:       secondaryMissing,
		SemanticVariantsFound:  variants,
		Score:                  score,
	}
}

// compositeScore weighs the component scores into one 0-100 figure
func compositeScore(meta MetaTags, headings HeadingAnalysis, keywords KeywordReport,
	readability ReadabilityReport, wordCount, minWordCount int) (int, string) {

	topicalScore := math.Min(100, float64(len(keywords.SecondaryFound))/6*100)

	var lengthScore float64
	switch {
	case wordCount >= minWordCount:
		lengthScore = 100
	case float64(wordCount) >= float64(minWordCount)*0.8:
		lengthScore = 75
	case float64(wordCount) >= float64(minWordCount)*0.6:
		lengthScore = 50
	default:
		lengthScore = 25
	}

	composite := float64(keywords.Score)*0.25 +
		float64(meta.Score)*0.20 +
		float64(headings.Score)*0.15 +
		topicalScore*0.20 +
		float64(readability.Score)*0.10 +
		lengthScore*0.10

	score := int(math.Round(composite))

	switch {
	case score >= 85:
		return score, VerdictOptimized
	case score >= 70:
		return score, VerdictGood
	case score >= 50:
		return score, VerdictNeedsWork
	default:
		return score, VerdictWeak
	}
}

func buildRecommendations(meta MetaTags, headings HeadingAnalysis, keywords KeywordReport,
	readability ReadabilityReport, wordCount, minWordCount int) []string {

	var recs []string

	if !meta.PrimaryKeywordInTitle {
		recs = append(recs, fmt.Sprintf("Add %q to the meta title", keywords.PrimaryKeyword))
	}
	if !meta.TitleOK {
		if meta.TitleCharCount < MetaTitleMin {
			recs = append(recs, fmt.Sprintf("Meta title is %d chars — expand to 50–60 chars", meta.TitleCharCount))
		} else {
			recs = append(recs, fmt.Sprintf("Meta title is %d chars — trim to 60 chars max", meta.TitleCharCount))
		}
	}
	if !meta.DescriptionOK {
		if meta.DescriptionCharCount < MetaDescMin {
			recs = append(recs, fmt.Sprintf("Meta description is %d chars — expand to 140–160 chars", meta.DescriptionCharCount))
		} else {
			recs = append(recs, fmt.Sprintf("Meta description is %d chars — trim to 160 chars max", meta.DescriptionCharCount))
		}
	}

	issues := headings.HierarchyIssues
	if len(issues) > 2 {
		issues = issues[:2]
	}
	recs = append(recs, issues...)

	if !keywords.PrimaryInFirst100Words {
		recs = append(recs, fmt.Sprintf("Use %q in the first 100 words", keywords.PrimaryKeyword))
	}
	if !keywords.DensityOK {
		if keywords.PrimaryDensity < KeywordDensityMin {
			recs = append(recs, fmt.Sprintf("Primary keyword density %.1f%% — increase to 0.5–2%%", keywords.PrimaryDensity*100))
		} else {
			recs = append(recs, fmt.Sprintf("Primary keyword density %.1f%% — reduce (over-optimized)", keywords.PrimaryDensity*100))
		}
	}
	if len(keywords.SecondaryMissing) > 0 {
		top := keywords.SecondaryMissing
		if len(top) > 2 {
			top = top[:2]
		}
		recs = append(recs, fmt.Sprintf("Consider adding: %s (missing from topic cluster)", strings.Join(top, ", ")))
	}

	rIssues := readability.Issues
	if len(rIssues) > 2 {
		rIssues = rIssues[:2]
	}
	recs = append(recs, rIssues...)

	if wordCount < minWordCount {
		recs = append(recs, fmt.Sprintf("Content is %d words — target minimum is %d words for this niche", wordCount, minWordCount))
	}

	if len(recs) > 7 {
		recs = recs[:7]
	}
	return recs
}

var firstH1Re = regexp.MustCompile(`(?m)^#\s+(.+)`)

// Analyze runs the full SEO analysis for a niche and platform
func Analyze(nicheKey, content, platform, title string) (*Report, error) {
	cfg, ok := Configs[nicheKey]
	if !ok {
		return nil, errors.NewCLIError(errors.ErrorTypeValidation,
			fmt.Sprintf("unknown niche '%s'", nicheKey), nil).
			WithSuggestion("valid niches: " + strings.Join(niche.Order, ", "))
	}

	minWordCount := cfg.MinWordCount
	if m, ok := cfg.PlatformMin[platform]; ok {
		minWordCount = m
	}

	wordCount := countWords(content)
	wordCountOK := wordCount >= minWordCount

	preview := title
	if preview == "" {
		if m := firstH1Re.FindStringSubmatch(content); m != nil {
			preview = m[1]
		} else {
			preview = content
		}
	}
	if len(preview) > 80 {
		preview = preview[:80]
	}
	preview = strings.TrimSpace(preview)

	searchTitle := title
	if searchTitle == "" {
		searchTitle = preview
	}
	primaryKeyword := extractPrimaryKeyword(content, nicheKey, searchTitle)

	headings := analyzeHeadings(content, primaryKeyword)
	meta := buildMetaTags(nicheKey, primaryKeyword, content, headings.H1Texts)
	keywords := buildKeywordReport(content, nicheKey, primaryKeyword)
	readability := analyzeReadability(content)

	score, verdict := compositeScore(meta, headings, keywords, readability, wordCount, minWordCount)
	recs := buildRecommendations(meta, headings, keywords, readability, wordCount, minWordCount)

	if len(preview) > 60 {
		preview = preview[:60]
	}

	r := &Report{
		Niche:           nicheKey,
		Platform:        platform,
		ContentPreview:  preview,
		WordCount:       wordCount,
		WordCountOK:     wordCountOK,
		PrimaryKeyword:  primaryKeyword,
		Meta:            meta,
		Headings:        headings,
		Keywords:        keywords,
		Readability:     readability,
		Recommendations: recs,
		Score:           score,
		Verdict:         verdict,
		GeneratedAt:     time.Now().Format(time.RFC3339),
	}
	r.Report = formatReport(r)
	return r, nil
}

// GenerateMeta is the fast mode: keyword plus meta tags, no full analysis
func GenerateMeta(nicheKey, content, title string) (*Meta, error) {
	if _, ok := Configs[nicheKey]; !ok {
		return nil, errors.NewCLIError(errors.ErrorTypeValidation,
			fmt.Sprintf("unknown niche '%s'", nicheKey), nil).
			WithSuggestion("valid niches: " + strings.Join(niche.Order, ", "))
	}

	primaryKeyword := extractPrimaryKeyword(content, nicheKey, title)
	headings := analyzeHeadings(content, primaryKeyword)
	meta := buildMetaTags(nicheKey, primaryKeyword, content, headings.H1Texts)

	return &Meta{
		PrimaryKeyword:       primaryKeyword,
		MetaTitle:            meta.Title,
		MetaTitleChars:       meta.TitleCharCount,
		MetaDescription:      meta.Description,
		MetaDescriptionChars: meta.DescriptionCharCount,
	}, nil
}

func checkIcon(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func formatComma(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}

func formatReport(r *Report) string {
	cfg := Configs[r.Niche]
	sep := strings.Repeat("═", 43)
	sub := strings.Repeat("─", 43)

	verdictIcon := map[string]string{
		VerdictOptimized: "✅", VerdictGood: "✅",
		VerdictNeedsWork: "⚠️", VerdictWeak: "❌",
	}[r.Verdict]

	h1Display := "Not found"
	if len(r.Headings.H1Texts) > 0 {
		h1Display = r.Headings.H1Texts[0]
		if len(h1Display) > 60 {
			h1Display = h1Display[:60]
		}
	}
	h2Display := "None"
	if len(r.Headings.H2Texts) > 0 {
		var parts []string
		for i, t := range r.Headings.H2Texts {
			if i >= 3 {
				break
			}
			if len(t) > 30 {
				t = t[:30]
			}
			parts = append(parts, t)
		}
		h2Display = strings.Join(parts, " | ")
	}
	h3Display := "None"
	if r.Headings.H3Count > 0 {
		h3Display = fmt.Sprintf("%d found", r.Headings.H3Count)
	}

	secondaryStr := "None found"
	if len(r.Keywords.SecondaryFound) > 0 {
		found := r.Keywords.SecondaryFound
		if len(found) > 5 {
			found = found[:5]
		}
		secondaryStr = strings.Join(found, ", ")
	}
	missingStr := "None"
	if len(r.Keywords.SecondaryMissing) > 0 {
		missing := r.Keywords.SecondaryMissing
		if len(missing) > 3 {
			missing = missing[:3]
		}
		missingStr = strings.Join(missing, ", ")
	}
	variantsStr := "None"
	if len(r.Keywords.SemanticVariantsFound) > 0 {
		variantsStr = strings.Join(r.Keywords.SemanticVariantsFound, ", ")
	}

	headingIssues := ""
	for _, issue := range r.Headings.HierarchyIssues {
		headingIssues += "\n  ⚠️  " + issue
	}
	if headingIssues == "" {
		headingIssues = "\n  None"
	}

	h1Icon := "❌"
	if r.Headings.H1Count == 1 {
		h1Icon = "✅"
	}
	h3Icon := "~"
	if r.Headings.H3Count > 0 {
		h3Icon = "✅"
	}

	descTail := ""
	if len(r.Meta.Description) > 80 {
		descTail = r.Meta.Description[80:]
		if len(descTail) > 80 {
			descTail = descTail[:80]
		}
	}
	descHead := r.Meta.Description
	if len(descHead) > 80 {
		descHead = descHead[:80]
	}

	lines := []string{
		sep,
		"SEO REPORT",
		sep,
		fmt.Sprintf("Niche:          %s  (%s)", r.Niche, cfg.Name),
		"Platform:       " + r.Platform,
		fmt.Sprintf("Content:        \"%s\" (%s words)", r.ContentPreview, formatComma(r.WordCount)),
		"",
		fmt.Sprintf("SEO SCORE: %d/100  %s %s", r.Score, verdictIcon, r.Verdict),
		sub,
		"PRIMARY KEYWORD",
		fmt.Sprintf("  → \"%s\"", r.Keywords.PrimaryKeyword),
		fmt.Sprintf("  → In first 100 words: %s  |  Density: %.1f%% %s",
			checkIcon(r.Keywords.PrimaryInFirst100Words), r.Keywords.PrimaryDensity*100, checkIcon(r.Keywords.DensityOK)),
		"",
		"META TAGS (ready to use)",
		fmt.Sprintf("  → Title (%d chars) %s: %s", r.Meta.TitleCharCount, checkIcon(r.Meta.TitleOK), r.Meta.Title),
		"    Keyword in title: " + checkIcon(r.Meta.PrimaryKeywordInTitle),
		fmt.Sprintf("  → Description (%d chars) %s:", r.Meta.DescriptionCharCount, checkIcon(r.Meta.DescriptionOK)),
		"    " + descHead,
		"    " + descTail,
		"    Keyword in description: " + checkIcon(r.Meta.PrimaryKeywordInDescription),
		"",
		"HEADING HIERARCHY",
		fmt.Sprintf("  → H1 (%d) %s: %s", r.Headings.H1Count, h1Icon, h1Display),
		fmt.Sprintf("  → H2 (%d) %s: %s", r.Headings.H2Count, checkIcon(r.Headings.H2Count > 0), h2Display),
		fmt.Sprintf("  → H3 (%d) %s: %s", r.Headings.H3Count, h3Icon, h3Display),
		"  → Primary keyword in headings: " + checkIcon(r.Headings.PrimaryKeywordInHeading),
		"  → Issues: " + headingIssues,
		"",
		"KEYWORD CLUSTER",
		"  Primary:    " + r.Keywords.PrimaryKeyword,
		"  Secondary:  " + secondaryStr,
		"  Missing:    " + missingStr,
		"  Semantic variants found: " + variantsStr,
		"",
		"READABILITY",
		fmt.Sprintf("  → Avg sentence: %.0f words %s", r.Readability.AvgSentenceWords, checkIcon(r.Readability.AvgSentenceWords <= MaxAvgSentenceWords)),
		fmt.Sprintf("  → Subheading every: %.0f words %s", r.Readability.SubheadingDensity, checkIcon(r.Readability.SubheadingDensity <= SubheadingIntervalMax)),
		fmt.Sprintf("  → Avg paragraph: %.1f sentences %s", r.Readability.AvgParagraphSentences, checkIcon(r.Readability.AvgParagraphSentences <= 4)),
		fmt.Sprintf("  → Long sentences (>30 words): %d", r.Readability.LongSentenceCount),
		"",
		fmt.Sprintf("CONTENT LENGTH: %s words %s", formatComma(r.WordCount), checkIcon(r.WordCountOK)),
		"",
	}

	if len(r.Recommendations) > 0 {
		lines = append(lines, fmt.Sprintf("RECOMMENDATIONS (%d)", len(r.Recommendations)))
		for i, rec := range r.Recommendations {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, rec))
		}
	}

	lines = append(lines, sep)
	return strings.Join(lines, "\n")
}
