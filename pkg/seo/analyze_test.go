package seo

import (
	"strings"
	"testing"
)

const leadershipArticle = `# The Leadership Plateau Nobody Warns You About

Leadership is not a title. Most people hit a plateau in middle management because they keep optimizing for visibility instead of influence. This piece is about the workplace dynamics behind that plateau.

## Why promotion stalls

The promotion conversation is usually about performance. It should be about strategy. Executive sponsors look for people who change organizational dynamics, not people who survive them.

## What to do instead

Start with management of attention. Professional development compounds when you pick one lever and pull it for a year.
`

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One. Two! Three? Four")
	want := []string{"One.", "Two!", "Three?", "Four"}
	if len(got) != len(want) {
		t.Fatalf("got %d sentences: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
	// No terminal punctuation means one sentence
	if got := splitSentences("no punctuation here"); len(got) != 1 {
		t.Errorf("unpunctuated text split into %d", len(got))
	}
}

func TestExtractPrimaryKeywordClusterMatch(t *testing.T) {
	kw := extractPrimaryKeyword(leadershipArticle, "ttbp", "The Leadership Plateau")
	if kw != "leadership" {
		t.Errorf("primary keyword = %q, want leadership", kw)
	}
}

func TestExtractPrimaryKeywordBigramFallback(t *testing.T) {
	content := "remote work beats office work because remote work compounds. remote work wins."
	kw := extractPrimaryKeyword(content, "ttbp", "")
	if kw != "remote work" {
		t.Errorf("primary keyword = %q, want remote work", kw)
	}
}

func TestExtractPrimaryKeywordEmptyContent(t *testing.T) {
	if kw := extractPrimaryKeyword("", "cb", ""); kw != "African literature" {
		t.Errorf("empty content keyword = %q, want cluster head", kw)
	}
}

func TestFindSemanticVariants(t *testing.T) {
	content := "Great leaders keep managing expectations while leading from the front."
	got := findSemanticVariants(content, "ttbp", "leadership")

	found := map[string]bool{}
	for _, v := range got {
		found[v] = true
	}
	// "leaders" and "leading" belong to the leadership group
	if !found["leaders"] || !found["leading"] {
		t.Errorf("variants = %v, want leaders and leading", got)
	}
	// "managing" belongs to the management group, which does not match
	// the primary keyword
	if found["managing"] {
		t.Errorf("variants = %v, managing should not match a leadership primary", got)
	}
}

func TestKeywordDensity(t *testing.T) {
	d := keywordDensity("leadership is leadership", "leadership")
	if d < 0.66 || d > 0.67 {
		t.Errorf("density = %v", d)
	}
	if d := keywordDensity("nothing here", "leadership"); d != 0 {
		t.Errorf("absent keyword density = %v", d)
	}
	// Multi-word keywords match as word sequences
	d = keywordDensity("career growth beats career stagnation", "career growth")
	if d != 0.2 {
		t.Errorf("bigram density = %v, want 0.2", d)
	}
}

func TestAnalyzeHeadingsWellFormed(t *testing.T) {
	h := analyzeHeadings(leadershipArticle, "leadership")
	if h.H1Count != 1 || h.H2Count != 2 {
		t.Errorf("counts h1=%d h2=%d", h.H1Count, h.H2Count)
	}
	if !h.PrimaryKeywordInHeading {
		t.Error("keyword should be found in H1")
	}
	if h.Score != 100 {
		t.Errorf("score = %d, want 100 (issues: %v)", h.Score, h.HierarchyIssues)
	}
}

func TestAnalyzeHeadingsPenalties(t *testing.T) {
	// No headings at all: -25 (no H1), -20 (no H2), -15 (keyword absent)
	h := analyzeHeadings("plain text with no structure", "leadership")
	if h.Score != 40 {
		t.Errorf("score = %d, want 40", h.Score)
	}
	if len(h.HierarchyIssues) != 3 {
		t.Errorf("issues = %v", h.HierarchyIssues)
	}

	// HTML headings count too
	h = analyzeHeadings("<h1>Leadership basics</h1><h2>Part one</h2>", "leadership")
	if h.H1Count != 1 || h.H2Count != 1 {
		t.Errorf("html counts h1=%d h2=%d", h.H1Count, h.H2Count)
	}
	if !h.PrimaryKeywordInHeading {
		t.Error("keyword should be found in HTML heading")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ai strategy", "Ai Strategy"},
		{"career growth", "Career Growth"},
		{"LLM", "Llm"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateMetaTitleFromH1(t *testing.T) {
	h1 := []string{"The Leadership Plateau Nobody Warns You About"}
	got := generateMetaTitle("ttbp", "leadership", "", h1)
	if got != h1[0] {
		t.Errorf("title = %q, want the H1 verbatim", got)
	}

	// Overlong H1 truncates at a word boundary with ellipsis
	long := []string{"The Leadership Plateau Nobody Warns You About When You Finally Reach Middle Management"}
	got = generateMetaTitle("ttbp", "leadership", "", long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long H1 title = %q, want ellipsis suffix", got)
	}
	if len(got) > MetaTitleMax {
		t.Errorf("truncated title still %d chars", len(got))
	}
}

func TestGenerateMetaTitleFallback(t *testing.T) {
	// No template lands in 50-60 chars for a short keyword
	got := generateMetaTitle("ttbp", "leadership", "", nil)
	if got != "Leadership — The Complete Guide" {
		t.Errorf("fallback title = %q", got)
	}
}

func TestGenerateMetaDescription(t *testing.T) {
	desc := generateMetaDescription("ttbp", "leadership", leadershipArticle)
	if !strings.Contains(strings.ToLower(desc), "leadership") {
		t.Errorf("description missing keyword: %q", desc)
	}
	last := desc[len(desc)-1]
	if last != '.' && last != '!' && last != '?' {
		t.Errorf("description does not end cleanly: %q", desc)
	}

	// Empty content falls back to the canned line
	desc = generateMetaDescription("cb", "publishing", "")
	if !strings.Contains(desc, "Insights on publishing from Connecting Bridges.") {
		t.Errorf("fallback description = %q", desc)
	}
}

func TestBuildMetaTagsScoring(t *testing.T) {
	m := buildMetaTags("ttbp", "leadership", leadershipArticle,
		[]string{"The Leadership Plateau Nobody Warns You About"})
	if !m.PrimaryKeywordInTitle {
		t.Error("keyword should be in title")
	}
	if m.TitleCharCount != len(m.Title) || m.DescriptionCharCount != len(m.Description) {
		t.Error("char counts disagree with tag lengths")
	}
	if m.Score < 0 || m.Score > 100 {
		t.Errorf("meta score = %d", m.Score)
	}
}

func TestAnalyzeReadabilityCleanContent(t *testing.T) {
	r := analyzeReadability(leadershipArticle)
	if r.WordCount == 0 || r.SentenceCount == 0 {
		t.Fatal("counts should be nonzero")
	}
	if r.AvgSentenceWords > MaxAvgSentenceWords {
		t.Errorf("short sentences flagged: avg %.1f", r.AvgSentenceWords)
	}
	if r.LongSentenceCount != 0 {
		t.Errorf("long sentences = %d", r.LongSentenceCount)
	}
	if r.Score != 100 {
		t.Errorf("score = %d (issues: %v)", r.Score, r.Issues)
	}
}

func TestAnalyzeReadabilityFlagsWalls(t *testing.T) {
	// One unbroken 320-word block, no headings, no punctuation breaks
	wall := strings.Repeat("word ", 320)
	r := analyzeReadability(wall)
	if r.Score == 100 {
		t.Error("wall of text should lose points")
	}
	if len(r.Issues) == 0 {
		t.Error("expected issues")
	}
}

func TestCompositeScoreVerdicts(t *testing.T) {
	perfect := KeywordReport{Score: 100, SecondaryFound: []string{"a", "b", "c", "d", "e", "f"}}
	score, verdict := compositeScore(MetaTags{Score: 100}, HeadingAnalysis{Score: 100},
		perfect, ReadabilityReport{Score: 100}, 1000, 800)
	if score != 100 || verdict != VerdictOptimized {
		t.Errorf("perfect inputs = %d %s", score, verdict)
	}

	score, verdict = compositeScore(MetaTags{}, HeadingAnalysis{},
		KeywordReport{}, ReadabilityReport{}, 100, 800)
	if verdict != VerdictWeak {
		t.Errorf("empty inputs verdict = %s (score %d)", verdict, score)
	}
}

func TestBuildRecommendationsCap(t *testing.T) {
	recs := buildRecommendations(
		MetaTags{TitleCharCount: 20, DescriptionCharCount: 40},
		HeadingAnalysis{HierarchyIssues: []string{"one", "two", "three"}},
		KeywordReport{PrimaryKeyword: "leadership", SecondaryMissing: []string{"x", "y", "z"}},
		ReadabilityReport{Issues: []string{"a", "b", "c"}},
		100, 800)
	if len(recs) != 7 {
		t.Errorf("recommendations = %d, want capped at 7", len(recs))
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	r, err := Analyze("ttbp", leadershipArticle, "newsletter", "")
	if err != nil {
		t.Fatal(err)
	}
	if r.PrimaryKeyword != "leadership" {
		t.Errorf("primary keyword = %q", r.PrimaryKeyword)
	}
	if r.ContentPreview != "The Leadership Plateau Nobody Warns You About" {
		t.Errorf("preview = %q", r.ContentPreview)
	}
	if r.WordCountOK {
		t.Error("short article should miss the newsletter minimum")
	}
	if r.Score < 0 || r.Score > 100 {
		t.Errorf("score = %d", r.Score)
	}
	for _, want := range []string{"SEO REPORT", "PRIMARY KEYWORD", "META TAGS (ready to use)", "HEADING HIERARCHY", "READABILITY", "RECOMMENDATIONS"} {
		if !strings.Contains(r.Report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestAnalyzeUnknownNiche(t *testing.T) {
	if _, err := Analyze("nope", "text", "blog", ""); err == nil {
		t.Error("unknown niche should error")
	}
}

func TestGenerateMetaFastMode(t *testing.T) {
	m, err := GenerateMeta("ttbp", leadershipArticle, "")
	if err != nil {
		t.Fatal(err)
	}
	if m.PrimaryKeyword != "leadership" {
		t.Errorf("keyword = %q", m.PrimaryKeyword)
	}
	if m.MetaTitleChars != len(m.MetaTitle) || m.MetaDescriptionChars != len(m.MetaDescription) {
		t.Error("char counts disagree")
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		verdict string
		want    int
	}{
		{VerdictOptimized, 0},
		{VerdictGood, 0},
		{VerdictNeedsWork, 1},
		{VerdictWeak, 2},
		{"???", 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.verdict); got != tt.want {
			t.Errorf("ExitCode(%s) = %d, want %d", tt.verdict, got, tt.want)
		}
	}
}
