package research

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const benchmarkText = `A 2024 study found that 73% of enterprise AI pilots never reach production. ` +
	`The research shows companies spent $4 million on average before cancellation. ` +
	`Here's what the benchmarks miss in practice. ` +
	`The key finding is that teams optimize model choice before workflow design. ` +
	`Weather was pleasant that day.`

func TestStripHTML(t *testing.T) {
	raw := `<html><head><style>body{color:red}</style><script>var x=1;</script></head>` +
		`<body><h1>Title</h1><p>Real&nbsp;content here.</p></body></html>`
	got := stripHTML(raw)
	if strings.Contains(got, "<") || strings.Contains(got, "var x") || strings.Contains(got, "color:red") {
		t.Errorf("markup survived: %q", got)
	}
	if !strings.Contains(got, "Title") || !strings.Contains(got, "content here.") {
		t.Errorf("text lost: %q", got)
	}
}

func TestExtractKeyFactsScoring(t *testing.T) {
	facts := extractKeyFacts(benchmarkText, 5)
	if len(facts) == 0 {
		t.Fatal("no facts extracted")
	}
	// The percentage + study + year sentence outranks everything
	if !strings.Contains(facts[0], "73%") {
		t.Errorf("top fact = %q", facts[0])
	}
	for _, f := range facts {
		if strings.Contains(f, "Weather was pleasant") {
			t.Error("scoreless sentence should not be a key fact")
		}
	}
}

func TestExtractKeyFactsFallback(t *testing.T) {
	facts := extractKeyFacts("Nothing quantitative lives in this sentence at all.", 5)
	if len(facts) != 1 {
		t.Fatalf("fallback facts = %v", facts)
	}
	if !strings.Contains(facts[0], "Nothing quantitative") {
		t.Errorf("fallback = %q", facts[0])
	}
}

func TestBuildSummary(t *testing.T) {
	summary := buildSummary(benchmarkText, 4)
	if !strings.Contains(summary, "73% of enterprise AI pilots") {
		t.Errorf("summary missing opener: %q", summary)
	}
	// Claim-marker sentence gets pulled in after the first two
	if !strings.Contains(summary, "key finding") {
		t.Errorf("summary missing claim sentence: %q", summary)
	}
	if len(summary) > 803 {
		t.Errorf("summary too long: %d chars", len(summary))
	}
}

func TestGenerateAngles(t *testing.T) {
	facts := extractKeyFacts(benchmarkText, 5)
	angles := generateAngles("tundexai", facts, benchmarkText)
	if len(angles) != 3 {
		t.Fatalf("angles = %d", len(angles))
	}
	if angles[0].HookTypeSuggestion != "data_shock" {
		t.Errorf("numeric fact suggestion = %q", angles[0].HookTypeSuggestion)
	}
	if angles[1].HookTypeSuggestion != "contrarian" {
		t.Errorf("gap angle suggestion = %q", angles[1].HookTypeSuggestion)
	}
	if angles[2].HookTypeSuggestion != "personal_story" {
		t.Errorf("story angle suggestion = %q", angles[2].HookTypeSuggestion)
	}
	if !strings.Contains(angles[0].Angle, "enterprise AI adoption and failure modes") {
		t.Errorf("angle 1 missing top concern: %q", angles[0].Angle)
	}
	if !strings.Contains(angles[1].Angle, "What this research misses about") {
		t.Errorf("angle 2 = %q", angles[1].Angle)
	}
}

func TestGenerateAnglesNoDigits(t *testing.T) {
	angles := generateAngles("ttbp", []string{"Conventional advice about delegation keeps failing teams."}, "text")
	if angles[0].HookTypeSuggestion != "bold_claim" {
		t.Errorf("digit-free fact suggestion = %q", angles[0].HookTypeSuggestion)
	}
}

func TestDetectVoiceFlags(t *testing.T) {
	text := "Let me delve into this. Here's what the benchmarks actually show about adoption."
	flags := detectVoiceFlags("tundexai", text)

	var warning, green bool
	for _, f := range flags {
		if f.FlagType == "warning" && f.Term == "delve into" {
			warning = true
			if !strings.HasPrefix(f.Context, "...") || !strings.HasSuffix(f.Context, "...") {
				t.Errorf("context not bracketed: %q", f.Context)
			}
		}
		if f.FlagType == "green" && f.Term == "here's what the benchmarks" {
			green = true
		}
	}
	if !warning {
		t.Error("banned term not flagged")
	}
	if !green {
		t.Error("voice keyword not flagged")
	}
}

func TestGenerateTagsCap(t *testing.T) {
	angles := []Angle{
		{Angle: "First angle about careers"},
		{Angle: "Second angle about data"},
	}
	tags := generateTags("ttbp", strings.ToLower(benchmarkText)+" career leadership data faith entrepreneurship", angles)
	if len(tags) == 0 || len(tags) > 5 {
		t.Errorf("tags = %v", tags)
	}
}

func TestSynthesizeFromText(t *testing.T) {
	brief, err := Synthesize("tundexai", []Source{{Type: SourceText, Content: benchmarkText}}, "linkedin")
	if err != nil {
		t.Fatal(err)
	}
	if brief.RecommendedHookType != "data_shock" {
		t.Errorf("recommended hook = %q", brief.RecommendedHookType)
	}
	if !strings.Contains(brief.HookReasoning, "strong data points") {
		t.Errorf("reasoning = %q", brief.HookReasoning)
	}
	if brief.PrimaryAngle != brief.ContentAngles[0].Angle {
		t.Error("primary angle should be the first angle")
	}
	if len(brief.SourceRefs) != 1 || brief.SourceRefs[0] != "inline text" {
		t.Errorf("source refs = %v", brief.SourceRefs)
	}
	for _, want := range []string{"RESEARCH BRIEF", "SOURCE SUMMARY", "KEY FACTS & QUOTABLES", "CONTENT ANGLES (3):", "RECOMMENDED HOOK TYPE"} {
		if !strings.Contains(brief.Report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestSynthesizeHookTypeFallsBackToPreferred(t *testing.T) {
	// wellwithtunde does not prefer data_shock, so a numeric source
	// falls back to the niche's first preference
	brief, err := Synthesize("wellwithtunde",
		[]Source{{Type: SourceText, Content: "A 2023 study found 40% of high achievers report burnout symptoms."}}, "linkedin")
	if err != nil {
		t.Fatal(err)
	}
	if brief.RecommendedHookType != "personal_story" {
		t.Errorf("recommended hook = %q", brief.RecommendedHookType)
	}
}

func TestSynthesizeFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte(benchmarkText), 0o644); err != nil {
		t.Fatal(err)
	}

	brief, err := Synthesize("ttbp", []Source{{Type: SourceFile, Content: path}}, "newsletter")
	if err != nil {
		t.Fatal(err)
	}
	if brief.SourceRefs[0] != "notes.md" {
		t.Errorf("file ref = %q", brief.SourceRefs[0])
	}
	if brief.Platform != "newsletter" {
		t.Errorf("platform = %q", brief.Platform)
	}
}

func TestSynthesizeMissingFile(t *testing.T) {
	_, err := Synthesize("ttbp", []Source{{Type: SourceFile, Content: "/nonexistent/notes.md"}}, "linkedin")
	if err == nil {
		t.Error("missing file should error")
	}
}

func TestSynthesizeEmptySources(t *testing.T) {
	if _, err := Synthesize("ttbp", []Source{{Type: SourceText, Content: "   "}}, "linkedin"); err == nil {
		t.Error("empty content should error")
	}
	if _, err := Synthesize("ttbp", nil, "linkedin"); err == nil {
		t.Error("no sources should error")
	}
}

func TestSynthesizeUnknownNiche(t *testing.T) {
	if _, err := Synthesize("nope", []Source{{Type: SourceText, Content: "text"}}, "linkedin"); err == nil {
		t.Error("unknown niche should error")
	}
}

func TestReadFileTextCapsLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("a", 20000)), 0o644); err != nil {
		t.Fatal(err)
	}
	text, err := ReadFileText(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(text) > 12000 {
		t.Errorf("uncapped read: %d chars", len(text))
	}
}
