// Package niche holds the static configuration tables shared by every
// engine: per-niche benchmark targets, content pillar keywords, and the
// ordered content-format detection rules. All tables are immutable after
// process start.
package niche

import (
	"regexp"
	"strings"
)

// Platform identifiers as they appear in analytics exports
const (
	PlatformLinkedIn  = "linkedin"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
)

// DefaultNiche is assigned when no pillar keyword matches
const DefaultNiche = "ttbp"

// DefaultPlatform is assumed when an export row carries no platform field
const DefaultPlatform = PlatformLinkedIn

// Benchmark holds one niche's target rates and scoring configuration.
// Targets are LinkedIn-first; PlatformScale adjusts them per platform.
type Benchmark struct {
	Name              string
	EngagementTarget  float64
	CommentRateTarget float64
	SaveRateTarget    float64
	ShareRateTarget   float64
	PlatformScale     map[string]float64
	Pillars           []string
}

// Order fixes niche iteration order. Tie-breaks in niche detection and the
// legacy report layout both depend on it.
var Order = []string{"ttbp", "cb", "tundexai", "wellwithtunde", "tundestalksmen"}

// Benchmarks maps niche key to its benchmark configuration
var Benchmarks = map[string]Benchmark{
	"ttbp": {
		Name:              "The Tunde Gbotosho Post (Leadership/Career)",
		EngagementTarget:  3.0,
		CommentRateTarget: 0.5,
		SaveRateTarget:    0.3,
		ShareRateTarget:   0.2,
		PlatformScale:     map[string]float64{"linkedin": 1.0, "instagram": 1.4, "twitter": 0.6},
		Pillars:           []string{"leadership", "career", "management", "promotion", "africa"},
	},
	"cb": {
		Name:              "Connecting Bridges (Literature/Culture)",
		EngagementTarget:  2.5,
		CommentRateTarget: 0.4,
		SaveRateTarget:    0.4,
		ShareRateTarget:   0.3,
		PlatformScale:     map[string]float64{"linkedin": 1.0, "instagram": 1.6, "twitter": 0.7},
		Pillars:           []string{"books", "literature", "africa", "culture", "publishing", "chinua", "achebe"},
	},
	"tundexai": {
		Name:              "TundeX AI (AI Strategy)",
		EngagementTarget:  3.5,
		CommentRateTarget: 0.6,
		SaveRateTarget:    0.5,
		ShareRateTarget:   0.3,
		PlatformScale:     map[string]float64{"linkedin": 1.0, "instagram": 1.2, "twitter": 0.8},
		Pillars:           []string{"ai", "claude", "chatgpt", "llm", "automation", "benchmark", "enterprise"},
	},
	"wellwithtunde": {
		Name:              "Well With Tunde (Wellness)",
		EngagementTarget:  2.0,
		CommentRateTarget: 0.3,
		SaveRateTarget:    0.5,
		ShareRateTarget:   0.4,
		PlatformScale:     map[string]float64{"linkedin": 1.0, "instagram": 1.8, "twitter": 0.5},
		Pillars:           []string{"wellness", "health", "mindfulness", "habit", "body", "nutrition", "chronic"},
	},
	"tundestalksmen": {
		Name:              "Tunde Talks Men (Men's Growth)",
		EngagementTarget:  2.5,
		CommentRateTarget: 0.5,
		SaveRateTarget:    0.4,
		ShareRateTarget:   0.3,
		PlatformScale:     map[string]float64{"linkedin": 1.0, "instagram": 1.5, "twitter": 0.7},
		Pillars:           []string{"men", "father", "relationship", "accountability", "brotherhood", "faith"},
	},
}

// Valid reports whether key names a known niche
func Valid(key string) bool {
	_, ok := Benchmarks[key]
	return ok
}

// Get returns the benchmark for key, falling back to the default niche
func Get(key string) Benchmark {
	if b, ok := Benchmarks[key]; ok {
		return b
	}
	return Benchmarks[DefaultNiche]
}

// Scale returns the platform scale factor, 1.0 for unknown platforms
func (b Benchmark) Scale(platform string) float64 {
	if s, ok := b.PlatformScale[platform]; ok {
		return s
	}
	return 1.0
}

// Detect picks the niche whose pillar keywords appear most often in content.
// Ties break toward the earlier niche in Order; no match falls back to the
// default niche.
func Detect(content string) string {
	text := strings.ToLower(content)
	best := ""
	bestScore := 0
	for _, key := range Order {
		score := 0
		for _, pillar := range Benchmarks[key].Pillars {
			if strings.Contains(text, pillar) {
				score++
			}
		}
		if score > bestScore {
			best = key
			bestScore = score
		}
	}
	if best == "" {
		return DefaultNiche
	}
	return best
}

// FormatRule tags content whose text matches any of its patterns
type FormatRule struct {
	Tag      string
	Patterns []*regexp.Regexp
}

// DefaultFormat is assigned when no rule matches
const DefaultFormat = "narrative"

// FormatRules is evaluated top to bottom; the first matching rule wins.
// Rule order is part of the classification contract, keep it stable.
var FormatRules = []FormatRule{
	{"numbered_list", compile(`^\d+\.`, `→ \d+`, `#\d+`)},
	{"bullet_list", compile(`^[-•→]`, `^•`)},
	{"personal_story", compile(`\bI\b.{0,40}\byears?\b`, `\bI\b.{0,30}\bremember\b`, `\bmy\s+\w+\b.{0,20}\btold\b`)},
	{"bold_claim", compile(`[A-Z]{3,}`, `^\s*Stop\b`, `^\s*This is wrong`, `Nobody tells you`)},
	{"data_shock", compile(`\d+%`, `\$[\d,]+`, `\d+x\b`, `\d+K\b`, `\d+M\b`)},
	{"question_only", compile(`^\s*\w.{0,80}\?$`)},
	{"framework", compile(`\bframework\b`, `\bstep \d\b`, `\bphase \d\b`, `\bstage \d\b`)},
	{"contrarian", compile(`\bwrong\b`, `\blie\b`, `\bmyth\b`, `\bunpopular\b`, `\bno one says\b`)},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?im)`+p))
	}
	return out
}

// DetectFormat classifies content against FormatRules in order
func DetectFormat(content string) string {
	for _, rule := range FormatRules {
		for _, re := range rule.Patterns {
			if re.MatchString(content) {
				return rule.Tag
			}
		}
	}
	return DefaultFormat
}
