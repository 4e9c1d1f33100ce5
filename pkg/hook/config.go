// Package hook generates and scores opening-line hook variants per niche.
// Eight typed hooks are built per topic, scored 0-10 on specificity, voice,
// tension, and platform fit, then ranked.
package hook

import "regexp"

// Hook type identifiers, in generation order
var Types = []string{
	"curiosity_gap",
	"bold_claim",
	"personal_story",
	"data_shock",
	"pattern_interrupt",
	"question",
	"contrarian",
	"number_list",
}

// PlatformSpec carries a platform's hook length ceiling and style note
type PlatformSpec struct {
	MaxChars int
	Style    string
}

// PlatformSpecs maps platform to its hook conventions
var PlatformSpecs = map[string]PlatformSpec{
	"linkedin":      {MaxChars: 220, Style: "professional tension, earn the scroll"},
	"twitter":       {MaxChars: 140, Style: "sharp, punchy, single idea"},
	"instagram":     {MaxChars: 125, Style: "visual opener, personal or emotional"},
	"facebook":      {MaxChars: 200, Style: "community resonance, relatable moment"},
	"newsletter":    {MaxChars: 300, Style: "letter-opening energy, promise of depth"},
	"youtube_short": {MaxChars: 100, Style: "instant visual hook, 3-second hook"},
	"youtube_long":  {MaxChars: 200, Style: "problem-first, stakes clear immediately"},
}

// NicheConfig holds a niche's voice rules for hook writing
type NicheConfig struct {
	BestTypes         []string
	Tone              string
	Persona           string
	BannedOpeners     []string
	GreenFlagStarters []string
	AvoidPatterns     []*regexp.Regexp
}

func avoid(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

// NicheConfigs maps niche key to its hook voice configuration
var NicheConfigs = map[string]NicheConfig{
	"ttbp": {
		BestTypes: []string{"curiosity_gap", "bold_claim", "personal_story"},
		Tone:      "confident, warm, intellectually honest",
		Persona:   "Tunde Gbotosho — MBA, tech/AI exec, entrepreneur, author",
		BannedOpeners: []string{
			"in today's fast-paced", "in today's world", "as we navigate",
			"hi everyone", "happy monday", "good morning", "greetings",
			"in this post i will", "let me share with you",
		},
		GreenFlagStarters: []string{
			"here's the thing", "the truth is", "what nobody tells you",
			"i've watched", "i've sat in rooms where", "let me be honest about",
			"think about that", "this is the part where",
		},
		AvoidPatterns: avoid(`game.changer`, `leverage`, `synergy`, `delve into`,
			`thought leader`, `in today's fast`),
	},
	"cb": {
		BestTypes: []string{"curiosity_gap", "personal_story", "contrarian"},
		Tone:      "literary, warm, diaspora-aware, intellectually serious",
		Persona:   "Connecting Bridges Publishing — curator of African/diaspora literature",
		BannedOpeners: []string{
			"hi everyone", "happy monday", "in this post",
			"today we're going to", "let me share",
		},
		GreenFlagStarters: []string{
			"the story behind the story", "what this book is really doing",
			"there's a reason this one", "read this slowly",
			"most people finish this book without noticing",
		},
		AvoidPatterns: avoid(`must.read`, `powerful story`, `diverse voices`,
			`own voices`, `representation matters`),
	},
	"tundexai": {
		BestTypes: []string{"bold_claim", "data_shock", "contrarian"},
		Tone:      "practitioner-sharp, skeptically optimistic, technically precise",
		Persona:   "Tunde Gbotosho — AI consultant, enterprise operator, UVA Stats + HBS CORe",
		BannedOpeners: []string{
			"ai is changing", "in today's rapidly evolving", "as ai continues",
			"the world of ai", "with the rise of ai",
		},
		GreenFlagStarters: []string{
			"here's what the benchmarks aren't telling you",
			"the pattern i keep seeing",
			"i tested this", "most people are optimizing the wrong",
			"let me be specific", "framework first",
		},
		AvoidPatterns: avoid(`revolutionary`, `groundbreaking`, `unlock the power`,
			`ai is going to change everything`, `the ai revolution`,
			`harness`, `democratize`),
	},
	"wellwithtunde": {
		BestTypes: []string{"personal_story", "question", "pattern_interrupt"},
		Tone:      "grounding, honest, practically warm, faith-integrated",
		Persona:   "WellWithTunde — whole-person wellness for ambitious professionals",
		BannedOpeners: []string{
			"hi everyone", "good morning beautiful", "rise and shine",
			"today's tip", "in today's post",
		},
		GreenFlagStarters: []string{
			"you've been running on", "that thing you keep pushing through",
			"your body kept score even when you didn't",
			"here's what sustainable actually looks like",
			"what are you actually hungry for",
		},
		AvoidPatterns: avoid(`self.care`, `glow up`, `manifest`, `wellness journey`,
			`biohacking`, `optimizing your body`, `toxic positivity`),
	},
	"tundestalksmen": {
		BestTypes: []string{"personal_story", "pattern_interrupt", "bold_claim"},
		Tone:      "grounded, masculine without posturing, father-first, brotherhood energy",
		Persona:   "TundesTalksMen — Nigerian/African men navigating identity, fatherhood, faith",
		BannedOpeners: []string{
			"hey guys", "what's up men", "gentlemen,",
			"as men we need to", "this is for the fellas",
		},
		GreenFlagStarters: []string{
			"my son asked me", "i didn't have an answer for that",
			"the version of you your children are watching",
			"nobody's coming to save you", "that's the work",
			"in nigerian culture, men don't",
		},
		AvoidPatterns: avoid(`alpha male`, `sigma`, `toxic masculinity`,
			`man up`, `real men`, `\bbro\b`),
	},
}

// typePlatformAffinity lists where each hook type tends to land well
var typePlatformAffinity = map[string][]string{
	"curiosity_gap":     {"linkedin", "newsletter"},
	"bold_claim":        {"linkedin", "twitter"},
	"personal_story":    {"linkedin", "instagram", "facebook", "newsletter"},
	"data_shock":        {"linkedin", "newsletter", "twitter"},
	"pattern_interrupt": {"twitter", "instagram"},
	"question":          {"instagram", "facebook", "twitter"},
	"contrarian":        {"twitter", "linkedin"},
	"number_list":       {"linkedin", "newsletter"},
}
