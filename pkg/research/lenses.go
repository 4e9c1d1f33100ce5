// Package research turns raw source material (URLs, files, pasted text)
// into structured content briefs: summary, key facts, angles, voice flags,
// and a recommended hook type per niche.
package research

// AngleLens captures what one niche's audience cares about and how its
// voice sounds
type AngleLens struct {
	AudienceConcerns []string
	AngleFrames      []string
	VoiceKeywords    []string
	BannedTerms      []string
}

// Lenses maps niche key to its angle lens
var Lenses = map[string]AngleLens{
	"ttbp": {
		AudienceConcerns: []string{
			"career strategy and transitions",
			"AI and the future of work",
			"leadership and management realities",
			"entrepreneurship and building",
			"data literacy and evidence-based decisions",
			"faith, discipline, and identity",
		},
		AngleFrames: []string{
			"What does this mean for mid-career professionals?",
			"What's the counterintuitive insight here?",
			"Where does the conventional advice fall short?",
			"What personal story does this enable?",
		},
		VoiceKeywords: []string{
			"here's the thing", "the truth is", "what nobody tells you",
			"think about that", "i've seen this",
		},
		BannedTerms: []string{
			"unpack", "at the end of the day", "synergy", "game-changer",
			"thought leader", "circle back", "delve into", "leverage",
			"in today's fast-paced world",
		},
	},
	"cb": {
		AudienceConcerns: []string{
			"African and diaspora literature",
			"the publishing industry's gaps",
			"reading as cultural practice",
			"authors and their craft",
			"the politics of storytelling",
		},
		AngleFrames: []string{
			"What is this book/story actually doing?",
			"What does this mean for African/diaspora readers specifically?",
			"What conversation does this open that wasn't open before?",
			"Who is missing from this story and why?",
		},
		VoiceKeywords: []string{
			"the story behind the story", "what this is really doing",
			"read this slowly", "the diaspora needs",
		},
		BannedTerms: []string{
			"diverse voices", "own voices", "must-read", "representation matters",
			"powerful story", "delve into", "thought-provoking",
		},
	},
	"tundexai": {
		AudienceConcerns: []string{
			"enterprise AI adoption and failure modes",
			"model evaluation and benchmarks",
			"AI frameworks and mental models",
			"utilities and infrastructure AI",
			"what actually works vs. hype",
		},
		AngleFrames: []string{
			"What do the benchmarks not tell you?",
			"What framework explains this better than the current framing?",
			"Where is the industry optimizing the wrong layer?",
			"What would a practitioner do differently?",
		},
		VoiceKeywords: []string{
			"here's what the benchmarks", "the pattern i keep seeing",
			"that's a tools problem", "framework first", "i tested this",
			"most people are optimizing", "let me be specific",
		},
		BannedTerms: []string{
			"ai is going to change everything", "the future is now",
			"unlock the power of ai", "revolutionary", "groundbreaking",
			"harness", "democratize", "keep up with ai", "the ai revolution",
			"delve into", "hallucination",
		},
	},
	"wellwithtunde": {
		AudienceConcerns: []string{
			"sustainable performance for ambitious people",
			"burnout and recovery",
			"sleep, movement, and recovery fundamentals",
			"mental and emotional health for high achievers",
			"faith and rest as integrated practice",
			"ancestral and Nigerian wellness wisdom",
		},
		AngleFrames: []string{
			"What is this person's body actually telling them?",
			"What does sustainable look like here vs. aspirational?",
			"What permission does this research give?",
			"How does this connect to whole-person health?",
		},
		VoiceKeywords: []string{
			"your body keeps the score", "this is sustainable",
			"you don't earn rest", "what are you actually hungry for",
			"start smaller", "the whole person shows up",
		},
		BannedTerms: []string{
			"self-care", "hustle culture", "glow up", "manifest",
			"wellness journey", "toxic positivity", "biohacking",
			"optimizing your body",
		},
	},
	"tundestalksmen": {
		AudienceConcerns: []string{
			"fatherhood in reality vs. performance",
			"career and identity transitions for men",
			"Nigerian/African cultural expectations of manhood",
			"faith and masculine identity",
			"marriage, partnership, and family",
		},
		AngleFrames: []string{
			"What does this mean for the man who's actually doing the work?",
			"What pressure does this research name that men don't talk about?",
			"What does this look like through a fatherhood lens?",
			"What does this say about the model men are passing down?",
		},
		VoiceKeywords: []string{
			"that's the work", "nobody's coming to save you",
			"strong men build", "what are you modeling",
			"the version of you your children", "men don't talk about this",
		},
		BannedTerms: []string{
			"toxic masculinity", "man up", "alpha male", "sigma",
			"boys will be boys", "real men", "bro",
		},
	},
}

// PreferredHookTypes lists each niche's hook-type preferences, best first
var PreferredHookTypes = map[string][]string{
	"ttbp":           {"curiosity_gap", "bold_claim", "personal_story"},
	"cb":             {"curiosity_gap", "personal_story", "contrarian"},
	"tundexai":       {"bold_claim", "data_shock", "contrarian"},
	"wellwithtunde":  {"personal_story", "question", "pattern_interrupt"},
	"tundestalksmen": {"personal_story", "pattern_interrupt", "bold_claim"},
}

// PlatformBriefLength describes the expected brief length per platform
var PlatformBriefLength = map[string]string{
	"linkedin":      "medium (300-800 word post)",
	"twitter":       "short (280 chars or thread)",
	"instagram":     "short caption (50-150 chars opener)",
	"facebook":      "medium (200-500 words)",
	"newsletter":    "long (800-3000 words)",
	"youtube_short": "script bullet points only",
	"youtube_long":  "full outline with sections",
}
