package voice

// toneGroup is one tone category and the markers that signal it. Groups
// are evaluated in order so flagged issues render deterministically.
type toneGroup struct {
	Type    string
	Markers []string
}

// ruleSet is one niche's voice rules
type ruleSet struct {
	BannedPhrases []string
	BannedOpeners []string
	GreenFlags    []string
	ToneMarkers   []toneGroup
}

// PlatformLengthSpecs maps platform to its (min, max) character window
var PlatformLengthSpecs = map[string][2]int{
	"linkedin":      {100, 3000},
	"twitter":       {10, 280},
	"instagram":     {50, 2200},
	"facebook":      {50, 500},
	"newsletter":    {300, 7000},
	"youtube_short": {30, 600},
	"youtube_long":  {200, 5000},
}

var rules = map[string]ruleSet{
	"ttbp": {
		BannedPhrases: []string{
			"unpack", "at the end of the day", "synergy", "game-changer",
			"thought leader", "circle back", "delve into",
			"it's important to note that", "in today's fast-paced world",
			"leverage", "journey",
		},
		BannedOpeners: []string{
			"hi everyone", "happy monday", "happy tuesday", "happy wednesday",
			"happy thursday", "happy friday", "good morning", "greetings",
			"in today's", "as we navigate", "in this post i will",
		},
		GreenFlags: []string{
			"here's the thing", "the truth is", "what nobody tells you",
			"think about that", "i've seen this", "that's not a small thing",
			"this is the part where",
		},
		ToneMarkers: []toneGroup{
			{"too_casual", []string{"lol", "omg", "tbh", "ngl", "imo", "fwiw"}},
			{"too_corporate", []string{"synergize", "best-in-class", "robust solution",
				"value-add", "stakeholder", "actionable insights"}},
		},
	},
	"cb": {
		BannedPhrases: []string{
			"diverse voices", "own voices", "must-read",
			"representation matters", "powerful story", "delve into",
			"thought-provoking",
		},
		BannedOpeners: []string{
			"hi everyone", "happy monday", "in this post",
			"today we're going to", "let me share",
		},
		GreenFlags: []string{
			"the story behind the story", "what this book is really doing",
			"there's a reason this one", "the diaspora needs", "read this slowly",
			"things fall apart", "chinua achebe", "chimamanda",
		},
		ToneMarkers: []toneGroup{
			{"too_casual", []string{"lol", "omg", "vibe", "fire", "lit"}},
			{"too_corporate", []string{"content strategy", "target audience", "engagement metrics"}},
		},
	},
	"tundexai": {
		BannedPhrases: []string{
			"ai is going to change everything", "the future is now",
			"unlock the power of ai", "revolutionary", "groundbreaking",
			"harness", "democratize", "keep up with ai",
			"the ai revolution", "delve into", "hallucination",
		},
		BannedOpeners: []string{
			"ai is changing", "in today's rapidly evolving", "as ai continues",
			"the world of ai", "with the rise of ai",
		},
		GreenFlags: []string{
			"here's what the benchmarks", "the pattern i keep seeing",
			"that's a tools problem", "framework first", "i tested this",
			"most people are optimizing", "let me be specific",
		},
		ToneMarkers: []toneGroup{
			{"too_casual", []string{"wow", "amazing", "mind-blowing", "insane", "crazy good"}},
			{"too_hype", []string{"revolutionary", "unprecedented", "game-changing",
				"never before seen", "will change everything"}},
		},
	},
	"wellwithtunde": {
		BannedPhrases: []string{
			"self-care", "hustle culture", "glow up", "manifest",
			"wellness journey", "toxic positivity", "biohacking",
			"optimizing your body",
		},
		BannedOpeners: []string{
			"hi everyone", "good morning beautiful", "rise and shine",
			"today's tip", "in today's post",
		},
		GreenFlags: []string{
			"your body keeps the score", "this is sustainable", "you don't earn rest",
			"what are you actually hungry for", "start smaller",
			"the whole person shows up",
		},
		ToneMarkers: []toneGroup{
			{"too_clinical", []string{"protocol", "optimization", "biometric", "quantified self"}},
			{"too_spiritual_only", []string{"manifest", "the universe will", "just believe"}},
		},
	},
	"tundestalksmen": {
		BannedPhrases: []string{
			"toxic masculinity", "man up", "alpha male", "sigma",
			"boys will be boys", "real men", "bro",
		},
		BannedOpeners: []string{
			"hey guys", "what's up men", "gentlemen,",
			"as men we need to", "this is for the fellas",
		},
		GreenFlags: []string{
			"that's the work", "nobody's coming to save you",
			"strong men build", "what are you modeling",
			"the version of you your children", "men don't talk about this",
		},
		ToneMarkers: []toneGroup{
			{"too_redpill", []string{"alpha", "sigma", "chad", "hypergamy", "the wall"}},
			{"too_soft", []string{"just be yourself", "it's okay to cry", "feelings are valid"}},
		},
	},
}
