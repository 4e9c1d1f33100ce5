// Package seo analyzes long-form content for search optimization: keyword
// extraction and density, heading hierarchy, generated meta tags,
// readability, and a weighted composite score.
package seo

// Meta tag and density thresholds
const (
	MetaTitleMin          = 50
	MetaTitleMax          = 60
	MetaDescMin           = 140
	MetaDescMax           = 160
	KeywordDensityMin     = 0.005
	KeywordDensityMax     = 0.020
	MaxAvgSentenceWords   = 25
	SubheadingIntervalMax = 250 // words between subheadings
)

// VariantGroup pairs a base term with its accepted semantic variants
type VariantGroup struct {
	Base     string
	Variants []string
}

// NicheConfig holds one niche's SEO expectations
type NicheConfig struct {
	Name             string
	MinWordCount     int
	TopicCluster     []string
	SemanticVariants []VariantGroup
	PlatformMin      map[string]int
	MetaTone         string
	StopWords        []string
}

var commonStopWords = []string{
	"the", "a", "an", "is", "it", "in", "on", "at", "to", "for",
	"of", "and", "or", "but", "with", "this", "that", "they",
}

// Configs maps niche key to its SEO configuration
var Configs = map[string]NicheConfig{
	"ttbp": {
		Name:         "The Tunde Gbotosho Post",
		MinWordCount: 800,
		TopicCluster: []string{
			"leadership", "management", "career growth", "middle management",
			"promotion", "corporate", "executive", "strategy", "influence",
			"organizational dynamics", "workplace", "professional development",
		},
		SemanticVariants: []VariantGroup{
			{"leadership", []string{"leading", "lead", "leader", "leaders"}},
			{"management", []string{"manager", "managers", "managing", "managed"}},
			{"career growth", []string{"career advancement", "career development", "career path"}},
			{"promotion", []string{"promoted", "promotable", "advancing"}},
		},
		PlatformMin: map[string]int{"blog": 800, "linkedin_article": 700, "newsletter": 500},
		MetaTone:    "direct_personal",
		StopWords:   commonStopWords,
	},
	"cb": {
		Name:         "Connecting Bridges",
		MinWordCount: 600,
		TopicCluster: []string{
			"African literature", "Chinua Achebe", "Wole Soyinka", "Ngugi wa Thiong'o",
			"African fiction", "postcolonial", "decolonizing", "African authors",
			"Nigerian literature", "publishing", "cultural commentary", "book review",
			"literary criticism", "African diaspora", "African identity",
		},
		SemanticVariants: []VariantGroup{
			{"African literature", []string{"African fiction", "African writing", "African novels"}},
			{"postcolonial", []string{"post-colonial", "decolonial", "decolonizing"}},
			{"publishing", []string{"published", "publisher", "book", "books"}},
		},
		PlatformMin: map[string]int{"blog": 600, "linkedin_article": 500, "newsletter": 400},
		MetaTone:    "cultural_literary",
		StopWords:   commonStopWords,
	},
	"tundexai": {
		Name:         "TundeXAI",
		MinWordCount: 900,
		TopicCluster: []string{
			"AI strategy", "artificial intelligence", "LLM", "large language models",
			"ChatGPT", "Claude", "enterprise AI", "AI automation", "AI tools",
			"machine learning", "AI benchmarks", "prompt engineering", "AI agents",
			"AI implementation", "AI ROI", "generative AI", "foundation models",
		},
		SemanticVariants: []VariantGroup{
			{"AI strategy", []string{"AI roadmap", "AI planning", "AI adoption"}},
			{"LLM", []string{"large language model", "language model", "GPT", "foundation model"}},
			{"enterprise AI", []string{"business AI", "corporate AI", "AI for business"}},
			{"automation", []string{"automated", "automate", "automating"}},
		},
		PlatformMin: map[string]int{"blog": 900, "linkedin_article": 800, "newsletter": 600},
		MetaTone:    "analytical_direct",
		StopWords:   commonStopWords,
	},
	"wellwithtunde": {
		Name:         "Well With Tunde",
		MinWordCount: 600,
		TopicCluster: []string{
			"holistic health", "sustainable wellness", "body awareness", "habit formation",
			"nutrition", "movement", "sleep", "stress", "chronic disease prevention",
			"mindfulness", "body connection", "wellness practice", "lifestyle",
			"mental health", "physical health", "burnout", "energy",
		},
		SemanticVariants: []VariantGroup{
			{"holistic health", []string{"whole-body health", "integrated wellness", "holistic wellness"}},
			{"habit formation", []string{"building habits", "habit change", "daily habits", "routines"}},
			{"mindfulness", []string{"mindful", "awareness", "presence", "conscious"}},
		},
		PlatformMin: map[string]int{"blog": 600, "linkedin_article": 500, "newsletter": 400},
		MetaTone:    "warm_approachable",
		StopWords:   commonStopWords,
	},
	"tundestalksmen": {
		Name:         "Tunde Talks Men",
		MinWordCount: 700,
		TopicCluster: []string{
			"men's growth", "men's mental health", "accountability", "masculinity",
			"fatherhood", "relationships", "men's community", "purpose",
			"men's vulnerability", "integrity", "brotherhood", "men's leadership",
			"identity", "strength", "emotional intelligence for men",
		},
		SemanticVariants: []VariantGroup{
			{"accountability", []string{"accountable", "responsibility", "owning it"}},
			{"masculinity", []string{"masculine", "manhood", "being a man"}},
			{"fatherhood", []string{"father", "dad", "parenting", "raising kids"}},
		},
		PlatformMin: map[string]int{"blog": 700, "linkedin_article": 600, "newsletter": 450},
		MetaTone:    "direct_accountable",
		StopWords:   commonStopWords,
	},
}
