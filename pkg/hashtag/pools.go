// Package hashtag selects per-niche hashtag sets with rotation and
// cooldown tracking, so the same four tags never run on consecutive posts.
package hashtag

// Tier names, ordered broad to micro
const (
	TierBroad = "broad"
	TierNiche = "niche"
	TierMicro = "micro"
)

var tierOrder = []string{TierBroad, TierNiche, TierMicro}

// CooldownPosts is how many posts must pass before a tag can be reused
const CooldownPosts = 3

// PlatformLimit holds a platform's hashtag ceiling and sweet spot
type PlatformLimit struct {
	Max       int
	SweetMin  int
	SweetMax  int
	Placement string
}

// PlatformLimits maps platform to its hashtag conventions
var PlatformLimits = map[string]PlatformLimit{
	"linkedin":  {Max: 30, SweetMin: 3, SweetMax: 5, Placement: "bottom"},
	"instagram": {Max: 30, SweetMin: 10, SweetMax: 15, Placement: "caption_or_comment"},
	"twitter":   {Max: 10, SweetMin: 1, SweetMax: 2, Placement: "inline_or_end"},
	"x":         {Max: 10, SweetMin: 1, SweetMax: 2, Placement: "inline_or_end"},
}

// LimitFor returns the platform limit, defaulting to linkedin's
func LimitFor(platform string) PlatformLimit {
	if l, ok := PlatformLimits[platform]; ok {
		return l
	}
	return PlatformLimits["linkedin"]
}

// TagInfo is one pool entry: the tag, its rough audience size, and the
// topic affinities used for relevance scoring.
type TagInfo struct {
	Tag       string
	Followers int
	Topics    []string
}

// Pool holds one niche's tag inventory and its pre-built rotation sets
type Pool struct {
	Broad        []TagInfo
	Niche        []TagInfo
	Micro        []TagInfo
	RotationSets map[string][]string
}

func (p Pool) tier(name string) []TagInfo {
	switch name {
	case TierBroad:
		return p.Broad
	case TierMicro:
		return p.Micro
	default:
		return p.Niche
	}
}

// all returns every pool tag, broad then niche then micro
func (p Pool) all() []TagInfo {
	out := make([]TagInfo, 0, len(p.Broad)+len(p.Niche)+len(p.Micro))
	out = append(out, p.Broad...)
	out = append(out, p.Niche...)
	out = append(out, p.Micro...)
	return out
}

// SetLabels fixes rotation set iteration order
var SetLabels = []string{"A", "B", "C", "D", "E"}

// Pools maps niche key to its hashtag pool. Follower counts are periodic
// manual estimates, not live data.
var Pools = map[string]Pool{
	"ttbp": {
		Broad: []TagInfo{
			{Tag: "#Leadership", Followers: 47_000_000},
			{Tag: "#Management", Followers: 22_000_000},
			{Tag: "#Career", Followers: 18_000_000},
			{Tag: "#Business", Followers: 95_000_000},
			{Tag: "#Strategy", Followers: 12_000_000},
			{Tag: "#WorkplaceWellness", Followers: 6_000_000},
		},
		Niche: []TagInfo{
			{Tag: "#CareerGrowth", Followers: 850_000, Topics: []string{"promotion", "plateau", "growth"}},
			{Tag: "#ManagementInsights", Followers: 420_000, Topics: []string{"management", "manager", "team"}},
			{Tag: "#ProfessionalDevelopment", Followers: 780_000, Topics: []string{"skills", "development", "learning"}},
			{Tag: "#MiddleManagement", Followers: 180_000, Topics: []string{"middle", "plateau", "manager"}},
			{Tag: "#CorporateCulture", Followers: 390_000, Topics: []string{"culture", "corporate", "organization"}},
			{Tag: "#ExecutivePresence", Followers: 220_000, Topics: []string{"executive", "presence", "influence"}},
			{Tag: "#WorkplaceIntelligence", Followers: 150_000, Topics: []string{"workplace", "culture", "smart"}},
		},
		Micro: []TagInfo{
			{Tag: "#AfricanLeaders", Followers: 45_000, Topics: []string{"africa", "nigerian", "diaspora"}},
			{Tag: "#NigerianProfessionals", Followers: 38_000, Topics: []string{"nigerian", "nigeria"}},
			{Tag: "#LeadershipInAfrica", Followers: 22_000, Topics: []string{"africa", "leadership"}},
			{Tag: "#DiasporaLeadership", Followers: 18_000, Topics: []string{"diaspora", "african american", "nigerian"}},
			{Tag: "#BlackLeaders", Followers: 62_000, Topics: []string{"black", "diverse", "inclusion"}},
		},
		RotationSets: map[string][]string{
			"A": {"#Leadership", "#CareerGrowth", "#ManagementInsights", "#AfricanLeaders"},
			"B": {"#Management", "#ProfessionalDevelopment", "#CorporateCulture", "#NigerianProfessionals"},
			"C": {"#Leadership", "#ExecutivePresence", "#MiddleManagement", "#DiasporaLeadership"},
			"D": {"#Career", "#CareerGrowth", "#WorkplaceIntelligence", "#BlackLeaders"},
			"E": {"#Strategy", "#ManagementInsights", "#ProfessionalDevelopment", "#LeadershipInAfrica"},
		},
	},

	"cb": {
		Broad: []TagInfo{
			{Tag: "#Books", Followers: 52_000_000},
			{Tag: "#Literature", Followers: 15_000_000},
			{Tag: "#Reading", Followers: 38_000_000},
			{Tag: "#Writing", Followers: 25_000_000},
			{Tag: "#Culture", Followers: 20_000_000},
		},
		Niche: []TagInfo{
			{Tag: "#AfricanLiterature", Followers: 480_000, Topics: []string{"african", "literature", "fiction"}},
			{Tag: "#Bookstagram", Followers: 620_000, Topics: []string{"book", "reading", "review"}},
			{Tag: "#LiteraryCriticism", Followers: 180_000, Topics: []string{"criticism", "analysis", "literary"}},
			{Tag: "#AfricanAuthors", Followers: 320_000, Topics: []string{"author", "african", "writer"}},
			{Tag: "#BookReview", Followers: 550_000, Topics: []string{"review", "book", "read"}},
			{Tag: "#PostcolonialLiterature", Followers: 120_000, Topics: []string{"postcolonial", "decolonial", "colonial"}},
		},
		Micro: []TagInfo{
			{Tag: "#NigerianLiterature", Followers: 42_000, Topics: []string{"nigerian", "nigeria"}},
			{Tag: "#ChinuaAchebe", Followers: 28_000, Topics: []string{"achebe", "things fall apart", "okonkwo"}},
			{Tag: "#AfricanFiction", Followers: 68_000, Topics: []string{"fiction", "african", "novel"}},
			{Tag: "#DecolonizingLiterature", Followers: 35_000, Topics: []string{"decolonize", "colonial", "western"}},
			{Tag: "#AfricanPublishing", Followers: 22_000, Topics: []string{"publishing", "publish", "book"}},
		},
		RotationSets: map[string][]string{
			"A": {"#Books", "#AfricanLiterature", "#BookReview", "#NigerianLiterature"},
			"B": {"#Literature", "#AfricanAuthors", "#LiteraryCriticism", "#AfricanFiction"},
			"C": {"#Reading", "#AfricanLiterature", "#PostcolonialLiterature", "#DecolonizingLiterature"},
			"D": {"#Writing", "#Bookstagram", "#AfricanAuthors", "#AfricanPublishing"},
			"E": {"#Culture", "#AfricanLiterature", "#LiteraryCriticism", "#ChinuaAchebe"},
		},
	},

	"tundexai": {
		Broad: []TagInfo{
			{Tag: "#AI", Followers: 120_000_000},
			{Tag: "#ArtificialIntelligence", Followers: 85_000_000},
			{Tag: "#Technology", Followers: 95_000_000},
			{Tag: "#Innovation", Followers: 45_000_000},
			{Tag: "#FutureOfWork", Followers: 18_000_000},
		},
		Niche: []TagInfo{
			{Tag: "#AIStrategy", Followers: 320_000, Topics: []string{"strategy", "plan", "roadmap", "adoption"}},
			{Tag: "#EnterpriseAI", Followers: 180_000, Topics: []string{"enterprise", "business", "corporate"}},
			{Tag: "#LLM", Followers: 520_000, Topics: []string{"llm", "language model", "gpt", "claude"}},
			{Tag: "#AITools", Followers: 380_000, Topics: []string{"tool", "tools", "software", "platform"}},
			{Tag: "#GenerativeAI", Followers: 620_000, Topics: []string{"generative", "generate", "image", "text"}},
			{Tag: "#PromptEngineering", Followers: 280_000, Topics: []string{"prompt", "prompting", "engineering"}},
			{Tag: "#AIAgents", Followers: 240_000, Topics: []string{"agent", "agents", "agentic", "autonomous"}},
		},
		Micro: []TagInfo{
			{Tag: "#AIImplementation", Followers: 45_000, Topics: []string{"implement", "deploy", "rollout"}},
			{Tag: "#AfricanAI", Followers: 28_000, Topics: []string{"africa", "african"}},
			{Tag: "#AIInAfrica", Followers: 18_000, Topics: []string{"africa", "african"}},
			{Tag: "#EnterpriseLLM", Followers: 38_000, Topics: []string{"enterprise", "llm", "business"}},
			{Tag: "#AIProductivity", Followers: 62_000, Topics: []string{"productivity", "workflow", "efficiency"}},
		},
		RotationSets: map[string][]string{
			"A": {"#AI", "#AIStrategy", "#EnterpriseAI", "#AIImplementation"},
			"B": {"#ArtificialIntelligence", "#LLM", "#AITools", "#EnterpriseLLM"},
			"C": {"#AI", "#GenerativeAI", "#AIStrategy", "#AIProductivity"},
			"D": {"#Technology", "#AIAgents", "#EnterpriseAI", "#AfricanAI"},
			"E": {"#FutureOfWork", "#PromptEngineering", "#GenerativeAI", "#AIInAfrica"},
		},
	},

	"wellwithtunde": {
		Broad: []TagInfo{
			{Tag: "#Health", Followers: 78_000_000},
			{Tag: "#Wellness", Followers: 62_000_000},
			{Tag: "#Mindfulness", Followers: 35_000_000},
			{Tag: "#Fitness", Followers: 55_000_000},
			{Tag: "#Nutrition", Followers: 28_000_000},
		},
		Niche: []TagInfo{
			{Tag: "#HolisticHealth", Followers: 780_000, Topics: []string{"holistic", "whole", "integrated"}},
			{Tag: "#SustainableWellness", Followers: 220_000, Topics: []string{"sustainable", "long-term", "lifestyle"}},
			{Tag: "#MentalHealth", Followers: 12_000_000, Topics: []string{"mental", "stress", "anxiety", "burnout"}},
			{Tag: "#BodyAwareness", Followers: 180_000, Topics: []string{"body", "awareness", "connection", "feeling"}},
			{Tag: "#HabitFormation", Followers: 320_000, Topics: []string{"habit", "routine", "daily", "practice"}},
			{Tag: "#ChronicWellness", Followers: 150_000, Topics: []string{"chronic", "disease", "prevention", "management"}},
		},
		Micro: []TagInfo{
			{Tag: "#BlackWellness", Followers: 68_000, Topics: []string{"black", "african american"}},
			{Tag: "#AfricanWellness", Followers: 35_000, Topics: []string{"african", "africa"}},
			{Tag: "#SustainableHealth", Followers: 45_000, Topics: []string{"sustainable", "lifestyle", "long term"}},
			{Tag: "#ChronicDiseasePrevention", Followers: 28_000, Topics: []string{"chronic", "disease", "prevention"}},
			{Tag: "#BodyConnection", Followers: 22_000, Topics: []string{"body", "connection", "somatic"}},
		},
		RotationSets: map[string][]string{
			"A": {"#Wellness", "#HolisticHealth", "#HabitFormation", "#BlackWellness"},
			"B": {"#Health", "#MentalHealth", "#SustainableWellness", "#AfricanWellness"},
			"C": {"#Mindfulness", "#BodyAwareness", "#HolisticHealth", "#BodyConnection"},
			"D": {"#Fitness", "#HabitFormation", "#SustainableWellness", "#SustainableHealth"},
			"E": {"#Nutrition", "#ChronicWellness", "#HolisticHealth", "#ChronicDiseasePrevention"},
		},
	},

	"tundestalksmen": {
		Broad: []TagInfo{
			{Tag: "#Men", Followers: 18_000_000},
			{Tag: "#Fatherhood", Followers: 22_000_000},
			{Tag: "#Relationships", Followers: 45_000_000},
			{Tag: "#MentalHealth", Followers: 12_000_000},
			{Tag: "#PersonalDevelopment", Followers: 35_000_000},
		},
		Niche: []TagInfo{
			{Tag: "#MensGrowth", Followers: 180_000, Topics: []string{"growth", "development", "change"}},
			{Tag: "#MensMentalHealth", Followers: 420_000, Topics: []string{"mental", "health", "therapy", "emotions"}},
			{Tag: "#MasculinityRedefined", Followers: 220_000, Topics: []string{"masculinity", "manhood", "redefine"}},
			{Tag: "#Accountability", Followers: 380_000, Topics: []string{"accountability", "accountable", "responsibility"}},
			{Tag: "#Brotherhood", Followers: 250_000, Topics: []string{"brotherhood", "community", "brothers", "men together"}},
			{Tag: "#DadLife", Followers: 620_000, Topics: []string{"dad", "father", "parenting", "kids"}},
		},
		Micro: []TagInfo{
			{Tag: "#AfricanMen", Followers: 38_000, Topics: []string{"african", "africa"}},
			{Tag: "#NigerianMen", Followers: 28_000, Topics: []string{"nigerian", "nigeria"}},
			{Tag: "#BlackMen", Followers: 85_000, Topics: []string{"black", "black men", "african american"}},
			{Tag: "#MenOfFaith", Followers: 52_000, Topics: []string{"faith", "christian", "church", "god"}},
			{Tag: "#MenInTherapy", Followers: 42_000, Topics: []string{"therapy", "therapist", "mental health", "healing"}},
		},
		RotationSets: map[string][]string{
			"A": {"#Men", "#MensGrowth", "#Accountability", "#AfricanMen"},
			"B": {"#PersonalDevelopment", "#MensMentalHealth", "#Brotherhood", "#BlackMen"},
			"C": {"#Fatherhood", "#DadLife", "#MasculinityRedefined", "#NigerianMen"},
			"D": {"#Relationships", "#Accountability", "#MensGrowth", "#MenInTherapy"},
			"E": {"#MentalHealth", "#MensMentalHealth", "#Brotherhood", "#MenOfFaith"},
		},
	},
}

// EmergencyAdjacentTags cover topics outside a niche's normal cluster
var EmergencyAdjacentTags = map[string][]string{
	"ttbp":           {"#Entrepreneurship", "#StartUp", "#SideHustle", "#WorkLifeBalance", "#Productivity"},
	"cb":             {"#Poetry", "#Storytelling", "#Memoir", "#Creative Writing", "#BlackAuthors"},
	"tundexai":       {"#DataScience", "#MachineLearning", "#CloudComputing", "#DigitalTransformation", "#TechLeadership"},
	"wellwithtunde":  {"#Yoga", "#Meditation", "#SleepHealth", "#GutHealth", "#WomensHealth"},
	"tundestalksmen": {"#Marriage", "#Divorce", "#SingleDad", "#Manhood", "#MensRights"},
}
