package hook

import (
	"math"
	"regexp"
	"strings"
)

// Score component regexes, compiled once
var (
	numbersRe     = regexp.MustCompile(`\b\d+[\.\d]*%|\b\d+\s*(years?|months?|quarters?|weeks?)\b|\b\d{2,}\b`)
	properNounRe  = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+|\bGPT-\d|\bLinkedIn\b|\bHBS\b|\bNigerian\b`)
	vagueRe       = regexp.MustCompile(`\b(many|some|often|sometimes|various|a lot of|things like)\b`)
	contrastRe    = regexp.MustCompile(`\b(but|not|never|wrong|fail|missed|nobody|no one|instead|actually)\b`)
	curiosityRe   = regexp.MustCompile(`\b(this|that|here's|it)\b.*\b(why|how|what)\b`)
	directAddrRe  = regexp.MustCompile(`\b(you|your|you've|you're)\b`)
	numberListRe  = regexp.MustCompile(`\b\d+\s*(%|reasons?\b|ways?\b|things?\b|patterns?\b)`)
	percentOnlyRe = regexp.MustCompile(`\b\d+[\.\d]*%`)
	contrarianRe  = regexp.MustCompile(`\b(everyone|conventional|common|popular)\b`)
)

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

// Score rates a hook 0.0-10.0: specificity (3), voice alignment (2.5),
// tension (2.5), platform fit (2).
func Score(text, hookType, nicheKey, platform string) float64 {
	cfg := NicheConfigs[nicheKey]
	textLower := strings.ToLower(text)
	var score float64

	spec := 1.5
	if numbersRe.MatchString(text) {
		spec += 0.8
	}
	if properNounRe.MatchString(text) {
		spec += 0.5
	}
	if vagueRe.MatchString(textLower) {
		spec -= 0.5
	}
	score += clamp(spec, 0, 3.0)

	voice := 1.8
	for _, opener := range cfg.BannedOpeners {
		if strings.HasPrefix(textLower, strings.ToLower(opener)) {
			voice -= 1.5
			break
		}
	}
	for _, pat := range cfg.AvoidPatterns {
		if pat.MatchString(textLower) {
			voice -= 0.7
			break
		}
	}
	for _, starter := range cfg.GreenFlagStarters {
		if strings.HasPrefix(textLower, strings.ToLower(starter)) {
			voice += 0.8
			break
		}
	}
	score += clamp(voice, 0, 2.5)

	tension := 1.2
	if contrastRe.MatchString(textLower) {
		tension += 0.6
	}
	if curiosityRe.MatchString(textLower) {
		tension += 0.4
	}
	if directAddrRe.MatchString(textLower) {
		tension += 0.3
	}
	score += clamp(tension, 0, 2.5)

	platformScore := 1.0
	if ps, ok := PlatformSpecs[platform]; ok {
		switch l := len(text); {
		case l <= ps.MaxChars:
			platformScore += 0.8
		case float64(l) <= float64(ps.MaxChars)*1.2:
			platformScore += 0.3
		default:
			platformScore -= 0.5
		}
	}
	for _, p := range typePlatformAffinity[hookType] {
		if p == platform {
			platformScore += 0.2
			break
		}
	}
	score += clamp(platformScore, 0, 2.0)

	return math.Round(clamp(score, 0, 10)*10) / 10
}

// Score thresholds for the verdict labels
const (
	LabelRecommended = "RECOMMENDED"
	LabelRevise      = "USE WITH REVISION"
	LabelDiscard     = "DISCARD"
)

// ScoreLabel maps a score to its verdict
func ScoreLabel(score float64) string {
	switch {
	case score >= 7.0:
		return LabelRecommended
	case score >= 5.0:
		return LabelRevise
	default:
		return LabelDiscard
	}
}
