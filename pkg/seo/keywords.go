package seo

import (
	"regexp"
	"strings"
)

var (
	wordRe      = regexp.MustCompile(`\b\w+\b`)
	alphaWordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

func countWords(s string) int {
	return len(wordRe.FindAllString(s, -1))
}

// splitSentences splits on whitespace following sentence punctuation.
// A crude split, but consistent with how the scores were calibrated.
func splitSentences(s string) []string {
	var out []string
	var cur strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			if i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' || runes[i+1] == '\r') {
				out = append(out, cur.String())
				cur.Reset()
				for i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' || runes[i+1] == '\r') {
					i++
				}
			}
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// extractPrimaryKeyword picks the primary keyword: a topic-cluster term
// seen in the title or opening, else the most frequent non-stopword
// bigram of the opening, else the top single word, else the cluster head.
func extractPrimaryKeyword(content, nicheKey, title string) string {
	cfg := Configs[nicheKey]

	opening := content
	if len(opening) > 200 {
		opening = opening[:200]
	}
	searchText := strings.ToLower(title + " " + opening)
	for _, term := range cfg.TopicCluster {
		if strings.Contains(searchText, strings.ToLower(term)) {
			return term
		}
	}

	stop := map[string]bool{}
	for _, w := range cfg.StopWords {
		stop[w] = true
	}

	head := content
	if len(head) > 1500 {
		head = head[:1500]
	}
	var filtered []string
	for _, w := range alphaWordRe.FindAllString(strings.ToLower(head), -1) {
		if !stop[w] {
			filtered = append(filtered, w)
		}
	}

	// First-seen max wins on frequency ties
	bigramOrder := []string{}
	bigramFreq := map[string]int{}
	for i := 0; i+1 < len(filtered); i++ {
		bg := filtered[i] + " " + filtered[i+1]
		if _, ok := bigramFreq[bg]; !ok {
			bigramOrder = append(bigramOrder, bg)
		}
		bigramFreq[bg]++
	}
	if best := argmaxCount(bigramOrder, bigramFreq); best != "" {
		return best
	}

	wordOrder := []string{}
	wordFreq := map[string]int{}
	for _, w := range filtered {
		if _, ok := wordFreq[w]; !ok {
			wordOrder = append(wordOrder, w)
		}
		wordFreq[w]++
	}
	if best := argmaxCount(wordOrder, wordFreq); best != "" {
		return best
	}

	return cfg.TopicCluster[0]
}

func argmaxCount(order []string, freq map[string]int) string {
	best := ""
	bestCount := 0
	for _, k := range order {
		if freq[k] > bestCount {
			best = k
			bestCount = freq[k]
		}
	}
	return best
}

// extractSecondaryKeywords returns cluster terms present in content,
// excluding the primary.
func extractSecondaryKeywords(content, nicheKey, primary string) []string {
	cfg := Configs[nicheKey]
	contentLower := strings.ToLower(content)
	var found []string
	for _, term := range cfg.TopicCluster {
		if strings.EqualFold(term, primary) {
			continue
		}
		if strings.Contains(contentLower, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}

// findMissingSecondary suggests up to five absent cluster terms
func findMissingSecondary(cfg NicheConfig, primary string, found []string) []string {
	foundLower := map[string]bool{}
	for _, t := range found {
		foundLower[strings.ToLower(t)] = true
	}
	var missing []string
	for _, term := range cfg.TopicCluster {
		if len(missing) >= 5 {
			break
		}
		if strings.EqualFold(term, primary) {
			continue
		}
		if !foundLower[strings.ToLower(term)] {
			missing = append(missing, term)
		}
	}
	return missing
}

// findSemanticVariants lists variant phrasings of the primary keyword
// that appear in content.
func findSemanticVariants(content, nicheKey, primary string) []string {
	cfg := Configs[nicheKey]
	contentLower := strings.ToLower(content)
	primaryLower := strings.ToLower(primary)
	var found []string
	for _, vg := range cfg.SemanticVariants {
		baseLower := strings.ToLower(vg.Base)
		if !strings.Contains(primaryLower, baseLower) && !strings.Contains(baseLower, primaryLower) {
			continue
		}
		for _, v := range vg.Variants {
			if strings.Contains(contentLower, strings.ToLower(v)) {
				found = append(found, v)
			}
		}
	}
	return found
}

// keywordDensity is the ratio of keyword occurrences to total words,
// matching multi-word keywords as word sequences.
func keywordDensity(content, keyword string) float64 {
	words := wordRe.FindAllString(strings.ToLower(content), -1)
	if len(words) == 0 {
		return 0
	}
	kwWords := strings.Fields(strings.ToLower(keyword))
	if len(kwWords) == 0 {
		return 0
	}
	count := 0
	for i := 0; i+len(kwWords) <= len(words); i++ {
		match := true
		for j, kw := range kwWords {
			if words[i+j] != kw {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return float64(count) / float64(len(words))
}
