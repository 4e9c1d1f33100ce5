package seo

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	subheadRe     = regexp.MustCompile(`(?m)^#{1,3}\s`)
	subheadHTMLRe = regexp.MustCompile(`(?i)<h[123]`)
	paraBreakRe   = regexp.MustCompile(`\n{2,}`)
)

// ReadabilityReport covers sentence length, paragraph size, and
// subheading spacing
type ReadabilityReport struct {
	WordCount             int      `json:"word_count"`
	SentenceCount         int      `json:"sentence_count"`
	AvgSentenceWords      float64  `json:"avg_sentence_words"`
	ParagraphCount        int      `json:"paragraph_count"`
	AvgParagraphSentences float64  `json:"avg_paragraph_sentences"`
	SubheadingDensity     float64  `json:"subheading_density"`
	LongSentenceCount     int      `json:"long_sentence_count"`
	Score                 int      `json:"score"`
	Issues                []string `json:"issues"`
}

func analyzeReadability(content string) ReadabilityReport {
	clean := headingLineRe.ReplaceAllString(content, "")
	clean = boldRe.ReplaceAllString(clean, "$1")
	clean = mdLinkRe.ReplaceAllString(clean, "$1")

	wordCount := countWords(clean)

	var sentences []string
	for _, s := range splitSentences(strings.TrimSpace(clean)) {
		if len(strings.TrimSpace(s)) > 10 {
			sentences = append(sentences, s)
		}
	}
	sentenceCount := len(sentences)
	if sentenceCount < 1 {
		sentenceCount = 1
	}
	avgSentenceWords := float64(wordCount) / float64(sentenceCount)

	longSentences := 0
	for _, s := range sentences {
		if countWords(s) > 30 {
			longSentences++
		}
	}

	var paragraphs []string
	for _, p := range paraBreakRe.Split(clean, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(p))
		}
	}
	paragraphCount := len(paragraphs)
	if paragraphCount < 1 {
		paragraphCount = 1
	}
	avgParaSentences := 0.0
	if len(paragraphs) > 0 {
		total := 0
		for _, p := range paragraphs {
			total += len(splitSentences(p))
		}
		avgParaSentences = float64(total) / float64(len(paragraphs))
	}

	headingCount := len(subheadRe.FindAllString(content, -1)) +
		len(subheadHTMLRe.FindAllString(content, -1))
	if headingCount < 1 {
		headingCount = 1
	}
	subheadingDensity := float64(wordCount) / float64(headingCount)

	var issues []string
	score := 100

	if avgSentenceWords > MaxAvgSentenceWords {
		issues = append(issues, fmt.Sprintf("Avg sentence length %.0f words (target: under %d)", avgSentenceWords, MaxAvgSentenceWords))
		score -= 15
	}
	if longSentences > 3 {
		issues = append(issues, fmt.Sprintf("%d sentences over 30 words — simplify these", longSentences))
		score -= 10
	}
	if subheadingDensity > SubheadingIntervalMax {
		issues = append(issues, fmt.Sprintf("Subheadings spaced %.0f words apart (target: under %d)", subheadingDensity, SubheadingIntervalMax))
		score -= 15
	}
	if avgParaSentences > 4 {
		issues = append(issues, fmt.Sprintf("Avg paragraph is %.1f sentences — break up long blocks", avgParaSentences))
		score -= 10
	}
	if score < 0 {
		score = 0
	}

	return ReadabilityReport{
		WordCount:             wordCount,
		SentenceCount:         sentenceCount,
		AvgSentenceWords:      math.Round(avgSentenceWords*10) / 10,
		ParagraphCount:        paragraphCount,
		AvgParagraphSentences: math.Round(avgParaSentences*10) / 10,
		SubheadingDensity:     math.Round(subheadingDensity),
		LongSentenceCount:     longSentences,
		Score:                 score,
		Issues:                issues,
	}
}
