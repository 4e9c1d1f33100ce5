package seo

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	headingLineRe = regexp.MustCompile(`(?m)^#{1,6}\s+.+`)
	boldRe        = regexp.MustCompile(`\*{1,2}(.+?)\*{1,2}`)
	mdLinkRe      = regexp.MustCompile(`\[(.+?)\]\(.+?\)`)
	blankRunRe    = regexp.MustCompile(`\n{2,}`)
)

// MetaTags holds the generated meta title and description with their checks
type MetaTags struct {
	Title                       string `json:"title"`
	TitleCharCount              int    `json:"title_char_count"`
	TitleOK                     bool   `json:"title_ok"`
	Description                 string `json:"description"`
	DescriptionCharCount        int    `json:"description_char_count"`
	DescriptionOK               bool   `json:"description_ok"`
	PrimaryKeywordInTitle       bool   `json:"primary_keyword_in_title"`
	PrimaryKeywordInDescription bool   `json:"primary_keyword_in_description"`
	Score                       int    `json:"score"`
}

// titleCase uppercases the first letter of each alpha run, lowercasing the rest
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// generateMetaTitle builds a meta title. An H1 containing the primary
// keyword wins; otherwise niche-tone templates, then a generic fallback.
func generateMetaTitle(nicheKey, primaryKeyword, content string, h1Texts []string) string {
	cfg := Configs[nicheKey]

	if len(h1Texts) > 0 {
		candidate := strings.TrimSpace(h1Texts[0])
		if strings.Contains(strings.ToLower(candidate), strings.ToLower(primaryKeyword)) {
			if len(candidate) <= MetaTitleMax {
				return candidate
			}
			// Truncate at a word boundary
			trimmed := ""
			for _, w := range strings.Fields(candidate) {
				if len(trimmed)+len(w)+1 <= MetaTitleMax-3 {
					if trimmed == "" {
						trimmed = w
					} else {
						trimmed += " " + w
					}
				} else {
					break
				}
			}
			return trimmed + "..."
		}
	}

	kwCap := titleCase(primaryKeyword)
	var templates []string
	switch cfg.MetaTone {
	case "direct_personal":
		templates = []string{
			"The Real Truth About " + kwCap,
			kwCap + ": What Nobody Tells You",
			"Why Most People Get " + kwCap + " Wrong",
		}
	case "cultural_literary":
		templates = []string{
			kwCap + ": A New Way to Read It",
			"Understanding " + kwCap + " Beyond the Syllabus",
			kwCap + " and What It Means Now",
		}
	case "warm_approachable":
		templates = []string{
			"A Gentler Approach to " + kwCap,
			kwCap + ": Start Here, Not There",
			"How to Actually Sustain " + kwCap,
		}
	case "direct_accountable":
		templates = []string{
			kwCap + ": The Conversation Men Avoid",
			"What " + kwCap + " Actually Requires",
			"The " + kwCap + " Problem Nobody Names",
		}
	default: // analytical_direct
		templates = []string{
			kwCap + ": The Honest Breakdown",
			"What the Data Says About " + kwCap,
			kwCap + " Explained for Practitioners",
		}
	}

	for _, candidate := range templates {
		if len(candidate) >= MetaTitleMin && len(candidate) <= MetaTitleMax {
			return candidate
		}
	}

	fallback := kwCap + " — The Complete Guide"
	if len(fallback) > MetaTitleMax {
		fallback = fallback[:MetaTitleMax]
	}
	return fallback
}

// generateMetaDescription pulls from the first substantive paragraph that
// contains the primary keyword, trimmed to 155 chars at sentence boundaries.
func generateMetaDescription(nicheKey, primaryKeyword, content string) string {
	clean := headingLineRe.ReplaceAllString(content, "")
	clean = boldRe.ReplaceAllString(clean, "$1")
	clean = mdLinkRe.ReplaceAllString(clean, "$1")
	clean = strings.TrimSpace(blankRunRe.ReplaceAllString(clean, "\n"))

	var paragraphs []string
	for _, p := range strings.Split(clean, "\n") {
		if p = strings.TrimSpace(p); len(p) > 60 {
			paragraphs = append(paragraphs, p)
		}
	}

	kwLower := strings.ToLower(primaryKeyword)
	target := ""
	for _, p := range paragraphs {
		if strings.Contains(strings.ToLower(p), kwLower) {
			target = p
			break
		}
	}
	if target == "" && len(paragraphs) > 0 {
		target = paragraphs[0]
	}
	if target == "" {
		cfg := Configs[nicheKey]
		return fmt.Sprintf("Insights on %s from %s. Practical, evidence-backed, and designed to change how you think.", primaryKeyword, cfg.Name)
	}

	desc := ""
	for _, sentence := range splitSentences(target) {
		if len(desc)+len(sentence)+1 <= 155 {
			if desc == "" {
				desc = sentence
			} else {
				desc += " " + sentence
			}
		} else {
			break
		}
	}
	if desc == "" {
		if len(target) > 152 {
			target = target[:152]
		}
		desc = target + "..."
	}

	if desc != "" && !strings.ContainsRune(".!?", rune(desc[len(desc)-1])) {
		desc = strings.TrimRight(desc, ",;:- ") + "."
	}
	return desc
}

func buildMetaTags(nicheKey, primaryKeyword, content string, h1Texts []string) MetaTags {
	title := generateMetaTitle(nicheKey, primaryKeyword, content, h1Texts)
	description := generateMetaDescription(nicheKey, primaryKeyword, content)

	titleOK := len(title) >= MetaTitleMin && len(title) <= MetaTitleMax
	descOK := len(description) >= MetaDescMin && len(description) <= MetaDescMax
	kwLower := strings.ToLower(primaryKeyword)
	kwInTitle := strings.Contains(strings.ToLower(title), kwLower)
	kwInDesc := strings.Contains(strings.ToLower(description), kwLower)

	score := 100
	if !titleOK {
		score -= 20
	}
	if !descOK {
		score -= 20
	}
	if !kwInTitle {
		score -= 30
	}
	if !kwInDesc {
		score -= 15
	}
	if score < 0 {
		score = 0
	}

	return MetaTags{
		Title:                       title,
		TitleCharCount:              len(title),
		TitleOK:                     titleOK,
		Description:                 description,
		DescriptionCharCount:        len(description),
		DescriptionOK:               descOK,
		PrimaryKeywordInTitle:       kwInTitle,
		PrimaryKeywordInDescription: kwInDesc,
		Score:                       score,
	}
}
