package seo

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	h1Re     = regexp.MustCompile(`(?m)^#\s+(.+)`)
	h2Re     = regexp.MustCompile(`(?m)^##\s+(.+)`)
	h3Re     = regexp.MustCompile(`(?m)^###\s+(.+)`)
	h1HTMLRe = regexp.MustCompile(`(?i)<h1[^>]*>(.+?)</h1>`)
	h2HTMLRe = regexp.MustCompile(`(?i)<h2[^>]*>(.+?)</h2>`)
	h3HTMLRe = regexp.MustCompile(`(?i)<h3[^>]*>(.+?)</h3>`)
)

// HeadingAnalysis describes the document's heading hierarchy
type HeadingAnalysis struct {
	H1Count                 int      `json:"h1_count"`
	H2Count                 int      `json:"h2_count"`
	H3Count                 int      `json:"h3_count"`
	H1Texts                 []string `json:"h1_texts"`
	H2Texts                 []string `json:"h2_texts"`
	H3Texts                 []string `json:"h3_texts"`
	HierarchyIssues         []string `json:"hierarchy_issues"`
	PrimaryKeywordInHeading bool     `json:"primary_keyword_in_heading"`
	Score                   int      `json:"score"`
}

func findHeadings(content string, mdRe, htmlRe *regexp.Regexp) []string {
	var texts []string
	for _, m := range mdRe.FindAllStringSubmatch(content, -1) {
		texts = append(texts, m[1])
	}
	for _, m := range htmlRe.FindAllStringSubmatch(content, -1) {
		texts = append(texts, m[1])
	}
	return texts
}

// analyzeHeadings parses markdown and HTML headings and scores the hierarchy
func analyzeHeadings(content, primaryKeyword string) HeadingAnalysis {
	h1 := findHeadings(content, h1Re, h1HTMLRe)
	h2 := findHeadings(content, h2Re, h2HTMLRe)
	h3 := findHeadings(content, h3Re, h3HTMLRe)

	var issues []string
	score := 100

	switch {
	case len(h1) == 0:
		issues = append(issues, "No H1 found — add one as the article title")
		score -= 25
	case len(h1) > 1:
		issues = append(issues, fmt.Sprintf("Multiple H1s (%d) — keep only one", len(h1)))
		score -= 15
	}

	if len(h2) == 0 {
		issues = append(issues, "No H2 headings — add section headings for structure")
		score -= 20
	}

	if countWords(content) > 900 && len(h3) == 0 {
		issues = append(issues, "Long content without H3s — consider adding subsection headings")
		score -= 10
	}

	// The heading check passes when every word of the keyword appears
	// somewhere in the joined heading text
	allHeadings := strings.ToLower(strings.Join(append(append(append([]string{}, h1...), h2...), h3...), " "))
	kwInHeadings := true
	for _, w := range strings.Fields(strings.ToLower(primaryKeyword)) {
		if !strings.Contains(allHeadings, w) {
			kwInHeadings = false
			break
		}
	}
	if !kwInHeadings {
		issues = append(issues, fmt.Sprintf("Primary keyword %q not found in any heading", primaryKeyword))
		score -= 15
	}

	if score < 0 {
		score = 0
	}

	return HeadingAnalysis{
		H1Count:                 len(h1),
		H2Count:                 len(h2),
		H3Count:                 len(h3),
		H1Texts:                 h1,
		H2Texts:                 h2,
		H3Texts:                 h3,
		HierarchyIssues:         issues,
		PrimaryKeywordInHeading: kwInHeadings,
		Score:                   score,
	}
}
