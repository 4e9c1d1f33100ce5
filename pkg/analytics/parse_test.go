package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tgbotosho/content-engine/pkg/errors"
)

func TestSafeCoercion(t *testing.T) {
	intTests := []struct {
		in   string
		want int
	}{
		{"1,204", 1204},
		{" 87 ", 87},
		{"", 0},
		{"n/a", 0},
	}
	for _, tt := range intTests {
		if got := safeInt(tt.in); got != tt.want {
			t.Errorf("safeInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	floatTests := []struct {
		in   string
		want float64
	}{
		{"4.2%", 4.2},
		{"1,050.5", 1050.5},
		{"oops", 0},
	}
	for _, tt := range floatTests {
		if got := safeFloat(tt.in); got != tt.want {
			t.Errorf("safeFloat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExtractHook(t *testing.T) {
	content := "\n\n  Stop chasing promotions.  \nHere is why."
	if got := extractHook(content); got != "Stop chasing promotions." {
		t.Errorf("extractHook = %q", got)
	}
}

func TestParseContentStudioEnvelope(t *testing.T) {
	raw := map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{
				"post_id":      "cs-1",
				"message":      "Leadership lessons from my career in management",
				"platform":     "LinkedIn",
				"published_at": "2025-06-02T09:00:00Z",
				"impressions":  float64(2000),
				"reactions":    float64(40), // alias for likes
				"comments":     float64(8),
				"reposts":      float64(4), // alias for shares
				"bookmarks":    float64(3), // alias for saves
				"link_clicks":  float64(12),
				"hashtags":     []interface{}{"#Leadership", "#CareerGrowth"},
			},
		},
	}

	posts := ParseContentStudio(raw)
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	p := posts[0]
	if p.PostID != "cs-1" {
		t.Errorf("post id = %q", p.PostID)
	}
	if p.Platform != "linkedin" {
		t.Errorf("platform should be lowercased, got %q", p.Platform)
	}
	if p.Niche != "ttbp" {
		t.Errorf("detected niche = %q, want ttbp", p.Niche)
	}
	if p.Likes != 40 || p.Shares != 4 || p.Saves != 3 || p.Clicks != 12 {
		t.Errorf("alias resolution failed: likes=%d shares=%d saves=%d clicks=%d", p.Likes, p.Shares, p.Saves, p.Clicks)
	}
	if p.EngagementRate != 2.75 {
		t.Errorf("engagement rate = %v, want 2.75", p.EngagementRate)
	}
	if len(p.Hashtags) != 2 {
		t.Errorf("hashtags = %v", p.Hashtags)
	}
}

func TestParseContentStudioBareArray(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"id": "a", "content": "AI automation with Claude", "impressions": float64(100), "likes": float64(5)},
	}
	posts := ParseContentStudio(raw)
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	if posts[0].Niche != "tundexai" {
		t.Errorf("niche = %q, want tundexai", posts[0].Niche)
	}
	if posts[0].Platform != "linkedin" {
		t.Errorf("missing platform should default to linkedin, got %q", posts[0].Platform)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPostsFromFileCSVSniffing(t *testing.T) {
	dir := t.TempDir()

	linkedin := "Post ID,Post Content,Date,Impressions,Likes,Comments,Shares,Clicks\n" +
		"li-1,Leadership in practice,2025-06-02,1000,30,5,2,10\n"
	twitter := "Tweet id,Tweet text,time,impressions,likes,replies,retweets,bookmarks\n" +
		"tw-1,AI benchmark thread,2025-06-03,5000,120,15,30,8\n"
	instagram := "\uFEFFMedia ID,Description,Date Published,Impressions,Accounts Reached,Likes,Comments,Shares,Saves\n" +
		"ig-1,Wellness habit check,2025-06-04,800,700,60,4,2,12\n"

	tests := []struct {
		name     string
		content  string
		platform string
		saves    int
	}{
		{"linkedin.csv", linkedin, "linkedin", 0},
		{"twitter.csv", twitter, "twitter", 8},
		{"instagram.csv", instagram, "instagram", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name, tt.content)
			posts, err := LoadPostsFromFile(path, SourceAuto)
			if err != nil {
				t.Fatal(err)
			}
			if len(posts) != 1 {
				t.Fatalf("got %d posts", len(posts))
			}
			if posts[0].Platform != tt.platform {
				t.Errorf("sniffed platform = %q, want %q", posts[0].Platform, tt.platform)
			}
			if posts[0].Saves != tt.saves {
				t.Errorf("saves = %d, want %d", posts[0].Saves, tt.saves)
			}
		})
	}
}

func TestLoadPostsFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPostsFromFile(filepath.Join(dir, "missing.json"), SourceAuto)
	if !errors.IsType(err, errors.ErrorTypeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}

	path := writeFile(t, dir, "notes.txt", "hello")
	_, err = LoadPostsFromFile(path, SourceAuto)
	if !errors.IsType(err, errors.ErrorTypeInvalidFormat) {
		t.Errorf("unsupported extension error = %v", err)
	}
}

func TestLoadPostsFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `[{"id":"j1","content":"career growth","impressions":100,"likes":4}]`)
	writeFile(t, dir, "broken.json", `{not json`)
	writeFile(t, dir, "ignored.txt", "skip me")

	posts, err := LoadPostsFromDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].PostID != "j1" {
		t.Errorf("dir load got %d posts, want the one good file", len(posts))
	}

	empty := t.TempDir()
	posts, err = LoadPostsFromDir(empty)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 0 {
		t.Errorf("empty dir should produce no posts, got %d", len(posts))
	}
}
