package analytics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/logger"
	"github.com/tgbotosho/content-engine/pkg/niche"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source tokens accepted by LoadPostsFromFile
const (
	SourceAuto          = "auto"
	SourceContentStudio = "contentstudio"
	SourceLinkedIn      = "linkedin"
	SourceInstagram     = "instagram"
	SourceTwitter       = "twitter"
)

// aliasTable maps a canonical field to the export's header candidates in
// priority order. Making the aliases explicit keeps header typos from
// silently turning into zeros.
type aliasTable map[string][]string

var linkedInAliases = aliasTable{
	"id":          {"Post ID", "id"},
	"content":     {"Post Content", "content"},
	"date":        {"Date", "Published Date"},
	"impressions": {"Impressions"},
	"reach":       {"Unique Views", "Reach"},
	"likes":       {"Likes", "Reactions"},
	"comments":    {"Comments"},
	"shares":      {"Shares", "Reposts"},
	"clicks":      {"Clicks", "Link Clicks"},
}

var instagramAliases = aliasTable{
	"id":          {"Post ID", "Media ID"},
	"content":     {"Description", "Caption", "Text"},
	"date":        {"Date Published", "Publish Time"},
	"impressions": {"Impressions"},
	"reach":       {"Reach", "Accounts Reached"},
	"likes":       {"Likes"},
	"comments":    {"Comments"},
	"shares":      {"Shares"},
	"saves":       {"Saves", "Bookmarks"},
	"clicks":      {"Profile Visits", "Link Clicks"},
}

var twitterAliases = aliasTable{
	"id":          {"Tweet id", "id"},
	"content":     {"Tweet text", "text"},
	"date":        {"time", "created_at"},
	"impressions": {"impressions"},
	"likes":       {"likes", "favorites"},
	"comments":    {"replies"},
	"shares":      {"retweets"},
	"saves":       {"bookmarks"},
	"clicks":      {"url clicks", "link_clicks"},
}

var contentStudioAliases = aliasTable{
	"id":          {"id", "post_id"},
	"content":     {"message", "content", "caption"},
	"platform":    {"platform", "social_account_type"},
	"date":        {"published_at", "created_at"},
	"impressions": {"impressions", "reach"},
	"reach":       {"reach"},
	"likes":       {"likes", "reactions"},
	"comments":    {"comments"},
	"shares":      {"shares", "reposts"},
	"saves":       {"saves", "bookmarks"},
	"clicks":      {"link_clicks", "clicks"},
}

// safeInt coerces a display value ("1,204", " 87 ") to an int, 0 on failure
func safeInt(s string) int {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

// safeFloat coerces a display value ("4.2%", "1,050.5") to a float, 0 on failure
func safeFloat(s string) float64 {
	cleaned := strings.ReplaceAll(s, "%", "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, ",", ""))
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// coerceInt handles raw JSON values: numbers, numeric strings, or junk
func coerceInt(v interface{}) int {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return int(t)
	case int:
		return t
	case string:
		return safeInt(t)
	default:
		return safeInt(fmt.Sprintf("%v", t))
	}
}

// coerceFloat handles raw JSON values for rate-like fields
func coerceFloat(v interface{}) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		return safeFloat(t)
	default:
		return safeFloat(fmt.Sprintf("%v", t))
	}
}

// extractHook returns the first non-blank line, truncated to 120 chars
func extractHook(content string) string {
	for _, ln := range strings.Split(content, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			return truncate(ln, 120)
		}
	}
	return truncate(content, 120)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// csvRow is one record keyed by header name
type csvRow map[string]string

func (r csvRow) resolve(aliases aliasTable, field string) string {
	for _, key := range aliases[field] {
		if v, ok := r[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

func (r csvRow) resolveInt(aliases aliasTable, field string) int {
	return safeInt(r.resolve(aliases, field))
}

// jsonItem is one raw ContentStudio export object
type jsonItem map[string]interface{}

func (it jsonItem) resolve(aliases aliasTable, field string) interface{} {
	for _, key := range aliases[field] {
		if v, ok := it[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func (it jsonItem) resolveStr(aliases aliasTable, field string) string {
	v := it.resolve(aliases, field)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	// ContentStudio emits numeric IDs; render them without an exponent
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprintf("%v", v)
}

func (it jsonItem) resolveInt(aliases aliasTable, field string) int {
	return coerceInt(it.resolve(aliases, field))
}

// finalize fills detection-derived fields, rates, and the benchmark score
func finalize(p PostMetrics, content string) PostMetrics {
	p.ContentPreview = truncate(content, 120)
	p.FormatType = niche.DetectFormat(content)
	p.HookWords = extractHook(content)
	computeRates(&p)
	scorePost(&p)
	return p
}

// ParseContentStudio parses a ContentStudio bulk export: either a bare
// array of post objects or an envelope with a "data" or "posts" array.
func ParseContentStudio(raw interface{}) []PostMetrics {
	var items []interface{}
	switch t := raw.(type) {
	case []interface{}:
		items = t
	case map[string]interface{}:
		if d, ok := t["data"].([]interface{}); ok {
			items = d
		} else if d, ok := t["posts"].([]interface{}); ok {
			items = d
		}
	}

	posts := make([]PostMetrics, 0, len(items))
	for _, rawItem := range items {
		item, ok := rawItem.(jsonItem)
		if !ok {
			m, ok2 := rawItem.(map[string]interface{})
			if !ok2 {
				continue
			}
			item = jsonItem(m)
		}

		content := item.resolveStr(contentStudioAliases, "content")
		nicheKey, _ := item["niche"].(string)
		if nicheKey == "" {
			nicheKey = niche.Detect(content)
		}
		platform := item.resolveStr(contentStudioAliases, "platform")
		if platform == "" {
			platform = niche.DefaultPlatform
		}

		var hashtags []string
		if rawTags, ok := item["hashtags"].([]interface{}); ok {
			for _, t := range rawTags {
				if s, ok := t.(string); ok {
					hashtags = append(hashtags, s)
				}
			}
		}

		p := PostMetrics{
			PostID:      item.resolveStr(contentStudioAliases, "id"),
			Niche:       nicheKey,
			Platform:    strings.ToLower(platform),
			PublishedAt: item.resolveStr(contentStudioAliases, "date"),
			Impressions: item.resolveInt(contentStudioAliases, "impressions"),
			Reach:       item.resolveInt(contentStudioAliases, "reach"),
			Likes:       item.resolveInt(contentStudioAliases, "likes"),
			Comments:    item.resolveInt(contentStudioAliases, "comments"),
			Shares:      item.resolveInt(contentStudioAliases, "shares"),
			Saves:       item.resolveInt(contentStudioAliases, "saves"),
			Clicks:      item.resolveInt(contentStudioAliases, "clicks"),
			Hashtags:    hashtags,
		}
		posts = append(posts, finalize(p, content))
	}
	return posts
}

// ParseLinkedInCSV parses a LinkedIn native analytics export.
// LinkedIn's CSV carries no saves column.
func ParseLinkedInCSV(rows []csvRow) []PostMetrics {
	posts := make([]PostMetrics, 0, len(rows))
	for _, row := range rows {
		content := row.resolve(linkedInAliases, "content")
		p := PostMetrics{
			PostID:      row.resolve(linkedInAliases, "id"),
			Niche:       niche.Detect(content),
			Platform:    niche.PlatformLinkedIn,
			PublishedAt: row.resolve(linkedInAliases, "date"),
			Impressions: row.resolveInt(linkedInAliases, "impressions"),
			Reach:       row.resolveInt(linkedInAliases, "reach"),
			Likes:       row.resolveInt(linkedInAliases, "likes"),
			Comments:    row.resolveInt(linkedInAliases, "comments"),
			Shares:      row.resolveInt(linkedInAliases, "shares"),
			Clicks:      row.resolveInt(linkedInAliases, "clicks"),
		}
		posts = append(posts, finalize(p, content))
	}
	return posts
}

// ParseInstagramCSV parses a Meta Business Suite export
func ParseInstagramCSV(rows []csvRow) []PostMetrics {
	posts := make([]PostMetrics, 0, len(rows))
	for _, row := range rows {
		content := row.resolve(instagramAliases, "content")
		p := PostMetrics{
			PostID:      row.resolve(instagramAliases, "id"),
			Niche:       niche.Detect(content),
			Platform:    niche.PlatformInstagram,
			PublishedAt: row.resolve(instagramAliases, "date"),
			Impressions: row.resolveInt(instagramAliases, "impressions"),
			Reach:       row.resolveInt(instagramAliases, "reach"),
			Likes:       row.resolveInt(instagramAliases, "likes"),
			Comments:    row.resolveInt(instagramAliases, "comments"),
			Shares:      row.resolveInt(instagramAliases, "shares"),
			Saves:       row.resolveInt(instagramAliases, "saves"),
			Clicks:      row.resolveInt(instagramAliases, "clicks"),
		}
		posts = append(posts, finalize(p, content))
	}
	return posts
}

// ParseTwitterCSV parses a Twitter/X analytics export. Twitter reports no
// separate reach figure, so impressions stand in for it.
func ParseTwitterCSV(rows []csvRow) []PostMetrics {
	posts := make([]PostMetrics, 0, len(rows))
	for _, row := range rows {
		content := row.resolve(twitterAliases, "content")
		p := PostMetrics{
			PostID:      row.resolve(twitterAliases, "id"),
			Niche:       niche.Detect(content),
			Platform:    niche.PlatformTwitter,
			PublishedAt: row.resolve(twitterAliases, "date"),
			Impressions: row.resolveInt(twitterAliases, "impressions"),
			Reach:       row.resolveInt(twitterAliases, "impressions"),
			Likes:       row.resolveInt(twitterAliases, "likes"),
			Comments:    row.resolveInt(twitterAliases, "comments"),
			Shares:      row.resolveInt(twitterAliases, "shares"),
			Saves:       row.resolveInt(twitterAliases, "saves"),
			Clicks:      row.resolveInt(twitterAliases, "clicks"),
		}
		posts = append(posts, finalize(p, content))
	}
	return posts
}

// loadCSV reads a CSV export into header-keyed rows, tolerating a UTF-8 BOM
// and ragged records.
func loadCSV(path string) ([]csvRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	rows := make([]csvRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(csvRow, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sniffCSVSource detects the platform from CSV headers
func sniffCSVSource(rows []csvRow) string {
	if len(rows) == 0 {
		return SourceLinkedIn
	}
	headers := rows[0]
	has := func(key string) bool {
		_, ok := headers[key]
		return ok
	}
	switch {
	case has("Tweet text") || has("Tweet id"):
		return SourceTwitter
	case has("Description") || has("Media ID") || has("Accounts Reached"):
		return SourceInstagram
	default:
		return SourceLinkedIn
	}
}

// LoadPostsFromFile loads and parses one analytics export. source may name
// the platform explicitly or be "auto" to sniff it from the file.
func LoadPostsFromFile(path, source string) ([]PostMetrics, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewFileNotFound(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewCLIError(errors.ErrorTypeParse, fmt.Sprintf("reading %s: %v", path, err), err)
		}
		var raw interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.NewCLIError(errors.ErrorTypeParse, fmt.Sprintf("parsing %s: %v", path, err), err)
		}
		return ParseContentStudio(raw), nil

	case ".csv":
		rows, err := loadCSV(path)
		if err != nil {
			return nil, errors.NewCLIError(errors.ErrorTypeParse, fmt.Sprintf("parsing %s: %v", path, err), err)
		}
		if len(rows) == 0 {
			return nil, nil
		}
		src := strings.ToLower(source)
		if src == "" || src == SourceAuto {
			src = sniffCSVSource(rows)
		}
		switch src {
		case SourceTwitter:
			return ParseTwitterCSV(rows), nil
		case SourceInstagram:
			return ParseInstagramCSV(rows), nil
		default:
			return ParseLinkedInCSV(rows), nil
		}
	}

	return nil, errors.NewInvalidFormat(filepath.Ext(path))
}

// LoadPostsFromDir loads every .json/.csv export in a directory. A file
// that fails to parse is logged and skipped; the rest of the batch
// proceeds.
func LoadPostsFromDir(dir string) ([]PostMetrics, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewFileNotFound(dir)
	}

	var all []PostMetrics
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".csv" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		posts, err := LoadPostsFromFile(path, SourceAuto)
		if err != nil {
			logger.Warn("skipping unparseable export", "file", path, "err", err)
			continue
		}
		all = append(all, posts...)
	}
	return all, nil
}
