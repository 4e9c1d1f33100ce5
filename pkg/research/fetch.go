package research

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tgbotosho/content-engine/pkg/config"
	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/logger"
)

var (
	scriptRe   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe      = regexp.MustCompile(`<[^>]+>`)
	entityRe   = regexp.MustCompile(`&[a-z]+;`)
	wsRe       = regexp.MustCompile(`\s+`)
	pdfTextRe  = regexp.MustCompile(`\(([^)]{3,200})\)`)
	httpClient *resty.Client
)

func getClient() *resty.Client {
	if httpClient == nil {
		httpClient = resty.New()
		timeout := time.Duration(config.GetInt("research.timeout")) * time.Second
		httpClient.SetTimeout(timeout)
		httpClient.SetHeader("User-Agent", "Mozilla/5.0")

		httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
			logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
			return nil
		})
		httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
			logger.Debug("HTTP Response", "status", resp.StatusCode)
			return nil
		})
	}
	return httpClient
}

func maxChars() int {
	if n := config.GetInt("research.max_chars"); n > 0 {
		return n
	}
	return 12000
}

func capText(s string) string {
	if limit := maxChars(); len(s) > limit {
		return s[:limit]
	}
	return s
}

// stripHTML reduces an HTML document to whitespace-normalized plain text
func stripHTML(raw string) string {
	text := scriptRe.ReplaceAllString(raw, " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = entityRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(wsRe.ReplaceAllString(text, " "))
}

// FetchURLText fetches a page and strips it to plain text. Fetch failures
// come back as bracketed error text so a multi-source brief can still
// synthesize the sources that did load.
func FetchURLText(url string) string {
	resp, err := getClient().R().Get(url)
	if err != nil {
		return fmt.Sprintf("[URL fetch error: %v]", err)
	}
	return capText(stripHTML(string(resp.Body())))
}

// ReadFileText reads a .txt/.md/.pdf source file. PDF extraction is the
// bare minimum: parenthesized text runs only.
func ReadFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewFileNotFound(path)
		}
		return "", err
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		var parts []string
		for _, m := range pdfTextRe.FindAllSubmatch(data, -1) {
			parts = append(parts, string(m[1]))
		}
		text := strings.TrimSpace(wsRe.ReplaceAllString(strings.Join(parts, " "), " "))
		return capText(text), nil
	}

	return capText(string(data)), nil
}
