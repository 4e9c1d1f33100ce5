package analytics

import (
	"os"
	"path/filepath"

	"github.com/tgbotosho/content-engine/pkg/config"
)

const historyFileName = "performance_history.json"

// HistoryPath returns the performance history location under the data dir
func HistoryPath() (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, historyFileName), nil
}

// LoadHistory reads previously seen posts. A missing or corrupt file is
// treated as empty history, never an error.
func LoadHistory(path string) []PostMetrics {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var posts []PostMetrics
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil
	}
	return posts
}

// AppendHistory merges posts into the history file, deduplicating on post
// ID so re-running over the same export never double-counts.
func AppendHistory(path string, posts []PostMetrics) error {
	existing := LoadHistory(path)

	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.PostID] = true
	}
	merged := existing
	for _, p := range posts {
		if p.PostID != "" && seen[p.PostID] {
			continue
		}
		seen[p.PostID] = true
		merged = append(merged, p)
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
