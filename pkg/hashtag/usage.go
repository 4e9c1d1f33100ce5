package hashtag

import (
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tgbotosho/content-engine/pkg/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const usageFileName = "hashtag_usage.json"

// NicheUsage tracks one niche's posting history for cooldown decisions.
// TagLastUsed maps tag to the post count at which it last ran.
type NicheUsage struct {
	PostCount   int            `json:"post_count"`
	LastSet     string         `json:"last_set"`
	TagLastUsed map[string]int `json:"tag_last_used"`
}

// UsageHistory maps niche key to its usage record
type UsageHistory map[string]NicheUsage

// UsagePath returns the usage file location under the data dir
func UsagePath() (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, usageFileName), nil
}

// LoadUsage reads the usage history. Missing or corrupt files read as
// empty history.
func LoadUsage(path string) UsageHistory {
	data, err := os.ReadFile(path)
	if err != nil {
		return UsageHistory{}
	}
	var h UsageHistory
	if err := json.Unmarshal(data, &h); err != nil || h == nil {
		return UsageHistory{}
	}
	return h
}

// SaveUsage writes the usage history
func SaveUsage(path string, h UsageHistory) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// forNiche returns the niche record, zero-valued when unseen
func (h UsageHistory) forNiche(nicheKey string) NicheUsage {
	if nu, ok := h[nicheKey]; ok {
		if nu.TagLastUsed == nil {
			nu.TagLastUsed = map[string]int{}
		}
		return nu
	}
	return NicheUsage{TagLastUsed: map[string]int{}}
}

// MarkUsed records a posted tag set: bumps the post counter and stamps
// each tag. When the tags exactly match a rotation set, that set label is
// recorded so the next pick advances the cycle.
func MarkUsed(path, nicheKey string, tags []string) error {
	h := LoadUsage(path)
	nu := h.forNiche(nicheKey)
	nu.PostCount++

	used := make([]string, 0, len(tags))
	for _, tag := range tags {
		clean := strings.TrimSpace(tag)
		if !strings.HasPrefix(clean, "#") {
			clean = "#" + clean
		}
		nu.TagLastUsed[clean] = nu.PostCount
		used = append(used, clean)
	}

	if label := matchRotationSet(nicheKey, used); label != "" {
		nu.LastSet = label
	}

	h[nicheKey] = nu
	return SaveUsage(path, h)
}

// matchRotationSet returns the label whose tags equal the used set,
// order-insensitive, or "".
func matchRotationSet(nicheKey string, used []string) string {
	pool, ok := Pools[nicheKey]
	if !ok {
		return ""
	}
	usedSet := map[string]bool{}
	for _, t := range used {
		usedSet[t] = true
	}
	for _, label := range SetLabels {
		tags := pool.RotationSets[label]
		if len(tags) != len(usedSet) {
			continue
		}
		match := true
		for _, t := range tags {
			if !usedSet[t] {
				match = false
				break
			}
		}
		if match {
			return label
		}
	}
	return ""
}

// onCooldown reports whether tag ran within the cooldown window.
// postsAgo is -1 when the tag has never been used.
func (nu NicheUsage) onCooldown(tag string) (bool, int) {
	last, ok := nu.TagLastUsed[tag]
	if !ok {
		return false, -1
	}
	postsAgo := nu.PostCount - last
	return postsAgo < CooldownPosts, postsAgo
}
