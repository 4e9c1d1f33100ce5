package hashtag

import (
	"fmt"
	"strings"
)

var setSep = strings.Repeat("═", 43)

func formatFollowers(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// renderSet renders the recommendation block for one hashtag set
func renderSet(set *Set, pool Pool, nu NicheUsage) string {
	var tagLines []string
	for _, tag := range set.Tags {
		if info, tier, ok := tagInfo(pool, tag); ok {
			tagLines = append(tagLines, fmt.Sprintf("  %s  [%s — %s followers]", tag, tier, formatFollowers(info.Followers)))
		} else {
			tagLines = append(tagLines, "  "+tag)
		}
	}

	ideal := map[string]int{TierBroad: 1, TierNiche: 2, TierMicro: 1}
	tierOK := true
	for k, v := range ideal {
		if set.TierBreakdown[k] != v {
			tierOK = false
			break
		}
	}
	tierIcon := "~"
	if tierOK {
		tierIcon = "✅"
	}

	lastSet := nu.LastSet
	if lastSet == "" {
		lastSet = "None"
	}

	lines := []string{
		setSep,
		"HASHTAG SET",
		setSep,
		"Niche:      " + set.Niche,
		"Platform:   " + set.Platform,
		"Topic:      " + set.Topic,
		fmt.Sprintf("Rotation:   Set %s (last used: Set %s, post #%d)", set.SetLabel, lastSet, nu.PostCount),
		"",
		fmt.Sprintf("RECOMMENDED SET (%d tags)", len(set.Tags)),
		strings.Join(tagLines, "\n"),
		"",
		"TIER BREAKDOWN",
		fmt.Sprintf("  Broad: %d  |  Niche: %d  |  Micro: %d  %s",
			set.TierBreakdown[TierBroad], set.TierBreakdown[TierNiche], set.TierBreakdown[TierMicro], tierIcon),
		"",
	}

	if len(set.CooldownNotes) > 0 {
		lines = append(lines, "COOLDOWN NOTES")
		for _, n := range set.CooldownNotes {
			lines = append(lines, "  "+n)
		}
		lines = append(lines, "")
	}

	if len(set.AlternativeSets) > 0 {
		lines = append(lines, "ALTERNATIVES")
		for _, label := range SetLabels {
			if tags, ok := set.AlternativeSets[label]; ok {
				lines = append(lines, fmt.Sprintf("  Set %s:  %s", label, strings.Join(tags, " ")))
			}
		}
	}

	lines = append(lines, setSep)
	return strings.Join(lines, "\n")
}

// Status renders the cooldown state of every pool tag for a niche
func Status(nicheKey string) (string, error) {
	pool, ok := Pools[nicheKey]
	if !ok {
		return "", fmt.Errorf("unknown niche '%s'", nicheKey)
	}

	var nu NicheUsage
	if path, err := UsagePath(); err == nil {
		nu = LoadUsage(path).forNiche(nicheKey)
	}

	lastSet := nu.LastSet
	if lastSet == "" {
		lastSet = "None"
	}

	var available, neverUsed, onCooldown []string
	for _, tier := range tierOrder {
		for _, info := range pool.tier(tier) {
			last, used := nu.TagLastUsed[info.Tag]
			if !used {
				neverUsed = append(neverUsed, fmt.Sprintf("  %s (%s)", info.Tag, tier))
				continue
			}
			postsAgo := nu.PostCount - last
			if postsAgo < CooldownPosts {
				onCooldown = append(onCooldown, fmt.Sprintf("  %s (%s) — used %dp ago, available in %d",
					info.Tag, tier, postsAgo, CooldownPosts-postsAgo))
			} else {
				available = append(available, fmt.Sprintf("  %s (%s) — last used %dp ago", info.Tag, tier, postsAgo))
			}
		}
	}

	lines := []string{
		fmt.Sprintf("═══ HASHTAG STATUS: %s ═══", strings.ToUpper(nicheKey)),
		fmt.Sprintf("Post count: %d  |  Last rotation set: %s", nu.PostCount, lastSet),
		"",
		fmt.Sprintf("AVAILABLE (%d tags)", len(available)+len(neverUsed)),
	}
	lines = append(lines, capped(available, 8)...)
	lines = append(lines, "", fmt.Sprintf("NEVER USED (%d tags)", len(neverUsed)))
	lines = append(lines, capped(neverUsed, 6)...)
	lines = append(lines, "", fmt.Sprintf("ON COOLDOWN (%d tags)", len(onCooldown)))
	lines = append(lines, onCooldown...)
	lines = append(lines, setSep)
	return strings.Join(lines, "\n"), nil
}

func capped(xs []string, n int) []string {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}
