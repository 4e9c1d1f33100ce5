package hashtag

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/niche"
)

// Set is one recommended hashtag selection with its rotation metadata
type Set struct {
	Niche           string              `json:"niche"`
	Platform        string              `json:"platform"`
	Topic           string              `json:"topic"`
	SetLabel        string              `json:"set_label"`
	Tags            []string            `json:"tags"`
	TierBreakdown   map[string]int      `json:"tier_breakdown"`
	AlternativeSets map[string][]string `json:"alternative_sets"`
	CooldownNotes   []string            `json:"cooldown_notes"`
	GeneratedAt     string              `json:"generated_at"`
	Report          string              `json:"-"`
}

// topicScore rates a tag's relevance to the topic, 0 (none) to 3 (strong).
// Affinity matches count in both directions so "AI" matches "africa in AI"
// style topics.
func topicScore(info TagInfo, topic string) int {
	topicLower := strings.ToLower(topic)
	matches := 0
	for _, a := range info.Topics {
		aLower := strings.ToLower(a)
		if strings.Contains(topicLower, aLower) || strings.Contains(aLower, topicLower) {
			matches++
		}
	}
	if matches > 3 {
		return 3
	}
	return matches
}

// pickRotationSet advances the A through E cycle past the last-used set
func pickRotationSet(nu NicheUsage) string {
	if nu.LastSet == "" {
		return SetLabels[0]
	}
	for i, label := range SetLabels {
		if label == nu.LastSet {
			return SetLabels[(i+1)%len(SetLabels)]
		}
	}
	return SetLabels[0]
}

// tierOf looks up which tier a tag belongs to, defaulting to niche
func tierOf(pool Pool, tag string) string {
	for _, tier := range tierOrder {
		for _, info := range pool.tier(tier) {
			if info.Tag == tag {
				return tier
			}
		}
	}
	return TierNiche
}

// tagInfo finds a tag's pool entry and tier
func tagInfo(pool Pool, tag string) (TagInfo, string, bool) {
	for _, tier := range tierOrder {
		for _, info := range pool.tier(tier) {
			if info.Tag == tag {
				return info, tier, true
			}
		}
	}
	return TagInfo{}, "", false
}

func tierBreakdown(pool Pool, tags []string) map[string]int {
	breakdown := map[string]int{TierBroad: 0, TierNiche: 0, TierMicro: 0}
	for _, tag := range tags {
		breakdown[tierOf(pool, tag)]++
	}
	return breakdown
}

// alternativeSets returns up to two other rotation sets in label order
func alternativeSets(pool Pool, selected string) map[string][]string {
	alts := map[string][]string{}
	for _, label := range SetLabels {
		if len(alts) >= 2 {
			break
		}
		if label != selected {
			alts[label] = pool.RotationSets[label]
		}
	}
	return alts
}

// selectTags builds the tag list for one post: start from the next
// rotation set, drop tags on cooldown, and backfill from the pool by
// topic relevance with niche-tier tags preferred over micro and broad.
func selectTags(pool Pool, platform, topic string, nu NicheUsage) (string, []string, []string) {
	limit := LimitFor(platform)
	targetCount := limit.SweetMax
	if targetCount > 4 {
		targetCount = 4
	}

	setLabel := pickRotationSet(nu)
	baseTags := pool.RotationSets[setLabel]

	var cooldownNotes []string
	var finalTags []string
	needSubstitutes := false

	inBase := map[string]bool{}
	for _, tag := range baseTags {
		inBase[tag] = true
	}

	for _, tag := range baseTags {
		onCD, postsAgo := nu.onCooldown(tag)
		if !onCD {
			finalTags = append(finalTags, tag)
			continue
		}
		plural := "s"
		if postsAgo == 1 {
			plural = ""
		}
		cooldownNotes = append(cooldownNotes, fmt.Sprintf(
			"%s → on cooldown (used %d post%s ago, available in %d)",
			tag, postsAgo, plural, CooldownPosts-postsAgo))
		needSubstitutes = true
	}

	if needSubstitutes {
		type candidate struct {
			score int
			tag   string
		}
		var scored []candidate
		selected := map[string]bool{}
		for _, t := range finalTags {
			selected[t] = true
		}
		for _, tier := range tierOrder {
			for _, info := range pool.tier(tier) {
				if selected[info.Tag] || inBase[info.Tag] {
					continue
				}
				if onCD, _ := nu.onCooldown(info.Tag); onCD {
					continue
				}
				tierWeight := map[string]int{TierNiche: 3, TierMicro: 2, TierBroad: 1}
				scored = append(scored, candidate{
					score: topicScore(info, topic)*2 + tierWeight[tier],
					tag:   info.Tag,
				})
			}
		}
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
		for _, c := range scored {
			if len(finalTags) >= targetCount {
				break
			}
			finalTags = append(finalTags, c.tag)
		}
	}

	if len(finalTags) > targetCount {
		finalTags = finalTags[:targetCount]
	}

	// Last resort: pad to the platform minimum with anything off cooldown
	if len(finalTags) < limit.SweetMin {
		selected := map[string]bool{}
		for _, t := range finalTags {
			selected[t] = true
		}
		for _, info := range pool.all() {
			if len(finalTags) >= limit.SweetMin {
				break
			}
			if selected[info.Tag] {
				continue
			}
			if onCD, _ := nu.onCooldown(info.Tag); !onCD {
				finalTags = append(finalTags, info.Tag)
				selected[info.Tag] = true
			}
		}
	}

	return setLabel, finalTags, cooldownNotes
}

// Recommend returns the hashtag set for one post. With emergency set,
// adjacent out-of-cluster tags are appended and the list re-trimmed to
// the platform sweet spot.
func Recommend(nicheKey, platform, topic string, emergency bool) (*Set, error) {
	pool, ok := Pools[nicheKey]
	if !ok {
		return nil, errors.NewCLIError(errors.ErrorTypeValidation,
			fmt.Sprintf("unknown niche '%s'", nicheKey), nil).
			WithSuggestion("valid niches: " + strings.Join(niche.Order, ", "))
	}

	var nu NicheUsage
	if path, err := UsagePath(); err == nil {
		nu = LoadUsage(path).forNiche(nicheKey)
	} else {
		nu = NicheUsage{TagLastUsed: map[string]int{}}
	}

	setLabel, tags, cooldownNotes := selectTags(pool, platform, topic, nu)

	if emergency {
		adj := EmergencyAdjacentTags[nicheKey]
		if len(adj) > 2 {
			adj = adj[:2]
		}
		for _, t := range adj {
			dup := false
			for _, have := range tags {
				if have == t {
					dup = true
					break
				}
			}
			if !dup {
				tags = append(tags, t)
			}
		}
		if max := LimitFor(platform).SweetMax; len(tags) > max {
			tags = tags[:max]
		}
	}

	set := &Set{
		Niche:           nicheKey,
		Platform:        platform,
		Topic:           topic,
		SetLabel:        setLabel,
		Tags:            tags,
		TierBreakdown:   tierBreakdown(pool, tags),
		AlternativeSets: alternativeSets(pool, setLabel),
		CooldownNotes:   cooldownNotes,
		GeneratedAt:     time.Now().Format(time.RFC3339),
	}
	set.Report = renderSet(set, pool, nu)
	return set, nil
}

// WeekRotation produces seven sets cycling through the rotation labels,
// without touching usage history.
func WeekRotation(nicheKey, platform string) ([]Set, error) {
	pool, ok := Pools[nicheKey]
	if !ok {
		return nil, errors.NewCLIError(errors.ErrorTypeValidation,
			fmt.Sprintf("unknown niche '%s'", nicheKey), nil)
	}

	var nu NicheUsage
	if path, err := UsagePath(); err == nil {
		nu = LoadUsage(path).forNiche(nicheKey)
	}

	sets := make([]Set, 0, 7)
	for i := 0; i < 7; i++ {
		label := SetLabels[i%len(SetLabels)]
		tags := pool.RotationSets[label]
		set := Set{
			Niche:           nicheKey,
			Platform:        platform,
			Topic:           fmt.Sprintf("Day %d", i+1),
			SetLabel:        label,
			Tags:            tags,
			TierBreakdown:   tierBreakdown(pool, tags),
			AlternativeSets: alternativeSets(pool, label),
			GeneratedAt:     time.Now().Format(time.RFC3339),
		}
		set.Report = renderSet(&set, pool, nu)
		sets = append(sets, set)
	}
	return sets, nil
}
