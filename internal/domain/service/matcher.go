package service

import (
	"math/rand"
	"sort"
	"strings"
)

// canonicalKey identifies a group regardless of member order: ids sorted
// lexicographically and joined with a dash.
func canonicalKey(userIDs []string) string {
	sorted := make([]string, len(userIDs))
	copy(sorted, userIDs)
	sort.Strings(sorted)
	return strings.Join(sorted, "-")
}

// matchPairs partitions the eligible users into groups of two, biased
// against pairs whose canonical key appears in recentPairs. The avoidance
// is greedy and best-effort: when every remaining partner is recent the
// first one is taken anyway rather than leaving someone unpaired. An odd
// leftover joins the last group, producing one trio.
//
// Returns the groups and the number of forced repeat pairings.
func matchPairs(userIDs []string, recentPairs map[string]struct{}, rng *rand.Rand) (groups [][]string, forcedRepeats int) {
	unpaired := make([]string, len(userIDs))
	copy(unpaired, userIDs)

	// Fisher-Yates shuffle
	for i := len(unpaired) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		unpaired[i], unpaired[j] = unpaired[j], unpaired[i]
	}

	for len(unpaired) >= 2 {
		user1 := unpaired[0]
		unpaired = unpaired[1:]

		// Take the first remaining partner this user hasn't met recently
		paired := false
		for i, user2 := range unpaired {
			if _, recent := recentPairs[canonicalKey([]string{user1, user2})]; !recent {
				unpaired = append(unpaired[:i], unpaired[i+1:]...)
				groups = append(groups, []string{user1, user2})
				paired = true
				break
			}
		}

		// All remaining partners are recent: accept a repeat
		if !paired {
			user2 := unpaired[0]
			unpaired = unpaired[1:]
			groups = append(groups, []string{user1, user2})
			forcedRepeats++
		}
	}

	if len(unpaired) == 1 && len(groups) > 0 {
		last := len(groups) - 1
		groups[last] = append(groups[last], unpaired[0])
	}

	return groups, forcedRepeats
}
