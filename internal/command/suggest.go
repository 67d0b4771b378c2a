package command

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	maxSuggestDistance = 2
	// Shorter tokens are within distance of every one-letter alias.
	minSuggestLength = 3
)

// Suggest returns up to maxResults canonical command names close to token,
// nearest first. Aliases count toward a match but the canonical name is
// what gets suggested.
func (r *Registry) Suggest(token string, maxResults int) []string {
	token = strings.ToLower(token)
	if len(token) < minSuggestLength {
		return nil
	}

	best := make(map[string]int)
	for _, d := range r.order {
		for _, candidate := range append([]string{d.Name}, d.Aliases...) {
			dist := levenshtein.ComputeDistance(token, candidate)
			if dist == 0 || dist > maxSuggestDistance {
				continue
			}
			if prev, ok := best[d.Name]; !ok || dist < prev {
				best[d.Name] = dist
			}
		}
	}

	names := make([]string, 0, len(best))
	for name := range best {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if best[names[i]] != best[names[j]] {
			return best[names[i]] < best[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > maxResults {
		names = names[:maxResults]
	}
	return names
}
