// ABOUTME: Thin wrapper over sahilm/fuzzy for subsequence matching
// ABOUTME: Find ranks by score; FindInOrder keeps source order for stable suggestion lists

package fuzzy

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against items, best score first.
func Find(pattern string, items []string) []Match {
	return convert(fuzzy.Find(pattern, items))
}

// FindInOrder matches like Find but returns the matches in the order the items
// were given. An empty pattern matches every item.
func FindInOrder(pattern string, items []string) []Match {
	if pattern == "" {
		matches := make([]Match, len(items))
		for i, s := range items {
			matches[i] = Match{Str: s, Index: i}
		}
		return matches
	}
	matches := Find(pattern, items)
	slices.SortFunc(matches, func(a, b Match) int { return a.Index - b.Index })
	return matches
}

func convert(results fuzzy.Matches) []Match {
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
