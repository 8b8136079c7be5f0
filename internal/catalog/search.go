package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SearchResult is one ranked hit from Search.
type SearchResult struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Search ranks craftable items against query. Exact and prefix matches on
// the display name win, substring matches on name or id come next, and
// close misspellings are rescued with an edit-distance cutoff scaled to the
// candidate length. An empty query lists all craftable items by name.
func (c *Catalog) Search(query string, limit int) []SearchResult {
	if limit <= 0 {
		limit = 50
	}
	q := strings.ToLower(strings.TrimSpace(query))

	var results []SearchResult
	for _, id := range c.CraftableItems() {
		name := c.ItemName(id)
		if q == "" {
			results = append(results, SearchResult{ID: id, Name: name, Score: 1})
			continue
		}
		if score, ok := matchScore(q, strings.ToLower(name), strings.ToLower(id)); ok {
			results = append(results, SearchResult{ID: id, Name: name, Score: score})
		}
	}

	if q != "" {
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].Score != results[j].Score {
				return results[i].Score > results[j].Score
			}
			return results[i].Name < results[j].Name
		})
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func matchScore(q, name, id string) (float64, bool) {
	switch {
	case name == q:
		return 1, true
	case strings.HasPrefix(name, q):
		return 0.9, true
	case strings.Contains(name, q) || strings.Contains(id, q):
		return 0.8, true
	}
	dist := levenshtein.ComputeDistance(q, name)
	if dist > distanceLimit(len(name)) {
		return 0, false
	}
	score := 0.72 - 0.08*float64(dist)
	if score < 0.1 {
		score = 0.1
	}
	return score, true
}

// distanceLimit allows more edits for longer names.
func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
