package catalog

import (
	"sort"
	"strconv"
)

// buildOutputIndex derives the item id -> producing recipe ids mapping.
// Recipes without a resolvable output stay out of the index. Ties among
// recipes producing the same item are ordered ascending, numerically when
// both ids parse as integers, so plan construction is deterministic.
func buildOutputIndex(recipes map[string]*Recipe) map[string][]string {
	index := make(map[string][]string)
	for id, r := range recipes {
		if r.OutputItemID == "" {
			continue
		}
		index[r.OutputItemID] = append(index[r.OutputItemID], id)
	}
	for _, ids := range index {
		sort.Slice(ids, func(i, j int) bool {
			return recipeIDLess(ids[i], ids[j])
		})
	}
	return index
}

func recipeIDLess(a, b string) bool {
	na, aerr := strconv.ParseInt(a, 10, 64)
	nb, berr := strconv.ParseInt(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}
