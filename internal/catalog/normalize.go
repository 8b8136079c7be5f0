package catalog

import (
	"errors"
	"fmt"

	"craftcalc/internal/logger"
)

// ErrNoRecipes is returned when a catalog document contains no valid recipe
// at all. It is the only fatal load condition; every smaller problem is
// skipped at the granularity of one entry.
var ErrNoRecipes = errors.New("catalog: no valid recipes found")

// normalizeItems accepts the raw items member (a list of records or a keyed
// mapping) and returns the items-by-id table. Entries without a resolvable
// id are dropped.
func normalizeItems(raw any) map[string]*Item {
	items := make(map[string]*Item)
	if raw == nil {
		return items
	}

	if list, ok := asList(raw); ok {
		for _, v := range list {
			rec, ok := asRecord(v)
			if !ok {
				continue
			}
			id, ok := toID(map[string]any(rec))
			if !ok {
				continue
			}
			items[id] = &Item{ID: id, Name: itemName(rec, id), Raw: rec}
		}
		return items
	}

	if m, ok := asRecord(raw); ok {
		for key, v := range m {
			rec, _ := asRecord(v)
			id := key
			if rec != nil {
				if explicit, ok := toID(rec["id"]); ok {
					id = explicit
				}
			}
			if id == "" {
				continue
			}
			items[id] = &Item{ID: id, Name: itemName(rec, id), Raw: rec}
		}
	}
	return items
}

func itemName(rec record, id string) string {
	if rec != nil {
		if v, ok := rec.first("name", "title", "localizedName", "displayName", "label"); ok {
			if s, isStr := v.(string); isStr && s != "" {
				return s
			}
		}
	}
	return id
}

// normalizeRecipes accepts the raw recipes member and resolves every entry
// into a fixed Recipe. flagged counts recipes whose output quantity failed
// the sane-range check and fell back to the raw minimum.
func normalizeRecipes(raw any) (recipes map[string]*Recipe, flagged int) {
	recipes = make(map[string]*Recipe)
	if raw == nil {
		return recipes, 0
	}

	add := func(id string, rec record) {
		r := &Recipe{
			ID:      id,
			Station: stationOf(rec),
			NPC:     npcOf(rec),
			Inputs:  inputsOf(rec),
			Raw:     rec,
		}
		if out, ok := outputItemID(rec); ok {
			r.OutputItemID = out
		}
		qty, sane := outputQty(rec)
		r.OutputQty = qty
		if !sane {
			flagged++
		}
		recipes[id] = r
	}

	if list, ok := asList(raw); ok {
		for _, v := range list {
			rec, ok := asRecord(v)
			if !ok {
				continue
			}
			// recipes lacking a resolvable id are dropped
			id := ""
			if cand, ok := rec.first("id", "recipeId", "recipe_id", "key"); ok {
				id, _ = toID(cand)
			}
			if id == "" {
				continue
			}
			add(id, rec)
		}
		return recipes, flagged
	}

	if m, ok := asRecord(raw); ok {
		for key, v := range m {
			rec, ok := asRecord(v)
			if !ok {
				continue
			}
			id := key
			if explicit, ok := toID(rec["id"]); ok {
				id = explicit
			}
			if id == "" {
				continue
			}
			add(id, rec)
		}
	}
	return recipes, flagged
}

// Normalize converts a decoded catalog document into a Catalog. The document
// must carry items and recipes members, each a list or keyed mapping with
// heterogeneous field names; missing/extra/renamed fields never fail the
// load. Only the total absence of valid recipes is an error.
func Normalize(doc map[string]any) (*Catalog, error) {
	items := normalizeItems(doc["items"])
	recipes, flagged := normalizeRecipes(doc["recipes"])

	valid := 0
	for _, r := range recipes {
		if r.OutputItemID != "" {
			valid++
		}
	}
	if valid == 0 {
		return nil, ErrNoRecipes
	}

	if flagged > 0 {
		logger.Warn("Catalog", fmt.Sprintf("%d recipe(s) with out-of-range output quantities, check scraper output", flagged))
	}

	return New(items, recipes), nil
}
