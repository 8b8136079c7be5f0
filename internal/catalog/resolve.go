package catalog

// Field resolution for raw recipe records. Scraped catalogs disagree on
// field names, so every accessor scans a prioritized synonym list. The
// chains and sanity bounds here are tuned against real scraper output; keep
// them in sync across sources rather than trimming "unused" synonyms.

const (
	// saneOutputCeiling bounds believable per-craft output quantities.
	// Consumables legitimately reach 100; anything above 500 is almost
	// certainly a mis-picked row id.
	saneOutputCeiling = 500
	// saneInputCeiling bounds believable per-craft input quantities.
	saneInputCeiling = 5000
	// absurdOutputCeiling collapses outputs to 1 outright.
	absurdOutputCeiling = 5000
)

// outputItemID resolves the item a recipe produces. Direct output-reference
// fields win; nested product/produces objects are the fallback. A recipe
// where nothing resolves is unusable and must stay out of the output index.
func outputItemID(r record) (string, bool) {
	if v, ok := r.first("output", "item", "result", "outputItem", "output_item",
		"outputItemId", "output_item_id", "outputId"); ok {
		if id, ok := toID(v); ok {
			return id, true
		}
	}

	if v, ok := r.first("product", "produces", "out", "outputData"); ok {
		if p, ok := asRecord(v); ok {
			if cand, ok := p.first("itemId", "item_id", "id", "item"); ok {
				if id, ok := toID(cand); ok {
					return id, true
				}
			}
			return "", false
		}
		if id, ok := toID(v); ok {
			return id, true
		}
	}

	return "", false
}

// outputQtyCandidates collects positive quantity candidates in priority
// order from the synonym fields and nested product objects.
func outputQtyCandidates(r record) []int {
	var vals []any
	for _, k := range []string{"outputQty", "output_qty", "outputAmount", "output_amount",
		"qty", "amount", "count", "quantity"} {
		if v, ok := r[k]; ok && v != nil {
			vals = append(vals, v)
		}
	}
	for _, k := range []string{"product", "produces"} {
		if p, ok := asRecord(r[k]); ok {
			for _, f := range []string{"amount", "qty", "count"} {
				if v, ok := p[f]; ok && v != nil {
					vals = append(vals, v)
				}
			}
		}
	}

	var out []int
	for _, v := range vals {
		if n := clampInt(v); n > 0 {
			out = append(out, n)
		}
	}
	return out
}

// outputQty resolves the per-craft output quantity. Among synonymous
// candidates it prefers the smallest value within the sane ceiling; when no
// candidate is sane the raw first pick is used and sane=false so the caller
// can flag the recipe for review. Default is 1.
func outputQty(r record) (qty int, sane bool) {
	candidates := outputQtyCandidates(r)
	if len(candidates) == 0 {
		return 1, true
	}

	n := pickSaneQty(candidates, saneOutputCeiling)
	sane = n <= saneOutputCeiling

	if n <= 0 || n > absurdOutputCeiling {
		return 1, sane
	}
	return n, sane
}

// pickSaneQty returns the smallest candidate within ceiling, or the raw
// minimum when no candidate is sane.
func pickSaneQty(candidates []int, ceiling int) int {
	best := 0
	for _, c := range candidates {
		if c <= ceiling && (best == 0 || c < best) {
			best = c
		}
	}
	if best > 0 {
		return best
	}
	for _, c := range candidates {
		if best == 0 || c < best {
			best = c
		}
	}
	return best
}

// npcOf resolves the crafting NPC. Empty string is the canonical "unknown".
func npcOf(r record) string {
	if v, ok := r.first("npc", "npcName", "crafter", "vendor", "character",
		"npc_name", "crafter_name", "requiredNpc", "required_npc"); ok {
		return stringOrName(v)
	}
	return UnknownField
}

// stationOf resolves the required workstation. Empty string is the
// canonical "unknown".
func stationOf(r record) string {
	if v, ok := r.first("station", "workstation", "craftingStation",
		"stationName", "workstationName", "station_name"); ok {
		return stringOrName(v)
	}
	return UnknownField
}

// inputsContainer locates the ingredient list, which may sit directly under
// a synonym field or one level down inside a wrapper object.
func inputsContainer(r record) []any {
	v, ok := r.first("inputs", "ingredients", "requirements", "materials",
		"components", "cost", "resources")
	if !ok {
		return nil
	}
	if l, ok := asList(v); ok {
		return l
	}
	if wrap, ok := asRecord(v); ok {
		if inner, ok := wrap.first("items", "ingredients", "materials", "resources"); ok {
			if l, ok := asList(inner); ok {
				return l
			}
		}
	}
	return nil
}

// inputsOf resolves the (item, qty) input pairs of a recipe. Semantic id
// fields are preferred over a bare "id", which in scraped data is usually a
// row identifier rather than an item reference. Entries missing either
// field are dropped.
func inputsOf(r record) []RecipeInput {
	entries := inputsContainer(r)
	if len(entries) == 0 {
		return nil
	}

	out := make([]RecipeInput, 0, len(entries))
	for _, e := range entries {
		x, ok := asRecord(e)
		if !ok {
			continue
		}

		itemID := ""
		if cand, ok := x.first("itemId", "item_id", "ingredientId", "ingredient_id",
			"materialId", "material_id", "resourceId", "resource_id",
			"item", "ingredient", "material", "resource", "target"); ok {
			itemID, _ = toID(cand)
		}
		if itemID == "" {
			// last resort only
			itemID, _ = toID(x["id"])
		}

		var candidates []int
		for _, k := range []string{"amount", "qty", "count", "quantity", "value",
			"required", "requiredAmount", "required_amount",
			"amountRequired", "amount_required"} {
			if v, ok := x[k]; ok && v != nil {
				if n := clampInt(v); n > 0 {
					candidates = append(candidates, n)
				}
			}
		}
		qty := 0
		if len(candidates) > 0 {
			qty = pickSaneQty(candidates, saneInputCeiling)
		}

		if itemID != "" && qty > 0 {
			out = append(out, RecipeInput{ItemID: itemID, Qty: qty})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
