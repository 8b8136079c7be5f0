// Package catalog normalizes scraped item/recipe data of heterogeneous shape
// into fixed lookup tables and a derived output index. All field-name
// fallback logic lives here; the rest of the application only ever sees the
// normalized types.
package catalog

import (
	"sort"
	"strings"
)

// UnknownField is the canonical sentinel for a station or NPC the catalog
// does not name.
const UnknownField = ""

// Item is a normalized catalog item. Raw keeps the source record's
// passthrough fields for display layers that want them.
type Item struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Raw  map[string]any `json:"-"`
}

// RecipeInput is one (item, quantity) requirement of a recipe.
type RecipeInput struct {
	ItemID string `json:"item_id"`
	Qty    int    `json:"qty"`
}

// Recipe is a normalized recipe. OutputItemID may be empty when the source
// record had no resolvable output reference; such recipes stay addressable
// by id but are excluded from the output index and never crafted.
type Recipe struct {
	ID           string         `json:"id"`
	OutputItemID string         `json:"output_item_id"`
	OutputQty    int            `json:"output_qty"`
	Station      string         `json:"station"`
	NPC          string         `json:"npc"`
	Inputs       []RecipeInput  `json:"inputs"`
	Raw          map[string]any `json:"-"`
}

// Catalog holds the normalized lookup tables and the derived output index.
// It is built once per load and treated as read-only afterwards; a reload
// produces a fresh Catalog that callers swap in atomically.
type Catalog struct {
	ItemsByID   map[string]*Item
	RecipesByID map[string]*Recipe

	// OutputIndex maps item id -> recipe ids producing it, ascending
	// numeric-then-lexicographic. Items absent from the index are raw.
	OutputIndex map[string][]string
}

// New builds a Catalog from already-normalized tables.
func New(items map[string]*Item, recipes map[string]*Recipe) *Catalog {
	if items == nil {
		items = make(map[string]*Item)
	}
	if recipes == nil {
		recipes = make(map[string]*Recipe)
	}
	return &Catalog{
		ItemsByID:   items,
		RecipesByID: recipes,
		OutputIndex: buildOutputIndex(recipes),
	}
}

// Item returns the item for id, synthesizing a placeholder for unknown ids
// so lookups never fail.
func (c *Catalog) Item(id string) *Item {
	if it, ok := c.ItemsByID[id]; ok {
		return it
	}
	return &Item{ID: id, Name: "Item #" + id}
}

// ItemName returns the display name for id.
func (c *Catalog) ItemName(id string) string {
	return c.Item(id).Name
}

// Recipe returns the recipe for id. Unlike items, an unknown recipe is an
// explicit absence the caller must handle.
func (c *Catalog) Recipe(id string) (*Recipe, bool) {
	r, ok := c.RecipesByID[id]
	return r, ok
}

// RecipesFor returns the ordered recipe ids producing itemID, or nil when
// the item is raw.
func (c *Catalog) RecipesFor(itemID string) []string {
	return c.OutputIndex[itemID]
}

// CraftableItems returns the ids of all items with at least one recipe,
// sorted by display name.
func (c *Catalog) CraftableItems() []string {
	ids := make([]string, 0, len(c.OutputIndex))
	for id := range c.OutputIndex {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.ItemName(ids[i]), c.ItemName(ids[j])
		if a != b {
			return strings.Compare(a, b) < 0
		}
		return ids[i] < ids[j]
	})
	return ids
}
