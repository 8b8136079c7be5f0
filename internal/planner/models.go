// Package planner expands a target item into a hierarchical shopping and
// crafting plan over a read-only catalog.
package planner

import "craftcalc/internal/catalog"

// Mode selects how the requested quantity is interpreted.
type Mode string

const (
	// ModeItems: the quantity is the number of output items wanted.
	ModeItems Mode = "items"
	// ModeCrafts: the quantity is the number of craft actions to perform.
	// Inventory is bypassed for the top-level call, since the user is
	// asking "if I craft N times" literally.
	ModeCrafts Mode = "crafts"
)

// ParseMode maps a request string to a Mode, defaulting to ModeItems.
func ParseMode(s string) Mode {
	if Mode(s) == ModeCrafts {
		return ModeCrafts
	}
	return ModeItems
}

// Params is the plan request boundary.
type Params struct {
	TargetItemID   string `json:"target_item_id"`
	TargetRecipeID string `json:"target_recipe_id"` // optional; defaults to first producing recipe
	Quantity       int    `json:"quantity"`
	Mode           Mode   `json:"mode"`
	UseInventory   bool   `json:"use_inventory"`
	// Inventory is a snapshot of item id -> count. The planner works on a
	// private copy; the caller's map is never mutated.
	Inventory map[string]int `json:"inventory"`
}

// CraftNode aggregates the total demand and production of one
// (item, recipe) pair across every resolution path that selected it.
type CraftNode struct {
	Key       string                `json:"key"` // itemID + "::" + recipeID
	ItemID    string                `json:"item_id"`
	RecipeID  string                `json:"recipe_id"`
	Name      string                `json:"name"`
	Need      int                   `json:"need"`
	Crafts    int                   `json:"crafts"`
	OutputQty int                   `json:"output_qty"`
	Produced  int                   `json:"produced"`
	Surplus   int                   `json:"surplus"`
	Station   string                `json:"station"`
	NPC       string                `json:"npc"`
	Inputs    []catalog.RecipeInput `json:"inputs"`
	Depth     int                   `json:"depth"` // display ordering only
}

// RawMaterial is one gather-not-craft total.
type RawMaterial struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Qty    int    `json:"qty"`
}

// Group is the craft nodes sharing one "<station> • <npc>" label, ordered
// by (depth, name).
type Group struct {
	Label string       `json:"label"`
	Nodes []*CraftNode `json:"nodes"`
}

// Plan is the plan response boundary.
type Plan struct {
	Raw    []RawMaterial `json:"raw"`
	Crafts []*CraftNode  `json:"crafts"`
	Groups []Group       `json:"groups"`
	// Trace is the human-readable expansion log, one line per resolution
	// step, indented by recursion depth. Informational, not a wire format.
	Trace []string `json:"trace"`
	// TopNode is the craft node for the requested target, when one was
	// created (it is absent when inventory fully covered the request).
	TopNode      *CraftNode `json:"top_node"`
	TopOutputQty int        `json:"top_output_qty"`
}
