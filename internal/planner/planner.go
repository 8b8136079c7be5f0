package planner

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"craftcalc/internal/catalog"
)

// maxDepth is a hard ceiling on expansion recursion. The cycle guard already
// contains true recipe loops; this bounds pathological catalogs (thousands
// of nested single-input recipes) that would otherwise exhaust the stack.
const maxDepth = 64

// ErrDepthExceeded is returned when a plan expansion exceeds maxDepth.
var ErrDepthExceeded = errors.New("planner: recursion depth ceiling exceeded")

// unknownLabel replaces an empty station or NPC in group labels.
const unknownLabel = "unknown"

// Planner builds plans against one read-only catalog. It carries no mutable
// state; every BuildPlan call works on its own ledger, so plans may be
// computed concurrently over the same catalog.
type Planner struct {
	cat *catalog.Catalog
}

// New returns a Planner over cat.
func New(cat *catalog.Catalog) *Planner {
	return &Planner{cat: cat}
}

// build holds the mutable state of one plan computation.
type build struct {
	cat            *catalog.Catalog
	targetItemID   string
	targetRecipeID string

	inv       map[string]int // remaining-inventory ledger (private copy)
	useInv    bool
	rawTotals map[string]int
	nodes     map[string]*CraftNode
	visiting  map[string]bool // keys currently being expanded (cycle guard)
	trace     []string
}

type resolveOpts struct {
	forceCrafts     int // >0 only for the top-level call in crafts mode
	ignoreInventory bool
}

// BuildPlan expands the target into raw-material totals, aggregated craft
// nodes, station/NPC groups and an expansion trace. Unknown targets yield a
// raw-only plan and out-of-range quantities are clamped; the only error is
// the recursion ceiling.
func (p *Planner) BuildPlan(params Params) (*Plan, error) {
	qty := params.Quantity
	if qty < 0 {
		qty = 0
	}

	targetID := params.TargetItemID
	recipeID := params.TargetRecipeID
	if recipeID == "" {
		if ids := p.cat.RecipesFor(targetID); len(ids) > 0 {
			recipeID = ids[0]
		}
	}

	st := &build{
		cat:            p.cat,
		targetItemID:   targetID,
		targetRecipeID: recipeID,
		inv:            copyInventory(params.Inventory),
		useInv:         params.UseInventory,
		rawTotals:      make(map[string]int),
		nodes:          make(map[string]*CraftNode),
		visiting:       make(map[string]bool),
	}

	topOut := 1
	if r, ok := p.cat.Recipe(recipeID); ok && r.OutputQty > 0 {
		topOut = r.OutputQty
	}

	var err error
	if params.Mode == ModeCrafts {
		err = st.resolve(targetID, topOut*qty, 0, resolveOpts{forceCrafts: qty, ignoreInventory: true})
	} else {
		err = st.resolve(targetID, qty, 0, resolveOpts{})
	}
	if err != nil {
		return nil, err
	}

	return st.finish(topOut), nil
}

func copyInventory(src map[string]int) map[string]int {
	inv := make(map[string]int, len(src))
	for id, n := range src {
		if n > 0 {
			inv[id] = n
		}
	}
	return inv
}

// consume takes up to need units of itemID from the inventory ledger and
// returns the remaining need.
func (st *build) consume(itemID string, need int) int {
	if !st.useInv {
		return need
	}
	have := st.inv[itemID]
	if have <= 0 {
		return need
	}
	used := have
	if need < used {
		used = need
	}
	st.inv[itemID] = have - used
	return need - used
}

// chooseRecipe is the recipe selection policy: the explicit target recipe
// for the target item, otherwise the first recipe in output-index order.
// No cost model; this is the seam a cheapest-path policy would replace.
func (st *build) chooseRecipe(itemID string, recipeIDs []string) string {
	if itemID == st.targetItemID && st.targetRecipeID != "" {
		return st.targetRecipeID
	}
	return recipeIDs[0]
}

func (st *build) tracef(depth int, format string, args ...any) {
	st.trace = append(st.trace, strings.Repeat("  ", depth)+fmt.Sprintf(format, args...))
}

func (st *build) resolve(itemID string, need, depth int, opts resolveOpts) error {
	if depth > maxDepth {
		return fmt.Errorf("%w while expanding %s", ErrDepthExceeded, itemID)
	}
	if need < 0 {
		need = 0
	}
	name := st.cat.ItemName(itemID)

	if !opts.ignoreInventory {
		need = st.consume(itemID, need)
	}
	if need <= 0 {
		st.tracef(depth, "- %s x0 (inventory)", name)
		return nil
	}

	recipeIDs := st.cat.RecipesFor(itemID)
	if len(recipeIDs) == 0 {
		st.rawTotals[itemID] += need
		st.tracef(depth, "- [RAW] %s × %d", name, need)
		return nil
	}

	recipeID := st.chooseRecipe(itemID, recipeIDs)
	r, ok := st.cat.Recipe(recipeID)
	if !ok {
		// index points at a recipe the table does not have; degrade to raw
		st.rawTotals[itemID] += need
		st.tracef(depth, "- [RAW] %s × %d (recipe %s not found)", name, need, recipeID)
		return nil
	}

	outQty := r.OutputQty
	if outQty <= 0 {
		outQty = 1
	}
	craftsCount := (need + outQty - 1) / outQty
	surplus := 0
	if opts.forceCrafts > 0 {
		craftsCount = opts.forceCrafts
	} else {
		surplus = craftsCount*outQty - need
		if surplus < 0 {
			surplus = 0
		}
	}
	produced := craftsCount * outQty

	key := itemID + "::" + recipeID
	st.addNode(key, &CraftNode{
		Key:       key,
		ItemID:    itemID,
		RecipeID:  recipeID,
		Name:      name,
		Need:      need,
		Crafts:    craftsCount,
		OutputQty: outQty,
		Produced:  produced,
		Surplus:   surplus,
		Station:   r.Station,
		NPC:       r.NPC,
		Inputs:    r.Inputs,
	})

	line := fmt.Sprintf("- [CRAFT] %s need %d → crafts %d ×%d = %d", name, need, craftsCount, outQty, produced)
	if surplus > 0 {
		line += fmt.Sprintf(" (+%d)", surplus)
	}
	st.tracef(depth, "%s", line)

	if st.visiting[key] {
		st.tracef(depth, "  ⚠ recipe loop detected, stopping here")
		return nil
	}
	st.visiting[key] = true
	for _, in := range r.Inputs {
		if err := st.resolve(in.ItemID, in.Qty*craftsCount, depth+1, resolveOpts{}); err != nil {
			return err
		}
	}
	delete(st.visiting, key)
	return nil
}

// addNode merges a visit into the aggregated node for key. For a fixed key
// the node's totals are the sum over every resolution path that chose it.
func (st *build) addNode(key string, n *CraftNode) {
	cur, ok := st.nodes[key]
	if !ok {
		st.nodes[key] = n
		return
	}
	cur.Need += n.Need
	cur.Crafts += n.Crafts
	cur.Produced += n.Produced
	cur.Surplus += n.Surplus
}

// finish runs the post-pass: display depths, sorted node and raw lists,
// station/NPC grouping, and the top-node lookup.
func (st *build) finish(topOut int) *Plan {
	depths := make(map[string]int, len(st.nodes))
	var depthOf func(key string) int
	depthOf = func(key string) int {
		if d, ok := depths[key]; ok {
			return d
		}
		// in-progress marker: a revisit during descent (a cycle that
		// survived into the node map) resolves to 0 instead of recursing
		// forever
		depths[key] = 0
		node, ok := st.nodes[key]
		if !ok {
			return 0
		}
		d := 0
		for _, in := range node.Inputs {
			recs := st.cat.RecipesFor(in.ItemID)
			if len(recs) == 0 {
				continue
			}
			childKey := in.ItemID + "::" + st.chooseRecipe(in.ItemID, recs)
			if cd := 1 + depthOf(childKey); cd > d {
				d = cd
			}
		}
		depths[key] = d
		return d
	}

	nodes := make([]*CraftNode, 0, len(st.nodes))
	for _, n := range st.nodes {
		n.Depth = depthOf(n.Key)
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Key < b.Key
	})

	var groups []Group
	byLabel := make(map[string]int)
	for _, n := range nodes {
		label := orUnknown(n.Station) + " • " + orUnknown(n.NPC)
		idx, ok := byLabel[label]
		if !ok {
			idx = len(groups)
			byLabel[label] = idx
			groups = append(groups, Group{Label: label})
		}
		groups[idx].Nodes = append(groups[idx].Nodes, n)
	}

	raw := make([]RawMaterial, 0, len(st.rawTotals))
	for id, qty := range st.rawTotals {
		if qty <= 0 {
			continue
		}
		raw = append(raw, RawMaterial{ItemID: id, Name: st.cat.ItemName(id), Qty: qty})
	}
	sort.Slice(raw, func(i, j int) bool {
		if raw[i].Name != raw[j].Name {
			return raw[i].Name < raw[j].Name
		}
		return raw[i].ItemID < raw[j].ItemID
	})

	topNode := st.nodes[st.targetItemID+"::"+st.targetRecipeID]
	if topNode == nil {
		for _, n := range nodes {
			if n.ItemID == st.targetItemID {
				topNode = n
				break
			}
		}
	}

	return &Plan{
		Raw:          raw,
		Crafts:       nodes,
		Groups:       groups,
		Trace:        st.trace,
		TopNode:      topNode,
		TopOutputQty: topOut,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknownLabel
	}
	return s
}
