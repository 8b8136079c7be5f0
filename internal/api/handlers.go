package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"craftcalc/internal/catalog"
	"craftcalc/internal/db"
	"craftcalc/internal/logger"
	"craftcalc/internal/planner"
)

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	cat, _, ready := s.catalogSnapshot()

	var itemCount, recipeCount, craftable int
	if cat != nil {
		itemCount = len(cat.ItemsByID)
		recipeCount = len(cat.RecipesByID)
		craftable = len(cat.OutputIndex)
	}

	writeJSON(w, map[string]interface{}{
		"catalog_loaded":  ready,
		"items":           itemCount,
		"recipes":         recipeCount,
		"craftable_items": craftable,
	})
}

func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	cat, _, ready := s.catalogSnapshot()
	if !ready {
		writeError(w, 503, "catalog still loading")
		return
	}

	limit := s.cfg.MaxSearchResults
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	results := cat.Search(r.URL.Query().Get("q"), limit)
	if results == nil {
		results = []catalog.SearchResult{}
	}
	writeJSON(w, results)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	cat, _, ready := s.catalogSnapshot()
	if !ready {
		writeError(w, 503, "catalog still loading")
		return
	}

	id := r.PathValue("id")
	item := cat.Item(id)
	_, known := cat.ItemsByID[id]

	recipeIDs := cat.RecipesFor(id)
	recipes := make([]*catalog.Recipe, 0, len(recipeIDs))
	for _, rid := range recipeIDs {
		if rec, ok := cat.Recipe(rid); ok {
			recipes = append(recipes, rec)
		}
	}
	if !known && len(recipes) == 0 {
		writeError(w, 404, fmt.Sprintf("unknown item %s", id))
		return
	}

	writeJSON(w, map[string]interface{}{
		"item":    item,
		"recipes": recipes,
	})
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	cat, _, ready := s.catalogSnapshot()
	if !ready {
		writeError(w, 503, "catalog still loading")
		return
	}

	id := r.PathValue("id")
	rec, ok := cat.Recipe(id)
	if !ok {
		writeError(w, 404, fmt.Sprintf("unknown recipe %s", id))
		return
	}
	writeJSON(w, rec)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	cat, pl, ready := s.catalogSnapshot()
	if !ready {
		writeError(w, 503, "catalog still loading")
		return
	}

	var params planner.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if params.TargetItemID == "" {
		writeError(w, 400, "target_item_id is required")
		return
	}
	if params.Mode == "" {
		params.Mode = planner.ParseMode(s.cfg.DefaultQuantityMode)
	}
	// Stored inventory kicks in when the client didn't send a snapshot.
	if params.UseInventory && params.Inventory == nil {
		params.Inventory = s.db.LoadInventory()
	}

	plan, err := pl.BuildPlan(params)
	if err != nil {
		writeError(w, 422, err.Error())
		return
	}

	s.db.InsertPlanHistory(params.TargetItemID, cat.ItemName(params.TargetItemID),
		params.Quantity, string(params.Mode), len(plan.Raw), len(plan.Crafts))

	writeJSON(w, plan)
}

func (s *Server) handleGetPlanHistory(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.HistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	records := s.db.GetPlanHistory(limit)
	if records == nil {
		records = []db.PlanRecord{}
	}
	writeJSON(w, records)
}

func (s *Server) handleGetInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.db.LoadInventory())
}

func (s *Server) handleReplaceInventory(w http.ResponseWriter, r *http.Request) {
	var inv map[string]int
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if err := s.db.ReplaceInventory(inv); err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, s.db.LoadInventory())
}

func (s *Server) handleClearInventory(w http.ResponseWriter, r *http.Request) {
	if err := s.db.ClearInventory(); err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, map[string]bool{"cleared": true})
}

func (s *Server) handleSetInventoryCount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	id := r.PathValue("id")
	if err := s.db.SetInventoryCount(id, body.Qty); err != nil {
		writeError(w, 400, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"item_id": id, "qty": body.Qty})
}

func (s *Server) handleCatalogReload(w http.ResponseWriter, r *http.Request) {
	v, err, shared := s.reload.Do("catalog", func() (interface{}, error) {
		cat, err := s.loadCatalog()
		if err != nil {
			return nil, err
		}
		s.SetCatalog(cat)
		return cat, nil
	})
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	cat := v.(*catalog.Catalog)
	logger.Info("API", fmt.Sprintf("Catalog reloaded: %d items, %d recipes", len(cat.ItemsByID), len(cat.RecipesByID)))

	writeJSON(w, map[string]interface{}{
		"items":   len(cat.ItemsByID),
		"recipes": len(cat.RecipesByID),
		"shared":  shared,
	})
}

// loadCatalog loads from the configured path when set, otherwise probes the
// data directory candidates.
func (s *Server) loadCatalog() (*catalog.Catalog, error) {
	if s.cfg.CatalogPath != "" {
		path := s.cfg.CatalogPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dataDir, path)
		}
		return catalog.LoadFile(path)
	}
	return catalog.Load(s.dataDir, s.cfg.CatalogURL)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.cfg)
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, 400, "invalid json")
		return
	}

	if v, ok := patch["catalog_path"]; ok {
		json.Unmarshal(v, &s.cfg.CatalogPath)
	}
	if v, ok := patch["catalog_url"]; ok {
		json.Unmarshal(v, &s.cfg.CatalogURL)
	}
	if v, ok := patch["default_quantity_mode"]; ok {
		json.Unmarshal(v, &s.cfg.DefaultQuantityMode)
	}
	if v, ok := patch["use_inventory"]; ok {
		json.Unmarshal(v, &s.cfg.UseInventory)
	}
	if v, ok := patch["max_search_results"]; ok {
		json.Unmarshal(v, &s.cfg.MaxSearchResults)
	}
	if v, ok := patch["history_limit"]; ok {
		json.Unmarshal(v, &s.cfg.HistoryLimit)
	}

	if err := s.db.SaveConfig(s.cfg); err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, s.cfg)
}
