package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"craftcalc/internal/catalog"
	"craftcalc/internal/config"
	"craftcalc/internal/db"
	"craftcalc/internal/planner"
)

// Server is the HTTP API server that connects the catalog, planner, and database.
type Server struct {
	cfg     *config.Config
	db      *db.DB
	dataDir string

	mu      sync.RWMutex
	cat     *catalog.Catalog
	planner *planner.Planner
	ready   bool

	// Coalesces concurrent catalog reload requests.
	reload singleflight.Group
}

// NewServer creates a Server with the given config, database, and data directory.
func NewServer(cfg *config.Config, database *db.DB, dataDir string) *Server {
	return &Server{
		cfg:     cfg,
		db:      database,
		dataDir: dataDir,
	}
}

// SetCatalog is called when catalog data finishes loading.
func (s *Server) SetCatalog(cat *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat = cat
	s.planner = planner.New(cat)
	s.ready = true
}

// catalogSnapshot returns the current catalog and planner under the read lock.
func (s *Server) catalogSnapshot() (*catalog.Catalog, *planner.Planner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat, s.planner, s.ready
}

// Handler returns the HTTP handler with all API routes and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("POST /api/config", s.handleSetConfig)
	mux.HandleFunc("GET /api/items", s.handleSearchItems)
	mux.HandleFunc("GET /api/items/{id}", s.handleGetItem)
	mux.HandleFunc("GET /api/recipes/{id}", s.handleGetRecipe)
	mux.HandleFunc("POST /api/plan", s.handlePlan)
	mux.HandleFunc("GET /api/plans", s.handleGetPlanHistory)
	mux.HandleFunc("GET /api/inventory", s.handleGetInventory)
	mux.HandleFunc("PUT /api/inventory", s.handleReplaceInventory)
	mux.HandleFunc("DELETE /api/inventory", s.handleClearInventory)
	mux.HandleFunc("PUT /api/inventory/{id}", s.handleSetInventoryCount)
	mux.HandleFunc("POST /api/catalog/reload", s.handleCatalogReload)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
