package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"craftcalc/internal/api"
	"craftcalc/internal/catalog"
	"craftcalc/internal/db"
	"craftcalc/internal/logger"
)

var version = "dev"

func main() {
	port := flag.Int("port", 13380, "HTTP server port")
	dataFlag := flag.String("data", "", "data directory (default ./data)")
	flag.Parse()

	logger.Banner(version)

	dataDir := *dataFlag
	if dataDir == "" {
		wd, _ := os.Getwd()
		dataDir = filepath.Join(wd, "data")
	}
	os.MkdirAll(dataDir, 0755)

	database, err := db.Open(dataDir)
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	cfg := database.LoadConfig()

	srv := api.NewServer(cfg, database, dataDir)

	// Load catalog in background
	go func() {
		cat, err := catalog.Load(dataDir, cfg.CatalogURL)
		if err != nil {
			logger.Error("Catalog", fmt.Sprintf("Load failed: %v", err))
			return
		}
		srv.SetCatalog(cat)
		logger.Success("Catalog", "Planner ready")
	}()

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}
