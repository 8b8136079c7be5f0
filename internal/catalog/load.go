package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"craftcalc/internal/logger"
	"gopkg.in/yaml.v3"
)

// candidateFiles are the file names Load probes inside the data directory,
// in order. The scraper emits catalog.json; hand-maintained catalogs may be
// YAML.
var candidateFiles = []string{"catalog.json", "catalog.yaml", "catalog.yml", "data.json"}

// LoadFile reads and normalizes one catalog document. The format follows
// the file extension: .yaml/.yml decode as YAML, everything else as JSON.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	doc := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filepath.Base(path), err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filepath.Base(path), err)
		}
	}

	cat, err := Normalize(doc)
	if err != nil {
		return nil, err
	}

	logger.Section("Catalog Statistics")
	logger.Stats("Items", len(cat.ItemsByID))
	logger.Stats("Recipes", len(cat.RecipesByID))
	logger.Stats("Craftable", len(cat.OutputIndex))
	return cat, nil
}

// Load finds the catalog file in dataDir and loads it. When no file exists
// and url is non-empty, the catalog is downloaded first.
func Load(dataDir, url string) (*Catalog, error) {
	for _, name := range candidateFiles {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			logger.Info("Catalog", fmt.Sprintf("Loading %s", name))
			return LoadFile(path)
		}
	}

	if url == "" {
		return nil, fmt.Errorf("no catalog file in %s (tried %s)", dataDir, strings.Join(candidateFiles, ", "))
	}

	path := filepath.Join(dataDir, candidateFiles[0])
	logger.Info("Catalog", "Downloading catalog data...")
	if err := downloadFile(path, url); err != nil {
		return nil, fmt.Errorf("download catalog: %w", err)
	}
	return LoadFile(path)
}

func downloadFile(dst, url string) error {
	os.MkdirAll(filepath.Dir(dst), 0755)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, resp.Body)
	return err
}
