package config

// Config holds application settings (in-memory representation).
// Persistence is handled by the internal/db package.
type Config struct {
	// CatalogPath is the catalog file name inside the data directory, or an
	// absolute path. Empty means "probe the default candidates".
	CatalogPath string `json:"catalog_path"`
	// CatalogURL is fetched when no catalog file exists locally.
	CatalogURL string `json:"catalog_url"`

	DefaultQuantityMode string `json:"default_quantity_mode"` // items | crafts
	UseInventory        bool   `json:"use_inventory"`
	MaxSearchResults    int    `json:"max_search_results"`
	HistoryLimit        int    `json:"history_limit"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DefaultQuantityMode: "items",
		UseInventory:        true,
		MaxSearchResults:    200,
		HistoryLimit:        50,
	}
}
