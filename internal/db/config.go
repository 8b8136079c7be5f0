package db

import (
	"strconv"

	"craftcalc/internal/config"
)

// LoadConfig reads config from SQLite. If empty, returns defaults.
func (d *DB) LoadConfig() *config.Config {
	cfg := config.Default()

	rows, err := d.sql.Query("SELECT key, value FROM config")
	if err != nil {
		return cfg
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var k, v string
		rows.Scan(&k, &v)
		m[k] = v
	}
	if len(m) == 0 {
		return cfg
	}

	if v, ok := m["catalog_path"]; ok {
		cfg.CatalogPath = v
	}
	if v, ok := m["catalog_url"]; ok {
		cfg.CatalogURL = v
	}
	if v, ok := m["default_quantity_mode"]; ok {
		cfg.DefaultQuantityMode = v
	}
	if v, ok := m["use_inventory"]; ok {
		cfg.UseInventory, _ = strconv.ParseBool(v)
	}
	if v, ok := m["max_search_results"]; ok {
		cfg.MaxSearchResults, _ = strconv.Atoi(v)
	}
	if v, ok := m["history_limit"]; ok {
		cfg.HistoryLimit, _ = strconv.Atoi(v)
	}
	return cfg
}

// SaveConfig writes config to SQLite (upsert all fields).
func (d *DB) SaveConfig(cfg *config.Config) error {
	pairs := map[string]string{
		"catalog_path":          cfg.CatalogPath,
		"catalog_url":           cfg.CatalogURL,
		"default_quantity_mode": cfg.DefaultQuantityMode,
		"use_inventory":         strconv.FormatBool(cfg.UseInventory),
		"max_search_results":    strconv.Itoa(cfg.MaxSearchResults),
		"history_limit":         strconv.Itoa(cfg.HistoryLimit),
	}

	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for k, v := range pairs {
		if _, err := tx.Exec(`
			INSERT INTO config (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}
