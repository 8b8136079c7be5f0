package db

import (
	"testing"

	"craftcalc/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestInventoryRoundtrip(t *testing.T) {
	d := openTestDB(t)

	if err := d.SetInventoryCount("42", 10); err != nil {
		t.Fatalf("SetInventoryCount: %v", err)
	}
	if err := d.SetInventoryCount("42", 7); err != nil {
		t.Fatalf("SetInventoryCount update: %v", err)
	}
	if err := d.SetInventoryCount("10", 3); err != nil {
		t.Fatalf("SetInventoryCount: %v", err)
	}

	inv := d.LoadInventory()
	if len(inv) != 2 || inv["42"] != 7 || inv["10"] != 3 {
		t.Errorf("unexpected inventory: %v", inv)
	}
}

func TestSetInventoryCountZeroDeletes(t *testing.T) {
	d := openTestDB(t)

	d.SetInventoryCount("42", 5)
	if err := d.SetInventoryCount("42", 0); err != nil {
		t.Fatalf("SetInventoryCount zero: %v", err)
	}
	if inv := d.LoadInventory(); len(inv) != 0 {
		t.Errorf("expected empty inventory, got %v", inv)
	}
}

func TestSetInventoryCountEmptyID(t *testing.T) {
	d := openTestDB(t)
	if err := d.SetInventoryCount("", 5); err == nil {
		t.Error("expected error for empty item id")
	}
}

func TestReplaceInventory(t *testing.T) {
	d := openTestDB(t)

	d.SetInventoryCount("old", 1)
	err := d.ReplaceInventory(map[string]int{"a": 2, "b": 4, "skip": 0})
	if err != nil {
		t.Fatalf("ReplaceInventory: %v", err)
	}

	inv := d.LoadInventory()
	if len(inv) != 2 || inv["a"] != 2 || inv["b"] != 4 {
		t.Errorf("unexpected inventory after replace: %v", inv)
	}
	if _, ok := inv["old"]; ok {
		t.Error("old entry survived replace")
	}
}

func TestClearInventory(t *testing.T) {
	d := openTestDB(t)

	d.SetInventoryCount("a", 1)
	d.SetInventoryCount("b", 2)
	if err := d.ClearInventory(); err != nil {
		t.Fatalf("ClearInventory: %v", err)
	}
	if inv := d.LoadInventory(); len(inv) != 0 {
		t.Errorf("expected empty inventory, got %v", inv)
	}
}

func TestConfigRoundtrip(t *testing.T) {
	d := openTestDB(t)

	// Empty DB returns defaults.
	cfg := d.LoadConfig()
	def := config.Default()
	if cfg.DefaultQuantityMode != def.DefaultQuantityMode || cfg.MaxSearchResults != def.MaxSearchResults {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	cfg.CatalogPath = "catalog.yaml"
	cfg.CatalogURL = "https://example.com/catalog.json"
	cfg.DefaultQuantityMode = "crafts"
	cfg.UseInventory = false
	cfg.MaxSearchResults = 25
	cfg.HistoryLimit = 10
	if err := d.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got := d.LoadConfig()
	if got.CatalogPath != "catalog.yaml" || got.CatalogURL != cfg.CatalogURL {
		t.Errorf("catalog settings not persisted: %+v", got)
	}
	if got.DefaultQuantityMode != "crafts" || got.UseInventory || got.MaxSearchResults != 25 || got.HistoryLimit != 10 {
		t.Errorf("unexpected loaded config: %+v", got)
	}
}

func TestPlanHistory(t *testing.T) {
	d := openTestDB(t)

	id1 := d.InsertPlanHistory("42", "Iron Bar", 5, "items", 1, 1)
	id2 := d.InsertPlanHistory("7", "Sword", 1, "crafts", 3, 2)
	if id1 == 0 || id2 == 0 {
		t.Fatalf("inserts failed: %d %d", id1, id2)
	}

	records := d.GetPlanHistory(10)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Newest first.
	if records[0].TargetItemID != "7" || records[1].TargetItemID != "42" {
		t.Errorf("unexpected order: %+v", records)
	}
	if records[0].RawCount != 3 || records[0].CraftCount != 2 || records[0].Mode != "crafts" {
		t.Errorf("unexpected record: %+v", records[0])
	}
	if records[1].Timestamp == "" {
		t.Error("timestamp not set")
	}
}

func TestPlanHistoryLimit(t *testing.T) {
	d := openTestDB(t)

	for i := 0; i < 5; i++ {
		d.InsertPlanHistory("1", "Thing", i+1, "items", 0, 1)
	}
	if got := len(d.GetPlanHistory(3)); got != 3 {
		t.Errorf("expected 3 records, got %d", got)
	}
	if got := len(d.GetPlanHistory(0)); got != 5 {
		t.Errorf("expected all records for zero limit, got %d", got)
	}
}

func TestClearPlanHistory(t *testing.T) {
	d := openTestDB(t)

	d.InsertPlanHistory("1", "Thing", 1, "items", 0, 1)
	if err := d.ClearPlanHistory(); err != nil {
		t.Fatalf("ClearPlanHistory: %v", err)
	}
	if records := d.GetPlanHistory(10); len(records) != 0 {
		t.Errorf("expected no records, got %v", records)
	}
}
