package catalog

import "testing"

func searchCatalog() *Catalog {
	return New(
		map[string]*Item{
			"1": {ID: "1", Name: "Iron Bar"},
			"2": {ID: "2", Name: "Iron Ore"},
			"3": {ID: "3", Name: "Copper Bar"},
			"4": {ID: "4", Name: "Bandage"},
			"9": {ID: "9", Name: "Raw Hide"}, // not craftable
		},
		map[string]*Recipe{
			"r1": {ID: "r1", OutputItemID: "1"},
			"r3": {ID: "r3", OutputItemID: "3"},
			"r4": {ID: "r4", OutputItemID: "4"},
			"r2": {ID: "r2", OutputItemID: "2"},
		},
	)
}

func TestSearch_EmptyQueryListsAllCraftable(t *testing.T) {
	got := searchCatalog().Search("", 0)
	if len(got) != 4 {
		t.Fatalf("results = %d, want 4 (raw items excluded)", len(got))
	}
	if got[0].Name != "Bandage" {
		t.Errorf("first = %q, want name order", got[0].Name)
	}
}

func TestSearch_ExactBeatsPrefixBeatsSubstring(t *testing.T) {
	got := searchCatalog().Search("iron bar", 10)
	if len(got) == 0 || got[0].Name != "Iron Bar" {
		t.Fatalf("results = %+v, want Iron Bar first", got)
	}

	got = searchCatalog().Search("iron", 10)
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.Name != "Iron Bar" && r.Name != "Iron Ore" {
			t.Errorf("unexpected hit %q", r.Name)
		}
	}

	got = searchCatalog().Search("bar", 10)
	if len(got) != 2 {
		t.Fatalf("substring results = %d, want 2 (Iron Bar, Copper Bar)", len(got))
	}
}

func TestSearch_FuzzyRescuesTypos(t *testing.T) {
	got := searchCatalog().Search("bandege", 10)
	if len(got) == 0 || got[0].Name != "Bandage" {
		t.Fatalf("results = %+v, want fuzzy Bandage hit", got)
	}
}

func TestSearch_MatchesID(t *testing.T) {
	got := searchCatalog().Search("3", 10)
	found := false
	for _, r := range got {
		if r.ID == "3" {
			found = true
		}
	}
	if !found {
		t.Errorf("id substring match missing: %+v", got)
	}
}

func TestSearch_Limit(t *testing.T) {
	got := searchCatalog().Search("", 2)
	if len(got) != 2 {
		t.Errorf("results = %d, want limit 2", len(got))
	}
}
