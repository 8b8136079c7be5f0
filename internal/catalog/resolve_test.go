package catalog

import (
	"reflect"
	"testing"
)

func TestOutputItemID_DirectFields(t *testing.T) {
	cases := []struct {
		name string
		rec  record
		want string
	}{
		{"string output", record{"output": "42"}, "42"},
		{"numeric output", record{"output": float64(42)}, "42"},
		{"result field", record{"result": "axe"}, "axe"},
		{"output object", record{"outputItem": map[string]any{"itemId": "7"}}, "7"},
		{"snake case", record{"output_item_id": "9"}, "9"},
	}
	for _, tc := range cases {
		got, ok := outputItemID(tc.rec)
		if !ok || got != tc.want {
			t.Errorf("%s: outputItemID = %q/%v, want %q", tc.name, got, ok, tc.want)
		}
	}
}

func TestOutputItemID_NestedProduct(t *testing.T) {
	rec := record{"product": map[string]any{"itemId": "13", "amount": float64(2)}}
	got, ok := outputItemID(rec)
	if !ok || got != "13" {
		t.Errorf("outputItemID = %q/%v, want 13", got, ok)
	}

	rec = record{"produces": map[string]any{"id": float64(8)}}
	got, ok = outputItemID(rec)
	if !ok || got != "8" {
		t.Errorf("outputItemID = %q/%v, want 8", got, ok)
	}
}

func TestOutputItemID_Unresolvable(t *testing.T) {
	for _, rec := range []record{{}, {"station": "Forge"}, {"product": map[string]any{"weird": true}}} {
		if got, ok := outputItemID(rec); ok {
			t.Errorf("outputItemID(%v) = %q, want unresolved", rec, got)
		}
	}
}

func TestOutputQty(t *testing.T) {
	cases := []struct {
		name     string
		rec      record
		want     int
		wantSane bool
	}{
		{"default", record{}, 1, true},
		{"plain qty", record{"outputQty": float64(3)}, 3, true},
		{"smallest sane wins", record{"qty": float64(100), "amount": float64(4)}, 4, true},
		{"row id ignored for sane candidate", record{"count": float64(98765), "quantity": float64(25)}, 25, true},
		{"no sane candidate keeps raw minimum", record{"qty": float64(900), "amount": float64(700)}, 700, false},
		{"absurd collapses to one", record{"qty": float64(99999)}, 1, false},
		{"nested product qty", record{"product": map[string]any{"amount": float64(5)}}, 5, true},
		{"negative ignored", record{"qty": float64(-3)}, 1, true},
	}
	for _, tc := range cases {
		got, sane := outputQty(tc.rec)
		if got != tc.want || sane != tc.wantSane {
			t.Errorf("%s: outputQty = %d/%v, want %d/%v", tc.name, got, sane, tc.want, tc.wantSane)
		}
	}
}

func TestNpcAndStation(t *testing.T) {
	if got := npcOf(record{"npc": "Emily"}); got != "Emily" {
		t.Errorf("npc = %q", got)
	}
	if got := npcOf(record{"crafter": map[string]any{"name": "Oswald"}}); got != "Oswald" {
		t.Errorf("npc from object = %q", got)
	}
	if got := npcOf(record{}); got != UnknownField {
		t.Errorf("missing npc = %q, want empty sentinel", got)
	}
	if got := stationOf(record{"workstation": "Forge"}); got != "Forge" {
		t.Errorf("station = %q", got)
	}
	if got := stationOf(record{"station": map[string]any{"name": "Carpentry Bench"}}); got != "Carpentry Bench" {
		t.Errorf("station from object = %q", got)
	}
	if got := stationOf(record{"station": float64(12)}); got != UnknownField {
		t.Errorf("non-string station = %q, want empty sentinel", got)
	}
}

func TestInputs_SemanticIDPreferredOverBareID(t *testing.T) {
	rec := record{"ingredients": []any{
		map[string]any{"id": float64(5511), "ingredientId": "wood", "amount": float64(4)},
	}}
	got := inputsOf(rec)
	want := []RecipeInput{{ItemID: "wood", Qty: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("inputs = %v, want %v", got, want)
	}
}

func TestInputs_BareIDAsLastResort(t *testing.T) {
	rec := record{"materials": []any{
		map[string]any{"id": "stone", "count": float64(2)},
	}}
	got := inputsOf(rec)
	want := []RecipeInput{{ItemID: "stone", Qty: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("inputs = %v, want %v", got, want)
	}
}

func TestInputs_NestedContainer(t *testing.T) {
	rec := record{"cost": map[string]any{
		"items": []any{
			map[string]any{"item": "ore", "qty": float64(3)},
			map[string]any{"resource": map[string]any{"id": "coal"}, "required": float64(1)},
		},
	}}
	got := inputsOf(rec)
	want := []RecipeInput{{ItemID: "ore", Qty: 3}, {ItemID: "coal", Qty: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("inputs = %v, want %v", got, want)
	}
}

func TestInputs_DropUnresolvableEntries(t *testing.T) {
	rec := record{"inputs": []any{
		map[string]any{"qty": float64(3)},                  // no item id
		map[string]any{"item": "ore"},                      // no quantity
		map[string]any{"item": "ore", "qty": float64(-2)},  // negative
		map[string]any{"item": "wood", "qty": float64(2)},  // keeper
		"garbage",                                          // not a record
	}}
	got := inputsOf(rec)
	want := []RecipeInput{{ItemID: "wood", Qty: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("inputs = %v, want %v", got, want)
	}
}

func TestInputs_SaneQuantityPick(t *testing.T) {
	rec := record{"inputs": []any{
		map[string]any{"item": "ore", "value": float64(99999), "amount": float64(12)},
	}}
	got := inputsOf(rec)
	if len(got) != 1 || got[0].Qty != 12 {
		t.Errorf("inputs = %v, want qty 12", got)
	}
}

func TestToID(t *testing.T) {
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{"abc", "abc", true},
		{float64(42), "42", true},
		{float64(42.5), "42.5", true},
		{int(7), "7", true},
		{map[string]any{"slug": "iron-bar"}, "iron-bar", true},
		{map[string]any{"other": 1}, "", false},
		{nil, "", false},
		{"", "", false},
		{true, "", false},
	}
	for _, tc := range cases {
		got, ok := toID(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("toID(%v) = %q/%v, want %q/%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
