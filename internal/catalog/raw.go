package catalog

import (
	"math"
	"strconv"
)

// record is a generic key-value view over one raw catalog entry. Scraped
// data arrives as decoded JSON or YAML, so values are any of string, number,
// bool, []any or map[string]any.
type record map[string]any

func asRecord(v any) (record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return record(m), ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// first returns the first present, non-nil value among keys.
func (r record) first(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// asInt converts JSON/YAML numeric shapes (and numeric strings) to an int,
// truncating fractions.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(math.Floor(n)), true
	case float32:
		return int(math.Floor(float64(n))), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(math.Floor(f)), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// clampInt mirrors the quantity clamp applied at every numeric boundary:
// floor, and anything unparseable or negative becomes 0.
func clampInt(v any) int {
	n, ok := asInt(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// numberToID renders a numeric id without a fractional part, so JSON's
// float64 decoding of 42 still yields "42".
func numberToID(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toID coerces an id-like value to its canonical string form. Objects are
// searched for the usual id-bearing fields.
func toID(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		if x == "" {
			return "", false
		}
		return x, true
	case float64:
		return numberToID(x), true
	case float32:
		return numberToID(float64(x)), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case map[string]any:
		if cand, ok := record(x).first("itemId", "item_id", "id", "key", "slug", "nameId"); ok {
			return toID(cand)
		}
		return "", false
	default:
		return "", false
	}
}

// stringOrName resolves a value that is either a plain string or an object
// carrying a name field. Anything else yields the empty sentinel.
func stringOrName(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case map[string]any:
		if s, ok := x["name"].(string); ok {
			return s
		}
	}
	return UnknownField
}
