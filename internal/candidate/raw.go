package candidate

import (
	"math"
	"strconv"
	"strings"

	"trini/internal/genre"
)

// Raw is an undecoded movie record.
type Raw map[string]any

// String returns the first non-empty string-like value under keys.
func (r Raw) String(keys ...string) string {
	for _, key := range keys {
		if s := stringValue(r[key]); s != "" {
			return s
		}
	}
	return ""
}

// Float returns the first finite numeric value under keys.
func (r Raw) Float(keys ...string) (float64, bool) {
	for _, key := range keys {
		if f, ok := floatValue(r[key]); ok {
			return f, true
		}
	}
	return 0, false
}

// Int returns the first numeric value under keys truncated to an int.
func (r Raw) Int(keys ...string) int {
	if f, ok := r.Float(keys...); ok {
		return int(f)
	}
	return 0
}

// GenreCodes reads genre ids from the first populated genre field. Entries
// may be numbers, digit strings, genre names, or {id,name} objects.
func (r Raw) GenreCodes(table *genre.Table) []genre.Code {
	for _, key := range []string{"genre_ids", "genreIds", "genres"} {
		list, ok := r[key].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		var out []genre.Code
		seen := make(map[genre.Code]struct{}, len(list))
		for _, entry := range list {
			code, ok := genreEntry(entry, table)
			if !ok {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// completeness counts non-empty fields; used to pick between duplicates.
func (r Raw) completeness() int {
	n := 0
	for _, v := range r {
		if !isEmpty(v) {
			n++
		}
	}
	return n
}

func genreEntry(entry any, table *genre.Table) (genre.Code, bool) {
	switch v := entry.(type) {
	case map[string]any:
		if id, ok := floatValue(v["id"]); ok && id > 0 {
			return genre.Code(int(id)), true
		}
		if name, ok := v["name"].(string); ok && table != nil {
			return table.Lookup(name)
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if id, err := strconv.Atoi(trimmed); err == nil && id > 0 {
			return genre.Code(id), true
		}
		if table != nil {
			return table.Lookup(trimmed)
		}
	default:
		if id, ok := floatValue(v); ok && id > 0 && id == math.Trunc(id) {
			return genre.Code(int(id)), true
		}
	}
	return 0, false
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return ""
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

func floatValue(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case float64:
		return x == 0
	case int:
		return x == 0
	case bool:
		return !x
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		return false
	}
}
