package quote

import (
	"math"
	"strconv"
	"strings"
)

// FormData is the flat, untrusted map of in-progress form answers supplied by
// the widget UI. Values arrive as whatever the input component produced
// (string, number, boolean or list); the accessors coerce defensively so the
// engine never fails on a half-completed or badly typed form.
type FormData map[string]any

// Has reports whether the field is present with a non-nil value.
func (f FormData) Has(field string) bool {
	v, ok := f[field]
	return ok && v != nil
}

// GetNumber coerces the field to a float64. Non-numeric, NaN and infinite
// values resolve to 0.
func (f FormData) GetNumber(field string) float64 {
	switch v := f[field].(type) {
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(parsed)
	default:
		return 0
	}
}

// GetString coerces the field to a trimmed string. Multi-select inputs submit
// lists; the first entry is taken, matching how the form wizard stores a
// single selection.
func (f FormData) GetString(field string) string {
	switch v := f[field].(type) {
	case string:
		return strings.TrimSpace(v)
	case []string:
		if len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
