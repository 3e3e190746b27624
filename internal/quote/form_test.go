package quote

import (
	"math"
	"testing"
)

func TestGetNumberCoercions(t *testing.T) {
	form := FormData{
		"float":    42.5,
		"int":      int(7),
		"int64":    int64(9),
		"boolTrue": true,
		"boolOff":  false,
		"numeric":  " 12.5 ",
		"junk":     "not a number",
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
		"nilVal":   nil,
	}
	cases := []struct {
		field string
		want  float64
	}{
		{"float", 42.5},
		{"int", 7},
		{"int64", 9},
		{"boolTrue", 1},
		{"boolOff", 0},
		{"numeric", 12.5},
		{"junk", 0},
		{"nan", 0},
		{"inf", 0},
		{"nilVal", 0},
		{"missing", 0},
	}
	for _, tc := range cases {
		if got := form.GetNumber(tc.field); got != tc.want {
			t.Fatalf("GetNumber(%q) = %v, want %v", tc.field, got, tc.want)
		}
	}
}

func TestGetStringListsTakeFirst(t *testing.T) {
	form := FormData{
		"single":  "  wood_fence ",
		"strings": []string{"chain_link", "vinyl"},
		"anys":    []any{"decking", "railing"},
		"empty":   []string{},
		"number":  12,
	}
	if got := form.GetString("single"); got != "wood_fence" {
		t.Fatalf("expected trimmed string, got %q", got)
	}
	if got := form.GetString("strings"); got != "chain_link" {
		t.Fatalf("expected first list entry, got %q", got)
	}
	if got := form.GetString("anys"); got != "decking" {
		t.Fatalf("expected first any entry, got %q", got)
	}
	if got := form.GetString("empty"); got != "" {
		t.Fatalf("expected empty string for empty list, got %q", got)
	}
	if got := form.GetString("number"); got != "" {
		t.Fatalf("expected empty string for non-string, got %q", got)
	}
}

func TestHasTreatsNilAsAbsent(t *testing.T) {
	form := FormData{"present": 0, "nilVal": nil}
	if !form.Has("present") {
		t.Fatal("expected present field to report true")
	}
	if form.Has("nilVal") {
		t.Fatal("expected nil value to report false")
	}
	if form.Has("missing") {
		t.Fatal("expected missing field to report false")
	}
}
