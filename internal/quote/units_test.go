package quote

import "testing"

func TestResolveQuantityAliases(t *testing.T) {
	cases := []struct {
		name string
		unit string
		form FormData
		want float64
	}{
		{"camelCase linear feet", "linear_foot", FormData{"linearFeet": 30.0}, 30},
		{"snake_case linear feet", "linear_foot", FormData{"linear_feet": 12.0}, 12},
		{"first alias wins", "linear_foot", FormData{"linearFeet": 30.0, "feet": 99.0}, 30},
		{"square feet", "sqft", FormData{"square_feet": 450.0}, 450},
		{"days via rentalDays", "days", FormData{"rentalDays": 3.0}, 3},
		{"units via count", "units", FormData{"count": 4.0}, 4},
		{"unknown unit as field", "panels", FormData{"panels": 6.0}, 6},
		{"no matching field", "linear_foot", FormData{"sqft": 200.0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveQuantity(tc.form, tc.unit); got != tc.want {
				t.Fatalf("ResolveQuantity(%q) = %v, want %v", tc.unit, got, tc.want)
			}
		})
	}
}
