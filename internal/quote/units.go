package quote

// unitFields maps abstract pricing units to the form fields that may hold the
// quantity, in lookup order. Widgets built at different times named these
// fields inconsistently, so each unit carries the known variants.
var unitFields = map[string][]string{
	"linear_foot": {"linearFeet", "linear_feet", "feet"},
	"linear_feet": {"linearFeet", "linear_feet", "feet"},
	"sqft":        {"sqft", "square_feet", "area"},
	"square_feet": {"sqft", "square_feet", "area"},
	"days":        {"days", "rentalDays", "duration"},
	"units":       {"quantity", "count", "units"},
}

// ResolveQuantity extracts the numeric quantity for the given unit from the
// form. The first candidate field present wins; a unit without an alias entry
// is tried as a field name itself. Unresolvable quantities are 0, never an
// error.
func ResolveQuantity(form FormData, unit string) float64 {
	fields, ok := unitFields[unit]
	if !ok {
		fields = []string{unit}
	}
	for _, field := range fields {
		if form.Has(field) {
			return form.GetNumber(field)
		}
	}
	return 0
}
