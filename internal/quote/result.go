package quote

// AppliedModifier records one modifier that actually fired, in firing order.
// The list is the audit trail shown to the end user.
type AppliedModifier struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Operation   string  `json:"operation"`
}

// Breakdown itemises the computation for display. ModifierTotal is a
// display-only aggregate and is never used to derive FinalPrice.
type Breakdown struct {
	BaseAmount       float64 `json:"baseAmount"`
	BaseUnit         string  `json:"baseUnit"`
	BaseQuantity     float64 `json:"baseQuantity"`
	ModifierTotal    float64 `json:"modifierTotal"`
	Subtotal         float64 `json:"subtotal"`
	FinalPrice       float64 `json:"finalPrice"`
	MinChargeApplied bool    `json:"minChargeApplied"`
}

// PricingResult is the outcome of one quote computation. It is created fresh
// per call and never mutated after return; Breakdown.FinalPrice always equals
// FinalPrice.
type PricingResult struct {
	BasePrice  float64           `json:"basePrice"`
	Modifiers  []AppliedModifier `json:"modifiers"`
	FinalPrice float64           `json:"finalPrice"`
	Breakdown  Breakdown         `json:"breakdown"`
}

// DriveTimeCost is the intermediate distance surcharge. A zero cost with
// WithinFreeRadius set means free delivery; a zero cost without it means the
// address is out of range or no policy matched.
type DriveTimeCost struct {
	Distance         float64 `json:"distance"`
	Duration         float64 `json:"duration"`
	Cost             float64 `json:"cost"`
	Description      string  `json:"description"`
	WithinFreeRadius bool    `json:"withinFreeRadius"`
}
