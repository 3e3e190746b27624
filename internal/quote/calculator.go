package quote

// Modifier types decide how applicability is checked.
const (
	ModifierPerUnit     = "perUnit"
	ModifierConditional = "conditional"
	ModifierThreshold   = "threshold"
)

// Calculation operations against the running price.
const (
	OperationAdd      = "add"
	OperationMultiply = "multiply"
	OperationSubtract = "subtract"
)

// Comparison conditions for conditional and threshold modifiers.
const (
	ConditionEquals             = "equals"
	ConditionGreaterThan        = "greaterThan"
	ConditionLessThan           = "lessThan"
	ConditionGreaterThanOrEqual = "greaterThanOrEqual"
	ConditionLessThanOrEqual    = "lessThanOrEqual"
)

// Drive-time pricing policies.
const (
	DriveTimePerMile   = "perMile"
	DriveTimePerMinute = "perMinute"
	DriveTimeTiered    = "tiered"
)

// Display formats.
const (
	DisplayFixed   = "fixed"
	DisplayRange   = "range"
	DisplayMinimum = "minimum"
)

// DriveTimeModifierID identifies the synthetic modifier appended when a
// drive-time surcharge applies.
const DriveTimeModifierID = "drive_time"

// Calculator is the business-authored pricing configuration for one widget.
// It is treated as trusted but may be partially specified: the optional
// sections simply disable their feature when absent.
type Calculator struct {
	BasePricing BasePricing      `json:"basePricing" validate:"required"`
	Modifiers   []Modifier       `json:"modifiers,omitempty"`
	DriveTime   *DriveTimeConfig `json:"driveTime,omitempty"`
	Display     DisplayConfig    `json:"display"`
}

// BasePricing maps the selected service to its per-unit rate.
type BasePricing struct {
	ServiceField string                  `json:"service_field" validate:"required"`
	Prices       map[string]ServicePrice `json:"prices" validate:"required"`
}

// ServicePrice is the per-unit rate for one service. MinCharge of zero means
// no floor.
type ServicePrice struct {
	Amount    float64 `json:"amount"`
	Unit      string  `json:"unit"`
	MinCharge float64 `json:"minCharge,omitempty"`
}

// Modifier is a stateless rule evaluated against the running price. Order in
// the Modifiers slice is semantically significant and preserved exactly as
// authored.
type Modifier struct {
	ID          string      `json:"id"`
	Field       string      `json:"field"`
	Type        string      `json:"type"`
	Condition   string      `json:"condition,omitempty"`
	Value       *float64    `json:"value,omitempty"`
	Calculation Calculation `json:"calculation"`
}

// Calculation describes the price adjustment once a modifier applies.
type Calculation struct {
	Operation string  `json:"operation"`
	Amount    float64 `json:"amount"`
	PerUnit   bool    `json:"perUnit,omitempty"`
}

// DriveTimeConfig enables the distance surcharge between the business yard
// and the customer address.
type DriveTimeConfig struct {
	Enabled      bool             `json:"enabled"`
	YardAddress  string           `json:"yardAddress"`
	AddressField string           `json:"addressField"`
	Pricing      DriveTimePricing `json:"pricing"`
}

// DriveTimePricing selects the surcharge policy. FreeRadius and MaxDistance
// of zero mean unset.
type DriveTimePricing struct {
	Type        string          `json:"type"`
	Rate        float64         `json:"rate,omitempty"`
	Tiers       []DriveTimeTier `json:"tiers,omitempty"`
	FreeRadius  float64         `json:"freeRadius,omitempty"`
	MaxDistance float64         `json:"maxDistance,omitempty"`
}

// DriveTimeTier charges a flat rate for distances inside its band. A
// MaxDistance of zero leaves the tier open-ended.
type DriveTimeTier struct {
	MinDistance float64 `json:"minDistance"`
	MaxDistance float64 `json:"maxDistance,omitempty"`
	Rate        float64 `json:"rate"`
}

// DisplayConfig controls how the final price is presented.
type DisplayConfig struct {
	Format          string       `json:"format"`
	RangeMultiplier float64      `json:"rangeMultiplier,omitempty"`
	RangeConfig     *RangeConfig `json:"rangeConfig,omitempty"`
	ShowCalculation bool         `json:"showCalculation,omitempty"`
}

// RangeConfig overrides how the range upper bound is derived.
type RangeConfig struct {
	Multiplier float64 `json:"multiplier"`
}
