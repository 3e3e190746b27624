package distance

import "context"

// Lookup statuses. Non-OK statuses let callers distinguish "no route" from a
// failing upstream without inspecting errors.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
	StatusError       = "ERROR"
)

// Result describes the driving estimate between two free-text addresses.
type Result struct {
	DistanceMiles   float64 `json:"distanceMiles"`
	DurationMinutes float64 `json:"durationMinutes"`
	Status          string  `json:"status"`
}

// Provider resolves a travel distance and duration between a fixed origin and
// a customer address. Implementations surface upstream failures through
// Status or an error return; they never panic. Repeated identical calls are
// idempotent but callers may re-issue them freely.
type Provider interface {
	Distance(ctx context.Context, origin, destination string) (Result, error)
}
