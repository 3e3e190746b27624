package distance

import (
	"context"
	"errors"

	"github.com/bjods/cazno-quote-api/internal/resilience"
)

// Guard wraps a Provider with a circuit breaker. While the circuit is open
// lookups short-circuit to an ERROR status, so quotes degrade to "no
// surcharge" instead of stalling on a failing upstream.
type Guard struct {
	Inner   Provider
	Breaker *resilience.Breaker
}

// Distance consults the breaker before delegating and reports the outcome.
func (g Guard) Distance(ctx context.Context, origin, destination string) (Result, error) {
	if g.Inner == nil {
		return Result{Status: StatusError}, errors.New("distance: guard has no inner provider")
	}
	if g.Breaker == nil {
		return g.Inner.Distance(ctx, origin, destination)
	}
	if !g.Breaker.Allow(ctx) {
		return Result{Status: StatusError}, nil
	}
	res, err := g.Inner.Distance(ctx, origin, destination)
	g.Breaker.Report(ctx, err == nil)
	return res, err
}
