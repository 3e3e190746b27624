package distance

import (
	"context"
	"errors"
	"time"

	"github.com/bjods/cazno-quote-api/internal/obs"
)

// Instrumented records lookup counts and latency for the wrapped provider.
type Instrumented struct {
	Inner Provider
	// Name labels the metrics series, e.g. "google" or "mock".
	Name string
}

// Distance delegates to the inner provider and observes the outcome.
func (i Instrumented) Distance(ctx context.Context, origin, destination string) (Result, error) {
	if i.Inner == nil {
		return Result{Status: StatusError}, errors.New("distance: instrumented has no inner provider")
	}
	start := time.Now()
	res, err := i.Inner.Distance(ctx, origin, destination)
	status := res.Status
	if err != nil && status == "" {
		status = StatusError
	}
	if obs.DistanceLookupsTotal != nil {
		obs.DistanceLookupsTotal.WithLabelValues(i.Name, status).Inc()
	}
	if obs.DistanceLookupLatency != nil {
		obs.DistanceLookupLatency.WithLabelValues(i.Name).Observe(obs.DurationMillis(time.Since(start)))
	}
	return res, err
}
