package distance

import (
	"context"
	"hash/fnv"
	"io"
	"math"
)

// Mock returns deterministic estimates derived from the address pair. Useful
// for development and tests where no Maps credentials are available: the same
// pair always yields the same distance.
type Mock struct{}

// Distance hashes the address pair into a stable 1-50 mile trip with a
// roughly proportional duration.
func (Mock) Distance(_ context.Context, origin, destination string) (Result, error) {
	h := fnv.New32a()
	_, _ = io.WriteString(h, origin)
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, destination)
	miles := float64(h.Sum32()%491)/10 + 1
	return Result{
		DistanceMiles:   miles,
		DurationMinutes: math.Round(miles * 1.8),
		Status:          StatusOK,
	}, nil
}
