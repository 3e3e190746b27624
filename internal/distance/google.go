package distance

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

const metersPerMile = 1609.344

// Google resolves distances through the Google Maps Directions API.
type Google struct {
	client *maps.Client
}

// NewGoogle creates a Directions-backed provider with the given API key.
func NewGoogle(apiKey string) (*Google, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &Google{client: client}, nil
}

// Distance requests a driving route and converts the first leg to miles and
// minutes. API failures map to an ERROR status, an empty route to
// ZERO_RESULTS.
func (g *Google) Distance(ctx context.Context, origin, destination string) (Result, error) {
	req := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
	}
	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return Result{Status: StatusError}, fmt.Errorf("maps directions: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Result{Status: StatusZeroResults}, nil
	}
	leg := routes[0].Legs[0]
	return Result{
		DistanceMiles:   float64(leg.Distance.Meters) / metersPerMile,
		DurationMinutes: leg.Duration.Minutes(),
		Status:          StatusOK,
	}, nil
}
