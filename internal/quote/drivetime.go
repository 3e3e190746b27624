package quote

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/bjods/cazno-quote-api/internal/distance"
)

// driveTimeCost prices a resolved distance/duration pair under the configured
// policy. The free-radius check runs before the max-distance cutoff, so a
// nearby address stays free even under a misconfigured policy where
// maxDistance < freeRadius. Both zero-cost outcomes are distinguished by
// WithinFreeRadius.
func driveTimeCost(dist, duration float64, pricing DriveTimePricing) DriveTimeCost {
	dt := DriveTimeCost{Distance: dist, Duration: duration}

	if pricing.FreeRadius > 0 && dist <= pricing.FreeRadius {
		dt.WithinFreeRadius = true
		dt.Description = fmt.Sprintf("free travel within %s miles", formatQuantity(pricing.FreeRadius))
		return dt
	}
	if pricing.MaxDistance > 0 && dist > pricing.MaxDistance {
		dt.Description = fmt.Sprintf("service unavailable beyond %s miles", formatQuantity(pricing.MaxDistance))
		return dt
	}

	switch pricing.Type {
	case DriveTimePerMile:
		billable := dist
		if pricing.FreeRadius > 0 {
			billable = dist - pricing.FreeRadius
			if billable < 0 {
				billable = 0
			}
		}
		dt.Cost = roundCents(billable * pricing.Rate)
		dt.Description = fmt.Sprintf("travel charge (%s billable miles)", formatQuantity(billable))
	case DriveTimePerMinute:
		dt.Cost = roundCents(duration * pricing.Rate)
		dt.Description = fmt.Sprintf("travel charge (%s minutes)", formatQuantity(duration))
	case DriveTimeTiered:
		for _, tier := range pricing.Tiers {
			if dist < tier.MinDistance {
				continue
			}
			if tier.MaxDistance > 0 && dist > tier.MaxDistance {
				continue
			}
			dt.Cost = roundCents(tier.Rate)
			dt.Description = fmt.Sprintf("travel charge (%s miles)", formatQuantity(dist))
			break
		}
		if dt.Description == "" {
			// A distance in a gap between tiers charges nothing.
			dt.Description = "no travel charge"
		}
	}
	return dt
}

// driveTime resolves the customer address and prices the trip from the yard.
// Every failure path degrades to nil so the quote simply omits the surcharge:
// drive time disabled, no yard address, blank customer address, missing
// provider, lookup error, or a non-OK lookup status.
func (e *Engine) driveTime(ctx context.Context, form FormData, cfg *DriveTimeConfig) *DriveTimeCost {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	origin := strings.TrimSpace(cfg.YardAddress)
	if origin == "" {
		return nil
	}
	destination := form.GetString(cfg.AddressField)
	if destination == "" {
		return nil
	}
	if e.Distance == nil {
		return nil
	}
	res, err := e.Distance.Distance(ctx, origin, destination)
	if err != nil {
		e.logger().Warn().Err(err).Msg("distance lookup failed")
		return nil
	}
	if res.Status != distance.StatusOK {
		e.logger().Debug().Str("status", res.Status).Msg("distance lookup returned no route")
		return nil
	}
	dt := driveTimeCost(res.DistanceMiles, res.DurationMinutes, cfg.Pricing)
	return &dt
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
