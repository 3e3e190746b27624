package quote

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bjods/cazno-quote-api/internal/distance"
)

// Engine turns a pricing configuration plus a customer's in-progress form
// answers into a deterministic estimate. All computation is pure; the only
// I/O is the optional distance lookup in CalculatePrice.
type Engine struct {
	Distance distance.Provider
	Logger   *zerolog.Logger
}

var engineNopLogger = zerolog.Nop()

func (e *Engine) logger() *zerolog.Logger {
	if e == nil || e.Logger == nil {
		return &engineNopLogger
	}
	return e.Logger
}

// CalculatePriceSync computes the estimate without the drive-time step. It
// performs no I/O and never suspends, so it is safe on the live-feedback hot
// path.
func (e *Engine) CalculatePriceSync(form FormData, cfg Calculator) PricingResult {
	return compute(form, cfg, nil)
}

// CalculatePrice computes the authoritative estimate including the drive-time
// surcharge. Distance lookup failures degrade to no surcharge; the method
// itself never fails.
func (e *Engine) CalculatePrice(ctx context.Context, form FormData, cfg Calculator) PricingResult {
	return compute(form, cfg, e.driveTime(ctx, form, cfg.DriveTime))
}

// compute is the single computation both entry points share: base resolution,
// the modifier left fold, the optional drive-time entry, and the
// minimum-charge floor, in that order.
func compute(form FormData, cfg Calculator, dt *DriveTimeCost) PricingResult {
	service := form.GetString(cfg.BasePricing.ServiceField)
	price, ok := cfg.BasePricing.Prices[service]
	if service == "" || !ok {
		// A form mid-completion has no service selected yet. The caller
		// renders "no estimate yet", not a fault.
		return PricingResult{Modifiers: []AppliedModifier{}}
	}

	quantity := ResolveQuantity(form, price.Unit)
	basePrice := quantity * price.Amount

	// Left fold: each modifier sees the running output of all prior ones,
	// which makes configuration order load-bearing. Percentage surcharges
	// placed last apply to the fully loaded subtotal.
	current := basePrice
	applied := make([]AppliedModifier, 0, len(cfg.Modifiers)+1)
	var modifierTotal float64
	for _, m := range cfg.Modifiers {
		step := applyModifier(form, m, current, quantity)
		if !step.applied {
			continue
		}
		applied = append(applied, AppliedModifier{
			ID:          m.ID,
			Description: describeModifier(form, m),
			Amount:      step.amount,
			Operation:   m.Calculation.Operation,
		})
		switch m.Calculation.Operation {
		case OperationAdd:
			modifierTotal += step.amount
		case OperationSubtract:
			modifierTotal -= step.amount
		case OperationMultiply:
			// Report the equivalent dollar delta against the base price.
			modifierTotal += (step.amount - 1) * basePrice
		}
		current = step.newPrice
	}

	if dt != nil && dt.Cost > 0 {
		applied = append(applied, AppliedModifier{
			ID:          DriveTimeModifierID,
			Description: dt.Description,
			Amount:      dt.Cost,
			Operation:   OperationAdd,
		})
		modifierTotal += dt.Cost
		current += dt.Cost
	}

	if current < 0 {
		current = 0
	}
	subtotal := current

	final := current
	minChargeApplied := false
	if price.MinCharge > 0 && final < price.MinCharge {
		// Floor override, not an addend; the modifier trail keeps the
		// pre-floor figures for the audit view.
		final = price.MinCharge
		minChargeApplied = true
	}

	return PricingResult{
		BasePrice:  basePrice,
		Modifiers:  applied,
		FinalPrice: final,
		Breakdown: Breakdown{
			BaseAmount:       price.Amount,
			BaseUnit:         price.Unit,
			BaseQuantity:     quantity,
			ModifierTotal:    modifierTotal,
			Subtotal:         subtotal,
			FinalPrice:       final,
			MinChargeApplied: minChargeApplied,
		},
	}
}
