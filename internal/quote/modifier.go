package quote

import (
	"fmt"
	"strconv"
	"strings"
)

// modifierResult reports one evaluation step of the left fold. newPrice
// carries the running price forward whether or not the modifier applied.
type modifierResult struct {
	applied  bool
	newPrice float64
	amount   float64
}

// applyModifier evaluates a single modifier against the current running
// price. Unknown conditions and operations are configuration gaps, not
// faults: the modifier simply does not apply.
func applyModifier(form FormData, m Modifier, currentPrice, baseQuantity float64) modifierResult {
	if !modifierApplies(form, m) {
		return modifierResult{newPrice: currentPrice}
	}
	switch m.Calculation.Operation {
	case OperationAdd:
		amount := additiveAmount(form, m, baseQuantity)
		return modifierResult{applied: true, newPrice: currentPrice + amount, amount: amount}
	case OperationMultiply:
		// Amount records the factor itself, not a delta.
		return modifierResult{applied: true, newPrice: currentPrice * m.Calculation.Amount, amount: m.Calculation.Amount}
	case OperationSubtract:
		amount := additiveAmount(form, m, baseQuantity)
		next := currentPrice - amount
		if next < 0 {
			next = 0
		}
		return modifierResult{applied: true, newPrice: next, amount: amount}
	default:
		return modifierResult{newPrice: currentPrice}
	}
}

func modifierApplies(form FormData, m Modifier) bool {
	switch m.Type {
	case ModifierPerUnit:
		return form.GetNumber(m.Field) > 0
	case ModifierConditional, ModifierThreshold:
		if m.Condition == "" || m.Value == nil {
			return false
		}
		return compare(m.Condition, form.GetNumber(m.Field), *m.Value)
	default:
		return false
	}
}

// compare evaluates the condition with strict boundary semantics: greaterThan
// at exact equality does not hold, only the OrEqual variants do.
func compare(condition string, fieldValue, target float64) bool {
	switch condition {
	case ConditionEquals:
		return fieldValue == target
	case ConditionGreaterThan:
		return fieldValue > target
	case ConditionLessThan:
		return fieldValue < target
	case ConditionGreaterThanOrEqual:
		return fieldValue >= target
	case ConditionLessThanOrEqual:
		return fieldValue <= target
	default:
		return false
	}
}

// additiveAmount resolves the dollar amount for add and subtract operations.
// With perUnit set, the quantity is the raw field value for perUnit
// modifiers, the excess over the threshold for threshold modifiers, and the
// base quantity otherwise.
func additiveAmount(form FormData, m Modifier, baseQuantity float64) float64 {
	if !m.Calculation.PerUnit {
		return m.Calculation.Amount
	}
	quantity := baseQuantity
	switch m.Type {
	case ModifierPerUnit:
		quantity = form.GetNumber(m.Field)
	case ModifierThreshold:
		if m.Value != nil {
			quantity = form.GetNumber(m.Field) - *m.Value
			if quantity < 0 {
				quantity = 0
			}
		}
	}
	return quantity * m.Calculation.Amount
}

// describeModifier renders the user-facing audit line for a fired modifier.
// Cosmetic but deterministic for given inputs.
func describeModifier(form FormData, m Modifier) string {
	label := strings.ReplaceAll(m.ID, "_", " ")
	switch m.Type {
	case ModifierPerUnit, ModifierThreshold:
		return fmt.Sprintf("%s (%s)", label, formatQuantity(form.GetNumber(m.Field)))
	default:
		return label
	}
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
