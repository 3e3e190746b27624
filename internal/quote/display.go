package quote

import (
	"fmt"
	"math"
	"strconv"
)

const defaultRangeMultiplier = 1.2

// DisplayPrice is the renderable projection of a PricingResult. Fixed and
// minimum formats carry a single amount in Min; range carries both bounds
// with Min always equal to the computed final price.
type DisplayPrice struct {
	Format string  `json:"format"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max,omitempty"`
}

// FormatPrice projects the result per the display policy. Unknown formats
// fall back to fixed.
func FormatPrice(result PricingResult, display DisplayConfig) DisplayPrice {
	switch display.Format {
	case DisplayRange:
		multiplier := defaultRangeMultiplier
		if display.RangeConfig != nil && display.RangeConfig.Multiplier > 0 {
			multiplier = display.RangeConfig.Multiplier
		} else if display.RangeMultiplier > 0 {
			multiplier = display.RangeMultiplier
		}
		return DisplayPrice{
			Format: DisplayRange,
			Min:    result.FinalPrice,
			Max:    roundCents(result.FinalPrice * multiplier),
		}
	case DisplayMinimum:
		return DisplayPrice{Format: DisplayMinimum, Min: result.FinalPrice}
	default:
		return DisplayPrice{Format: DisplayFixed, Min: result.FinalPrice}
	}
}

// Text renders the display price as locale-fixed currency copy with no
// fractional cents.
func (d DisplayPrice) Text() string {
	switch d.Format {
	case DisplayRange:
		return fmt.Sprintf("%s - %s", FormatUSD(d.Min), FormatUSD(d.Max))
	case DisplayMinimum:
		return fmt.Sprintf("starting at %s", FormatUSD(d.Min))
	default:
		return FormatUSD(d.Min)
	}
}

// FormatUSD renders an amount as whole dollars with thousands separators.
func FormatUSD(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, ch := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, ch)
	}
	return sign + "$" + string(grouped)
}
