package validator

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// bound converts a rule argument; NaN and infinities are not usable bounds.
func bound(n float64) (decimal.Decimal, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(n), true
}

// numericArgs reads the bound value and every bound. ok is false when any of them is unusable.
func (v *Validator) numericArgs(bounds ...float64) (decimal.Decimal, []decimal.Decimal, bool) {
	d, ok := v.field.Value.Decimal()
	if !ok {
		return decimal.Zero, nil, false
	}
	out := make([]decimal.Decimal, len(bounds))
	for i, n := range bounds {
		if out[i], ok = bound(n); !ok {
			return decimal.Zero, nil, false
		}
	}
	return d, out, true
}

// MinValue fails unless the value is numeric and greater than n (or equal when inclusive).
// A NaN or infinite n always fails.
func (v *Validator) MinValue(n float64, inclusive bool) *Validator {
	d, b, ok := v.numericArgs(n)
	if ok {
		if inclusive {
			ok = d.GreaterThanOrEqual(b[0])
		} else {
			ok = d.GreaterThan(b[0])
		}
	}
	return v.check(ok, RuleMinValue, formatNumber(n))
}

// MaxValue fails unless the value is numeric and less than n (or equal when inclusive).
// A NaN or infinite n always fails.
func (v *Validator) MaxValue(n float64, inclusive bool) *Validator {
	d, b, ok := v.numericArgs(n)
	if ok {
		if inclusive {
			ok = d.LessThanOrEqual(b[0])
		} else {
			ok = d.LessThan(b[0])
		}
	}
	return v.check(ok, RuleMaxValue, formatNumber(n))
}

// BetweenValues fails unless the value is numeric and min <= value <= max.
func (v *Validator) BetweenValues(min, max float64) *Validator {
	d, b, ok := v.numericArgs(min, max)
	if ok {
		ok = d.GreaterThanOrEqual(b[0]) && d.LessThanOrEqual(b[1])
	}
	return v.check(ok, RuleBetweenValues, formatNumber(min), formatNumber(max))
}

// IsMultiple fails unless the value is numeric and divisible by n.
// With n == 0 only a zero value passes.
func (v *Validator) IsMultiple(n float64) *Validator {
	d, b, ok := v.numericArgs(n)
	if ok {
		if b[0].IsZero() {
			ok = d.IsZero()
		} else {
			ok = d.Mod(b[0]).IsZero()
		}
	}
	return v.check(ok, RuleMultiple, formatNumber(n))
}
