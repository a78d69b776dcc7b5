package validator

import (
	"strconv"

	"golang.org/x/text/cases"
)

// Required fails when the bound value is absent, false, zero, empty text or an empty collection.
// Whitespace-only text is present.
func (v *Validator) Required() *Validator {
	return v.check(!v.field.Value.IsEmpty(), RuleRequired)
}

// MinLength fails unless the value is longer than n, or at least n long when inclusive.
func (v *Validator) MinLength(n int, inclusive bool) *Validator {
	l := v.field.Value.Len()
	ok := l > n
	if inclusive {
		ok = l >= n
	}
	return v.check(ok, RuleMinLength, strconv.Itoa(n))
}

// MaxLength fails unless the value is shorter than n, or at most n long when inclusive.
func (v *Validator) MaxLength(n int, inclusive bool) *Validator {
	l := v.field.Value.Len()
	ok := l < n
	if inclusive {
		ok = l <= n
	}
	return v.check(ok, RuleMaxLength, strconv.Itoa(n))
}

// BetweenLength fails unless min <= length <= max.
func (v *Validator) BetweenLength(min, max int) *Validator {
	l := v.field.Value.Len()
	return v.check(l >= min && l <= max, RuleBetweenLength, strconv.Itoa(min), strconv.Itoa(max))
}

// IsLowercase fails unless the value is text with no character changed by lower-casing
// under the validator's language.
func (v *Validator) IsLowercase() *Validator {
	ok := v.field.Value.Kind() == KindText
	if ok {
		s := v.field.Value.String()
		ok = cases.Lower(v.lang).String(s) == s
	}
	return v.check(ok, RuleLowercase)
}

// IsUppercase fails unless the value is text with no character changed by upper-casing
// under the validator's language.
func (v *Validator) IsUppercase() *Validator {
	ok := v.field.Value.Kind() == KindText
	if ok {
		s := v.field.Value.String()
		ok = cases.Upper(v.lang).String(s) == s
	}
	return v.check(ok, RuleUppercase)
}
