package validator

import "strings"

func (v *Validator) equals(x any, strict bool) (bool, Value) {
	other := ValueOf(x)
	if strict {
		return v.field.Value.Equal(other), other
	}
	return strings.EqualFold(v.field.Value.String(), other.String()), other
}

// IsEquals fails unless the value equals x. Strict comparison requires the same kind
// and payload; otherwise the textual forms are compared case-insensitively.
func (v *Validator) IsEquals(x any, strict bool) *Validator {
	ok, other := v.equals(x, strict)
	return v.check(ok, RuleEquals, other.String())
}

// IsNotEquals is the negation of IsEquals.
func (v *Validator) IsNotEquals(x any, strict bool) *Validator {
	ok, other := v.equals(x, strict)
	return v.check(!ok, RuleNotEquals, other.String())
}
