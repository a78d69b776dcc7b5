package validator

import (
	"math"
	"strconv"
	"strings"
)

// IsNum fails unless the value is an integer, a finite float or numeric text.
func (v *Validator) IsNum() *Validator {
	_, ok := v.field.Value.Decimal()
	return v.check(ok, RuleNum)
}

// IsInteger fails unless the value is integral: an integer, a whole float or integral numeric text.
func (v *Validator) IsInteger() *Validator {
	var ok bool
	switch v.field.Value.Kind() {
	case KindInt:
		ok = true
	case KindFloat, KindText:
		if d, numeric := v.field.Value.Decimal(); numeric {
			ok = d.Equal(d.Truncate(0))
		}
	}
	return v.check(ok, RuleInteger)
}

// IsFloat fails unless the value can be read as a finite float64.
func (v *Validator) IsFloat() *Validator {
	var ok bool
	switch v.field.Value.Kind() {
	case KindInt:
		ok = true
	case KindFloat:
		f := v.field.Value.f
		ok = !math.IsNaN(f) && !math.IsInf(f, 0)
	case KindText:
		s := strings.TrimSpace(v.field.Value.String())
		if _, numeric := parseDecimal(s); numeric {
			_, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
			ok = err == nil
		}
	}
	return v.check(ok, RuleFloat)
}

// IsString fails unless the value is text.
func (v *Validator) IsString() *Validator {
	return v.check(v.field.Value.Kind() == KindText, RuleString)
}

// IsBoolean fails unless the value is a bool.
func (v *Validator) IsBoolean() *Validator {
	return v.check(v.field.Value.Kind() == KindBool, RuleBoolean)
}

// IsObject fails unless the value is a map, a struct or another opaque reference.
func (v *Validator) IsObject() *Validator {
	return v.check(v.field.Value.Kind() == KindObject, RuleObject)
}

// IsArray fails unless the value is a slice or an array.
func (v *Validator) IsArray() *Validator {
	return v.check(v.field.Value.Kind() == KindList, RuleArray)
}
