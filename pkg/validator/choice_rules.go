package validator

import (
	"slices"
	"strings"
)

// choices turns values into a candidate set. Lists are used as is, object fields are taken
// in key order and text is split by separator. Anything else is an empty set.
func choices(values any, separator string) []Value {
	set := ValueOf(values)
	switch set.Kind() {
	case KindList:
		return set.Items()
	case KindObject:
		keys := make([]string, 0, len(set.fields))
		for k := range set.fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make([]Value, len(keys))
		for i, k := range keys {
			out[i] = set.fields[k]
		}
		return out
	case KindText:
		if separator == "" {
			return nil
		}
		parts := strings.Split(set.String(), separator)
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = TextValue(p)
		}
		return out
	default:
		return nil
	}
}

func joinChoices(set []Value) string {
	parts := make([]string, len(set))
	for i, c := range set {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func (v *Validator) member(set []Value) bool {
	return slices.ContainsFunc(set, func(c Value) bool {
		return looseEqual(v.field.Value, c)
	})
}

// Contains fails unless the value is one of values. values may be a slice, an array,
// a map or a string split by separator; numeric members compare by value.
func (v *Validator) Contains(values any, separator string) *Validator {
	set := choices(values, separator)
	return v.check(v.member(set), RuleContains, joinChoices(set))
}

// NotContains fails when the value is one of values.
func (v *Validator) NotContains(values any, separator string) *Validator {
	set := choices(values, separator)
	return v.check(!v.member(set), RuleNotContains, joinChoices(set))
}
