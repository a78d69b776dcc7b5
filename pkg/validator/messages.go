package validator

import (
	"fmt"
	"maps"
)

// RuleID identifies a rule and its message template.
type RuleID string

const (
	RuleRequired      RuleID = "is_required"
	RuleMinLength     RuleID = "min_length"
	RuleMaxLength     RuleID = "max_length"
	RuleBetweenLength RuleID = "between_length"
	RuleMinValue      RuleID = "min_value"
	RuleMaxValue      RuleID = "max_value"
	RuleBetweenValues RuleID = "between_values"
	RuleEmail         RuleID = "is_email"
	RuleURL           RuleID = "is_url"
	RuleSlug          RuleID = "is_slug"
	RuleNum           RuleID = "is_num"
	RuleInteger       RuleID = "is_integer"
	RuleFloat         RuleID = "is_float"
	RuleString        RuleID = "is_string"
	RuleBoolean       RuleID = "is_boolean"
	RuleObject        RuleID = "is_obj"
	RuleArray         RuleID = "is_arr"
	RuleEquals        RuleID = "is_equals"
	RuleNotEquals     RuleID = "is_not_equals"
	RuleCPF           RuleID = "is_cpf"
	RuleCNPJ          RuleID = "is_cnpj"
	RuleContains      RuleID = "contains"
	RuleNotContains   RuleID = "not_contains"
	RuleLowercase     RuleID = "is_lowercase"
	RuleUppercase     RuleID = "is_uppercase"
	RuleMultiple      RuleID = "is_multiple"
)

var ruleOrder = []RuleID{
	RuleRequired, RuleMinLength, RuleMaxLength, RuleBetweenLength,
	RuleMinValue, RuleMaxValue, RuleBetweenValues,
	RuleEmail, RuleURL, RuleSlug,
	RuleNum, RuleInteger, RuleFloat, RuleString, RuleBoolean, RuleObject, RuleArray,
	RuleEquals, RuleNotEquals, RuleCPF, RuleCNPJ,
	RuleContains, RuleNotContains, RuleLowercase, RuleUppercase, RuleMultiple,
}

// Placeholders are filled in order: field name first, then the rule's arguments.
var defaultMessages = map[RuleID]string{
	RuleRequired:      "The field %s is required",
	RuleMinLength:     "The field %s must contain at least %s character(s)",
	RuleMaxLength:     "The field %s must contain at most %s character(s)",
	RuleBetweenLength: "The field %s must contain between %s and %s character(s)",
	RuleMinValue:      "The value of field %s must be greater than %s",
	RuleMaxValue:      "The value of field %s must be less than %s",
	RuleBetweenValues: "The value of field %s must be between %s and %s",
	RuleEmail:         "The field %s must be a valid email address",
	RuleURL:           "The field %s must be a valid URL",
	RuleSlug:          "The field %s must be a valid slug",
	RuleNum:           "The field %s must be numeric",
	RuleInteger:       "The field %s must be an integer",
	RuleFloat:         "The field %s must be a float",
	RuleString:        "The field %s must be a string",
	RuleBoolean:       "The field %s must be a boolean",
	RuleObject:        "The field %s must be an object",
	RuleArray:         "The field %s must be an array",
	RuleEquals:        "The value of field %s must be equal to %s",
	RuleNotEquals:     "The value of field %s must not be equal to %s",
	RuleCPF:           "The field %s must be a valid CPF",
	RuleCNPJ:          "The field %s must be a valid CNPJ",
	RuleContains:      "The field %s only accepts one of the following values: [%s]",
	RuleNotContains:   "The field %s does not accept the following values: [%s]",
	RuleLowercase:     "The field %s only accepts lowercase characters",
	RuleUppercase:     "The field %s only accepts uppercase characters",
	RuleMultiple:      "The value of field %s must be a multiple of %s",
}

// Rules returns every known rule identifier in declaration order.
func Rules() []RuleID {
	out := make([]RuleID, len(ruleOrder))
	copy(out, ruleOrder)
	return out
}

// Valid reports whether id names a known rule.
func (id RuleID) Valid() bool {
	_, ok := defaultMessages[id]
	return ok
}

// DefaultMessages returns a fresh copy of the built-in template table.
func DefaultMessages() map[RuleID]string {
	return maps.Clone(defaultMessages)
}

// Render fills a template with the field name followed by the rule arguments.
// Arguments beyond the template's verbs are dropped so shortened overrides stay clean.
func Render(tmpl, name string, args ...string) string {
	vals := make([]any, 0, len(args)+1)
	vals = append(vals, name)
	for _, a := range args {
		vals = append(vals, a)
	}
	if n := countVerbs(tmpl); n < len(vals) {
		vals = vals[:n]
	}
	return fmt.Sprintf(tmpl, vals...)
}

func countVerbs(tmpl string) int {
	n := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}
