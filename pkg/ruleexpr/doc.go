// Package ruleexpr parses compact rule expressions and applies them to a validator.Validator.
//
// An expression lists rules separated by "|". Each rule is a name optionally followed by
// ":" and comma-separated arguments:
//
//	required|min_length:3,true|max_length:64
//	numeric|between_values:1,10
//	in:draft;published;archived
//
// Names are the validator rule identifiers (is_required, min_value, contains, ...) or one of
// the short aliases (required, email, numeric, in, not_in, ...). Boolean arguments accept
// true, false, 1 and 0. The set argument of contains and not_contains is split on ";".
//
// Parsing checks names, arity and argument types up front, so a parsed Chain can be applied
// to any number of validators without failing:
//
//	chain, err := ruleexpr.Parse("required|integer|min_value:18,true")
//	if err != nil {
//	    return err // wraps ErrUnknownRule, ErrInvalidArgument or ErrEmptyExpression
//	}
//	v := validator.New()
//	chain.Apply(v.Bind("age", input.Age))
package ruleexpr
