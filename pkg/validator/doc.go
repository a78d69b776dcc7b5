// Package validator provides a fluent, chainable field validator: bind a named value,
// apply a sequence of rules and read structured per-field error messages.
//
// A Validator holds exactly one bound field at a time, an append-only error store keyed by
// field name, a per-instance table of message templates and an optional key pattern
// (prefix and suffix) applied to every store key. Rules never return errors for failed
// checks; failures are recorded as messages and every rule returns the Validator so calls
// chain.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`, `numeric_rules.go`,
// `format_rules.go`, `identifier_rules.go`, etc.). The bound value is converted once into a
// Value, a closed union over absent, bool, int, float, text, list and object, so type rules
// are plain switches on Kind and numeric rules compare exact decimals.
//
// Core building blocks:
//   - Validator  – bound field, error store, templates and key pattern
//   - Value      – normalized bound value with textual, length and numeric views
//   - Errors     – ordered error store that implements the error interface
//   - RuleID     – rule identifier doubling as template key
//   - Render     – pure template renderer (field name first, then rule arguments)
//
// # Usage
//
//	v := validator.New()
//	v.Bind("name", form.Name).Required().BetweenLength(3, 64)
//	v.Bind("age", form.Age).IsInteger().MinValue(18, true)
//	v.Bind("document", form.CPF).IsCPF()
//
//	if !v.Validate() {
//	    msgs, _ := v.FieldErrors("age")
//	    // ...
//	}
//
// The error store keeps growing across binds, so one Validator is a running report for a
// whole form. Use a fresh Validator for each independent input.
//
// # Messages
//
// Templates use `%s` placeholders filled with the field name followed by the rule
// arguments. Override them per instance with SetMessage or WithMessages; catalogs for other
// languages live in package i18n.
//
// # Error Handling
//
// Usage faults surface as errors: Message returns ErrUnknownRule for identifiers without a
// template. Err converts a failed run into an Errors value that satisfies
// errors.Is(err, ErrValidationFailed) and can be recovered with ExtractErrors.
//
// # Concurrency
//
// A Validator performs no locking. Each goroutine must use its own instance.
package validator
