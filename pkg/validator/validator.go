package validator

import (
	"fmt"
	"maps"

	"golang.org/x/text/language"
)

// BoundField is the name/value pair rules currently inspect.
type BoundField struct {
	Name  string
	Value Value
}

// Validator evaluates rules against one bound field at a time and accumulates
// failures across binds. A Validator is not safe for concurrent use.
type Validator struct {
	field    BoundField
	errors   Errors
	messages map[RuleID]string
	pattern  KeyPattern
	lang     language.Tag
}

// Option configures a Validator.
type Option func(*Validator)

// WithMessages overrides templates by rule identifier. Unknown identifiers are ignored.
func WithMessages(messages map[RuleID]string) Option {
	return func(v *Validator) {
		for id, tmpl := range messages {
			v.SetMessage(id, tmpl)
		}
	}
}

// WithPattern sets the initial key pattern.
func WithPattern(prefix, suffix string) Option {
	return func(v *Validator) {
		v.DefinePattern(prefix, suffix)
	}
}

// WithLanguage sets the locale used by the lowercase and uppercase rules.
func WithLanguage(tag language.Tag) Option {
	return func(v *Validator) {
		v.lang = tag
	}
}

// New creates a Validator with the built-in templates.
func New(opts ...Option) *Validator {
	v := &Validator{
		messages: DefaultMessages(),
		lang:     language.Und,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Bind makes name/value the field inspected by subsequent rules.
func (v *Validator) Bind(name string, value any) *Validator {
	v.field = BoundField{Name: name, Value: ValueOf(value)}
	return v
}

// Field returns the currently bound field.
func (v *Validator) Field() BoundField {
	return v.field
}

// DefinePattern sets the prefix and suffix applied to error keys from now on.
// Keys already recorded are left untouched.
func (v *Validator) DefinePattern(prefix, suffix string) {
	v.pattern = KeyPattern{Prefix: prefix, Suffix: suffix}
}

// Pattern returns the current key pattern.
func (v *Validator) Pattern() KeyPattern {
	return v.pattern
}

// SetMessage replaces the template of one rule. Unknown identifiers are ignored.
func (v *Validator) SetMessage(id RuleID, tmpl string) {
	if _, ok := v.messages[id]; ok {
		v.messages[id] = tmpl
	}
}

// Messages returns a copy of the template table.
func (v *Validator) Messages() map[RuleID]string {
	return maps.Clone(v.messages)
}

// Message returns the template of one rule.
func (v *Validator) Message(id RuleID) (string, error) {
	tmpl, ok := v.messages[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRule, id)
	}
	return tmpl, nil
}

// RuleCount returns the number of rules the validator has templates for.
func (v *Validator) RuleCount() int {
	return len(v.messages)
}

// Validate reports whether no rule has failed so far.
func (v *Validator) Validate() bool {
	return v.errors.IsEmpty()
}

// Errors returns a copy of every recorded failure.
func (v *Validator) Errors() Errors {
	return v.errors.clone()
}

// FieldErrors returns the messages of one field, rendering name through the current pattern.
// The boolean is false when the field has no recorded failure.
func (v *Validator) FieldErrors(name string) ([]string, bool) {
	key := v.pattern.Key(name)
	if !v.errors.Has(key) {
		return nil, false
	}
	return v.errors.Get(key), true
}

// Err returns nil when every rule passed, otherwise the recorded Errors.
func (v *Validator) Err() error {
	if v.errors.IsEmpty() {
		return nil
	}
	return v.errors.clone()
}

func (v *Validator) record(id RuleID, args ...string) *Validator {
	v.errors.add(v.pattern.Key(v.field.Name), Render(v.messages[id], v.field.Name, args...))
	return v
}

// check records id when ok is false.
func (v *Validator) check(ok bool, id RuleID, args ...string) *Validator {
	if ok {
		return v
	}
	return v.record(id, args...)
}
