package ruleexpr

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

const (
	ruleSeparator = "|"
	argSeparator  = ","
	setSeparator  = ";"
)

type applyFunc func(*validator.Validator) *validator.Validator

// Step is a single parsed rule with its raw arguments.
type Step struct {
	Rule  validator.RuleID
	Args  []string
	apply applyFunc
}

func (s Step) String() string {
	if len(s.Args) == 0 {
		return string(s.Rule)
	}
	return string(s.Rule) + ":" + strings.Join(s.Args, argSeparator)
}

// Chain is an ordered list of parsed rules.
type Chain []Step

// Apply runs every step against the currently bound field of v, in order.
func (c Chain) Apply(v *validator.Validator) *validator.Validator {
	for _, s := range c {
		v = s.apply(v)
	}
	return v
}

// Rules returns the rule identifiers of the chain in order.
func (c Chain) Rules() []validator.RuleID {
	out := make([]validator.RuleID, len(c))
	for i, s := range c {
		out[i] = s.Rule
	}
	return out
}

// String renders the chain in canonical form, with aliases resolved.
func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return strings.Join(parts, ruleSeparator)
}

var aliases = map[string]validator.RuleID{
	"required":    validator.RuleRequired,
	"email":       validator.RuleEmail,
	"url":         validator.RuleURL,
	"slug":        validator.RuleSlug,
	"numeric":     validator.RuleNum,
	"integer":     validator.RuleInteger,
	"float":       validator.RuleFloat,
	"string":      validator.RuleString,
	"boolean":     validator.RuleBoolean,
	"object":      validator.RuleObject,
	"array":       validator.RuleArray,
	"in":          validator.RuleContains,
	"not_in":      validator.RuleNotContains,
	"lowercase":   validator.RuleLowercase,
	"uppercase":   validator.RuleUppercase,
	"multiple_of": validator.RuleMultiple,
	"cpf":         validator.RuleCPF,
	"cnpj":        validator.RuleCNPJ,
}

// Aliases returns a copy of the short-name table.
func Aliases() map[string]validator.RuleID {
	return maps.Clone(aliases)
}

// Resolve maps a rule name or alias to its identifier.
func Resolve(name string) (validator.RuleID, bool) {
	if id, ok := aliases[name]; ok {
		return id, true
	}
	id := validator.RuleID(name)
	return id, id.Valid()
}

// Parse compiles expr into a Chain. Empty segments between separators are skipped,
// but an expression without any rule is rejected.
func Parse(expr string) (Chain, error) {
	var chain Chain
	for raw := range strings.SplitSeq(expr, ruleSeparator) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		step, err := parseStep(raw)
		if err != nil {
			return nil, err
		}
		chain = append(chain, step)
	}
	if len(chain) == 0 {
		return nil, ErrEmptyExpression
	}
	return chain, nil
}

// MustParse is like Parse but panics on error. Intended for expressions known at compile time.
func MustParse(expr string) Chain {
	chain, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return chain
}

// Apply parses expr and applies it to v.
func Apply(v *validator.Validator, expr string) error {
	chain, err := Parse(expr)
	if err != nil {
		return err
	}
	chain.Apply(v)
	return nil
}

func parseStep(raw string) (Step, error) {
	name, rest, hasArgs := strings.Cut(raw, ":")
	name = strings.TrimSpace(name)

	id, ok := Resolve(name)
	if !ok {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	var args []string
	if hasArgs && strings.TrimSpace(rest) != "" {
		args = strings.Split(rest, argSeparator)
		for i := range args {
			args[i] = strings.TrimSpace(args[i])
		}
	}

	apply, err := compile(id, args)
	if err != nil {
		return Step{}, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, id, err)
	}
	return Step{Rule: id, Args: args, apply: apply}, nil
}

func compile(id validator.RuleID, args []string) (applyFunc, error) {
	switch id {
	case validator.RuleMinLength, validator.RuleMaxLength:
		if err := arity(args, 1, 2); err != nil {
			return nil, err
		}
		n, err := length(args[0])
		if err != nil {
			return nil, err
		}
		inclusive, err := optionalBool(args, 1)
		if err != nil {
			return nil, err
		}
		if id == validator.RuleMinLength {
			return func(v *validator.Validator) *validator.Validator { return v.MinLength(n, inclusive) }, nil
		}
		return func(v *validator.Validator) *validator.Validator { return v.MaxLength(n, inclusive) }, nil

	case validator.RuleBetweenLength:
		if err := arity(args, 2, 2); err != nil {
			return nil, err
		}
		lo, err := length(args[0])
		if err != nil {
			return nil, err
		}
		hi, err := length(args[1])
		if err != nil {
			return nil, err
		}
		return func(v *validator.Validator) *validator.Validator { return v.BetweenLength(lo, hi) }, nil

	case validator.RuleMinValue, validator.RuleMaxValue:
		if err := arity(args, 1, 2); err != nil {
			return nil, err
		}
		n, err := number(args[0])
		if err != nil {
			return nil, err
		}
		inclusive, err := optionalBool(args, 1)
		if err != nil {
			return nil, err
		}
		if id == validator.RuleMinValue {
			return func(v *validator.Validator) *validator.Validator { return v.MinValue(n, inclusive) }, nil
		}
		return func(v *validator.Validator) *validator.Validator { return v.MaxValue(n, inclusive) }, nil

	case validator.RuleBetweenValues:
		if err := arity(args, 2, 2); err != nil {
			return nil, err
		}
		lo, err := number(args[0])
		if err != nil {
			return nil, err
		}
		hi, err := number(args[1])
		if err != nil {
			return nil, err
		}
		return func(v *validator.Validator) *validator.Validator { return v.BetweenValues(lo, hi) }, nil

	case validator.RuleMultiple:
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		n, err := number(args[0])
		if err != nil {
			return nil, err
		}
		return func(v *validator.Validator) *validator.Validator { return v.IsMultiple(n) }, nil

	case validator.RuleEquals, validator.RuleNotEquals:
		if err := arity(args, 1, 2); err != nil {
			return nil, err
		}
		x := args[0]
		strict, err := optionalBool(args, 1)
		if err != nil {
			return nil, err
		}
		if id == validator.RuleEquals {
			return func(v *validator.Validator) *validator.Validator { return v.IsEquals(x, strict) }, nil
		}
		return func(v *validator.Validator) *validator.Validator { return v.IsNotEquals(x, strict) }, nil

	case validator.RuleContains, validator.RuleNotContains:
		if err := arity(args, 1, 1); err != nil {
			return nil, err
		}
		set := strings.Split(args[0], setSeparator)
		for i := range set {
			set[i] = strings.TrimSpace(set[i])
		}
		if id == validator.RuleContains {
			return func(v *validator.Validator) *validator.Validator { return v.Contains(set, "") }, nil
		}
		return func(v *validator.Validator) *validator.Validator { return v.NotContains(set, "") }, nil
	}

	if err := arity(args, 0, 0); err != nil {
		return nil, err
	}
	rule, ok := nullary[id]
	if !ok {
		return nil, fmt.Errorf("no handler for %s", id)
	}
	return rule, nil
}

var nullary = map[validator.RuleID]applyFunc{
	validator.RuleRequired:  (*validator.Validator).Required,
	validator.RuleEmail:     (*validator.Validator).IsEmail,
	validator.RuleURL:       (*validator.Validator).IsURL,
	validator.RuleSlug:      (*validator.Validator).IsSlug,
	validator.RuleNum:       (*validator.Validator).IsNum,
	validator.RuleInteger:   (*validator.Validator).IsInteger,
	validator.RuleFloat:     (*validator.Validator).IsFloat,
	validator.RuleString:    (*validator.Validator).IsString,
	validator.RuleBoolean:   (*validator.Validator).IsBoolean,
	validator.RuleObject:    (*validator.Validator).IsObject,
	validator.RuleArray:     (*validator.Validator).IsArray,
	validator.RuleCPF:       (*validator.Validator).IsCPF,
	validator.RuleCNPJ:      (*validator.Validator).IsCNPJ,
	validator.RuleLowercase: (*validator.Validator).IsLowercase,
	validator.RuleUppercase: (*validator.Validator).IsUppercase,
}

func arity(args []string, lo, hi int) error {
	if n := len(args); n < lo || n > hi {
		if lo == hi {
			return fmt.Errorf("want %d argument(s), got %d", lo, n)
		}
		return fmt.Errorf("want %d to %d arguments, got %d", lo, hi, n)
	}
	return nil
}

func length(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("length %q is not a non-negative integer", s)
	}
	return n, nil
}

func number(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

func optionalBool(args []string, i int) (bool, error) {
	if i >= len(args) {
		return false, nil
	}
	switch strings.ToLower(args[i]) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", args[i])
}

// Names returns every accepted rule name, identifiers and aliases, sorted.
func Names() []string {
	names := make([]string, 0, len(aliases)+len(validator.Rules()))
	for _, id := range validator.Rules() {
		names = append(names, string(id))
	}
	for a := range aliases {
		names = append(names, a)
	}
	slices.Sort(names)
	return names
}
