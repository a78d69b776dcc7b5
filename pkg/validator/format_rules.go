package validator

import (
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var (
	// formats supplies the email and URL grammars; *Validate is safe for concurrent use.
	formats = playground.New()

	slugRegex = regexp.MustCompile(`^[0-9a-z-]+$`)
)

func (v *Validator) text() (string, bool) {
	if v.field.Value.Kind() != KindText {
		return "", false
	}
	return v.field.Value.String(), true
}

// IsEmail fails unless the value is a well-formed email address.
func (v *Validator) IsEmail() *Validator {
	s, ok := v.text()
	ok = ok && formats.Var(s, "required,email") == nil
	return v.check(ok, RuleEmail)
}

// IsURL fails unless the value is a well-formed absolute URL.
func (v *Validator) IsURL() *Validator {
	s, ok := v.text()
	ok = ok && formats.Var(s, "required,url") == nil
	return v.check(ok, RuleURL)
}

// IsSlug fails unless the value is made of lowercase letters, digits and single inner hyphens.
func (v *Validator) IsSlug() *Validator {
	s, ok := v.text()
	ok = ok && slugRegex.MatchString(s) &&
		!strings.Contains(s, "--") &&
		!strings.HasPrefix(s, "-") &&
		!strings.HasSuffix(s, "-")
	return v.check(ok, RuleSlug)
}
