package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

func TestIsEmail(t *testing.T) {
	runRuleCases(t, (*validator.Validator).IsEmail, []ruleCase{
		{"simple", "user@example.com", true},
		{"plus tag", "user+tag@mail.example.org", true},
		{"missing at", "user.example.com", false},
		{"missing domain", "user@", false},
		{"missing local part", "@example.com", false},
		{"spaces", "user @example.com", false},
		{"empty", "", false},
		{"not text", 42, false},
		{"absent", nil, false},
	})

	t.Run("message names the field", func(t *testing.T) {
		v := validator.New().Bind("contact", "nope").IsEmail()
		assert.Equal(t, "The field contact must be a valid email address", v.Errors().First("contact"))
	})
}

func TestIsURL(t *testing.T) {
	runRuleCases(t, (*validator.Validator).IsURL, []ruleCase{
		{"https", "https://example.com", true},
		{"path and query", "http://example.com/a/b?q=1#frag", true},
		{"ftp", "ftp://files.example.com/pub", true},
		{"no scheme", "example.com", false},
		{"plain words", "not a url", false},
		{"empty", "", false},
		{"not text", []string{"https://example.com"}, false},
	})
}

func TestIsSlug(t *testing.T) {
	runRuleCases(t, (*validator.Validator).IsSlug, []ruleCase{
		{"single word", "hello", true},
		{"hyphenated", "hello-world-2024", true},
		{"digits", "2024", true},
		{"double hyphen", "hello--world", false},
		{"leading hyphen", "-hello", false},
		{"trailing hyphen", "hello-", false},
		{"uppercase", "Hello-World", false},
		{"underscore", "hello_world", false},
		{"space", "hello world", false},
		{"empty", "", false},
		{"number", 2024, false},
	})

	t.Run("reports with its own template", func(t *testing.T) {
		v := validator.New().Bind("slug", "Bad Slug").IsSlug()
		assert.Equal(t, "The field slug must be a valid slug", v.Errors().First("slug"))
	})
}
