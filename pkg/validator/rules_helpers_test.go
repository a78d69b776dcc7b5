package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

// ruleCase binds value to "field", applies the rule and checks the outcome.
type ruleCase struct {
	name  string
	value any
	pass  bool
}

func runRuleCases(t *testing.T, rule func(*validator.Validator) *validator.Validator, cases []ruleCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := validator.New().Bind("field", tc.value)
			assert.Same(t, v, rule(v), "rules return the validator")

			msgs, failed := v.FieldErrors("field")
			if tc.pass {
				assert.True(t, v.Validate(), "unexpected failure: %v", msgs)
				assert.True(t, v.Errors().IsEmpty())
				return
			}
			assert.False(t, v.Validate())
			assert.True(t, failed)
			assert.Len(t, msgs, 1, "a failing rule appends exactly one message")
		})
	}
}
