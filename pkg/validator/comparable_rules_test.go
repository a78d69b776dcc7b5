package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

func TestIsEquals(t *testing.T) {
	t.Run("loose", func(t *testing.T) {
		runRuleCases(t, func(v *validator.Validator) *validator.Validator {
			return v.IsEquals("Secret", false)
		}, []ruleCase{
			{"same", "Secret", true},
			{"different case", "sECRET", true},
			{"different", "secrets", false},
			{"absent", nil, false},
		})
	})

	t.Run("loose compares textual forms", func(t *testing.T) {
		v := validator.New().Bind("n", 10).IsEquals("10", false)
		assert.True(t, v.Validate())
	})

	t.Run("strict", func(t *testing.T) {
		runRuleCases(t, func(v *validator.Validator) *validator.Validator {
			return v.IsEquals(10, true)
		}, []ruleCase{
			{"same int", 10, true},
			{"same int of other width", int64(10), true},
			{"text", "10", false},
			{"float", 10.0, false},
		})
	})

	t.Run("strict text is case-sensitive", func(t *testing.T) {
		v := validator.New().Bind("word", "Go").IsEquals("go", true)
		assert.False(t, v.Validate())
	})

	t.Run("message", func(t *testing.T) {
		v := validator.New().Bind("confirm", "a").IsEquals("b", false)
		assert.Equal(t, "The value of field confirm must be equal to b", v.Errors().First("confirm"))
	})
}

func TestIsNotEquals(t *testing.T) {
	t.Run("loose", func(t *testing.T) {
		runRuleCases(t, func(v *validator.Validator) *validator.Validator {
			return v.IsNotEquals("admin", false)
		}, []ruleCase{
			{"different", "guest", true},
			{"same", "admin", false},
			{"different case", "ADMIN", false},
		})
	})

	t.Run("strict", func(t *testing.T) {
		runRuleCases(t, func(v *validator.Validator) *validator.Validator {
			return v.IsNotEquals("1", true)
		}, []ruleCase{
			{"int", 1, true},
			{"same text", "1", false},
		})
	})
}
