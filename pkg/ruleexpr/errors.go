package ruleexpr

import (
	"errors"

	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

var (
	ErrEmptyExpression = errors.New("empty rule expression")
	ErrInvalidArgument = errors.New("invalid rule argument")

	// ErrUnknownRule is the validator sentinel so callers can match either package.
	ErrUnknownRule = validator.ErrUnknownRule
)
