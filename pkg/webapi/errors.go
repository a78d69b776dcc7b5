package webapi

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrNoFields             = errors.New("no fields to validate")
	ErrUnnamedField         = errors.New("field name is required")
	ErrUnknownMessageKey    = errors.New("unknown message key")
)
