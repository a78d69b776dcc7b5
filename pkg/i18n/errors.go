package i18n

import "errors"

// Cancellation errors are kept apart from parse and read errors so callers can tell timeouts
// from broken catalog content.
var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Catalog structure
	ErrInvalidCatalog     = errors.New("invalid catalog structure")
	ErrInvalidTemplate    = errors.New("message template must be a string")
	ErrInvalidLanguageTag = errors.New("invalid language tag")
	ErrUnsupportedFormat  = errors.New("unsupported catalog file format")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading catalog file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read catalog file")
	ErrFailedToParseFile    = errors.New("failed to parse catalog file")

	// Directory operations
	ErrFailedToAccessDirectory   = errors.New("failed to access directory")
	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read directory")
	ErrNoCatalogFiles            = errors.New("no catalog files found")

	// Resolution
	ErrNilSource            = errors.New("catalog source is nil")
	ErrLanguageNotSupported = errors.New("language not supported")
)
