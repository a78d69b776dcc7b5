package i18n

import (
	"context"
	"fmt"
	"strings"
)

// Parser decodes catalog content into language -> rule identifier -> template.
type Parser interface {
	// Parse decodes content. The outer map is keyed by language tag, the inner map by
	// rule identifier.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext, with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser for the extension of filename, or nil when none fits.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(getFileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

// languageTables splits decoded content into per-language tables, rejecting any language
// whose value is not a mapping.
func languageTables(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		table, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected a mapping, got %T", ErrInvalidCatalog, lang, val)
		}
		result[lang] = table
	}
	return result, nil
}
