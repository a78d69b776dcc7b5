package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the requested language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored by SetLocale, or "" when none was requested.
// The value is what the client asked for; resolve it with Catalog.Match.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}
