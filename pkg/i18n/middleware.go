package i18n

import "net/http"

// Middleware stores the first non-empty language found by extractors in the request context,
// where GetLocale reads it. With no extractors it uses DefaultExtractors.
func Middleware(extractors ...LangExtractor) func(http.Handler) http.Handler {
	if len(extractors) == 0 {
		extractors = DefaultExtractors()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, extract := range extractors {
				if lang := extract(r); lang != "" {
					r = r.WithContext(SetLocale(r.Context(), lang))
					break
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
