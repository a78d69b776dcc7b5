package i18n

import (
	"net/http"
	"strings"
)

// maxLangLength bounds what an extractor hands on; Accept-Language lists are rarely near it.
const maxLangLength = 256

// LangExtractor reads a requested language from an HTTP request. It returns "" when the
// request carries none.
type LangExtractor func(r *http.Request) string

// FromQuery reads the language from a query parameter.
func FromQuery(name string) LangExtractor {
	return func(r *http.Request) string {
		return clean(r.URL.Query().Get(name))
	}
}

// FromHeader reads the language from a request header.
func FromHeader(name string) LangExtractor {
	return func(r *http.Request) string {
		return clean(r.Header.Get(name))
	}
}

// FromCookie reads the language from a cookie.
func FromCookie(name string) LangExtractor {
	return func(r *http.Request) string {
		c, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return clean(c.Value)
	}
}

// FromAcceptLanguage returns the raw Accept-Language list; Catalog.Match understands q-values.
func FromAcceptLanguage() LangExtractor {
	return FromHeader("Accept-Language")
}

// DefaultExtractors checks the "lang" query parameter, then the "lang" cookie, then Accept-Language.
func DefaultExtractors() []LangExtractor {
	return []LangExtractor{FromQuery("lang"), FromCookie("lang"), FromAcceptLanguage()}
}

func clean(lang string) string {
	lang = strings.TrimSpace(lang)
	if len(lang) > maxLangLength {
		return ""
	}
	return lang
}
