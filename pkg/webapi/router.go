package webapi

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/datavalidator/pkg/httpserver"
	"github.com/dmitrymomot/datavalidator/pkg/i18n"
	"github.com/dmitrymomot/datavalidator/pkg/logger"
	"github.com/dmitrymomot/datavalidator/pkg/requestid"
)

// DefaultMaxBodySize caps validation request bodies.
const DefaultMaxBodySize int64 = 1 << 20

var errNoCatalog = errors.New("message catalog is not loaded")

// Option configures the API.
type Option func(*API)

// WithLogger sets the logger used for request and validation logs.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithKeyPattern sets the error key pattern used when a request does not send its own.
func WithKeyPattern(prefix, suffix string) Option {
	return func(a *API) {
		a.prefix = prefix
		a.suffix = suffix
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBody = n
		}
	}
}

// WithLangExtractors replaces i18n.DefaultExtractors for locating the request language.
func WithLangExtractors(extractors ...i18n.LangExtractor) Option {
	return func(a *API) {
		a.extractors = extractors
	}
}

// API serves validation over HTTP/JSON.
type API struct {
	catalog    *i18n.Catalog
	log        *slog.Logger
	prefix     string
	suffix     string
	maxBody    int64
	extractors []i18n.LangExtractor
}

// New creates the API backed by catalog.
func New(catalog *i18n.Catalog, opts ...Option) *API {
	a := &API{
		catalog: catalog,
		log:     logger.Discard(),
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router builds the HTTP routes:
//
//	GET  /health       liveness
//	GET  /ready        readiness (catalog loaded)
//	GET  /v1/rules     templates and aliases for ?lang=
//	POST /v1/validate  run rule expressions against submitted fields
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(a.extractors...))
	r.Use(a.logRequests)

	r.Get("/health", httpserver.HealthCheckHandler(a.log))
	r.Get("/ready", httpserver.HealthCheckHandler(a.log, a.catalogReady))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rules", a.rules)
		r.Post("/validate", a.validate)
	})
	return r
}

func (a *API) catalogReady(context.Context) error {
	if a.catalog == nil || len(a.catalog.Languages()) == 0 {
		return errNoCatalog
	}
	return nil
}
