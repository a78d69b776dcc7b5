// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a client-supplied X-Request-ID when it is at most 128 characters of
// letters, digits, '-' and '_'; otherwise it generates a UUIDv7. The id is stored in the
// request context (FromContext) and echoed in the response header.
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record logged with a
// request context carries request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
