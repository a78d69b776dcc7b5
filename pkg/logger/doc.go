// Package logger builds log/slog loggers from functional options and injects
// request-scoped attributes taken from context.Context.
//
// New returns a *slog.Logger backed by a JSON or text handler wrapped in a
// LogHandlerDecorator. The decorator runs every registered ContextExtractor on each
// record, so values such as a request id show up without being passed explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "datavalidator"),
//	    logger.WithLevel(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "validation finished",
//	    logger.Field("age"),
//	    logger.Valid(false),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Options
//
//   - WithDevelopment, WithStaging, WithProduction, WithEnvironment: presets per environment
//   - WithFormat, WithLevel, WithOutput: handler settings
//   - WithAttr: static attributes
//   - WithContextExtractors, WithContextValue: attributes from context
//
// Attribute helpers (Error, Errors, Field, Rule, Lang, Valid, RequestID, ...) keep key names
// consistent. Error and Errors return an empty Attr for nil errors, which slog drops.
package logger
