// Command datavalidator serves rule-expression validation over HTTP/JSON.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/datavalidator/pkg/config"
	"github.com/dmitrymomot/datavalidator/pkg/httpserver"
	"github.com/dmitrymomot/datavalidator/pkg/i18n"
	"github.com/dmitrymomot/datavalidator/pkg/logger"
	"github.com/dmitrymomot/datavalidator/pkg/requestid"
	"github.com/dmitrymomot/datavalidator/pkg/webapi"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts, err := cfg.loggerOptions()
	if err != nil {
		return err
	}
	log := logger.New(append(logOpts, logger.WithContextExtractors(requestid.LoggerExtractor()))...)
	logger.SetAsDefault(log)

	catalogOpts := []i18n.Option{
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
	}
	if cfg.LocalesDir != "" {
		src, err := i18n.NewDirSource(cfg.LocalesDir)
		if err != nil {
			return err
		}
		catalogOpts = append(catalogOpts, i18n.WithSource(src))
	}
	catalog, err := i18n.NewCatalog(ctx, catalogOpts...)
	if err != nil {
		return err
	}

	api := webapi.New(catalog,
		webapi.WithLogger(log),
		webapi.WithKeyPattern(cfg.KeyPrefix, cfg.KeySuffix),
	)
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, api.Router())
}
