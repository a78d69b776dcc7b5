package main

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/datavalidator/pkg/httpserver"
	"github.com/dmitrymomot/datavalidator/pkg/logger"
)

const serviceName = "datavalidator"

// Config is the service configuration read from the environment and an optional .env file.
type Config struct {
	HTTP httpserver.Config

	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	DefaultLang string `env:"VALIDATOR_DEFAULT_LANG" envDefault:"en"`
	LocalesDir  string `env:"VALIDATOR_LOCALES_DIR"`
	KeyPrefix   string `env:"VALIDATOR_KEY_PREFIX"`
	KeySuffix   string `env:"VALIDATOR_KEY_SUFFIX"`
}

// loggerOptions starts from the APP_ENV preset; LOG_LEVEL and LOG_FORMAT override it when set.
func (c Config) loggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{logger.WithEnvironment(c.Env, serviceName)}

	if c.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(lvl))
	}

	if c.LogFormat != "" {
		switch f := logger.Format(c.LogFormat); f {
		case logger.FormatJSON, logger.FormatText:
			opts = append(opts, logger.WithFormat(f))
		default:
			return nil, fmt.Errorf("LOG_FORMAT: unknown format %q", c.LogFormat)
		}
	}
	return opts, nil
}
