// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and github.com/caarlos0/env/v11 for
// struct-tag parsing:
//
//	type Config struct {
//	    Addr        string `env:"HTTP_ADDR" envDefault:":8080"`
//	    DefaultLang string `env:"VALIDATOR_DEFAULT_LANG" envDefault:"en"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil { // optional extra files
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Each config type is parsed once per process and served from a cache afterwards.
// ResetCache clears the cache, which tests use after changing the environment.
package config
