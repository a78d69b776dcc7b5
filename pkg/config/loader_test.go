package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datavalidator/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CFG_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
	Strict  bool          `env:"CFG_TEST_STRICT" envDefault:"true"`
}

type overrideConfig struct {
	Addr  string `env:"CFG_TEST_OVERRIDE_ADDR" envDefault:":8080"`
	Limit int    `env:"CFG_TEST_OVERRIDE_LIMIT" envDefault:"10"`
}

type requiredConfig struct {
	Secret string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	DefaultLang string   `env:"CFG_TEST_DEFAULT_LANG" envDefault:"en"`
	KeyPrefix   string   `env:"CFG_TEST_KEY_PREFIX"`
	Locales     []string `env:"CFG_TEST_LOCALES" envSeparator:","`
	Preset      string   `env:"CFG_TEST_PRESET"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.True(t, cfg.Strict)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CFG_TEST_OVERRIDE_ADDR", ":9090")
		t.Setenv("CFG_TEST_OVERRIDE_LIMIT", "3")

		var cfg overrideConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 3, cfg.Limit)
	})

	t.Run("cached until reset", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CFG_TEST_OVERRIDE_LIMIT", "1")
		var first overrideConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFG_TEST_OVERRIDE_LIMIT", "2")
		var second overrideConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 1, second.Limit)

		config.ResetCache()
		var third overrideConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, 2, third.Limit)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("CFG_TEST_REQUIRED")

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("failed load is not cached", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("CFG_TEST_REQUIRED")
		var cfg requiredConfig
		require.Error(t, config.Load(&cfg))

		t.Setenv("CFG_TEST_REQUIRED", "s3cret")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "s3cret", cfg.Secret)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFG_TEST_REQUIRED")

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	var ok defaultsConfig
	assert.NotPanics(t, func() { config.MustLoad(&ok) })
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads file values", func(t *testing.T) {
		config.ResetCache()
		for _, k := range []string{"CFG_TEST_DEFAULT_LANG", "CFG_TEST_KEY_PREFIX", "CFG_TEST_LOCALES"} {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
		t.Setenv("CFG_TEST_PRESET", "from_env")

		require.NoError(t, config.LoadEnv("testdata/.env.validator"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "pt-BR", cfg.DefaultLang)
		assert.Equal(t, "form.", cfg.KeyPrefix)
		assert.Equal(t, []string{"./locales", "./extra"}, cfg.Locales)
		assert.Equal(t, "from_env", cfg.Preset, "process environment wins over the file")
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
	})

	t.Run("no files is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
