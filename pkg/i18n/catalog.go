package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var locales embed.FS

// BuiltinSource serves the catalogs shipped with the package (en, pt-BR).
func BuiltinSource() Source {
	return NewFSSource(locales, "locales")
}

// Catalog resolves language tags to validator template tables.
// A Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	tags    []language.Tag
	tables  []map[validator.RuleID]string
	matcher language.Matcher
	logger  *slog.Logger
}

// Option configures NewCatalog.
type Option func(*catalogOptions)

type catalogOptions struct {
	sources     []Source
	defaultLang string
	builtin     bool
	logger      *slog.Logger
}

// WithSource adds a catalog source. Sources are merged in order after the built-in
// catalogs, so later sources override earlier templates.
func WithSource(src Source) Option {
	return func(o *catalogOptions) {
		o.sources = append(o.sources, src)
	}
}

// WithDefaultLanguage sets the language used for empty requests.
func WithDefaultLanguage(lang string) Option {
	return func(o *catalogOptions) {
		if lang != "" {
			o.defaultLang = lang
		}
	}
}

// WithoutBuiltin skips the shipped catalogs.
func WithoutBuiltin() Option {
	return func(o *catalogOptions) {
		o.builtin = false
	}
}

// WithLogger sets the logger used while loading and resolving. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *catalogOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewCatalog loads every source and builds one template table per language.
// Rules a language does not translate keep the built-in English template.
// Keys that are not rule identifiers are logged and skipped.
func NewCatalog(ctx context.Context, opts ...Option) (*Catalog, error) {
	o := catalogOptions{
		defaultLang: DefaultLanguage,
		builtin:     true,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	sources := o.sources
	if o.builtin {
		sources = append([]Source{BuiltinSource()}, sources...)
	}

	raw := make(map[string]map[string]any)
	for _, src := range sources {
		if src == nil {
			return nil, ErrNilSource
		}
		tables, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(raw, tables)
	}

	defaultTag, err := language.Parse(o.defaultLang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageTag, o.defaultLang)
	}

	byTag := make(map[language.Tag]map[validator.RuleID]string, len(raw))
	for lang, entries := range raw {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageTag, lang)
		}
		table, ok := byTag[tag]
		if !ok {
			table = validator.DefaultMessages()
			byTag[tag] = table
		}
		for key, val := range entries {
			id := validator.RuleID(key)
			if !id.Valid() {
				o.logger.WarnContext(ctx, "skipping unknown rule in catalog",
					slog.String("lang", lang), slog.String("rule", key))
				continue
			}
			tmpl, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s is %T", ErrInvalidTemplate, lang, key, val)
			}
			table[id] = tmpl
		}
	}

	if _, ok := byTag[defaultTag]; !ok {
		return nil, fmt.Errorf("%w: default language %s has no catalog", ErrLanguageNotSupported, defaultTag)
	}

	// The matcher falls back to its first tag, so the default goes first.
	c := &Catalog{logger: o.logger}
	c.add(defaultTag, byTag[defaultTag])
	rest := slices.SortedFunc(maps.Keys(byTag), func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, tag := range rest {
		if tag != defaultTag {
			c.add(tag, byTag[tag])
		}
	}
	c.matcher = language.NewMatcher(c.tags)

	o.logger.InfoContext(ctx, "message catalogs loaded", slog.Any("languages", c.Languages()))
	return c, nil
}

func (c *Catalog) add(tag language.Tag, table map[validator.RuleID]string) {
	c.tags = append(c.tags, tag)
	c.tables = append(c.tables, table)
}

// Languages returns the catalog languages, default first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}

// Default returns the default language.
func (c *Catalog) Default() language.Tag {
	return c.tags[0]
}

// Match picks the catalog language for lang, which may be a single tag ("pt-BR") or an
// Accept-Language list ("pt;q=0.9, en;q=0.8"). An empty lang selects the default.
func (c *Catalog) Match(lang string) (language.Tag, int, error) {
	if lang == "" {
		return c.tags[0], 0, nil
	}

	wanted, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(wanted) == 0 {
		return language.Und, 0, fmt.Errorf("%w: %q", ErrLanguageNotSupported, lang)
	}

	_, idx, conf := c.matcher.Match(wanted...)
	if conf == language.No {
		return language.Und, 0, fmt.Errorf("%w: %q", ErrLanguageNotSupported, lang)
	}
	return c.tags[idx], idx, nil
}

// Messages returns a copy of the template table for lang and the language it resolved to.
func (c *Catalog) Messages(lang string) (map[validator.RuleID]string, language.Tag, error) {
	tag, idx, err := c.Match(lang)
	if err != nil {
		return nil, language.Und, err
	}
	return maps.Clone(c.tables[idx]), tag, nil
}

// Validator returns a fresh validator using the templates and case rules of lang.
// opts are applied after the catalog templates, so they may override them.
func (c *Catalog) Validator(lang string, opts ...validator.Option) (*validator.Validator, language.Tag, error) {
	tag, idx, err := c.Match(lang)
	if err != nil {
		c.logger.Debug("language not in catalog", slog.String("lang", lang))
		return nil, language.Und, err
	}

	all := make([]validator.Option, 0, len(opts)+2)
	all = append(all, validator.WithMessages(c.tables[idx]), validator.WithLanguage(tag))
	all = append(all, opts...)
	return validator.New(all...), tag, nil
}

// IsLanguageNotSupported reports whether err came from resolving an unknown language.
func IsLanguageNotSupported(err error) bool {
	return errors.Is(err, ErrLanguageNotSupported)
}
