// Package i18n provides message catalogs for package validator.
//
// A catalog maps a language tag to a table of rule templates:
//
//	pt-BR:
//	  is_required: "O campo %s é obrigatório"
//	  min_length: "O campo %s deve conter ao mínimo %s caracter(es)"
//
// Catalogs are read from YAML or JSON through a Source: MapSource (in memory), FileSource
// (one file), FSSource (every catalog file in a directory of an fs.FS) and NewDirSource (a
// directory on disk). English and Brazilian Portuguese ship embedded and are always loaded
// first unless WithoutBuiltin is given; later sources override earlier templates.
//
// # Usage
//
//	catalog, err := i18n.NewCatalog(ctx,
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	v, tag, err := catalog.Validator("pt-BR")
//	if errors.Is(err, i18n.ErrLanguageNotSupported) {
//		// ...
//	}
//	v.Bind("nome", "").Required() // "O campo nome é obrigatório"
//
// Language requests are matched with golang.org/x/text/language, so "pt", "en-GB" or an
// Accept-Language list such as "fr;q=1, pt;q=0.5" all resolve to the closest catalog.
// Rules missing from a language keep their English template.
//
// # HTTP
//
// Middleware copies the requested language (query parameter, cookie or Accept-Language by
// default) into the request context; GetLocale reads it back for Catalog.Match.
//
// # Concurrency
//
// A Catalog is immutable after NewCatalog returns and safe for concurrent use.
package i18n
