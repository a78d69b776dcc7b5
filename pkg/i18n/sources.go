package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Source loads raw catalog tables keyed by language tag.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves tables kept in memory.
type MapSource map[string]map[string]any

func (s MapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s == nil {
		return map[string]map[string]any{}, nil
	}
	return s, nil
}

// FileSource loads a single YAML or JSON catalog file.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource picks the parser from the file extension.
func NewFileSource(filePath string) (*FileSource, error) {
	parser := NewParserForFile(filePath)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
	return &FileSource{parser: parser, path: filePath}, nil
}

func (s *FileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(s.path) })
	if err != nil {
		return nil, err
	}
	return parseContent(ctx, s.parser, s.path, content)
}

// FSSource loads every YAML and JSON file found directly under dir in fsys.
// Files are read in name order (fs.ReadDir sorts), so a later file overrides templates of an earlier one.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource loads every catalog file directly under dir in fsys.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	if dir == "" {
		dir = "."
	}
	return &FSSource{fsys: fsys, dir: dir}
}

// NewDirSource loads catalogs from a directory on disk.
func NewDirSource(dir string) (*FSSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFailedToAccessDirectory, dir)
	}
	return NewFSSource(os.DirFS(dir), "."), nil
}

func (s *FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		filePath := path.Join(s.dir, entry.Name())
		content, err := readWithContext(ctx, func() ([]byte, error) { return fs.ReadFile(s.fsys, filePath) })
		if err != nil {
			return nil, err
		}
		tables, err := parseContent(ctx, parser, filePath, content)
		if err != nil {
			return nil, err
		}
		merge(all, tables)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCatalogFiles, s.dir)
	}
	return all, nil
}

// readWithContext runs read in the background and gives up when ctx is done first.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	type result struct {
		content []byte
		err     error
	}
	done := make(chan result, 1)
	go func() {
		content, err := read()
		done <- result{content, err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, errors.Join(ErrFailedToReadFile, r.err)
		}
		return r.content, nil
	}
}

func parseContent(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrFailedToParseFile, name)
	}
	tables, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}
	return tables, nil
}

func merge(dst, src map[string]map[string]any) {
	for lang, table := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(table))
		}
		maps.Copy(dst[lang], table)
	}
}
