// Package snapshot implements the immutable, process-resident, lazily
// loaded tabular snapshot shared by every entity domain. Each domain gets
// exactly one Store, initialized once on first use and safe for concurrent
// unsynchronized reads afterward.
package snapshot

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Source describes where a domain's snapshot file may live, in search
// order: explicit path, environment variable, module-local data dir,
// package data dir, development tables dir.
type Source struct {
	Name           string   // domain name, used in diagnostics and as the singleflight key
	ExplicitPath   string   // caller-supplied path, tried first
	EnvVar         string   // environment variable name, tried second
	ModuleDataDir  string   // e.g. "data/companies"
	PackageDataDir string   // e.g. "company/data"
	DevTablesDir   string   // e.g. "tables/companies"
	Filenames      []string // preferred extension first, e.g. {"companies.parquet", "companies.csv"}
}

// Resolve walks the search order and returns the first path that exists on
// disk. It never guesses: callers needing a specific file extension filter
// Filenames themselves.
func (s Source) Resolve() (string, error) {
	var candidates []string
	if s.ExplicitPath != "" {
		candidates = append(candidates, s.ExplicitPath)
	}
	if s.EnvVar != "" {
		if v := os.Getenv(s.EnvVar); v != "" {
			candidates = append(candidates, v)
		}
	}
	for _, dir := range []string{s.ModuleDataDir, s.PackageDataDir, s.DevTablesDir} {
		if dir == "" {
			continue
		}
		for _, fn := range s.Filenames {
			candidates = append(candidates, filepath.Join(dir, fn))
		}
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}

	return "", s.notFoundError(candidates)
}

func (s Source) notFoundError(tried []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "snapshot: no %s data file found\n", s.Name)
	b.WriteString("searched:\n")
	for _, c := range tried {
		fmt.Fprintf(&b, "  - %s\n", c)
	}
	b.WriteString("remedies:\n")
	fmt.Fprintf(&b, "  - pass an explicit path\n")
	if s.EnvVar != "" {
		fmt.Fprintf(&b, "  - set %s\n", s.EnvVar)
	}
	b.WriteString("  - run the build pipeline to populate the package/dev data directory\n")
	return eris.New(b.String())
}

// Table is the decoded row set for one domain's snapshot.
type Table[T any] struct {
	Path string
	Rows []T
}

// Store is a per-domain, initialize-once handle over a Table[T]. The zero
// value is not usable; construct with NewStore.
type Store[T any] struct {
	source   Source
	postLoad func([]T)
	group    singleflight.Group
	table    atomic.Pointer[Table[T]]
}

// Option configures a Store at construction time.
type Option[T any] func(*Store[T])

// WithPostLoad registers a hook that hydrates derived columns (name_norm,
// generated ids, alias padding) exactly once, before the table is published
// to readers. Hydration must run here rather than after Get returns: once
// published, the table is read concurrently without synchronization, so
// mutating rows afterward would race.
func WithPostLoad[T any](fn func([]T)) Option[T] {
	return func(s *Store[T]) { s.postLoad = fn }
}

// NewStore builds a Store for the given Source. Loading is lazy: nothing
// happens until the first Get call.
func NewStore[T any](source Source, opts ...Option[T]) *Store[T] {
	s := &Store[T]{source: source}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached table, loading it on the first call. Concurrent
// first callers serialize on a singleflight group keyed by domain name so
// exactly one goroutine reads the file; the rest wait for its result.
func (s *Store[T]) Get(ctx context.Context) (*Table[T], error) {
	if t := s.table.Load(); t != nil {
		return t, nil
	}

	v, err, _ := s.group.Do(s.source.Name, func() (any, error) {
		if t := s.table.Load(); t != nil {
			return t, nil
		}

		path, err := s.source.Resolve()
		if err != nil {
			return nil, err
		}

		table, err := s.load(ctx, path)
		if err != nil {
			return nil, eris.Wrapf(err, "snapshot: load %s from %s", s.source.Name, path)
		}

		if s.postLoad != nil {
			s.postLoad(table.Rows)
		}

		s.table.Store(table)
		zap.L().Debug("snapshot loaded",
			zap.String("domain", s.source.Name),
			zap.String("path", path),
			zap.Int("rows", len(table.Rows)))
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table[T]), nil
}

// Clear invalidates the cached table. For tests only.
func (s *Store[T]) Clear() {
	s.table.Store(nil)
}

func (s *Store[T]) load(ctx context.Context, path string) (*Table[T], error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if strings.HasSuffix(path, ".parquet") {
		return nil, eris.New("snapshot: parquet loading is not implemented in this build; supply a .csv snapshot instead")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "snapshot: open file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return nil, eris.Wrap(err, "snapshot: init csv decoder")
	}

	var rows []T
	for {
		var row T
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, eris.Wrap(err, "snapshot: decode row")
		}
		rows = append(rows, row)
	}

	return &Table[T]{Path: path, Rows: rows}, nil
}
